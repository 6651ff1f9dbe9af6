package motion

import (
	"container/heap"

	"github.com/jdfr/pathsplitter/geom"
)

// NearestNeighborPlanner greedily chains paths so each one starts as close
// as possible to wherever the previous path (or the carried-over
// PlannerState) left off. For a closed path there is no meaningful start or
// end, so it is left as-is beyond being selected by proximity of its first
// point; an open path may additionally be reversed so its nearer endpoint
// comes first.
type NearestNeighborPlanner struct{}

// Plan reorders paths in place (grounded on the container/heap-backed
// priority selection in d2gridrouter/dijkstra.go's dijkstraPQ, repurposed
// here to repeatedly extract whichever remaining path is nearest the
// current position instead of the next cheapest graph state).
func (NearestNeighborPlanner) Plan(state *PlannerState, closed bool, paths geom.Paths) {
	n := len(paths)
	if n == 0 {
		return
	}

	current := state.StartNear
	if state.NotInitialized {
		current = paths[0][0]
	}

	pq := make(candidatePQ, 0, n)
	for i, p := range paths {
		pq = append(pq, newCandidate(i, p, closed, current))
	}
	heap.Init(&pq)

	ordered := make(geom.Paths, 0, n)
	for pq.Len() > 0 {
		c := heap.Pop(&pq).(candidate)
		path := paths[c.index]
		if !closed && c.reversed {
			path = reversed(path)
		}
		ordered = append(ordered, path)
		current = path[len(path)-1]

		// Re-score remaining candidates against the new current position.
		for i := range pq {
			pq[i] = newCandidate(pq[i].index, paths[pq[i].index], closed, current)
		}
		heap.Init(&pq)
	}

	copy(paths, ordered)
	state.StartNear = current
	state.NotInitialized = false
}

func reversed(p geom.Path) geom.Path {
	out := make(geom.Path, len(p))
	for i, pt := range p {
		out[len(p)-1-i] = pt
	}
	return out
}

func sqDist(a, b geom.Point) int64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// candidate is one not-yet-placed path, scored by its distance from the
// current position.
type candidate struct {
	index    int
	reversed bool
	dist     int64
}

func newCandidate(index int, p geom.Path, closed bool, from geom.Point) candidate {
	distStart := sqDist(from, p[0])
	if closed || len(p) < 2 {
		return candidate{index: index, reversed: false, dist: distStart}
	}
	distEnd := sqDist(from, p[len(p)-1])
	if distEnd < distStart {
		return candidate{index: index, reversed: true, dist: distEnd}
	}
	return candidate{index: index, reversed: false, dist: distStart}
}

// candidatePQ is a container/heap priority queue of candidates, ordered by
// ascending distance, mirroring dijkstraPQ's Len/Less/Swap/Push/Pop shape.
type candidatePQ []candidate

func (pq candidatePQ) Len() int { return len(pq) }

func (pq candidatePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

func (pq candidatePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *candidatePQ) Push(x interface{}) {
	*pq = append(*pq, x.(candidate))
}

func (pq *candidatePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
