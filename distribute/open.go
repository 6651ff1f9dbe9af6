package distribute

import (
	"context"

	"github.com/jdfr/pathsplitter/geom"
	"github.com/jdfr/pathsplitter/grid"
)

// squareState is one cell's bookkeeping while sweeping a single open path
// (original_source/multi/pathsplitter.hpp: SquareState).
type squareState struct {
	noLines               bool
	createNew             bool
	currentPointIsInside  bool
	previousPointIsInside bool
	pointAdded            bool
}

func (s *squareState) reset() {
	*s = squareState{noLines: true}
}

// distributeOpen sweeps every open path point by point. Where the path
// stays inside the same set of cells between two consecutive points, the
// segment is appended directly to every cell it belongs to. As soon as a
// segment crosses a cell boundary, that whole segment is instead queued for
// clipping in the nearby cells that did not already receive it directly,
// and the sweep restarts from the point that triggered the crossing as if
// it were the start of a new line.
//
// This mirrors PathSplitter::processPaths's inner loop
// (original_source/multi/pathsplitter.cpp), which used `goto
// end_of_position_loop` plus a manual `--point; --position` to reprocess
// the triggering point; here that reprocessing is a plain loop-index
// decrement guarded by a labelled break out of the cell scan.
func distributeOpen(ctx context.Context, g *grid.Grid, clipper Clipper, paths geom.Paths) error {
	n := g.NumX * g.NumY
	states := make([]squareState, n)
	toClip := make([]geom.Paths, n)

	nx := g.NumX - 1
	ny := g.NumY - 1

	defineRange := func(mnx, mxx, mny, mxy int) (minx, maxx, miny, maxy int) {
		minx = clampRange(mnx-2, 0, nx)
		maxx = clampRange(mxx+2, 0, nx)
		miny = clampRange(mny-2, 0, ny)
		maxy = clampRange(mxy+2, 0, ny)
		return
	}

	var noSegmentAlreadyAdded, noSegmentIsGoingToBeAdded bool

	// resetLineKeeping queues segment for clipping in every cell within
	// range that hasn't already had it appended directly at this position
	// (pointAdded), then resets
	// all per-cell state and the two line-tracking flags above, ready to
	// treat the triggering point as the start of a fresh line.
	resetLineKeeping := func(minx, maxx, miny, maxy int, segment geom.Path) {
		noSegmentAlreadyAdded = true
		noSegmentIsGoingToBeAdded = true
		for x := minx; x <= maxx; x++ {
			for y := miny; y <= maxy; y++ {
				idx := g.Idx(x, y)
				if !states[idx].pointAdded {
					toClip[idx] = append(toClip[idx], segment)
				}
			}
		}
		for i := range states {
			states[i].reset()
		}
	}

	for _, path := range paths {
		if len(path) == 0 {
			continue
		}
		snapped := make([]gridPos, len(path))
		for i, pt := range path {
			x, y := g.SnapPoint(ctx, pt)
			snapped[i] = gridPos{X: x, Y: y}
		}

		for i := range states {
			states[i].reset()
		}
		noSegmentAlreadyAdded = true
		noSegmentIsGoingToBeAdded = true

		var prevPoint geom.Point
		var prevPosition gridPos

		for i := 0; i < len(path); i++ {
			currentPoint := path[i]
			position := snapped[i]

			var segment geom.Path
			var minx, maxx, miny, maxy int
			if noSegmentIsGoingToBeAdded {
				minx, maxx, miny, maxy = defineRange(position.X, position.X, position.Y, position.Y)
			} else {
				segment = geom.Path{prevPoint, currentPoint}
				minx, maxx, miny, maxy = defineRange(
					minInt(position.X, prevPosition.X), maxInt(position.X, prevPosition.X),
					minInt(position.Y, prevPosition.Y), maxInt(position.Y, prevPosition.Y))
			}

			crossed := false
		scan:
			for x := minx; x <= maxx; x++ {
				for y := miny; y <= maxy; y++ {
					idx := g.Idx(x, y)
					sq := &states[idx]
					cell := g.At(x, y)
					sq.currentPointIsInside = cell.ActualSquare.Contains(currentPoint)

					if sq.currentPointIsInside {
						if sq.noLines {
							if noSegmentAlreadyAdded {
								noSegmentIsGoingToBeAdded = false
								sq.noLines = false
								sq.createNew = true
							} else {
								resetLineKeeping(minx, maxx, miny, maxy, segment)
								crossed = true
								break scan
							}
						} else if sq.previousPointIsInside {
							if sq.createNew {
								cell.Paths = append(cell.Paths, segment)
								sq.createNew = false
							} else {
								last := len(cell.Paths) - 1
								cell.Paths[last] = append(cell.Paths[last], currentPoint)
							}
							sq.pointAdded = true
							noSegmentAlreadyAdded = false
						} else {
							resetLineKeeping(minx, maxx, miny, maxy, segment)
							crossed = true
							break scan
						}
					} else if sq.previousPointIsInside {
						resetLineKeeping(minx, maxx, miny, maxy, segment)
						crossed = true
						break scan
					}
				}
			}

			if crossed {
				i--
				continue
			}

			for i := range states {
				states[i].previousPointIsInside = states[i].currentPointIsInside
				states[i].pointAdded = false
			}
			prevPoint = currentPoint
			prevPosition = position
		}
	}

	return applyClipping(ctx, g, clipper, toClip)
}

// applyClipping clips every cell's queued boundary-crossing segments
// against that cell's window and appends the result to its paths
// (original_source/multi/pathsplitter.cpp: PathSplitter::applyClipping).
func applyClipping(ctx context.Context, g *grid.Grid, clipper Clipper, toClip []geom.Paths) error {
	for x := 0; x < g.NumX; x++ {
		for y := 0; y < g.NumY; y++ {
			idx := g.Idx(x, y)
			if len(toClip[idx]) == 0 {
				continue
			}
			cell := g.At(x, y)
			result, err := clipper.ClipOpen(ctx, cell.ActualSquare, toClip[idx])
			if err != nil {
				return err
			}
			cell.Paths = append(cell.Paths, result...)
		}
	}
	return nil
}

type gridPos struct{ X, Y int }

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func clampRange(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
