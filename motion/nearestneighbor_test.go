package motion

import (
	"testing"

	"github.com/jdfr/pathsplitter/geom"
)

func TestPlanOrdersByProximityToStart(t *testing.T) {
	state := &PlannerState{StartNear: geom.Point{X: 0, Y: 0}, NotInitialized: false}
	paths := geom.Paths{
		{{X: 1000, Y: 0}, {X: 1100, Y: 0}},
		{{X: 10, Y: 0}, {X: 20, Y: 0}},
		{{X: 500, Y: 0}, {X: 520, Y: 0}},
	}

	NearestNeighborPlanner{}.Plan(state, false, paths)

	if paths[0][0] != (geom.Point{X: 10, Y: 0}) {
		t.Fatalf("first path should start nearest (0,0), got %+v", paths[0])
	}
	if paths[len(paths)-1][0] != (geom.Point{X: 1000, Y: 0}) {
		t.Fatalf("last path should be the farthest start, got %+v", paths[len(paths)-1])
	}
}

func TestPlanMayReverseOpenPaths(t *testing.T) {
	state := &PlannerState{StartNear: geom.Point{X: 1000, Y: 0}, NotInitialized: false}
	paths := geom.Paths{
		{{X: 0, Y: 0}, {X: 900, Y: 0}},
	}

	NearestNeighborPlanner{}.Plan(state, false, paths)

	if paths[0][0] != (geom.Point{X: 900, Y: 0}) {
		t.Fatalf("expected the path to be reversed so it starts near (1000,0), got %+v", paths[0])
	}
}

func TestPlanUpdatesState(t *testing.T) {
	state := &PlannerState{NotInitialized: true}
	paths := geom.Paths{
		{{X: 0, Y: 0}, {X: 50, Y: 0}},
	}

	NearestNeighborPlanner{}.Plan(state, false, paths)

	if state.NotInitialized {
		t.Fatalf("expected NotInitialized to become false after Plan")
	}
	if state.StartNear != (geom.Point{X: 50, Y: 0}) {
		t.Fatalf("expected StartNear to track the last path's endpoint, got %+v", state.StartNear)
	}
}
