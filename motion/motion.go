// Package motion implements the optional hand-off that reorders (and, for
// open paths, reverses) the paths accumulated in a cell so consecutive
// output paths start near where the previous one ended (spec §4.6 C7,
// §4.10). The per-cell continuity state carried across layers is opaque to
// every other package; only a Planner reads or writes it.
package motion

import "github.com/jdfr/pathsplitter/geom"

// PlannerState is the per-cell continuity state threaded between
// consecutive ProcessPaths calls (spec §3, mirroring the original
// motionPlanningState: start_near + notinitialized).
type PlannerState struct {
	StartNear      geom.Point
	NotInitialized bool
}

// NewPlannerState returns a freshly reset PlannerState, as used when a cell
// is first allocated.
func NewPlannerState() PlannerState {
	return PlannerState{NotInitialized: true}
}

// Planner reorders paths in place to minimize travel between consecutive
// paths, updating state so the next call can continue the chain.
type Planner interface {
	Plan(state *PlannerState, closed bool, paths geom.Paths)
}
