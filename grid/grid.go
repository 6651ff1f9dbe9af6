// Package grid builds the overlapping checkerboard of cell windows the
// path splitter distributes geometry into, applies the per-layer wall-tilt
// correction to each cell's window, and snaps world-space points to the
// owning cell's integer coordinates (spec §4.1-§4.3).
package grid

import (
	"math"

	"github.com/jdfr/pathsplitter/geom"
	"github.com/jdfr/pathsplitter/motion"
)

// Config is the immutable-after-construction configuration for a grid of
// splitting cells (spec §3 Config entity).
type Config struct {
	// UseOrigin selects a rigid checkerboard anchored at Origin (true) or an
	// even distribution of [Min,Max] among a computed number of cells (false).
	UseOrigin bool `json:"useOrigin"`
	// Origin anchors the first cell's window when UseOrigin is true.
	Origin geom.Point `json:"origin"`
	// Displacement is the nominal cell step on each axis; both components
	// must be strictly positive.
	Displacement geom.Point `json:"displacement"`
	// Margin is added to each side of a cell's nominal step to produce its
	// window, so neighboring windows overlap by 2*Margin.
	Margin int64 `json:"margin"`
	// Min, Max bound the area the grid must cover.
	Min geom.Point `json:"min,omitempty"`
	Max geom.Point `json:"max,omitempty"`
	// ZMin is the Z value of the ground layer (tilt shift is zero there).
	ZMin float64 `json:"zmin"`
	// WallAngle is the wall angle from vertical, in degrees. 90 means
	// perfectly vertical walls (no tilt correction is ever applied).
	WallAngle float64 `json:"wallAngle"`
	// ApplyMotionPlanning enables the optional motion-planning hand-off
	// after each ProcessPaths call.
	ApplyMotionPlanning bool `json:"applyMotionPlanning"`
}

// DefaultConfig is a reasonable even-mode starting point for callers that
// only need to override Min/Max/Displacement, following the
// Config/DefaultConfig convention used throughout this module's ambient
// tooling.
var DefaultConfig = Config{
	UseOrigin:           false,
	Displacement:        geom.Point{X: 1000, Y: 1000},
	Margin:              50,
	WallAngle:           90,
	ApplyMotionPlanning: false,
}

// SnapSpec describes how world-space points are mapped to integer cell
// coordinates (spec §3 SnapSpec entity).
type SnapSpec struct {
	GridStepX, GridStepY float64
	ShiftX, ShiftY       float64
}

// Cell is one entry of the checkerboard (spec §3 Cell entity). OriginalSquare
// is written once in Build and never mutated again; ActualSquare and Paths
// are rewritten at the start of every layer by Tilt/the distribution stages.
type Cell struct {
	OriginalSquare geom.Rect
	ActualSquare   geom.Rect
	Paths          geom.Paths
	Motion         motion.PlannerState
}

// Grid is the 2D array of Cells plus the derived parameters computed once
// in Build (spec §3 Grid entity, §4.1 GridBuilder).
type Grid struct {
	Cells        []Cell
	NumX, NumY   int
	OriginalSize geom.Point
	Snap         SnapSpec
	SingleX      bool
	SingleY      bool
	// JustOne is true when the grid has exactly one cell; in that case
	// tilt and distribution are both skipped entirely (spec §4.8).
	JustOne bool
	// Angle90 is true when JustOne or WallAngle is (numerically) vertical;
	// in that case ActualSquare always equals OriginalSquare.
	Angle90  bool
	SinAngle float64

	config Config
}

// Idx returns the row-major, X-outer index of cell (x,y), per spec §3/§9:
// idx(x,y) = x*numy + y. Callers (e.g. the cube-mesh emitter) may rely on
// this ordering.
func (g *Grid) Idx(x, y int) int { return x*g.NumY + y }

// At returns a pointer to cell (x,y).
func (g *Grid) At(x, y int) *Cell { return &g.Cells[g.Idx(x, y)] }

// degToRad converts the configured wall angle (degrees) to radians.
func degToRad(deg float64) float64 { return deg * math.Pi / 180.0 }
