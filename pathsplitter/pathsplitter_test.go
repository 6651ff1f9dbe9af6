package pathsplitter

import (
	"context"
	"errors"
	"testing"

	"github.com/jdfr/pathsplitter/geom"
	"github.com/jdfr/pathsplitter/grid"
	"github.com/jdfr/pathsplitter/pserrors"
)

func newTestSplitter(t *testing.T, cfg grid.Config) *PathSplitter {
	t.Helper()
	s := New(cfg)
	if err := s.Setup(context.Background()); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	return s
}

// Scenario 1: single cell.
func TestScenarioSingleCell(t *testing.T) {
	cfg := grid.Config{
		Min: geom.Point{X: 0, Y: 0}, Max: geom.Point{X: 100, Y: 100},
		Displacement: geom.Point{X: 100, Y: 100}, Margin: 5, WallAngle: 90,
	}
	s := newTestSplitter(t, cfg)

	if s.Grid.NumX != 1 || s.Grid.NumY != 1 {
		t.Fatalf("expected a 1x1 grid, got %dx%d", s.Grid.NumX, s.Grid.NumY)
	}

	path := geom.Path{{X: 10, Y: 10}, {X: 90, Y: 90}}
	if err := s.ProcessPaths(context.Background(), geom.Paths{path}, false, 0, 1); err != nil {
		t.Fatalf("ProcessPaths: %v", err)
	}

	cell := s.Grid.At(0, 0)
	if len(cell.Paths) != 1 || len(cell.Paths[0]) != 2 {
		t.Fatalf("cell(0,0).Paths = %+v, want one 2-point path", cell.Paths)
	}
	if cell.Paths[0][0] != path[0] || cell.Paths[0][1] != path[1] {
		t.Fatalf("cell(0,0).Paths[0] = %+v, want %+v", cell.Paths[0], path)
	}
}

func twoCellConfig() grid.Config {
	return grid.Config{
		Min: geom.Point{X: 0, Y: 0}, Max: geom.Point{X: 200, Y: 100},
		Displacement: geom.Point{X: 100, Y: 100}, Margin: 10, WallAngle: 90,
	}
}

// Scenario 2: two cells, segment lying entirely within the shared overlap
// strip (x in [90,110], the margin on each side of the shared boundary at
// x=100) — it never exits either cell's window, so neither cell's output
// needs clipping.
func TestScenarioOverlapStripNoClip(t *testing.T) {
	s := newTestSplitter(t, twoCellConfig())

	path := geom.Path{{X: 95, Y: 50}, {X: 105, Y: 50}}
	if err := s.ProcessPaths(context.Background(), geom.Paths{path}, false, 0, 1); err != nil {
		t.Fatalf("ProcessPaths: %v", err)
	}

	for _, idx := range [][2]int{{0, 0}, {1, 0}} {
		cell := s.Grid.At(idx[0], idx[1])
		if len(cell.Paths) != 1 || len(cell.Paths[0]) != 2 {
			t.Fatalf("cell%v.Paths = %+v, want the full 2-point segment", idx, cell.Paths)
		}
	}
}

// Scenario 3: two cells, segment clearly crossing — the clipper trims it.
func TestScenarioClearCrossingClips(t *testing.T) {
	s := newTestSplitter(t, twoCellConfig())

	path := geom.Path{{X: 20, Y: 50}, {X: 180, Y: 50}}
	if err := s.ProcessPaths(context.Background(), geom.Paths{path}, false, 0, 1); err != nil {
		t.Fatalf("ProcessPaths: %v", err)
	}

	cell0 := s.Grid.At(0, 0)
	cell1 := s.Grid.At(1, 0)
	if len(cell0.Paths) == 0 {
		t.Fatalf("cell(0,0) received no paths")
	}
	if len(cell1.Paths) == 0 {
		t.Fatalf("cell(1,0) received no paths")
	}
	// Every point handed to cell(0,0) must lie within its own window, and
	// likewise for cell(1,0): the defining property of a successful clip.
	for _, p := range cell0.Paths[0] {
		if !cell0.ActualSquare.Contains(p) {
			t.Fatalf("cell(0,0) got a point %+v outside its window %+v", p, cell0.ActualSquare)
		}
	}
	for _, p := range cell1.Paths[0] {
		if !cell1.ActualSquare.Contains(p) {
			t.Fatalf("cell(1,0) got a point %+v outside its window %+v", p, cell1.ActualSquare)
		}
	}
}

// Scenario 4: tilt shift at z=10 moves only the shared internal edge.
func TestScenarioTiltShift(t *testing.T) {
	cfg := twoCellConfig()
	cfg.WallAngle = 80
	s := newTestSplitter(t, cfg)

	if err := s.ProcessPaths(context.Background(), nil, false, 10, 1); err != nil {
		t.Fatalf("ProcessPaths: %v", err)
	}

	cell0 := s.Grid.At(0, 0)
	cell1 := s.Grid.At(1, 0)
	if cell0.ActualSquare.Max.X != 101 {
		t.Fatalf("cell(0,0).ActualSquare.Max.X = %d, want 101", cell0.ActualSquare.Max.X)
	}
	if cell1.ActualSquare.Min.X != 81 {
		t.Fatalf("cell(1,0).ActualSquare.Min.X = %d, want 81", cell1.ActualSquare.Min.X)
	}
}

// Scenario 5: tilt shift exceeding the displacement is a LayerGeometryError.
func TestScenarioTiltExceedsDisplacement(t *testing.T) {
	cfg := twoCellConfig()
	cfg.WallAngle = 80
	s := newTestSplitter(t, cfg)

	err := s.ProcessPaths(context.Background(), nil, false, 200, 1)
	if err == nil {
		t.Fatalf("expected an error when the tilt shift exceeds the displacement")
	}
	var geomErr *pserrors.LayerGeometryError
	if !errors.As(err, &geomErr) {
		t.Fatalf("expected a LayerGeometryError, got %T: %v", err, err)
	}
}

// Scenario 6: a closed path across the boundary is always clipped.
func TestScenarioClosedPathAcrossBoundary(t *testing.T) {
	s := newTestSplitter(t, twoCellConfig())

	square := geom.Path{{X: 50, Y: 40}, {X: 150, Y: 40}, {X: 150, Y: 60}, {X: 50, Y: 60}}
	if err := s.ProcessPaths(context.Background(), geom.Paths{square}, true, 0, 1); err != nil {
		t.Fatalf("ProcessPaths: %v", err)
	}

	cell0 := s.Grid.At(0, 0)
	cell1 := s.Grid.At(1, 0)
	if len(cell0.Paths) == 0 || len(cell1.Paths) == 0 {
		t.Fatalf("expected both cells to receive a clipped sub-rectangle")
	}
}

func TestSetupIsIdempotent(t *testing.T) {
	s := New(twoCellConfig())
	if err := s.Setup(context.Background()); err != nil {
		t.Fatalf("first Setup: %v", err)
	}
	first := s.Grid
	if err := s.Setup(context.Background()); err != nil {
		t.Fatalf("second Setup: %v", err)
	}
	if s.Grid != first {
		t.Fatalf("second Setup rebuilt the grid instead of being a no-op")
	}
}
