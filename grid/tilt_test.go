package grid

import (
	"context"
	"testing"

	"github.com/jdfr/pathsplitter/geom"
)

func buildTestGrid(t *testing.T, wallAngle float64) *Grid {
	t.Helper()
	cfg := Config{
		Displacement: geom.Point{X: 1000, Y: 1000},
		Margin:       50,
		Min:          geom.Point{X: 0, Y: 0},
		Max:          geom.Point{X: 3000, Y: 2000},
		ZMin:         0,
		WallAngle:    wallAngle,
	}
	g, err := Build(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return g
}

func TestTiltAngle90NeverShrinks(t *testing.T) {
	g := buildTestGrid(t, 90)
	if err := g.Tilt(10, 0, 1); err != nil {
		t.Fatalf("Tilt: %v", err)
	}
	for i, cell := range g.Cells {
		if cell.ActualSquare != cell.OriginalSquare {
			t.Fatalf("cell %d: ActualSquare changed despite a right wall angle", i)
		}
	}
}

func TestTiltShrinksOnlyInternalEdges(t *testing.T) {
	g := buildTestGrid(t, 80)
	if err := g.Tilt(10, 0, 1); err != nil {
		t.Fatalf("Tilt: %v", err)
	}

	// Cell (0,0) is the bottom-left corner of a 3x2 grid: its Min edges are
	// outer boundary (unshifted), its Max edges border neighbors (shifted).
	corner := g.At(0, 0)
	if corner.ActualSquare.Min != corner.OriginalSquare.Min {
		t.Fatalf("corner cell's outer Min edge moved: got %+v, want %+v",
			corner.ActualSquare.Min, corner.OriginalSquare.Min)
	}
	if corner.ActualSquare.Max.X >= corner.OriginalSquare.Max.X {
		t.Fatalf("corner cell's internal Max.X edge did not shrink")
	}
	if corner.ActualSquare.Max.Y >= corner.OriginalSquare.Max.Y {
		t.Fatalf("corner cell's internal Max.Y edge did not shrink")
	}
}

func TestTiltRejectsZBelowZMinWhenNotVertical(t *testing.T) {
	g := buildTestGrid(t, 80)
	if err := g.Tilt(-1, 0, 1); err == nil {
		t.Fatalf("expected an error for z < zmin with a non-right wall angle")
	}
}

func TestTiltRejectsShiftExceedingDisplacement(t *testing.T) {
	g := buildTestGrid(t, 80)
	// A huge z relative to zmin, with scaling=1, drives the shift well past
	// the 1000-unit displacement.
	if err := g.Tilt(200000, 0, 1); err == nil {
		t.Fatalf("expected an error when the tilt shift would swallow a cell")
	}
}
