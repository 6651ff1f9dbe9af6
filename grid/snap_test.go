package grid

import (
	"context"
	"testing"

	"github.com/jdfr/pathsplitter/geom"
)

func TestSnapPointCenterOfCell(t *testing.T) {
	g := buildTestGrid(t, 90)
	// The grid covers [0,3000]x[0,2000] with a 1000x1000 displacement, so
	// cell (1,1)'s center is (1500,1500).
	x, y := g.SnapPoint(context.Background(), geom.Point{X: 1500, Y: 1500})
	if x != 1 || y != 1 {
		t.Fatalf("SnapPoint(1500,1500) = (%d,%d), want (1,1)", x, y)
	}
}

func TestSnapPointClampsOutOfRange(t *testing.T) {
	g := buildTestGrid(t, 90)
	x, y := g.SnapPoint(context.Background(), geom.Point{X: -100000, Y: 100000})
	if x != 0 {
		t.Fatalf("x = %d, want clamped to 0", x)
	}
	if y != g.NumY-1 {
		t.Fatalf("y = %d, want clamped to %d", y, g.NumY-1)
	}
}
