package grid

import (
	"context"
	"log/slog"
	"math"

	"github.com/jdfr/pathsplitter/geom"
)

// SnapPoint maps a world-space point to the (x,y) index of the cell whose
// center window owns it (spec §4.3 Snapper). Points outside
// [0,NumX)x[0,NumY) are clamped to the nearest valid index and logged,
// mirroring the original clamp-and-warn behavior
// (original_source/multi/pathsplitter.cpp, keepWithinBounds) rather than
// failing the whole layer over one stray point.
func (g *Grid) SnapPoint(ctx context.Context, p geom.Point) (int, int) {
	fx := (float64(p.X) - g.Snap.ShiftX) / g.Snap.GridStepX
	fy := (float64(p.Y) - g.Snap.ShiftY) / g.Snap.GridStepY

	x := int(math.Floor(fx + 0.5))
	y := int(math.Floor(fy + 0.5))

	return g.clamp(ctx, x, y)
}

// clamp restricts (x,y) to the valid cell index range, logging a warning
// once for each axis it has to move the point along.
func (g *Grid) clamp(ctx context.Context, x, y int) (int, int) {
	cx, cy := x, y
	if cx < 0 {
		cx = 0
	} else if cx >= g.NumX {
		cx = g.NumX - 1
	}
	if cy < 0 {
		cy = 0
	} else if cy >= g.NumY {
		cy = g.NumY - 1
	}
	if logger := slog.Default(); logger != nil {
		if cx != x {
			logger.WarnContext(ctx, "snapped point fell outside the grid on X, clamping",
				slog.Int("x", x), slog.Int("clampedX", cx))
		}
		if cy != y {
			logger.WarnContext(ctx, "snapped point fell outside the grid on Y, clamping",
				slog.Int("y", y), slog.Int("clampedY", cy))
		}
	}
	return cx, cy
}
