// Package distribute assigns one layer's paths into the grid's cells
// (spec §4.4 OpenSegmentDistributor, §4.5/§4.6). Closed paths are always
// fully clipped against every cell; open paths take a faster route that
// only falls back to clipping for the segments that actually cross a cell
// boundary.
package distribute

import (
	"context"

	"github.com/jdfr/pathsplitter/geom"
	"github.com/jdfr/pathsplitter/grid"
)

// Clipper intersects a subject path set against a single cell's window.
// clipwrap.Applier implements this for both path families; ClipClosed is
// also the sole clipping route for closed paths, which get no fast path.
type Clipper interface {
	ClipClosed(ctx context.Context, window geom.Rect, subject geom.Paths) (geom.Paths, error)
	ClipOpen(ctx context.Context, window geom.Rect, subject geom.Paths) (geom.Paths, error)
}

// Distribute assigns paths into g's cells for one layer. g.Tilt must
// already have been called for this layer so every cell's ActualSquare is
// current and its Paths slice has been cleared; Distribute only appends.
// Distribute assumes a multi-cell grid: PathSplitter.ProcessPaths takes the
// single-cell shortcut itself and never calls Distribute in that case,
// matching original_source/multi/pathsplitter.cpp's processPaths.
func Distribute(ctx context.Context, g *grid.Grid, clipper Clipper, paths geom.Paths, closed bool) error {
	if len(paths) == 0 {
		return nil
	}
	if closed {
		return distributeClosed(ctx, g, clipper, paths)
	}
	return distributeOpen(ctx, g, clipper, paths)
}

// distributeClosed clips the whole path set against every cell window in
// turn (original_source/multi/pathsplitter.cpp: clipPaths(..., pathsClosed=true, ...)).
// There is no fast path for closed geometry: a closed path can wind through
// a cell's window in ways a simple containment sweep can't safely shortcut.
func distributeClosed(ctx context.Context, g *grid.Grid, clipper Clipper, paths geom.Paths) error {
	for x := 0; x < g.NumX; x++ {
		for y := 0; y < g.NumY; y++ {
			cell := g.At(x, y)
			result, err := clipper.ClipClosed(ctx, cell.ActualSquare, paths)
			if err != nil {
				return err
			}
			cell.Paths = append(cell.Paths, result...)
		}
	}
	return nil
}
