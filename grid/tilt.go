package grid

import (
	"github.com/jdfr/pathsplitter/pserrors"
)

// Tilt computes each cell's ActualSquare for layer z (spec §4.2
// SquareTilter) and clears each cell's Paths, ready for a fresh
// ProcessPaths call. scaling converts the tilt's physical units into the
// grid's integer coordinate units.
// Tilt assumes a multi-cell grid: PathSplitter.ProcessPaths takes the
// single-cell shortcut itself and never calls Tilt in that case (spec
// §4.8), matching original_source/multi/pathsplitter.cpp's processPaths,
// where the justone branch returns before setupSquares runs at all.
func (g *Grid) Tilt(z, zmin, scaling float64) error {
	if z < zmin && !g.Angle90 {
		return pserrors.NewLayerGeometryError(
			"z=%g < zmin=%g, which is illegal for a non-right wall angle", z, zmin)
	}

	var shiftX, shiftY int64
	if !g.Angle90 {
		shift := int64(g.SinAngle * (z - zmin) / scaling)
		if shift >= g.config.Displacement.X {
			return pserrors.NewLayerGeometryError(
				"wall angle too steep or z=%g too far from zmin=%g (X): shift %d >= displacement.X %d",
				z, zmin, shift, g.config.Displacement.X)
		}
		if shift >= g.config.Displacement.Y {
			return pserrors.NewLayerGeometryError(
				"wall angle too steep or z=%g too far from zmin=%g (Y): shift %d >= displacement.Y %d",
				z, zmin, shift, g.config.Displacement.Y)
		}
		if !g.SingleX {
			shiftX = shift
		}
		if !g.SingleY {
			shiftY = shift
		}
	}

	for x := 0; x < g.NumX; x++ {
		notFirstX := x > 0
		notLastX := x < g.NumX-1
		for y := 0; y < g.NumY; y++ {
			notFirstY := y > 0
			notLastY := y < g.NumY-1

			cell := g.At(x, y)
			cell.Paths = cell.Paths[:0]
			sq := cell.OriginalSquare
			if !g.Angle90 {
				// Only internal edges (shared with a neighbor) shrink; outer
				// boundary edges never move. Because the same coordinate
				// backs two adjacent corners on each side (spec §4.2's
				// corner table collapses to this once corner pairing is
				// accounted for), shrinking is expressed directly on the
				// rectangle's Min/Max rather than per corner.
				if notFirstX {
					sq.Min.X -= shiftX
				}
				if notFirstY {
					sq.Min.Y -= shiftY
				}
				if notLastX {
					sq.Max.X -= shiftX
				}
				if notLastY {
					sq.Max.Y -= shiftY
				}
			}
			cell.ActualSquare = sq
		}
	}

	return nil
}
