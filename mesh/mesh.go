// Package mesh turns a grid's cell windows into triangle meshes for
// visualization and export (spec §4.11, mirroring
// original_source/multi/pathsplitter.cpp's generateGridCubeTriangles/
// generateGridCubePoints/PathSplitter::generateGridCubes). It is never
// consumed by the splitting engine itself.
package mesh

import (
	"github.com/jdfr/pathsplitter/geom"
	"github.com/jdfr/pathsplitter/grid"
)

// Point3 is a 3D point in the mesh's output units (already scaled; Z holds
// a layer boundary rather than a grid coordinate).
type Point3 struct {
	X, Y, Z float64
}

// Triangle indexes three corners of a TriangleMesh's Points.
type Triangle struct {
	A, B, C int
}

// TriangleMesh is one cell's box: 8 corners (4 bottom, 4 top) and the 12
// triangles of a closed cuboid.
type TriangleMesh struct {
	Points    []Point3
	Triangles []Triangle
}

// cubeTriangles is the fixed indexing over the 8-corner layout built by
// cubePoints: [0,1,2,3] the bottom face (xmin/ymin, xmax/ymin, xmin/ymax,
// xmax/ymax) and [4,5,6,7] the same four corners at the top.
func cubeTriangles() []Triangle {
	return []Triangle{
		{0, 2, 1}, {1, 2, 3},
		{0, 4, 6}, {0, 6, 2},
		{1, 3, 5}, {3, 7, 5},
		{1, 5, 0}, {0, 5, 4},
		{2, 6, 3}, {3, 6, 7},
		{4, 7, 6}, {4, 5, 7},
	}
}

func cubePoints(window geom.Rect, scaling, zmin, zmax float64) []Point3 {
	xmin := float64(window.Min.X) * scaling
	ymin := float64(window.Min.Y) * scaling
	xmax := float64(window.Max.X) * scaling
	ymax := float64(window.Max.Y) * scaling
	return []Point3{
		{xmin, ymin, zmin},
		{xmax, ymin, zmin},
		{xmin, ymax, zmin},
		{xmax, ymax, zmin},
		{xmin, ymin, zmax},
		{xmax, ymin, zmax},
		{xmin, ymax, zmax},
		{xmax, ymax, zmax},
	}
}

// GenerateGridCubes builds one TriangleMesh per cell's OriginalSquare, in
// the same row-major X-outer order the grid uses for indexing (spec §6,
// §4.11). It uses OriginalSquare rather than ActualSquare: the mesh
// represents the grid's static layout, not a particular layer's tilted
// windows.
func GenerateGridCubes(cells []grid.Cell, scaling, zmin, zmax float64) []TriangleMesh {
	trs := cubeTriangles()
	out := make([]TriangleMesh, len(cells))
	for i, c := range cells {
		out[i] = TriangleMesh{
			Points:    cubePoints(c.OriginalSquare, scaling, zmin, zmax),
			Triangles: trs,
		}
	}
	return out
}
