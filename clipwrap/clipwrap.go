// Package clipwrap adapts github.com/ctessum/go.clipper's polygon clipper
// to the geom.Path/geom.Paths vocabulary used throughout this module (spec
// §4.9). It is the only package that imports the clipper library directly;
// everything else depends on the distribute.Clipper interface.
package clipwrap

import (
	"context"

	clipper "github.com/ctessum/go.clipper"

	"github.com/jdfr/pathsplitter/geom"
	"github.com/jdfr/pathsplitter/pserrors"
)

// Applier clips subject geometry against a rectangular window using the
// external clipper library. Create one with NewApplier: the zero value
// holds no clipper and cannot clip a non-empty subject. A single
// Applier is not safe for concurrent use, since it reuses one
// clipper.Clipper across calls (mirroring the original's single
// res->clipper instance reused per layer).
type Applier struct {
	clip *clipper.Clipper
}

// NewApplier returns a ready-to-use Applier.
func NewApplier() *Applier {
	return &Applier{clip: clipper.NewClipper(clipper.IoNone)}
}

// ClipClosed intersects subject (closed paths) against window, returning
// the resulting closed paths (original_source/multi/pathsplitter.cpp:
// clipPaths with subjectClosed=true).
func (a *Applier) ClipClosed(ctx context.Context, window geom.Rect, subject geom.Paths) (geom.Paths, error) {
	return a.clip2(window, subject, true)
}

// ClipOpen intersects subject (open polylines, already known to cross
// window's boundary) against window, returning the resulting open paths
// (original_source/multi/pathsplitter.cpp: clipPaths with
// subjectClosed=false, via OpenPathsFromPolyTree).
func (a *Applier) ClipOpen(ctx context.Context, window geom.Rect, subject geom.Paths) (geom.Paths, error) {
	return a.clip2(window, subject, false)
}

func (a *Applier) clip2(window geom.Rect, subject geom.Paths, subjectClosed bool) (geom.Paths, error) {
	if len(subject) == 0 {
		return nil, nil
	}

	a.clip.Clear()
	a.clip.AddPath(toClipperPath(window.AsPath()), clipper.PtClip, true)
	a.clip.AddPaths(toClipperPaths(subject), clipper.PtSubject, subjectClosed)

	tree, ok := a.clip.Execute2(clipper.CtIntersection, clipper.PftNonZero, clipper.PftNonZero)
	if !ok {
		return nil, pserrors.NewClipperError("clipper execution failed", nil)
	}

	var result geom.Paths
	if subjectClosed {
		result = closedContours(tree)
	} else {
		result = openContours(tree)
	}
	return result, nil
}

// closedContours collects every contour in the tree: for a closed-subject
// intersection against a convex window, each top-level child (and its
// descendants, which represent holes carved by nested clip structure) is a
// piece of the result.
func closedContours(tree *clipper.PolyTree) geom.Paths {
	var out geom.Paths
	var walk func(node *clipper.PolyNode)
	walk = func(node *clipper.PolyNode) {
		out = append(out, fromClipperPath(node.Contour()))
		for _, child := range node.Childs() {
			walk(child)
		}
	}
	for _, child := range tree.Childs() {
		walk(child)
	}
	return out
}

// openContours collects only the contours the clipper marked as open,
// mirroring the original's OpenPathsFromPolyTree.
func openContours(tree *clipper.PolyTree) geom.Paths {
	var out geom.Paths
	var walk func(node *clipper.PolyNode)
	walk = func(node *clipper.PolyNode) {
		if node.IsOpen() {
			out = append(out, fromClipperPath(node.Contour()))
		}
		for _, child := range node.Childs() {
			walk(child)
		}
	}
	for _, child := range tree.Childs() {
		walk(child)
	}
	return out
}

func toClipperPath(p geom.Path) clipper.Path {
	out := make(clipper.Path, len(p))
	for i, pt := range p {
		out[i] = &clipper.IntPoint{X: clipper.CInt(pt.X), Y: clipper.CInt(pt.Y)}
	}
	return out
}

func toClipperPaths(ps geom.Paths) clipper.Paths {
	out := make(clipper.Paths, len(ps))
	for i, p := range ps {
		out[i] = toClipperPath(p)
	}
	return out
}

func fromClipperPath(p clipper.Path) geom.Path {
	out := make(geom.Path, len(p))
	for i, pt := range p {
		out[i] = geom.Point{X: int64(pt.X), Y: int64(pt.Y)}
	}
	return out
}
