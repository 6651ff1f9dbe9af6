// Package diag provides a seam for visualizing intermediate geometry
// (spec §4.12), matching the SHOWCONTOURS call in
// original_source/multi/pathsplitter.cpp that renders the grid's squares
// right after construction. The default Sink just logs a summary; a real
// renderer can be substituted by implementing Sink.
package diag

import (
	"context"
	"log/slog"

	"github.com/jdfr/pathsplitter/geom"
)

// Sink receives a named snapshot of contours for diagnostic visualization.
type Sink interface {
	ShowContours(ctx context.Context, name string, paths geom.Paths)
}

// SlogSink is the default Sink: it logs a structured summary instead of
// rendering anything.
type SlogSink struct{}

// ShowContours logs the path count and total point count under name.
func (SlogSink) ShowContours(ctx context.Context, name string, paths geom.Paths) {
	points := 0
	for _, p := range paths {
		points += len(p)
	}
	if logger := slog.Default(); logger != nil {
		logger.DebugContext(ctx, "diagnostic contour snapshot",
			slog.String("name", name), slog.Int("paths", len(paths)), slog.Int("points", points))
	}
}

// Default is the Sink used when a caller doesn't supply its own.
var Default Sink = SlogSink{}
