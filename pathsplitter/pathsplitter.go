// Package pathsplitter is the entry point other code should use: it wires
// grid, distribute, clipwrap, and motion together into the same two-call
// shape as the system it's grounded on
// (original_source/multi/pathsplitter.cpp: PathSplitter::setup +
// PathSplitter::processPaths).
package pathsplitter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jdfr/pathsplitter/clipwrap"
	"github.com/jdfr/pathsplitter/diag"
	"github.com/jdfr/pathsplitter/distribute"
	"github.com/jdfr/pathsplitter/geom"
	"github.com/jdfr/pathsplitter/grid"
	"github.com/jdfr/pathsplitter/motion"
)

// PathSplitter partitions successive layers' paths into a grid's cells. It
// is not safe for concurrent use: ProcessPaths mutates the grid's cells in
// place and reuses one clipper.Clipper internally (spec §5).
type PathSplitter struct {
	Grid    *grid.Grid
	Clipper distribute.Clipper
	Planner motion.Planner
	Diag    diag.Sink

	config grid.Config
	done   bool
}

// New returns a PathSplitter with the default clipper adapter and
// nearest-neighbor motion planner, ready for Setup.
func New(cfg grid.Config) *PathSplitter {
	return &PathSplitter{
		Clipper: clipwrap.NewApplier(),
		Planner: motion.NearestNeighborPlanner{},
		Diag:    diag.Default,
		config:  cfg,
	}
}

// Setup builds the grid from the configuration passed to New. It is
// idempotent: a second call after the first succeeds returns immediately
// without doing any work (original_source: PathSplitter::setup's
// setup_done guard).
func (s *PathSplitter) Setup(ctx context.Context) error {
	if s.done {
		return nil
	}
	g, err := grid.Build(ctx, s.config)
	if err != nil {
		return fmt.Errorf("path splitter setup: %w", err)
	}
	s.Grid = g
	s.done = true

	if s.Diag != nil {
		var squares geom.Paths
		for _, cell := range g.Cells {
			squares = append(squares, cell.OriginalSquare.AsPath())
		}
		s.Diag.ShowContours(ctx, "PathSplitter squares", squares)
	}

	return nil
}

// ProcessPaths splits one layer's paths into the grid's cells, at height z
// with the given scaling factor (original_source:
// PathSplitter::processPaths). Setup must have been called first.
func (s *PathSplitter) ProcessPaths(ctx context.Context, paths geom.Paths, pathsClosed bool, z, scaling float64) error {
	if !s.done {
		return fmt.Errorf("path splitter: ProcessPaths called before Setup")
	}

	if s.Grid.JustOne {
		cell := s.Grid.At(0, 0)
		cell.ActualSquare = cell.OriginalSquare
		cell.Paths = append(cell.Paths[:0], paths...)
	} else {
		if err := s.Grid.Tilt(z, s.config.ZMin, scaling); err != nil {
			return fmt.Errorf("path splitter: %w", err)
		}
		if err := distribute.Distribute(ctx, s.Grid, s.Clipper, paths, pathsClosed); err != nil {
			return fmt.Errorf("path splitter: %w", err)
		}
	}

	if s.config.ApplyMotionPlanning {
		s.applyMotionPlanning(pathsClosed)
	}

	if logger := slog.Default(); logger != nil {
		logger.DebugContext(ctx, "path splitter processed layer",
			slog.Float64("z", z), slog.Int("inputPaths", len(paths)))
	}

	return nil
}

// applyMotionPlanning reorders every non-empty cell's paths, since clipping
// scrambles path ordering (original_source:
// PathSplitter::applyMotionPlanning).
func (s *PathSplitter) applyMotionPlanning(pathsClosed bool) {
	for i := range s.Grid.Cells {
		cell := &s.Grid.Cells[i]
		if len(cell.Paths) == 0 {
			continue
		}
		s.Planner.Plan(&cell.Motion, pathsClosed, cell.Paths)
	}
}
