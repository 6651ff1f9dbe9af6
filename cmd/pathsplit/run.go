package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jdfr/pathsplitter/config"
	"github.com/jdfr/pathsplitter/geom"
	"github.com/jdfr/pathsplitter/pathsplitter"
)

var (
	runConfigPath string
	runPathsPath  string
	runZ          float64
	runScaling    float64
)

// inputPaths is the on-disk shape accepted by --paths: a single path set
// plus whether every path in it is closed.
type inputPaths struct {
	Closed bool      `json:"closed"`
	Paths  geom.Paths `json:"paths"`
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Split one layer's paths into the configured grid and print a summary",
	RunE:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&runConfigPath, "config", "", "path to a grid config JSON file (required)")
	runCmd.Flags().StringVar(&runPathsPath, "paths", "", "path to an input paths JSON file (required)")
	runCmd.Flags().Float64Var(&runZ, "z", 0, "layer height")
	runCmd.Flags().Float64Var(&runScaling, "scaling", 1, "units-per-coordinate scaling factor")
	runCmd.MarkFlagRequired("config")
	runCmd.MarkFlagRequired("paths")
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load(runConfigPath)
	if err != nil {
		return err
	}

	f, err := os.Open(runPathsPath)
	if err != nil {
		return fmt.Errorf("opening paths file: %w", err)
	}
	defer f.Close()

	var in inputPaths
	if err := json.NewDecoder(f).Decode(&in); err != nil {
		return fmt.Errorf("decoding paths file: %w", err)
	}

	splitter := pathsplitter.New(cfg)
	if err := splitter.Setup(ctx); err != nil {
		return err
	}
	if err := splitter.ProcessPaths(ctx, in.Paths, in.Closed, runZ, runScaling); err != nil {
		return err
	}

	for x := 0; x < splitter.Grid.NumX; x++ {
		for y := 0; y < splitter.Grid.NumY; y++ {
			cell := splitter.Grid.At(x, y)
			if len(cell.Paths) == 0 {
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "cell (%d,%d): %d paths\n", x, y, len(cell.Paths))
		}
	}

	return nil
}
