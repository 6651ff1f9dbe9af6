package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jdfr/pathsplitter/config"
	"github.com/jdfr/pathsplitter/mesh"
	"github.com/jdfr/pathsplitter/pathsplitter"
)

var (
	cubesConfigPath string
	cubesScaling    float64
	cubesZMin       float64
	cubesZMax       float64
)

var cubesCmd = &cobra.Command{
	Use:   "cubes",
	Short: "Emit the grid's cell windows as a triangle mesh, as JSON",
	RunE:  runCubes,
}

func init() {
	cubesCmd.Flags().StringVar(&cubesConfigPath, "config", "", "path to a grid config JSON file (required)")
	cubesCmd.Flags().Float64Var(&cubesScaling, "scaling", 1, "units-per-coordinate scaling factor")
	cubesCmd.Flags().Float64Var(&cubesZMin, "zmin", 0, "bottom Z of the emitted cubes")
	cubesCmd.Flags().Float64Var(&cubesZMax, "zmax", 1, "top Z of the emitted cubes")
	cubesCmd.MarkFlagRequired("config")
}

func runCubes(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load(cubesConfigPath)
	if err != nil {
		return err
	}

	splitter := pathsplitter.New(cfg)
	if err := splitter.Setup(ctx); err != nil {
		return err
	}

	cubes := mesh.GenerateGridCubes(splitter.Grid.Cells, cubesScaling, cubesZMin, cubesZMax)

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(cubes); err != nil {
		return fmt.Errorf("encoding cube mesh: %w", err)
	}
	return nil
}
