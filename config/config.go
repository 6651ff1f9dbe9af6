// Package config loads a grid.Config from JSON (spec §3 ADD), following
// this module's ambient convention of plain structs with json tags and no
// extra configuration-file library (grounded on
// eng618-parable-bloom/tools/level-builder/pkg/generator/config.go, which
// reads the same way: tagged structs decoded straight from encoding/json).
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jdfr/pathsplitter/grid"
)

// Load reads a grid.Config from the JSON file at path, starting from
// grid.DefaultConfig so an input file only needs to override what it cares
// about.
func Load(path string) (grid.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return grid.Config{}, fmt.Errorf("opening config %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a grid.Config as JSON from r.
func Decode(r io.Reader) (grid.Config, error) {
	cfg := grid.DefaultConfig
	dec := json.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil {
		return grid.Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}
