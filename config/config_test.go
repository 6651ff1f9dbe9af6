package config

import (
	"strings"
	"testing"
)

func TestDecodeOverridesDefaults(t *testing.T) {
	r := strings.NewReader(`{
		"useOrigin": false,
		"min": {"x": 0, "y": 0},
		"max": {"x": 500, "y": 500},
		"displacement": {"x": 200, "y": 200},
		"margin": 15,
		"wallAngle": 85,
		"zmin": 0
	}`)

	cfg, err := Decode(r)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if cfg.Margin != 15 {
		t.Fatalf("Margin = %d, want 15", cfg.Margin)
	}
	if cfg.WallAngle != 85 {
		t.Fatalf("WallAngle = %v, want 85", cfg.WallAngle)
	}
	if cfg.Max.X != 500 {
		t.Fatalf("Max.X = %d, want 500", cfg.Max.X)
	}
}

func TestDecodeRejectsMalformedJSON(t *testing.T) {
	r := strings.NewReader(`{not valid json`)
	if _, err := Decode(r); err == nil {
		t.Fatalf("expected an error decoding malformed JSON")
	}
}
