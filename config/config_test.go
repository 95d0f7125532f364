package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	if cfg.World.Size != 20 {
		t.Errorf("world.size = %d, want 20", cfg.World.Size)
	}
	if cfg.Population.InitialPrey != 100 {
		t.Errorf("population.initial_prey = %d, want 100", cfg.Population.InitialPrey)
	}
	if cfg.Population.InitialPredators != 5 {
		t.Errorf("population.initial_predators = %d, want 5", cfg.Population.InitialPredators)
	}
	if cfg.Breeding.PreyTicks != 3 || cfg.Breeding.PredatorTicks != 8 {
		t.Errorf("breeding thresholds = %d/%d, want 3/8", cfg.Breeding.PreyTicks, cfg.Breeding.PredatorTicks)
	}
	if cfg.Starvation.PredatorTicks != 3 {
		t.Errorf("starvation.predator_ticks = %d, want 3", cfg.Starvation.PredatorTicks)
	}
	if cfg.Render.PreyGlyph != "o" || cfg.Render.PredatorGlyph != "X" || cfg.Render.EmptyGlyph != "-" {
		t.Errorf("render glyphs = %q/%q/%q, want o/X/-", cfg.Render.PreyGlyph, cfg.Render.PredatorGlyph, cfg.Render.EmptyGlyph)
	}
	if cfg.Telemetry.WindowTicks != 10 {
		t.Errorf("telemetry.window_ticks = %d, want 10", cfg.Telemetry.WindowTicks)
	}
}

func TestLoadMergesUserFileOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	override := "world:\n  size: 10\nbreeding:\n  prey_ticks: 2\n"
	if err := os.WriteFile(path, []byte(override), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) failed: %v", path, err)
	}

	if cfg.World.Size != 10 {
		t.Errorf("world.size = %d, want 10 from user file", cfg.World.Size)
	}
	if cfg.Breeding.PreyTicks != 2 {
		t.Errorf("breeding.prey_ticks = %d, want 2 from user file", cfg.Breeding.PreyTicks)
	}
	// Untouched fields keep their defaults
	if cfg.Breeding.PredatorTicks != 8 {
		t.Errorf("breeding.predator_ticks = %d, want default 8", cfg.Breeding.PredatorTicks)
	}
	if cfg.Population.InitialPrey != 100 {
		t.Errorf("population.initial_prey = %d, want default 100", cfg.Population.InitialPrey)
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero world size", "world:\n  size: 0\n"},
		{"population exceeds capacity", "world:\n  size: 5\npopulation:\n  initial_prey: 30\n"},
		{"zero breed threshold", "breeding:\n  prey_ticks: 0\n"},
		{"zero starve threshold", "starvation:\n  predator_ticks: 0\n"},
		{"multi-character glyph", "render:\n  prey_glyph: \"ab\"\n"},
		{"zero telemetry window", "telemetry:\n  window_ticks: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Errorf("Load accepted invalid config:\n%s", tt.yaml)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load of a missing file should fail")
	}
}
