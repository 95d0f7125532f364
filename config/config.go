// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	World      WorldConfig      `yaml:"world"`
	Population PopulationConfig `yaml:"population"`
	Breeding   BreedingConfig   `yaml:"breeding"`
	Starvation StarvationConfig `yaml:"starvation"`
	Render     RenderConfig     `yaml:"render"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
}

// WorldConfig holds the lattice dimensions.
type WorldConfig struct {
	Size int `yaml:"size"` // side length of the square lattice
}

// PopulationConfig holds the initial seeding counts.
type PopulationConfig struct {
	InitialPrey      int `yaml:"initial_prey"`
	InitialPredators int `yaml:"initial_predators"`
}

// BreedingConfig holds the per-species reproduction thresholds in ticks.
type BreedingConfig struct {
	PreyTicks     int `yaml:"prey_ticks"`
	PredatorTicks int `yaml:"predator_ticks"`
}

// StarvationConfig holds the predator starvation threshold in ticks.
type StarvationConfig struct {
	PredatorTicks int `yaml:"predator_ticks"`
}

// RenderConfig holds the glyphs used by the textual view.
type RenderConfig struct {
	PreyGlyph     string `yaml:"prey_glyph"`
	PredatorGlyph string `yaml:"predator_glyph"`
	EmptyGlyph    string `yaml:"empty_glyph"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	WindowTicks int `yaml:"window_ticks"`
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if
// path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate rejects configurations the engine cannot run.
func (c *Config) validate() error {
	if c.World.Size < 1 {
		return fmt.Errorf("world.size must be at least 1, got %d", c.World.Size)
	}
	if c.Population.InitialPrey < 0 || c.Population.InitialPredators < 0 {
		return fmt.Errorf("population counts must not be negative")
	}
	capacity := c.World.Size * c.World.Size
	if total := c.Population.InitialPrey + c.Population.InitialPredators; total > capacity {
		return fmt.Errorf("initial population %d exceeds lattice capacity %d", total, capacity)
	}
	if c.Breeding.PreyTicks < 1 || c.Breeding.PredatorTicks < 1 {
		return fmt.Errorf("breeding thresholds must be at least 1 tick")
	}
	if c.Starvation.PredatorTicks < 1 {
		return fmt.Errorf("starvation.predator_ticks must be at least 1, got %d", c.Starvation.PredatorTicks)
	}
	for _, g := range []string{c.Render.PreyGlyph, c.Render.PredatorGlyph, c.Render.EmptyGlyph} {
		if len([]rune(g)) != 1 {
			return fmt.Errorf("render glyphs must be single characters, got %q", g)
		}
	}
	if c.Telemetry.WindowTicks < 1 {
		return fmt.Errorf("telemetry.window_ticks must be at least 1, got %d", c.Telemetry.WindowTicks)
	}
	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
