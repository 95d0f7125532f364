// Package game implements the simulation engine: the world state, the
// per-tick update protocol, and the textual view exposed to drivers.
package game

import (
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/anthill/components"
	"github.com/pthm-cable/anthill/config"
	"github.com/pthm-cable/anthill/systems"
	"github.com/pthm-cable/anthill/telemetry"
)

// Options configures a new Game.
type Options struct {
	Seed      int64
	Cfg       *config.Config // nil = use config.Cfg()
	LogStats  bool
	OutputDir string
}

// Game holds the complete simulation state: the ECS world that owns every
// organism, the lattice indexing them by position, and the age counter.
//
// All mutation happens inside Initialize and Step; a tick is atomic from the
// driver's point of view.
type Game struct {
	cfg *config.Config

	world  *ecs.World
	rng    *rand.Rand
	mapper *ecs.Map2[components.Position, components.Organism]
	filter *ecs.Filter2[components.Position, components.Organism]
	posMap *ecs.Map1[components.Position]
	orgMap *ecs.Map1[components.Organism]

	lattice *systems.Lattice

	age         int
	initialized bool
	nextID      uint32
	numPrey     int
	numPred     int

	collector *telemetry.Collector
	output    *telemetry.OutputManager
	logStats  bool
}

// NewGame creates an empty world. Initialize must be called exactly once
// before the first Step.
func NewGame(opts Options) (*Game, error) {
	cfg := opts.Cfg
	if cfg == nil {
		cfg = config.Cfg()
	}

	world := ecs.NewWorld()

	g := &Game{
		cfg:       cfg,
		world:     world,
		rng:       rand.New(rand.NewSource(opts.Seed)),
		mapper:    ecs.NewMap2[components.Position, components.Organism](world),
		filter:    ecs.NewFilter2[components.Position, components.Organism](world),
		posMap:    ecs.NewMap1[components.Position](world),
		orgMap:    ecs.NewMap1[components.Organism](world),
		lattice:   systems.NewLattice(cfg.World.Size),
		collector: telemetry.NewCollector(cfg.Telemetry.WindowTicks),
		logStats:  opts.LogStats,
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	g.output = output
	if err := g.output.WriteConfig(cfg); err != nil {
		return nil, err
	}

	return g, nil
}

// Age returns the number of completed ticks.
func (g *Game) Age() int {
	return g.age
}

// PreyCount returns the number of live prey.
func (g *Game) PreyCount() int {
	return g.numPrey
}

// PredatorCount returns the number of live predators.
func (g *Game) PredatorCount() int {
	return g.numPred
}

// Close releases the telemetry output files, if any.
func (g *Game) Close() error {
	return g.output.Close()
}
