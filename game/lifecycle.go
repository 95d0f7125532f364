package game

import (
	"fmt"
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/anthill/components"
)

// Initialize seeds the world: predators first, then prey, each placed by
// uniform random position draws retried on collision. Must be called exactly
// once before stepping.
func (g *Game) Initialize() error {
	if g.initialized {
		return fmt.Errorf("world already initialized")
	}

	g.seedSpecies(components.SpeciesPredator, g.cfg.Population.InitialPredators)
	g.seedSpecies(components.SpeciesPrey, g.cfg.Population.InitialPrey)
	g.initialized = true

	slog.Info("world_seeded",
		"size", g.lattice.Size(),
		"prey", g.numPrey,
		"predators", g.numPred,
	)
	return nil
}

// seedSpecies places count organisms on random empty cells. Config
// validation guarantees the population fits, so the retry loop terminates.
func (g *Game) seedSpecies(sp components.Species, count int) {
	size := g.lattice.Size()
	for placed := 0; placed < count; {
		p := components.Position{X: g.rng.Intn(size), Y: g.rng.Intn(size)}
		if _, occupied := g.lattice.Occupant(p); occupied {
			continue
		}
		g.spawnOrganism(p, sp)
		placed++
	}
}

// spawnOrganism creates an organism, registers it in the ECS world and places
// it on the lattice. Creating an entity may relocate component storage, so
// callers must re-fetch any component pointers they hold.
func (g *Game) spawnOrganism(p components.Position, sp components.Species) ecs.Entity {
	id := g.nextID
	g.nextID++

	pos := p
	org := components.Organism{ID: id, Species: sp}
	e := g.mapper.NewEntity(&pos, &org)
	g.lattice.Place(p, e)

	if sp == components.SpeciesPredator {
		g.numPred++
	} else {
		g.numPrey++
	}
	return e
}

// removeFromWorld clears the organism's lattice cell and unregisters it from
// the ECS world as a single operation, preserving the bijection between
// occupied cells and live entities. Component pointers held by callers are
// invalid afterwards.
func (g *Game) removeFromWorld(e ecs.Entity) {
	pos := *g.posMap.Get(e)
	sp := g.orgMap.Get(e).Species

	g.lattice.Clear(pos)
	g.world.RemoveEntity(e)

	if sp == components.SpeciesPredator {
		g.numPred--
	} else {
		g.numPrey--
	}
}

// moveOrganism relocates e between cells and keeps its Position component in
// sync with the lattice.
func (g *Game) moveOrganism(e ecs.Entity, from, to components.Position) {
	g.lattice.Clear(from)
	g.lattice.Place(to, e)
	pos := g.posMap.Get(e)
	pos.X, pos.Y = to.X, to.Y
}
