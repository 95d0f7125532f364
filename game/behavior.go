package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/anthill/components"
	"github.com/pthm-cable/anthill/systems"
)

// takeTurn dispatches one entity's turn to its species rule.
func (g *Game) takeTurn(e ecs.Entity) {
	if g.orgMap.Get(e).Species == components.SpeciesPredator {
		g.predatorTurn(e)
	} else {
		g.preyTurn(e)
	}
}

// preyTurn runs a prey's turn: move into the first empty neighbor in
// shuffled order (staying put if none), then increment the breed counter and
// attempt one offspring placement at the threshold.
//
// The neighbor list is computed once from the pre-move position and reused
// (reshuffled) for the breed scan; offspring are therefore placed adjacent
// to where the parent started its turn.
func (g *Game) preyTurn(e ecs.Entity) {
	pos := *g.posMap.Get(e)
	neighbors := g.lattice.Neighbors4(pos)

	systems.ShufflePositions(g.rng, neighbors)
	for _, n := range neighbors {
		if _, occupied := g.lattice.Occupant(n); !occupied {
			g.moveOrganism(e, pos, n)
			break
		}
	}

	org := g.orgMap.Get(e)
	org.Breed++
	if org.Breed < g.cfg.Breeding.PreyTicks {
		return
	}

	systems.ShufflePositions(g.rng, neighbors)
	for _, n := range neighbors {
		if _, occupied := g.lattice.Occupant(n); !occupied {
			g.spawnOrganism(n, components.SpeciesPrey)
			g.collector.RecordBirth(components.SpeciesPrey)
			break
		}
	}

	// The counter resets whether or not a free cell was found. Spawning may
	// have moved component storage, so re-fetch.
	g.orgMap.Get(e).Breed = 0
}

// predatorTurn runs a predator's turn: starvation check first, then eat the
// first adjacent prey in shuffled order, otherwise move; the starve counter
// tracks consecutive turns without feeding, regardless of whether a move
// happened. Breeding works as for prey.
func (g *Game) predatorTurn(e ecs.Entity) {
	org := g.orgMap.Get(e)
	if org.Starve >= g.cfg.Starvation.PredatorTicks {
		g.removeFromWorld(e)
		g.collector.RecordStarvation()
		return
	}

	pos := *g.posMap.Get(e)
	neighbors := g.lattice.Neighbors4(pos)

	systems.ShufflePositions(g.rng, neighbors)
	fed := false
	for _, n := range neighbors {
		prey, occupied := g.lattice.Occupant(n)
		if !occupied || g.orgMap.Get(prey).Species != components.SpeciesPrey {
			continue
		}
		g.removeFromWorld(prey)
		g.collector.RecordKill()
		g.moveOrganism(e, pos, n)
		// Removal may have moved this entity's storage; re-fetch.
		g.orgMap.Get(e).Starve = 0
		fed = true
		break
	}

	if !fed {
		systems.ShufflePositions(g.rng, neighbors)
		for _, n := range neighbors {
			if _, occupied := g.lattice.Occupant(n); !occupied {
				g.moveOrganism(e, pos, n)
				break
			}
		}
		g.orgMap.Get(e).Starve++
	}

	org = g.orgMap.Get(e)
	org.Breed++
	if org.Breed < g.cfg.Breeding.PredatorTicks {
		return
	}

	systems.ShufflePositions(g.rng, neighbors)
	for _, n := range neighbors {
		if _, occupied := g.lattice.Occupant(n); !occupied {
			g.spawnOrganism(n, components.SpeciesPredator)
			g.collector.RecordBirth(components.SpeciesPredator)
			break
		}
	}

	g.orgMap.Get(e).Breed = 0
}
