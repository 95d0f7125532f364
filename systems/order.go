package systems

import (
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/anthill/components"
)

// ShufflePositions permutes ps in place as a uniform random permutation drawn
// from rng. The engine owns a single rng seeded once per process; every
// shuffle point in the simulation goes through these helpers, so a fixed seed
// reproduces a run exactly.
func ShufflePositions(rng *rand.Rand, ps []components.Position) {
	rng.Shuffle(len(ps), func(i, j int) {
		ps[i], ps[j] = ps[j], ps[i]
	})
}

// ShuffleEntities permutes es in place. Used for the per-tick visitation
// order of the whole population.
func ShuffleEntities(rng *rand.Rand, es []ecs.Entity) {
	rng.Shuffle(len(es), func(i, j int) {
		es[i], es[j] = es[j], es[i]
	})
}
