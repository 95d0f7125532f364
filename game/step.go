package game

import (
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/anthill/systems"
)

// Step advances the world by exactly one tick.
//
// The live-entity set is snapshotted and shuffled before any turn runs, so
// mid-tick mutation cannot skip or duplicate turns: entities destroyed
// earlier in the tick fail the liveness re-check and are skipped, and
// entities born during the tick are not in the snapshot at all. The age
// counter increments once, after every snapshotted entity has been visited
// or skipped.
func (g *Game) Step() {
	snapshot := make([]ecs.Entity, 0, g.numPrey+g.numPred)
	query := g.filter.Query()
	for query.Next() {
		snapshot = append(snapshot, query.Entity())
	}
	systems.ShuffleEntities(g.rng, snapshot)

	for _, e := range snapshot {
		if !g.world.Alive(e) {
			continue
		}
		g.takeTurn(e)
	}

	g.age++

	g.collector.ObservePopulation(g.numPrey, g.numPred)
	if g.collector.ShouldFlush(g.age) {
		g.flushTelemetry()
	}
}

// flushTelemetry closes the current stats window and emits it.
func (g *Game) flushTelemetry() {
	stats := g.collector.Flush(g.age, g.numPrey, g.numPred)

	if g.logStats {
		slog.Info("window_stats",
			"window_end", stats.WindowEndTick,
			"prey", stats.PreyCount,
			"predators", stats.PredatorCount,
			"prey_births", stats.PreyBirths,
			"predator_births", stats.PredatorBirths,
			"kills", stats.Kills,
			"starvations", stats.Starvations,
		)
	}

	if err := g.output.WriteWindow(stats); err != nil {
		slog.Error("telemetry_write_failed", "error", err)
	}
}
