package telemetry

import "github.com/pthm-cable/anthill/components"

// Collector accumulates events within tick windows and produces WindowStats.
type Collector struct {
	windowTicks     int
	windowStartTick int

	// Event counters for the current window
	preyBirths     int
	predatorBirths int
	kills          int
	starvations    int

	// Per-tick population samples for the current window
	preySamples []float64
	predSamples []float64
}

// NewCollector creates a stats collector that closes a window every
// windowTicks ticks.
func NewCollector(windowTicks int) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{windowTicks: windowTicks}
}

// RecordBirth records a breeding event for the given species.
func (c *Collector) RecordBirth(sp components.Species) {
	if sp == components.SpeciesPredator {
		c.predatorBirths++
	} else {
		c.preyBirths++
	}
}

// RecordKill records a prey being eaten.
func (c *Collector) RecordKill() {
	c.kills++
}

// RecordStarvation records a predator starving to death.
func (c *Collector) RecordStarvation() {
	c.starvations++
}

// ObservePopulation samples the population counts at the end of a tick.
func (c *Collector) ObservePopulation(prey, predators int) {
	c.preySamples = append(c.preySamples, float64(prey))
	c.predSamples = append(c.predSamples, float64(predators))
}

// ShouldFlush reports whether enough ticks have passed to close the window.
func (c *Collector) ShouldFlush(currentTick int) bool {
	return currentTick-c.windowStartTick >= c.windowTicks
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick, preyCount, predatorCount int) WindowStats {
	preyMean, preyStd := ComputePopulationStats(c.preySamples)
	predMean, predStd := ComputePopulationStats(c.predSamples)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,

		PreyCount:     preyCount,
		PredatorCount: predatorCount,

		PreyBirths:     c.preyBirths,
		PredatorBirths: c.predatorBirths,
		Kills:          c.kills,
		Starvations:    c.starvations,

		PreyMean:   preyMean,
		PreyStdDev: preyStd,
		PredMean:   predMean,
		PredStdDev: predStd,
	}

	c.windowStartTick = currentTick
	c.preyBirths = 0
	c.predatorBirths = 0
	c.kills = 0
	c.starvations = 0
	c.preySamples = c.preySamples[:0]
	c.predSamples = c.predSamples[:0]

	return stats
}
