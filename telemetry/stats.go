// Package telemetry collects windowed population statistics and writes them
// to CSV for offline analysis.
package telemetry

import "gonum.org/v1/gonum/stat"

// WindowStats holds aggregated statistics for a tick window.
type WindowStats struct {
	WindowStartTick int `csv:"-"`
	WindowEndTick   int `csv:"window_end"`

	// Population counts at window end
	PreyCount     int `csv:"prey"`
	PredatorCount int `csv:"predators"`

	// Events during the window
	PreyBirths     int `csv:"prey_births"`
	PredatorBirths int `csv:"predator_births"`
	Kills          int `csv:"kills"`       // prey eaten by predators
	Starvations    int `csv:"starvations"` // predators removed by starvation

	// Population distribution over the window (per-tick samples)
	PreyMean   float64 `csv:"prey_mean"`
	PreyStdDev float64 `csv:"prey_stddev"`
	PredMean   float64 `csv:"pred_mean"`
	PredStdDev float64 `csv:"pred_stddev"`
}

// ComputePopulationStats returns the mean and standard deviation of the
// per-tick population samples in a window. Returns zeros for an empty
// sample set; the deviation of a single sample is zero.
func ComputePopulationStats(samples []float64) (mean, stddev float64) {
	if len(samples) == 0 {
		return 0, 0
	}
	mean = stat.Mean(samples, nil)
	if len(samples) > 1 {
		stddev = stat.StdDev(samples, nil)
	}
	return mean, stddev
}
