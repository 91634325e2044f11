// Package metrics derives summary statistics from the persistence
// buffer, giving hosts a cheap per-frame activity signal without
// scanning the output image themselves.
package metrics

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// activeLevel is the persistence intensity above which a pixel counts
// as carrying visible motion. One intensity step keeps fully decayed
// trails out of the active fraction.
const activeLevel = 1.0

// Stats summarizes the state of a persistence buffer after a frame.
// Values are in the buffer's native 0-255 intensity domain.
type Stats struct {
	// Mean is the average trail intensity over all pixels.
	Mean float64

	// Peak is the brightest trail intensity.
	Peak float64

	// StdDev is the sample standard deviation of trail intensity.
	StdDev float64

	// ActiveFraction is the share of pixels above the activity level,
	// in [0, 1].
	ActiveFraction float64
}

// Compute summarizes a persistence buffer.
func Compute(persistence []float32) Stats {
	if len(persistence) == 0 {
		return Stats{}
	}

	values := make([]float64, len(persistence))
	active := 0
	for i, v := range persistence {
		values[i] = float64(v)
		if v > activeLevel {
			active++
		}
	}

	mean, std := stat.MeanStdDev(values, nil)
	if len(values) < 2 {
		std = 0
	}

	return Stats{
		Mean:           mean,
		Peak:           floats.Max(values),
		StdDev:         std,
		ActiveFraction: float64(active) / float64(len(values)),
	}
}
