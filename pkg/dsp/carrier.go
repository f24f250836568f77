package dsp

import "math"

// Carrier multiples of pi per time unit.
const (
	carrierFactor   = 4
	carrierFMFirst  = 5
	carrierFMSecond = 3
)

// carrier samples sin(i * sampleInterval * factor * pi) over the whole grid.
// It only depends on the sample count and interval, never on the digit timing.
func carrier(grid Grid, factor float64) []float64 {
	out := make([]float64, grid.SampleCount())
	step := grid.SampleInterval() * factor * math.Pi
	for i := range out {
		out[i] = math.Sin(float64(i) * step)
	}

	return out
}
