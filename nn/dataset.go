package nn

import "math"

// BuildSineDataset draws n samples uniformly from [0, pi/2] and labels them
// with sin(x), the toy regression problem sine.cc trains against.
func BuildSineDataset(n int, src interface{ Float64() float64 }) []Sample {
	const piOver2 = math.Pi / 2

	samples := make([]Sample, n)
	for i := 0; i < n; i++ {
		x := src.Float64() * piOver2
		samples[i] = Sample{X: []float64{x}, Y: math.Sin(x)}
	}
	return samples
}
