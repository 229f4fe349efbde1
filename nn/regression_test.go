package nn

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nom-de-guerre/matrices/internal/logging"
	"github.com/nom-de-guerre/matrices/internal/rng"
)

var (
	_ Model = (*Network)(nil)
	_ Model = (*LinearModel)(nil)
)

func TestLinearModelTrainsExactFit(t *testing.T) {
	src := rng.New(11)
	samples := make([]Sample, 20)
	for i := range samples {
		x := src.Float64()*4 - 2
		samples[i] = Sample{X: []float64{x}, Y: 3*x + 1}
	}

	m := NewLinearModel(1, src)
	before := m.ReduceLoss(samples)

	log := logging.New(zerolog.Disabled)
	err := Train(m, samples, 200, 1e-10, log)
	require.NoError(t, err)

	after := m.ReduceLoss(samples)
	assert.Less(t, after, before)
	assert.InDelta(t, 0, after, 1e-6, "linear regression should fit an exactly-linear dataset")
}

func TestLinearModelForwardMatchesWeights(t *testing.T) {
	m := &LinearModel{W: []float64{1, 2, -1}, NIn: 2}
	got := m.Forward([]float64{3, 4})
	want := 1 + 2*3 + -1*4
	assert.InDelta(t, want, got, 1e-12)
}
