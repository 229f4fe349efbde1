package nn

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nom-de-guerre/matrices/matrix"

	"github.com/nom-de-guerre/matrices/internal/logging"
	"github.com/nom-de-guerre/matrices/internal/rng"
)

func TestNetworkTrainsSineRegression(t *testing.T) {
	src := rng.New(42)
	samples := BuildSineDataset(24, src)

	net := NewNetwork(1, 6, src)
	before := net.ReduceLoss(samples)

	log := logging.New(zerolog.Disabled)
	err := Train(net, samples, 500, 1e-4, log)
	_ = err // degraded/budget-exhausted is acceptable for this smoke test

	after := net.ReduceLoss(samples)
	assert.Less(t, after, before, "training should reduce total squared error")
}

func TestReduceLossMatchesManualForward(t *testing.T) {
	src := rng.New(7)
	net := NewNetwork(2, 4, src)
	samples := []Sample{
		{X: []float64{0.1, 0.2}, Y: 0.5},
		{X: []float64{0.9, 0.1}, Y: 0.2},
	}

	var want float64
	for _, s := range samples {
		d := net.Forward(s.X) - s.Y
		want += d * d
	}

	require.InDelta(t, want, net.ReduceLoss(samples), 1e-12)
}

func TestSolveNormalEquationsMatchesSolveSymmetric(t *testing.T) {
	jtj := matrix.NewFromRowMajor(2, 2, []float64{4, 1, 1, 3})
	jte := matrix.NewFromRowMajor(2, 1, []float64{1, 2})

	got, err := solveNormalEquations(jtj, jte, 0.01)
	require.NoError(t, err)

	ref := jtj.Add(matrix.Scaled(0.01, matrix.NewDiag(2, 2, 1.0)))
	want, ok := ref.SolveSymmetric(jte)
	require.True(t, ok)

	assert.InDelta(t, want.At(0, 0), got.At(0, 0), 1e-9)
	assert.InDelta(t, want.At(1, 0), got.At(1, 0), 1e-9)
}
