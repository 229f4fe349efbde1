package nn

import "github.com/nom-de-guerre/matrices/matrix"

// LinearModel is a plain linear-regression model, y = w0 + sum(wi*xi),
// grounded on original_source/Neural Network/regression.h. Its Jacobian row
// is just the input row augmented with a leading 1 for the bias, so it
// trains through the same batch Gauss-Newton machinery as Network, driven
// by Train via the Model interface.
type LinearModel struct {
	W   []float64 // NIn+1 wide, column 0 is the bias weight
	NIn int
}

// NewLinearModel builds a linear model with nIn inputs, weights drawn
// uniformly from [-1, 1) via src.
func NewLinearModel(nIn int, src interface{ Float64() float64 }) *LinearModel {
	w := make([]float64, nIn+1)
	for i := range w {
		w[i] = 2*src.Float64() - 1
	}
	return &LinearModel{W: w, NIn: nIn}
}

// NumWeights returns the count of trainable weights (bias plus one per
// input).
func (m *LinearModel) NumWeights() int { return m.NIn + 1 }

// Weights returns a copy of the current weights.
func (m *LinearModel) Weights() []float64 {
	w := make([]float64, len(m.W))
	copy(w, m.W)
	return w
}

// SetWeights replaces the model's weights, committing an accepted
// Levenberg-Marquardt step.
func (m *LinearModel) SetWeights(w []float64) { m.W = w }

func (m *LinearModel) forwardWith(weights, x []float64) float64 {
	y := weights[0]
	for i := 0; i < m.NIn; i++ {
		y += weights[i+1] * x[i]
	}
	return y
}

// Forward computes the model's current output for x.
func (m *LinearModel) Forward(x []float64) float64 { return m.forwardWith(m.W, x) }

// BackpropRow fills row `row` of jac with the model's Jacobian at weights
// for sample s (the bias column is 1, every other column is the matching
// input) and row `row` of residual with (target - output).
func (m *LinearModel) BackpropRow(weights []float64, s Sample, jac, residual *matrix.Dense, row int) float64 {
	y := m.forwardWith(weights, s.X)

	jac.Set(row, 0, 1)
	for i := 0; i < m.NIn; i++ {
		jac.Set(row, i+1, s.X[i])
	}

	err := s.Y - y
	residual.Set(row, 0, err)

	return err * err
}

// ReduceLossAt returns the total squared error of weights over samples.
func (m *LinearModel) ReduceLossAt(weights []float64, samples []Sample) float64 {
	var sum float64
	for _, s := range samples {
		d := m.forwardWith(weights, s.X) - s.Y
		sum += d * d
	}
	return sum
}

// ReduceLoss returns the total squared error of the model's current
// weights over samples.
func (m *LinearModel) ReduceLoss(samples []Sample) float64 { return m.ReduceLossAt(m.W, samples) }
