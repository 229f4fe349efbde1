package nn

import "github.com/nom-de-guerre/matrices/matrix"

// Model is the capability set Train requires: forward evaluation, a
// per-sample Jacobian/residual row at an arbitrary trial weight vector, and
// a dataset-wide loss reduction at that vector. Network (the fixed-hidden-
// layer regressor) and LinearModel (plain linear regression, grounded on
// original_source/Neural Network/regression.h) both implement it, so Train
// drives either one identically.
type Model interface {
	NumWeights() int
	Weights() []float64
	SetWeights(w []float64)
	Forward(x []float64) float64
	BackpropRow(weights []float64, s Sample, jac, residual *matrix.Dense, row int) float64
	ReduceLossAt(weights []float64, samples []Sample) float64
}
