package nn

import (
	"math"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/nom-de-guerre/matrices/matrix"
)

const (
	muInit  = 0.01
	muTheta = 10.0
	muMin   = 1e-12
)

// BackpropRow fills row `row` of jac with d(output)/d(weight_i) for every
// trainable output weight, and row `row` of residual with (target -
// output), the Gauss-Newton ingredients this package exists to produce.
// The bias column is dAct; every other column is dAct times the
// corresponding hidden unit's activation.
func (n *Network) BackpropRow(weights []float64, s Sample, jac, residual *matrix.Dense, row int) float64 {
	y, hidden := n.forwardWith(weights, s.X)
	dAct := y * (1 - y)

	jac.Set(row, 0, dAct)
	for i := 0; i < n.Hid; i++ {
		jac.Set(row, i+1, dAct*hidden[i])
	}

	err := s.Y - y
	residual.Set(row, 0, err)

	return err * err
}

// solveNormalEquations solves the damped Gauss-Newton step (JtJ + mu*I)*delta
// = Jte, trying SolveSymmetric first since JtJ + mu*I is symmetric
// positive-definite for any mu > 0 in exact arithmetic. SolveQR is the
// fallback for when Cholesky reports a non-positive pivot (the normal
// equations having gone numerically indefinite). A NaN surviving even that
// fallback is wrapped as ErrDegraded.
func solveNormalEquations(jtj, jte matrix.Dense, mu float64) (matrix.Dense, error) {
	damped := jtj.Add(matrix.Scaled(mu, matrix.NewDiag(jtj.Rows(), jtj.Cols(), 1.0)))

	if x, ok := damped.SolveSymmetric(jte); ok {
		return x, nil
	}

	x := damped.SolveQR(jte)
	for i := 0; i < x.Rows(); i++ {
		if math.IsNaN(x.At(i, 0)) {
			return matrix.Dense{}, errors.Wrap(ErrDegraded, "SolveQR step was non-finite")
		}
	}
	return x, nil
}

// Train runs batch Levenberg-Marquardt steps against samples until either
// the mean-squared loss falls to haltMSE or maxSteps is exhausted, driving
// any Model (Network or LinearModel) through the same Jacobian/normal-
// equations machinery. It returns ErrDegraded (wrapped) if it exhausts its
// step budget without reaching haltMSE.
func Train(m Model, samples []Sample, maxSteps int, haltMSE float64, log zerolog.Logger) error {
	mu := muInit
	nw := m.NumWeights()
	weights := m.Weights()
	loss := m.ReduceLossAt(weights, samples)
	halt := haltMSE * float64(len(samples)) // loss is a total, haltMSE a mean

	for step := 0; step < maxSteps; step++ {
		if loss <= halt {
			return nil
		}

		jac := matrix.New(len(samples), nw)
		residual := matrix.New(len(samples), 1)
		for i, s := range samples {
			m.BackpropRow(weights, s, &jac, &residual, i)
		}

		jt := jac.T()
		jtj := jt.Mul(jac)
		jte := jt.Mul(residual)

		delta, err := solveNormalEquations(jtj, jte, mu)
		if err != nil {
			mu *= muTheta
			log.Warn().Err(err).Float64("mu", mu).Int("step", step).Msg("degraded update, dilating mu")
			continue
		}

		trial := make([]float64, nw)
		copy(trial, weights)
		for i := 0; i < nw; i++ {
			trial[i] += delta.At(i, 0)
		}

		newLoss := m.ReduceLossAt(trial, samples)
		if newLoss < loss {
			weights = trial
			m.SetWeights(weights)
			loss = newLoss
			mu /= muTheta
			if mu < muMin {
				mu = muMin
			}
		} else {
			mu *= muTheta
		}

		log.Debug().Int("step", step).Float64("loss", loss).Float64("mu", mu).Msg("LM step")
	}

	if loss > halt {
		return errors.Wrap(ErrDegraded, "training did not reach target MSE within the step budget")
	}
	return nil
}
