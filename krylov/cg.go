package krylov

import (
	"math"

	"github.com/nom-de-guerre/matrices/matrix"
)

const cgMachEps = 2.220446049250313e-16

// CG solves Ax = b for symmetric positive-definite A by the classical
// three-term Conjugate Gradient recurrence. Unlike GMRES it needs no
// subspace bookkeeping: each step only carries forward the previous
// residual and search direction.
type CG struct {
	A matrix.Dense
	B matrix.Dense

	X matrix.Dense
	R matrix.Dense
	P matrix.Dense

	Rho      float64
	RhoMinus float64

	Halt       float64
	Iterations int
}

// NewCG builds a CG solver with the default halting tolerance
// (machine epsilon scaled by |b|).
func NewCG(a, b matrix.Dense) *CG {
	return NewCGTolerance(a, b, cgMachEps*b.VecMagnitude())
}

// NewCGTolerance is NewCG with an explicit residual-norm tolerance.
func NewCGTolerance(a, b matrix.Dense, halt float64) *CG {
	cg := &CG{A: a, B: b, Halt: halt}
	cg.Reset()
	return cg
}

// Reset restarts the iteration from x = b.
func (cg *CG) Reset() {
	cg.X = cg.B.Alias()
	cg.R = cg.B.Sub(cg.A.Mul(cg.X))
	cg.Rho = cg.R.VecDotSelf()
	cg.Iterations = 0
}

// Step performs one Conjugate Gradient iteration.
func (cg *CG) Step() {
	cg.Iterations++

	if cg.Iterations == 1 {
		cg.P = cg.R.Alias()
	} else {
		tau := cg.Rho / cg.RhoMinus
		cg.P = cg.R.Add(matrix.Scaled(tau, cg.P))
	}

	w := cg.A.Mul(cg.P)
	mu := cg.Rho / cg.P.VecDot(w)

	cg.X = cg.X.Add(matrix.Scaled(mu, cg.P))
	cg.R = cg.R.Sub(matrix.Scaled(mu, w))

	cg.RhoMinus = cg.Rho
	cg.Rho = cg.R.VecDotSelf()
}

// Compute runs CG to convergence, capped at rows(A)-1 iterations, the
// point at which the Krylov subspace it builds can no longer grow for an
// n x n system.
func (cg *CG) Compute() {
	n := cg.A.Rows() - 1
	for i := 0; i < n && cg.Halt < math.Sqrt(cg.Rho); i++ {
		cg.Step()
	}
}

// Answer returns the current approximate solution.
func (cg *CG) Answer() matrix.Dense {
	return cg.X
}
