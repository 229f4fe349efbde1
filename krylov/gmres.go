package krylov

import (
	"math"

	"github.com/nom-de-guerre/matrices/matrix"
)

// GMRES is a restarted Generalized Minimum Residual solver for Ax = b built
// on a Base Krylov subspace: it builds Kn via Arnoldi, reduces the
// resulting Hessenberg projection to upper triangular with Givens
// rotations, solves the small triangular system, and lifts the result back
// through the basis. When the subspace dimension isn't enough, it restarts
// from the latest residual rather than growing the basis indefinitely
// (Saad, Iterative Methods for Sparse Linear Systems, ch. 6).
type GMRES struct {
	*Base

	Restarts  int
	Tolerance float64
}

// NewGMRES builds a GMRES solver with an n-dimensional subspace per
// restart attempt and the default 10 restarts / 0.5 tolerance.
func NewGMRES(n int, a matrix.Sparse, b matrix.Dense) *GMRES {
	return NewGMRESRestarts(n, a, b, 10)
}

// NewGMRESRestarts is NewGMRES with an explicit restart budget.
func NewGMRESRestarts(n int, a matrix.Sparse, b matrix.Dense, restarts int) *GMRES {
	return &GMRES{
		Base:      NewBase(a, b, n),
		Restarts:  restarts,
		Tolerance: 0.5,
	}
}

// SetTolerance sets the residual threshold Solve considers converged.
func (g *GMRES) SetTolerance(residue float64) {
	g.Tolerance = residue
}

// Solve runs restarted GMRES until the residual reaches Tolerance or the
// Restarts budget is spent, growing the subspace by 50 whenever a restart
// fails to lower the residual. It returns the approximate solution and the
// residual reached: above Tolerance if the budget ran out, NaN if Arnoldi
// broke down.
func (g *GMRES) Solve() (matrix.Dense, float64) {
	xm := matrix.New(g.B.Rows(), 1)
	last := math.MaxFloat64
	var residue float64

	for restarts := 0; ; restarts++ {
		dx, res, ok := g.step()
		if !ok {
			return xm, math.NaN()
		}

		xm.AddInto(dx)
		r := g.B.Sub(g.A.MulVec(xm))
		residue = res

		if residue <= g.Tolerance || restarts >= g.Restarts {
			return xm, residue
		}

		if residue >= last {
			// GMRES has stalled (no decrease since the last restart): Saad's
			// suggestion is to simply grow the subspace and try again rather
			// than give up.
			g.N += 50
		}

		last = residue
		g.Restart(r, g.N)
	}
}

// step runs one Arnoldi build-out to the full subspace dimension, reduces
// H to upper triangular via Givens rotations, and solves the resulting
// small triangular system for the update in the original coordinates.
func (g *GMRES) step() (matrix.Dense, float64, bool) {
	runs := g.RunArnoldi(g.N)
	if runs < g.N {
		return matrix.Dense{}, 0, false // Arnoldi broke down
	}

	residue := g.rotate()

	h := g.H.View(0, 0, g.I, g.I)
	q := g.Q.View(0, 0, g.A.Rows(), g.I)
	y := g.E1.View(0, 0, g.I, 1)

	y = h.FindX(y)

	return q.Mul(y), residue, true
}

// rotate reduces the Hessenberg matrix built so far to upper triangular
// with a sequence of Givens rotations (Golub & Van Loan section 5.1.8),
// applying each rotation to E1 as it goes so E1 ends up holding the
// transformed right-hand side; the residual is exactly the magnitude of
// the entry rotated past the triangular block.
func (g *GMRES) rotate() float64 {
	m := g.I

	for i := 0; i < m; i++ {
		denom := math.Hypot(g.H.At(i, i), g.H.At(i+1, i))
		ci := g.H.At(i, i) / denom
		si := g.H.At(i+1, i) / denom

		e0 := ci*g.E1.At(i, 0) + si*g.E1.At(i+1, 0)
		e1 := -si*g.E1.At(i, 0) + ci*g.E1.At(i+1, 0)
		g.E1.Set(i, 0, e0)
		g.E1.Set(i+1, 0, e1)

		g.H.Set(i, i, ci*g.H.At(i, i)+si*g.H.At(i+1, i))
		g.H.Set(i+1, i, 0.0)

		for j := i + 1; j < m; j++ {
			h0 := ci*g.H.At(i, j) + si*g.H.At(i+1, j)
			h1 := -si*g.H.At(i, j) + ci*g.H.At(i+1, j)
			g.H.Set(i, j, h0)
			g.H.Set(i+1, j, h1)
		}
	}

	return math.Abs(g.E1.At(m, 0))
}
