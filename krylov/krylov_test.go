package krylov

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nom-de-guerre/matrices/matrix"
)

func denseToSparse(a matrix.Dense) matrix.Sparse {
	rows, cols := a.Rows(), a.Cols()
	s := matrix.NewSparse(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v := a.At(i, j); v != 0 {
				s.Append(i, j, v)
			}
		}
	}
	return s
}

func TestCGSolvesSPDSystem(t *testing.T) {
	a := matrix.NewFromRowMajor(3, 3, []float64{
		4, 1, 0,
		1, 3, 1,
		0, 1, 2,
	})
	xWant := matrix.NewFromRowMajor(3, 1, []float64{1, -2, 3})
	b := a.Mul(xWant)

	cg := NewCG(a, b)
	cg.Compute()
	x := cg.Answer()

	for i := 0; i < 3; i++ {
		assert.InDelta(t, xWant.At(i, 0), x.At(i, 0), 1e-6)
	}
}

func TestGMRESSolvesNonsymmetricSystem(t *testing.T) {
	a := matrix.NewFromRowMajor(3, 3, []float64{
		4, 1, 1,
		2, 5, 1,
		1, 1, 6,
	})
	xWant := matrix.NewFromRowMajor(3, 1, []float64{1, 2, 3})
	b := a.Mul(xWant)

	sparse := denseToSparse(a)
	gm := NewGMRES(3, sparse, b)
	gm.SetTolerance(1e-8)

	x, residue := gm.Solve()
	require.False(t, math.IsNaN(residue), "GMRES reported breakdown")

	for i := 0; i < 3; i++ {
		assert.InDelta(t, xWant.At(i, 0), x.At(i, 0), 1e-5)
	}
}

func TestArnoldiBreaksDownOnInvariantSubspace(t *testing.T) {
	// The identity's Krylov subspace from any starting vector collapses
	// after one step: A*q0 = q0, already in the span built so far.
	a := matrix.NewDiag(3, 3, 1.0)
	sparse := denseToSparse(a)
	b := matrix.NewFromRowMajor(3, 1, []float64{1, 1, 1})

	base := NewBase(sparse, b, 3)
	runs := base.RunArnoldi(3)
	assert.Less(t, runs, 3, "expected Arnoldi to break down before reaching the full subspace")
}

func TestBaseOrthogonalAfterArnoldi(t *testing.T) {
	a := matrix.NewFromRowMajor(3, 3, []float64{
		4, 1, 1,
		2, 5, 1,
		1, 1, 6,
	})
	sparse := denseToSparse(a)
	b := matrix.NewFromRowMajor(3, 1, []float64{1, 0, 0})

	base := NewBase(sparse, b, 3)
	base.RunArnoldi(3)
	assert.True(t, base.Orthogonal())
}
