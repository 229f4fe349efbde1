// Package krylov builds Krylov subspaces by Arnoldi iteration and solves
// linear systems against them: GMRES for general (non-symmetric) systems,
// Conjugate Gradient for symmetric positive-definite ones.
package krylov

import "github.com/nom-de-guerre/matrices/matrix"

// Base computes an orthonormal basis Q of the Krylov subspace
// Kn = {b, Ab, ..., A^(n-1)b} and the Hessenberg matrix H of A's
// projection onto it, via Arnoldi iteration with (batched) Gram-Schmidt
// orthogonalization: A*Q_n = Q_n+1*H. Solvers built on top of a Base
// (GMRES) embed it rather than duplicate the subspace machinery.
type Base struct {
	A matrix.Sparse
	B matrix.Dense // the fixed right-hand side; Restart's x0 is a new starting vector, not a new B

	H  matrix.Dense // Hessenberg projection of A onto Kn, (n+1) x n
	Q  matrix.Dense // orthonormal basis of Kn, rows(A) x (n+1)
	E1 matrix.Dense // |b|*e1, the right-hand side in Krylov coordinates

	N int // requested subspace dimension
	I int // iterations completed so far
}

// NewBase builds the Krylov machinery for A, starting vector b, and an
// n-dimensional subspace.
func NewBase(a matrix.Sparse, b matrix.Dense, n int) *Base {
	k := &Base{A: a, B: b}
	k.Restart(b, n)
	return k
}

// Restart reinitializes the subspace around a new starting vector x0 with
// dimension n, discarding any progress made so far. GMRES calls this
// between restarts with the latest residual.
func (k *Base) Restart(x0 matrix.Dense, n int) {
	k.N = n
	k.I = 0

	k.H = matrix.New(n+1, n)
	k.Q = matrix.New(k.A.Rows(), n+1)
	k.E1 = matrix.New(n+1, 1)

	v := k.Q.VecView(0, true)
	v.Pipe(x0)
	bnorm := x0.VecMagnitude()
	v.DivInto(bnorm)

	k.E1.Set(0, 0, bnorm)
}

// Orthogonal verifies the basis built so far is (numerically) orthogonal,
// i.e. Vm^T*Vm == I, where Vm is the first m = I columns of Q (just q0
// before any Arnoldi step). A breakdown here means the basis should be
// restarted or re-orthogonalized rather than trusted further.
func (k *Base) Orthogonal() bool {
	m := max(k.I, 1)
	ident := matrix.NewDiag(m, m, 1.0)
	vm := k.Q.View(0, 0, k.A.Rows(), m)
	prod := vm.T().Mul(vm)
	return ident.EqualApprox(prod, 1e-10)
}

// RunArnoldi extends the basis by up to runs further Arnoldi steps (fewer
// if that would exceed the subspace dimension N), each one a sparse
// matrix-vector product against A followed by Gram-Schmidt against every
// basis vector built so far. It returns the number of iterations reached
// (k.I); a returned value less than requested signals breakdown: the new
// candidate vector had magnitude exactly zero after orthogonalization, i.e.
// it was already in the span of the basis. The check is exact, so a
// candidate that rounding leaves merely tiny does not count as breakdown.
func (k *Base) RunArnoldi(runs int) int {
	rows := k.Q.Rows()

	if k.I+runs > k.N {
		runs = k.N - k.I
	}

	for i := 0; i < runs; i++ {
		v := k.Q.VecView(k.I+1, true)
		qi := k.Q.VecView(k.I)

		v.Pipe(k.A.MulVec(qi))

		hi := k.H.VecView(k.I, true)
		hi.Pipe(k.Q.T().Mul(v))

		// v -= sum_j H(j, k.I) * Q[:, j]
		for j := 0; j <= k.I; j++ {
			alpha := k.H.At(j, k.I)
			qj := k.Q.VecView(j)
			for r := 0; r < rows; r++ {
				v.Set(r, 0, v.At(r, 0)-alpha*qj.At(r, 0))
			}
		}

		mag := v.VecMagnitude()
		k.H.Set(k.I+1, k.I, mag)
		if mag == 0 {
			return k.I
		}
		v.DivInto(mag)

		k.I++
	}

	return k.I
}
