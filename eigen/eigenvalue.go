// Package eigen computes eigenvalues and eigenvectors of general real
// matrices with the Francis implicit double-shift QR algorithm, the
// method LAPACK's dgeev and every serious eigensolver since Wilkinson has
// used: reduce to upper Hessenberg form, then chase an implicit bulge
// through the subdiagonal until the trailing block deflates.
package eigen

import "math"

// Eigenvalue is a possibly-complex eigenvalue, stored as its real and
// imaginary parts rather than Go's complex128 so zero-imaginary-part
// comparisons stay exact and the Francis engine's 2x2 Schur block solver
// can write one of these without a conversion.
type Eigenvalue struct {
	Real, Imag float64
}

// Modulus returns sqrt(Real^2 + Imag^2), the sort key used by SortEigenValues.
func (e Eigenvalue) Modulus() float64 {
	return math.Hypot(e.Real, e.Imag)
}

func (e Eigenvalue) greater(o Eigenvalue) bool { return e.Modulus() > o.Modulus() }
