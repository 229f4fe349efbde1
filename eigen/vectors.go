package eigen

import (
	"math"

	"github.com/nom-de-guerre/matrices/matrix"
)

// FindEigenVectorReal finds the real eigenvector of a associated with the
// real eigenvalue lambda by inverse iteration: since (A - lambda*I) is
// (nearly) singular, repeatedly solving (A - lambda*I)*x_n+1 = x_n and
// renormalizing converges x toward the eigenvector. u supplies the initial
// guess; the eigenvector is returned as a new matrix and u's storage is not
// written. a is left unchanged unless it is write-in-place, in which case
// its diagonal ends up shifted by -lambda.
func FindEigenVectorReal(lambda float64, a matrix.Dense, u matrix.Dense) (matrix.Dense, bool) {
	halt := 10 * machEps * a.NormInf()
	if math.IsNaN(halt) {
		return u, false
	}

	rows := a.Rows()
	iterations := rows

	shifted := a.Alias()
	for i := 0; i < rows; i++ {
		shifted.Set(i, i, shifted.At(i, i)-lambda)
	}

	u.SetWiP()

	for {
		scratch := shifted.Alias()
		scratch.Copy()

		x := scratch.SolveB(u)
		u = x.VecNorm()

		d := shifted.Mul(u)

		rInf := 0.0
		for i := 0; i < rows; i++ {
			if v := math.Abs(d.At(i, 0)); v > rInf {
				rInf = v
			}
		}

		if rInf <= halt {
			break
		}

		iterations--
		if iterations < 0 {
			return u, false
		}
	}

	return u, true
}
