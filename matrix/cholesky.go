package matrix

import "math"

// SolveSymmetric attempts A = L*Lᵀ on a private copy of d (d itself is
// never mutated) and, if every diagonal pivot stays positive, solves
// A*x = b by forward- then back-substitution against L. It reports false
// the moment a pivot becomes non-positive, the signal that d is not
// numerically positive-definite, in which case the caller is expected to
// fall back to SolveQR.
func (d Dense) SolveSymmetric(b Dense) (x Dense, ok bool) {
	n := d.rows
	if d.cols != n {
		panic(ErrSquare)
	}
	b.requireColumnVector()
	if b.rows != n {
		panic(ErrShape)
	}

	l := New(n, n)
	for j := 0; j < n; j++ {
		sum := d.At(j, j)
		for k := 0; k < j; k++ {
			ljk := l.At(j, k)
			sum -= ljk * ljk
		}
		if sum <= 0 {
			return Dense{}, false
		}
		ljj := math.Sqrt(sum)
		l.Set(j, j, ljj)

		for i := j + 1; i < n; i++ {
			sum := d.At(i, j)
			for k := 0; k < j; k++ {
				sum -= l.At(i, k) * l.At(j, k)
			}
			l.Set(i, j, sum/ljj)
		}
	}

	y := New(n, 1)
	for i := 0; i < n; i++ {
		sum := b.At(i, 0)
		for k := 0; k < i; k++ {
			sum -= l.At(i, k) * y.At(k, 0)
		}
		y.Set(i, 0, sum/l.At(i, i))
	}

	x = New(n, 1)
	for i := n - 1; i >= 0; i-- {
		sum := y.At(i, 0)
		for k := i + 1; k < n; k++ {
			sum -= l.At(k, i) * x.At(k, 0)
		}
		x.Set(i, 0, sum/l.At(i, i))
	}

	return x, true
}
