package matrix

import "math"

// FindX solves the upper-triangular system d*x = b (spec.md's find_x) by
// back-substitution. d must be square (FindX panics with ErrSquare
// otherwise); every caller here passes a square upper triangular factor.
// A zero pivot produces a NaN entry in x rather than a
// panic: singular systems are a numerical, not structural, condition, and
// the caller is expected to check.
func (d Dense) FindX(b Dense) Dense {
	n := d.rows
	if d.cols != n {
		panic(ErrSquare)
	}
	b.requireColumnVector()
	if b.rows != n {
		panic(ErrShape)
	}

	x := New(n, 1)
	x.Pipe(b)
	for i := n - 1; i >= 0; i-- {
		diag := d.At(i, i)
		sum := x.At(i, 0)
		for j := i + 1; j < n; j++ {
			sum -= d.At(i, j) * x.At(j, 0)
		}
		if diag == 0 {
			x.Set(i, 0, math.NaN())
			continue
		}
		x.Set(i, 0, sum/diag)
	}
	return x
}

// SolveB solves d*x = u for a general square d (spec.md's solve_b), used by
// inverse iteration to resolve (A - lambda*I)*x = u at every step. The
// original source's comment ("factor with QR") is taken literally: SolveB
// is SolveQR under a name that matches the spec's operation list. It
// destroys the receiver.
func (d *Dense) SolveB(u Dense) Dense {
	return d.SolveQR(u)
}
