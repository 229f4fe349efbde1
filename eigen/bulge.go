package eigen

import (
	"math"

	"github.com/nom-de-guerre/matrices/matrix"
)

// chaseBulge walks the 3x3 bulge FrancisStep introduces down the
// subdiagonal, one Householder reflection per row, until it runs off the
// bottom of a.
func chaseBulge(a matrix.Dense) {
	runs := a.Rows() - 2
	for i := 0; i < runs; i++ {
		rawStep(a, i)
	}
}

// rawStep applies one step of the bulge chase: a length-<=3 Householder
// reflector built from column step, rows [step+1, step+1+3), applied to a
// from both sides so the similarity is preserved.
func rawStep(a matrix.Dense, step int) {
	rows := a.Rows()
	start := step + 1
	halt := start + 3
	if halt > rows {
		halt = rows
	}

	w := make([]float64, rows)
	aProdW := make([]float64, rows)

	w[start] = a.At(start, step)
	alpha := w[start] * w[start]
	beta := alpha
	for i := start + 1; i < halt; i++ {
		w[i] = a.At(i, step)
		alpha += w[i] * w[i]
	}
	beta = alpha - beta
	alpha = math.Sqrt(alpha)

	if w[start] > 0.0 {
		w[start] += alpha
	} else {
		w[start] -= alpha
	}
	beta = 2 / (beta + w[start]*w[start])

	// A' = (I - beta*w*wT) A
	for c := step; c < rows; c++ {
		var s float64
		for i := start; i < halt; i++ {
			s += w[i] * a.At(i, c)
		}
		aProdW[c] = s * beta
	}
	for r := start; r < halt; r++ {
		for c := step; c < rows; c++ {
			a.Set(r, c, a.At(r, c)-w[r]*aProdW[c])
		}
	}

	// A'' = A' (I - beta*w*wT)
	limit := halt
	if limit < rows {
		limit++ // matches the bulge-chase's one-row fill-in carry
	}
	for r := 0; r < limit; r++ {
		var s float64
		for c := start; c < halt; c++ {
			s += a.At(r, c) * w[c]
		}
		aProdW[r] = s * beta
	}
	for r := 0; r < limit; r++ {
		for c := start; c < halt; c++ {
			a.Set(r, c, a.At(r, c)-aProdW[r]*w[c])
		}
	}
}

// applyBulge introduces the initial bulge given the first column x of
// (A - s1*I)(A - s2*I), applying the Householder reflector built from x's
// leading <=3 entries to a from both sides.
func applyBulge(a matrix.Dense, x matrix.Dense) {
	rows := a.Rows()
	halt := 3
	if halt > rows {
		halt = rows
	}

	w := make([]float64, rows)
	aProdW := make([]float64, rows)

	w[0] = x.At(0, 0)
	alpha := w[0] * w[0]
	beta := alpha
	for i := 1; i < halt; i++ {
		w[i] = x.At(i, 0)
		alpha += w[i] * w[i]
	}
	beta = alpha - beta
	alpha = math.Sqrt(alpha)

	if w[0] > 0.0 {
		w[0] += alpha
	} else {
		w[0] -= alpha
	}
	beta = 2 / (beta + w[0]*w[0])

	for c := 0; c < rows; c++ {
		var s float64
		for i := 0; i < halt; i++ {
			s += w[i] * a.At(i, c)
		}
		aProdW[c] = s * beta
	}
	for r := 0; r < halt; r++ {
		for c := 0; c < rows; c++ {
			a.Set(r, c, a.At(r, c)-w[r]*aProdW[c])
		}
	}

	limit := halt
	if limit < rows {
		limit++
	}
	for r := 0; r < limit; r++ {
		var s float64
		for c := 0; c < halt; c++ {
			s += a.At(r, c) * w[c]
		}
		aProdW[r] = s * beta
	}
	for r := 0; r < limit; r++ {
		for c := 0; c < halt; c++ {
			a.Set(r, c, a.At(r, c)-aProdW[r]*w[c])
		}
	}
}
