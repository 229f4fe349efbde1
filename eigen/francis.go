package eigen

import (
	"math"

	"github.com/nom-de-guerre/matrices/matrix"
)

// machEps is the double-precision unit roundoff, used in the same
// convergence test Golub & Van Loan give as equation 7.5.4: a subdiagonal
// entry is considered converged to zero once it is swamped by the roundoff
// already present in its neighbouring diagonal entries.
const machEps = 2.220446049250313e-16

// Francis computes real and complex-conjugate eigenvalue pairs of a general
// real square matrix via the implicit double-shift QR algorithm. A single
// Francis accumulates eigenvalues across the recursive deflation the
// algorithm performs, so EigenValues and N only reach their final values
// once CalcEigenValues / CalcEigenValuesHessenberg returns.
type Francis struct {
	Iterations  int
	EigenValues []Eigenvalue
	N           int
}

// New returns an empty Francis engine, ready for CalcEigenValues.
func New() *Francis {
	return &Francis{}
}

// CalcEigenValues reduces a to upper Hessenberg form and computes its
// eigenvalues. It destroys a.
func (f *Francis) CalcEigenValues(a matrix.Dense) int {
	a.HessenbergSimilarity()
	return f.CalcEigenValuesHessenberg(a)
}

// CalcEigenValuesHessenberg computes the eigenvalues of a, which must
// already be in upper Hessenberg form. It destroys a. The total iteration
// count across every shift is accumulated in f.Iterations.
func (f *Francis) CalcEigenValuesHessenberg(a matrix.Dense) int {
	f.Iterations = 0
	f.EigenValues = make([]Eigenvalue, a.Rows())
	f.N = 0

	f.deflate(a)

	return f.N
}

// deflate runs the implicit-QR deflation loop over a (already Hessenberg),
// writing eigenvalues starting at the current f.N without resetting
// f.EigenValues or f.N. iterateAndShift's interior-pivot branch calls this
// directly on each half of a decoupled matrix, so the two halves accumulate
// into disjoint ranges of the same slice instead of each restarting the scan.
func (f *Francis) deflate(a matrix.Dense) {
	rows := a.Rows()

	a.SetWiP()
	francis := a.Alias()

	for i := rows; i > 0; {
		ai := francis.Alias()
		ai.SetWiP()

		shift := f.iterateAndShift(&ai)
		if shift < 0 {
			break // didn't converge - we're done
		}

		francis = ai.Alias()
		i -= shift
	}
}

func complexEigen(a matrix.Dense, row int) Eigenvalue {
	// roots of the 2x2 characteristic polynomial via the quadratic formula
	b := -(a.At(row+1, row+1) + a.At(row, row))
	c := a.At(row+1, row+1)*a.At(row, row) - a.At(row, row+1)*a.At(row+1, row)

	return Eigenvalue{
		Real: -b / 2,
		Imag: math.Sqrt(math.Abs(b*b-4*c)) / 2,
	}
}

func (f *Francis) detectConvergence(h matrix.Dense) int {
	rows := h.Rows()

	for i := rows - 1; i > 0; i-- {
		diag := machEps * (math.Abs(h.At(i, i)) + math.Abs(h.At(i-1, i-1)))

		if h.At(i, i-1) == 0 || math.Abs(h.At(i, i-1)) <= diag {
			h.Set(i, i-1, 0)
			return i
		}
	}

	return -1
}

func (f *Francis) francisStep(a matrix.Dense, shift float64, rayleigh bool) {
	e1 := matrix.New(a.Rows(), 1)
	last := a.Rows() - 1
	s := a.At(last-1, last-1) + a.At(last, last)
	t := a.At(last-1, last-1)*a.At(last, last) - a.At(last-1, last)*a.At(last, last-1)
	if rayleigh {
		// exceptional step: both shifts at shift, which breaks the cycles
		// the trailing-block shifts can fall into
		s = 2 * shift
		t = shift * shift
	}

	// from Golub & Van Loan, the first column of (A - s1*I)(A - s2*I)
	e1.Set(0, 0, a.At(0, 0)*a.At(0, 0)+a.At(0, 1)*a.At(1, 0)-s*a.At(0, 0)+t)
	e1.Set(1, 0, a.At(1, 0)*(a.At(0, 0)+a.At(1, 1)-s))
	e1.Set(2, 0, a.At(2, 1)*a.At(1, 0))

	applyBulge(a, e1)
	chaseBulge(a)

	f.Iterations++
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

func (f *Francis) schurSubMatrix(a matrix.Dense, index int) int {
	av := a.At(index, index)
	b := a.At(index, index+1)
	c := a.At(index+1, index)
	d := a.At(index+1, index+1)

	p := 0.5 * (av - d)
	bcmax := math.Max(math.Abs(b), math.Abs(c))
	bcmis := math.Min(math.Abs(b), math.Abs(c)) * sign(b) * sign(c)
	scale := math.Max(math.Abs(p), bcmax)
	z := (p/scale)*p + (bcmax/scale)*bcmis

	if z >= 4.0*machEps {
		// real eigenvalues
		z = p + sign(p)*math.Abs(math.Sqrt(scale)*math.Sqrt(z))
		a1 := d + z
		d1 := d - (bcmax/z)*bcmis

		f.EigenValues[f.N] = Eigenvalue{Real: d1}
		f.EigenValues[f.N+1] = Eigenvalue{Real: a1}

		return 2
	}

	ev := complexEigen(a, index)
	f.EigenValues[f.N] = ev
	f.EigenValues[f.N+1] = Eigenvalue{Real: ev.Real, Imag: -ev.Imag}
	return 2
}

func (f *Francis) iterateAndShift(a *matrix.Dense) int {
	rows := a.Rows()
	last := rows - 1
	iterations := 0
	deflate := -10000

	if rows == 2 {
		f.N += f.schurSubMatrix(*a, 0)
		return 2
	}
	if rows == 1 {
		f.EigenValues[f.N] = Eigenvalue{Real: a.At(0, 0)}
		f.N++
		return 1
	}

	for {
		iterations++

		// when to give up is arbitrary; a real extraordinary-shift
		// strategy would do better here.
		if iterations == last+30 {
			return -1
		}

		pivot := f.detectConvergence(*a)

		if pivot == -1 {
			var shift float64
			rayleigh := iterations%10 == 0
			if rayleigh {
				shift = a.At(last, last) // Rayleigh quotient
			} else {
				f.schurSubMatrix(*a, last-1)
				shift = f.EigenValues[f.N].Real
			}

			f.francisStep(*a, shift, rayleigh)
			continue
		}

		switch {
		case pivot == last:
			f.EigenValues[f.N] = Eigenvalue{Real: a.At(last, last)}
			f.N++
			*a = a.View(0, 0, last, last)
			deflate = 1

		case pivot == last-1:
			f.N += f.schurSubMatrix(*a, pivot)
			*a = a.View(0, 0, last-1, last-1)
			deflate = 2

		case pivot == 1:
			f.EigenValues[f.N] = Eigenvalue{Real: a.At(0, 0)}
			f.N++
			*a = a.View(1, 1, last, last)
			deflate = 1

		case pivot == 2:
			f.N += f.schurSubMatrix(*a, 0)
			*a = a.View(2, 2, rows-2, rows-2)
			deflate = 2

		default:
			// de-couple into two independent subproblems; both are already
			// upper Hessenberg (principal blocks of a Hessenberg matrix), so
			// deflate runs directly without another Hessenberg reduction and
			// without disturbing f.EigenValues/f.N accumulated so far.
			ul := a.View(0, 0, pivot, pivot)
			lr := a.View(pivot, pivot, rows-pivot, rows-pivot)

			f.deflate(lr)
			f.deflate(ul)

			deflate = last + 1
		}

		return deflate
	}
}
