package eigen

import (
	"math"
	"sort"
	"testing"

	"github.com/nom-de-guerre/matrices/matrix"
)

func TestFrancisDiagonalMatrixEigenvalues(t *testing.T) {
	a := matrix.NewDiag(4, 4, 0)
	diag := []float64{1, 2, 3, 4}
	for i, v := range diag {
		a.Set(i, i, v)
	}

	f := New()
	n := f.CalcEigenValues(a)
	if n != 4 {
		t.Fatalf("N = %d, want 4", n)
	}

	got := make([]float64, n)
	for i, ev := range f.EigenValues[:n] {
		got[i] = ev.Real
	}
	sort.Float64s(got)
	want := []float64{1, 2, 3, 4}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-6 {
			t.Fatalf("eigenvalues = %v, want %v", got, want)
		}
	}
}

func TestFrancisKnownSpectrum(t *testing.T) {
	// A symmetric matrix with a known, well-separated real spectrum.
	a := matrix.NewFromRowMajor(3, 3, []float64{
		2, 1, 0,
		1, 2, 1,
		0, 1, 2,
	})

	f := New()
	n := f.CalcEigenValues(a)
	if n != 3 {
		t.Fatalf("N = %d, want 3", n)
	}

	got := make([]float64, n)
	for i, ev := range f.EigenValues[:n] {
		got[i] = ev.Real
	}
	sort.Float64s(got)
	want := []float64{2 - math.Sqrt2, 2, 2 + math.Sqrt2}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-6 {
			t.Fatalf("eigenvalues = %v, want %v", got, want)
		}
	}
}

func TestSortEigenValuesAscendingModulus(t *testing.T) {
	f := &Francis{
		N: 4,
		EigenValues: []Eigenvalue{
			{Real: 1}, {Real: -5}, {Real: 2}, {Real: 0.5},
		},
	}
	f.SortEigenValues()

	for i := 1; i < f.N; i++ {
		if f.EigenValues[i-1].Modulus() > f.EigenValues[i].Modulus() {
			t.Fatalf("not sorted ascending: %v", f.EigenValues)
		}
	}
}

func TestInteriorPivotDeflationAccumulatesDisjointRanges(t *testing.T) {
	// Block-diagonal Hessenberg matrix: the zero coupling entry at (3,2)
	// forces iterateAndShift's interior-pivot branch on the very first
	// convergence check, decoupling into two independent 3x3 subproblems.
	// Each sub-block's spectrum must land in its own range of
	// f.EigenValues without the second recursive call discarding the first.
	a := matrix.NewFromRowMajor(6, 6, []float64{
		2, 1, 0, 0, 0, 0,
		1, 2, 1, 0, 0, 0,
		0, 1, 2, 0, 0, 0,
		0, 0, 0, 5, 1, 0,
		0, 0, 0, 1, 5, 1,
		0, 0, 0, 0, 1, 5,
	})

	f := New()
	n := f.CalcEigenValues(a)
	if n != 6 {
		t.Fatalf("N = %d, want 6 (interior deflation must not discard either half)", n)
	}

	got := make([]float64, n)
	for i, ev := range f.EigenValues[:n] {
		got[i] = ev.Real
	}
	sort.Float64s(got)

	want := []float64{
		2 - math.Sqrt2, 2, 2 + math.Sqrt2,
		5 - math.Sqrt2, 5, 5 + math.Sqrt2,
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-6 {
			t.Fatalf("eigenvalues = %v, want %v", got, want)
		}
	}
}

func TestFindEigenVectorRealSatisfiesAx(t *testing.T) {
	a := matrix.NewFromRowMajor(3, 3, []float64{
		2, 1, 0,
		1, 2, 1,
		0, 1, 2,
	})
	lambda := 2.0

	scratch := a.Alias()
	scratch.Copy()
	u0 := matrix.NewFromRowMajor(3, 1, []float64{1, 0, -1})

	u, ok := FindEigenVectorReal(lambda, scratch, u0)
	if !ok {
		t.Fatal("FindEigenVectorReal did not converge")
	}

	av := a.Mul(u)
	for i := 0; i < 3; i++ {
		want := lambda * u.At(i, 0)
		if math.Abs(av.At(i, 0)-want) > 1e-6 {
			t.Fatalf("A*u[%d] = %v, want lambda*u = %v", i, av.At(i, 0), want)
		}
	}
}
