package matrix

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestMulShape(t *testing.T) {
	a := NewFromRowMajor(2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := NewFromRowMajor(3, 2, []float64{7, 8, 9, 10, 11, 12})
	c := a.Mul(b)
	if c.Rows() != 2 || c.Cols() != 2 {
		t.Fatalf("Mul shape = %dx%d, want 2x2", c.Rows(), c.Cols())
	}
	want := []float64{58, 64, 139, 154}
	got := []float64{c.At(0, 0), c.At(0, 1), c.At(1, 0), c.At(1, 1)}
	if !floats.EqualApprox(got, want, 1e-9) {
		t.Fatalf("Mul = %v, want %v", got, want)
	}
}

func TestTransposeInvolution(t *testing.T) {
	a := NewFromRowMajor(2, 3, []float64{1, 2, 3, 4, 5, 6})
	if !a.Equal(a.T().T()) {
		t.Fatal("T().T() != original")
	}
}

func TestAliasSharesBuffer(t *testing.T) {
	a := New(3, 3)
	if a.buf.refCount() != 1 {
		t.Fatalf("fresh matrix refcount = %d, want 1", a.buf.refCount())
	}
	b := a.Alias()
	if a.buf.refCount() != 2 || b.buf.refCount() != 2 {
		t.Fatalf("after Alias refcount = %d, want 2", a.buf.refCount())
	}

	// CoW: writing through b must not disturb a.
	b.Set(0, 0, 42)
	if a.At(0, 0) == 42 {
		t.Fatal("CoW write through alias leaked into original")
	}
	if b.buf.refCount() != 1 {
		t.Fatalf("after CoW materialize, b's new buffer refcount = %d, want 1", b.buf.refCount())
	}
}

func TestWiPWritesThrough(t *testing.T) {
	a := New(2, 2)
	a.SetWiP()
	b := a.Alias()
	b.Set(1, 1, 7)
	if a.At(1, 1) != 7 {
		t.Fatal("WiP write through alias did not propagate")
	}
}

func TestBareAssignSharesPointerWithoutRefcount(t *testing.T) {
	a := New(2, 2)
	b := a // bare struct copy, NOT Alias(): mirrors a bug class this package
	// avoids internally by always calling Alias at aliasing call sites.
	if b.buf != a.buf {
		t.Fatal("expected bare struct copy to still point at the same buffer")
	}
	if a.buf.refCount() != 1 {
		t.Fatalf("after bare struct copy refcount = %d, want 1", a.buf.refCount())
	}
}

func TestQRFactorsOrthogonally(t *testing.T) {
	a := NewFromRowMajor(3, 3, []float64{
		12, -51, 4,
		6, 167, -68,
		-4, 24, -41,
	})
	orig := a
	orig.Copy()

	var q Dense
	a.QR(&q)

	// Q must be orthogonal: Qt*Q = I.
	qi := q.T().Mul(q)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(qi.At(i, j)-want) > 1e-9 {
				t.Fatalf("Qt*Q[%d][%d] = %v, want %v", i, j, qi.At(i, j), want)
			}
		}
	}

	// Q*R must reconstruct the original matrix.
	recon := q.Mul(a)
	if !recon.EqualApprox(orig, 1e-8) {
		t.Fatalf("Q*R = %v, want %v", recon.Raw(), orig.Raw())
	}
}

func TestSolveQRMatchesKnownSolution(t *testing.T) {
	a := NewFromRowMajor(3, 3, []float64{
		2, 1, 1,
		1, 3, 2,
		1, 0, 0,
	})
	x := NewFromRowMajor(3, 1, []float64{4, 5, 6})
	b := a.Mul(x)

	got := a.SolveQR(b)
	want := []float64{x.At(0, 0), x.At(1, 0), x.At(2, 0)}
	gotSlice := []float64{got.At(0, 0), got.At(1, 0), got.At(2, 0)}
	if !floats.EqualApprox(gotSlice, want, 1e-8) {
		t.Fatalf("SolveQR = %v, want %v", gotSlice, want)
	}
}

func TestSolveSymmetricMatchesQR(t *testing.T) {
	spd := NewFromRowMajor(3, 3, []float64{
		4, 1, 0,
		1, 3, 1,
		0, 1, 2,
	})
	b := NewFromRowMajor(3, 1, []float64{1, 2, 3})

	got, ok := spd.SolveSymmetric(b)
	if !ok {
		t.Fatal("SolveSymmetric reported non-positive-definite on an SPD matrix")
	}

	ref := spd
	ref.Copy()
	want := ref.SolveQR(b)

	gotSlice := []float64{got.At(0, 0), got.At(1, 0), got.At(2, 0)}
	wantSlice := []float64{want.At(0, 0), want.At(1, 0), want.At(2, 0)}
	if !floats.EqualApprox(gotSlice, wantSlice, 1e-8) {
		t.Fatalf("SolveSymmetric = %v, want %v (QR)", gotSlice, wantSlice)
	}
}

func TestSolveSymmetricDetectsIndefinite(t *testing.T) {
	indef := NewFromRowMajor(2, 2, []float64{0, 1, 1, 0})
	_, ok := indef.SolveSymmetric(New(2, 1))
	if ok {
		t.Fatal("SolveSymmetric reported success on an indefinite matrix")
	}
}

func TestHessenbergSimilarityPreservesEigenvaluesViaTrace(t *testing.T) {
	a := NewFromRowMajor(4, 4, []float64{
		4, 1, 2, 0,
		1, 3, 0, 1,
		2, 0, 5, 2,
		0, 1, 2, 6,
	})
	trace := 0.0
	for i := 0; i < 4; i++ {
		trace += a.At(i, i)
	}

	q := a.HessenbergSimilarity()
	_ = q

	htrace := 0.0
	for i := 0; i < 4; i++ {
		htrace += a.At(i, i)
	}
	if math.Abs(trace-htrace) > 1e-8 {
		t.Fatalf("trace changed under similarity: %v -> %v", trace, htrace)
	}

	// Below the sub-diagonal must be zero.
	for i := 2; i < 4; i++ {
		for j := 0; j < i-1; j++ {
			if math.Abs(a.At(i, j)) > 1e-9 {
				t.Fatalf("a[%d][%d] = %v, want 0 below Hessenberg subdiagonal", i, j, a.At(i, j))
			}
		}
	}
}

func TestSparseMulVecMatchesDense(t *testing.T) {
	s := NewSparse(3, 3)
	s.Append(0, 0, 2)
	s.Append(0, 2, 1)
	s.Append(1, 1, 3)
	s.Append(2, 0, 1)
	s.Append(2, 2, 4)

	v := NewFromRowMajor(3, 1, []float64{1, 2, 3})
	got := s.MulVec(v)
	want := s.Densify().Mul(v)

	gotSlice := []float64{got.At(0, 0), got.At(1, 0), got.At(2, 0)}
	wantSlice := []float64{want.At(0, 0), want.At(1, 0), want.At(2, 0)}
	if !floats.Equal(gotSlice, wantSlice) {
		t.Fatalf("Sparse.MulVec = %v, want %v", gotSlice, wantSlice)
	}
}
