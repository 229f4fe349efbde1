package matrix

import "math"

// Add returns a new, unshared matrix d+o.
func (d Dense) Add(o Dense) Dense {
	if d.rows != o.rows || d.cols != o.cols {
		panic(ErrShape)
	}
	r := New(d.rows, d.cols)
	for j := 0; j < d.cols; j++ {
		for i := 0; i < d.rows; i++ {
			r.Set(i, j, d.At(i, j)+o.At(i, j))
		}
	}
	return r
}

// Sub returns a new, unshared matrix d-o.
func (d Dense) Sub(o Dense) Dense {
	if d.rows != o.rows || d.cols != o.cols {
		panic(ErrShape)
	}
	r := New(d.rows, d.cols)
	for j := 0; j < d.cols; j++ {
		for i := 0; i < d.rows; i++ {
			r.Set(i, j, d.At(i, j)-o.At(i, j))
		}
	}
	return r
}

// Scale returns a new, unshared matrix alpha*d. Scalar multiplication is
// commutative: Scale(alpha) and the package function Scaled(alpha, d) agree.
func (d Dense) Scale(alpha float64) Dense {
	r := New(d.rows, d.cols)
	for j := 0; j < d.cols; j++ {
		for i := 0; i < d.rows; i++ {
			r.Set(i, j, alpha*d.At(i, j))
		}
	}
	return r
}

// Scaled returns alpha*a, the commutative counterpart of Dense.Scale so that
// both `a.Scale(alpha)` and `matrix.Scaled(alpha, a)` read naturally at call
// sites that put the scalar first.
func Scaled(alpha float64, a Dense) Dense { return a.Scale(alpha) }

// Mul returns the standard O(n^3) dense product d*o.
func (d Dense) Mul(o Dense) Dense {
	if d.cols != o.rows {
		panic(ErrShape)
	}
	r := New(d.rows, o.cols)
	for i := 0; i < d.rows; i++ {
		for k := 0; k < d.cols; k++ {
			dik := d.At(i, k)
			if dik == 0 {
				continue
			}
			for j := 0; j < o.cols; j++ {
				r.Set(i, j, r.At(i, j)+dik*o.At(k, j))
			}
		}
	}
	return r
}

// AddInto adds o into d in place (d += o), respecting d's CoW policy.
func (d *Dense) AddInto(o Dense) {
	if d.rows != o.rows || d.cols != o.cols {
		panic(ErrShape)
	}
	for j := 0; j < d.cols; j++ {
		for i := 0; i < d.rows; i++ {
			d.Set(i, j, d.At(i, j)+o.At(i, j))
		}
	}
}

// DivInto divides every element of d by alpha in place (d /= alpha).
func (d *Dense) DivInto(alpha float64) {
	for j := 0; j < d.cols; j++ {
		for i := 0; i < d.rows; i++ {
			d.Set(i, j, d.At(i, j)/alpha)
		}
	}
}

// T returns a new, unshared matrix with the logical shape swapped.
func (d Dense) T() Dense {
	r := New(d.cols, d.rows)
	for j := 0; j < d.cols; j++ {
		for i := 0; i < d.rows; i++ {
			r.Set(j, i, d.At(i, j))
		}
	}
	return r
}

// Equal reports whether d and o have the same shape and are exactly equal
// element-wise.
func (d Dense) Equal(o Dense) bool {
	if d.rows != o.rows || d.cols != o.cols {
		return false
	}
	for j := 0; j < d.cols; j++ {
		for i := 0; i < d.rows; i++ {
			if d.At(i, j) != o.At(i, j) {
				return false
			}
		}
	}
	return true
}

// EqualApprox reports whether d and o have the same shape and every
// corresponding entry differs by less than eps in absolute value.
func (d Dense) EqualApprox(o Dense, eps float64) bool {
	if d.rows != o.rows || d.cols != o.cols {
		return false
	}
	for j := 0; j < d.cols; j++ {
		for i := 0; i < d.rows; i++ {
			if math.Abs(d.At(i, j)-o.At(i, j)) >= eps {
				return false
			}
		}
	}
	return true
}

func (d Dense) requireColumnVector() {
	if d.cols != 1 {
		panic(ErrColumnVector)
	}
}

// VecMagnitude returns the Euclidean (2-) norm of a column vector.
func (d Dense) VecMagnitude() float64 {
	d.requireColumnVector()
	var sum float64
	for i := 0; i < d.rows; i++ {
		v := d.At(i, 0)
		sum += v * v
	}
	return math.Sqrt(sum)
}

// VecDot returns the inner product of d and o, treated as column vectors of
// matching length.
func (d Dense) VecDot(o Dense) float64 {
	d.requireColumnVector()
	o.requireColumnVector()
	if d.rows != o.rows {
		panic(ErrShape)
	}
	var sum float64
	for i := 0; i < d.rows; i++ {
		sum += d.At(i, 0) * o.At(i, 0)
	}
	return sum
}

// VecDotSelf returns d·d for a column vector d (y·y in spec.md's naming).
func (d Dense) VecDotSelf() float64 {
	return d.VecDot(d)
}

// VecNorm normalizes d in place (dividing by its Euclidean norm) and
// returns the receiver, so callers can chain `v := w.VecNorm()`.
func (d *Dense) VecNorm() Dense {
	n := d.VecMagnitude()
	d.DivInto(n)
	return *d
}

// NormInf returns the infinity norm: the maximum absolute row sum.
func (d Dense) NormInf() float64 {
	max := 0.0
	for i := 0; i < d.rows; i++ {
		var sum float64
		for j := 0; j < d.cols; j++ {
			sum += math.Abs(d.At(i, j))
		}
		if sum > max {
			max = sum
		}
	}
	return max
}
