package matrix

// QR factors d = Q*R in place by Householder reflections: on return d holds
// the upper triangular factor R, and q (which must be d.rows x d.rows) is
// filled with the accumulated orthogonal factor. Column k's reflector is
// applied to d[k:, k:] from the left and accumulated into q from the right,
// so that after the last column q = H_0*H_1*...*H_{n-1} satisfies d_orig =
// q*R. See householder for the sign convention.
func (d *Dense) QR(q *Dense) {
	rows, cols := d.rows, d.cols
	*q = NewDiag(rows, rows, 1.0)

	scratch := make([]float64, rows)
	for k := 0; k < cols && k < rows; k++ {
		m := rows - k
		sub := scratch[:m]
		for i := 0; i < m; i++ {
			sub[i] = d.At(k+i, k)
		}
		v, beta, ok := householder(sub)
		if !ok {
			continue
		}

		// Apply (I - beta*v*vT) to d[k:, k:] from the left.
		for j := k; j < cols; j++ {
			var s float64
			for i := 0; i < m; i++ {
				s += v[i] * d.At(k+i, j)
			}
			s *= beta
			for i := 0; i < m; i++ {
				d.Set(k+i, j, d.At(k+i, j)-s*v[i])
			}
		}

		// Accumulate the same reflector into q from the right.
		for i := 0; i < rows; i++ {
			var s float64
			for c := 0; c < m; c++ {
				s += q.At(i, k+c) * v[c]
			}
			s *= beta
			for c := 0; c < m; c++ {
				q.Set(i, k+c, q.At(i, k+c)-s*v[c])
			}
		}
	}
}

// SolveQR solves d*x = b by Householder QR: it forms Q implicitly, applies
// the same reflectors used to reduce d to R onto a working copy of b (i.e.
// overwrites it with Qᵀb), then back-substitutes against R. It destroys the
// receiver, returning the solution as a new column vector.
func (d *Dense) SolveQR(b Dense) Dense {
	rows, cols := d.rows, d.cols
	if rows != cols {
		panic(ErrSquare)
	}
	b.requireColumnVector()
	if b.rows != rows {
		panic(ErrShape)
	}

	x := New(rows, 1)
	x.Pipe(b)

	scratch := make([]float64, rows)
	for k := 0; k < cols; k++ {
		m := rows - k
		sub := scratch[:m]
		for i := 0; i < m; i++ {
			sub[i] = d.At(k+i, k)
		}
		v, beta, ok := householder(sub)
		if !ok {
			continue
		}

		for j := k; j < cols; j++ {
			var s float64
			for i := 0; i < m; i++ {
				s += v[i] * d.At(k+i, j)
			}
			s *= beta
			for i := 0; i < m; i++ {
				d.Set(k+i, j, d.At(k+i, j)-s*v[i])
			}
		}

		var s float64
		for i := 0; i < m; i++ {
			s += v[i] * x.At(k+i, 0)
		}
		s *= beta
		for i := 0; i < m; i++ {
			x.Set(k+i, 0, x.At(k+i, 0)-s*v[i])
		}
	}

	return d.FindX(x)
}
