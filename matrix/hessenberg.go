package matrix

// HessenbergSimilarity reduces d (which must be square) to upper Hessenberg
// form by an orthogonal similarity transform, H = Qᵀ*d*Q, using two-sided
// Householder reflectors. d is overwritten with H in place; the
// accumulated Q is returned so a caller can map Hessenberg-space
// eigenvectors back to d's original basis (the Francis engine's
// CalcEigenValues discards it). Column k's reflector zeros entries k+2..n-1 of column k, applied
// from the left to rows k+1.. and from the right to all rows, which is
// what keeps the transform a similarity rather than a one-sided
// factorization.
func (d *Dense) HessenbergSimilarity() Dense {
	n := d.rows
	if d.cols != n {
		panic(ErrSquare)
	}
	q := NewDiag(n, n, 1.0)

	scratch := make([]float64, n)
	for k := 0; k < n-2; k++ {
		m := n - k - 1
		sub := scratch[:m]
		for i := 0; i < m; i++ {
			sub[i] = d.At(k+1+i, k)
		}
		v, beta, ok := householder(sub)
		if !ok {
			continue
		}

		// Apply (I - beta*v*vT) to d[k+1:, k:] from the left.
		for j := k; j < n; j++ {
			var s float64
			for i := 0; i < m; i++ {
				s += v[i] * d.At(k+1+i, j)
			}
			s *= beta
			for i := 0; i < m; i++ {
				d.Set(k+1+i, j, d.At(k+1+i, j)-s*v[i])
			}
		}

		// Apply the same reflector to d[:, k+1:] from the right, to
		// complete the similarity.
		for i := 0; i < n; i++ {
			var s float64
			for j := 0; j < m; j++ {
				s += d.At(i, k+1+j) * v[j]
			}
			s *= beta
			for j := 0; j < m; j++ {
				d.Set(i, k+1+j, d.At(i, k+1+j)-s*v[j])
			}
		}

		// Accumulate into q from the right so that d_orig = q*H*qT.
		for i := 0; i < n; i++ {
			var s float64
			for j := 0; j < m; j++ {
				s += q.At(i, k+1+j) * v[j]
			}
			s *= beta
			for j := 0; j < m; j++ {
				q.Set(i, k+1+j, q.At(i, k+1+j)-s*v[j])
			}
		}
	}

	return q
}
