package matrix

import "math"

// householder builds a Householder vector for src (length m >= 1), using
// the sign convention spec.md calls out explicitly: v[0]'s sign is chosen
// to match src[0]'s sign, which adds rather than cancels against the
// leading entry and so avoids the catastrophic cancellation a naive
// -sign(src[0]) convention would hit when src[0] is already large. beta is
// 2/(v·v), ready to build the reflector I - beta*v*vᵀ. ok is false when src
// is already (numerically) zero and no reflection is needed.
func householder(src []float64) (v []float64, beta float64, ok bool) {
	m := len(src)
	v = make([]float64, m)
	var alpha float64
	for i, x := range src {
		v[i] = x
		alpha += x * x
	}
	if alpha == 0 {
		return nil, 0, false
	}
	alpha = math.Sqrt(alpha)
	if v[0] >= 0 {
		v[0] += alpha
	} else {
		v[0] -= alpha
	}
	var vv float64
	for _, x := range v {
		vv += x * x
	}
	if vv == 0 {
		return nil, 0, false
	}
	return v, 2 / vv, true
}
