// SPDX-License-Identifier: MIT

package numeric

import "math"

// reflector is a Householder transform H = I − 2·v·vᴴ/(vᴴv) acting on indices from..from+len(v)-1.
type reflector[E Scalar] struct {
	from int
	v    []E
	beta float64 // vᴴv
}

// makeReflector builds H with H·x = α·e₁ for x = col[from:], α = −phase(x₀)·‖x‖.
// ok is false when x is zero (no reflection needed).
func makeReflector[E Scalar](x []E, from int) (reflector[E], E, bool) {
	var nrm float64
	for _, v := range x {
		nrm += Abs2(v)
	}
	nrm = math.Sqrt(nrm)
	if nrm == 0 {
		return reflector[E]{}, 0, false
	}
	alpha := -phase(x[0]) * FromReal[E](nrm)
	v := append([]E(nil), x...)
	v[0] -= alpha
	var beta float64
	for _, e := range v {
		beta += Abs2(e)
	}
	if beta == 0 {
		return reflector[E]{}, alpha, false
	}

	return reflector[E]{from: from, v: v, beta: beta}, alpha, true
}

// applyLeft performs M ← H·M on columns colFrom.. of m.
func (h reflector[E]) applyLeft(m Mat[E], colFrom int) {
	two := FromReal[E](2 / h.beta)
	var s E
	for j := colFrom; j < m.Cols; j++ {
		s = 0
		for i, vi := range h.v {
			s += Conj(vi) * m.Data[(h.from+i)*m.Cols+j]
		}
		if s == 0 {
			continue
		}
		s *= two
		for i, vi := range h.v {
			m.Data[(h.from+i)*m.Cols+j] -= s * vi
		}
	}
}

// applyRight performs M ← M·H on all rows of m.
func (h reflector[E]) applyRight(m Mat[E]) {
	two := FromReal[E](2 / h.beta)
	var s E
	for i := 0; i < m.Rows; i++ {
		s = 0
		for l, vl := range h.v {
			s += m.Data[i*m.Cols+h.from+l] * vl
		}
		if s == 0 {
			continue
		}
		s *= two
		for l, vl := range h.v {
			m.Data[i*m.Cols+h.from+l] -= s * Conj(vl)
		}
	}
}

// householderQR reduces w (m×n, m ≥ n) in place to R in its upper triangle and
// returns the reflectors with Qᴴ = H_{n-1}···H_0.
func householderQR[E Scalar](w Mat[E]) []reflector[E] {
	m, n := w.Rows, w.Cols
	hs := make([]reflector[E], 0, n)
	x := make([]E, 0, m)
	for k := 0; k < n && k < m; k++ {
		x = x[:0]
		for i := k; i < m; i++ {
			x = append(x, w.Data[i*n+k])
		}
		h, _, ok := makeReflector(x, k)
		if !ok {
			continue
		}
		h.applyLeft(w, k)
		for i := k + 1; i < m; i++ {
			w.Data[i*n+k] = 0
		}
		hs = append(hs, h)
	}

	return hs
}

// fullRank reports whether every |R_kk| exceeds tol × max|R_ii|.
func fullRank[E Scalar](r Mat[E], k int, tol float64) bool {
	var mx float64
	for i := 0; i < k; i++ {
		mx = math.Max(mx, Abs(r.Data[i*r.Cols+i]))
	}
	if mx == 0 {
		return k == 0
	}
	for i := 0; i < k; i++ {
		if Abs(r.Data[i*r.Cols+i]) <= tol*mx {
			return false
		}
	}

	return true
}

// LeastSquaresQR minimizes ‖a·X − b‖ for a of full rank.
// MAIN DESCRIPTION:
//   - m ≥ n: Householder QR of a, X = R⁻¹·(Qᴴb)[0:n] (the least-squares solution).
//   - m < n: QR of aᴴ, X = Q·[R⁻ᴴ·b; 0] (the minimum-norm solution).
//
// Returns false when a turns out rank deficient at relative tolerance tol.
//
// Complexity:
//   - Time O(m·n·(n + r)), Space O(m·n).
func LeastSquaresQR[E Scalar](a, b Mat[E], tol float64) (Mat[E], bool) {
	m, n, r := a.Rows, a.Cols, b.Cols
	if m >= n {
		w := a.Clone()
		y := b.Clone()
		for _, h := range householderQR(w) {
			h.applyLeft(y, 0)
		}
		if !fullRank(w, n, tol) {
			return Mat[E]{}, false
		}
		x := New[E](n, r)
		var s E
		for j := 0; j < r; j++ {
			for i := n - 1; i >= 0; i-- {
				s = y.Data[i*r+j]
				for k := i + 1; k < n; k++ {
					s -= w.Data[i*n+k] * x.Data[k*r+j]
				}
				x.Data[i*r+j] = s / w.Data[i*n+i]
			}
		}

		return x, AllFinite(x)
	}

	// Underdetermined: aᴴ = Q·R with R m×m upper; a = Rᴴ·Qᴴ.
	w := a.ConjTranspose() // n×m
	hs := householderQR(w)
	if !fullRank(w, m, tol) {
		return Mat[E]{}, false
	}
	// Forward substitution Rᴴ·Z = b, Rᴴ lower triangular.
	x := New[E](n, r)
	var s E
	for j := 0; j < r; j++ {
		for i := 0; i < m; i++ {
			s = b.Data[i*r+j]
			for k := 0; k < i; k++ {
				s -= Conj(w.Data[k*m+i]) * x.Data[k*r+j]
			}
			x.Data[i*r+j] = s / Conj(w.Data[i*m+i])
		}
	}
	// X = H_0···H_{m-1}·[Z; 0].
	for k := len(hs) - 1; k >= 0; k-- {
		hs[k].applyLeft(x, 0)
	}

	return x, AllFinite(x)
}
