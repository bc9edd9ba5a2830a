// SPDX-License-Identifier: MIT

package numeric

import (
	"math"
	"math/cmplx"
)

// schurEps is the deflation threshold relative to neighbouring diagonal entries.
const schurEps = 2.220446049250313e-16

// Eigen computes the eigenvalues and, when wantVectors is set, unit 2-norm
// eigenvectors (columns) of a general square matrix through the complex Schur form.
// MAIN DESCRIPTION:
//   - Reduce A to upper Hessenberg form with Householder similarity transforms,
//     then run shifted QR iterations until H is upper triangular (T = ZᴴAZ).
//   - Eigenvalues are diag(T); eigenvectors solve (T − λI)y = 0 by back
//     substitution and are mapped back as Z·y.
//
// Implementation:
//   - Explicit single-shift QR on the active window with Givens rotations
//     G = [c s; −s̄ c], Wilkinson shift, exceptional shift every 11th iteration.
//   - Deflation when |h[l][l−1]| ≤ eps·(|h[l][l]| + |h[l−1][l−1]|).
//
// Returns:
//   - ok=false when an eigenvalue needs more than maxIter iterations or the
//     input is not finite.
//
// Complexity:
//   - Time O(n³) typical, Space O(n²).
func Eigen[E Scalar](a Mat[E], maxIter int, wantVectors bool) ([]complex128, Mat[complex128], bool) {
	n := a.Rows
	if !AllFinite(a) {
		return nil, Mat[complex128]{}, false
	}
	h := New[complex128](n, n)
	for i, v := range a.Data {
		h.Data[i] = ToComplex(v)
	}
	z := Identity[complex128](n)

	hessenberg(h, z)
	if !schurQR(h, z, maxIter) {
		return nil, Mat[complex128]{}, false
	}

	vals := make([]complex128, n)
	for i := 0; i < n; i++ {
		vals[i] = h.Data[i*n+i]
	}
	if !wantVectors {
		return vals, Mat[complex128]{}, true
	}

	return vals, schurVectors(h, z), true
}

// hessenberg reduces h in place to upper Hessenberg form, accumulating Z ← Z·P.
func hessenberg(h, z Mat[complex128]) {
	n := h.Rows
	x := make([]complex128, 0, n)
	for k := 0; k+2 < n; k++ {
		x = x[:0]
		for i := k + 1; i < n; i++ {
			x = append(x, h.Data[i*n+k])
		}
		r, _, ok := makeReflector(x, k+1)
		if !ok {
			continue
		}
		r.applyLeft(h, 0)
		r.applyRight(h)
		r.applyRight(z)
		for i := k + 2; i < n; i++ {
			h.Data[i*n+k] = 0
		}
	}
}

// givens returns c (real) and s with [c s; −s̄ c]·[x; y] = [r; 0].
func givens(x, y complex128) (float64, complex128) {
	ax, ay := cmplx.Abs(x), cmplx.Abs(y)
	if ay == 0 {
		return 1, 0
	}
	if ax == 0 {
		return 0, 1
	}
	nrm := math.Hypot(ax, ay)

	return ax / nrm, (x / complex(ax, 0)) * cmplx.Conj(y) / complex(nrm, 0)
}

// schurQR drives the Hessenberg matrix h to upper triangular form.
func schurQR(h, z Mat[complex128], maxIter int) bool {
	n := h.Rows
	at := func(i, j int) complex128 { return h.Data[i*n+j] }
	cs := make([]float64, n)
	ss := make([]complex128, n)
	hi := n - 1
	iter := 0
	hnorm := FrobeniusNorm(h)
	var (
		l, k, i, j int
		mu, u, w   complex128
		scale      float64
	)
	for hi > 0 {
		// Find the start l of the active unreduced block.
		for l = hi; l > 0; l-- {
			if scale = cmplx.Abs(at(l, l)) + cmplx.Abs(at(l-1, l-1)); scale == 0 {
				scale = hnorm
			}
			if cmplx.Abs(at(l, l-1)) <= schurEps*scale {
				h.Data[l*n+l-1] = 0
				break
			}
		}
		if l == hi {
			hi--
			iter = 0
			continue
		}
		iter++
		if iter > maxIter {
			return false
		}

		if iter%11 == 0 {
			// Exceptional shift breaks cycles of the Wilkinson shift.
			mu = at(hi, hi) + complex(cmplx.Abs(at(hi, hi-1)), 0)
			if hi >= 2 {
				mu += complex(cmplx.Abs(at(hi-1, hi-2)), 0)
			}
		} else {
			mu = wilkinson(at(hi-1, hi-1), at(hi-1, hi), at(hi, hi-1), at(hi, hi))
		}

		for k = l; k <= hi; k++ {
			h.Data[k*n+k] -= mu
		}
		// H − μI = Q·R: rotations from the left.
		for k = l; k < hi; k++ {
			c, s := givens(at(k, k), at(k+1, k))
			cs[k], ss[k] = c, s
			cc := complex(c, 0)
			for j = k; j < n; j++ {
				u, w = h.Data[k*n+j], h.Data[(k+1)*n+j]
				h.Data[k*n+j] = cc*u + s*w
				h.Data[(k+1)*n+j] = -cmplx.Conj(s)*u + cc*w
			}
			h.Data[(k+1)*n+k] = 0
		}
		// R·Q: rotations from the right, also accumulated into Z.
		for k = l; k < hi; k++ {
			cc, s := complex(cs[k], 0), ss[k]
			for i = 0; i <= min(k+2, hi); i++ {
				u, w = h.Data[i*n+k], h.Data[i*n+k+1]
				h.Data[i*n+k] = u*cc + w*cmplx.Conj(s)
				h.Data[i*n+k+1] = -u*s + w*cc
			}
			for i = 0; i < n; i++ {
				u, w = z.Data[i*n+k], z.Data[i*n+k+1]
				z.Data[i*n+k] = u*cc + w*cmplx.Conj(s)
				z.Data[i*n+k+1] = -u*s + w*cc
			}
		}
		for k = l; k <= hi; k++ {
			h.Data[k*n+k] += mu
		}
	}

	return true
}

// wilkinson returns the eigenvalue of [[a b][c d]] closer to d.
func wilkinson(a, b, c, d complex128) complex128 {
	half := (a - d) / 2
	disc := cmplx.Sqrt(half*half + b*c)
	mid := (a + d) / 2
	m1, m2 := mid+disc, mid-disc
	if cmplx.Abs(m1-d) <= cmplx.Abs(m2-d) {
		return m1
	}

	return m2
}

// schurVectors back-substitutes eigenvectors of the triangular T and maps them through Z.
func schurVectors(t, z Mat[complex128]) Mat[complex128] {
	n := t.Rows
	smin := schurEps * math.Max(FrobeniusNorm(t), math.SmallestNonzeroFloat64)
	vecs := New[complex128](n, n)
	y := make([]complex128, n)
	var (
		i, j, k int
		lambda  complex128
		s, den  complex128
	)
	for k = 0; k < n; k++ {
		lambda = t.Data[k*n+k]
		for i = range y {
			y[i] = 0
		}
		y[k] = 1
		for i = k - 1; i >= 0; i-- {
			s = 0
			for j = i + 1; j <= k; j++ {
				s += t.Data[i*n+j] * y[j]
			}
			den = t.Data[i*n+i] - lambda
			if cmplx.Abs(den) < smin {
				den = complex(smin, 0)
			}
			y[i] = -s / den
		}
		// x = Z·y, then normalize.
		var nrm float64
		for i = 0; i < n; i++ {
			s = 0
			for j = 0; j <= k; j++ {
				s += z.Data[i*n+j] * y[j]
			}
			vecs.Data[i*n+k] = s
			nrm += real(s)*real(s) + imag(s)*imag(s)
		}
		nrm = math.Sqrt(nrm)
		if nrm > 0 {
			for i = 0; i < n; i++ {
				vecs.Data[i*n+k] /= complex(nrm, 0)
			}
		}
	}

	return vecs
}
