// SPDX-License-Identifier: MIT

package numeric

import (
	"math"
	"sort"
)

// jacobiEps is the relative orthogonality threshold of one-sided Jacobi.
const jacobiEps = 1e-15

// SVDResult holds A = U·diag(Sigma)·Vt with Sigma descending.
type SVDResult[E Scalar] struct {
	Sigma []float64 // min(m,n) singular values, descending
	U     Mat[E]    // m×m unitary
	Vt    Mat[E]    // n×n unitary
}

// SVD computes the full singular value decomposition by one-sided (Hestenes)
// Jacobi rotations.
// MAIN DESCRIPTION:
//   - Orthogonalizes the columns of W = A·V by plane rotations until every pair
//     is orthogonal to working precision; σ_j = ‖W_j‖ and U_j = W_j/σ_j.
//
// Implementation:
//   - Stage 1: for m < n factor Aᴴ instead and swap the roles of U and V.
//   - Stage 2: cyclic sweeps over pairs (p,q); the complex rotation removes the
//     phase ω of γ = W_pᴴW_q, then applies the real Jacobi angle
//     ζ = (β−α)/(2|γ|), t = sign(ζ)/(|ζ|+√(1+ζ²)).
//   - Stage 3: sort descending, complete U to a unitary basis (Gram-Schmidt
//     against the standard basis).
//
// Returns:
//   - ok=false when maxSweeps sweeps did not converge or the input is not finite.
//
// Complexity:
//   - Time O(sweeps·m·n²), Space O(m·n + n²).
func SVD[E Scalar](a Mat[E], maxSweeps int) (SVDResult[E], bool) {
	if !AllFinite(a) {
		return SVDResult[E]{}, false
	}
	if a.Rows < a.Cols {
		res, ok := SVD(a.ConjTranspose(), maxSweeps)
		if !ok {
			return SVDResult[E]{}, false
		}
		// Aᴴ = U'ΣV'ᴴ ⇒ A = V'ΣU'ᴴ.
		return SVDResult[E]{Sigma: res.Sigma, U: res.Vt.ConjTranspose(), Vt: res.U.ConjTranspose()}, true
	}

	m, n := a.Rows, a.Cols
	w := a.Clone()
	v := Identity[E](n)
	converged := n < 2
	orth := jacobiEps * math.Max(1, float64(m))
	var (
		p, q, i, sweep     int
		alpha, beta, absG  float64
		gamma, omega, x, y E
		zeta, t, c, s      float64
		cE, sE, sOmegaConj E
		rotated            bool
	)
	for sweep = 0; sweep < maxSweeps && !converged; sweep++ {
		rotated = false
		for p = 0; p < n-1; p++ {
			for q = p + 1; q < n; q++ {
				alpha, beta, gamma = 0, 0, 0
				for i = 0; i < m; i++ {
					x, y = w.Data[i*n+p], w.Data[i*n+q]
					alpha += Abs2(x)
					beta += Abs2(y)
					gamma += Conj(x) * y
				}
				absG = Abs(gamma)
				if absG == 0 || absG <= orth*math.Sqrt(alpha*beta) {
					continue
				}
				rotated = true
				omega = gamma / FromReal[E](absG)
				zeta = (beta - alpha) / (2 * absG)
				t = sign(zeta) / (math.Abs(zeta) + math.Sqrt(1+zeta*zeta))
				c = 1 / math.Sqrt(1+t*t)
				s = c * t
				cE, sE = FromReal[E](c), FromReal[E](s)
				sOmegaConj = sE * Conj(omega)
				rotateColumns(w, p, q, cE, sE, Conj(omega), sOmegaConj)
				rotateColumns(v, p, q, cE, sE, Conj(omega), sOmegaConj)
			}
		}
		converged = !rotated
	}
	if !converged {
		return SVDResult[E]{}, false
	}

	// Column norms, descending order.
	sigma := make([]float64, n)
	order := make([]int, n)
	for j := 0; j < n; j++ {
		var s2 float64
		for i = 0; i < m; i++ {
			s2 += Abs2(w.Data[i*n+j])
		}
		sigma[j] = math.Sqrt(s2)
		order[j] = j
	}
	sort.SliceStable(order, func(x, y int) bool { return sigma[order[x]] > sigma[order[y]] })

	u := New[E](m, m)
	vt := New[E](n, n)
	sorted := make([]float64, n)
	tiny := jacobiEps * firstOr(sigma, order)
	filled := 0
	for k, j := range order {
		sorted[k] = sigma[j]
		for l := 0; l < n; l++ {
			vt.Data[k*n+l] = Conj(v.Data[l*n+j]) // row k of Vᴴ = conj(column j of V)
		}
		if sigma[j] > tiny {
			inv := FromReal[E](1 / sigma[j])
			for i = 0; i < m; i++ {
				u.Data[i*m+k] = w.Data[i*n+j] * inv
			}
			filled = k + 1
		}
	}
	completeBasis(u, filled)

	return SVDResult[E]{Sigma: sorted, U: u, Vt: vt}, true
}

// rotateColumns applies the unitary plane rotation to columns p,q of m:
// x' = c·x − s·ω̄·y, y' = s·x + c·ω̄·y.
func rotateColumns[E Scalar](m Mat[E], p, q int, c, s, omegaConj, sOmegaConj E) {
	var x, y E
	for i := 0; i < m.Rows; i++ {
		x, y = m.Data[i*m.Cols+p], m.Data[i*m.Cols+q]
		m.Data[i*m.Cols+p] = c*x - sOmegaConj*y
		m.Data[i*m.Cols+q] = s*x + c*omegaConj*y
	}
}

func firstOr(sigma []float64, order []int) float64 {
	if len(order) == 0 {
		return 0
	}

	return sigma[order[0]]
}

// completeBasis fills columns filled..m-1 of the m×m matrix u, whose first
// `filled` columns are orthonormal, with further orthonormal columns.
func completeBasis[E Scalar](u Mat[E], filled int) {
	m := u.Rows
	if filled >= m {
		return
	}
	thr := 0.5 / math.Sqrt(float64(m))
	cand := make([]E, m)
	for e := 0; e < m && filled < m; e++ {
		for i := range cand {
			cand[i] = 0
		}
		cand[e] = 1
		for pass := 0; pass < 2; pass++ {
			for k := 0; k < filled; k++ {
				var dot E
				for i := 0; i < m; i++ {
					dot += Conj(u.Data[i*m+k]) * cand[i]
				}
				for i := 0; i < m; i++ {
					cand[i] -= dot * u.Data[i*m+k]
				}
			}
		}
		var nrm float64
		for _, c := range cand {
			nrm += Abs2(c)
		}
		nrm = math.Sqrt(nrm)
		if nrm <= thr {
			continue
		}
		inv := FromReal[E](1 / nrm)
		for i := 0; i < m; i++ {
			u.Data[i*m+filled] = cand[i] * inv
		}
		filled++
	}
}

// NumericalRank counts singular values above tol × σ_max.
func NumericalRank(sigma []float64, tol float64) int {
	if len(sigma) == 0 || sigma[0] == 0 {
		return 0
	}
	thr := tol * sigma[0]
	r := 0
	for _, s := range sigma {
		if s > thr {
			r++
		}
	}

	return r
}

// PseudoSolve returns the minimum-norm least-squares solution X = V·Σ⁺·Uᴴ·b,
// treating singular values at or below tol × σ_max as zero.
func PseudoSolve[E Scalar](res SVDResult[E], b Mat[E], tol float64) Mat[E] {
	m, n, r := res.U.Rows, res.Vt.Cols, b.Cols
	rank := NumericalRank(res.Sigma, tol)
	// y = Σ⁺·(Uᴴ·b) restricted to the first rank rows.
	y := New[E](rank, r)
	var s E
	for k := 0; k < rank; k++ {
		inv := FromReal[E](1 / res.Sigma[k])
		for j := 0; j < r; j++ {
			s = 0
			for i := 0; i < m; i++ {
				s += Conj(res.U.Data[i*m+k]) * b.Data[i*r+j]
			}
			y.Data[k*r+j] = s * inv
		}
	}
	// X = V[:, :rank]·y, V = Vtᴴ.
	x := New[E](n, r)
	for i := 0; i < n; i++ {
		for k := 0; k < rank; k++ {
			vik := Conj(res.Vt.Data[k*n+i])
			for j := 0; j < r; j++ {
				x.Data[i*r+j] += vik * y.Data[k*r+j]
			}
		}
	}

	return x
}

// RightNullspace returns an orthonormal basis of {x : a·x = 0} as columns (n×k).
func RightNullspace[E Scalar](res SVDResult[E], tol float64) Mat[E] {
	n := res.Vt.Rows
	rank := NumericalRank(res.Sigma, tol)
	k := n - rank
	out := New[E](n, k)
	for c := 0; c < k; c++ {
		for i := 0; i < n; i++ {
			out.Data[i*k+c] = Conj(res.Vt.Data[(rank+c)*n+i])
		}
	}

	return out
}

// LeftNullspace returns an orthonormal basis of {x : x·a = 0} as rows (k×m).
func LeftNullspace[E Scalar](res SVDResult[E], tol float64) Mat[E] {
	m := res.U.Rows
	rank := NumericalRank(res.Sigma, tol)
	k := m - rank
	out := New[E](k, m)
	for r := 0; r < k; r++ {
		for i := 0; i < m; i++ {
			out.Data[r*m+i] = Conj(res.U.Data[i*m+rank+r])
		}
	}

	return out
}
