// SPDX-License-Identifier: MIT

package numeric

import (
	"math"
	"sort"
)

// hermitianTol is the convergence threshold of the Jacobi eigen solver,
// relative to the Frobenius norm of the input.
const hermitianTol = 1e-14

// EigenHermitian computes eigenvalues (ascending, real) and optionally
// eigenvectors (columns, orthonormal) of a self-adjoint matrix via Jacobi rotations.
// Implementation:
//   - Stage 1: Copy A, initialize V = I. Only the upper triangle drives pivot
//     selection; symmetry / self-adjointness is assumed, not verified.
//   - Stage 2: Repeatedly pick (p,q) with the largest |A[p,q]| in i→j order and
//     apply the unitary rotation J = diag(1, ω̄)·R(c,s), ω = A[p,q]/|A[p,q]|,
//     θ = (A[q,q]−A[p,p])/(2|A[p,q]|), t = sign(θ)/(|θ|+√(θ²+1)).
//
// Behavior highlights:
//   - Stable, deterministic pivot scan; the rotated entry is set to exact zero.
//
// Returns:
//   - ok=false when the off-diagonal mass did not vanish within maxSweeps·n²
//     rotations or the input is not finite.
//
// Complexity:
//   - Time O(rotations·n), each pivot search O(n²); Space O(n²).
//
// AI-Hints:
//   - Pass wantVectors=false when only eigenvalues are needed; V is then not accumulated.
func EigenHermitian[E Scalar](a Mat[E], maxSweeps int, wantVectors bool) ([]float64, Mat[E], bool) {
	n := a.Rows
	if !AllFinite(a) {
		return nil, Mat[E]{}, false
	}
	w := a.Clone()
	var v Mat[E]
	if wantVectors {
		v = Identity[E](n)
	}
	tol := hermitianTol * FrobeniusNorm(a)
	maxIter := maxSweeps * max(n*n, 1)

	var (
		iter, i, j, p, q int
		maxOff, off      float64
		app, aqq, absPQ  float64
		theta, t, c, s   float64
		omega, x, y      E
		cE, sOm, sOmConj E
		converged        bool
	)
	for iter = 0; iter <= maxIter; iter++ {
		// J.1: Find pivot (p,q) maximizing |A[p,q]|
		maxOff = 0
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if off = Abs(w.Data[i*n+j]); off > maxOff {
					maxOff, p, q = off, i, j
				}
			}
		}
		// J.2: Check convergence
		if maxOff <= tol {
			converged = true
			break
		}
		if iter == maxIter {
			break
		}

		// J.3: Rotation parameters from A[p,p], A[q,q], A[p,q]
		app, aqq = Real(w.Data[p*n+p]), Real(w.Data[q*n+q])
		absPQ = maxOff
		omega = w.Data[p*n+q] / FromReal[E](absPQ)
		theta = (aqq - app) / (2 * absPQ)
		t = sign(theta) / (math.Abs(theta) + math.Hypot(theta, 1))
		c = 1 / math.Sqrt(t*t+1)
		s = t * c
		cE = FromReal[E](c)
		sOm = FromReal[E](s) * omega
		sOmConj = FromReal[E](s) * Conj(omega)

		// J.4: A ← A·J (columns p,q), then A ← Jᴴ·A (rows p,q)
		for i = 0; i < n; i++ {
			x, y = w.Data[i*n+p], w.Data[i*n+q]
			w.Data[i*n+p] = cE*x - sOmConj*y
			w.Data[i*n+q] = FromReal[E](s)*x + cE*Conj(omega)*y
		}
		for j = 0; j < n; j++ {
			x, y = w.Data[p*n+j], w.Data[q*n+j]
			w.Data[p*n+j] = cE*x - sOm*y
			w.Data[q*n+j] = FromReal[E](s)*x + cE*omega*y
		}
		w.Data[p*n+q], w.Data[q*n+p] = 0, 0
		w.Data[p*n+p] = FromReal[E](Real(w.Data[p*n+p]))
		w.Data[q*n+q] = FromReal[E](Real(w.Data[q*n+q]))

		// J.5: Accumulate V ← V·J
		if wantVectors {
			for i = 0; i < n; i++ {
				x, y = v.Data[i*n+p], v.Data[i*n+q]
				v.Data[i*n+p] = cE*x - sOmConj*y
				v.Data[i*n+q] = FromReal[E](s)*x + cE*Conj(omega)*y
			}
		}
	}
	if !converged {
		return nil, Mat[E]{}, false
	}

	// Extract and sort ascending, permuting eigenvector columns alongside.
	vals := make([]float64, n)
	order := make([]int, n)
	for i = 0; i < n; i++ {
		vals[i] = Real(w.Data[i*n+i])
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool { return vals[order[x]] < vals[order[y]] })
	sorted := make([]float64, n)
	var vecs Mat[E]
	if wantVectors {
		vecs = New[E](n, n)
	}
	for k, idx := range order {
		sorted[k] = vals[idx]
		if wantVectors {
			for i = 0; i < n; i++ {
				vecs.Data[i*n+k] = v.Data[i*n+idx]
			}
		}
	}

	return sorted, vecs, true
}
