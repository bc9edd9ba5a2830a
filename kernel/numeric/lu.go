// SPDX-License-Identifier: MIT

package numeric

// LU computes a partially pivoted factorization of the square matrix a.
// MAIN DESCRIPTION:
//   - Returns unit lower L, upper U and perm such that row i of L·U equals
//     row perm[i] of a (equivalently a = P·L·U).
//
// Implementation:
//   - Doolittle elimination with the largest-magnitude pivot in each column.
//   - A column that is exactly zero on and below the diagonal is skipped, so
//     singular inputs still factor (U then has a zero on its diagonal).
//
// Returns:
//   - swaps: number of row transpositions (parity of perm).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func LU[E Scalar](a Mat[E]) (l, u Mat[E], perm []int, swaps int) {
	n := a.Rows
	w := a.Clone()
	perm = make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	var (
		i, j, k, p int
		best, mag  float64
		f          E
	)
	for k = 0; k < n; k++ {
		p, best = k, Abs(w.Data[k*n+k])
		for i = k + 1; i < n; i++ {
			if mag = Abs(w.Data[i*n+k]); mag > best {
				p, best = i, mag
			}
		}
		if p != k {
			for j = 0; j < n; j++ {
				w.Data[k*n+j], w.Data[p*n+j] = w.Data[p*n+j], w.Data[k*n+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
			swaps++
		}
		if w.Data[k*n+k] == 0 {
			continue
		}
		for i = k + 1; i < n; i++ {
			f = w.Data[i*n+k] / w.Data[k*n+k]
			w.Data[i*n+k] = f
			if f == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				w.Data[i*n+j] -= f * w.Data[k*n+j]
			}
		}
	}

	l, u = Identity[E](n), New[E](n, n)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if j < i {
				l.Data[i*n+j] = w.Data[i*n+j]
			} else {
				u.Data[i*n+j] = w.Data[i*n+j]
			}
		}
	}

	return l, u, perm, swaps
}

// Det returns the determinant of square a via LU (1 for 0×0).
func Det[E Scalar](a Mat[E]) E {
	_, u, _, swaps := LU(a)
	var d E = 1
	for i := 0; i < a.Rows; i++ {
		d *= u.Data[i*a.Rows+i]
	}
	if swaps%2 == 1 {
		d = -d
	}

	return d
}

// luSolve solves (P·L·U)·X = B given the factors; false on a zero pivot.
func luSolve[E Scalar](l, u Mat[E], perm []int, b Mat[E]) (Mat[E], bool) {
	n, r := l.Rows, b.Cols
	x := New[E](n, r)
	var i, j, k int
	var s E
	for j = 0; j < r; j++ {
		// forward: L·y = P⁻¹b, i.e. y_i uses b[perm[i]]
		for i = 0; i < n; i++ {
			s = b.Data[perm[i]*r+j]
			for k = 0; k < i; k++ {
				s -= l.Data[i*n+k] * x.Data[k*r+j]
			}
			x.Data[i*r+j] = s
		}
		// backward: U·x = y
		for i = n - 1; i >= 0; i-- {
			s = x.Data[i*r+j]
			for k = i + 1; k < n; k++ {
				s -= u.Data[i*n+k] * x.Data[k*r+j]
			}
			if u.Data[i*n+i] == 0 {
				return Mat[E]{}, false
			}
			x.Data[i*r+j] = s / u.Data[i*n+i]
		}
	}

	return x, AllFinite(x)
}

// SolveSquare solves a·X = b for square a; false when a has a zero pivot or
// the result is not finite.
func SolveSquare[E Scalar](a, b Mat[E]) (Mat[E], bool) {
	l, u, perm, _ := LU(a)

	return luSolve(l, u, perm, b)
}

// Inverse returns a⁻¹ for square a; false when singular.
func Inverse[E Scalar](a Mat[E]) (Mat[E], bool) {
	return SolveSquare(a, Identity[E](a.Rows))
}
