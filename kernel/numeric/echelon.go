// SPDX-License-Identifier: MIT

package numeric

// Echelon returns the reduced row echelon form of a computed with partial
// pivoting, together with its pivot columns.
//
// Implementation:
//   - Stage 1: threshold = tol × MaxAbs(a); a candidate pivot at or below the
//     threshold makes the column dependent on the previous pivots.
//   - Stage 2: per column pick the largest-magnitude candidate row, swap,
//     normalize, eliminate the column from every other row.
//
// Behavior highlights:
//   - Pivot columns are the lexicographically first numerically independent
//     columns; the row choice only affects stability.
//
// Complexity:
//   - Time O(r*c*min(r,c)), Space O(r*c).
func Echelon[E Scalar](a Mat[E], tol float64) (Mat[E], []int) {
	w := a.Clone()
	thr := tol * MaxAbs(a)
	pivots := make([]int, 0, min(a.Rows, a.Cols))
	var (
		r, i, j, k, p int
		best, mag     float64
		inv, x        E
		c             = w.Cols
	)
	for j = 0; j < c && r < w.Rows; j++ {
		p, best = -1, thr
		for i = r; i < w.Rows; i++ {
			if mag = Abs(w.Data[i*c+j]); mag > best {
				p, best = i, mag
			}
		}
		if p < 0 {
			for i = r; i < w.Rows; i++ {
				w.Data[i*c+j] = 0 // numerically zero below the current row
			}
			continue
		}
		if p != r {
			for k = 0; k < c; k++ {
				w.Data[r*c+k], w.Data[p*c+k] = w.Data[p*c+k], w.Data[r*c+k]
			}
		}
		inv = 1 / w.Data[r*c+j]
		for k = j; k < c; k++ {
			w.Data[r*c+k] *= inv
		}
		w.Data[r*c+j] = 1
		for i = 0; i < w.Rows; i++ {
			if i == r {
				continue
			}
			if x = w.Data[i*c+j]; x == 0 {
				continue
			}
			for k = j; k < c; k++ {
				w.Data[i*c+k] -= x * w.Data[r*c+k]
			}
			w.Data[i*c+j] = 0
		}
		pivots = append(pivots, j)
		r++
	}

	return w, pivots
}

// ColumnProfile returns the pivot columns of Echelon(a, tol).
func ColumnProfile[E Scalar](a Mat[E], tol float64) []int {
	_, pivots := Echelon(a, tol)

	return pivots
}

// RowProfile returns the lexicographically first numerically independent rows.
// It is the column profile of aᵀ.
func RowProfile[E Scalar](a Mat[E], tol float64) []int {
	return ColumnProfile(a.Transpose(), tol)
}

// NullspaceU returns a basis of the right null space read off the echelon
// form: one column per free variable (cols(a)×k). The basis is not orthonormal.
func NullspaceU[E Scalar](a Mat[E], tol float64) Mat[E] {
	w, pivots := Echelon(a, tol)
	n := a.Cols
	isPivot := make([]bool, n)
	for _, p := range pivots {
		isPivot[p] = true
	}
	k := n - len(pivots)
	out := New[E](n, k)
	col := 0
	for fc := 0; fc < n; fc++ {
		if isPivot[fc] {
			continue
		}
		out.Data[fc*k+col] = 1
		for r, p := range pivots {
			out.Data[p*k+col] = -w.At(r, fc)
		}
		col++
	}

	return out
}
