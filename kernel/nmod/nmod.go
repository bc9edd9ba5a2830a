// SPDX-License-Identifier: MIT

// Package nmod - exact linear algebra over Z/pZ with machine-word moduli.
//
// Purpose:
//   - Provide the word-size prime field kernel: product, fused update, rank,
//     determinant, inverse, right null space, right solve and rank profiles.
//   - Store matrices COLUMN-MAJOR: entry (i,j) of an r×c Mat lives at Data[i+j*r].
//
// Layout note:
//   - A row-major r×c buffer handed to this package unchanged is the c×r
//     transpose. Callers holding row-major data exploit that instead of copying
//     (see linalg's ZZ/p strategy).
//
// Determinism:
//   - Pivot search is first-non-zero in fixed order; results are canonical
//     (reduced row echelon form), so equal inputs give equal outputs.
//
// Complexity quicksheet:
//   - Mul: O(r*k*c) field multiplications; elimination routines: O(r*c*min(r,c)).
package nmod

import "github.com/katalvlaran/lvlalg/ring"

// Mat is a column-major matrix view over a word-size prime field.
type Mat struct {
	Rows, Cols int
	Data       []uint64 // len == Rows*Cols, entry (i,j) at i + j*Rows
}

// New allocates a zero rows×cols matrix.
func New(rows, cols int) Mat {
	return Mat{Rows: rows, Cols: cols, Data: make([]uint64, rows*cols)}
}

// View wraps data (column-major, len rows*cols) without copying.
func View(rows, cols int, data []uint64) Mat {
	return Mat{Rows: rows, Cols: cols, Data: data}
}

// At returns entry (i,j). Indices are not checked.
func (m Mat) At(i, j int) uint64 { return m.Data[i+j*m.Rows] }

func (m Mat) set(i, j int, v uint64) { m.Data[i+j*m.Rows] = v }

// Clone returns a deep copy.
func (m Mat) Clone() Mat {
	return Mat{Rows: m.Rows, Cols: m.Cols, Data: append([]uint64(nil), m.Data...)}
}

// Transpose returns mᵀ as a fresh column-major matrix.
func Transpose(m Mat) Mat {
	out := New(m.Cols, m.Rows)
	var i, j int
	for j = 0; j < m.Cols; j++ {
		for i = 0; i < m.Rows; i++ {
			out.Data[j+i*m.Cols] = m.Data[i+j*m.Rows]
		}
	}

	return out
}

// Mul returns A·B. Requires a.Cols == b.Rows.
//
// Implementation:
//   - Column j of C is the combination Σ_k B[k,j]·A[:,k]; the inner loop walks
//     one contiguous column of A.
func Mul(f ring.ZZp, a, b Mat) Mat {
	c := New(a.Rows, b.Cols)
	accumulate(f, c.Data, a, b, false)

	return c
}

// AddMul performs C ← C + A·B in place. A or B may alias C.
func AddMul(f ring.ZZp, c, a, b Mat) {
	acc := append([]uint64(nil), c.Data...)
	accumulate(f, acc, a, b, false)
	copy(c.Data, acc)
}

// SubMul performs C ← C − A·B in place. A or B may alias C.
func SubMul(f ring.ZZp, c, a, b Mat) {
	acc := append([]uint64(nil), c.Data...)
	accumulate(f, acc, a, b, true)
	copy(c.Data, acc)
}

func accumulate(f ring.ZZp, acc []uint64, a, b Mat, subtract bool) {
	m := a.Rows
	var (
		i, j, k  int
		bkj, t   uint64
		colA, cC int
	)
	for j = 0; j < b.Cols; j++ {
		cC = j * m
		for k = 0; k < a.Cols; k++ {
			bkj = b.Data[k+j*b.Rows]
			if bkj == 0 {
				continue
			}
			colA = k * m
			for i = 0; i < m; i++ {
				t = f.Mul(a.Data[colA+i], bkj)
				if subtract {
					acc[cC+i] = f.Sub(acc[cC+i], t)
				} else {
					acc[cC+i] = f.Add(acc[cC+i], t)
				}
			}
		}
	}
}

// swapRows exchanges rows r1 and r2 across all columns.
func swapRows(w Mat, r1, r2 int) {
	if r1 == r2 {
		return
	}
	for j := 0; j < w.Cols; j++ {
		w.Data[r1+j*w.Rows], w.Data[r2+j*w.Rows] = w.Data[r2+j*w.Rows], w.Data[r1+j*w.Rows]
	}
}

// scaleRow multiplies row r by s from column `from` on.
func scaleRow(f ring.ZZp, w Mat, r, from int, s uint64) {
	for j := from; j < w.Cols; j++ {
		w.Data[r+j*w.Rows] = f.Mul(w.Data[r+j*w.Rows], s)
	}
}

// axpyRow performs row dst ← row dst − s·row src from column `from` on.
func axpyRow(f ring.ZZp, w Mat, dst, src, from int, s uint64) {
	for j := from; j < w.Cols; j++ {
		w.Data[dst+j*w.Rows] = f.Sub(w.Data[dst+j*w.Rows], f.Mul(s, w.Data[src+j*w.Rows]))
	}
}

// reduce brings w to reduced row echelon form in place, searching pivots only
// in columns < limit. Returns the pivot columns in increasing order.
func reduce(f ring.ZZp, w Mat, limit int) []int {
	pivots := make([]int, 0, min(w.Rows, limit))
	var r, i, j, p int
	var inv, x uint64
	for j = 0; j < limit && r < w.Rows; j++ {
		p = -1
		for i = r; i < w.Rows; i++ {
			if w.Data[i+j*w.Rows] != 0 {
				p = i
				break
			}
		}
		if p < 0 {
			continue
		}
		swapRows(w, r, p)
		inv = f.Inv(w.Data[r+j*w.Rows])
		scaleRow(f, w, r, j, inv)
		for i = 0; i < w.Rows; i++ {
			if i == r {
				continue
			}
			if x = w.Data[i+j*w.Rows]; x != 0 {
				axpyRow(f, w, i, r, j, x)
			}
		}
		pivots = append(pivots, j)
		r++
	}

	return pivots
}

// Rank returns the rank of a.
func Rank(f ring.ZZp, a Mat) int {
	return len(reduce(f, a.Clone(), a.Cols))
}

// Det returns the determinant of the square matrix a (1 for 0×0).
func Det(f ring.ZZp, a Mat) uint64 {
	n := a.Rows
	w := a.Clone()
	det := uint64(1)
	var i, j, p int
	var inv, x uint64
	for j = 0; j < n; j++ {
		p = -1
		for i = j; i < n; i++ {
			if w.Data[i+j*n] != 0 {
				p = i
				break
			}
		}
		if p < 0 {
			return 0
		}
		if p != j {
			swapRows(w, j, p)
			det = f.Neg(det)
		}
		det = f.Mul(det, w.Data[j+j*n])
		inv = f.Inv(w.Data[j+j*n])
		for i = j + 1; i < n; i++ {
			if x = w.Data[i+j*n]; x != 0 {
				axpyRow(f, w, i, j, j, f.Mul(x, inv))
			}
		}
	}

	return det
}

// Inverse returns a⁻¹ for square a; ok is false when a is singular.
func Inverse(f ring.ZZp, a Mat) (Mat, bool) {
	n := a.Rows
	aug := New(n, 2*n)
	copy(aug.Data, a.Data) // first n columns
	for i := 0; i < n; i++ {
		aug.set(i, n+i, 1)
	}
	if len(reduce(f, aug, n)) < n {
		return Mat{}, false
	}

	return View(n, n, append([]uint64(nil), aug.Data[n*n:]...)), true
}

// Nullspace returns a basis of {x : a·x = 0} as the columns of an a.Cols×k matrix.
//
// Implementation:
//   - One basis vector per free column f of rref(a): x[f] = 1 and
//     x[pivot_r] = −R[r,f] for every pivot row r.
func Nullspace(f ring.ZZp, a Mat) Mat {
	w := a.Clone()
	pivots := reduce(f, w, w.Cols)
	n := a.Cols
	isPivot := make([]bool, n)
	for _, p := range pivots {
		isPivot[p] = true
	}
	out := New(n, n-len(pivots))
	k := 0
	for fc := 0; fc < n; fc++ {
		if isPivot[fc] {
			continue
		}
		out.set(fc, k, 1)
		for r, p := range pivots {
			out.set(p, k, f.Neg(w.At(r, fc)))
		}
		k++
	}

	return out
}

// Solve finds one X with a·X = b. ok is false when the system is inconsistent.
// Requires a.Rows == b.Rows; X is a.Cols × b.Cols with free variables set to zero.
func Solve(f ring.ZZp, a, b Mat) (Mat, bool) {
	m, n, r := a.Rows, a.Cols, b.Cols
	aug := New(m, n+r)
	copy(aug.Data, a.Data)
	copy(aug.Data[m*n:], b.Data)
	pivots := reduce(f, aug, n)
	var i, j int
	for i = len(pivots); i < m; i++ {
		for j = n; j < n+r; j++ {
			if aug.At(i, j) != 0 {
				return Mat{}, false
			}
		}
	}
	x := New(n, r)
	for row, p := range pivots {
		for j = 0; j < r; j++ {
			x.set(p, j, aug.At(row, n+j))
		}
	}

	return x, true
}

// ColumnProfile returns the lexicographically first maximal set of linearly
// independent columns (the pivot columns of rref(a)).
func ColumnProfile(f ring.ZZp, a Mat) []int {
	return reduce(f, a.Clone(), a.Cols)
}

// RowProfile returns the lexicographically first maximal set of linearly
// independent rows.
//
// Implementation:
//   - Rows are inserted in order into an echelon basis; a row that reduces to
//     zero against the basis is dependent on its predecessors.
func RowProfile(f ring.ZZp, a Mat) []int {
	n := a.Cols
	basis := make([][]uint64, 0, min(a.Rows, n)) // normalized rows, leading entry 1
	lead := make([]int, 0, min(a.Rows, n))
	profile := make([]int, 0, min(a.Rows, n))
	row := make([]uint64, n)
	var i, j, k int
	var x uint64
	for i = 0; i < a.Rows; i++ {
		for j = 0; j < n; j++ {
			row[j] = a.Data[i+j*a.Rows]
		}
		for k = range basis {
			if x = row[lead[k]]; x != 0 {
				for j = lead[k]; j < n; j++ {
					row[j] = f.Sub(row[j], f.Mul(x, basis[k][j]))
				}
			}
		}
		j = 0
		for j < n && row[j] == 0 {
			j++
		}
		if j == n {
			continue
		}
		inv := f.Inv(row[j])
		nb := make([]uint64, n)
		for k = j; k < n; k++ {
			nb[k] = f.Mul(row[k], inv)
		}
		// eliminate the new leading column from existing basis rows
		for k = range basis {
			if x = basis[k][j]; x != 0 {
				for c := j; c < n; c++ {
					basis[k][c] = f.Sub(basis[k][c], f.Mul(x, nb[c]))
				}
			}
		}
		basis = append(basis, nb)
		lead = append(lead, j)
		profile = append(profile, i)
	}

	return profile
}
