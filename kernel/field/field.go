// SPDX-License-Identifier: MIT

// Package field - exact Gaussian elimination over any field, row-major.
//
// Purpose:
//   - Serve the exact domains without a specialized kernel (arbitrary-precision
//     prime fields, rationals): rank, determinant, inverse, right null space,
//     right solve and both rank profiles.
//   - Work directly on matrix.Dense buffers; results are fresh matrices.
//
// Determinism:
//   - First-non-zero pivoting in fixed scan order; outputs are canonical
//     (reduced row echelon based), hence reproducible across runs.
//
// AI-Hints:
//   - Left-side variants are obtained by the caller through transposition:
//     left null space of A = (right null space of Aᵀ)ᵀ, XA = B ⇔ AᵀXᵀ = Bᵀ.
package field

import (
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/ring"
)

// work is a mutable row-major scratch copy of a matrix.
type work[E any] struct {
	f    ring.Field[E]
	r, c int
	d    []E
}

func newWork[E any](f ring.Field[E], r, c int) *work[E] {
	d := make([]E, r*c)
	z := f.Zero()
	for i := range d {
		d[i] = z
	}

	return &work[E]{f: f, r: r, c: c, d: d}
}

// load copies the r×cols block src into w starting at column off.
func (w *work[E]) load(src []E, cols, off int) {
	rows := len(src) / max(cols, 1)
	for i := 0; i < rows; i++ {
		copy(w.d[i*w.c+off:i*w.c+off+cols], src[i*cols:(i+1)*cols])
	}
}

func (w *work[E]) at(i, j int) E { return w.d[i*w.c+j] }

func (w *work[E]) swap(r1, r2 int) {
	if r1 == r2 {
		return
	}
	a, b := w.d[r1*w.c:(r1+1)*w.c], w.d[r2*w.c:(r2+1)*w.c]
	for j := range a {
		a[j], b[j] = b[j], a[j]
	}
}

// reduce performs reduced row echelon elimination in place with pivots taken
// from columns < limit. Returns the pivot columns.
func (w *work[E]) reduce(limit int) []int {
	f := w.f
	pivots := make([]int, 0, min(w.r, limit))
	var r, i, j, k, p int
	var inv, x E
	for j = 0; j < limit && r < w.r; j++ {
		p = -1
		for i = r; i < w.r; i++ {
			if !f.IsZero(w.d[i*w.c+j]) {
				p = i
				break
			}
		}
		if p < 0 {
			continue
		}
		w.swap(r, p)
		inv = f.Inv(w.d[r*w.c+j])
		for k = j; k < w.c; k++ {
			w.d[r*w.c+k] = f.Mul(w.d[r*w.c+k], inv)
		}
		for i = 0; i < w.r; i++ {
			if i == r {
				continue
			}
			if x = w.d[i*w.c+j]; f.IsZero(x) {
				continue
			}
			for k = j; k < w.c; k++ {
				w.d[i*w.c+k] = f.Sub(w.d[i*w.c+k], f.Mul(x, w.d[r*w.c+k]))
			}
		}
		pivots = append(pivots, j)
		r++
	}

	return pivots
}

func fromDense[E any](f ring.Field[E], a *matrix.Dense[E]) *work[E] {
	w := newWork(f, a.Rows(), a.Cols())
	copy(w.d, a.Raw())

	return w
}

// Rank returns the rank of a.
func Rank[E any](f ring.Field[E], a *matrix.Dense[E]) int {
	return len(fromDense(f, a).reduce(a.Cols()))
}

// Det returns the determinant of square a; 1 for the 0×0 matrix.
func Det[E any](f ring.Field[E], a *matrix.Dense[E]) E {
	n := a.Rows()
	w := fromDense(f, a)
	det := f.One()
	var i, j, k, p int
	var inv, x E
	for j = 0; j < n; j++ {
		p = -1
		for i = j; i < n; i++ {
			if !f.IsZero(w.at(i, j)) {
				p = i
				break
			}
		}
		if p < 0 {
			return f.Zero()
		}
		if p != j {
			w.swap(j, p)
			det = f.Neg(det)
		}
		det = f.Mul(det, w.at(j, j))
		inv = f.Inv(w.at(j, j))
		for i = j + 1; i < n; i++ {
			if x = w.at(i, j); f.IsZero(x) {
				continue
			}
			x = f.Mul(x, inv)
			for k = j; k < n; k++ {
				w.d[i*n+k] = f.Sub(w.d[i*n+k], f.Mul(x, w.d[j*n+k]))
			}
		}
	}

	return det
}

// Inverse returns a⁻¹ for square a, ok=false when singular.
func Inverse[E any](f ring.Field[E], a *matrix.Dense[E]) (*matrix.Dense[E], bool, error) {
	n := a.Rows()
	w := newWork(f, n, 2*n)
	w.load(a.Raw(), n, 0)
	one := f.One()
	for i := 0; i < n; i++ {
		w.d[i*w.c+n+i] = one
	}
	if len(w.reduce(n)) < n {
		return nil, false, nil
	}
	out, err := matrix.NewDense[E](f, n, n)
	if err != nil {
		return nil, false, err
	}
	raw := out.Raw()
	for i := 0; i < n; i++ {
		copy(raw[i*n:(i+1)*n], w.d[i*w.c+n:(i+1)*w.c])
	}

	return out, true, nil
}

// Nullspace returns a cols(a)×k matrix whose columns form a basis of {x : a·x = 0}.
func Nullspace[E any](f ring.Field[E], a *matrix.Dense[E]) (*matrix.Dense[E], error) {
	w := fromDense(f, a)
	pivots := w.reduce(w.c)
	n := a.Cols()
	isPivot := make([]bool, n)
	for _, p := range pivots {
		isPivot[p] = true
	}
	k := n - len(pivots)
	out, err := matrix.NewDense[E](f, n, k)
	if err != nil {
		return nil, err
	}
	raw := out.Raw()
	one := f.One()
	col := 0
	for fc := 0; fc < n; fc++ {
		if isPivot[fc] {
			continue
		}
		raw[fc*k+col] = one
		for r, p := range pivots {
			raw[p*k+col] = f.Neg(w.at(r, fc))
		}
		col++
	}

	return out, nil
}

// Solve returns one X with a·X = b (free variables zero); ok=false when inconsistent.
// Requires rows(a) == rows(b).
func Solve[E any](f ring.Field[E], a, b *matrix.Dense[E]) (*matrix.Dense[E], bool, error) {
	m, n, r := a.Rows(), a.Cols(), b.Cols()
	w := newWork(f, m, n+r)
	w.load(a.Raw(), n, 0)
	w.load(b.Raw(), r, n)
	pivots := w.reduce(n)
	var i, j int
	for i = len(pivots); i < m; i++ {
		for j = n; j < n+r; j++ {
			if !f.IsZero(w.at(i, j)) {
				return nil, false, nil
			}
		}
	}
	x, err := matrix.NewDense[E](f, n, r)
	if err != nil {
		return nil, false, err
	}
	raw := x.Raw()
	for row, p := range pivots {
		copy(raw[p*r:(p+1)*r], w.d[row*w.c+n:(row+1)*w.c])
	}

	return x, true, nil
}

// ColumnProfile returns the pivot columns of rref(a): the lexicographically
// first maximal independent set of columns.
func ColumnProfile[E any](f ring.Field[E], a *matrix.Dense[E]) []int {
	return fromDense(f, a).reduce(a.Cols())
}

// RowProfile returns the lexicographically first maximal independent set of rows.
// It is the column profile of aᵀ.
func RowProfile[E any](f ring.Field[E], a *matrix.Dense[E]) []int {
	w := newWork(f, a.Cols(), a.Rows())
	copy(w.d, matrix.TransposeRaw(a.Raw(), a.Rows(), a.Cols()))

	return w.reduce(w.c)
}
