// SPDX-License-Identifier: MIT

// Package numeric - floating-point dense kernels generic over float64 and complex128.
//
// Purpose:
//   - Provide the factorizations the fixed-precision domains need when no
//     library routine exists for the element type (notably complex128):
//     pivoted echelon form, partially pivoted LU, Householder least squares,
//     one-sided Jacobi SVD, Jacobi Hermitian eigen and complex Schur eigen.
//   - Operate on row-major Mat values that alias matrix.Dense buffers; inputs
//     are never mutated, results are fresh.
//
// Numeric policy:
//   - Rank decisions use a RELATIVE tolerance (tol × largest magnitude).
//   - Iterative methods are capped by a sweep/iteration budget and report
//     non-convergence through their boolean result.
//
// AI-Hints:
//   - The real instantiation matches LAPACK-backed results up to rounding;
//     tests compare through residuals, never bitwise.
package numeric

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/lvlalg/matrix"
)

// Scalar is the set of supported floating-point element types.
type Scalar interface {
	float64 | complex128
}

// Mat is a row-major matrix: entry (i,j) at Data[i*Cols+j].
type Mat[E Scalar] struct {
	Rows, Cols int
	Data       []E
}

// New allocates a zero rows×cols matrix.
func New[E Scalar](rows, cols int) Mat[E] {
	return Mat[E]{Rows: rows, Cols: cols, Data: make([]E, rows*cols)}
}

// View wraps the buffer of d without copying.
func View[E Scalar](d *matrix.Dense[E]) Mat[E] {
	return Mat[E]{Rows: d.Rows(), Cols: d.Cols(), Data: d.Raw()}
}

// Identity returns the n×n identity.
func Identity[E Scalar](n int) Mat[E] {
	m := New[E](n, n)
	for i := 0; i < n; i++ {
		m.Data[i*n+i] = 1
	}

	return m
}

// At returns entry (i,j). Indices are not checked.
func (m Mat[E]) At(i, j int) E { return m.Data[i*m.Cols+j] }

// Clone returns a deep copy.
func (m Mat[E]) Clone() Mat[E] {
	return Mat[E]{Rows: m.Rows, Cols: m.Cols, Data: append([]E(nil), m.Data...)}
}

// Transpose returns mᵀ.
func (m Mat[E]) Transpose() Mat[E] {
	return Mat[E]{Rows: m.Cols, Cols: m.Rows, Data: matrix.TransposeRaw(m.Data, m.Rows, m.Cols)}
}

// ConjTranspose returns mᴴ (mᵀ for real matrices).
func (m Mat[E]) ConjTranspose() Mat[E] {
	t := m.Transpose()
	if !IsComplex[E]() {
		return t
	}
	for i, v := range t.Data {
		t.Data[i] = Conj(v)
	}

	return t
}

// Mul returns a·b. Requires a.Cols == b.Rows.
func Mul[E Scalar](a, b Mat[E]) Mat[E] {
	c := New[E](a.Rows, b.Cols)
	MulAdd(c, a, b, 1)

	return c
}

// MulAdd performs C ← C + alpha·A·B in place. A or B may alias C.
func MulAdd[E Scalar](c, a, b Mat[E], alpha E) {
	acc := append([]E(nil), c.Data...)
	var (
		i, k, j int
		av      E
		n       = b.Cols
	)
	for i = 0; i < a.Rows; i++ {
		for k = 0; k < a.Cols; k++ {
			av = alpha * a.Data[i*a.Cols+k]
			if av == 0 {
				continue
			}
			for j = 0; j < n; j++ {
				acc[i*n+j] += av * b.Data[k*n+j]
			}
		}
	}
	copy(c.Data, acc)
}

// MaxAbs returns the largest entry magnitude (0 for empty matrices).
func MaxAbs[E Scalar](m Mat[E]) float64 {
	var mx float64
	for _, v := range m.Data {
		if a := Abs(v); a > mx || math.IsNaN(a) {
			mx = a
		}
	}

	return mx
}

// FrobeniusNorm returns sqrt(Σ|a_ij|²).
func FrobeniusNorm[E Scalar](m Mat[E]) float64 {
	var s float64
	for _, v := range m.Data {
		s += Abs2(v)
	}

	return math.Sqrt(s)
}

// AllFinite reports whether no entry is NaN or infinite.
func AllFinite[E Scalar](m Mat[E]) bool {
	for _, v := range m.Data {
		a := Abs(v)
		if math.IsNaN(a) || math.IsInf(a, 0) {
			return false
		}
	}

	return true
}

// ---------- scalar helpers ----------

// IsComplex reports whether E is complex128.
func IsComplex[E Scalar]() bool {
	var z E
	_, ok := any(z).(complex128)

	return ok
}

// Abs returns |v|.
func Abs[E Scalar](v E) float64 { return matrix.Abs(v) }

// Abs2 returns |v|² without a square root.
func Abs2[E Scalar](v E) float64 {
	switch x := any(v).(type) {
	case float64:
		return x * x
	case complex128:
		return real(x)*real(x) + imag(x)*imag(x)
	}

	return math.NaN()
}

// Conj returns the complex conjugate (identity for reals).
func Conj[E Scalar](v E) E {
	if x, ok := any(v).(complex128); ok {
		return any(cmplx.Conj(x)).(E)
	}

	return v
}

// Real returns the real part.
func Real[E Scalar](v E) float64 {
	switch x := any(v).(type) {
	case float64:
		return x
	case complex128:
		return real(x)
	}

	return math.NaN()
}

// FromReal lifts a real number into E.
func FromReal[E Scalar](x float64) E {
	var z E
	if _, ok := any(z).(complex128); ok {
		return any(complex(x, 0)).(E)
	}

	return any(x).(E)
}

// ToComplex widens v to complex128.
func ToComplex[E Scalar](v E) complex128 {
	switch x := any(v).(type) {
	case float64:
		return complex(x, 0)
	case complex128:
		return x
	}

	return cmplx.NaN()
}

// phase returns v/|v|, or 1 for v == 0.
func phase[E Scalar](v E) E {
	a := Abs(v)
	if a == 0 {
		return 1
	}

	return v / FromReal[E](a)
}

// sign returns +1 for x >= 0 and -1 otherwise.
func sign(x float64) float64 {
	if x < 0 {
		return -1
	}

	return 1
}
