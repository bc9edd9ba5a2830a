// SPDX-License-Identifier: MIT
// Package matrix - ring-generic reference operations.
//
// Purpose:
//   - Provide the textbook kernels every coefficient domain supports: Add, Sub,
//     Scale, Transpose, Mul, the fused C ± A·B update and structural equality.
//   - Serve as the fallback multiply of domains without a specialized kernel
//     (integers, rationals, big prime fields) and as the reference the faster
//     kernels are tested against.
//
// Determinism:
//   - Fixed loop orders: flat 0..n-1 for elementwise ops, i→k→j for products.
//
// AI-Hints:
//   - Every function returns fresh storage; inputs are never mutated.
//   - AddProduct/SubProduct are the only in-place updates, and only of C.

package matrix

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Operation tags used for error wrapping.
const (
	opAdd        = "Add"
	opSub        = "Sub"
	opMul        = "Mul"
	opScale      = "Scale"
	opTranspose  = "Transpose"
	opAddProduct = "AddProduct"
	opSubProduct = "SubProduct"
)

// matrixErrorf wraps err with the operation tag; callers match the cause via errors.Is.
// Assumes err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a ± b over the matrix ring.
// Internal helper for Add/Sub to share validation and allocation.
//
// Complexity:
//   - Time O(r*c) ring operations, Space O(r*c) for the new result.
func addSub[E any](a, b *Dense[E], subtract bool, opTag string) (*Dense[E], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rg := a.rg
	out := make([]E, len(a.data))
	for idx := range a.data { // deterministic 0..n-1
		if subtract {
			out[idx] = rg.Sub(a.data[idx], b.data[idx])
		} else {
			out[idx] = rg.Add(a.data[idx], b.data[idx])
		}
	}

	return &Dense[E]{rg: rg, r: a.r, c: a.c, data: out}, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Errors: ErrNilMatrix, ErrRingMismatch, ErrDimensionMismatch.
func Add[E any](a, b *Dense[E]) (*Dense[E], error) { return addSub(a, b, false, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// Errors: ErrNilMatrix, ErrRingMismatch, ErrDimensionMismatch.
func Sub[E any](a, b *Dense[E]) (*Dense[E], error) { return addSub(a, b, true, opSub) }

// Scale returns alpha·M as a fresh matrix.
func Scale[E any](m *Dense[E], alpha E) (*Dense[E], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	out := make([]E, len(m.data))
	for idx, v := range m.data {
		out[idx] = m.rg.Mul(alpha, v)
	}

	return &Dense[E]{rg: m.rg, r: m.r, c: m.c, data: out}, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Element values are shared with m (they are immutable), the buffer is fresh.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose[E any](m *Dense[E]) (*Dense[E], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return &Dense[E]{rg: m.rg, r: m.c, c: m.r, data: TransposeRaw(m.data, m.r, m.c)}, nil
}

// TransposeRaw returns the c×r row-major transpose of the r×c row-major buffer src.
// Equivalently it converts between row-major and column-major layouts of one shape.
func TransposeRaw[E any](src []E, r, c int) []E {
	dst := make([]E, len(src))
	var i, j, base int
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			dst[j*r+i] = src[base+j]
		}
	}

	return dst
}

// Mul performs standard matrix multiplication C = A × B over the ring.
// Implementation:
//   - Stage 1: Validate A,B (not nil, same ring) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j with row-major strides, skipping zero A[i,k].
//
// Errors:
//   - ErrNilMatrix, ErrRingMismatch, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c) ring multiplications, Space O(r*c).
func Mul[E any](a, b *Dense[E]) (*Dense[E], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	out := zeroBuffer(a.rg, a.r*b.c)
	mulAccumulate(a.rg.Add, out, a, b)

	return &Dense[E]{rg: a.rg, r: a.r, c: b.c, data: out}, nil
}

// mulAccumulate folds every product A[i,k]·B[k,j] into acc[i*c+j] with combine.
func mulAccumulate[E any](combine func(x, y E) E, acc []E, a, b *Dense[E]) {
	rg := a.rg
	var (
		i, j, k                int
		av                     E
		rowA, rowB, rowC, cols = 0, 0, 0, b.c
	)
	for i = 0; i < a.r; i++ {
		rowA = i * a.c
		rowC = i * cols
		for k = 0; k < a.c; k++ {
			av = a.data[rowA+k]
			if rg.IsZero(av) {
				continue // skip zero for performance
			}
			rowB = k * cols
			for j = 0; j < cols; j++ {
				acc[rowC+j] = combine(acc[rowC+j], rg.Mul(av, b.data[rowB+j]))
			}
		}
	}
}

// AddProduct performs the fused update C ← C + A·B in place.
// Errors: ErrNilMatrix, ErrRingMismatch, ErrDimensionMismatch.
func AddProduct[E any](c, a, b *Dense[E]) error {
	return fused(c, a, b, false, opAddProduct)
}

// SubProduct performs the fused update C ← C − A·B in place.
// Errors: ErrNilMatrix, ErrRingMismatch, ErrDimensionMismatch.
func SubProduct[E any](c, a, b *Dense[E]) error {
	return fused(c, a, b, true, opSubProduct)
}

func fused[E any](c, a, b *Dense[E], subtract bool, opTag string) error {
	if err := ValidateMulCompatible(a, b); err != nil {
		return matrixErrorf(opTag, err)
	}
	if err := ValidateNotNil(c); err != nil {
		return matrixErrorf(opTag, err)
	}
	if err := ValidateSameRing(c, a); err != nil {
		return matrixErrorf(opTag, err)
	}
	if err := ValidateFusedShapes(c, a, b); err != nil {
		return matrixErrorf(opTag, err)
	}
	combine := c.rg.Add
	if subtract {
		combine = c.rg.Sub
	}
	// A or B may alias C; accumulate into a copy of C's cells.
	acc := append([]E(nil), c.data...)
	mulAccumulate(combine, acc, a, b)
	c.data = acc

	return nil
}

// Equal reports whether a and b have the same shape, ring and elements.
// Nil matrices are equal only to each other.
func Equal[E any](a, b *Dense[E]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if ValidateSameRing(a, b) != nil || a.r != b.r || a.c != b.c {
		return false
	}
	for idx := range a.data {
		if !a.rg.Equal(a.data[idx], b.data[idx]) {
			return false
		}
	}

	return true
}

// AllClose reports whether a and b have equal shapes and every pair of entries
// satisfies |a_ij − b_ij| ≤ atol + rtol·|b_ij|. NaN is never close to anything.
func AllClose[E float64 | complex128](a, b *Dense[E], rtol, atol float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for idx := range a.data {
		d := Abs(a.data[idx] - b.data[idx])
		if math.IsNaN(d) || d > atol+rtol*Abs(b.data[idx]) {
			return false
		}
	}

	return true
}

// Abs returns |v| for a real or complex scalar.
func Abs[E float64 | complex128](v E) float64 {
	switch x := any(v).(type) {
	case float64:
		return math.Abs(x)
	case complex128:
		return cmplx.Abs(x)
	}

	return math.NaN()
}
