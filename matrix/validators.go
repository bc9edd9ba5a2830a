// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil/ring checks here.
//  - Return tagged sentinel errors so call sites can wrap uniformly once more.
//
// Determinism & Performance:
//  - All checks are pure, deterministic, O(1) and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Ring → Shape).
//  - Each validator describes what it validates and what it assumes (e.g. no nil check).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/ring"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
// AI-Hints: Use as the first step in composite validations.
func ValidateNotNil[E any](m *Dense[E]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameRing ensures both matrices draw their elements from the same domain.
// Assumes a and b are not nil.
func ValidateSameRing[E any](a, b *Dense[E]) error {
	if !ring.Same(a.rg, b.rg) {
		return validatorErrorf("ValidateSameRing", ErrRingMismatch)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// Return: nil or wrapped ErrDimensionMismatch.
func ValidateSameShape[E any](a, b *Dense[E]) error {
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Errors: ErrNonSquare (which also matches ErrDimensionMismatch).
// AI-Hints: Use before determinant, inverse, LU and spectral methods.
func ValidateSquare[E any](m *Dense[E]) error {
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSquareNonNil is the composite NotNil → Square.
func ValidateSquareNonNil[E any](m *Dense[E]) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateMulCompatible is the composite NotNil(a) → NotNil(b) → SameRing → a.Cols == b.Rows.
// Errors: ErrNilMatrix, ErrRingMismatch, ErrDimensionMismatch.
func ValidateMulCompatible[E any](a, b *Dense[E]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateSameRing(a, b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) → NotNil(b) → SameRing → SameShape.
func ValidateBinarySameShape[E any](a, b *Dense[E]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameRing(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSameRows checks a.Rows == b.Rows (right-hand systems AX = B).
// Assumes a and b are not nil.
func ValidateSameRows[E any](a, b *Dense[E]) error {
	if a.r != b.r {
		return validatorErrorf("ValidateSameRows", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSameCols checks a.Cols == b.Cols (left-hand systems XA = B).
// Assumes a and b are not nil.
func ValidateSameCols[E any](a, b *Dense[E]) error {
	if a.c != b.c {
		return validatorErrorf("ValidateSameCols", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFusedShapes checks C (m×n) += A (m×k) · B (k×n).
// Assumes all three are non-nil.
func ValidateFusedShapes[E any](c, a, b *Dense[E]) error {
	if a.c != b.r {
		return validatorErrorf("ValidateFusedShapes: inner", ErrDimensionMismatch)
	}
	if c.r != a.r || c.c != b.c {
		return validatorErrorf("ValidateFusedShapes: outer", ErrDimensionMismatch)
	}

	return nil
}

// Aliases reports whether two matrices share backing storage.
// Zero-capacity buffers never alias.
func Aliases[E any](a, b *Dense[E]) bool {
	if a == nil || b == nil {
		return false
	}
	if a == b {
		return true
	}
	if cap(a.data) == 0 || cap(b.data) == 0 {
		return false
	}

	return &a.data[:1][0] == &b.data[:1][0]
}
