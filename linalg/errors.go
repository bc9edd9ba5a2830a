// SPDX-License-Identifier: MIT
// Package linalg: error set of the operation contract.
//
// Two tiers:
//   - Structural / capability problems are errors: UnsupportedOperationError
//     (matches ErrUnsupported) and the matrix sentinels for shapes.
//   - Data-dependent outcomes (singular, inconsistent, not convergent) are a
//     false boolean result, never an error.

package linalg

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupported is matched (errors.Is) by every UnsupportedOperationError.
	ErrUnsupported = errors.New("linalg: operation unsupported for this domain")

	// ErrNilRing is returned by NewEngine when no coefficient domain is given.
	ErrNilRing = errors.New("linalg: nil ring")

	// ErrNilOutput indicates a nil output scalar or slice destination.
	ErrNilOutput = errors.New("linalg: nil output")
)

// UnsupportedOperationError reports that no strategy implements Op for Domain.
type UnsupportedOperationError struct {
	Op     Op
	Side   string // "" for operations without a side
	Domain string
}

// Error implements error.
func (e *UnsupportedOperationError) Error() string {
	if e.Side != "" {
		return fmt.Sprintf("linalg: %s (%s side) unsupported for domain %s", e.Op, e.Side, e.Domain)
	}

	return fmt.Sprintf("linalg: %s unsupported for domain %s", e.Op, e.Domain)
}

// Is makes errors.Is(err, ErrUnsupported) hold.
func (e *UnsupportedOperationError) Is(target error) bool { return target == ErrUnsupported }

// linalgErrorf wraps err with the operation tag; callers match the cause via errors.Is.
// Assumes err != nil.
func linalgErrorf(op Op, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
