// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures over the real and rational rings.
//   • Keep boilerplate out of the individual tests.

package matrix_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/ring"
)

// MustDense ALLOCATES an r×c zero matrix over rg or fails the test.
func MustDense[E any](t *testing.T, rg ring.Ring[E], r, c int) *matrix.Dense[E] {
	t.Helper()
	m, err := matrix.NewDense(rg, r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// RealDense BUILDS a float64 matrix from rows or fails the test.
func RealDense(t *testing.T, rows [][]float64) *matrix.Dense[float64] {
	t.Helper()
	m, err := matrix.NewDenseFromRows[float64](ring.RR{}, rows)
	if err != nil {
		t.Fatalf("NewDenseFromRows: %v", err)
	}

	return m
}

// RatDense PARSES a rational matrix from textual rows or fails the test.
func RatDense(t *testing.T, rows [][]string) *matrix.Dense[*big.Rat] {
	t.Helper()
	m, err := matrix.ParseDense[*big.Rat](ring.QQ{}, rows)
	if err != nil {
		t.Fatalf("ParseDense: %v", err)
	}

	return m
}

// MustAt READS (i,j) or fails the test.
func MustAt[E any](t *testing.T, m *matrix.Dense[E], i, j int) E {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}
