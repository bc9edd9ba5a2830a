// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/lvlalg/ring"
)

// ForZZp returns the engine for the machine-word prime field f.
// The zero ring.ZZp (no modulus) is rejected with ring.ErrNotPrime.
func ForZZp(f ring.ZZp, opts ...Option) (*Engine[uint64], error) {
	if f.Modulus() < 2 {
		return nil, fmt.Errorf("linalg: ForZZp: %w", ring.ErrNotPrime)
	}

	return NewEngine[uint64](f, zzpStrategy{f: f}, opts...)
}

// ForGF returns the engine for the arbitrary-precision prime field f.
func ForGF(f ring.GF, opts ...Option) (*Engine[*big.Int], error) {
	if f.Modulus().Cmp(big.NewInt(2)) < 0 {
		return nil, fmt.Errorf("linalg: ForGF: %w", ring.ErrNotPrime)
	}

	return NewEngine[*big.Int](f, fieldStrategy[*big.Int]{f: f}, opts...)
}

// ForZZ returns the integer engine (fraction-free kernel).
func ForZZ(opts ...Option) (*Engine[*big.Int], error) {
	return NewEngine[*big.Int](ring.ZZ{}, zzStrategy{}, opts...)
}

// ForQQ returns the rational engine.
func ForQQ(opts ...Option) (*Engine[*big.Rat], error) {
	return NewEngine[*big.Rat](ring.QQ{}, qqStrategy{f: ring.QQ{}}, opts...)
}

// ForRR returns the double-precision real engine backed by gonum.
func ForRR(opts ...Option) (*Engine[float64], error) {
	return NewEngine[float64](ring.RR{}, newRRStrategy(), opts...)
}

// ForCC returns the double-precision complex engine (pure-Go numeric kernel).
func ForCC(opts ...Option) (*Engine[complex128], error) {
	return NewEngine[complex128](ring.CC{}, newNumericStrategy[complex128](ring.CC{}), opts...)
}

// ForRing returns an engine with no strategy: every operation reports
// UnsupportedOperation. Useful for domains that have no specialization yet.
func ForRing[E any](rg ring.Ring[E], opts ...Option) (*Engine[E], error) {
	return NewEngine[E](rg, nil, opts...)
}
