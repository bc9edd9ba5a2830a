// SPDX-License-Identifier: MIT

package linalg

import (
	"math/big"

	"github.com/katalvlaran/lvlalg/kernel/zz"
	"github.com/katalvlaran/lvlalg/matrix"
)

// zzStrategy covers the integers with the fraction-free kernel.
//
// Behavior highlights:
//   - Inverse and solve run over the rationals and succeed only when the
//     reduced common denominator is 1 (the kernel returns a positive least
//     common denominator, so ±1 collapses to 1).
//   - Right side only: left null spaces, left solves and rank profiles are not
//     offered and report UnsupportedOperation.
type zzStrategy struct{}

var (
	_ Ranker[*big.Int]          = zzStrategy{}
	_ Determinanter[*big.Int]   = zzStrategy{}
	_ Inverter[*big.Int]        = zzStrategy{}
	_ Multiplier[*big.Int]      = zzStrategy{}
	_ RightNullSpacer[*big.Int] = zzStrategy{}
	_ RightSolver[*big.Int]     = zzStrategy{}
	_ FusedMultiplier[*big.Int] = zzStrategy{}
)

func (zzStrategy) Name() string { return "bareiss" }

func (zzStrategy) Rank(_ *Options, a *matrix.Dense[*big.Int]) (int, error) {
	return zz.Rank(a), nil
}

func (zzStrategy) Determinant(_ *Options, a *matrix.Dense[*big.Int]) (*big.Int, error) {
	return zz.Det(a), nil
}

func (zzStrategy) Inverse(_ *Options, a *matrix.Dense[*big.Int]) (*matrix.Dense[*big.Int], bool, error) {
	num, den, ok, err := zz.Inverse(a)
	if err != nil || !ok {
		return nil, false, err
	}
	if !isUnitDenominator(den) {
		return nil, false, nil
	}

	return num, true, nil
}

func (zzStrategy) Mult(_ *Options, a, b *matrix.Dense[*big.Int]) (*matrix.Dense[*big.Int], error) {
	return matrix.Mul(a, b)
}

func (zzStrategy) AddMul(_ *Options, c, a, b *matrix.Dense[*big.Int]) error {
	return matrix.AddProduct(c, a, b)
}

func (zzStrategy) SubMul(_ *Options, c, a, b *matrix.Dense[*big.Int]) error {
	return matrix.SubProduct(c, a, b)
}

func (zzStrategy) RightNullSpace(_ *Options, a *matrix.Dense[*big.Int]) (*matrix.Dense[*big.Int], error) {
	return zz.Nullspace(a)
}

func (zzStrategy) SolveRight(_ *Options, a, b *matrix.Dense[*big.Int], _ bool) (*matrix.Dense[*big.Int], bool, error) {
	num, den, ok, err := zz.Solve(a, b)
	if err != nil || !ok {
		return nil, false, err
	}
	if !isUnitDenominator(den) {
		return nil, false, nil
	}

	return num, true, nil
}

// isUnitDenominator reports den = ±1.
func isUnitDenominator(den *big.Int) bool {
	return den.IsInt64() && (den.Int64() == 1 || den.Int64() == -1)
}
