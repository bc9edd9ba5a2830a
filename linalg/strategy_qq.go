// SPDX-License-Identifier: MIT

package linalg

import (
	"math/big"

	"github.com/katalvlaran/lvlalg/kernel/field"
	"github.com/katalvlaran/lvlalg/kernel/zz"
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/ring"
)

// qqStrategy covers the rationals: the integer operation set without the
// denominator check. Rank clears denominators and delegates to the integer
// kernel, so elimination stays fraction-free.
type qqStrategy struct {
	f ring.QQ
}

var (
	_ Ranker[*big.Rat]          = qqStrategy{}
	_ Determinanter[*big.Rat]   = qqStrategy{}
	_ Inverter[*big.Rat]        = qqStrategy{}
	_ Multiplier[*big.Rat]      = qqStrategy{}
	_ RightNullSpacer[*big.Rat] = qqStrategy{}
	_ RightSolver[*big.Rat]     = qqStrategy{}
	_ FusedMultiplier[*big.Rat] = qqStrategy{}
)

func (qqStrategy) Name() string { return "rational" }

func (qqStrategy) Rank(_ *Options, a *matrix.Dense[*big.Rat]) (int, error) {
	num, _, err := zz.ClearDenominators(a)
	if err != nil {
		return 0, err
	}

	return zz.Rank(num), nil
}

func (s qqStrategy) Determinant(_ *Options, a *matrix.Dense[*big.Rat]) (*big.Rat, error) {
	return field.Det[*big.Rat](s.f, a), nil
}

func (s qqStrategy) Inverse(_ *Options, a *matrix.Dense[*big.Rat]) (*matrix.Dense[*big.Rat], bool, error) {
	return field.Inverse[*big.Rat](s.f, a)
}

func (qqStrategy) Mult(_ *Options, a, b *matrix.Dense[*big.Rat]) (*matrix.Dense[*big.Rat], error) {
	return matrix.Mul(a, b)
}

func (qqStrategy) AddMul(_ *Options, c, a, b *matrix.Dense[*big.Rat]) error {
	return matrix.AddProduct(c, a, b)
}

func (qqStrategy) SubMul(_ *Options, c, a, b *matrix.Dense[*big.Rat]) error {
	return matrix.SubProduct(c, a, b)
}

func (s qqStrategy) RightNullSpace(_ *Options, a *matrix.Dense[*big.Rat]) (*matrix.Dense[*big.Rat], error) {
	return field.Nullspace[*big.Rat](s.f, a)
}

func (s qqStrategy) SolveRight(_ *Options, a, b *matrix.Dense[*big.Rat], _ bool) (*matrix.Dense[*big.Rat], bool, error) {
	return field.Solve[*big.Rat](s.f, a, b)
}
