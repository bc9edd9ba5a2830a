// SPDX-License-Identifier: MIT

package linalg

import (
	"math/big"

	"github.com/katalvlaran/lvlalg/kernel/field"
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/ring"
)

// fieldStrategy runs exact row-major Gaussian elimination over any field.
// It backs the arbitrary-precision prime fields; left-side operations are the
// right-side ones on explicit transposes.
type fieldStrategy[E any] struct {
	f ring.Field[E]
}

var (
	_ Ranker[*big.Int]          = fieldStrategy[*big.Int]{}
	_ Determinanter[*big.Int]   = fieldStrategy[*big.Int]{}
	_ Inverter[*big.Int]        = fieldStrategy[*big.Int]{}
	_ Multiplier[*big.Int]      = fieldStrategy[*big.Int]{}
	_ RightNullSpacer[*big.Int] = fieldStrategy[*big.Int]{}
	_ LeftNullSpacer[*big.Int]  = fieldStrategy[*big.Int]{}
	_ RightSolver[*big.Int]     = fieldStrategy[*big.Int]{}
	_ LeftSolver[*big.Int]      = fieldStrategy[*big.Int]{}
	_ RankProfiler[*big.Int]    = fieldStrategy[*big.Int]{}
	_ FusedMultiplier[*big.Int] = fieldStrategy[*big.Int]{}
)

func (fieldStrategy[E]) Name() string { return "field" }

func (s fieldStrategy[E]) Rank(_ *Options, a *matrix.Dense[E]) (int, error) {
	return field.Rank(s.f, a), nil
}

func (s fieldStrategy[E]) Determinant(_ *Options, a *matrix.Dense[E]) (E, error) {
	return field.Det(s.f, a), nil
}

func (s fieldStrategy[E]) Inverse(_ *Options, a *matrix.Dense[E]) (*matrix.Dense[E], bool, error) {
	return field.Inverse(s.f, a)
}

func (fieldStrategy[E]) Mult(_ *Options, a, b *matrix.Dense[E]) (*matrix.Dense[E], error) {
	return matrix.Mul(a, b)
}

func (fieldStrategy[E]) AddMul(_ *Options, c, a, b *matrix.Dense[E]) error {
	return matrix.AddProduct(c, a, b)
}

func (fieldStrategy[E]) SubMul(_ *Options, c, a, b *matrix.Dense[E]) error {
	return matrix.SubProduct(c, a, b)
}

func (s fieldStrategy[E]) RightNullSpace(_ *Options, a *matrix.Dense[E]) (*matrix.Dense[E], error) {
	return field.Nullspace(s.f, a)
}

func (s fieldStrategy[E]) LeftNullSpace(_ *Options, a *matrix.Dense[E]) (*matrix.Dense[E], error) {
	at, err := matrix.Transpose(a)
	if err != nil {
		return nil, err
	}
	ns, err := field.Nullspace(s.f, at)
	if err != nil {
		return nil, err
	}

	return matrix.Transpose(ns)
}

func (s fieldStrategy[E]) SolveRight(_ *Options, a, b *matrix.Dense[E], _ bool) (*matrix.Dense[E], bool, error) {
	return field.Solve(s.f, a, b)
}

func (s fieldStrategy[E]) SolveLeft(_ *Options, a, b *matrix.Dense[E], _ bool) (*matrix.Dense[E], bool, error) {
	return solveLeftByTranspose(a, b, func(at, bt *matrix.Dense[E]) (*matrix.Dense[E], bool, error) {
		return field.Solve(s.f, at, bt)
	})
}

func (s fieldStrategy[E]) RankProfile(_ *Options, a *matrix.Dense[E], side ProfileSide) ([]int, error) {
	if side == ProfileColumns {
		return field.ColumnProfile(s.f, a), nil
	}

	return field.RowProfile(s.f, a), nil
}

// solveLeftByTranspose solves X·A = B as Aᵀ·Xᵀ = Bᵀ with the right solver.
func solveLeftByTranspose[E any](a, b *matrix.Dense[E], right func(at, bt *matrix.Dense[E]) (*matrix.Dense[E], bool, error)) (*matrix.Dense[E], bool, error) {
	at, err := matrix.Transpose(a)
	if err != nil {
		return nil, false, err
	}
	bt, err := matrix.Transpose(b)
	if err != nil {
		return nil, false, err
	}
	xt, ok, err := right(at, bt)
	if err != nil || !ok {
		return nil, false, err
	}
	x, err := matrix.Transpose(xt)

	return x, err == nil, err
}
