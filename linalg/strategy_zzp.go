// SPDX-License-Identifier: MIT

package linalg

import (
	"github.com/katalvlaran/lvlalg/kernel/nmod"
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/ring"
)

// zzpStrategy adapts the column-major nmod kernel to row-major matrices.
//
// Layout adaptation:
//   - A row-major r×c buffer read column-major is the c×r transpose, so
//     tview(A) = Aᵀ costs nothing.
//   - Mult: the kernel computes Bᵀ·Aᵀ = (A·B)ᵀ on the swapped views; its
//     column-major output read row-major is A·B.
//   - Fused: Cᵀ ± Bᵀ·Aᵀ updates C's buffer in place.
//   - rank, det, inverse use invariance under transposition
//     ((Aᵀ)⁻¹ read row-major is A⁻¹); row and column profiles swap.
//   - Left null space and left solve are the kernel's right-side operations on
//     the transposed views and need no copies; right-side operations transpose
//     explicitly.
type zzpStrategy struct {
	f ring.ZZp
}

var (
	_ Ranker[uint64]          = zzpStrategy{}
	_ Determinanter[uint64]   = zzpStrategy{}
	_ Inverter[uint64]        = zzpStrategy{}
	_ Multiplier[uint64]      = zzpStrategy{}
	_ RightNullSpacer[uint64] = zzpStrategy{}
	_ LeftNullSpacer[uint64]  = zzpStrategy{}
	_ RightSolver[uint64]     = zzpStrategy{}
	_ LeftSolver[uint64]      = zzpStrategy{}
	_ RankProfiler[uint64]    = zzpStrategy{}
	_ FusedMultiplier[uint64] = zzpStrategy{}
)

func (zzpStrategy) Name() string { return "nmod" }

// tview returns Aᵀ in column-major form, sharing A's buffer.
func tview(a *matrix.Dense[uint64]) nmod.Mat {
	return nmod.View(a.Cols(), a.Rows(), a.Raw())
}

// colMajor returns A in column-major form (explicit transpose).
func colMajor(a *matrix.Dense[uint64]) nmod.Mat {
	return nmod.Transpose(tview(a))
}

// fromTransposed wraps a column-major kernel result M (which equals Xᵀ) as the
// row-major X without copying.
func (s zzpStrategy) fromTransposed(m nmod.Mat) (*matrix.Dense[uint64], error) {
	return wrap[uint64](s.f, m.Cols, m.Rows, m.Data)
}

// fromColMajor converts a column-major kernel result M (which equals X) to row-major X.
func (s zzpStrategy) fromColMajor(m nmod.Mat) (*matrix.Dense[uint64], error) {
	return s.fromTransposed(nmod.Transpose(m))
}

func (s zzpStrategy) Rank(_ *Options, a *matrix.Dense[uint64]) (int, error) {
	return nmod.Rank(s.f, tview(a)), nil
}

func (s zzpStrategy) Determinant(_ *Options, a *matrix.Dense[uint64]) (uint64, error) {
	return nmod.Det(s.f, tview(a)), nil
}

func (s zzpStrategy) Inverse(_ *Options, a *matrix.Dense[uint64]) (*matrix.Dense[uint64], bool, error) {
	inv, ok := nmod.Inverse(s.f, tview(a))
	if !ok {
		return nil, false, nil
	}
	out, err := s.fromTransposed(inv)

	return out, err == nil, err
}

func (s zzpStrategy) Mult(_ *Options, a, b *matrix.Dense[uint64]) (*matrix.Dense[uint64], error) {
	// (A·B)ᵀ = Bᵀ·Aᵀ: operands swapped.
	return s.fromTransposed(nmod.Mul(s.f, tview(b), tview(a)))
}

func (s zzpStrategy) AddMul(_ *Options, c, a, b *matrix.Dense[uint64]) error {
	nmod.AddMul(s.f, tview(c), tview(b), tview(a))

	return nil
}

func (s zzpStrategy) SubMul(_ *Options, c, a, b *matrix.Dense[uint64]) error {
	nmod.SubMul(s.f, tview(c), tview(b), tview(a))

	return nil
}

func (s zzpStrategy) RightNullSpace(_ *Options, a *matrix.Dense[uint64]) (*matrix.Dense[uint64], error) {
	return s.fromColMajor(nmod.Nullspace(s.f, colMajor(a)))
}

func (s zzpStrategy) LeftNullSpace(_ *Options, a *matrix.Dense[uint64]) (*matrix.Dense[uint64], error) {
	// x·A = 0 ⇔ Aᵀ·xᵀ = 0: kernel columns are the rows x.
	return s.fromTransposed(nmod.Nullspace(s.f, tview(a)))
}

func (s zzpStrategy) SolveRight(_ *Options, a, b *matrix.Dense[uint64], _ bool) (*matrix.Dense[uint64], bool, error) {
	x, ok := nmod.Solve(s.f, colMajor(a), colMajor(b))
	if !ok {
		return nil, false, nil
	}
	out, err := s.fromColMajor(x)

	return out, err == nil, err
}

func (s zzpStrategy) SolveLeft(_ *Options, a, b *matrix.Dense[uint64], _ bool) (*matrix.Dense[uint64], bool, error) {
	// X·A = B ⇔ Aᵀ·Xᵀ = Bᵀ.
	xt, ok := nmod.Solve(s.f, tview(a), tview(b))
	if !ok {
		return nil, false, nil
	}
	out, err := s.fromTransposed(xt)

	return out, err == nil, err
}

func (s zzpStrategy) RankProfile(_ *Options, a *matrix.Dense[uint64], side ProfileSide) ([]int, error) {
	if side == ProfileColumns {
		return nmod.RowProfile(s.f, tview(a)), nil
	}

	return nmod.ColumnProfile(s.f, tview(a)), nil
}
