// SPDX-License-Identifier: MIT

package linalg

import "github.com/katalvlaran/lvlalg/matrix"

// Capability interfaces.
//
// A strategy is any value implementing a subset of the interfaces below for
// its element type. NewEngine probes them once; an operation whose interface
// is missing fails with *UnsupportedOperationError.
//
// Calling convention shared by every method:
//   - Inputs are non-nil, non-empty, shape-checked and belong to the engine's
//     ring; strategies never see a 0-row or 0-column operand.
//   - Results are fresh matrices (the engine adopts their buffers into the
//     caller's outputs); inputs are never mutated except C of the fused ops.
//   - A false boolean is a data-dependent outcome; errors are reserved for
//     internal failures.

// Strategy is the optional identity of a strategy, used in log records.
type Strategy interface {
	Name() string
}

// Ranker computes rank(A).
type Ranker[E any] interface {
	Rank(o *Options, a *matrix.Dense[E]) (int, error)
}

// Determinanter computes det(A) of a square A.
type Determinanter[E any] interface {
	Determinant(o *Options, a *matrix.Dense[E]) (E, error)
}

// Inverter computes A⁻¹ of a square A; ok=false when A is singular.
type Inverter[E any] interface {
	Inverse(o *Options, a *matrix.Dense[E]) (inv *matrix.Dense[E], ok bool, err error)
}

// Multiplier computes A·B.
type Multiplier[E any] interface {
	Mult(o *Options, a, b *matrix.Dense[E]) (*matrix.Dense[E], error)
}

// RightNullSpacer returns a cols(A)×k matrix whose columns span {x : A·x = 0}.
type RightNullSpacer[E any] interface {
	RightNullSpace(o *Options, a *matrix.Dense[E]) (*matrix.Dense[E], error)
}

// LeftNullSpacer returns a k×rows(A) matrix whose rows span {x : x·A = 0}.
type LeftNullSpacer[E any] interface {
	LeftNullSpace(o *Options, a *matrix.Dense[E]) (*matrix.Dense[E], error)
}

// RightSolver solves A·X = B; ok=false when inconsistent.
type RightSolver[E any] interface {
	SolveRight(o *Options, a, b *matrix.Dense[E], assumeInvertible bool) (*matrix.Dense[E], bool, error)
}

// LeftSolver solves X·A = B; ok=false when inconsistent.
type LeftSolver[E any] interface {
	SolveLeft(o *Options, a, b *matrix.Dense[E], assumeInvertible bool) (*matrix.Dense[E], bool, error)
}

// RankProfiler computes row and column rank profiles.
type RankProfiler[E any] interface {
	RankProfile(o *Options, a *matrix.Dense[E], side ProfileSide) ([]int, error)
}

// FusedMultiplier updates C ← C ± A·B in place.
type FusedMultiplier[E any] interface {
	AddMul(o *Options, c, a, b *matrix.Dense[E]) error
	SubMul(o *Options, c, a, b *matrix.Dense[E]) error
}

// SquareSolver solves A·X = B for square A via pivoted LU.
type SquareSolver[E any] interface {
	SolveSquare(o *Options, a, b *matrix.Dense[E]) (*matrix.Dense[E], bool, error)
}

// EchelonNullSpacer returns the right null space read off the echelon form.
type EchelonNullSpacer[E any] interface {
	NullspaceU(o *Options, a *matrix.Dense[E]) (*matrix.Dense[E], bool, error)
}

// LUFactorizer factors a square A with row i of L·U equal to row perm[i] of A.
type LUFactorizer[E any] interface {
	LU(o *Options, a *matrix.Dense[E]) (l, u *matrix.Dense[E], perm []int, ok bool, err error)
}

// Eigensolver computes eigenvalues and, on request, unit eigenvectors (columns).
type Eigensolver[E any] interface {
	Eigen(o *Options, a *matrix.Dense[E], wantVectors bool) (vals []complex128, vecs *matrix.Dense[complex128], ok bool, err error)
}

// HermitianEigensolver computes the real, ascending eigenvalues of a
// self-adjoint A and, on request, orthonormal eigenvectors (columns).
type HermitianEigensolver[E any] interface {
	EigenHermitian(o *Options, a *matrix.Dense[E], wantVectors bool) (vals []float64, vecs *matrix.Dense[E], ok bool, err error)
}

// LeastSquarer minimizes ‖A·X − B‖.
type LeastSquarer[E any] interface {
	LeastSquares(o *Options, a, b *matrix.Dense[E], assumeFullRank bool) (*matrix.Dense[E], bool, error)
}

// SVDecomposer computes A = U·diag(sigma)·Vt with sigma descending.
type SVDecomposer[E any] interface {
	SVD(o *Options, a *matrix.Dense[E], strategy SVDStrategy) (sigma []float64, u, vt *matrix.Dense[E], ok bool, err error)
}
