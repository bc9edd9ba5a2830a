// SPDX-License-Identifier: MIT

package linalg

import (
	"math"

	"github.com/katalvlaran/lvlalg/kernel/numeric"
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/ring"
)

// numericStrategy routes every operation to the float64 / complex128 kernel.
//
// MAIN DESCRIPTION:
//   - Rank, null spaces, general solves and rank-deficient least squares go
//     through the SVD; profiles and NullspaceU through the pivoted echelon form;
//     square solves through LU.
//   - The SVD and square-solve backends are fields so the real domain can plug
//     in gonum while sharing every derived operation.
//
// Behavior highlights:
//   - Solves without the assumeInvertible hint use the minimum-norm
//     pseudo-inverse solution and accept it only if
//     ‖A·X − B‖ ≤ residualTol·(‖A‖·‖X‖ + ‖B‖); otherwise the system is
//     reported inconsistent.
//   - Left-side operations use the plain transpose: X·A = B ⇔ Aᵀ·Xᵀ = Bᵀ.
type numericStrategy[E numeric.Scalar] struct {
	name    string
	rg      ring.Ring[E]
	svd     func(a numeric.Mat[E], maxSweeps int) (numeric.SVDResult[E], bool)
	solveSq func(a, b numeric.Mat[E]) (numeric.Mat[E], bool)
}

var (
	_ Ranker[complex128]               = numericStrategy[complex128]{}
	_ Determinanter[complex128]        = numericStrategy[complex128]{}
	_ Inverter[complex128]             = numericStrategy[complex128]{}
	_ Multiplier[complex128]           = numericStrategy[complex128]{}
	_ RightNullSpacer[complex128]      = numericStrategy[complex128]{}
	_ LeftNullSpacer[complex128]       = numericStrategy[complex128]{}
	_ RightSolver[complex128]          = numericStrategy[complex128]{}
	_ LeftSolver[complex128]           = numericStrategy[complex128]{}
	_ RankProfiler[complex128]         = numericStrategy[complex128]{}
	_ FusedMultiplier[complex128]      = numericStrategy[complex128]{}
	_ SquareSolver[complex128]         = numericStrategy[complex128]{}
	_ EchelonNullSpacer[complex128]    = numericStrategy[complex128]{}
	_ LUFactorizer[complex128]         = numericStrategy[complex128]{}
	_ Eigensolver[complex128]          = numericStrategy[complex128]{}
	_ HermitianEigensolver[complex128] = numericStrategy[complex128]{}
	_ LeastSquarer[complex128]         = numericStrategy[complex128]{}
	_ SVDecomposer[complex128]         = numericStrategy[complex128]{}
)

// newNumericStrategy returns the pure-Go strategy (Jacobi SVD, LU solves).
func newNumericStrategy[E numeric.Scalar](rg ring.Ring[E]) numericStrategy[E] {
	return numericStrategy[E]{
		name:    "numeric",
		rg:      rg,
		svd:     numeric.SVD[E],
		solveSq: numeric.SolveSquare[E],
	}
}

func (s numericStrategy[E]) Name() string { return s.name }

func (s numericStrategy[E]) Rank(o *Options, a *matrix.Dense[E]) (int, error) {
	v := numeric.View(a)
	res, ok := s.svd(v, o.maxSweeps)
	if !ok {
		return len(numeric.ColumnProfile(v, o.rankTol)), nil
	}

	return numeric.NumericalRank(res.Sigma, o.rankTol), nil
}

func (s numericStrategy[E]) Determinant(_ *Options, a *matrix.Dense[E]) (E, error) {
	return numeric.Det(numeric.View(a)), nil
}

func (s numericStrategy[E]) Inverse(_ *Options, a *matrix.Dense[E]) (*matrix.Dense[E], bool, error) {
	inv, ok := numeric.Inverse(numeric.View(a))
	if !ok {
		return nil, false, nil
	}
	out, err := fromMat(s.rg, inv)

	return out, err == nil, err
}

func (s numericStrategy[E]) Mult(_ *Options, a, b *matrix.Dense[E]) (*matrix.Dense[E], error) {
	return fromMat(s.rg, numeric.Mul(numeric.View(a), numeric.View(b)))
}

func (s numericStrategy[E]) AddMul(_ *Options, c, a, b *matrix.Dense[E]) error {
	numeric.MulAdd(numeric.View(c), numeric.View(a), numeric.View(b), 1)

	return nil
}

func (s numericStrategy[E]) SubMul(_ *Options, c, a, b *matrix.Dense[E]) error {
	numeric.MulAdd(numeric.View(c), numeric.View(a), numeric.View(b), -1)

	return nil
}

func (s numericStrategy[E]) RightNullSpace(o *Options, a *matrix.Dense[E]) (*matrix.Dense[E], error) {
	return fromMat(s.rg, s.rightNullspace(o, numeric.View(a)))
}

func (s numericStrategy[E]) LeftNullSpace(o *Options, a *matrix.Dense[E]) (*matrix.Dense[E], error) {
	v := numeric.View(a)
	res, ok := s.svd(v, o.maxSweeps)
	if !ok {
		return fromMat(s.rg, numeric.NullspaceU(v.Transpose(), o.rankTol).Transpose())
	}

	return fromMat(s.rg, numeric.LeftNullspace(res, o.rankTol))
}

// rightNullspace prefers the orthonormal SVD basis and falls back to the
// echelon basis when the SVD does not converge.
func (s numericStrategy[E]) rightNullspace(o *Options, v numeric.Mat[E]) numeric.Mat[E] {
	res, ok := s.svd(v, o.maxSweeps)
	if !ok {
		return numeric.NullspaceU(v, o.rankTol)
	}

	return numeric.RightNullspace(res, o.rankTol)
}

func (s numericStrategy[E]) SolveRight(o *Options, a, b *matrix.Dense[E], assumeInvertible bool) (*matrix.Dense[E], bool, error) {
	x, ok := s.solve(o, numeric.View(a), numeric.View(b), assumeInvertible)
	if !ok {
		return nil, false, nil
	}
	out, err := fromMat(s.rg, x)

	return out, err == nil, err
}

func (s numericStrategy[E]) SolveLeft(o *Options, a, b *matrix.Dense[E], assumeInvertible bool) (*matrix.Dense[E], bool, error) {
	xt, ok := s.solve(o, numeric.View(a).Transpose(), numeric.View(b).Transpose(), assumeInvertible)
	if !ok {
		return nil, false, nil
	}
	out, err := fromMat(s.rg, xt.Transpose())

	return out, err == nil, err
}

// solve finds X with a·X = b.
func (s numericStrategy[E]) solve(o *Options, a, b numeric.Mat[E], assumeInvertible bool) (numeric.Mat[E], bool) {
	if assumeInvertible && a.Rows == a.Cols {
		return s.solveSq(a, b)
	}
	res, ok := s.svd(a, o.maxSweeps)
	if !ok {
		return numeric.Mat[E]{}, false
	}
	x := numeric.PseudoSolve(res, b, o.rankTol)
	if !numeric.AllFinite(x) || !consistent(a, x, b, o.residualTol) {
		return numeric.Mat[E]{}, false
	}

	return x, true
}

// consistent reports ‖a·x − b‖_F ≤ tol·(‖a‖_F·‖x‖_F + ‖b‖_F).
func consistent[E numeric.Scalar](a, x, b numeric.Mat[E], tol float64) bool {
	r := numeric.Mul(a, x)
	var sum float64
	for i, v := range r.Data {
		sum += numeric.Abs2(v - b.Data[i])
	}
	bound := tol * (numeric.FrobeniusNorm(a)*numeric.FrobeniusNorm(x) + numeric.FrobeniusNorm(b))

	return math.Sqrt(sum) <= bound
}

func (s numericStrategy[E]) RankProfile(o *Options, a *matrix.Dense[E], side ProfileSide) ([]int, error) {
	if side == ProfileColumns {
		return numeric.ColumnProfile(numeric.View(a), o.rankTol), nil
	}

	return numeric.RowProfile(numeric.View(a), o.rankTol), nil
}

func (s numericStrategy[E]) SolveSquare(_ *Options, a, b *matrix.Dense[E]) (*matrix.Dense[E], bool, error) {
	x, ok := s.solveSq(numeric.View(a), numeric.View(b))
	if !ok {
		return nil, false, nil
	}
	out, err := fromMat(s.rg, x)

	return out, err == nil, err
}

func (s numericStrategy[E]) NullspaceU(o *Options, a *matrix.Dense[E]) (*matrix.Dense[E], bool, error) {
	v := numeric.View(a)
	if !numeric.AllFinite(v) {
		return nil, false, nil
	}
	out, err := fromMat(s.rg, numeric.NullspaceU(v, o.rankTol))

	return out, err == nil, err
}

func (s numericStrategy[E]) LU(_ *Options, a *matrix.Dense[E]) (*matrix.Dense[E], *matrix.Dense[E], []int, bool, error) {
	l, u, perm, _ := numeric.LU(numeric.View(a))
	if !numeric.AllFinite(l) || !numeric.AllFinite(u) {
		return nil, nil, nil, false, nil
	}
	ld, err := fromMat(s.rg, l)
	if err != nil {
		return nil, nil, nil, false, err
	}
	ud, err := fromMat(s.rg, u)
	if err != nil {
		return nil, nil, nil, false, err
	}

	return ld, ud, perm, true, nil
}

func (s numericStrategy[E]) Eigen(o *Options, a *matrix.Dense[E], wantVectors bool) ([]complex128, *matrix.Dense[complex128], bool, error) {
	vals, vecs, ok := numeric.Eigen(numeric.View(a), o.maxSweeps, wantVectors)
	if !ok {
		return nil, nil, false, nil
	}
	if !wantVectors {
		return vals, nil, true, nil
	}
	out, err := fromMat[complex128](ring.CC{}, vecs)

	return vals, out, err == nil, err
}

func (s numericStrategy[E]) EigenHermitian(o *Options, a *matrix.Dense[E], wantVectors bool) ([]float64, *matrix.Dense[E], bool, error) {
	vals, vecs, ok := numeric.EigenHermitian(numeric.View(a), o.maxSweeps, wantVectors)
	if !ok {
		return nil, nil, false, nil
	}
	if !wantVectors {
		return vals, nil, true, nil
	}
	out, err := fromMat(s.rg, vecs)

	return vals, out, err == nil, err
}

func (s numericStrategy[E]) LeastSquares(o *Options, a, b *matrix.Dense[E], assumeFullRank bool) (*matrix.Dense[E], bool, error) {
	va, vb := numeric.View(a), numeric.View(b)
	var (
		x  numeric.Mat[E]
		ok bool
	)
	if assumeFullRank {
		x, ok = numeric.LeastSquaresQR(va, vb, o.rankTol)
	} else {
		var res numeric.SVDResult[E]
		if res, ok = s.svd(va, o.maxSweeps); ok {
			x = numeric.PseudoSolve(res, vb, o.rankTol)
			ok = numeric.AllFinite(x)
		}
	}
	if !ok {
		return nil, false, nil
	}
	out, err := fromMat(s.rg, x)

	return out, err == nil, err
}

func (s numericStrategy[E]) SVD(o *Options, a *matrix.Dense[E], strategy SVDStrategy) ([]float64, *matrix.Dense[E], *matrix.Dense[E], bool, error) {
	decompose := s.svd
	if strategy == SVDJacobi {
		decompose = numeric.SVD[E]
	}
	res, ok := decompose(numeric.View(a), o.maxSweeps)
	if !ok {
		return nil, nil, nil, false, nil
	}
	u, err := fromMat(s.rg, res.U)
	if err != nil {
		return nil, nil, nil, false, err
	}
	vt, err := fromMat(s.rg, res.Vt)
	if err != nil {
		return nil, nil, nil, false, err
	}

	return res.Sigma, u, vt, true, nil
}
