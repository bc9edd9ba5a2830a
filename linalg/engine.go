// SPDX-License-Identifier: MIT

package linalg

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/ring"
)

// Engine is the uniform operation surface over one coefficient domain.
//
// MAIN DESCRIPTION:
//   - Built once by NewEngine from a ring and a strategy value. The strategy's
//     capability interfaces are resolved into fixed fields, so each call is a
//     nil check plus one interface call; there is no type switch and no registry.
//   - Every method follows the same order: nil operands → capability →
//     shapes → empty-shape shortcut → strategy → adopt result into the output.
//
// Behavior highlights:
//   - Missing capability: *UnsupportedOperationError (errors.Is ErrUnsupported).
//   - Shape problems: matrix.ErrDimensionMismatch / matrix.ErrNonSquare, wrapped
//     with the operation name.
//   - Singular / inconsistent / not convergent: false, output left valid but
//     unspecified.
//   - Empty operands (0 rows or 0 columns) are answered here and never reach a
//     strategy.
//
// Concurrency:
//   - Immutable after construction; safe for concurrent use as long as two
//     calls do not write the same output matrix.
type Engine[E any] struct {
	rg       ring.Ring[E]
	strategy string
	opts     Options
	table    [opCount][2]bool

	ranker   Ranker[E]
	det      Determinanter[E]
	inv      Inverter[E]
	mul      Multiplier[E]
	rightNS  RightNullSpacer[E]
	leftNS   LeftNullSpacer[E]
	rightSol RightSolver[E]
	leftSol  LeftSolver[E]
	profiler RankProfiler[E]
	fused    FusedMultiplier[E]
	square   SquareSolver[E]
	echelon  EchelonNullSpacer[E]
	lu       LUFactorizer[E]
	eigen    Eigensolver[E]
	herm     HermitianEigensolver[E]
	lsq      LeastSquarer[E]
	svd      SVDecomposer[E]
}

// NewEngine binds strategy to rg. strategy may be nil (or implement nothing
// for E): every operation then reports UnsupportedOperation.
// Errors: ErrNilRing.
func NewEngine[E any](rg ring.Ring[E], strategy any, opts ...Option) (*Engine[E], error) {
	if rg == nil {
		return nil, ErrNilRing
	}
	e := &Engine[E]{rg: rg, strategy: "none", opts: gatherOptions(opts...)}
	if s, ok := strategy.(Strategy); ok {
		e.strategy = s.Name()
	}

	e.ranker, _ = strategy.(Ranker[E])
	e.det, _ = strategy.(Determinanter[E])
	e.inv, _ = strategy.(Inverter[E])
	e.mul, _ = strategy.(Multiplier[E])
	e.rightNS, _ = strategy.(RightNullSpacer[E])
	e.leftNS, _ = strategy.(LeftNullSpacer[E])
	e.rightSol, _ = strategy.(RightSolver[E])
	e.leftSol, _ = strategy.(LeftSolver[E])
	e.profiler, _ = strategy.(RankProfiler[E])
	e.fused, _ = strategy.(FusedMultiplier[E])
	e.square, _ = strategy.(SquareSolver[E])
	e.echelon, _ = strategy.(EchelonNullSpacer[E])
	e.lu, _ = strategy.(LUFactorizer[E])
	e.eigen, _ = strategy.(Eigensolver[E])
	e.herm, _ = strategy.(HermitianEigensolver[E])
	e.lsq, _ = strategy.(LeastSquarer[E])
	e.svd, _ = strategy.(SVDecomposer[E])

	t := &e.table
	t[OpRank][0] = e.ranker != nil
	t[OpDeterminant][0] = e.det != nil
	t[OpInverse][0] = e.inv != nil
	t[OpMult][0] = e.mul != nil
	t[OpNullSpace][SideRight] = e.rightNS != nil
	t[OpNullSpace][SideLeft] = e.leftNS != nil
	t[OpSolveLinear][SideRight] = e.rightSol != nil
	t[OpSolveLinear][SideLeft] = e.leftSol != nil
	t[OpRankProfile][ProfileRows] = e.profiler != nil
	t[OpRankProfile][ProfileColumns] = e.profiler != nil
	t[OpAddMultipleTo][0] = e.fused != nil
	t[OpSubtractMultipleTo][0] = e.fused != nil
	t[OpSolve][0] = e.square != nil
	t[OpNullspaceU][0] = e.echelon != nil
	t[OpLU][0] = e.lu != nil
	t[OpEigenvalues][0] = e.eigen != nil
	t[OpEigenvectors][0] = e.eigen != nil
	t[OpEigenvaluesHermitian][0] = e.herm != nil
	t[OpEigenvectorsHermitian][0] = e.herm != nil
	t[OpLeastSquares][0] = e.lsq != nil
	t[OpSVD][0] = e.svd != nil

	e.opts.logger.Debug("engine ready",
		slog.String("domain", rg.String()),
		slog.String("strategy", e.strategy),
		slog.Int("capabilities", len(e.Capabilities())))

	return e, nil
}

// Ring returns the coefficient domain of the engine.
func (e *Engine[E]) Ring() ring.Ring[E] { return e.rg }

// StrategyName returns the name of the bound strategy ("none" without one).
func (e *Engine[E]) StrategyName() string { return e.strategy }

// Options returns the resolved configuration.
func (e *Engine[E]) Options() Options { return e.opts }

// Supports reports whether op is implemented for at least one side.
func (e *Engine[E]) Supports(op Op) bool {
	if op >= opCount {
		return false
	}

	return e.table[op][0] || e.table[op][1]
}

// SupportsSide reports whether the sided op (NullSpace, SolveLinear) is
// implemented for side. For other operations it equals Supports.
func (e *Engine[E]) SupportsSide(op Op, side Side) bool {
	if op >= opCount {
		return false
	}
	if !op.sided() {
		return e.Supports(op)
	}

	return e.table[op][side&1]
}

// Capability lists one supported operation and, for sided operations, the
// supported sides.
type Capability struct {
	Op    Op
	Sides []string
}

// Capabilities returns the supported operations in declaration order.
func (e *Engine[E]) Capabilities() []Capability {
	out := make([]Capability, 0, opCount)
	for op := Op(0); op < opCount; op++ {
		if !e.Supports(op) {
			continue
		}
		c := Capability{Op: op}
		if op.sided() {
			names := op.sideNames()
			for slot := 0; slot < 2; slot++ {
				if e.table[op][slot] {
					c.Sides = append(c.Sides, names[slot])
				}
			}
		}
		out = append(out, c)
	}

	return out
}

// ---------- dispatch helpers ----------

// resolve returns nil when (op, slot) has a strategy and the typed error otherwise.
func (e *Engine[E]) resolve(op Op, slot int) error {
	if e.table[op][slot] {
		if e.opts.logger.Enabled(context.Background(), slog.LevelDebug) {
			e.opts.logger.LogAttrs(context.Background(), slog.LevelDebug, "dispatch",
				slog.String("op", op.String()),
				slog.String("domain", e.rg.String()),
				slog.String("strategy", e.strategy))
		}

		return nil
	}
	side := ""
	if op.sided() {
		side = op.sideNames()[slot]
	}
	e.opts.logger.LogAttrs(context.Background(), slog.LevelDebug, "unsupported operation",
		slog.String("op", op.String()),
		slog.String("side", side),
		slog.String("domain", e.rg.String()),
		slog.String("strategy", e.strategy))

	return &UnsupportedOperationError{Op: op, Side: side, Domain: e.rg.String()}
}

// notNil validates every matrix operand.
func notNil[T any](op Op, ms ...*matrix.Dense[T]) error {
	for _, m := range ms {
		if err := matrix.ValidateNotNil(m); err != nil {
			return linalgErrorf(op, err)
		}
	}

	return nil
}

// sameRing checks that every operand belongs to the engine's ring.
func (e *Engine[E]) sameRing(op Op, ms ...*matrix.Dense[E]) error {
	for _, m := range ms {
		if !ring.Same(e.rg, m.Ring()) {
			return linalgErrorf(op, matrix.ErrRingMismatch)
		}
	}

	return nil
}

// adopt moves src's buffer into dst (no copy); src must be fresh storage.
func adopt[T any](op Op, dst, src *matrix.Dense[T]) error {
	if err := dst.SetRaw(src.Rows(), src.Cols(), src.Raw()); err != nil {
		return linalgErrorf(op, err)
	}

	return nil
}

// adoptColumn stores v as a len(v)×1 column in dst.
func adoptColumn[T any](op Op, dst *matrix.Dense[T], v []T) error {
	if err := dst.SetRaw(len(v), 1, v); err != nil {
		return linalgErrorf(op, err)
	}

	return nil
}

// identityInto writes the n×n identity into dst.
func (e *Engine[E]) identityInto(op Op, dst *matrix.Dense[E], n int) error {
	id, err := matrix.Identity(e.rg, n)
	if err != nil {
		return linalgErrorf(op, err)
	}

	return adopt(op, dst, id)
}

// zeroInto resizes dst to rows×cols zeros.
func zeroInto[T any](op Op, dst *matrix.Dense[T], rows, cols int) error {
	if err := dst.Resize(rows, cols); err != nil {
		return linalgErrorf(op, err)
	}

	return nil
}

func (e *Engine[E]) allZero(m *matrix.Dense[E]) bool {
	for _, v := range m.Raw() {
		if !e.rg.IsZero(v) {
			return false
		}
	}

	return true
}

// ---------- operations ----------

// Rank returns rank(A): exact for exact domains, numerical (relative tolerance)
// for float domains.
func (e *Engine[E]) Rank(a *matrix.Dense[E]) (int, error) {
	if err := notNil(OpRank, a); err != nil {
		return 0, err
	}
	if err := e.resolve(OpRank, 0); err != nil {
		return 0, err
	}
	if err := e.sameRing(OpRank, a); err != nil {
		return 0, err
	}
	if a.IsEmpty() {
		return 0, nil
	}
	r, err := e.ranker.Rank(&e.opts, a)
	if err != nil {
		return 0, linalgErrorf(OpRank, err)
	}

	return r, nil
}

// Determinant writes det(A) into *det. A must be square; det(0×0) = 1.
func (e *Engine[E]) Determinant(a *matrix.Dense[E], det *E) error {
	if err := notNil(OpDeterminant, a); err != nil {
		return err
	}
	if det == nil {
		return linalgErrorf(OpDeterminant, ErrNilOutput)
	}
	if err := e.resolve(OpDeterminant, 0); err != nil {
		return err
	}
	if err := e.sameRing(OpDeterminant, a); err != nil {
		return err
	}
	if err := matrix.ValidateSquare(a); err != nil {
		return linalgErrorf(OpDeterminant, err)
	}
	if a.Rows() == 0 {
		*det = e.rg.One()

		return nil
	}
	d, err := e.det.Determinant(&e.opts, a)
	if err != nil {
		return linalgErrorf(OpDeterminant, err)
	}
	*det = d

	return nil
}

// Inverse writes A⁻¹ into dst (resized). A must be square.
// Returns false when A is singular; the inverse of 0×0 is 0×0 and true.
func (e *Engine[E]) Inverse(a, dst *matrix.Dense[E]) (bool, error) {
	if err := notNil(OpInverse, a, dst); err != nil {
		return false, err
	}
	if err := e.resolve(OpInverse, 0); err != nil {
		return false, err
	}
	if err := e.sameRing(OpInverse, a, dst); err != nil {
		return false, err
	}
	if err := matrix.ValidateSquare(a); err != nil {
		return false, linalgErrorf(OpInverse, err)
	}
	if a.Rows() == 0 {
		return true, zeroInto(OpInverse, dst, 0, 0)
	}
	inv, ok, err := e.inv.Inverse(&e.opts, a)
	if err != nil {
		return false, linalgErrorf(OpInverse, err)
	}
	if !ok {
		return false, nil
	}

	return true, adopt(OpInverse, dst, inv)
}

// Mult writes A·B into dst (resized to rows(A)×cols(B)).
// dst must not alias A or B (checked with -tags lvlalgdebug only).
func (e *Engine[E]) Mult(a, b, dst *matrix.Dense[E]) error {
	if err := notNil(OpMult, a, b, dst); err != nil {
		return err
	}
	if err := e.resolve(OpMult, 0); err != nil {
		return err
	}
	if err := e.sameRing(OpMult, a, b, dst); err != nil {
		return err
	}
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return linalgErrorf(OpMult, err)
	}
	if debugChecks {
		assertf(!matrix.Aliases(dst, a) && !matrix.Aliases(dst, b), "%s: output aliases an operand", OpMult)
	}
	if a.IsEmpty() || b.IsEmpty() {
		return zeroInto(OpMult, dst, a.Rows(), b.Cols())
	}
	c, err := e.mul.Mult(&e.opts, a, b)
	if err != nil {
		return linalgErrorf(OpMult, err)
	}

	return adopt(OpMult, dst, c)
}

// NullSpace writes a basis of the null space into dst and returns its dimension k.
//   - SideRight: dst is cols(A)×k, its columns span {x : A·x = 0}.
//   - SideLeft:  dst is k×rows(A), its rows span {x : x·A = 0}.
func (e *Engine[E]) NullSpace(a *matrix.Dense[E], side Side, dst *matrix.Dense[E]) (int, error) {
	if err := notNil(OpNullSpace, a, dst); err != nil {
		return 0, err
	}
	if side != SideLeft {
		side = SideRight
	}
	if err := e.resolve(OpNullSpace, int(side)); err != nil {
		return 0, err
	}
	if err := e.sameRing(OpNullSpace, a, dst); err != nil {
		return 0, err
	}
	if a.IsEmpty() {
		n := a.Cols()
		if side == SideLeft {
			n = a.Rows()
		}

		return n, e.identityInto(OpNullSpace, dst, n)
	}

	var (
		basis *matrix.Dense[E]
		err   error
		k     int
	)
	if side == SideLeft {
		basis, err = e.leftNS.LeftNullSpace(&e.opts, a)
		if basis != nil {
			k = basis.Rows()
		}
	} else {
		basis, err = e.rightNS.RightNullSpace(&e.opts, a)
		if basis != nil {
			k = basis.Cols()
		}
	}
	if err != nil {
		return 0, linalgErrorf(OpNullSpace, err)
	}

	return k, adopt(OpNullSpace, dst, basis)
}

// SolveLinear writes one solution of A·X = B (SideRight) or X·A = B (SideLeft)
// into dst.
//
// Behavior highlights:
//   - assumeInvertible is a hint, not a guarantee: with square A the strategy
//     may skip the consistency check, and a singular A then yields an
//     unspecified result (possibly true with a wrong X).
//   - Without the hint an inconsistent system returns false.
//
// Errors: rows(A) ≠ rows(B) (right) or cols(A) ≠ cols(B) (left) →
// matrix.ErrDimensionMismatch.
func (e *Engine[E]) SolveLinear(a, b *matrix.Dense[E], side Side, dst *matrix.Dense[E], assumeInvertible bool) (bool, error) {
	if err := notNil(OpSolveLinear, a, b, dst); err != nil {
		return false, err
	}
	if side != SideLeft {
		side = SideRight
	}
	if err := e.resolve(OpSolveLinear, int(side)); err != nil {
		return false, err
	}
	if err := e.sameRing(OpSolveLinear, a, b, dst); err != nil {
		return false, err
	}
	var shapeErr error
	if side == SideLeft {
		shapeErr = matrix.ValidateSameCols(a, b)
	} else {
		shapeErr = matrix.ValidateSameRows(a, b)
	}
	if shapeErr != nil {
		return false, linalgErrorf(OpSolveLinear, shapeErr)
	}
	if a.IsEmpty() || b.IsEmpty() {
		return e.solveEmpty(a, b, side, dst)
	}

	var (
		x   *matrix.Dense[E]
		ok  bool
		err error
	)
	if side == SideLeft {
		x, ok, err = e.leftSol.SolveLeft(&e.opts, a, b, assumeInvertible)
	} else {
		x, ok, err = e.rightSol.SolveRight(&e.opts, a, b, assumeInvertible)
	}
	if err != nil {
		return false, linalgErrorf(OpSolveLinear, err)
	}
	if !ok {
		return false, nil
	}

	return true, adopt(OpSolveLinear, dst, x)
}

// solveEmpty answers systems with an empty operand: the zero X solves them
// unless A has no unknowns to absorb a non-zero B.
func (e *Engine[E]) solveEmpty(a, b *matrix.Dense[E], side Side, dst *matrix.Dense[E]) (bool, error) {
	m, n := a.Shape()
	var rows, cols, unknowns int
	if side == SideLeft {
		rows, cols, unknowns = b.Rows(), m, m // X is r×m
	} else {
		rows, cols, unknowns = n, b.Cols(), n // X is n×r
	}
	if unknowns == 0 && !e.allZero(b) {
		return false, nil
	}

	return true, zeroInto(OpSolveLinear, dst, rows, cols)
}

// RankProfile returns the row or column rank profile: strictly increasing
// indices where the rank of the leading rows (columns) grows. Never nil.
func (e *Engine[E]) RankProfile(a *matrix.Dense[E], side ProfileSide) ([]int, error) {
	if err := notNil(OpRankProfile, a); err != nil {
		return nil, err
	}
	if side != ProfileColumns {
		side = ProfileRows
	}
	if err := e.resolve(OpRankProfile, int(side)); err != nil {
		return nil, err
	}
	if err := e.sameRing(OpRankProfile, a); err != nil {
		return nil, err
	}
	if a.IsEmpty() {
		return []int{}, nil
	}
	p, err := e.profiler.RankProfile(&e.opts, a, side)
	if err != nil {
		return nil, linalgErrorf(OpRankProfile, err)
	}
	if p == nil {
		p = []int{}
	}

	return p, nil
}

// AddMultipleTo performs C ← C + A·B in place.
// Shapes (rows(C)=rows(A), cols(C)=cols(B), cols(A)=rows(B)) are a caller
// contract, asserted only with -tags lvlalgdebug.
func (e *Engine[E]) AddMultipleTo(c, a, b *matrix.Dense[E]) error {
	return e.fusedOp(OpAddMultipleTo, c, a, b)
}

// SubtractMultipleTo performs C ← C − A·B in place. Same contract as AddMultipleTo.
func (e *Engine[E]) SubtractMultipleTo(c, a, b *matrix.Dense[E]) error {
	return e.fusedOp(OpSubtractMultipleTo, c, a, b)
}

func (e *Engine[E]) fusedOp(op Op, c, a, b *matrix.Dense[E]) error {
	if err := notNil(op, c, a, b); err != nil {
		return err
	}
	if err := e.resolve(op, 0); err != nil {
		return err
	}
	if debugChecks {
		assertf(matrix.ValidateFusedShapes(c, a, b) == nil,
			"%s: C %dx%d, A %dx%d, B %dx%d", op, c.Rows(), c.Cols(), a.Rows(), a.Cols(), b.Rows(), b.Cols())
		assertf(e.sameRing(op, c, a, b) == nil, "%s: operands over different rings", op)
	}
	if a.IsEmpty() || b.IsEmpty() {
		return nil
	}
	var err error
	if op == OpSubtractMultipleTo {
		err = e.fused.SubMul(&e.opts, c, a, b)
	} else {
		err = e.fused.AddMul(&e.opts, c, a, b)
	}
	if err != nil {
		return linalgErrorf(op, err)
	}

	return nil
}

// Solve writes X with A·X = B for square A into dst, via pivoted LU.
// Returns false when A is singular to working precision.
func (e *Engine[E]) Solve(a, b, dst *matrix.Dense[E]) (bool, error) {
	if err := notNil(OpSolve, a, b, dst); err != nil {
		return false, err
	}
	if err := e.resolve(OpSolve, 0); err != nil {
		return false, err
	}
	if err := e.sameRing(OpSolve, a, b, dst); err != nil {
		return false, err
	}
	if err := matrix.ValidateSquare(a); err != nil {
		return false, linalgErrorf(OpSolve, err)
	}
	if err := matrix.ValidateSameRows(a, b); err != nil {
		return false, linalgErrorf(OpSolve, err)
	}
	if a.IsEmpty() || b.IsEmpty() {
		return true, zeroInto(OpSolve, dst, a.Cols(), b.Cols())
	}
	x, ok, err := e.square.SolveSquare(&e.opts, a, b)
	if err != nil {
		return false, linalgErrorf(OpSolve, err)
	}
	if !ok {
		return false, nil
	}

	return true, adopt(OpSolve, dst, x)
}

// NullspaceU writes a right null-space basis read off the echelon form of A
// (one column per free variable, not orthonormal) into dst.
func (e *Engine[E]) NullspaceU(a, dst *matrix.Dense[E]) (bool, error) {
	if err := notNil(OpNullspaceU, a, dst); err != nil {
		return false, err
	}
	if err := e.resolve(OpNullspaceU, 0); err != nil {
		return false, err
	}
	if err := e.sameRing(OpNullspaceU, a, dst); err != nil {
		return false, err
	}
	if a.IsEmpty() {
		return true, e.identityInto(OpNullspaceU, dst, a.Cols())
	}
	ns, ok, err := e.echelon.NullspaceU(&e.opts, a)
	if err != nil {
		return false, linalgErrorf(OpNullspaceU, err)
	}
	if !ok {
		return false, nil
	}

	return true, adopt(OpNullspaceU, dst, ns)
}

// LU factors square A into unit lower L and upper U with row i of L·U equal
// to row perm[i] of A (A = P·L·U). Singular A still factors; ok=false means
// the factorization is not meaningful (non-finite input).
func (e *Engine[E]) LU(a, l, u *matrix.Dense[E]) ([]int, bool, error) {
	if err := notNil(OpLU, a, l, u); err != nil {
		return nil, false, err
	}
	if err := e.resolve(OpLU, 0); err != nil {
		return nil, false, err
	}
	if err := e.sameRing(OpLU, a, l, u); err != nil {
		return nil, false, err
	}
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, false, linalgErrorf(OpLU, err)
	}
	if a.Rows() == 0 {
		if err := zeroInto(OpLU, l, 0, 0); err != nil {
			return nil, false, err
		}

		return []int{}, true, zeroInto(OpLU, u, 0, 0)
	}
	lf, uf, perm, ok, err := e.lu.LU(&e.opts, a)
	if err != nil {
		return nil, false, linalgErrorf(OpLU, err)
	}
	if !ok {
		return nil, false, nil
	}
	if err = adopt(OpLU, l, lf); err != nil {
		return nil, false, err
	}

	return perm, true, adopt(OpLU, u, uf)
}

// Eigenvalues writes the n eigenvalues of square A into vals (n×1).
// Returns false when the iteration does not converge.
func (e *Engine[E]) Eigenvalues(a *matrix.Dense[E], vals *matrix.Dense[complex128]) (bool, error) {
	return e.eigenOp(OpEigenvalues, a, vals, nil)
}

// Eigenvectors writes eigenvalues into vals (n×1) and unit 2-norm
// eigenvectors into the columns of vecs (n×n), in matching order.
func (e *Engine[E]) Eigenvectors(a *matrix.Dense[E], vals, vecs *matrix.Dense[complex128]) (bool, error) {
	if err := notNil(OpEigenvectors, vecs); err != nil {
		return false, err
	}

	return e.eigenOp(OpEigenvectors, a, vals, vecs)
}

func (e *Engine[E]) eigenOp(op Op, a *matrix.Dense[E], vals, vecs *matrix.Dense[complex128]) (bool, error) {
	if err := notNil(op, a); err != nil {
		return false, err
	}
	if err := notNil(op, vals); err != nil {
		return false, err
	}
	if err := e.resolve(op, 0); err != nil {
		return false, err
	}
	if err := e.sameRing(op, a); err != nil {
		return false, err
	}
	if err := matrix.ValidateSquare(a); err != nil {
		return false, linalgErrorf(op, err)
	}
	if a.Rows() == 0 {
		if vecs != nil {
			if err := zeroInto(op, vecs, 0, 0); err != nil {
				return false, err
			}
		}

		return true, zeroInto(op, vals, 0, 1)
	}
	v, w, ok, err := e.eigen.Eigen(&e.opts, a, vecs != nil)
	if err != nil {
		return false, linalgErrorf(op, err)
	}
	if !ok {
		return false, nil
	}
	if vecs != nil {
		if err = adopt(op, vecs, w); err != nil {
			return false, err
		}
	}

	return true, adoptColumn(op, vals, v)
}

// EigenvaluesHermitian writes the real eigenvalues of self-adjoint A, ascending,
// into vals (n×1). Self-adjointness is assumed, not verified: only the upper
// triangle is trusted by the kernels.
func (e *Engine[E]) EigenvaluesHermitian(a *matrix.Dense[E], vals *matrix.Dense[float64]) (bool, error) {
	return e.hermOp(OpEigenvaluesHermitian, a, vals, nil)
}

// EigenvectorsHermitian also writes orthonormal eigenvectors into the columns of vecs.
func (e *Engine[E]) EigenvectorsHermitian(a *matrix.Dense[E], vals *matrix.Dense[float64], vecs *matrix.Dense[E]) (bool, error) {
	if err := notNil(OpEigenvectorsHermitian, vecs); err != nil {
		return false, err
	}

	return e.hermOp(OpEigenvectorsHermitian, a, vals, vecs)
}

func (e *Engine[E]) hermOp(op Op, a *matrix.Dense[E], vals *matrix.Dense[float64], vecs *matrix.Dense[E]) (bool, error) {
	if err := notNil(op, a); err != nil {
		return false, err
	}
	if err := notNil(op, vals); err != nil {
		return false, err
	}
	if err := e.resolve(op, 0); err != nil {
		return false, err
	}
	if err := e.sameRing(op, a); err != nil {
		return false, err
	}
	if vecs != nil {
		if err := e.sameRing(op, vecs); err != nil {
			return false, err
		}
	}
	if err := matrix.ValidateSquare(a); err != nil {
		return false, linalgErrorf(op, err)
	}
	if a.Rows() == 0 {
		if vecs != nil {
			if err := zeroInto(op, vecs, 0, 0); err != nil {
				return false, err
			}
		}

		return true, zeroInto(op, vals, 0, 1)
	}
	v, w, ok, err := e.herm.EigenHermitian(&e.opts, a, vecs != nil)
	if err != nil {
		return false, linalgErrorf(op, err)
	}
	if !ok {
		return false, nil
	}
	if vecs != nil {
		if err = adopt(op, vecs, w); err != nil {
			return false, err
		}
	}

	return true, adoptColumn(op, vals, v)
}

// LeastSquares writes X minimizing ‖A·X − B‖ into dst (cols(A)×cols(B)).
//   - assumeFullRank: QR (rows ≥ cols) or LQ (rows < cols, minimum-norm
//     solution); returns false when A turns out rank deficient.
//   - otherwise: SVD pseudo-inverse, the minimum-norm least-squares solution
//     for any rank.
func (e *Engine[E]) LeastSquares(a, b, dst *matrix.Dense[E], assumeFullRank bool) (bool, error) {
	if err := notNil(OpLeastSquares, a, b, dst); err != nil {
		return false, err
	}
	if err := e.resolve(OpLeastSquares, 0); err != nil {
		return false, err
	}
	if err := e.sameRing(OpLeastSquares, a, b, dst); err != nil {
		return false, err
	}
	if err := matrix.ValidateSameRows(a, b); err != nil {
		return false, linalgErrorf(OpLeastSquares, err)
	}
	if a.IsEmpty() || b.IsEmpty() {
		return true, zeroInto(OpLeastSquares, dst, a.Cols(), b.Cols())
	}
	x, ok, err := e.lsq.LeastSquares(&e.opts, a, b, assumeFullRank)
	if err != nil {
		return false, linalgErrorf(OpLeastSquares, err)
	}
	if !ok {
		return false, nil
	}

	return true, adopt(OpLeastSquares, dst, x)
}

// SVD writes A = U·diag(sigma)·Vt: sigma min(m,n)×1 descending, U m×m and
// Vt n×n unitary. Unknown strategy values run SVDStandard.
func (e *Engine[E]) SVD(a *matrix.Dense[E], sigma *matrix.Dense[float64], u, vt *matrix.Dense[E], strategy SVDStrategy) (bool, error) {
	if err := notNil(OpSVD, a, u, vt); err != nil {
		return false, err
	}
	if err := notNil(OpSVD, sigma); err != nil {
		return false, err
	}
	if err := e.resolve(OpSVD, 0); err != nil {
		return false, err
	}
	if err := e.sameRing(OpSVD, a, u, vt); err != nil {
		return false, err
	}
	if strategy != SVDJacobi {
		strategy = SVDStandard
	}
	if a.IsEmpty() {
		if err := e.identityInto(OpSVD, u, a.Rows()); err != nil {
			return false, err
		}
		if err := e.identityInto(OpSVD, vt, a.Cols()); err != nil {
			return false, err
		}

		return true, zeroInto(OpSVD, sigma, 0, 1)
	}
	s, uf, vtf, ok, err := e.svd.SVD(&e.opts, a, strategy)
	if err != nil {
		return false, linalgErrorf(OpSVD, err)
	}
	if !ok {
		return false, nil
	}
	if err = adopt(OpSVD, u, uf); err != nil {
		return false, err
	}
	if err = adopt(OpSVD, vt, vtf); err != nil {
		return false, err
	}

	return true, adoptColumn(OpSVD, sigma, s)
}
