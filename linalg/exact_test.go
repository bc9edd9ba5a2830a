// SPDX-License-Identifier: MIT

package linalg_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/linalg"
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/ring"
)

// shapeCase is one random input for the exact property suite.
type shapeCase struct {
	name       string
	rows, cols int
	rank       int // -1: unconstrained
	seed       int64
}

var exactShapes = []shapeCase{
	{"square-full", 5, 5, -1, 1},
	{"square-deficient", 5, 5, 3, 2},
	{"wide", 3, 6, -1, 3},
	{"tall", 6, 3, -1, 4},
	{"wide-deficient", 4, 7, 2, 5},
	{"tall-deficient", 7, 4, 2, 6},
	{"rank-one", 4, 4, 1, 7},
	{"zero", 3, 4, 0, 8},
}

// checkNullSpace verifies correctness (A·N = 0 or N·A = 0), rank-nullity
// and independence of the returned basis.
func checkNullSpace[E any](t *testing.T, eng *linalg.Engine[E], a *matrix.Dense[E], side linalg.Side) {
	t.Helper()
	r, err := eng.Rank(a)
	require.NoError(t, err)

	ns := MustDense(t, eng.Ring(), 0, 0)
	k, err := eng.NullSpace(a, side, ns)
	require.NoError(t, err)

	var prod *matrix.Dense[E]
	if side == linalg.SideLeft {
		assert.Equal(t, a.Rows()-r, k, "left rank-nullity")
		assert.Equal(t, k, ns.Rows())
		assert.Equal(t, a.Rows(), ns.Cols())
		if k == 0 {
			return
		}
		prod = Product(t, ns, a)
	} else {
		assert.Equal(t, a.Cols()-r, k, "right rank-nullity")
		assert.Equal(t, a.Cols(), ns.Rows())
		assert.Equal(t, k, ns.Cols())
		if k == 0 {
			return
		}
		prod = Product(t, a, ns)
	}
	assert.True(t, IsZero(prod), "basis does not annihilate A")

	nr, err := eng.Rank(ns)
	require.NoError(t, err)
	assert.Equal(t, k, nr, "basis vectors are dependent")
}

// checkProfile verifies that the profile lists exactly the indices where the
// rank of the leading rows (columns) grows.
func checkProfile[E any](t *testing.T, eng *linalg.Engine[E], a *matrix.Dense[E], side linalg.ProfileSide) {
	t.Helper()
	p, err := eng.RankProfile(a, side)
	require.NoError(t, err)
	r, err := eng.Rank(a)
	require.NoError(t, err)
	require.Len(t, p, r)

	dim := a.Rows()
	if side == linalg.ProfileColumns {
		dim = a.Cols()
	}
	for i := 1; i < len(p); i++ {
		require.Less(t, p[i-1], p[i], "profile not strictly increasing")
	}

	prev, next := 0, 0
	for j := 0; j < dim; j++ {
		var lead *matrix.Dense[E]
		if side == linalg.ProfileColumns {
			lead = SubMatrix(t, a, nil, seq(j+1))
		} else {
			lead = SubMatrix(t, a, seq(j+1), nil)
		}
		lr, err := eng.Rank(lead)
		require.NoError(t, err)
		grows := lr > prev
		inProfile := next < len(p) && p[next] == j
		assert.Equalf(t, grows, inProfile, "index %d", j)
		if inProfile {
			next++
		}
		prev = lr
	}
}

// checkSolve solves consistent systems built from a known X on both supported
// sides and an inconsistent right system when A has a left null space.
func checkSolve[E any](t *testing.T, eng *linalg.Engine[E], a *matrix.Dense[E], seed int64) {
	t.Helper()
	rg := eng.Ring()

	x0 := RandomInts(t, rg, seed, a.Cols(), 2, 5, -1)
	b := Product(t, a, x0)
	x := MustDense(t, rg, 0, 0)
	ok, err := eng.SolveLinear(a, b, linalg.SideRight, x, false)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, matrix.Equal(b, Product(t, a, x)), "A·X ≠ B")

	if eng.SupportsSide(linalg.OpSolveLinear, linalg.SideLeft) {
		y0 := RandomInts(t, rg, seed+1, 2, a.Rows(), 5, -1)
		c := Product(t, y0, a)
		y := MustDense(t, rg, 0, 0)
		ok, err = eng.SolveLinear(a, c, linalg.SideLeft, y, false)
		require.NoError(t, err)
		require.True(t, ok)
		assert.True(t, matrix.Equal(c, Product(t, y, a)), "X·A ≠ B")
	}

	// B = e_i with y_i ≠ 0 for some left null vector y is inconsistent.
	if !eng.SupportsSide(linalg.OpNullSpace, linalg.SideLeft) {
		return
	}
	ns := MustDense(t, rg, 0, 0)
	k, err := eng.NullSpace(a, linalg.SideLeft, ns)
	require.NoError(t, err)
	if k == 0 {
		return
	}
	for i := 0; i < a.Rows(); i++ {
		if rg.IsZero(MustAt(t, ns, 0, i)) {
			continue
		}
		e := MustDense(t, rg, a.Rows(), 1)
		require.NoError(t, e.Set(i, 0, rg.One()))
		ok, err = eng.SolveLinear(a, e, linalg.SideRight, x, false)
		require.NoError(t, err)
		assert.False(t, ok, "inconsistent system reported solvable")

		return
	}
}

// checkSquare covers determinant multiplicativity and the inverse round trip.
func checkSquare[E any](t *testing.T, eng *linalg.Engine[E], a *matrix.Dense[E], seed int64) {
	t.Helper()
	rg := eng.Ring()
	n := a.Rows()

	var da, db, dab E
	b := RandomInts(t, rg, seed, n, n, 4, -1)
	require.NoError(t, eng.Determinant(a, &da))
	require.NoError(t, eng.Determinant(b, &db))
	require.NoError(t, eng.Determinant(Product(t, a, b), &dab))
	assert.Truef(t, rg.Equal(rg.Mul(da, db), dab), "det(AB)=%s, det(A)det(B)=%s", rg.Format(dab), rg.Format(rg.Mul(da, db)))

	r, err := eng.Rank(a)
	require.NoError(t, err)
	assert.Equal(t, r == n, !rg.IsZero(da), "det vanishes iff A is singular")

	inv := MustDense(t, rg, 0, 0)
	ok, err := eng.Inverse(a, inv)
	require.NoError(t, err)
	if !ok {
		assert.Less(t, r, n)

		return
	}
	id, err := matrix.Identity(rg, n)
	require.NoError(t, err)
	assert.True(t, matrix.Equal(id, Product(t, a, inv)), "A·A⁻¹ ≠ I")
	assert.True(t, matrix.Equal(id, Product(t, inv, a)), "A⁻¹·A ≠ I")
}

// checkMultAndFused checks Mult against the reference product and that
// AddMultipleTo followed by SubtractMultipleTo restores C.
func checkMultAndFused[E any](t *testing.T, eng *linalg.Engine[E], a *matrix.Dense[E], seed int64) {
	t.Helper()
	rg := eng.Ring()
	b := RandomInts(t, rg, seed, a.Cols(), 3, 6, -1)

	c := MustDense(t, rg, 0, 0)
	require.NoError(t, eng.Mult(a, b, c))
	assert.Equal(t, a.Rows(), c.Rows())
	assert.Equal(t, b.Cols(), c.Cols())
	ref := Product(t, a, b)
	assert.True(t, matrix.Equal(ref, c))

	acc := RandomInts(t, rg, seed+7, a.Rows(), 3, 6, -1)
	orig := acc.Clone()
	require.NoError(t, eng.AddMultipleTo(acc, a, b))
	want, err := matrix.Add(orig, ref)
	require.NoError(t, err)
	assert.True(t, matrix.Equal(want, acc), "C + A·B")

	require.NoError(t, eng.SubtractMultipleTo(acc, a, b))
	assert.True(t, matrix.Equal(orig, acc), "C + A·B − A·B ≠ C")
}

func runExactSuite[E any](t *testing.T, eng *linalg.Engine[E]) {
	for _, sc := range exactShapes {
		t.Run(sc.name, func(t *testing.T) {
			t.Parallel()
			a := RandomInts(t, eng.Ring(), sc.seed, sc.rows, sc.cols, 9, sc.rank)

			checkNullSpace(t, eng, a, linalg.SideRight)
			if eng.SupportsSide(linalg.OpNullSpace, linalg.SideLeft) {
				checkNullSpace(t, eng, a, linalg.SideLeft)
			}
			if eng.Supports(linalg.OpRankProfile) {
				checkProfile(t, eng, a, linalg.ProfileRows)
				checkProfile(t, eng, a, linalg.ProfileColumns)
			}
			checkSolve(t, eng, a, sc.seed*31)
			checkMultAndFused(t, eng, a, sc.seed*17)
			if sc.rows == sc.cols {
				checkSquare(t, eng, a, sc.seed*13)
			}
		})
	}
}

func TestExactLaws_ZZp(t *testing.T) {
	t.Parallel()
	runExactSuite(t, zzpEngine(t, 101))
}

func TestExactLaws_ZZpWordPrime(t *testing.T) {
	t.Parallel()
	// Largest prime below 2^64: products need the full 128-bit path.
	runExactSuite(t, zzpEngine(t, 18446744073709551557))
}

func TestExactLaws_GF(t *testing.T) {
	t.Parallel()
	runExactSuite(t, gfEngine(t, 1_000_000_007))
}

func TestExactLaws_QQ(t *testing.T) {
	t.Parallel()
	runExactSuite(t, mustEngine(linalg.ForQQ())(t))
}

func TestExactLaws_ZZ(t *testing.T) {
	t.Parallel()
	zz := mustEngine(linalg.ForZZ())(t)
	for _, sc := range exactShapes {
		t.Run(sc.name, func(t *testing.T) {
			t.Parallel()
			a := RandomInts(t, zz.Ring(), sc.seed, sc.rows, sc.cols, 9, sc.rank)
			checkNullSpace(t, zz, a, linalg.SideRight)
			checkMultAndFused(t, zz, a, sc.seed*17)
			if sc.rows == sc.cols {
				var da, db, dab *big.Int
				b := RandomInts(t, zz.Ring(), sc.seed, sc.rows, sc.rows, 4, -1)
				require.NoError(t, zz.Determinant(a, &da))
				require.NoError(t, zz.Determinant(b, &db))
				require.NoError(t, zz.Determinant(Product(t, a, b), &dab))
				assert.Zero(t, new(big.Int).Mul(da, db).Cmp(dab))
			}
		})
	}
}

func TestZZ_DenominatorRejection(t *testing.T) {
	t.Parallel()

	zz := mustEngine(linalg.ForZZ())(t)
	rg := zz.Ring()
	inv := MustDense(t, rg, 0, 0)

	// det 2: the rational inverse has denominator 2.
	ok, err := zz.Inverse(MustParse(t, rg, Ints([][]int64{{2, 0}, {0, 1}})), inv)
	require.NoError(t, err)
	assert.False(t, ok)

	// Unimodular: integral inverse.
	ok, err = zz.Inverse(MustParse(t, rg, Ints([][]int64{{2, 1}, {1, 1}})), inv)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, matrix.Equal(MustParse(t, rg, Ints([][]int64{{1, -1}, {-1, 2}})), inv))

	// det −1 is a unit as well.
	ok, err = zz.Inverse(MustParse(t, rg, Ints([][]int64{{0, 1}, {1, 0}})), inv)
	require.NoError(t, err)
	assert.True(t, ok)

	x := MustDense(t, rg, 0, 0)
	a := MustParse(t, rg, Ints([][]int64{{2}}))
	ok, err = zz.SolveLinear(a, MustParse(t, rg, Ints([][]int64{{4}})), linalg.SideRight, x, false)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "2", rg.Format(MustAt(t, x, 0, 0)))

	ok, err = zz.SolveLinear(a, MustParse(t, rg, Ints([][]int64{{1}})), linalg.SideRight, x, false)
	require.NoError(t, err)
	assert.False(t, ok, "x = 1/2 is not an integer solution")

	// The integer null space basis is integral even when the rational one is not.
	ns := MustDense(t, rg, 0, 0)
	k, err := zz.NullSpace(MustParse(t, rg, Ints([][]int64{{2, 3}})), linalg.SideRight, ns)
	require.NoError(t, err)
	require.Equal(t, 1, k)
	assert.True(t, IsZero(Product(t, MustParse(t, rg, Ints([][]int64{{2, 3}})), ns)))
}

func TestQQ_Values(t *testing.T) {
	t.Parallel()

	qq := mustEngine(linalg.ForQQ())(t)
	rg := qq.Ring()
	a := MustParse(t, rg, [][]string{{"1/2", "1/3"}, {"1/4", "1/5"}})

	var det *big.Rat
	require.NoError(t, qq.Determinant(a, &det))
	assert.Equal(t, "1/60", det.RatString()) // 1/10 − 1/12

	inv := MustDense(t, rg, 0, 0)
	ok, err := qq.Inverse(a, inv)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, matrix.Equal(MustParse(t, rg, [][]string{{"12", "-20"}, {"-15", "30"}}), inv))

	r, err := qq.Rank(MustParse(t, rg, [][]string{{"1/2", "1/3"}, {"3/2", "1"}}))
	require.NoError(t, err)
	assert.Equal(t, 1, r)
}

func TestZZp_Values(t *testing.T) {
	t.Parallel()

	eng := zzpEngine(t, 7)
	rg := eng.Ring()
	a := MustParse(t, rg, [][]string{{"1", "2", "3"}, {"4", "5", "6"}})

	// Non-square product checks the operand swap: 2×3 · 3×2.
	b := MustParse(t, rg, [][]string{{"1", "0"}, {"0", "1"}, {"1", "1"}})
	c := MustDense(t, rg, 0, 0)
	require.NoError(t, eng.Mult(a, b, c))
	assert.Equal(t, []uint64{4, 5, 3, 4}, c.Raw()) // 10 ≡ 3, 11 ≡ 4

	// Row profile of a rank-1 matrix with a zero first row.
	p, err := eng.RankProfile(MustParse(t, rg, [][]string{{"0", "0"}, {"1", "2"}, {"2", "4"}}), linalg.ProfileRows)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, p)
	p, err = eng.RankProfile(MustParse(t, rg, [][]string{{"0", "3"}, {"0", "6"}}), linalg.ProfileColumns)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, p)

	var det uint64
	require.NoError(t, eng.Determinant(MustParse(t, rg, [][]string{{"0", "1"}, {"1", "0"}}), &det))
	assert.Equal(t, uint64(6), det) // −1 mod 7

	// Unreduced words written through Set are stored as residues; 7 ≡ 0.
	m := MustDense(t, rg, 2, 2)
	require.NoError(t, m.Set(0, 0, 7))
	require.NoError(t, m.Set(1, 1, 8))
	assert.Equal(t, uint64(0), MustAt(t, m, 0, 0))
	rank, err := eng.Rank(m)
	require.NoError(t, err)
	assert.Equal(t, 1, rank)
}

// toGF re-reads a ZZ/p matrix over GF(p).
func toGF(t *testing.T, gf ring.Ring[*big.Int], m *matrix.Dense[uint64]) *matrix.Dense[*big.Int] {
	t.Helper()
	rows := make([][]string, m.Rows())
	for i := range rows {
		rows[i] = make([]string, m.Cols())
		for j := range rows[i] {
			rows[i][j] = m.Ring().Format(MustAt(t, m, i, j))
		}
	}
	if m.Rows() == 0 {
		return MustDense(t, gf, 0, m.Cols())
	}

	return MustParse(t, gf, rows)
}

func sameEntries(t *testing.T, gf ring.Ring[*big.Int], want *matrix.Dense[*big.Int], got *matrix.Dense[uint64]) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	assert.True(t, matrix.Equal(want, toGF(t, gf, got)), "want\n%v\ngot\n%v", want, got)
}

// TestZZp_TransposeRoundTrip runs every operation of the column-major nmod
// path against the row-major field kernel over the same prime. Both reduce to
// the canonical echelon form, so results agree entry for entry.
func TestZZp_TransposeRoundTrip(t *testing.T) {
	t.Parallel()

	const p = 101
	zzp := zzpEngine(t, p)
	gf := gfEngine(t, p)
	zr, gr := zzp.Ring(), gf.Ring()

	for _, sc := range exactShapes {
		t.Run(sc.name, func(t *testing.T) {
			t.Parallel()
			a := RandomInts(t, zr, sc.seed+100, sc.rows, sc.cols, 50, sc.rank)
			ag := toGF(t, gr, a)

			r1, err := zzp.Rank(a)
			require.NoError(t, err)
			r2, err := gf.Rank(ag)
			require.NoError(t, err)
			assert.Equal(t, r2, r1, "rank")

			for _, side := range []linalg.ProfileSide{linalg.ProfileRows, linalg.ProfileColumns} {
				p1, err := zzp.RankProfile(a, side)
				require.NoError(t, err)
				p2, err := gf.RankProfile(ag, side)
				require.NoError(t, err)
				assert.Equal(t, p2, p1, "profile %s", side)
			}

			for _, side := range []linalg.Side{linalg.SideRight, linalg.SideLeft} {
				n1 := MustDense(t, zr, 0, 0)
				k1, err := zzp.NullSpace(a, side, n1)
				require.NoError(t, err)
				n2 := MustDense(t, gr, 0, 0)
				k2, err := gf.NullSpace(ag, side, n2)
				require.NoError(t, err)
				assert.Equal(t, k2, k1)
				if k1 > 0 {
					sameEntries(t, gr, n2, n1)
				}
			}

			b := RandomInts(t, zr, sc.seed+200, sc.cols, 2, 50, -1)
			rhs := Product(t, a, b)
			x1 := MustDense(t, zr, 0, 0)
			ok1, err := zzp.SolveLinear(a, rhs, linalg.SideRight, x1, false)
			require.NoError(t, err)
			x2 := MustDense(t, gr, 0, 0)
			ok2, err := gf.SolveLinear(ag, toGF(t, gr, rhs), linalg.SideRight, x2, false)
			require.NoError(t, err)
			require.True(t, ok1)
			require.True(t, ok2)
			sameEntries(t, gr, x2, x1)

			lhs := Product(t, RandomInts(t, zr, sc.seed+300, 2, sc.rows, 50, -1), a)
			y1 := MustDense(t, zr, 0, 0)
			ok1, err = zzp.SolveLinear(a, lhs, linalg.SideLeft, y1, false)
			require.NoError(t, err)
			y2 := MustDense(t, gr, 0, 0)
			ok2, err = gf.SolveLinear(ag, toGF(t, gr, lhs), linalg.SideLeft, y2, false)
			require.NoError(t, err)
			require.True(t, ok1)
			require.True(t, ok2)
			sameEntries(t, gr, y2, y1)

			c := RandomInts(t, zr, sc.seed+400, sc.cols, 3, 50, -1)
			m1 := MustDense(t, zr, 0, 0)
			require.NoError(t, zzp.Mult(a, c, m1))
			m2 := MustDense(t, gr, 0, 0)
			require.NoError(t, gf.Mult(ag, toGF(t, gr, c), m2))
			sameEntries(t, gr, m2, m1)

			acc := RandomInts(t, zr, sc.seed+500, sc.rows, 3, 50, -1)
			accG := toGF(t, gr, acc)
			require.NoError(t, zzp.SubtractMultipleTo(acc, a, c))
			require.NoError(t, gf.SubtractMultipleTo(accG, ag, toGF(t, gr, c)))
			sameEntries(t, gr, accG, acc)

			if sc.rows != sc.cols {
				return
			}
			var d1 uint64
			var d2 *big.Int
			require.NoError(t, zzp.Determinant(a, &d1))
			require.NoError(t, gf.Determinant(ag, &d2))
			assert.Equal(t, d2.String(), zr.Format(d1), "det")

			i1 := MustDense(t, zr, 0, 0)
			ok1, err = zzp.Inverse(a, i1)
			require.NoError(t, err)
			i2 := MustDense(t, gr, 0, 0)
			ok2, err = gf.Inverse(ag, i2)
			require.NoError(t, err)
			require.Equal(t, ok2, ok1)
			if ok1 {
				sameEntries(t, gr, i2, i1)
			}
		})
	}
}
