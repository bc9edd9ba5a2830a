// SPDX-License-Identifier: MIT

package linalg_test

import (
	"math"
	"math/cmplx"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/linalg"
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/ring"
)

const ftol = 1e-9

type scalar interface{ float64 | complex128 }

func realDense(t testing.TB, rows [][]float64) *matrix.Dense[float64] {
	t.Helper()
	m, err := matrix.NewDenseFromRows[float64](ring.RR{}, rows)
	require.NoError(t, err)

	return m
}

func complexDense(t testing.TB, rows [][]complex128) *matrix.Dense[complex128] {
	t.Helper()
	m, err := matrix.NewDenseFromRows[complex128](ring.CC{}, rows)
	require.NoError(t, err)

	return m
}

// randomFloat fills an r×c matrix with deterministic U(-1,1) entries
// (real and imaginary parts for complex E).
func randomFloat[E scalar](t testing.TB, rg ring.Ring[E], seed int64, r, c int) *matrix.Dense[E] {
	t.Helper()
	src := rand.New(rand.NewSource(seed))
	m := MustDense(t, rg, r, c)
	raw := m.Raw()
	for i := range raw {
		re, im := src.Float64()*2-1, src.Float64()*2-1
		switch p := any(&raw[i]).(type) {
		case *float64:
			*p = re
		case *complex128:
			*p = complex(re, im)
		}
	}

	return m
}

func cval[E scalar](v E) complex128 {
	switch x := any(v).(type) {
	case float64:
		return complex(x, 0)
	case complex128:
		return x
	}

	return 0
}

// toComplex lifts any float matrix into CC.
func toComplex[E scalar](t testing.TB, m *matrix.Dense[E]) *matrix.Dense[complex128] {
	t.Helper()
	out := MustDense[complex128](t, ring.CC{}, m.Rows(), m.Cols())
	for i, v := range m.Raw() {
		out.Raw()[i] = cval(v)
	}

	return out
}

// conjT returns the conjugate transpose of a float matrix.
func conjT[E scalar](t testing.TB, m *matrix.Dense[E]) *matrix.Dense[E] {
	t.Helper()
	tr, err := matrix.Transpose(m)
	require.NoError(t, err)
	for i, v := range tr.Raw() {
		if c, ok := any(v).(complex128); ok {
			tr.Raw()[i] = any(cmplx.Conj(c)).(E)
		}
	}

	return tr
}

func identity[E any](t testing.TB, rg ring.Ring[E], n int) *matrix.Dense[E] {
	t.Helper()
	id, err := matrix.Identity(rg, n)
	require.NoError(t, err)

	return id
}

func requireUnitary[E scalar](t testing.TB, q *matrix.Dense[E]) {
	t.Helper()
	RequireClose(t, identity(t, q.Ring(), q.Cols()), Product(t, conjT(t, q), q), ftol)
}

// ---------- generic suite ----------

func runFloatSuite[E scalar](t *testing.T, eng *linalg.Engine[E]) {
	rg := eng.Ring()

	t.Run("inverse", func(t *testing.T) {
		t.Parallel()
		a := randomFloat(t, rg, 11, 6, 6)
		inv := MustDense(t, rg, 0, 0)
		ok, err := eng.Inverse(a, inv)
		require.NoError(t, err)
		require.True(t, ok)
		RequireClose(t, identity(t, rg, 6), Product(t, a, inv), ftol)
		RequireClose(t, identity(t, rg, 6), Product(t, inv, a), ftol)

		sing := MustParse(t, rg, [][]string{{"1", "2"}, {"2", "4"}})
		ok, err = eng.Inverse(sing, inv)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("determinant", func(t *testing.T) {
		t.Parallel()
		var d E
		require.NoError(t, eng.Determinant(MustParse(t, rg, [][]string{{"4", "3"}, {"6", "3"}}), &d))
		assert.InDelta(t, 0, cmplx.Abs(cval(d)+6), ftol)

		a, b := randomFloat(t, rg, 12, 5, 5), randomFloat(t, rg, 13, 5, 5)
		var da, db, dab E
		require.NoError(t, eng.Determinant(a, &da))
		require.NoError(t, eng.Determinant(b, &db))
		require.NoError(t, eng.Determinant(Product(t, a, b), &dab))
		assert.InDelta(t, 0, cmplx.Abs(cval(da)*cval(db)-cval(dab)), 1e-9*math.Max(1, cmplx.Abs(cval(dab))))
	})

	t.Run("mult-fused", func(t *testing.T) {
		t.Parallel()
		a, b := randomFloat(t, rg, 14, 4, 3), randomFloat(t, rg, 15, 3, 5)
		c := MustDense(t, rg, 0, 0)
		require.NoError(t, eng.Mult(a, b, c))
		ref := Product(t, a, b)
		RequireClose(t, ref, c, 1e-12)

		acc := randomFloat(t, rg, 16, 4, 5)
		orig := acc.Clone()
		require.NoError(t, eng.AddMultipleTo(acc, a, b))
		want, err := matrix.Add(orig, ref)
		require.NoError(t, err)
		RequireClose(t, want, acc, 1e-12)
		require.NoError(t, eng.SubtractMultipleTo(acc, a, b))
		RequireClose(t, orig, acc, 1e-12)
	})

	t.Run("rank-nullspace", func(t *testing.T) {
		t.Parallel()
		// 5×4 of rank 2.
		a := Product(t, randomFloat(t, rg, 17, 5, 2), randomFloat(t, rg, 18, 2, 4))
		r, err := eng.Rank(a)
		require.NoError(t, err)
		assert.Equal(t, 2, r)

		right := MustDense(t, rg, 0, 0)
		k, err := eng.NullSpace(a, linalg.SideRight, right)
		require.NoError(t, err)
		require.Equal(t, 2, k)
		RequireZero(t, Product(t, a, right), 1e-10)
		requireUnitary(t, right)

		left := MustDense(t, rg, 0, 0)
		k, err = eng.NullSpace(a, linalg.SideLeft, left)
		require.NoError(t, err)
		require.Equal(t, 3, k)
		require.Equal(t, 5, left.Cols())
		RequireZero(t, Product(t, left, a), 1e-10)

		ech := MustDense(t, rg, 0, 0)
		ok, err := eng.NullspaceU(a, ech)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, 2, ech.Cols())
		RequireZero(t, Product(t, a, ech), 1e-9)
	})

	t.Run("profile", func(t *testing.T) {
		t.Parallel()
		a := MustParse(t, rg, [][]string{{"0", "1", "2", "3"}, {"0", "2", "4", "6"}, {"1", "0", "1", "0"}})
		p, err := eng.RankProfile(a, linalg.ProfileColumns)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1}, p)
		p, err = eng.RankProfile(a, linalg.ProfileRows)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 2}, p)
	})

	t.Run("solve-linear", func(t *testing.T) {
		t.Parallel()
		a := randomFloat(t, rg, 19, 4, 4)
		b := randomFloat(t, rg, 20, 4, 2)
		for _, hint := range []bool{false, true} {
			x := MustDense(t, rg, 0, 0)
			ok, err := eng.SolveLinear(a, b, linalg.SideRight, x, hint)
			require.NoError(t, err)
			require.True(t, ok)
			RequireClose(t, b, Product(t, a, x), 1e-9)

			bl := randomFloat(t, rg, 21, 3, 4)
			y := MustDense(t, rg, 0, 0)
			ok, err = eng.SolveLinear(a, bl, linalg.SideLeft, y, hint)
			require.NoError(t, err)
			require.True(t, ok)
			RequireClose(t, bl, Product(t, y, a), 1e-9)
		}

		// Rank-deficient but consistent: minimum-norm solution.
		sing := MustParse(t, rg, [][]string{{"1", "2"}, {"2", "4"}})
		x := MustDense(t, rg, 0, 0)
		ok, err := eng.SolveLinear(sing, MustParse(t, rg, [][]string{{"1"}, {"2"}}), linalg.SideRight, x, false)
		require.NoError(t, err)
		require.True(t, ok)
		RequireClose(t, MustParse(t, rg, [][]string{{"0.2"}, {"0.4"}}), x, 1e-12)

		ok, err = eng.SolveLinear(sing, MustParse(t, rg, [][]string{{"1"}, {"0"}}), linalg.SideRight, x, false)
		require.NoError(t, err)
		assert.False(t, ok, "inconsistent system")
	})

	t.Run("solve-square", func(t *testing.T) {
		t.Parallel()
		a := randomFloat(t, rg, 22, 5, 5)
		b := randomFloat(t, rg, 23, 5, 3)
		x := MustDense(t, rg, 0, 0)
		ok, err := eng.Solve(a, b, x)
		require.NoError(t, err)
		require.True(t, ok)
		RequireClose(t, b, Product(t, a, x), 1e-9)

		ok, err = eng.Solve(MustParse(t, rg, [][]string{{"1", "2"}, {"2", "4"}}), MustParse(t, rg, [][]string{{"1"}, {"1"}}), x)
		require.NoError(t, err)
		assert.False(t, ok)

		_, err = eng.Solve(randomFloat(t, rg, 24, 2, 3), MustDense(t, rg, 2, 1), x)
		require.ErrorIs(t, err, matrix.ErrNonSquare)
	})

	t.Run("lu", func(t *testing.T) {
		t.Parallel()
		for _, a := range []*matrix.Dense[E]{
			randomFloat(t, rg, 25, 5, 5),
			MustParse(t, rg, [][]string{{"0", "1", "2"}, {"0", "2", "4"}, {"1", "1", "1"}}), // singular
		} {
			l, u := MustDense(t, rg, 0, 0), MustDense(t, rg, 0, 0)
			perm, ok, err := eng.LU(a, l, u)
			require.NoError(t, err)
			require.True(t, ok)
			n := a.Rows()
			require.Len(t, perm, n)
			for i := 0; i < n; i++ {
				assert.Equal(t, rg.One(), MustAt(t, l, i, i), "L unit diagonal")
				for j := i + 1; j < n; j++ {
					assert.Equal(t, rg.Zero(), MustAt(t, l, i, j), "L lower")
					assert.Equal(t, rg.Zero(), MustAt(t, u, j, i), "U upper")
				}
			}
			RequireClose(t, SubMatrix(t, a, perm, nil), Product(t, l, u), 1e-12)
		}
	})

	t.Run("eigen", func(t *testing.T) {
		t.Parallel()
		a := randomFloat(t, rg, 26, 6, 6)
		vals := MustDense[complex128](t, ring.CC{}, 0, 0)
		vecs := MustDense[complex128](t, ring.CC{}, 0, 0)
		ok, err := eng.Eigenvectors(a, vals, vecs)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, 6, vals.Rows())
		require.Equal(t, 1, vals.Cols())

		ac := toComplex(t, a)
		av := Product(t, ac, vecs)
		for j := 0; j < 6; j++ {
			lambda := MustAt(t, vals, j, 0)
			var nrm float64
			for i := 0; i < 6; i++ {
				v := MustAt(t, vecs, i, j)
				nrm += real(v)*real(v) + imag(v)*imag(v)
				assert.InDelta(t, 0, cmplx.Abs(MustAt(t, av, i, j)-lambda*v), 1e-8, "A·v = λv, pair %d", j)
			}
			assert.InDelta(t, 1, math.Sqrt(nrm), 1e-10, "unit eigenvector %d", j)
		}

		only := MustDense[complex128](t, ring.CC{}, 0, 0)
		ok, err = eng.Eigenvalues(a, only)
		require.NoError(t, err)
		require.True(t, ok)
		withVecs, valsOnly := sortedComplex(vals.Raw()), sortedComplex(only.Raw())
		for i := range withVecs {
			assert.InDelta(t, 0, cmplx.Abs(withVecs[i]-valsOnly[i]), 1e-10)
		}

		// Rotation: ±i.
		rot := MustParse(t, rg, [][]string{{"0", "-1"}, {"1", "0"}})
		ok, err = eng.Eigenvalues(rot, only)
		require.NoError(t, err)
		require.True(t, ok)
		got := sortedComplex(only.Raw())
		assert.InDelta(t, 0, cmplx.Abs(got[0]-complex(0, -1)), 1e-12)
		assert.InDelta(t, 0, cmplx.Abs(got[1]-complex(0, 1)), 1e-12)
	})

	t.Run("hermitian", func(t *testing.T) {
		t.Parallel()
		b := randomFloat(t, rg, 27, 5, 5)
		h, err := matrix.Add(b, conjT(t, b))
		require.NoError(t, err)

		vals := MustDense[float64](t, ring.RR{}, 0, 0)
		vecs := MustDense(t, rg, 0, 0)
		ok, err := eng.EigenvectorsHermitian(h, vals, vecs)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, 5, vals.Rows())
		for i := 1; i < 5; i++ {
			assert.LessOrEqual(t, MustAt(t, vals, i-1, 0), MustAt(t, vals, i, 0), "ascending")
		}
		requireUnitary(t, vecs)

		// H·V = V·diag(λ).
		hv := Product(t, h, vecs)
		for j := 0; j < 5; j++ {
			lambda := MustAt(t, vals, j, 0)
			for i := 0; i < 5; i++ {
				d := cval(MustAt(t, hv, i, j)) - complex(lambda, 0)*cval(MustAt(t, vecs, i, j))
				assert.InDelta(t, 0, cmplx.Abs(d), 1e-9)
			}
		}

		// Realness: the general solver agrees and reports zero imaginary parts.
		gen := MustDense[complex128](t, ring.CC{}, 0, 0)
		ok, err = eng.Eigenvalues(h, gen)
		require.NoError(t, err)
		require.True(t, ok)
		sorted := sortedComplex(gen.Raw())
		for i, v := range sorted {
			assert.InDelta(t, 0, imag(v), 1e-9)
			assert.InDelta(t, MustAt(t, vals, i, 0), real(v), 1e-9)
		}

		only := MustDense[float64](t, ring.RR{}, 0, 0)
		ok, err = eng.EigenvaluesHermitian(h, only)
		require.NoError(t, err)
		require.True(t, ok)
		RequireClose(t, vals, only, 1e-12)
	})

	t.Run("least-squares", func(t *testing.T) {
		t.Parallel()
		over := MustParse(t, rg, [][]string{{"1", "0"}, {"0", "1"}, {"1", "1"}})
		for _, full := range []bool{true, false} {
			x := MustDense(t, rg, 0, 0)
			ok, err := eng.LeastSquares(over, MustParse(t, rg, [][]string{{"1"}, {"2"}, {"3"}}), x, full)
			require.NoError(t, err)
			require.True(t, ok)
			RequireClose(t, MustParse(t, rg, [][]string{{"1"}, {"2"}}), x, 1e-12)

			// Inconsistent: the mean.
			ok, err = eng.LeastSquares(MustParse(t, rg, [][]string{{"1"}, {"1"}}), MustParse(t, rg, [][]string{{"0"}, {"2"}}), x, full)
			require.NoError(t, err)
			require.True(t, ok)
			RequireClose(t, MustParse(t, rg, [][]string{{"1"}}), x, 1e-12)

			// Underdetermined: minimum-norm solution.
			ok, err = eng.LeastSquares(MustParse(t, rg, [][]string{{"1", "1"}}), MustParse(t, rg, [][]string{{"2"}}), x, full)
			require.NoError(t, err)
			require.True(t, ok)
			RequireClose(t, MustParse(t, rg, [][]string{{"1"}, {"1"}}), x, 1e-12)
		}

		// Rank deficient: only the SVD path applies.
		def := MustParse(t, rg, [][]string{{"1", "1"}, {"1", "1"}, {"1", "1"}})
		x := MustDense(t, rg, 0, 0)
		ok, err := eng.LeastSquares(def, MustParse(t, rg, [][]string{{"1"}, {"1"}, {"1"}}), x, false)
		require.NoError(t, err)
		require.True(t, ok)
		RequireClose(t, MustParse(t, rg, [][]string{{"0.5"}, {"0.5"}}), x, 1e-12)
	})

	t.Run("svd", func(t *testing.T) {
		t.Parallel()
		for _, shape := range [][2]int{{5, 3}, {3, 5}, {4, 4}} {
			a := randomFloat(t, rg, int64(28+shape[0]*10+shape[1]), shape[0], shape[1])
			for _, st := range []linalg.SVDStrategy{linalg.SVDStandard, linalg.SVDJacobi, linalg.SVDStrategy(42)} {
				checkSVD(t, eng, a, st)
			}
		}

		rank1 := MustParse(t, rg, [][]string{{"1", "2"}, {"2", "4"}, {"3", "6"}})
		sigma := MustDense[float64](t, ring.RR{}, 0, 0)
		u, vt := MustDense(t, rg, 0, 0), MustDense(t, rg, 0, 0)
		ok, err := eng.SVD(rank1, sigma, u, vt, linalg.SVDJacobi)
		require.NoError(t, err)
		require.True(t, ok)
		assert.InDelta(t, math.Sqrt(70), MustAt(t, sigma, 0, 0), 1e-12)
		assert.InDelta(t, 0, MustAt(t, sigma, 1, 0), 1e-12)
	})
}

func checkSVD[E scalar](t *testing.T, eng *linalg.Engine[E], a *matrix.Dense[E], st linalg.SVDStrategy) {
	t.Helper()
	rg := eng.Ring()
	m, n := a.Shape()
	sigma := MustDense[float64](t, ring.RR{}, 0, 0)
	u, vt := MustDense(t, rg, 0, 0), MustDense(t, rg, 0, 0)
	ok, err := eng.SVD(a, sigma, u, vt, st)
	require.NoError(t, err)
	require.True(t, ok, "strategy %s", st)

	k := min(m, n)
	require.Equal(t, k, sigma.Rows())
	require.Equal(t, 1, sigma.Cols())
	require.Equal(t, m, u.Rows())
	require.Equal(t, m, u.Cols())
	require.Equal(t, n, vt.Rows())
	require.Equal(t, n, vt.Cols())
	for i := 1; i < k; i++ {
		assert.GreaterOrEqual(t, MustAt(t, sigma, i-1, 0), MustAt(t, sigma, i, 0), "descending")
	}
	requireUnitary(t, u)
	requireUnitary(t, vt)

	// U·Σ·Vt with Σ the m×n diagonal.
	s := MustDense(t, rg, m, n)
	for i := 0; i < k; i++ {
		require.NoError(t, s.Set(i, i, fromReal[E](MustAt(t, sigma, i, 0))))
	}
	RequireClose(t, a, Product(t, Product(t, u, s), vt), 1e-10)
}

func fromReal[E scalar](x float64) E {
	var z E
	switch p := any(&z).(type) {
	case *float64:
		*p = x
	case *complex128:
		*p = complex(x, 0)
	}

	return z
}

func sortedComplex(v []complex128) []complex128 {
	out := append([]complex128(nil), v...)
	sort.Slice(out, func(i, j int) bool {
		if math.Abs(real(out[i])-real(out[j])) > 1e-9 {
			return real(out[i]) < real(out[j])
		}

		return imag(out[i]) < imag(out[j])
	})

	return out
}

func TestFloatLaws_RR(t *testing.T) {
	t.Parallel()
	runFloatSuite(t, mustEngine(linalg.ForRR())(t))
}

func TestFloatLaws_CC(t *testing.T) {
	t.Parallel()
	runFloatSuite(t, mustEngine(linalg.ForCC())(t))
}

// TestRRMatchesCC runs the gonum-backed real engine and the pure-Go complex
// engine on the same real input.
func TestRRMatchesCC(t *testing.T) {
	t.Parallel()

	rr := mustEngine(linalg.ForRR())(t)
	cc := mustEngine(linalg.ForCC())(t)
	a := randomFloat(t, rr.Ring(), 99, 6, 6)
	ac := toComplex(t, a)

	var dr float64
	var dc complex128
	require.NoError(t, rr.Determinant(a, &dr))
	require.NoError(t, cc.Determinant(ac, &dc))
	assert.InDelta(t, dr, real(dc), 1e-10)
	assert.InDelta(t, 0, imag(dc), 1e-12)

	sr, sc := MustDense[float64](t, ring.RR{}, 0, 0), MustDense[float64](t, ring.RR{}, 0, 0)
	ur, vr := MustDense[float64](t, ring.RR{}, 0, 0), MustDense[float64](t, ring.RR{}, 0, 0)
	uc, vc := MustDense[complex128](t, ring.CC{}, 0, 0), MustDense[complex128](t, ring.CC{}, 0, 0)
	_, err := rr.SVD(a, sr, ur, vr, linalg.SVDStandard)
	require.NoError(t, err)
	_, err = cc.SVD(ac, sc, uc, vc, linalg.SVDStandard)
	require.NoError(t, err)
	RequireClose(t, sr, sc, 1e-10)

	er, ec := MustDense[complex128](t, ring.CC{}, 0, 0), MustDense[complex128](t, ring.CC{}, 0, 0)
	_, err = rr.Eigenvalues(a, er)
	require.NoError(t, err)
	_, err = cc.Eigenvalues(ac, ec)
	require.NoError(t, err)
	gr, gc := sortedComplex(er.Raw()), sortedComplex(ec.Raw())
	for i := range gr {
		assert.InDelta(t, 0, cmplx.Abs(gr[i]-gc[i]), 1e-8)
	}
}

func TestHermitian_Values(t *testing.T) {
	t.Parallel()

	cc := mustEngine(linalg.ForCC())(t)
	h := complexDense(t, [][]complex128{{2, 1 - 1i}, {1 + 1i, 3}})
	vals := MustDense[float64](t, ring.RR{}, 0, 0)
	ok, err := cc.EigenvaluesHermitian(h, vals)
	require.NoError(t, err)
	require.True(t, ok)
	RequireClose(t, realDense(t, [][]float64{{1}, {4}}), vals, 1e-12)

	// Only the upper triangle is read.
	rr := mustEngine(linalg.ForRR())(t)
	ok, err = rr.EigenvaluesHermitian(realDense(t, [][]float64{{2, 1}, {99, 2}}), vals)
	require.NoError(t, err)
	require.True(t, ok)
	RequireClose(t, realDense(t, [][]float64{{1}, {3}}), vals, 1e-12)
}

func TestFloat_NonFinite(t *testing.T) {
	t.Parallel()

	cc := mustEngine(linalg.ForCC())(t)
	bad := complexDense(t, [][]complex128{{complex(math.NaN(), 0), 1}, {1, 1}})

	inv := MustDense[complex128](t, ring.CC{}, 0, 0)
	ok, err := cc.Inverse(bad, inv)
	require.NoError(t, err)
	assert.False(t, ok)

	l, u := MustDense[complex128](t, ring.CC{}, 0, 0), MustDense[complex128](t, ring.CC{}, 0, 0)
	_, ok, err = cc.LU(bad, l, u)
	require.NoError(t, err)
	assert.False(t, ok)

	vals := MustDense[complex128](t, ring.CC{}, 0, 0)
	ok, err = cc.Eigenvalues(bad, vals)
	require.NoError(t, err)
	assert.False(t, ok)

	rr := mustEngine(linalg.ForRR())(t)
	ok, err = rr.Eigenvalues(realDense(t, [][]float64{{math.Inf(1), 0}, {0, 1}}), vals)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRankTolerance(t *testing.T) {
	t.Parallel()

	a := realDense(t, [][]float64{{1, 0}, {0, 1e-8}})
	strict := mustEngine(linalg.ForRR())(t)
	loose := mustEngine(linalg.ForRR(linalg.WithRankTolerance(1e-6)))(t)

	r, err := strict.Rank(a)
	require.NoError(t, err)
	assert.Equal(t, 2, r)
	r, err = loose.Rank(a)
	require.NoError(t, err)
	assert.Equal(t, 1, r)
}
