// SPDX-License-Identifier: MIT
// Package linalg_test contains test helpers
//
// Purpose:
//   • Build matrices over any ring from literals or deterministic random data.
//   • Provide ring-generic checks (zero matrix, equality, closeness) so the
//     property tests run unchanged over every domain.

package linalg_test

import (
	"math/big"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/linalg"
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/ring"
)

// MustParse PARSES a matrix from textual rows or fails the test.
func MustParse[E any](t testing.TB, rg ring.Ring[E], rows [][]string) *matrix.Dense[E] {
	t.Helper()
	m, err := matrix.ParseDense(rg, rows)
	require.NoError(t, err)

	return m
}

// MustDense ALLOCATES an r×c zero matrix over rg or fails the test.
func MustDense[E any](t testing.TB, rg ring.Ring[E], r, c int) *matrix.Dense[E] {
	t.Helper()
	m, err := matrix.NewDense(rg, r, c)
	require.NoError(t, err)

	return m
}

// MustAt READS (i,j) or fails the test.
func MustAt[E any](t testing.TB, m *matrix.Dense[E], i, j int) E {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RandomInts fills an r×c matrix with deterministic integers in [-bound, bound].
// Rank can be forced down: with rank >= 0 the result is a product of random
// r×rank and rank×c factors.
func RandomInts[E any](t testing.TB, rg ring.Ring[E], seed int64, r, c, bound, rank int) *matrix.Dense[E] {
	t.Helper()
	src := rand.New(rand.NewSource(seed))
	fill := func(rows, cols int) *matrix.Dense[E] {
		m := MustDense(t, rg, rows, cols)
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				v := int64(src.Intn(2*bound+1) - bound)
				require.NoError(t, m.Set(i, j, rg.FromInt64(v)))
			}
		}

		return m
	}
	if rank < 0 {
		return fill(r, c)
	}
	p, err := matrix.Mul(fill(r, rank), fill(rank, c))
	require.NoError(t, err)

	return p
}

// IsZero reports whether every entry of m is the ring zero.
func IsZero[E any](m *matrix.Dense[E]) bool {
	rg := m.Ring()
	for _, v := range m.Raw() {
		if !rg.IsZero(v) {
			return false
		}
	}

	return true
}

// Product returns a·b through the ring-generic reference product.
func Product[E any](t testing.TB, a, b *matrix.Dense[E]) *matrix.Dense[E] {
	t.Helper()
	p, err := matrix.Mul(a, b)
	require.NoError(t, err)

	return p
}

// RequireClose asserts entry-wise closeness of two float matrices.
func RequireClose[E float64 | complex128](t testing.TB, want, got *matrix.Dense[E], tol float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	require.Truef(t, matrix.AllClose(want, got, tol, tol), "want\n%v\ngot\n%v", want, got)
}

// RequireZero asserts every entry of a float matrix is within tol of zero.
func RequireZero[E float64 | complex128](t testing.TB, m *matrix.Dense[E], tol float64) {
	t.Helper()
	for i, v := range m.Raw() {
		require.LessOrEqualf(t, matrix.Abs(v), tol, "entry %d = %v", i, v)
	}
}

// SubMatrix keeps the listed rows (nil: all) and columns (nil: all) of m.
func SubMatrix[E any](t testing.TB, m *matrix.Dense[E], rows, cols []int) *matrix.Dense[E] {
	t.Helper()
	if rows == nil {
		rows = seq(m.Rows())
	}
	if cols == nil {
		cols = seq(m.Cols())
	}
	out := MustDense(t, m.Ring(), len(rows), len(cols))
	for i, r := range rows {
		for j, c := range cols {
			require.NoError(t, out.Set(i, j, MustAt(t, m, r, c)))
		}
	}

	return out
}

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// Ints renders integer literals as strings for MustParse.
func Ints(rows [][]int64) [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = make([]string, len(r))
		for j, v := range r {
			out[i][j] = strconv.FormatInt(v, 10)
		}
	}

	return out
}

func zzpEngine(t testing.TB, p uint64) *linalg.Engine[uint64] {
	t.Helper()
	f, err := ring.NewZZp(p)
	require.NoError(t, err)
	eng, err := linalg.ForZZp(f)
	require.NoError(t, err)

	return eng
}

func gfEngine(t testing.TB, p int64) *linalg.Engine[*big.Int] {
	t.Helper()
	f, err := ring.NewGF(big.NewInt(p))
	require.NoError(t, err)
	eng, err := linalg.ForGF(f)
	require.NoError(t, err)

	return eng
}

// mustEngine turns a constructor result into a test-failing getter:
// mustEngine(linalg.ForQQ())(t).
func mustEngine[E any](eng *linalg.Engine[E], err error) func(testing.TB) *linalg.Engine[E] {
	return func(t testing.TB) *linalg.Engine[E] {
		t.Helper()
		require.NoError(t, err)

		return eng
	}
}
