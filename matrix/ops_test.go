// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/ring"
)

func TestAddSub(t *testing.T) {
	t.Parallel()

	a := RatDense(t, [][]string{{"1/2", "1"}, {"2", "3"}})
	b := RatDense(t, [][]string{{"1/2", "-1"}, {"1/3", "0"}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	assert.True(t, matrix.Equal(sum, RatDense(t, [][]string{{"1", "0"}, {"7/3", "3"}})))

	diff, err := matrix.Sub(a, b)
	require.NoError(t, err)
	assert.True(t, matrix.Equal(diff, RatDense(t, [][]string{{"0", "2"}, {"5/3", "3"}})))

	_, err = matrix.Add(a, RatDense(t, [][]string{{"1"}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Add(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul_DimensionLaw(t *testing.T) {
	t.Parallel()

	a := RealDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}}) // 2×3
	b := RealDense(t, [][]float64{{1, 0}, {0, 1}, {1, 1}})

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 10, 11}, c.Raw())

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	// k = 0 yields a zero product of the outer shape.
	e1 := MustDense[float64](t, ring.RR{}, 2, 0)
	e2 := MustDense[float64](t, ring.RR{}, 0, 3)
	z, err := matrix.Mul(e1, e2)
	require.NoError(t, err)
	assert.Equal(t, make([]float64, 6), z.Raw())
}

func TestMul_RingMismatch(t *testing.T) {
	t.Parallel()

	f7, _ := ring.NewZZp(7)
	f11, _ := ring.NewZZp(11)
	a := MustDense[uint64](t, f7, 1, 1)
	b := MustDense[uint64](t, f11, 1, 1)
	_, err := matrix.Mul(a, b)
	require.ErrorIs(t, err, matrix.ErrRingMismatch)
}

func TestFusedProduct(t *testing.T) {
	t.Parallel()

	a := RatDense(t, [][]string{{"1", "2"}, {"3", "4"}})
	b := RatDense(t, [][]string{{"1/2", "0"}, {"0", "1"}})
	c := RatDense(t, [][]string{{"1", "1"}, {"1", "1"}})

	require.NoError(t, matrix.AddProduct(c, a, b))
	assert.True(t, matrix.Equal(c, RatDense(t, [][]string{{"3/2", "3"}, {"5/2", "5"}})))

	require.NoError(t, matrix.SubProduct(c, a, b))
	assert.True(t, matrix.Equal(c, RatDense(t, [][]string{{"1", "1"}, {"1", "1"}})))

	// C aliasing A is allowed: C ← C + C·I.
	id, err := matrix.Identity[*big.Rat](ring.QQ{}, 2)
	require.NoError(t, err)
	require.NoError(t, matrix.AddProduct(c, c, id))
	assert.True(t, matrix.Equal(c, RatDense(t, [][]string{{"2", "2"}, {"2", "2"}})))

	require.ErrorIs(t, matrix.AddProduct(RatDense(t, [][]string{{"1"}}), a, b), matrix.ErrDimensionMismatch)
}

func TestTransposeAndScale(t *testing.T) {
	t.Parallel()

	a := RealDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	assert.Equal(t, 3, at.Rows())
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, at.Raw())

	back, err := matrix.Transpose(at)
	require.NoError(t, err)
	assert.True(t, matrix.Equal(a, back))

	s, err := matrix.Scale(a, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4, 6, 8, 10, 12}, s.Raw())
}

func TestAllClose(t *testing.T) {
	t.Parallel()

	a := RealDense(t, [][]float64{{1, 2}})
	b := RealDense(t, [][]float64{{1 + 1e-12, 2}})
	assert.True(t, matrix.AllClose(a, b, 0, 1e-9))
	assert.False(t, matrix.AllClose(a, b, 0, 1e-15))
	assert.False(t, matrix.AllClose(a, RealDense(t, [][]float64{{1}}), 1, 1))
	assert.InDelta(t, 5.0, matrix.Abs(complex(3.0, 4.0)), 1e-15)
}

func TestValidators(t *testing.T) {
	t.Parallel()

	sq := RealDense(t, [][]float64{{1, 2}, {3, 4}})
	rect := RealDense(t, [][]float64{{1, 2, 3}})

	require.NoError(t, matrix.ValidateSquareNonNil(sq))
	err := matrix.ValidateSquare(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch, "non-square is a dimension mismatch")
	require.ErrorIs(t, matrix.ValidateSquareNonNil[float64](nil), matrix.ErrNilMatrix)

	require.ErrorIs(t, matrix.ValidateSameRows(sq, rect), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSameCols(sq, rect), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateFusedShapes(rect, rect, MustDense[float64](t, ring.RR{}, 3, 3)))
}
