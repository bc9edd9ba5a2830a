// SPDX-License-Identifier: MIT

package ring_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/ring"
)

func TestNewZZp_RejectsComposite(t *testing.T) {
	t.Parallel()

	for _, p := range []uint64{0, 1, 4, 100, 561} {
		_, err := ring.NewZZp(p)
		require.ErrorIs(t, err, ring.ErrNotPrime, "p=%d", p)
	}
	f, err := ring.NewZZp(101)
	require.NoError(t, err)
	assert.Equal(t, uint64(101), f.Modulus())
	assert.Equal(t, "ZZ/101", f.String())
}

func TestZZp_Arithmetic(t *testing.T) {
	t.Parallel()

	f, err := ring.NewZZp(7)
	require.NoError(t, err)

	assert.Equal(t, uint64(1), f.Add(3, 5))
	assert.Equal(t, uint64(5), f.Sub(3, 5))
	assert.Equal(t, uint64(4), f.Neg(3))
	assert.Equal(t, uint64(1), f.Mul(3, 5))
	assert.Equal(t, uint64(6), f.FromInt64(-1))
	assert.Equal(t, uint64(0), f.FromInt64(-7))
	assert.Equal(t, uint64(0), f.FromInt64(math.MinInt64+1)) // 1-2^63 = -7*1317624576693539401
	assert.Equal(t, uint64(6), f.FromInt64(math.MinInt64))
	assert.Equal(t, uint64(0), f.Copy(7))
	assert.Equal(t, uint64(2), f.Copy(16))
	for a := uint64(1); a < 7; a++ {
		assert.Equal(t, uint64(1), f.Mul(a, f.Inv(a)), "a=%d", a)
	}

	v, err := f.Parse(" -15 ")
	require.NoError(t, err)
	assert.Equal(t, uint64(6), v)
	_, err = f.Parse("x")
	require.ErrorIs(t, err, ring.ErrParse)
}

func TestZZp_LargePrimeNoOverflow(t *testing.T) {
	t.Parallel()

	const p = 18446744073709551557 // largest prime below 2^64
	f, err := ring.NewZZp(p)
	require.NoError(t, err)

	a, b := uint64(p-1), uint64(p-2)
	assert.Equal(t, uint64(p-3), f.Add(a, b))
	assert.Equal(t, uint64(2), f.Mul(a, b)) // (-1)(-2) = 2
	assert.Equal(t, uint64(1), f.Mul(a, f.Inv(a)))
	assert.Equal(t, uint64(1), f.Sub(0, a))
}

func TestGF_Arithmetic(t *testing.T) {
	t.Parallel()

	p, _ := new(big.Int).SetString("170141183460469231731687303715884105727", 10) // 2^127-1
	f, err := ring.NewGF(p)
	require.NoError(t, err)

	a := f.FromInt64(-1)
	assert.Equal(t, 0, a.Cmp(new(big.Int).Sub(p, big.NewInt(1))))
	assert.True(t, f.Equal(f.One(), f.Mul(a, a)))
	assert.True(t, f.Equal(f.One(), f.Mul(a, f.Inv(a))))
	assert.True(t, f.IsZero(f.Add(a, f.One())))

	_, err = ring.NewGF(big.NewInt(15))
	require.ErrorIs(t, err, ring.ErrNotPrime)
}

func TestZZ_QQ_Values(t *testing.T) {
	t.Parallel()

	z := ring.ZZ{}
	a := z.FromInt64(6)
	b := z.Mul(a, z.FromInt64(7))
	assert.Equal(t, "6", z.Format(a), "operands must not be mutated")
	assert.Equal(t, "42", z.Format(b))
	assert.True(t, z.IsUnit(z.FromInt64(-1)))
	assert.False(t, z.IsUnit(z.FromInt64(2)))

	q := ring.QQ{}
	x, err := q.Parse("3/6")
	require.NoError(t, err)
	assert.Equal(t, "1/2", q.Format(x))
	assert.Equal(t, "1", q.Format(q.Mul(x, q.Inv(x))))
	y, err := q.Parse("0.25")
	require.NoError(t, err)
	assert.Equal(t, "3/4", q.Format(q.Add(x, y)))
}

func TestFloatRings(t *testing.T) {
	t.Parallel()

	r := ring.RR{}
	v, err := r.Parse("2.5")
	require.NoError(t, err)
	assert.Equal(t, 0.4, r.Inv(v))
	assert.Equal(t, ring.KindReal, r.Kind())
	assert.False(t, r.Kind().Exact())

	c := ring.CC{}
	z, err := c.Parse("1+2i")
	require.NoError(t, err)
	assert.Equal(t, complex(5, 0), c.Mul(z, c.Conj(z)))
	assert.Equal(t, "(1+2i)", c.Format(z))
}

func TestSame(t *testing.T) {
	t.Parallel()

	f7, _ := ring.NewZZp(7)
	f11, _ := ring.NewZZp(11)
	assert.True(t, ring.Same[uint64](f7, f7))
	assert.False(t, ring.Same[uint64](f7, f11))
	assert.True(t, ring.KindRational.Exact())
	assert.Equal(t, "finite-field", ring.KindFiniteField.String())
}
