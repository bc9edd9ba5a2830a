// SPDX-License-Identifier: MIT

// Package zz - exact integer matrix kernel over *big.Int.
//
// Purpose:
//   - Fraction-free (Bareiss) determinant and rank: every intermediate stays
//     integral and divisions are exact.
//   - Rational-backed inverse and solve returning (numerator, denominator) so
//     the caller decides whether a non-unit denominator is acceptable.
//   - Integral right null-space basis: rational basis vectors scaled to clear
//     their denominators.
//
// Complexity:
//   - Bareiss: O(n³) big-integer operations with entries bounded by Hadamard's bound.
package zz

import (
	"math/big"

	"github.com/katalvlaran/lvlalg/kernel/field"
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/ring"
)

// bareiss runs fraction-free elimination on a copy of a and returns the final
// pivot (the determinant of the leading rank×rank minor, up to sign), the rank
// and the sign of the row permutation applied.
func bareiss(a *matrix.Dense[*big.Int]) (last *big.Int, rank int, sign int) {
	m, n := a.Rows(), a.Cols()
	w := make([]*big.Int, m*n)
	for i, v := range a.Raw() {
		w[i] = new(big.Int).Set(v)
	}
	prev := big.NewInt(1)
	sign = 1
	t1, t2 := new(big.Int), new(big.Int)
	var r, i, j, k, p int
	for j = 0; j < n && r < m; j++ {
		p = -1
		for i = r; i < m; i++ {
			if w[i*n+j].Sign() != 0 {
				p = i
				break
			}
		}
		if p < 0 {
			continue
		}
		if p != r {
			for k = 0; k < n; k++ {
				w[r*n+k], w[p*n+k] = w[p*n+k], w[r*n+k]
			}
			sign = -sign
		}
		piv := w[r*n+j]
		for i = r + 1; i < m; i++ {
			for k = j + 1; k < n; k++ {
				// w[i,k] = (piv*w[i,k] - w[i,j]*w[r,k]) / prev, exact
				t1.Mul(piv, w[i*n+k])
				t2.Mul(w[i*n+j], w[r*n+k])
				t1.Sub(t1, t2)
				w[i*n+k] = new(big.Int).Quo(t1, prev)
			}
			w[i*n+j] = new(big.Int)
		}
		prev = piv
		r++
	}

	return prev, r, sign
}

// Det returns the determinant of square a (1 for 0×0).
func Det(a *matrix.Dense[*big.Int]) *big.Int {
	n := a.Rows()
	last, rank, sign := bareiss(a)
	if rank < n {
		return new(big.Int)
	}
	d := new(big.Int).Set(last)
	if sign < 0 {
		d.Neg(d)
	}

	return d
}

// Rank returns the rank of a over the rationals.
func Rank(a *matrix.Dense[*big.Int]) int {
	_, rank, _ := bareiss(a)

	return rank
}

// ToRational lifts an integer matrix into QQ.
func ToRational(a *matrix.Dense[*big.Int]) (*matrix.Dense[*big.Rat], error) {
	out, err := matrix.NewDense[*big.Rat](ring.QQ{}, a.Rows(), a.Cols())
	if err != nil {
		return nil, err
	}
	raw := out.Raw()
	for i, v := range a.Raw() {
		raw[i] = new(big.Rat).SetInt(v)
	}

	return out, nil
}

// ClearDenominators returns (N, D) with q = N / D, D > 0 the least common
// denominator of all entries and N integral.
func ClearDenominators(q *matrix.Dense[*big.Rat]) (*matrix.Dense[*big.Int], *big.Int, error) {
	den := big.NewInt(1)
	g := new(big.Int)
	for _, v := range q.Raw() {
		d := v.Denom()
		g.GCD(nil, nil, den, d)
		den.Mul(den, new(big.Int).Quo(d, g))
	}
	num, err := matrix.NewDense[*big.Int](ring.ZZ{}, q.Rows(), q.Cols())
	if err != nil {
		return nil, nil, err
	}
	raw := num.Raw()
	for i, v := range q.Raw() {
		t := new(big.Int).Quo(den, v.Denom())
		raw[i] = t.Mul(t, v.Num())
	}

	return num, den, nil
}

// Inverse returns (N, D, ok) with a⁻¹ = N / D over the rationals; ok=false when singular.
func Inverse(a *matrix.Dense[*big.Int]) (*matrix.Dense[*big.Int], *big.Int, bool, error) {
	q, err := ToRational(a)
	if err != nil {
		return nil, nil, false, err
	}
	inv, ok, err := field.Inverse[*big.Rat](ring.QQ{}, q)
	if err != nil || !ok {
		return nil, nil, false, err
	}
	num, den, err := ClearDenominators(inv)
	if err != nil {
		return nil, nil, false, err
	}

	return num, den, true, nil
}

// Solve returns (N, D, ok) with a·(N/D) = b over the rationals; ok=false when inconsistent.
func Solve(a, b *matrix.Dense[*big.Int]) (*matrix.Dense[*big.Int], *big.Int, bool, error) {
	qa, err := ToRational(a)
	if err != nil {
		return nil, nil, false, err
	}
	qb, err := ToRational(b)
	if err != nil {
		return nil, nil, false, err
	}
	x, ok, err := field.Solve[*big.Rat](ring.QQ{}, qa, qb)
	if err != nil || !ok {
		return nil, nil, false, err
	}
	num, den, err := ClearDenominators(x)
	if err != nil {
		return nil, nil, false, err
	}

	return num, den, true, nil
}

// Nullspace returns integer column vectors spanning the rational right null space of a.
// Each rational basis vector is scaled by the least common denominator of its entries.
func Nullspace(a *matrix.Dense[*big.Int]) (*matrix.Dense[*big.Int], error) {
	q, err := ToRational(a)
	if err != nil {
		return nil, err
	}
	ns, err := field.Nullspace[*big.Rat](ring.QQ{}, q)
	if err != nil {
		return nil, err
	}
	n, k := ns.Rows(), ns.Cols()
	out, err := matrix.NewDense[*big.Int](ring.ZZ{}, n, k)
	if err != nil {
		return nil, err
	}
	raw, src := out.Raw(), ns.Raw()
	g := new(big.Int)
	for j := 0; j < k; j++ {
		den := big.NewInt(1)
		for i := 0; i < n; i++ {
			d := src[i*k+j].Denom()
			g.GCD(nil, nil, den, d)
			den.Mul(den, new(big.Int).Quo(d, g))
		}
		for i := 0; i < n; i++ {
			v := src[i*k+j]
			t := new(big.Int).Quo(den, v.Denom())
			raw[i*k+j] = t.Mul(t, v.Num())
		}
	}

	return out, nil
}
