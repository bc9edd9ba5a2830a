// SPDX-License-Identifier: MIT

package ring

import (
	"fmt"
	"math/big"
	"math/bits"
	"strconv"
	"strings"
)

// primalityRounds is the number of Miller-Rabin rounds used to validate moduli.
const primalityRounds = 20

// ZZp is the prime field GF(p) with p < 2^64, elements held as canonical
// residues in [0, p).
//
// Arithmetic uses 128-bit intermediate products (math/bits), so any word-size
// prime is supported without overflow.
type ZZp struct {
	p uint64
}

var _ Field[uint64] = ZZp{}

// NewZZp returns GF(p). p must be a prime; ErrNotPrime otherwise.
func NewZZp(p uint64) (ZZp, error) {
	if p < 2 || !new(big.Int).SetUint64(p).ProbablyPrime(primalityRounds) {
		return ZZp{}, fmt.Errorf("ZZp(%d): %w", p, ErrNotPrime)
	}

	return ZZp{p: p}, nil
}

// Modulus returns p.
func (f ZZp) Modulus() uint64 { return f.p }

func (f ZZp) Kind() Kind { return KindFiniteField }
func (f ZZp) String() string { return "ZZ/" + strconv.FormatUint(f.p, 10) }
func (f ZZp) Zero() uint64 { return 0 }
func (f ZZp) One() uint64 { return 1 % f.p }

// FromInt64 maps v to its canonical residue, handling negatives.
func (f ZZp) FromInt64(v int64) uint64 {
	if v >= 0 {
		return uint64(v) % f.p
	}
	r := uint64(-(v + 1)) % f.p // -(v+1) avoids overflow on MinInt64

	return f.Neg((r + 1) % f.p)
}

// Copy returns the canonical residue of a, so unreduced words stored through
// Dense.Set or NewDenseFromRows still compare equal to their class.
func (f ZZp) Copy(a uint64) uint64 { return a % f.p }

func (f ZZp) Add(a, b uint64) uint64 {
	s, carry := bits.Add64(a, b, 0)
	if carry != 0 || s >= f.p {
		s -= f.p
	}

	return s
}

func (f ZZp) Sub(a, b uint64) uint64 {
	if a >= b {
		return a - b
	}

	return a - b + f.p // wraps modulo 2^64 back into [0, p)
}

func (f ZZp) Neg(a uint64) uint64 {
	if a == 0 {
		return 0
	}

	return f.p - a
}

func (f ZZp) Mul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)

	return bits.Rem64(hi, lo, f.p)
}

// Inv computes a^(p-2) mod p. a must be non-zero.
func (f ZZp) Inv(a uint64) uint64 {
	result, base, e := f.One(), a%f.p, f.p-2
	for e > 0 {
		if e&1 == 1 {
			result = f.Mul(result, base)
		}
		base = f.Mul(base, base)
		e >>= 1
	}

	return result
}

func (f ZZp) Equal(a, b uint64) bool { return a == b }
func (f ZZp) IsZero(a uint64) bool { return a == 0 }

// Parse accepts any decimal integer literal (possibly negative or larger than p).
func (f ZZp) Parse(s string) (uint64, error) {
	v, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok {
		return 0, fmt.Errorf("%s: %q: %w", f, s, ErrParse)
	}

	return v.Mod(v, new(big.Int).SetUint64(f.p)).Uint64(), nil
}

func (f ZZp) Format(a uint64) string { return strconv.FormatUint(a, 10) }
