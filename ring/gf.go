// SPDX-License-Identifier: MIT

package ring

import (
	"fmt"
	"math/big"
	"strings"
)

// GF is the prime field GF(p) for an arbitrary-precision prime p.
// Elements are *big.Int canonical residues in [0, p).
type GF struct {
	p *big.Int
}

var _ Field[*big.Int] = GF{}

// NewGF returns GF(p) for a (probable) prime p; ErrNotPrime otherwise.
// The modulus is copied, later changes to p do not affect the field.
func NewGF(p *big.Int) (GF, error) {
	if p == nil || p.Cmp(big.NewInt(2)) < 0 || !p.ProbablyPrime(primalityRounds) {
		return GF{}, fmt.Errorf("GF(%v): %w", p, ErrNotPrime)
	}

	return GF{p: new(big.Int).Set(p)}, nil
}

// Modulus returns a copy of p; 0 for the zero GF value.
func (f GF) Modulus() *big.Int {
	if f.p == nil {
		return new(big.Int)
	}

	return new(big.Int).Set(f.p)
}

func (f GF) Kind() Kind { return KindFiniteField }
func (f GF) String() string { return "GF(" + f.p.String() + ")" }
func (f GF) Zero() *big.Int { return new(big.Int) }
func (f GF) One() *big.Int { return big.NewInt(1) }
func (f GF) Copy(a *big.Int) *big.Int { return new(big.Int).Set(a) }

func (f GF) FromInt64(v int64) *big.Int {
	r := big.NewInt(v)

	return r.Mod(r, f.p) // Mod is Euclidean: result in [0, p)
}

func (f GF) reduce(v *big.Int) *big.Int { return v.Mod(v, f.p) }

func (f GF) Add(a, b *big.Int) *big.Int { return f.reduce(new(big.Int).Add(a, b)) }
func (f GF) Sub(a, b *big.Int) *big.Int { return f.reduce(new(big.Int).Sub(a, b)) }
func (f GF) Neg(a *big.Int) *big.Int { return f.reduce(new(big.Int).Neg(a)) }
func (f GF) Mul(a, b *big.Int) *big.Int { return f.reduce(new(big.Int).Mul(a, b)) }

// Inv returns a^-1 mod p. a must be non-zero.
func (f GF) Inv(a *big.Int) *big.Int { return new(big.Int).ModInverse(a, f.p) }

func (f GF) Equal(a, b *big.Int) bool { return a.Cmp(b) == 0 }
func (f GF) IsZero(a *big.Int) bool { return a.Sign() == 0 }

func (f GF) Parse(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok {
		return nil, fmt.Errorf("%s: %q: %w", f, s, ErrParse)
	}

	return f.reduce(v), nil
}

func (f GF) Format(a *big.Int) string { return a.String() }
