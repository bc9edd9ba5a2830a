// SPDX-License-Identifier: MIT

package ring

import (
	"fmt"
	"math/big"
	"strings"
)

// ZZ is the ring of arbitrary-precision integers.
type ZZ struct{}

var _ Ring[*big.Int] = ZZ{}

func (ZZ) Kind() Kind { return KindInteger }
func (ZZ) String() string { return "ZZ" }
func (ZZ) Zero() *big.Int { return new(big.Int) }
func (ZZ) One() *big.Int { return big.NewInt(1) }
func (ZZ) FromInt64(v int64) *big.Int { return big.NewInt(v) }
func (ZZ) Copy(a *big.Int) *big.Int { return new(big.Int).Set(a) }
func (ZZ) Add(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) }
func (ZZ) Sub(a, b *big.Int) *big.Int { return new(big.Int).Sub(a, b) }
func (ZZ) Neg(a *big.Int) *big.Int { return new(big.Int).Neg(a) }
func (ZZ) Mul(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) }
func (ZZ) Equal(a, b *big.Int) bool { return a.Cmp(b) == 0 }
func (ZZ) IsZero(a *big.Int) bool { return a.Sign() == 0 }
func (ZZ) Format(a *big.Int) string { return a.String() }

func (z ZZ) Parse(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok {
		return nil, fmt.Errorf("%s: %q: %w", z, s, ErrParse)
	}

	return v, nil
}

// IsUnit reports whether a is ±1, the only invertible integers.
func (ZZ) IsUnit(a *big.Int) bool { return a.IsInt64() && (a.Int64() == 1 || a.Int64() == -1) }
