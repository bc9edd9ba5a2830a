// SPDX-License-Identifier: MIT

package ring

import (
	"fmt"
	"math/big"
	"strings"
)

// QQ is the field of arbitrary-precision rationals, always kept in lowest terms
// by math/big.
type QQ struct{}

var _ Field[*big.Rat] = QQ{}

func (QQ) Kind() Kind { return KindRational }
func (QQ) String() string { return "QQ" }
func (QQ) Zero() *big.Rat { return new(big.Rat) }
func (QQ) One() *big.Rat { return big.NewRat(1, 1) }
func (QQ) FromInt64(v int64) *big.Rat { return big.NewRat(v, 1) }
func (QQ) Copy(a *big.Rat) *big.Rat { return new(big.Rat).Set(a) }
func (QQ) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }
func (QQ) Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }
func (QQ) Neg(a *big.Rat) *big.Rat { return new(big.Rat).Neg(a) }
func (QQ) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }
func (QQ) Inv(a *big.Rat) *big.Rat { return new(big.Rat).Inv(a) }
func (QQ) Equal(a, b *big.Rat) bool { return a.Cmp(b) == 0 }
func (QQ) IsZero(a *big.Rat) bool { return a.Sign() == 0 }

// Parse accepts "a", "a/b" and decimal literals such as "0.25".
func (q QQ) Parse(s string) (*big.Rat, error) {
	v, ok := new(big.Rat).SetString(strings.TrimSpace(s))
	if !ok {
		return nil, fmt.Errorf("%s: %q: %w", q, s, ErrParse)
	}

	return v, nil
}

// Format prints integers without the "/1" suffix.
func (QQ) Format(a *big.Rat) string { return a.RatString() }
