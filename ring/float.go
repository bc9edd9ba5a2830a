// SPDX-License-Identifier: MIT

package ring

import (
	"fmt"
	"math/cmplx"
	"strconv"
	"strings"
)

// RR is IEEE-754 double precision real arithmetic.
// Equality is exact; tolerance-based comparison belongs to the caller.
type RR struct{}

var _ Field[float64] = RR{}

func (RR) Kind() Kind { return KindReal }
func (RR) String() string { return "RR_53" }
func (RR) Zero() float64 { return 0 }
func (RR) One() float64 { return 1 }
func (RR) FromInt64(v int64) float64 { return float64(v) }
func (RR) Copy(a float64) float64 { return a }
func (RR) Add(a, b float64) float64 { return a + b }
func (RR) Sub(a, b float64) float64 { return a - b }
func (RR) Neg(a float64) float64 { return -a }
func (RR) Mul(a, b float64) float64 { return a * b }
func (RR) Inv(a float64) float64 { return 1 / a }
func (RR) Equal(a, b float64) bool { return a == b }
func (RR) IsZero(a float64) bool { return a == 0 }
func (RR) Format(a float64) string { return strconv.FormatFloat(a, 'g', -1, 64) }

func (r RR) Parse(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q: %w", r, s, ErrParse)
	}

	return v, nil
}

// CC is double precision complex arithmetic.
type CC struct{}

var _ Field[complex128] = CC{}

func (CC) Kind() Kind { return KindComplex }
func (CC) String() string { return "CC_53" }
func (CC) Zero() complex128 { return 0 }
func (CC) One() complex128 { return 1 }
func (CC) FromInt64(v int64) complex128 { return complex(float64(v), 0) }
func (CC) Copy(a complex128) complex128 { return a }
func (CC) Add(a, b complex128) complex128 { return a + b }
func (CC) Sub(a, b complex128) complex128 { return a - b }
func (CC) Neg(a complex128) complex128 { return -a }
func (CC) Mul(a, b complex128) complex128 { return a * b }
func (CC) Inv(a complex128) complex128 { return 1 / a }
func (CC) Equal(a, b complex128) bool { return a == b }
func (CC) IsZero(a complex128) bool { return a == 0 }
func (CC) Conj(a complex128) complex128 { return cmplx.Conj(a) }
func (CC) Format(a complex128) string { return strconv.FormatComplex(a, 'g', -1, 128) }

// Parse accepts Go complex literals such as "1+2i", "3", "-1.5i", "(2-1i)".
func (c CC) Parse(s string) (complex128, error) {
	v, err := strconv.ParseComplex(strings.TrimSpace(s), 128)
	if err != nil {
		return 0, fmt.Errorf("%s: %q: %w", c, s, ErrParse)
	}

	return v, nil
}
