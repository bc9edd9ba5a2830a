// SPDX-License-Identifier: MIT

// Package ring: coefficient domains for dense linear algebra.
//
// Purpose:
//   - Describe the algebraic structure a matrix draws its elements from.
//   - Keep element arithmetic value-like: every operation returns a fresh element
//     and never mutates its operands, so matrices may share element values freely.
//
// Lifecycle:
//   - "init" is Zero()/One()/FromInt64/Parse; "clear" is the garbage collector.
//   - Copy produces storage owned by the caller (relevant for pointer elements
//     such as *big.Int and *big.Rat).
package ring

import "errors"

// Kind tags the class of a coefficient domain.
type Kind uint8

const (
	// KindFiniteField is a prime field GF(p), machine-word or arbitrary precision.
	KindFiniteField Kind = iota + 1
	// KindInteger is the ring of arbitrary-precision integers.
	KindInteger
	// KindRational is the field of arbitrary-precision rationals.
	KindRational
	// KindReal is fixed-precision (IEEE-754 double) real arithmetic.
	KindReal
	// KindComplex is fixed-precision (pair of doubles) complex arithmetic.
	KindComplex
)

// String returns a short, stable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindFiniteField:
		return "finite-field"
	case KindInteger:
		return "integer"
	case KindRational:
		return "rational"
	case KindReal:
		return "real"
	case KindComplex:
		return "complex"
	default:
		return "unknown"
	}
}

// Exact reports whether arithmetic in this kind of domain is exact.
func (k Kind) Exact() bool {
	return k == KindFiniteField || k == KindInteger || k == KindRational
}

// Sentinel errors.
var (
	// ErrNotPrime is returned when a field modulus is not a prime.
	ErrNotPrime = errors.New("ring: modulus is not prime")

	// ErrParse is returned when an element literal cannot be parsed.
	ErrParse = errors.New("ring: cannot parse element")
)

// Ring is a commutative ring with identity over elements of type E.
//
// Contract:
//   - Operations never mutate their arguments and always return fresh values.
//   - Elements of one Ring instance are never mixed with elements of another.
type Ring[E any] interface {
	// Kind returns the domain tag.
	Kind() Kind
	// String returns the human name of the domain, e.g. "ZZ/101" or "QQ".
	String() string

	Zero() E
	One() E
	FromInt64(v int64) E
	Copy(a E) E

	Add(a, b E) E
	Sub(a, b E) E
	Neg(a E) E
	Mul(a, b E) E

	Equal(a, b E) bool
	IsZero(a E) bool

	// Parse reads an element from its textual form; errors wrap ErrParse.
	Parse(s string) (E, error)
	// Format renders an element; Parse(Format(a)) == a for exact domains.
	Format(a E) string
}

// Field is a Ring in which every non-zero element is invertible.
type Field[E any] interface {
	Ring[E]
	// Inv returns the multiplicative inverse of a. a must be non-zero.
	Inv(a E) E
}

// Same reports whether two ring values describe the same domain instance.
// Comparison is by kind and name, which is unique per domain instance.
func Same[E any](a, b Ring[E]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return a.Kind() == b.Kind() && a.String() == b.String()
}
