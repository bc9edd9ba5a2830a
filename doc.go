// SPDX-License-Identifier: MIT

// Package lvlalg is a dense linear-algebra toolkit with one contract over
// many coefficient domains: modular integers, prime fields, integers,
// rationals, reals and complexes.
//
// 🚀 What is lvlalg?
//
//	A ring-polymorphic matrix library that brings together:
//		• Domains: ZZ/p (word-size primes), GF(p) (big primes), ZZ, QQ, RR, CC
//		• Exact kernels: Gaussian elimination mod p, fraction-free Bareiss
//		• Float kernels: gonum/LAPACK for RR, a pure-Go numeric kernel for CC
//		• Operations: rank, determinant, inverse, null spaces, linear solves,
//		  rank profiles, fused multiply-add, LU, eigen, least squares, SVD
//		• Capability dispatch: every domain declares what it supports, the
//		  rest fails with a typed error
//
// ✨ Why choose lvlalg?
//
//   - One API – the same Engine methods run over every domain
//   - Exact where possible – no rounding in ZZ/p, GF(p), ZZ and QQ
//   - Honest failures – singular / inconsistent results are a false flag,
//     structural problems are typed errors
//
// Everything is organized under these packages:
//
//	ring/     : coefficient domains (Ring / Field interfaces and implementations)
//	matrix/   : Dense[E] row-major matrix, shape validators, elementwise ops
//	kernel/   : domain algorithms: nmod/, field/, zz/, numeric/
//	linalg/   : Engine[E], capability interfaces, strategies, options
//	cmd/lvlalg: command-line front end over YAML matrix documents
//
// Quick example (solve over the rationals):
//
//	eng, _ := linalg.ForQQ()
//	a, _ := matrix.ParseDense[*big.Rat](ring.QQ{}, [][]string{{"1", "2"}, {"3", "4"}})
//	b, _ := matrix.ParseDense[*big.Rat](ring.QQ{}, [][]string{{"5"}, {"6"}})
//	x, _ := matrix.NewDense[*big.Rat](ring.QQ{}, 0, 0)
//	ok, err := eng.SolveLinear(a, b, linalg.SideRight, x, false) // x = [-4, 9/2]ᵀ
//
//	go get github.com/katalvlaran/lvlalg
package lvlalg
