// SPDX-License-Identifier: MIT

// Package linalg is the domain-agnostic operation contract of lvlalg.
//
// 🚀 What is linalg?
//
//	One set of named dense-matrix operations that behaves the same over
//	every supported coefficient domain:
//		• exact: ZZ/p (uint64), GF(p) (*big.Int), ZZ (*big.Int), QQ (*big.Rat)
//		• numeric: RR (float64, gonum), CC (complex128, pure Go)
//
// Operations:
//
//	Rank, Determinant, Inverse, Mult, NullSpace (left/right),
//	SolveLinear (left/right), RankProfile (rows/columns),
//	AddMultipleTo, SubtractMultipleTo, Solve, NullspaceU, LU,
//	Eigenvalues, Eigenvectors, EigenvaluesHermitian, EigenvectorsHermitian,
//	LeastSquares, SVD.
//
// Dispatch:
//
//	An Engine binds a ring to a strategy value. The strategy implements any
//	subset of the capability interfaces (Ranker, Inverter, ...); NewEngine
//	resolves them once. Missing capabilities report *UnsupportedOperationError,
//	matched with errors.Is(err, ErrUnsupported).
//
// Error model:
//
//   - Structural problems (nil operands, wrong shapes, foreign rings, missing
//     capability) are errors wrapping the matrix / linalg sentinels.
//   - Data-dependent outcomes (singular, inconsistent, not convergent) are a
//     false result with a nil error.
//
// Quick start:
//
//	eng, _ := linalg.ForQQ()
//	a, _ := matrix.ParseDense[*big.Rat](ring.QQ{}, [][]string{{"1", "2"}, {"3", "4"}})
//	inv, _ := matrix.NewDense[*big.Rat](ring.QQ{}, 0, 0)
//	ok, err := eng.Inverse(a, inv)
//
// Build with -tags lvlalgdebug to turn the caller contracts of Mult (no
// aliasing) and the fused operations (shapes, rings) into panics.
package linalg
