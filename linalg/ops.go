// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"
	"strings"
)

// Op names one operation of the contract.
type Op uint8

const (
	OpRank Op = iota
	OpDeterminant
	OpInverse
	OpMult
	OpNullSpace
	OpSolveLinear
	OpRankProfile
	OpAddMultipleTo
	OpSubtractMultipleTo
	OpSolve
	OpNullspaceU
	OpLU
	OpEigenvalues
	OpEigenvectors
	OpEigenvaluesHermitian
	OpEigenvectorsHermitian
	OpLeastSquares
	OpSVD

	opCount
)

var opNames = [opCount]string{
	OpRank:                  "rank",
	OpDeterminant:           "determinant",
	OpInverse:               "inverse",
	OpMult:                  "mult",
	OpNullSpace:             "nullSpace",
	OpSolveLinear:           "solveLinear",
	OpRankProfile:           "rankProfile",
	OpAddMultipleTo:         "addMultipleTo",
	OpSubtractMultipleTo:    "subtractMultipleTo",
	OpSolve:                 "solve",
	OpNullspaceU:            "nullspaceU",
	OpLU:                    "LU",
	OpEigenvalues:           "eigenvalues",
	OpEigenvectors:          "eigenvectors",
	OpEigenvaluesHermitian:  "eigenvaluesHermitian",
	OpEigenvectorsHermitian: "eigenvectorsHermitian",
	OpLeastSquares:          "leastSquares",
	OpSVD:                   "SVD",
}

// String returns the contract name of the operation.
func (op Op) String() string {
	if op < opCount {
		return opNames[op]
	}

	return fmt.Sprintf("Op(%d)", uint8(op))
}

// Ops returns every operation in declaration order.
func Ops() []Op {
	out := make([]Op, opCount)
	for i := range out {
		out[i] = Op(i)
	}

	return out
}

// sided reports whether the operation distinguishes two sides.
func (op Op) sided() bool {
	return op == OpNullSpace || op == OpSolveLinear || op == OpRankProfile
}

// sideNames returns the names of slot 0 and slot 1 of a sided operation.
func (op Op) sideNames() [2]string {
	if op == OpRankProfile {
		return [2]string{ProfileRows.String(), ProfileColumns.String()}
	}

	return [2]string{SideRight.String(), SideLeft.String()}
}

// Side selects the side a null space or linear system lives on.
type Side uint8

const (
	// SideRight: basis columns of {x : A·x = 0}; systems A·X = B.
	SideRight Side = iota
	// SideLeft: basis rows of {x : x·A = 0}; systems X·A = B.
	SideLeft
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}

	return "right"
}

// ProfileSide selects row or column rank profile.
type ProfileSide uint8

const (
	// ProfileRows profiles rows: indices where the rank of the leading rows grows.
	ProfileRows ProfileSide = iota
	// ProfileColumns profiles columns.
	ProfileColumns
)

func (s ProfileSide) String() string {
	if s == ProfileColumns {
		return "columns"
	}

	return "rows"
}

// SVDStrategy selects the singular value algorithm of a float domain.
// Values other than the named ones behave as SVDStandard.
type SVDStrategy uint8

const (
	// SVDStandard is the domain's default algorithm (LAPACK-style bidiagonal
	// QR through gonum for reals).
	SVDStandard SVDStrategy = iota
	// SVDJacobi is one-sided Jacobi: slower, high relative accuracy for small
	// singular values.
	SVDJacobi
)

func (s SVDStrategy) String() string {
	if s == SVDJacobi {
		return "jacobi"
	}

	return "standard"
}

// ParseSVDStrategy maps "standard" / "jacobi" (case-insensitive) to a strategy.
// Unknown names map to SVDStandard and ok=false.
func ParseSVDStrategy(name string) (SVDStrategy, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "standard", "":
		return SVDStandard, true
	case "jacobi":
		return SVDJacobi, true
	default:
		return SVDStandard, false
	}
}
