// SPDX-License-Identifier: MIT

// Package linalg: functional configuration of an Engine. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Notes:
//   - Tolerances only affect the real / complex domains; exact domains ignore them.
//   - Options are resolved once in NewEngine; an Engine never changes afterwards.
package linalg

import (
	"log/slog"
	"math"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRankTolerance is the relative cutoff for numerical rank: singular
	// values (or echelon pivots) at or below tol·max are treated as zero.
	DefaultRankTolerance = 1e-10

	// DefaultResidualTolerance bounds ‖A·X − B‖ relative to ‖A‖·‖X‖ + ‖B‖ when
	// a float solve decides whether a system is consistent.
	DefaultResidualTolerance = 1e-8

	// DefaultMaxSweeps caps Jacobi sweeps and QR iterations per eigenvalue.
	DefaultMaxSweeps = 100
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicRankTolInvalid     = "linalg: WithRankTolerance: eps must be finite, in [0, 1)"
	panicResidualTolInvalid = "linalg: WithResidualTolerance: eps must be finite, positive"
	panicMaxSweepsInvalid   = "linalg: WithMaxSweeps: n must be ≥ 1"
	panicLoggerNil          = "linalg: WithLogger: logger must be non-nil"
)

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options is the effective configuration of an Engine, handed to every
// strategy call. Fields are unexported; strategies read them via accessors.
type Options struct {
	rankTol     float64      // DefaultRankTolerance
	residualTol float64      // DefaultResidualTolerance
	maxSweeps   int          // DefaultMaxSweeps
	logger      *slog.Logger // discards by default
}

// WithRankTolerance sets the relative numerical-rank cutoff.
// Implementation:
//   - Stage 1: validate eps is finite and 0 ≤ eps < 1.
//   - Stage 2: return a setter.
//
// Notes:
//   - Drives Rank, NullSpace, RankProfile, NullspaceU, rank-deficient
//     LeastSquares and the full-rank check of the QR path.
//
// AI-Hints:
//   - Raise it (1e-8) for noisy data; lowering it below ~1e-15 makes rounding
//     noise count as rank.
func WithRankTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 || eps >= 1 {
		panic(panicRankTolInvalid)
	}

	return func(o *Options) { o.rankTol = eps }
}

// WithResidualTolerance sets the relative residual bound of float solves
// performed without the assumeInvertible hint.
func WithResidualTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicResidualTolInvalid)
	}

	return func(o *Options) { o.residualTol = eps }
}

// WithMaxSweeps caps Jacobi sweeps (SVD, Hermitian eigen) and shifted QR
// iterations per eigenvalue (general eigen). Exceeding it reports false.
func WithMaxSweeps(n int) Option {
	if n < 1 {
		panic(panicMaxSweepsInvalid)
	}

	return func(o *Options) { o.maxSweeps = n }
}

// WithLogger routes dispatch diagnostics (Debug level) to l.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// RankTolerance returns the relative numerical-rank cutoff.
func (o *Options) RankTolerance() float64 { return o.rankTol }

// ResidualTolerance returns the relative residual bound of float solves.
func (o *Options) ResidualTolerance() float64 { return o.residualTol }

// MaxSweeps returns the iteration cap of iterative kernels.
func (o *Options) MaxSweeps() int { return o.maxSweeps }

// Logger returns the engine logger (never nil).
func (o *Options) Logger() *slog.Logger { return o.logger }

// gatherOptions applies user options over the defaults, last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		rankTol:     DefaultRankTolerance,
		residualTol: DefaultResidualTolerance,
		maxSweeps:   DefaultMaxSweeps,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
