// SPDX-License-Identifier: MIT

// Package commands implements the lvlalg subcommands.
//
// Every matrix command follows the same path: read the input document,
// resolve the domain into a typed linalg engine, parse the operands over
// that domain, run one engine operation and render a Report. The typed part
// lives in space[E]; commands see it through the non-generic workspace
// interface, so one command body serves all six domains.
package commands

import (
	"fmt"
	"log/slog"
	"math/big"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlalg/internal/cli/config"
	"github.com/katalvlaran/lvlalg/linalg"
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/ring"
)

// workspace is an engine bound to parsed operands.
type workspace interface {
	Domain() string
	Capabilities() *Report
	Rank() (*Report, error)
	Determinant() (*Report, error)
	Inverse() (*Report, error)
	Mult() (*Report, error)
	NullSpace(side linalg.Side, echelon bool) (*Report, error)
	Solve(side linalg.Side, assumeInvertible, square bool) (*Report, error)
	Profile(side linalg.ProfileSide) (*Report, error)
	AddMul(subtract bool) (*Report, error)
	LU() (*Report, error)
	Eigen(hermitian, vectors bool) (*Report, error)
	LeastSquares(fullRank bool) (*Report, error)
	SVD(strategy linalg.SVDStrategy) (*Report, error)
}

// newWorkspace builds the engine for the input's domain (falling back to the
// configured one) and parses the operands present in the input. in may be nil.
func newWorkspace(cfg *config.Config, in *Input, logger *slog.Logger) (workspace, error) {
	if in == nil {
		in = &Input{}
	}
	domain, prime := cfg.Domain, cfg.Prime
	if in.Domain != "" {
		domain = strings.ToLower(strings.TrimSpace(in.Domain))
		if !config.IsDomain(domain) {
			return nil, fmt.Errorf("domain %q (want one of %s): %w", in.Domain, strings.Join(config.Domains, "|"), ErrInput)
		}
	}
	if in.Prime != "" {
		prime = strings.TrimSpace(in.Prime)
	}

	opts := []linalg.Option{
		linalg.WithRankTolerance(cfg.RankTolerance),
		linalg.WithResidualTolerance(cfg.ResidualTolerance),
		linalg.WithMaxSweeps(cfg.MaxSweeps),
		linalg.WithLogger(logger),
	}

	switch domain {
	case "zzp":
		p, err := strconv.ParseUint(prime, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("domain zzp needs a prime below 2^64, got %q: %w", prime, ErrInput)
		}
		f, err := ring.NewZZp(p)
		if err != nil {
			return nil, err
		}
		eng, err := linalg.ForZZp(f, opts...)
		if err != nil {
			return nil, err
		}
		return load(eng, in, logger)
	case "gf":
		p, ok := new(big.Int).SetString(prime, 10)
		if !ok {
			return nil, fmt.Errorf("domain gf needs a decimal prime, got %q: %w", prime, ErrInput)
		}
		f, err := ring.NewGF(p)
		if err != nil {
			return nil, err
		}
		eng, err := linalg.ForGF(f, opts...)
		if err != nil {
			return nil, err
		}
		return load(eng, in, logger)
	case "zz":
		eng, err := linalg.ForZZ(opts...)
		if err != nil {
			return nil, err
		}
		return load(eng, in, logger)
	case "qq":
		eng, err := linalg.ForQQ(opts...)
		if err != nil {
			return nil, err
		}
		return load(eng, in, logger)
	case "rr":
		eng, err := linalg.ForRR(opts...)
		if err != nil {
			return nil, err
		}
		return load(eng, in, logger)
	case "cc":
		eng, err := linalg.ForCC(opts...)
		if err != nil {
			return nil, err
		}
		return load(eng, in, logger)
	default:
		return nil, fmt.Errorf("domain %q: %w", domain, ErrInput)
	}
}

// space is the typed workspace over one element type.
type space[E any] struct {
	eng     *linalg.Engine[E]
	a, b, c *matrix.Dense[E]
}

func load[E any](eng *linalg.Engine[E], in *Input, logger *slog.Logger) (workspace, error) {
	s := &space[E]{eng: eng}
	var err error
	if s.a, err = parseEntries(eng.Ring(), "a", in.A); err != nil {
		return nil, err
	}
	if s.b, err = parseEntries(eng.Ring(), "b", in.B); err != nil {
		return nil, err
	}
	if s.c, err = parseEntries(eng.Ring(), "c", in.C); err != nil {
		return nil, err
	}
	logger.Debug("workspace ready",
		slog.String("domain", eng.Ring().String()),
		slog.String("strategy", eng.StrategyName()),
		slog.String("a", shapeOf(s.a)),
		slog.String("b", shapeOf(s.b)),
		slog.String("c", shapeOf(s.c)))

	return s, nil
}

func parseEntries[E any](rg ring.Ring[E], name string, e Entries) (*matrix.Dense[E], error) {
	if !e.Set {
		return nil, nil
	}
	m, err := matrix.ParseDense(rg, e.Rows)
	if err != nil {
		return nil, fmt.Errorf("matrix %s: %w", name, err)
	}

	return m, nil
}

func shapeOf[E any](m *matrix.Dense[E]) string {
	if m == nil {
		return "-"
	}

	return fmt.Sprintf("%d×%d", m.Rows(), m.Cols())
}

// require reports the first operand the command needs but the input lacks.
func (s *space[E]) require(names string) error {
	for _, n := range names {
		var m *matrix.Dense[E]
		switch n {
		case 'a':
			m = s.a
		case 'b':
			m = s.b
		case 'c':
			m = s.c
		}
		if m == nil {
			return fmt.Errorf("matrix %c is required: %w", n, ErrInput)
		}
	}

	return nil
}

func (s *space[E]) blank() *matrix.Dense[E] {
	m, _ := matrix.NewDense(s.eng.Ring(), 0, 0)
	return m
}

func (s *space[E]) Domain() string { return s.eng.Ring().String() }

func (s *space[E]) report(cmd string) *Report {
	r := newReport(cmd, s.Domain())
	r.field("strategy", s.eng.StrategyName())
	return r
}

// Capabilities lists the supported operations and their sides.
func (s *space[E]) Capabilities() *Report {
	r := s.report("caps")
	caps := s.eng.Capabilities()
	cells := make([][]string, len(caps))
	for i, c := range caps {
		sides := "-"
		if len(c.Sides) > 0 {
			sides = strings.Join(c.Sides, ", ")
		}
		cells[i] = []string{c.Op.String(), sides}
	}
	r.Blocks = append(r.Blocks, Block{
		Name:   "operations",
		Header: []string{"operation", "sides"},
		Rows:   len(cells),
		Cols:   2,
		Cells:  cells,
	})

	return r
}

func (s *space[E]) Rank() (*Report, error) {
	if err := s.require("a"); err != nil {
		return nil, err
	}
	rk, err := s.eng.Rank(s.a)
	if err != nil {
		return nil, err
	}
	r := s.report("rank")
	r.field("rank", rk)

	return r, nil
}

func (s *space[E]) Determinant() (*Report, error) {
	if err := s.require("a"); err != nil {
		return nil, err
	}
	var det E
	if err := s.eng.Determinant(s.a, &det); err != nil {
		return nil, err
	}
	r := s.report("det")
	r.field("determinant", s.eng.Ring().Format(det))

	return r, nil
}

func (s *space[E]) Inverse() (*Report, error) {
	if err := s.require("a"); err != nil {
		return nil, err
	}
	inv := s.blank()
	ok, err := s.eng.Inverse(s.a, inv)
	if err != nil {
		return nil, err
	}
	r := s.report("inverse")
	r.field("invertible", ok)
	if ok {
		addMatrix(r, "inverse", inv)
	}

	return r, nil
}

func (s *space[E]) Mult() (*Report, error) {
	if err := s.require("ab"); err != nil {
		return nil, err
	}
	dst := s.blank()
	if err := s.eng.Mult(s.a, s.b, dst); err != nil {
		return nil, err
	}
	r := s.report("mult")
	addMatrix(r, "product", dst)

	return r, nil
}

// NullSpace computes a basis on the given side; echelon selects NullspaceU
// (right null space read off the echelon form).
func (s *space[E]) NullSpace(side linalg.Side, echelon bool) (*Report, error) {
	if err := s.require("a"); err != nil {
		return nil, err
	}
	dst := s.blank()
	r := s.report("nullspace")
	if echelon {
		ok, err := s.eng.NullspaceU(s.a, dst)
		if err != nil {
			return nil, err
		}
		r.field("ok", ok)
		r.field("dimension", dst.Cols())
		if ok {
			addMatrix(r, "basis", dst)
		}
		return r, nil
	}

	k, err := s.eng.NullSpace(s.a, side, dst)
	if err != nil {
		return nil, err
	}
	r.field("side", side)
	r.field("dimension", k)
	addMatrix(r, "basis", dst)

	return r, nil
}

// Solve solves A·X = B (or X·A = B on the left side). square selects the
// square-system shortcut, which reports singular A instead of searching for
// a particular solution.
func (s *space[E]) Solve(side linalg.Side, assumeInvertible, square bool) (*Report, error) {
	if err := s.require("ab"); err != nil {
		return nil, err
	}
	x := s.blank()
	r := s.report("solve")
	var (
		ok  bool
		err error
	)
	if square {
		ok, err = s.eng.Solve(s.a, s.b, x)
		if err != nil {
			return nil, err
		}
		r.field("nonsingular", ok)
	} else {
		ok, err = s.eng.SolveLinear(s.a, s.b, side, x, assumeInvertible)
		if err != nil {
			return nil, err
		}
		r.field("side", side)
		r.field("consistent", ok)
	}
	if ok {
		addMatrix(r, "solution", x)
	}

	return r, nil
}

func (s *space[E]) Profile(side linalg.ProfileSide) (*Report, error) {
	if err := s.require("a"); err != nil {
		return nil, err
	}
	idx, err := s.eng.RankProfile(s.a, side)
	if err != nil {
		return nil, err
	}
	r := s.report("profile")
	r.field("side", side)
	r.field("rank", len(idx))
	r.field("indices", formatInts(idx))

	return r, nil
}

// AddMul computes C ± A·B into a copy of C.
func (s *space[E]) AddMul(subtract bool) (*Report, error) {
	if err := s.require("abc"); err != nil {
		return nil, err
	}
	c := s.c.Clone()
	var err error
	if subtract {
		err = s.eng.SubtractMultipleTo(c, s.a, s.b)
	} else {
		err = s.eng.AddMultipleTo(c, s.a, s.b)
	}
	if err != nil {
		return nil, err
	}
	r := s.report("addmul")
	if subtract {
		addMatrix(r, "C - A·B", c)
	} else {
		addMatrix(r, "C + A·B", c)
	}

	return r, nil
}

func (s *space[E]) LU() (*Report, error) {
	if err := s.require("a"); err != nil {
		return nil, err
	}
	l, u := s.blank(), s.blank()
	perm, ok, err := s.eng.LU(s.a, l, u)
	if err != nil {
		return nil, err
	}
	r := s.report("lu")
	r.field("ok", ok)
	if ok {
		r.field("perm", formatInts(perm))
		addMatrix(r, "L", l)
		addMatrix(r, "U", u)
	}

	return r, nil
}

func (s *space[E]) Eigen(hermitian, vectors bool) (*Report, error) {
	if err := s.require("a"); err != nil {
		return nil, err
	}
	r := s.report("eigen")
	if hermitian {
		vals, _ := matrix.NewDense[float64](ring.RR{}, 0, 0)
		var (
			ok  bool
			err error
		)
		vecs := s.blank()
		if vectors {
			ok, err = s.eng.EigenvectorsHermitian(s.a, vals, vecs)
		} else {
			ok, err = s.eng.EigenvaluesHermitian(s.a, vals)
		}
		if err != nil {
			return nil, err
		}
		r.field("converged", ok)
		if ok {
			addMatrix(r, "eigenvalues", vals)
			if vectors {
				addMatrix(r, "eigenvectors", vecs)
			}
		}
		return r, nil
	}

	vals, _ := matrix.NewDense[complex128](ring.CC{}, 0, 0)
	vecs, _ := matrix.NewDense[complex128](ring.CC{}, 0, 0)
	var (
		ok  bool
		err error
	)
	if vectors {
		ok, err = s.eng.Eigenvectors(s.a, vals, vecs)
	} else {
		ok, err = s.eng.Eigenvalues(s.a, vals)
	}
	if err != nil {
		return nil, err
	}
	r.field("converged", ok)
	if ok {
		addMatrix(r, "eigenvalues", vals)
		if vectors {
			addMatrix(r, "eigenvectors", vecs)
		}
	}

	return r, nil
}

func (s *space[E]) LeastSquares(fullRank bool) (*Report, error) {
	if err := s.require("ab"); err != nil {
		return nil, err
	}
	x := s.blank()
	ok, err := s.eng.LeastSquares(s.a, s.b, x, fullRank)
	if err != nil {
		return nil, err
	}
	r := s.report("lstsq")
	r.field("ok", ok)
	if ok {
		addMatrix(r, "solution", x)
	}

	return r, nil
}

func (s *space[E]) SVD(strategy linalg.SVDStrategy) (*Report, error) {
	if err := s.require("a"); err != nil {
		return nil, err
	}
	sigma, _ := matrix.NewDense[float64](ring.RR{}, 0, 0)
	u, vt := s.blank(), s.blank()
	ok, err := s.eng.SVD(s.a, sigma, u, vt, strategy)
	if err != nil {
		return nil, err
	}
	r := s.report("svd")
	r.field("svd strategy", strategy)
	r.field("converged", ok)
	if ok {
		addMatrix(r, "sigma", sigma)
		addMatrix(r, "U", u)
		addMatrix(r, "Vᵀ", vt)
	}

	return r, nil
}
