// SPDX-License-Identifier: MIT

// Package config provides layered configuration for the lvlalg CLI.
//
// Sources, lowest to highest precedence:
//   - built-in defaults,
//   - lvlalg.yaml (or the file named by --config),
//   - LVLALG_* environment variables,
//   - explicitly set command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlalg/linalg"
)

// Defaults for every key.
const (
	DefaultDomain = "qq"
	DefaultOutput = OutputTable
	DefaultFile   = "lvlalg.yaml"
	EnvPrefix     = "LVLALG_"
)

// Output modes.
const (
	OutputTable = "table"
	OutputPlain = "plain"
)

// Domains accepted by the domain key, lower case.
var Domains = []string{"zzp", "gf", "zz", "qq", "rr", "cc"}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config holds all CLI configuration options.
type Config struct {
	Domain            string  `koanf:"domain"`
	Prime             string  `koanf:"prime"`
	RankTolerance     float64 `koanf:"rank_tolerance"`
	ResidualTolerance float64 `koanf:"residual_tolerance"`
	MaxSweeps         int     `koanf:"max_sweeps"`
	Output            string  `koanf:"output"`
	Verbose           bool    `koanf:"verbose"`

	// File is the configuration file that was loaded, empty when none.
	File string `koanf:"-"`
}

// Default returns the configuration used when no source sets a key.
func Default() *Config {
	return &Config{
		Domain:            DefaultDomain,
		RankTolerance:     linalg.DefaultRankTolerance,
		ResidualTolerance: linalg.DefaultResidualTolerance,
		MaxSweeps:         linalg.DefaultMaxSweeps,
		Output:            DefaultOutput,
	}
}

// Validate checks ranges and enumerations and normalizes case.
// The engine options panic on out-of-range values, so every numeric key is
// checked here first.
func (c *Config) Validate() error {
	c.Domain = strings.ToLower(strings.TrimSpace(c.Domain))
	c.Output = strings.ToLower(strings.TrimSpace(c.Output))
	c.Prime = strings.TrimSpace(c.Prime)

	if !IsDomain(c.Domain) {
		return fmt.Errorf("domain %q (want one of %s): %w", c.Domain, strings.Join(Domains, "|"), ErrInvalid)
	}
	if c.Output != OutputTable && c.Output != OutputPlain {
		return fmt.Errorf("output %q (want table|plain): %w", c.Output, ErrInvalid)
	}
	if !(c.RankTolerance >= 0 && c.RankTolerance < 1) {
		return fmt.Errorf("rank_tolerance %v (want 0 ≤ eps < 1): %w", c.RankTolerance, ErrInvalid)
	}
	if !(c.ResidualTolerance > 0) || c.ResidualTolerance > 1e300 {
		return fmt.Errorf("residual_tolerance %v (want > 0): %w", c.ResidualTolerance, ErrInvalid)
	}
	if c.MaxSweeps < 1 {
		return fmt.Errorf("max_sweeps %d (want ≥ 1): %w", c.MaxSweeps, ErrInvalid)
	}

	return nil
}

// IsDomain reports whether name is one of Domains (case-insensitive).
func IsDomain(name string) bool {
	name = strings.ToLower(name)
	for _, d := range Domains {
		if d == name {
			return true
		}
	}

	return false
}
