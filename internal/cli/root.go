// SPDX-License-Identifier: MIT

// Package cli provides the command-line interface for lvlalg.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlalg/internal/cli/commands"
	"github.com/katalvlaran/lvlalg/internal/cli/config"
)

// Version information (set at build time).
var Version = "0.1.0"

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "lvlalg",
		Short: "lvlalg - dense linear algebra over exact and float domains",
		Long: `lvlalg runs dense matrix operations over ZZ/p, GF(p), ZZ, QQ, RR and CC.

Each command reads a YAML document with matrices a, b and c (entries are
strings or numbers parsed by the domain) and prints the result:

  domain: qq
  a: [[1, 2], [3, 4]]

Configuration is read from lvlalg.yaml, LVLALG_* environment variables
and flags, in increasing precedence.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			logger := config.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
			if cfg.File != "" {
				logger.Debug("config loaded", "file", cfg.File)
			}
			cmd.SetContext(config.WithContext(cmd.Context(), cfg, logger))

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: ./lvlalg.yaml)")
	pf.StringP("domain", "d", "", "domain: zzp|gf|zz|qq|rr|cc (default qq)")
	pf.StringP("prime", "p", "", "modulus of zzp / gf")
	pf.Float64("rank-tolerance", 0, "relative rank cutoff of float domains")
	pf.Float64("residual-tolerance", 0, "consistency tolerance of float solves")
	pf.Int("max-sweeps", 0, "iteration cap of Jacobi / QR sweeps")
	pf.StringP("output", "o", "", "output format (table|plain)")
	pf.BoolP("verbose", "v", false, "debug logging on stderr")

	_ = rootCmd.RegisterFlagCompletionFunc("domain", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return config.Domains, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.OutputTable, config.OutputPlain}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.All()...)

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
