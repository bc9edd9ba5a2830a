// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display lvlalg version and the supported domains.`,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "lvlalg v%s\n", version)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Dense linear algebra over ZZ/p, GF(p), ZZ, QQ, RR and CC")
		},
	}
}
