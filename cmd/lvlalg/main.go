// SPDX-License-Identifier: MIT

// Package main provides the lvlalg command-line tool.
package main

import (
	"os"

	"github.com/katalvlaran/lvlalg/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
