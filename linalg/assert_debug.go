// SPDX-License-Identifier: MIT

//go:build lvlalgdebug

package linalg

import "fmt"

// debugChecks enables caller-contract assertions (build with -tags lvlalgdebug).
const debugChecks = true

// assertf panics with the formatted message when cond is false.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("linalg: contract violation: "+format, args...))
	}
}
