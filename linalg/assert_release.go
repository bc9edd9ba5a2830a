// SPDX-License-Identifier: MIT

//go:build !lvlalgdebug

package linalg

const debugChecks = false

func assertf(bool, string, ...any) {}
