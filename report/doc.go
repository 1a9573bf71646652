// SPDX-License-Identifier: MIT

// Package report renders factorization results for humans:
//
//	Summary        — a coloured one-line "n = p × q"
//	RelationsTable — the smooth relations as a terminal table
//	SieveChart     — an HTML page charting the sieve residuals
//
// Colour follows fatih/color, so it switches off automatically when the
// output is not a terminal (or when color.NoColor is set).
package report
