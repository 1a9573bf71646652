// SPDX-License-Identifier: MIT

// Package arith is the exact integer arithmetic core of qsieve.
//
// What is inside?
//
//	• ExtEuclid    — iterative extended Euclid, a·x + b·y = d
//	• GCD, GCDUint — binary (shift-and-subtract) gcd
//	• GCDEuclid    — gcd through ExtEuclid
//	• LCM          — least common multiple with overflow detection
//	• Inverse      — modular inverse, reported as (x, ok)
//	• PowMod       — square-and-multiply with 128-bit intermediates
//	• MulChecked, AddChecked, SubChecked, Square — overflow-checked int64 ops
//	• ISqrt, CeilSqrt, IsSquare — integer square roots
//
// Every routine works on fixed-width machine integers. Nothing wraps
// silently: a product that cannot be represented is reported through
// ErrOverflow, either as a returned error or, for routines that return a
// bare value, as a panic carrying a wrapped ErrOverflow.
//
// Usage:
//
//	d, x, y := arith.ExtEuclid(240, 46) // d = 2, 240·x + 46·y = 2
//	inv, ok := arith.Inverse(3, 7)      // inv = 5, ok = true
//	r := arith.PowMod(4, 13, 497)       // r = 445
//
// Complexity:
//
//   - GCD, ExtEuclid, Inverse: O(log max(|a|,|b|)) word operations.
//   - PowMod: O(log exp) multiplications.
package arith
