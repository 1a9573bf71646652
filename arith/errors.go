// SPDX-License-Identifier: MIT

package arith

import (
	"errors"
	"fmt"
)

var (
	// ErrOverflow is reported when an exact result does not fit in 64 bits.
	ErrOverflow = errors.New("arith: integer overflow")

	// ErrNonPositiveModulus signals a modulus ≤ 0 passed to a modular routine.
	ErrNonPositiveModulus = errors.New("arith: modulus must be positive")

	// ErrNegativeRadicand signals a square root requested for a negative value.
	ErrNegativeRadicand = errors.New("arith: square root of negative value")
)

// Operation tags used when wrapping sentinels.
const (
	opGCD    = "GCD"
	opLCM    = "LCM"
	opAdd    = "AddChecked"
	opSub    = "SubChecked"
	opMul    = "MulChecked"
	opPowMod = "PowMod"
	opISqrt  = "ISqrt"
)

// arithErrorf wraps err with an operation tag so errors.Is keeps matching.
func arithErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
