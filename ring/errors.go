// SPDX-License-Identifier: MIT

package ring

import (
	"errors"
	"fmt"
)

var (
	// ErrModulusMismatch is carried by the panic raised when two residues
	// with different moduli meet in one operation.
	ErrModulusMismatch = errors.New("ring: modulus mismatch")

	// ErrZeroModulus is carried by the panic raised for a residue mod 0.
	ErrZeroModulus = errors.New("ring: modulus must be non-zero")
)

// mismatch builds the panic value for two incompatible moduli.
func mismatch(a, b uint64) error {
	return fmt.Errorf("%w: %d and %d", ErrModulusMismatch, a, b)
}
