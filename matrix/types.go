// SPDX-License-Identifier: MIT

package matrix

// Element is the contract a scalar type must satisfy to live in a Dense.
// Zero and One are read off an existing value, so element types may carry
// runtime parameters (a modulus) without a global registry.
type Element[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Equal(T) bool
	IsZero() bool

	// Zero returns the additive identity compatible with the receiver.
	Zero() T

	// One returns the multiplicative identity compatible with the receiver.
	One() T

	// Cofactors returns (c, d) = (lcm/a, lcm/b) for pivot a (the receiver)
	// and target b, so that d·b − c·a = 0.
	Cofactors(b T) (c, d T)
}

// Matrix is the read/write surface shared by matrix implementations.
// Binary operators accept any Matrix[T] and take a fast path for *Dense[T].
type Matrix[T any] interface {
	// Rows returns the number of rows. Complexity: O(1).
	Rows() int

	// Cols returns the number of columns. Complexity: O(1).
	Cols() int

	// At retrieves the element at (i, j) or ErrOutOfRange.
	At(i, j int) (T, error)

	// Set assigns v at (i, j) or returns ErrOutOfRange.
	Set(i, j int, v T) error
}
