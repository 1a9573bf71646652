// SPDX-License-Identifier: MIT

// Package qs factors a composite n with the quadratic sieve.
//
// Pipeline:
//
//	sieve.Smooth ─► relations (x, y = x² − n, exponents of y)
//	            ─► parity matrix over GF(2)   (relations × base primes)
//	            ─► left null space            (subsets with even exponents)
//	            ─► X = ∏ x,  Y = ∏ p^(Σe/2)   (X² ≡ Y² mod n)
//	            ─► d = gcd(X − Y, n)
//
// Every null vector is tried in echelon order until 1 < d < n.
//
// Usage:
//
//	p, q, err := qs.Factor(8051, 5, 50) // 83, 97
//
// Errors:
//   - ErrInvalidInput           n < 4.
//   - ErrInsufficientRelations  at most |base| relations were found; enlarge
//     the interval or shrink the base.
//   - ErrNoNontrivialFactor     every null vector gave a trivial gcd (n is
//     prime or the run was unlucky).
//
// Perfect squares are answered directly as (√n, √n).
package qs
