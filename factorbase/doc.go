// SPDX-License-Identifier: MIT

// Package factorbase builds the factor base of a quadratic sieve run: the
// first k primes p for which n is a quadratic residue modulo p, together
// with the two square roots of n modulo each of them.
//
// The prime 2 is always admitted with the double root n mod 2. An odd
// prime is admitted iff n^((p−1)/2) ≡ 1 (mod p); in particular primes
// dividing n are skipped.
//
// A FactorBase is immutable once built and safe to share between sieve
// workers. It also knows how to factor a candidate value over itself.
package factorbase
