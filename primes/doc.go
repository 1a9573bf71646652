// SPDX-License-Identifier: MIT

// Package primes supplies prime numbers to the factor base builder.
//
// Two sources are offered:
//
//   - IsPrime / Sequence — plain trial division, no state. Enough for the
//     handful of primes a small factor base needs.
//   - Bank — a growable sieve of Eratosthenes that caches every prime it
//     has found. Ranges are sieved in segments of growBy numbers on demand,
//     so IthPrime(i) is amortised O(1) once the cache is warm. A Bank is
//     safe for concurrent use and can be shared across factorizations.
//
// Usage:
//
//	bank := primes.NewBank(primes.DefaultGrowBy)
//	p := bank.IthPrime(999) // 7919
//	for p := range bank.All() { ... } // 2, 3, 5, ... (endless)
package primes
