// Package qsieve factors 64-bit composites with the quadratic sieve, built
// from small exact-arithmetic pieces you can also use on their own.
//
// 🚀 What is qsieve?
//
//	A pure-Go, fixed-width implementation of the textbook quadratic sieve:
//		• Exact arithmetic: gcd, lcm, modular powers, checked int64 ops
//		• Rings: ring.Int and ring.Residue (integers mod M)
//		• Quadratic residues: Euler's criterion, Tonelli–Shanks roots
//		• Factor bases and a (parallel) sieve near √n
//		• A generic matrix engine with division-free echelon form
//		• The pipeline: relations → GF(2) null space → gcd(X − Y, n)
//
// ✨ Why choose qsieve?
//
//   - Overflow is never silent: every product that may exceed 64 bits is checked
//   - Small, readable packages that follow the algorithm step by step
//   - Errors you can match with errors.Is, panics only for programmer errors
//
// Under the hood, the work is split into subpackages:
//
//	arith/      — gcd, lcm, PowMod, MulMod, ISqrt, checked int64 arithmetic
//	ring/       — Int and Residue ring elements used as matrix entries
//	quadres/    — Legendre symbol and modular square roots
//	primes/     — primality, prime sequences and a shared prime Bank
//	factorbase/ — primes p with (n | p) = 1 and the roots of n mod p
//	sieve/      — smooth values of x² − n over an interval
//	matrix/     — Dense[T], echelon form and left null spaces
//	qs/         — Factor and Run, the end-to-end pipeline
//	config/     — viper-backed settings for the command
//	report/     — relation tables and sieve charts
//	cmd/qs      — the command-line front end
//
// Quick example:
//
//	p, q, err := qs.Factor(8051, 5, 50) // 83, 97
//
// 8051 = 90² − 7², so the sieve around ⌈√8051⌉ = 90 finds the square quickly.
//
//	go get github.com/katalvlaran/qsieve
package qsieve
