// SPDX-License-Identifier: MIT

// Package quadres decides quadratic residuosity modulo a prime and extracts
// modular square roots.
//
//	IsQuadraticResidue(n, p) — Euler's criterion, n^((p−1)/2) ≡ 1 (mod p)
//	Legendre(n, p)           — the Legendre symbol (n | p) ∈ {−1, 0, 1}
//	SqrtMod(n, p)            — Tonelli–Shanks, both roots {r, p − r}
//
// p must be prime. p = 2 is special-cased everywhere: every n counts as a
// residue and its double root is n mod 2. Primality is not re-checked;
// when SqrtMod detects that its invariants cannot hold it panics with an
// error wrapping ErrPrecondition.
package quadres
