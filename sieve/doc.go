// SPDX-License-Identifier: MIT

// Package sieve finds smooth values of Q(x) = x² − n just above √n.
//
// Algorithm:
//  1. m = ⌈√n⌉; slot k of the sieve holds Q(k + m) for k in [0, interval).
//  2. For every factor base prime p and each root r of n mod p, the slots
//     k ≡ (r − m) (mod p) are exactly those where p divides Q(k + m). Each
//     of them is divided by p as long as it stays divisible.
//  3. Slots left with |value| = 1 were smooth; x = k + m and y = x² − n
//     are reported in ascending order.
//
// Zero slots (n a perfect square) are never divided and never reported.
//
// WithWorkers(k) splits the interval into k contiguous regions sieved
// concurrently. Regions are disjoint and the factor base is read-only, so
// the result is identical to the sequential run.
package sieve
