// SPDX-License-Identifier: MIT

package qs

import (
	"github.com/katalvlaran/qsieve/primes"
	"github.com/katalvlaran/qsieve/sieve"
)

// Option configures Run and Factor.
type Option func(*options)

type options struct {
	sieve []sieve.Option
}

// WithWorkers sieves with k concurrent workers. Panics if k < 1.
func WithWorkers(k int) Option {
	so := sieve.WithWorkers(k)

	return func(o *options) { o.sieve = append(o.sieve, so) }
}

// WithPrimeBank draws factor base primes from a shared cache.
func WithPrimeBank(b *primes.Bank) Option {
	so := sieve.WithPrimeBank(b)

	return func(o *options) { o.sieve = append(o.sieve, so) }
}
