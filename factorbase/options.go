// SPDX-License-Identifier: MIT

package factorbase

import (
	"iter"

	"github.com/katalvlaran/qsieve/primes"
)

// Option configures Build.
type Option func(*options)

type options struct {
	source iter.Seq[int64]
}

func defaultOptions() options {
	return options{source: primes.Sequence(2)}
}

// WithBank draws candidate primes from a shared prime cache instead of
// trial division. Panics on a nil bank.
func WithBank(b *primes.Bank) Option {
	if b == nil {
		panic("factorbase: WithBank(nil)")
	}

	return func(o *options) { o.source = b.All() }
}

// WithPrimes draws candidate primes from an arbitrary ascending stream.
// Panics on a nil stream.
func WithPrimes(seq iter.Seq[int64]) Option {
	if seq == nil {
		panic("factorbase: WithPrimes(nil)")
	}

	return func(o *options) { o.source = seq }
}
