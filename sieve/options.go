// SPDX-License-Identifier: MIT

package sieve

import (
	"fmt"

	"github.com/katalvlaran/qsieve/factorbase"
	"github.com/katalvlaran/qsieve/primes"
)

// DefaultWorkers runs the sieve on the calling goroutine only.
const DefaultWorkers = 1

// Option configures Smooth.
type Option func(*options)

type options struct {
	workers int
	base    *factorbase.FactorBase
	bank    *primes.Bank
}

func defaultOptions() options {
	return options{workers: DefaultWorkers}
}

// WithWorkers sieves k disjoint regions concurrently. Panics if k < 1.
func WithWorkers(k int) Option {
	if k < 1 {
		panic(fmt.Sprintf("sieve: WithWorkers(%d): need k >= 1", k))
	}

	return func(o *options) { o.workers = k }
}

// WithFactorBase reuses a prebuilt base instead of building one.
// Smooth rejects a base built for a different n.
func WithFactorBase(fb *factorbase.FactorBase) Option {
	return func(o *options) { o.base = fb }
}

// WithPrimeBank builds the factor base from a shared prime cache.
func WithPrimeBank(b *primes.Bank) Option {
	return func(o *options) { o.bank = b }
}
