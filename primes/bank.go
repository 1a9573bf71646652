// SPDX-License-Identifier: MIT

package primes

import (
	"errors"
	"fmt"
	"iter"
	"sync"
)

// DefaultGrowBy is the segment width used when NewBank gets growBy <= 0.
const DefaultGrowBy = 1000

// ErrNegativeIndex is carried by the panic raised for IthPrime(i < 0).
var ErrNegativeIndex = errors.New("primes: negative prime index")

// Bank caches the primes below limit and extends itself on demand.
type Bank struct {
	mu     sync.RWMutex
	growBy int64
	limit  int64   // every integer in [0, limit) has been sieved
	primes []int64 // ascending, all primes < limit
}

// NewBank returns an empty bank that sieves growBy numbers per extension.
func NewBank(growBy int) *Bank {
	if growBy <= 0 {
		growBy = DefaultGrowBy
	}

	return &Bank{growBy: int64(growBy)}
}

// Len returns the number of primes currently cached.
func (b *Bank) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.primes)
}

// Limit returns the exclusive upper bound of the sieved range.
func (b *Bank) Limit() int64 {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.limit
}

// IthPrime returns the i-th prime, 0-based (IthPrime(0) == 2), extending
// the cache as needed.
func (b *Bank) IthPrime(i int) int64 {
	if i < 0 {
		panic(fmt.Errorf("IthPrime(%d): %w", i, ErrNegativeIndex))
	}

	b.mu.RLock()
	if i < len(b.primes) {
		p := b.primes[i]
		b.mu.RUnlock()

		return p
	}
	b.mu.RUnlock()

	b.mu.Lock()
	defer b.mu.Unlock()
	for i >= len(b.primes) {
		b.extend()
	}

	return b.primes[i]
}

// ExtendUntil sieves until every prime below n is cached.
func (b *Bank) ExtendUntil(n int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for b.limit < n {
		b.extend()
	}
}

// All yields the cached primes followed by freshly sieved ones, without end.
func (b *Bank) All() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for i := 0; ; i++ {
			if !yield(b.IthPrime(i)) {
				return
			}
		}
	}
}

// extend sieves the next segment [limit, limit+growBy). Caller holds mu.
func (b *Bank) extend() {
	lo, hi := b.limit, b.limit+b.growBy

	// The cached primes cover √hi only once lo² ≥ hi; before that the
	// whole prefix is sieved from scratch.
	if lo*lo < hi {
		b.primes = eratosthenes(hi)
		b.limit = hi

		return
	}

	composite := make([]bool, hi-lo)
	for _, p := range b.primes {
		if p*p >= hi {
			break
		}
		start := max(p*p, (lo+p-1)/p*p)
		for k := start; k < hi; k += p {
			composite[k-lo] = true
		}
	}
	for k := lo; k < hi; k++ {
		if !composite[k-lo] {
			b.primes = append(b.primes, k)
		}
	}
	b.limit = hi
}

// eratosthenes returns all primes below n.
func eratosthenes(n int64) []int64 {
	if n <= 2 {
		return nil
	}
	composite := make([]bool, n)
	var out []int64
	for k := int64(2); k < n; k++ {
		if composite[k] {
			continue
		}
		out = append(out, k)
		for j := k * k; j < n; j += k {
			composite[j] = true
		}
	}

	return out
}
