// SPDX-License-Identifier: MIT

package factorbase

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qsieve/quadres"
)

var (
	// ErrInvalidSize is returned when the requested base size is not positive.
	ErrInvalidSize = errors.New("factorbase: size must be > 0")

	// ErrInvalidN is returned when n < 2.
	ErrInvalidN = errors.New("factorbase: n must be >= 2")
)

// FactorBase is an ascending list of distinct primes, each paired with the
// square roots of n modulo that prime.
type FactorBase struct {
	n      int64
	primes []int64
	roots  [][2]int64
}

// Build returns the first size primes p (ascending) with p = 2 or (n | p) = 1.
//
// Errors:
//   - ErrInvalidSize if size <= 0.
//   - ErrInvalidN if n < 2.
//
// Complexity: dominated by the primes scanned; about 2·size of them on average.
func Build(n int64, size int, opts ...Option) (*FactorBase, error) {
	if size <= 0 {
		return nil, fmt.Errorf("Build(%d, %d): %w", n, size, ErrInvalidSize)
	}
	if n < 2 {
		return nil, fmt.Errorf("Build(%d, %d): %w", n, size, ErrInvalidN)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	fb := &FactorBase{
		n:      n,
		primes: make([]int64, 0, size),
		roots:  make([][2]int64, 0, size),
	}
	for p := range o.source {
		if !quadres.IsQuadraticResidue(n, p) {
			continue
		}
		r, ok := quadres.SqrtMod(n, p)
		if !ok {
			continue
		}
		fb.primes = append(fb.primes, p)
		fb.roots = append(fb.roots, r)
		if len(fb.primes) == size {
			break
		}
	}

	return fb, nil
}

// N is the number the base was built for.
func (fb *FactorBase) N() int64 { return fb.n }

// Len is the number of primes in the base.
func (fb *FactorBase) Len() int { return len(fb.primes) }

// Primes returns a copy of the primes.
func (fb *FactorBase) Primes() []int64 {
	out := make([]int64, len(fb.primes))
	copy(out, fb.primes)

	return out
}

// Prime returns the i-th prime.
func (fb *FactorBase) Prime(i int) int64 { return fb.primes[i] }

// Roots returns the two square roots of n modulo the i-th prime.
func (fb *FactorBase) Roots(i int) [2]int64 { return fb.roots[i] }

// Factor divides y by every base prime as often as possible. It returns
// the exponent of each prime and the cofactor left over; y is smooth over
// the base iff |rest| == 1. y = 0 is returned unchanged with zero exponents.
func (fb *FactorBase) Factor(y int64) (exps []int, rest int64) {
	exps = make([]int, len(fb.primes))
	if y == 0 {
		return exps, 0
	}
	for i, p := range fb.primes {
		for y%p == 0 {
			y /= p
			exps[i]++
		}
	}

	return exps, y
}

// IsSmooth reports whether y factors completely over the base.
func (fb *FactorBase) IsSmooth(y int64) bool {
	_, rest := fb.Factor(y)

	return rest == 1 || rest == -1
}
