// SPDX-License-Identifier: MIT

package sieve

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qsieve/arith"
	"github.com/katalvlaran/qsieve/factorbase"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrInvalidInterval is returned when the interval size is not positive.
	ErrInvalidInterval = errors.New("sieve: interval size must be > 0")

	// ErrBaseMismatch is returned when WithFactorBase carries a base for another n.
	ErrBaseMismatch = errors.New("sieve: factor base built for a different n")
)

// Result is the output of one sieve run.
type Result struct {
	// N is the number being factored.
	N int64

	// Start is m = ⌈√n⌉, the x of slot 0.
	Start int64

	// Xs and Ys are the smooth relations, y = x² − n, ascending in x.
	Xs []int64
	Ys []int64

	// Residuals[k] is what remained of Q(k + m) after sieving.
	Residuals []int64

	// Base is the factor base that was sieved with.
	Base *factorbase.FactorBase
}

// Len is the number of smooth relations found.
func (r *Result) Len() int { return len(r.Xs) }

// Smooth sieves [m, m + intervalSize) for values smooth over a factor base
// of factorBaseSize primes. Finding few or no relations is not an error.
//
// Errors:
//   - ErrInvalidInterval if intervalSize <= 0.
//   - factorbase.ErrInvalidSize / ErrInvalidN from building the base.
//   - ErrBaseMismatch when WithFactorBase was built for another n.
//   - arith.ErrOverflow when (m + intervalSize − 1)² does not fit in int64.
func Smooth(n int64, factorBaseSize, intervalSize int, opts ...Option) (*Result, error) {
	if intervalSize <= 0 {
		return nil, fmt.Errorf("Smooth(%d): %w", n, ErrInvalidInterval)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	fb := o.base
	if fb == nil {
		var fbOpts []factorbase.Option
		if o.bank != nil {
			fbOpts = append(fbOpts, factorbase.WithBank(o.bank))
		}
		var err error
		if fb, err = factorbase.Build(n, factorBaseSize, fbOpts...); err != nil {
			return nil, fmt.Errorf("Smooth(%d): %w", n, err)
		}
	} else if fb.N() != n {
		return nil, fmt.Errorf("Smooth(%d): base for %d: %w", n, fb.N(), ErrBaseMismatch)
	}

	m := arith.CeilSqrt(n)
	vals := make([]int64, intervalSize)

	workers := min(o.workers, intervalSize)
	chunk := (intervalSize + workers - 1) / workers
	g := new(errgroup.Group)
	for lo := 0; lo < intervalSize; lo += chunk {
		hi := min(lo+chunk, intervalSize)
		g.Go(func() error {
			return sieveRegion(vals, lo, hi, n, m, fb)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("Smooth(%d): %w", n, err)
	}

	res := &Result{N: n, Start: m, Residuals: vals, Base: fb}
	for k, v := range vals {
		if v != 1 && v != -1 {
			continue
		}
		x := m + int64(k)
		res.Xs = append(res.Xs, x)
		res.Ys = append(res.Ys, x*x-n) // fits: checked in sieveRegion
	}

	return res, nil
}

// sieveRegion fills vals[lo:hi] with Q(k + m) and divides out every base
// prime at the slots its roots select. Only vals[lo:hi] is touched.
func sieveRegion(vals []int64, lo, hi int, n, m int64, fb *factorbase.FactorBase) error {
	for k := lo; k < hi; k++ {
		x, err := arith.AddChecked(m, int64(k))
		if err != nil {
			return err
		}
		sq, err := arith.Square(x)
		if err != nil {
			return err
		}
		vals[k] = sq - n // sq ≥ n, so no underflow
	}

	for i := 0; i < fb.Len(); i++ {
		p := fb.Prime(i)
		roots := fb.Roots(i)
		for j, r := range roots {
			if j == 1 && roots[1] == roots[0] {
				break // double root, already sieved
			}
			s := arith.RemEuclid(r-m, p)
			first := int64(lo) + arith.RemEuclid(s-int64(lo), p)
			for k := first; k < int64(hi); k += p {
				v := vals[k]
				if v == 0 {
					continue
				}
				for v%p == 0 {
					v /= p
				}
				vals[k] = v
			}
		}
	}

	return nil
}
