// SPDX-License-Identifier: MIT

package qs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qsieve/arith"
	"github.com/katalvlaran/qsieve/factorbase"
	"github.com/katalvlaran/qsieve/matrix"
	"github.com/katalvlaran/qsieve/ring"
	"github.com/katalvlaran/qsieve/sieve"
)

var (
	// ErrInvalidInput is returned for n < 4.
	ErrInvalidInput = errors.New("qs: n must be >= 4")

	// ErrInsufficientRelations is returned when the sieve found no more
	// relations than there are base primes, so no dependency is guaranteed.
	ErrInsufficientRelations = errors.New("qs: insufficient relations")

	// ErrNoNontrivialFactor is returned when every null vector yields a
	// trivial divisor.
	ErrNoNontrivialFactor = errors.New("qs: no non-trivial factor found")

	// ErrPrecondition is carried by panics on broken internal invariants
	// (a sieved value that does not factor over the base).
	ErrPrecondition = errors.New("qs: precondition violated")
)

// Result describes a successful factorization.
type Result struct {
	// N = P · Q with 1 < P, Q < N.
	N, P, Q int64

	// Relations are the smooth relations in ascending x. Empty when the
	// perfect-square shortcut answered.
	Relations []Relation

	// Base is the factor base; nil for perfect squares.
	Base *factorbase.FactorBase

	// Sieve is the raw sieve output; nil for perfect squares.
	Sieve *sieve.Result

	// Tried counts the null vectors examined, including the successful one.
	Tried int
}

// ExponentMatrix returns the relations × base exponent matrix over ℤ.
func (r *Result) ExponentMatrix() (*matrix.Dense[ring.Int], error) {
	return exponentMatrix(r.Relations)
}

// ParityMatrix returns the relations × base parity matrix over GF(2).
func (r *Result) ParityMatrix() (*matrix.Dense[ring.Residue], error) {
	return parityMatrix(r.Relations)
}

// Factor returns a non-trivial factorization n = p · q.
// See Run for the errors.
func Factor(n int64, factorBaseSize, intervalSize int, opts ...Option) (p, q int64, err error) {
	res, err := Run(n, factorBaseSize, intervalSize, opts...)
	if err != nil {
		return 0, 0, err
	}

	return res.P, res.Q, nil
}

// Run factors n with a factor base of factorBaseSize primes and a sieve
// interval of intervalSize values above ⌈√n⌉.
//
// Errors:
//   - ErrInvalidInput, ErrInsufficientRelations, ErrNoNontrivialFactor.
//   - sieve and factorbase errors (sizes, arith.ErrOverflow) wrapped.
func Run(n int64, factorBaseSize, intervalSize int, opts ...Option) (*Result, error) {
	if n < 4 {
		return nil, fmt.Errorf("Run(%d): %w", n, ErrInvalidInput)
	}
	if r, ok := arith.IsSquare(n); ok {
		return &Result{N: n, P: r, Q: r}, nil
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	sv, err := sieve.Smooth(n, factorBaseSize, intervalSize, o.sieve...)
	if err != nil {
		return nil, fmt.Errorf("Run(%d): %w", n, err)
	}

	fb := sv.Base
	if sv.Len() <= fb.Len() {
		return nil, fmt.Errorf("Run(%d): %w: found %d, need at least %d (factor base size + 1); widen the interval or shrink the base",
			n, ErrInsufficientRelations, sv.Len(), fb.Len()+1)
	}

	rels := make([]Relation, sv.Len())
	for i, x := range sv.Xs {
		exps, rest := fb.Factor(sv.Ys[i])
		if rest != 1 && rest != -1 {
			panic(fmt.Errorf("Run(%d): y=%d left %d after factoring: %w", n, sv.Ys[i], rest, ErrPrecondition))
		}
		rels[i] = Relation{X: x, Y: sv.Ys[i], Exponents: exps}
	}

	par, err := parityMatrix(rels)
	if err != nil {
		return nil, fmt.Errorf("Run(%d): %w", n, err)
	}

	res := &Result{N: n, Relations: rels, Base: fb, Sieve: sv}
	for v := range par.IterLeftNullSpan() {
		res.Tried++
		d := congruenceGCD(n, rels, fb, v)
		if d > 1 && d < n {
			res.P, res.Q = d, n/d

			return res, nil
		}
	}

	return nil, fmt.Errorf("Run(%d): %w after %d null vectors", n, ErrNoNontrivialFactor, res.Tried)
}

// congruenceGCD combines the relations selected by v into X² ≡ Y² (mod n)
// and returns gcd(X − Y, n).
func congruenceGCD(n int64, rels []Relation, fb *factorbase.FactorBase, v []ring.Residue) int64 {
	mod := uint64(n)
	sum := make([]int, fb.Len())
	x := uint64(1)
	for i, c := range v {
		if c.IsZero() {
			continue
		}
		x = arith.MulMod(x, uint64(arith.RemEuclid(rels[i].X, n)), mod)
		for j, e := range rels[i].Exponents {
			sum[j] += e
		}
	}

	y := uint64(1)
	for j, e := range sum {
		if e&1 != 0 {
			panic(fmt.Errorf("prime %d has odd total exponent %d: %w", fb.Prime(j), e, ErrPrecondition))
		}
		y = arith.MulMod(y, uint64(arith.PowMod(fb.Prime(j), uint64(e/2), n)), mod)
	}

	return arith.GCD(int64(x)-int64(y), n)
}
