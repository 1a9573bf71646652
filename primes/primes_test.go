package primes_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/qsieve/primes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var first25 = []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67, 71, 73, 79, 83, 89, 97}

// TestIsPrime checks small values, squares of primes and a 63-bit prime.
func TestIsPrime(t *testing.T) {
	t.Parallel()
	for _, n := range []int64{-7, 0, 1, 4, 9, 25, 49, 8051, 7919 * 7919} {
		assert.False(t, primes.IsPrime(n), "%d", n)
	}
	for _, p := range first25 {
		assert.True(t, primes.IsPrime(p), "%d", p)
	}
	assert.True(t, primes.IsPrime(1000000007))
}

// TestSequence checks the trial-division stream and its start offset.
func TestSequence(t *testing.T) {
	t.Parallel()
	var got []int64
	for p := range primes.Sequence(-10) {
		got = append(got, p)
		if len(got) == len(first25) {
			break
		}
	}
	require.Equal(t, first25, got)

	for p := range primes.Sequence(90) {
		require.Equal(t, int64(97), p)
		break
	}
}

// TestBankIthPrime covers small growth segments and known milestones.
func TestBankIthPrime(t *testing.T) {
	t.Parallel()
	for _, growBy := range []int{0, 7, 64, 1000} {
		bank := primes.NewBank(growBy)
		require.Zero(t, bank.Len())
		for i, p := range first25 {
			require.Equal(t, p, bank.IthPrime(i), "growBy=%d i=%d", growBy, i)
		}
		require.Equal(t, int64(7919), bank.IthPrime(999))
		require.Equal(t, int64(104729), bank.IthPrime(9999))
		require.GreaterOrEqual(t, bank.Len(), 10000)
	}
}

// TestBankMatchesTrialDivision compares the cache against IsPrime.
func TestBankMatchesTrialDivision(t *testing.T) {
	t.Parallel()
	bank := primes.NewBank(37)
	bank.ExtendUntil(5000)
	require.GreaterOrEqual(t, bank.Limit(), int64(5000))

	i := 0
	for n := int64(0); n < 5000; n++ {
		if !primes.IsPrime(n) {
			continue
		}
		require.Equal(t, n, bank.IthPrime(i))
		i++
	}
	require.Equal(t, 669, i) // π(5000)
}

// TestBankAll checks that the endless stream starts at 2 and stops on break.
func TestBankAll(t *testing.T) {
	t.Parallel()
	bank := primes.NewBank(10)
	var got []int64
	for p := range bank.All() {
		if p > 97 {
			break
		}
		got = append(got, p)
	}
	require.Equal(t, first25, got)
}

// TestBankNegativeIndex verifies the programmer-error panic.
func TestBankNegativeIndex(t *testing.T) {
	t.Parallel()
	assert.PanicsWithError(t, "IthPrime(-1): primes: negative prime index", func() {
		primes.NewBank(0).IthPrime(-1)
	})
}

// TestBankConcurrent ensures concurrent readers extending one bank agree.
func TestBankConcurrent(t *testing.T) {
	t.Parallel()
	bank := primes.NewBank(50)
	const num = 64
	got := make([]int64, num)

	var wg sync.WaitGroup
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			got[id] = bank.IthPrime(id * 40)
		}(i)
	}
	wg.Wait()

	ref := primes.NewBank(0)
	for i := 0; i < num; i++ {
		require.Equal(t, ref.IthPrime(i*40), got[i])
	}
}
