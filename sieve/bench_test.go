package sieve_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/qsieve/factorbase"
	"github.com/katalvlaran/qsieve/sieve"
)

var sinkR *sieve.Result

func BenchmarkSmooth(b *testing.B) {
	const n = 1000000016000000063
	fb, err := factorbase.Build(n, 300)
	if err != nil {
		b.Fatal(err)
	}
	for _, w := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("workers=%d", w), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				r, err := sieve.Smooth(n, 0, 200000, sieve.WithFactorBase(fb), sieve.WithWorkers(w))
				if err != nil {
					b.Fatal(err)
				}
				sinkR = r
			}
		})
	}
}
