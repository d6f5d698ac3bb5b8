package pool_test

import (
	"math"
	"testing"

	"github.com/parallelkit/parfor/pool"
)

func work(x int) float64 {
	s := 0.0
	for i := range 64 {
		s += math.Sin(float64(x + i))
	}
	return s
}

func BenchmarkSubmit(b *testing.B) {
	p := pool.New(4)
	defer p.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h, err := p.Submit(func(worker int) error { return nil })
		if err != nil {
			b.Fatal(err)
		}
		_ = h.Wait()
	}
}

func BenchmarkForEachN(b *testing.B) {
	p := pool.New(pool.Auto)
	defer p.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pool.ForEachN(p, 10000, func(worker, index int) error {
			work(index)
			return nil
		})
	}
}

func BenchmarkForEachN_Sequential(b *testing.B) {
	p := pool.New(pool.None)
	defer p.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pool.ForEachN(p, 10000, func(worker, index int) error {
			work(index)
			return nil
		})
	}
}
