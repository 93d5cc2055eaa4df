package iter_test

import (
	"testing"

	"github.com/rizo/proto/iter"
)

var benchItems = func() []int {
	items := make([]int, 1000)
	for i := range items {
		items[i] = i + 1
	}
	return items
}()

func BenchmarkFold(b *testing.B) {
	for i := 0; i < b.N; i++ {
		iter.Fold(iter.FromSlice(benchItems), 0, func(acc, n int) int { return acc + n })
	}
}

func BenchmarkFind(b *testing.B) {
	for i := 0; i < b.N; i++ {
		iter.Find(iter.FromSlice(benchItems), func(n int) bool { return n == 500 })
	}
}

func BenchmarkToSlice(b *testing.B) {
	for i := 0; i < b.N; i++ {
		iter.ToSlice(iter.FromSlice(benchItems))
	}
}

func BenchmarkRawLoop(b *testing.B) {
	// Baseline for the cost of the continuation plumbing.
	for i := 0; i < b.N; i++ {
		acc := 0
		for _, n := range benchItems {
			acc += n
		}
		_ = acc
	}
}
