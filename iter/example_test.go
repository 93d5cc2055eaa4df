package iter_test

import (
	"fmt"

	"github.com/rizo/proto/iter"
)

func ExampleFromSlice() {
	src := iter.FromSlice([]int{1, 2, 3, 4, 5})
	fmt.Println(iter.Length(src), iter.Sum(src))
	// Output: 5 15
}

func ExampleFoldWhile() {
	sum := iter.FoldWhile(iter.FromSlice([]int{1, 2, 3, 4}), 0, func(acc, n int) iter.Step[int] {
		if n > 3 {
			return iter.Stop(acc)
		}
		return iter.Continue(acc + n)
	})
	fmt.Println(sum)
	// Output: 6
}

func ExampleIndex() {
	letters := iter.FromSlice([]string{"a", "b", "c", "d", "e"})
	i, ok := iter.Index(letters, "b")
	fmt.Println(i, ok)
	_, ok = iter.Index(letters, "x")
	fmt.Println(ok)
	// Output:
	// 1 true
	// false
}

func ExampleProduct() {
	fmt.Println(iter.Product(iter.FromSlice([]int{2, 3, 4})))
	fmt.Println(iter.Product(iter.Empty[int]()))
	// Output:
	// 24
	// 1
}

func ExampleNew() {
	// Odd numbers below ten, from a bare (state, step) pair.
	odds := iter.New(1, func(n int, onItem func(int, int), onEnd func()) {
		if n >= 10 {
			onEnd()
			return
		}
		onItem(n, n+2)
	})
	fmt.Println(iter.ToSlice(odds))
	// Output: [1 3 5 7 9]
}

func ExampleIter_Seq() {
	for n := range iter.Range(0, 4).Seq() {
		fmt.Println(n)
	}
	// Output:
	// 0
	// 1
	// 2
	// 3
}
