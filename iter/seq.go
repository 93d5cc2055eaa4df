package iter

import stditer "iter"

// FromSeq adapts a standard range-over-func sequence into an Iter.
//
// The sequence is pulled lazily; each traversal step is taken at most
// once and memoised, so the returned Iter (and every successor it
// yields) remains a stable, re-steppable value even though the
// underlying pull iterator is single-use. As with any Iter, a finite
// sequence is required.
func FromSeq[T any](seq stditer.Seq[T]) Iter[T] {
	next, _ := stditer.Pull(seq)
	return fromPull(next)
}

func fromPull[T any](next func() (T, bool)) Iter[T] {
	var (
		stepped bool
		item    T
		ok      bool
		tail    Iter[T]
	)
	return func(onItem func(T, Iter[T]), onEnd func()) {
		if !stepped {
			item, ok = next()
			if ok {
				tail = fromPull(next)
			}
			stepped = true
		}
		if ok {
			onItem(item, tail)
		} else {
			onEnd()
		}
	}
}

// Seq exposes the Iter as a standard range-over-func sequence:
//
//	for n := range iter.Range(0, 10).Seq() {
//	    fmt.Println(n)
//	}
func (it Iter[T]) Seq() stditer.Seq[T] {
	return func(yield func(T) bool) {
		for item, next, ok := it.Next(); ok; item, next, ok = next.Next() {
			if !yield(item) {
				return
			}
		}
	}
}
