// Package iterable mechanically derives the full traversal and query
// operation suite for any container type from a minimal adapter.
//
// # The adapter
//
// A container type participates by supplying a [Base]: an initial
// traversal state and a step function. That is the only requirement —
// everything else is derived:
//
//	type cons struct {
//	    head int
//	    tail *cons
//	}
//
//	var conses = iterable.Derive(iterable.Base[*cons, *cons, int]{
//	    Init: func(l *cons) *cons { return l },
//	    Step: func(_ *cons, s *cons, onItem func(int, *cons), onEnd func()) {
//	        if s == nil {
//	            onEnd()
//	            return
//	        }
//	        onItem(s.head, s.tail)
//	    },
//	})
//
//	conses.Length(l)
//	iterable.Sum(conses, l)
//
// # One derivation, any element shape
//
// The element type is an ordinary type parameter of [Base], so a single
// parametric derivation covers containers with a free element type and
// containers whose element type is fixed (a byte buffer, say) alike.
// The adapt package holds ready-made adapters for slices, strings and
// several third-party container libraries.
//
// # Method/function split
//
// Operations that mention only C, S and T are methods on [Iterable];
// operations needing a fresh or constrained type parameter are
// package-level functions taking the derivation as their first
// argument. The split follows the language rule that methods cannot
// introduce type parameters.
package iterable
