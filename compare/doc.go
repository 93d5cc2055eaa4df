// Package compare supplies the comparison capability consumed by the
// traversal packages: a three-way comparator type, an equality predicate
// type, and the documented defaults for both.
//
// # Defaults
//
// The library-wide defaults are explicit values, never implicit
// overloads:
//
//   - [Natural] — the natural ordering of any ordered type.
//   - [Equal]   — structural equality via ==.
//
// Operations in the iter package that accept a comparator or equality
// come in two forms: a value-based form that uses these defaults, and a
// ...By form taking an explicit [Func] or [Equality].
//
// # Deriving comparators
//
//	byLen := compare.By(func(s string) int { return len(s) }, compare.Natural[int])
//	desc  := compare.Reverse(byLen)
package compare
