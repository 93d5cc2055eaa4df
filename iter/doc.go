// Package iter provides a lazy, continuation-style iteration primitive
// and a library of traversal and query algorithms written once against
// it.
//
// # The primitive
//
// [Iter][T] represents "the next element, or exhaustion" without
// committing to any element-storage strategy. Each call performs one
// step and invokes exactly one of two continuations; the hidden
// traversal state lives inside the closure. Sources are built with
// [New] from an (initial state, step function) pair, or with the
// convenience constructors [FromSlice], [Range], [Single], [Empty] and
// [FromSeq].
//
// # The algorithm library
//
// Every operation — folds ([Fold], [FoldWhile], [Reduce]), searches
// ([Find], [FindIndex], [Index], [Contains]), extrema ([FindMin],
// [FindMax]), quantifiers ([All], [Any]), aggregations ([Count], [Sum],
// [Product]), materialisation ([ToSlice], [ToSliceReversed]) and
// positional access ([Get], [First], [Second], [Last]) — is implemented
// here exactly once. Collection types obtain the whole suite through
// the iterable package by supplying a minimal adapter.
//
// Short-circuiting operations ([Find], [All], [Any], [FoldWhile] via
// [Stop], and [Product] on a zero element) halt the traversal and never
// visit the remaining elements.
//
// # Absence and failure
//
// Lookup-style operations report absence with a (value, bool) pair;
// the ...OrFail forms return sentinel errors instead. The library
// itself never fails: a caller-supplied predicate, comparator or
// equality that panics propagates unrecovered.
//
// # Equality and ordering defaults
//
// Value-based lookups ([Contains], [Index], [Indices]) use structural
// equality ([compare.Equal]); extrema use the natural ordering
// ([compare.Natural]). The ...By forms take explicit replacements.
package iter
