// Package sequence provides composable, lazily-evaluated operators over
// generic pull-based sequences.
//
// A Sequence is a restartable factory of iterators: no element is produced
// until the result is traversed via Collect, ForEach, or a quantifier, and
// each traversal acquires a fresh iterator, so the same Sequence can be
// consumed repeatedly with identical results (given a restartable source).
//
// Required inputs are validated eagerly at call time: every operator checks
// its source and closures before constructing anything, and reports an
// invalid-argument error from seqkit/errors immediately. Traversal itself
// stays lazy.
//
// # Operators
//
// Lazy (element-at-a-time):
//
//   - Filter: keep elements matching a predicate
//   - Transform: map each element through a pure function
//   - CastTo: narrow an untyped sequence element-by-element
//   - Take, Skip: prefix and suffix truncation
//   - Concat: join sequences end to end
//   - Tap: side-effect without altering the element
//
// Eagerly materializing (source fully drained before the first element of
// the result is produced, output still yielded one element at a time):
//
//   - SortBy, SortByDescending: stable reorder by derived key, natural order
//   - SortByComparer, SortByDescendingComparer: stable reorder, explicit comparer
//   - SortByNatural, SortByNaturalDescending: runtime natural-order resolution
//   - Reduce: fold to a single-element sequence
//
// Terminal (consume the sequence):
//
//   - Collect, ForEach, Drain, Count, First
//   - ForAll, Exists: quantifiers
//
// Sources:
//
//   - FromSlice, From, FromFunc, Generate
//
// # Usage
//
//	src := sequence.FromSlice([]int{3, 1, 4, 1, 5})
//	evens, err := sequence.Filter(src, func(n int) bool { return n%2 == 0 })
//	if err != nil {
//	    return err
//	}
//	sorted, err := sequence.SortBy(evens, func(n int) int { return n })
//	if err != nil {
//	    return err
//	}
//	out, err := sequence.Collect(ctx, sorted)
package sequence
