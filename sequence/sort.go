package sequence

import (
	"cmp"
	"context"
	"slices"
)

// SortBy returns a sequence with the elements of s reordered so the keys
// extracted by key are non-decreasing in the key type's natural order.
// The sort is stable: elements with equal keys keep their original relative
// order. The key extractor is invoked once per element per traversal.
//
// Unlike the lazy operators, traversing the result drains the source fully
// (exactly once) before the first element is produced; output is still
// yielded element-by-element.
func SortBy[T any, K cmp.Ordered](s *Sequence[T], key func(T) K) (*Sequence[T], error) {
	return sortBy(s, key, cmp.Compare[K], false)
}

// SortByDescending is SortBy with the key order reversed. Stability is
// preserved: elements with equal keys keep their original relative order.
func SortByDescending[T any, K cmp.Ordered](s *Sequence[T], key func(T) K) (*Sequence[T], error) {
	return sortBy(s, key, cmp.Compare[K], true)
}

// SortByComparer is SortBy with an explicit comparer over the key type. The
// supplied comparer is used for all comparisons.
func SortByComparer[T, K any](s *Sequence[T], key func(T) K, comparer func(K, K) int) (*Sequence[T], error) {
	if comparer == nil {
		return nil, nilArgument("comparer")
	}
	return sortBy(s, key, comparer, false)
}

// SortByDescendingComparer is SortByDescending with an explicit comparer
// over the key type.
func SortByDescendingComparer[T, K any](s *Sequence[T], key func(T) K, comparer func(K, K) int) (*Sequence[T], error) {
	if comparer == nil {
		return nil, nilArgument("comparer")
	}
	return sortBy(s, key, comparer, true)
}

// SortByNatural is SortBy for key types that are comparable but not
// statically ordered. The natural order is resolved from K's runtime kind;
// if K has no natural ordering the call fails with an invalid-configuration
// error directing the caller to SortByComparer.
func SortByNatural[T any, K comparable](s *Sequence[T], key func(T) K) (*Sequence[T], error) {
	comparer, err := DefaultComparer[K]()
	if err != nil {
		return nil, err
	}
	return sortBy(s, key, comparer, false)
}

// SortByNaturalDescending is SortByNatural with the key order reversed.
func SortByNaturalDescending[T any, K comparable](s *Sequence[T], key func(T) K) (*Sequence[T], error) {
	comparer, err := DefaultComparer[K]()
	if err != nil {
		return nil, err
	}
	return sortBy(s, key, comparer, true)
}

func sortBy[T, K any](s *Sequence[T], key func(T) K, comparer func(K, K) int, desc bool) (*Sequence[T], error) {
	if err := requireSequence(s, "source"); err != nil {
		return nil, err
	}
	if key == nil {
		return nil, nilArgument("keyExtractor")
	}
	return &Sequence[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &sortIter[T, K]{source: s.create(ctx), key: key, comparer: comparer, desc: desc}
		},
	}, nil
}

// keyed pairs an element with its extracted key so the extractor runs once
// per element.
type keyed[T, K any] struct {
	elem T
	key  K
}

type sortIter[T, K any] struct {
	source   Iterator[T]
	key      func(T) K
	comparer func(K, K) int
	desc     bool
	sorted   []T
	index    int
	loaded   bool
}

func (it *sortIter[T, K]) Next(ctx context.Context) (T, bool, error) {
	if !it.loaded {
		if err := it.load(ctx); err != nil {
			var zero T
			return zero, false, err
		}
	}
	if it.index >= len(it.sorted) {
		var zero T
		return zero, false, nil
	}
	val := it.sorted[it.index]
	it.index++
	return val, true, nil
}

func (it *sortIter[T, K]) load(ctx context.Context) error {
	var pairs []keyed[T, K]
	for {
		val, ok, err := it.source.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		pairs = append(pairs, keyed[T, K]{elem: val, key: it.key(val)})
	}
	// Flipping the comparer operands (rather than reversing the slice)
	// keeps the descending sort stable.
	slices.SortStableFunc(pairs, func(a, b keyed[T, K]) int {
		if it.desc {
			return it.comparer(b.key, a.key)
		}
		return it.comparer(a.key, b.key)
	})
	it.sorted = make([]T, len(pairs))
	for i, p := range pairs {
		it.sorted[i] = p.elem
	}
	it.loaded = true
	return nil
}

func (it *sortIter[T, K]) Close() error { return it.source.Close() }
