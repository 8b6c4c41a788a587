package sequence

import (
	"context"
)

// Filter keeps only the elements that satisfy the predicate, in their
// original relative order. The predicate is not invoked until the result is
// traversed; each element is visited exactly once per full traversal.
func Filter[T any](s *Sequence[T], pred func(T) bool) (*Sequence[T], error) {
	if err := requireSequence(s, "source"); err != nil {
		return nil, err
	}
	if pred == nil {
		return nil, nilArgument("predicate")
	}
	return &Sequence[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &filterIter[T]{source: s.create(ctx), pred: pred}
		},
	}, nil
}

// Transform maps each element through fn, preserving order and cardinality.
// Application of fn is deferred per element until consumption.
func Transform[I, O any](s *Sequence[I], fn func(I) O) (*Sequence[O], error) {
	if err := requireSequence(s, "source"); err != nil {
		return nil, err
	}
	if fn == nil {
		return nil, nilArgument("transformer")
	}
	return &Sequence[O]{
		create: func(ctx context.Context) Iterator[O] {
			return &transformIter[I, O]{source: s.create(ctx), fn: fn}
		},
	}, nil
}

// Take limits the sequence to its first n elements. A non-positive n yields
// an empty sequence.
func Take[T any](s *Sequence[T], n int) (*Sequence[T], error) {
	if err := requireSequence(s, "source"); err != nil {
		return nil, err
	}
	return &Sequence[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &takeIter[T]{source: s.create(ctx), limit: n}
		},
	}, nil
}

// Skip drops the first n elements of the sequence. A non-positive n leaves
// the sequence unchanged.
func Skip[T any](s *Sequence[T], n int) (*Sequence[T], error) {
	if err := requireSequence(s, "source"); err != nil {
		return nil, err
	}
	return &Sequence[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &skipIter[T]{source: s.create(ctx), skip: n}
		},
	}, nil
}

// Concat joins multiple sequences sequentially. All elements from the first
// sequence are yielded before the second, etc.
func Concat[T any](seqs ...*Sequence[T]) (*Sequence[T], error) {
	for _, s := range seqs {
		if err := requireSequence(s, "source"); err != nil {
			return nil, err
		}
	}
	sources := seqs
	return &Sequence[T]{
		create: func(ctx context.Context) Iterator[T] {
			iters := make([]Iterator[T], len(sources))
			for i, s := range sources {
				iters[i] = s.create(ctx)
			}
			return &concatIter[T]{iters: iters}
		},
	}, nil
}

// Reduce accumulates all elements into a single result. The returned
// sequence yields exactly one element: the final accumulator.
func Reduce[T, R any](s *Sequence[T], init R, fn func(R, T) R) (*Sequence[R], error) {
	if err := requireSequence(s, "source"); err != nil {
		return nil, err
	}
	if fn == nil {
		return nil, nilArgument("reducer")
	}
	return &Sequence[R]{
		create: func(ctx context.Context) Iterator[R] {
			return &reduceIter[T, R]{source: s.create(ctx), acc: init, fn: fn}
		},
	}, nil
}

// Tap calls fn as a side-effect for each element, then passes the element
// through unchanged. Use for logging, metrics, or debugging taps.
func Tap[T any](s *Sequence[T], fn func(context.Context, T) error) (*Sequence[T], error) {
	if err := requireSequence(s, "source"); err != nil {
		return nil, err
	}
	if fn == nil {
		return nil, nilArgument("fn")
	}
	return &Sequence[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &tapIter[T]{source: s.create(ctx), fn: fn}
		},
	}, nil
}

// --- Iterator implementations ---

type filterIter[T any] struct {
	source Iterator[T]
	pred   func(T) bool
}

func (it *filterIter[T]) Next(ctx context.Context) (T, bool, error) {
	for {
		val, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			return val, false, err
		}
		if it.pred(val) {
			return val, true, nil
		}
	}
}

func (it *filterIter[T]) Close() error { return it.source.Close() }

type transformIter[I, O any] struct {
	source Iterator[I]
	fn     func(I) O
}

func (it *transformIter[I, O]) Next(ctx context.Context) (O, bool, error) {
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		var zero O
		return zero, false, err
	}
	return it.fn(val), true, nil
}

func (it *transformIter[I, O]) Close() error { return it.source.Close() }

type takeIter[T any] struct {
	source Iterator[T]
	limit  int
	seen   int
}

func (it *takeIter[T]) Next(ctx context.Context) (T, bool, error) {
	if it.seen >= it.limit {
		var zero T
		return zero, false, nil
	}
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		var zero T
		return zero, false, err
	}
	it.seen++
	return val, true, nil
}

func (it *takeIter[T]) Close() error { return it.source.Close() }

type skipIter[T any] struct {
	source  Iterator[T]
	skip    int
	skipped int
}

func (it *skipIter[T]) Next(ctx context.Context) (T, bool, error) {
	for it.skipped < it.skip {
		_, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			var zero T
			return zero, false, err
		}
		it.skipped++
	}
	return it.source.Next(ctx)
}

func (it *skipIter[T]) Close() error { return it.source.Close() }

type concatIter[T any] struct {
	iters []Iterator[T]
	index int
}

func (it *concatIter[T]) Next(ctx context.Context) (T, bool, error) {
	for it.index < len(it.iters) {
		val, ok, err := it.iters[it.index].Next(ctx)
		if err != nil {
			return val, false, err
		}
		if ok {
			return val, true, nil
		}
		it.index++
	}
	var zero T
	return zero, false, nil
}

func (it *concatIter[T]) Close() error {
	var firstErr error
	for _, iter := range it.iters {
		if err := iter.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

type reduceIter[T, R any] struct {
	source Iterator[T]
	acc    R
	fn     func(R, T) R
	done   bool
}

func (it *reduceIter[T, R]) Next(ctx context.Context) (R, bool, error) {
	if it.done {
		var zero R
		return zero, false, nil
	}
	for {
		val, ok, err := it.source.Next(ctx)
		if err != nil {
			var zero R
			return zero, false, err
		}
		if !ok {
			it.done = true
			return it.acc, true, nil
		}
		it.acc = it.fn(it.acc, val)
	}
}

func (it *reduceIter[T, R]) Close() error { return it.source.Close() }

type tapIter[T any] struct {
	source Iterator[T]
	fn     func(context.Context, T) error
}

func (it *tapIter[T]) Next(ctx context.Context) (T, bool, error) {
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		return val, ok, err
	}
	if err := it.fn(ctx, val); err != nil {
		var zero T
		return zero, false, err
	}
	return val, true, nil
}

func (it *tapIter[T]) Close() error { return it.source.Close() }
