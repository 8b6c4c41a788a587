package sequence

import (
	"context"
)

// Iterator provides pull-based sequential access to the elements of a
// sequence.
type Iterator[T any] interface {
	// Next returns the next element. Returns (zero, false, nil) when exhausted.
	Next(ctx context.Context) (T, bool, error)
	// Close releases any resources held by the iterator.
	Close() error
}

// Sequence represents a lazy, restartable sequence of elements.
// No work happens until elements are pulled; each traversal acquires a
// fresh iterator from the factory.
type Sequence[T any] struct {
	create func(ctx context.Context) Iterator[T]
}

// Runnable is a fully-configured traversal ready to execute.
type Runnable struct {
	run func(ctx context.Context) error
}

// Run executes the traversal until completion or context cancellation.
func (r *Runnable) Run(ctx context.Context) error {
	return r.run(ctx)
}

// --- Constructors ---

// From creates a sequence from an existing Iterator. The result is only as
// restartable as the iterator itself: a second traversal resumes where the
// first stopped.
func From[T any](iter Iterator[T]) *Sequence[T] {
	return &Sequence[T]{
		create: func(_ context.Context) Iterator[T] {
			return iter
		},
	}
}

// FromSlice creates a restartable sequence over a slice. The slice is not
// copied; the caller must not mutate it during traversal.
func FromSlice[T any](items []T) *Sequence[T] {
	return &Sequence[T]{
		create: func(_ context.Context) Iterator[T] {
			return &sliceIter[T]{items: items}
		},
	}
}

// FromFunc creates a sequence from a factory that produces an Iterator.
func FromFunc[T any](fn func(ctx context.Context) Iterator[T]) *Sequence[T] {
	return &Sequence[T]{create: fn}
}

// --- Terminals ---

// Collect traverses the sequence and returns all elements as a slice.
func Collect[T any](ctx context.Context, s *Sequence[T]) ([]T, error) {
	if err := requireSequence(s, "source"); err != nil {
		return nil, err
	}
	iter := s.create(ctx)
	defer iter.Close()
	var result []T
	for {
		val, ok, err := iter.Next(ctx)
		if err != nil {
			return result, err
		}
		if !ok {
			return result, nil
		}
		result = append(result, val)
	}
}

// Drain creates a Runnable that pulls all elements and sends each to sink.
func Drain[T any](s *Sequence[T], sink func(context.Context, T) error) (*Runnable, error) {
	if err := requireSequence(s, "source"); err != nil {
		return nil, err
	}
	if sink == nil {
		return nil, nilArgument("sink")
	}
	return &Runnable{
		run: func(ctx context.Context) error {
			iter := s.create(ctx)
			defer iter.Close()
			for {
				val, ok, err := iter.Next(ctx)
				if err != nil {
					return err
				}
				if !ok {
					return nil
				}
				if err := sink(ctx, val); err != nil {
					return err
				}
			}
		},
	}, nil
}

// ForEach pulls all elements and calls fn for each. Convenience wrapper
// around Drain.
func ForEach[T any](ctx context.Context, s *Sequence[T], fn func(context.Context, T) error) error {
	r, err := Drain(s, fn)
	if err != nil {
		return err
	}
	return r.Run(ctx)
}

// Count traverses the sequence and returns the number of elements.
func Count[T any](ctx context.Context, s *Sequence[T]) (int, error) {
	if err := requireSequence(s, "source"); err != nil {
		return 0, err
	}
	iter := s.create(ctx)
	defer iter.Close()
	var count int
	for {
		_, ok, err := iter.Next(ctx)
		if err != nil {
			return 0, err
		}
		if !ok {
			return count, nil
		}
		count++
	}
}

// First returns the first element of the sequence, or ok=false if the
// sequence is empty. Only the first element is produced.
func First[T any](ctx context.Context, s *Sequence[T]) (T, bool, error) {
	var zero T
	if err := requireSequence(s, "source"); err != nil {
		return zero, false, err
	}
	iter := s.create(ctx)
	defer iter.Close()
	return iter.Next(ctx)
}

// Iter returns a raw Iterator for this sequence. The caller must Close() it.
func (s *Sequence[T]) Iter(ctx context.Context) Iterator[T] {
	return s.create(ctx)
}

// --- Internal iterators ---

type sliceIter[T any] struct {
	items []T
	index int
}

func (it *sliceIter[T]) Next(_ context.Context) (T, bool, error) {
	if it.index >= len(it.items) {
		var zero T
		return zero, false, nil
	}
	val := it.items[it.index]
	it.index++
	return val, true, nil
}

func (it *sliceIter[T]) Close() error { return nil }
