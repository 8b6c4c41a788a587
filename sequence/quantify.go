package sequence

import (
	"context"
)

// ForAll reports whether every element of the sequence satisfies the
// predicate. An empty sequence is vacuously true. The sequence is consumed
// at most once; evaluation stops at the first failing element.
func ForAll[T any](ctx context.Context, s *Sequence[T], pred func(T) bool) (bool, error) {
	if err := requireSequence(s, "source"); err != nil {
		return false, err
	}
	if pred == nil {
		return false, nilArgument("predicate")
	}
	iter := s.create(ctx)
	defer iter.Close()
	for {
		val, ok, err := iter.Next(ctx)
		if err != nil {
			return false, err
		}
		if !ok {
			return true, nil
		}
		if !pred(val) {
			return false, nil
		}
	}
}

// Exists reports whether at least one element of the sequence satisfies the
// predicate. An empty sequence is false. Evaluation stops at the first
// satisfying element.
func Exists[T any](ctx context.Context, s *Sequence[T], pred func(T) bool) (bool, error) {
	if err := requireSequence(s, "source"); err != nil {
		return false, err
	}
	if pred == nil {
		return false, nilArgument("predicate")
	}
	iter := s.create(ctx)
	defer iter.Close()
	for {
		val, ok, err := iter.Next(ctx)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
		if pred(val) {
			return true, nil
		}
	}
}
