package sequence

import (
	"context"
	"reflect"

	seqerrors "github.com/kbukum/seqkit/errors"
)

// CastTo narrows an untyped sequence to element type R. Elements are
// checked lazily as they are consumed: an element whose runtime type is not
// assignable to R fails that element's production with an invalid-cast
// error, while elements already produced remain valid.
func CastTo[R any](s *Sequence[any]) (*Sequence[R], error) {
	if err := requireSequence(s, "source"); err != nil {
		return nil, err
	}
	return &Sequence[R]{
		create: func(ctx context.Context) Iterator[R] {
			return &castIter[R]{source: s.create(ctx)}
		},
	}, nil
}

// AsAny widens a typed sequence into the untyped element domain, the usual
// input to CastTo. Round-tripping a sequence through AsAny and CastTo back
// to its element type yields the original elements unchanged.
func AsAny[T any](s *Sequence[T]) (*Sequence[any], error) {
	if err := requireSequence(s, "source"); err != nil {
		return nil, err
	}
	return &Sequence[any]{
		create: func(ctx context.Context) Iterator[any] {
			return &widenIter[T]{source: s.create(ctx)}
		},
	}, nil
}

type castIter[R any] struct {
	source Iterator[any]
	index  int
}

func (it *castIter[R]) Next(ctx context.Context) (R, bool, error) {
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		var zero R
		return zero, false, err
	}
	out, ok := val.(R)
	if !ok {
		var zero R
		return zero, false, seqerrors.CastFailed(it.index, typeName(val), reflect.TypeFor[R]().String())
	}
	it.index++
	return out, true, nil
}

func (it *castIter[R]) Close() error { return it.source.Close() }

type widenIter[T any] struct {
	source Iterator[T]
}

func (it *widenIter[T]) Next(ctx context.Context) (any, bool, error) {
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		return nil, false, err
	}
	return val, true, nil
}

func (it *widenIter[T]) Close() error { return it.source.Close() }

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}
