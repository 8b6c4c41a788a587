package sequence

import (
	"context"

	seqerrors "github.com/kbukum/seqkit/errors"
)

// Generate produces a restartable sequence of exactly count consecutive
// integers beginning at start. Each traversal yields the same deterministic
// sequence. A count of zero or less is an invalid-argument error; any
// start, including negative, is valid.
func Generate(count, start int) (*Sequence[int], error) {
	if count <= 0 {
		return nil, seqerrors.NonPositiveCount(count)
	}
	return &Sequence[int]{
		create: func(_ context.Context) Iterator[int] {
			return &rangeIter{count: count, start: start}
		},
	}, nil
}

type rangeIter struct {
	count int
	start int
	index int
}

func (it *rangeIter) Next(_ context.Context) (int, bool, error) {
	if it.index >= it.count {
		return 0, false, nil
	}
	val := it.start + it.index
	it.index++
	return val, true, nil
}

func (it *rangeIter) Close() error { return nil }
