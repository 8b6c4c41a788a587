package sequence

import (
	seqerrors "github.com/kbukum/seqkit/errors"
)

// requireSequence reports an invalid-argument error when s is nil. Operators
// call this before constructing anything, so absent sources fail at call
// time rather than at traversal time.
func requireSequence[T any](s *Sequence[T], name string) error {
	if s == nil || s.create == nil {
		return seqerrors.NilArgument(name)
	}
	return nil
}

func nilArgument(name string) error {
	return seqerrors.NilArgument(name)
}
