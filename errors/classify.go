package errors

import (
	stderrors "errors"
)

// CodeOf returns the error code carried by err, or the empty code if err is
// not a seqkit Error.
func CodeOf(err error) ErrorCode {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsInvalidArgument checks if an error is an argument-validation failure.
func IsInvalidArgument(err error) bool {
	return CodeOf(err) == ErrCodeInvalidArgument
}

// IsInvalidConfiguration checks if an error is a missing-ordering failure.
func IsInvalidConfiguration(err error) bool {
	return CodeOf(err) == ErrCodeInvalidConfiguration
}

// IsInvalidCast checks if an error is a per-element cast failure.
func IsInvalidCast(err error) bool {
	return CodeOf(err) == ErrCodeInvalidCast
}

// AsError converts an error to a seqkit Error if possible.
func AsError(err error) (*Error, bool) {
	var e *Error
	if stderrors.As(err, &e) {
		return e, true
	}
	return nil, false
}
