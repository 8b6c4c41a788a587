package errors

import (
	"fmt"
)

// Error is the unified seqkit error type.
type Error struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *Error) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new Error with the given code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// --- Common Error Constructors ---

// NilArgument creates a new Error for a required input that was absent.
// The param is the name of the offending parameter.
func NilArgument(param string) *Error {
	return &Error{
		Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("Required argument %q must not be nil.", param),
		Details: map[string]any{"param": param},
	}
}

// NonPositiveCount creates a new Error for a generator count that is not
// strictly positive.
func NonPositiveCount(count int) *Error {
	return &Error{
		Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("Count must be greater than zero (got: %d).", count),
		Details: map[string]any{"count": count},
	}
}

// NoNaturalOrder creates a new Error for a key type with no natural ordering.
// The message instructs the caller to supply a comparer explicitly.
func NoNaturalOrder(keyType string) *Error {
	return &Error{
		Code: ErrCodeInvalidConfiguration, Message: fmt.Sprintf("Type %s has no natural ordering. Supply an explicit comparer.", keyType),
		Details: map[string]any{"key_type": keyType},
	}
}

// CastFailed creates a new Error for an element whose runtime type is
// incompatible with the requested result type.
func CastFailed(index int, from, to string) *Error {
	return &Error{
		Code: ErrCodeInvalidCast, Message: fmt.Sprintf("Cannot cast element %d of type %s to %s.", index, from, to),
		Details: map[string]any{"index": index, "from": from, "to": to},
	}
}
