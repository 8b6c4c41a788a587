package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Argument errors (raised synchronously, before any traversal begins)
const (
	// ErrCodeInvalidArgument indicates a required input was absent or out of range.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
)

// Configuration errors
const (
	// ErrCodeInvalidConfiguration indicates no natural ordering exists for a
	// key type and no explicit comparer was supplied.
	ErrCodeInvalidConfiguration ErrorCode = "INVALID_CONFIGURATION"
)

// Element errors (raised lazily, while a produced sequence is consumed)
const (
	// ErrCodeInvalidCast indicates an element's runtime type could not be
	// converted to the requested result type.
	ErrCodeInvalidCast ErrorCode = "INVALID_CAST"
)
