// Package errors provides the coded error type used by seqkit operators.
// It implements structured errors with machine-readable codes for
// argument validation, ordering configuration, and element casts.
package errors
