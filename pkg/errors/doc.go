// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// All version construction failures carry one of a small closed set of
// error codes so callers can distinguish configuration errors (bad input)
// from internal invariant violations.
//
// Example usage:
//
//	err := errors.Newf(
//	    errors.ErrCodeRange,
//	    "major %d outside [0, %d]",
//	    major, maxMajor,
//	)
package errors
