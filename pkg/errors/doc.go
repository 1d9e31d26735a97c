// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.New(
//	    errors.ErrCodeUnknownReference,
//	    fmt.Sprintf("required item %q does not exist in the cookbook", name),
//	)
package errors
