// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.NewWithContext(
//	    errors.ErrCodeBumpTarget,
//	    "index out of range for section core",
//	    map[string]interface{}{
//	        "section": "core",
//	        "index":   5,
//	    },
//	)
package errors
