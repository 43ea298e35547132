// Package common defines sentinel errors and constants shared across the
// client layers. Callers match these values with errors.Is.
package common

import "errors"

var (
	// ErrValidation marks client-side form validation failures. Services wrap
	// it with a field-specific message before returning.
	ErrValidation = errors.New("validation error")

	// ErrNotAuthenticated is returned by operations that require an active
	// session when none is present.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrNotFound is returned when the backend reports a missing resource.
	ErrNotFound = errors.New("not found")
)
