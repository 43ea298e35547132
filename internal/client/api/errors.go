package api

import (
	"errors"
	"fmt"
)

// HTTPError is a non-2xx response from the backend. The status code is
// preserved so callers can branch on it (401 bad credentials, 5xx server
// down) without this layer guessing intent.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// IsStatus reports whether err (or anything it wraps) is an HTTPError with
// the given status code.
func IsStatus(err error, code int) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == code
	}
	return false
}
