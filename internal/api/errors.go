package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a non-2xx backend response.
type Error struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
	}

	return fmt.Sprintf("backend returned %d", e.StatusCode)
}

// IsUnauthorized reports whether err is a 401 backend response.
func IsUnauthorized(err error) bool {
	var apiErr *Error

	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// IsNotFound reports whether err is a 404 backend response.
func IsNotFound(err error) bool {
	var apiErr *Error

	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
