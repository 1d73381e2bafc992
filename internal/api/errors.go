package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a failure reported by the backend, either through a non-2xx
// status or an envelope with success=false.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// ErrInvalidResponse indicates the backend answered with a body that is
// not a well-formed response envelope.
type ErrInvalidResponse struct {
	Body []byte
	Err  error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid API response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }
