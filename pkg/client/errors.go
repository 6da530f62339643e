package client

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a failure reported by the server in the response envelope.
type Error struct {
	Status  int    `json:"-"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
	ID      *int64 `json:"id,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Tag, e.Status, e.Message)
}

// IsNotFound reports whether err is a server-side not-found error.
func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Status == http.StatusNotFound
}

// IsValidation reports whether the server rejected the request payload.
func IsValidation(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Tag == "ValidationError"
}

// IsRateLimited reports whether the server throttled the call.
func IsRateLimited(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Status == http.StatusTooManyRequests
}
