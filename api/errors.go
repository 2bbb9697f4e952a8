package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnauthorized sits beneath every 401 error so callers can test
// with errors.Is regardless of the server message.
var ErrUnauthorized = errors.New("unauthorized")

// Error is a backend rejection: a 4xx or 5xx status with the message
// the server embedded in its response envelope. Network and timeout
// failures are returned as wrapped transport errors instead.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %d: %s", e.StatusCode, e.Message)
}

func (e *Error) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}

// ValidationError is raised before any network call when a required
// field is missing.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Message
}

func validationErr(msg string) error {
	return &ValidationError{Message: msg}
}
