package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error is the single failure value the gateway produces for HTTP and
// transport errors. Message is always display-ready: the backend's own
// message when it sent one, the transport error text otherwise.
type Error struct {
	// StatusCode is the HTTP status, or 0 for a transport failure.
	StatusCode int
	// Message is a human-readable description of the failure.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode == 0 {
		return e.Message
	}
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// IsUnauthorized reports whether the backend rejected the credential.
func (e *Error) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// transportError wraps a connectivity or timeout failure.
func transportError(err error) *Error {
	return &Error{Message: err.Error()}
}

// parseError builds an *Error from a non-2xx response, preferring the
// backend-supplied message over the raw body.
func parseError(statusCode int, body []byte) *Error {
	var payload struct {
		Message string `json:"message"`
		Err     string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return &Error{StatusCode: statusCode, Message: payload.Message}
		}
		if payload.Err != "" {
			return &Error{StatusCode: statusCode, Message: payload.Err}
		}
	}
	if msg := strings.TrimSpace(string(body)); msg != "" {
		return &Error{StatusCode: statusCode, Message: msg}
	}
	return &Error{StatusCode: statusCode, Message: http.StatusText(statusCode)}
}

// AsError extracts an *Error from err, if it carries one.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// Message returns a user-facing message for any error coming out of the
// gateway.
func Message(err error) string {
	if apiErr, ok := AsError(err); ok {
		return apiErr.Message
	}
	return err.Error()
}
