// Package apierr defines the error taxonomy for the HTTP API and the echo
// error handler that renders it. Handlers and services return these errors;
// nothing else is allowed to reach the client.
package apierr

import (
	"fmt"
	"net/http"
)

// Error is an API error with a fixed status code and a single human-readable
// message, rendered as {"error": "..."}.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// NotFound is a 404 for a resource that is absent or not owned by the caller.
// The two cases are deliberately indistinguishable.
func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

// Unauthorized is a 401 with a generic message that must not reveal whether
// an account exists.
func Unauthorized(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

// Conflict is a 400 domain-rule violation with a specific message, distinct
// from field validation failure.
func Conflict(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

// FieldErrors collects per-field validation messages, rendered as a 400 with
// {"errors": {"field": ["msg", ...]}}.
type FieldErrors map[string][]string

func (f FieldErrors) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(f))
}

func (f FieldErrors) Add(field, message string) {
	f[field] = append(f[field], message)
}
