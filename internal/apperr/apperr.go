// Package apperr carries the request-scoped error taxonomy. Every failure a
// handler can surface maps to one of these values; anything else is a 500.
package apperr

import "net/http"

type Error struct {
	Status  int
	Message string
	Details []string
}

func (e *Error) Error() string { return e.Message }

func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

func BadRequest(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

// Validation reports schema-level input failures with one entry per field.
func Validation(details []string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: "Validation failed", Details: details}
}
