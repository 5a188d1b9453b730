// Package apperror defines the application error taxonomy. Service layers
// return these instead of raising through the boundary; the HTTP layer maps
// each kind to a status code exhaustively.
package apperror

import (
	"errors"
	"net/http"
)

// Kind categorizes an application error.
type Kind int

const (
	// Validation is malformed or out-of-range input.
	Validation Kind = iota + 1
	// Unauthorized is a missing, invalid, or expired credential.
	Unauthorized
	// NotFound is a missing resource or an ownership mismatch.
	NotFound
	// Conflict is a uniqueness violation, e.g. duplicate email.
	Conflict
	// Internal is any unexpected failure.
	Internal
)

// Error carries a kind, a client-safe message, optional field/code detail
// for the response envelope, and the wrapped cause.
type Error struct {
	Kind    Kind
	Message string
	Field   string
	Code    string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// StatusCode maps the error kind to an HTTP status. The duplicate-email
// contract pins Conflict to 400.
func (e *Error) StatusCode() int {
	switch e.Kind {
	case Validation:
		return http.StatusBadRequest
	case Unauthorized:
		return http.StatusUnauthorized
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// WithDetail attaches a field/code pair surfaced in the envelope errors list.
func (e *Error) WithDetail(field, code string) *Error {
	e.Field = field
	e.Code = code
	return e
}

func NewValidation(message string) *Error {
	return &Error{Kind: Validation, Message: message}
}

func NewUnauthorized(message string) *Error {
	return &Error{Kind: Unauthorized, Message: message}
}

func NewNotFound(message string) *Error {
	return &Error{Kind: NotFound, Message: message}
}

func NewConflict(message string) *Error {
	return &Error{Kind: Conflict, Message: message}
}

func NewInternal(err error) *Error {
	return &Error{Kind: Internal, Message: "internal server error", Err: err}
}

// From extracts an *Error from err, wrapping anything else as Internal.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewInternal(err)
}
