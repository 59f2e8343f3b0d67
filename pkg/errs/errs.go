// Package errs classifies the failures a request pipeline can produce.
//
// Every rejection is an *Error carrying a Kind and the human-readable message
// returned to the client. The kind decides the HTTP status; errors.Is matches
// the kind's sentinel so callers never need to inspect the message.
package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is the classification of a rejected request.
type Kind int

const (
	// KindBadRequest marks a payload that broke a validation or business rule.
	KindBadRequest Kind = iota + 1
	// KindNotFound marks a route identifier that matches no record.
	KindNotFound
)

var (
	ErrBadRequest = errors.New("bad request")
	ErrNotFound   = errors.New("not found")
)

// Error is a recoverable rejection of a single request.
type Error struct {
	Kind    Kind
	Message string
}

// BadRequest returns a KindBadRequest error with a formatted message.
func BadRequest(format string, args ...any) *Error {
	return &Error{Kind: KindBadRequest, Message: fmt.Sprintf(format, args...)}
}

// NotFound returns a KindNotFound error with a formatted message.
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the sentinel for the error's kind.
func (e *Error) Unwrap() error {
	switch e.Kind {
	case KindNotFound:
		return ErrNotFound
	case KindBadRequest:
		return ErrBadRequest
	default:
		return nil
	}
}

// Status is the HTTP status code for the error's kind.
func (e *Error) Status() int {
	if e.Kind == KindNotFound {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

// Status maps any error to an HTTP status. Errors that are not *Error are
// internal failures.
func Status(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status()
	}
	return http.StatusInternalServerError
}
