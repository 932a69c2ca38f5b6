// Package apperr defines the closed set of request-outcome errors and their
// mapping to HTTP status codes. Handlers and repositories only ever fail
// with one of these kinds; the transport boundary renders them.
package apperr

import (
	"fmt"
	"net/http"
)

// Kind classifies a request failure.
type Kind int

const (
	// KindValidation means the payload failed structural validation.
	KindValidation Kind = iota
	// KindBadRequest covers malformed input and failed preconditions.
	KindBadRequest
	// KindNotFound means the addressed resource does not exist.
	KindNotFound
	// KindConflict means the request collides with existing state.
	KindConflict
	// KindStorage wraps any persistence-layer fault.
	KindStorage
	// KindInternal is any other server-side failure.
	KindInternal
)

// Error is the single error type crossing layer boundaries.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Status returns the HTTP status code this error renders as.
func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation, KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the message safe to put on the wire. Storage and
// internal errors never leak their cause to clients.
func (e *Error) PublicMessage() string {
	if e.Status() == http.StatusInternalServerError {
		return "Internal server error"
	}
	return e.Message
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: "Validation error: " + message}
}

func BadRequest(format string, args ...any) *Error {
	return &Error{Kind: KindBadRequest, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func Storage(err error) *Error {
	return &Error{Kind: KindStorage, Message: "Database error", Err: err}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "Internal error", Err: err}
}
