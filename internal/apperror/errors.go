// Package apperror defines the error kinds surfaced at the API boundary.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	// KindValidation marks malformed client input. Never retried.
	KindValidation Kind = "validation_error"
	// KindBackend marks transport failures, non-2xx statuses and unreadable
	// payloads from the search backend or the AI endpoint.
	KindBackend Kind = "backend_error"
	// KindParse marks a well-formed backend payload missing a structural field.
	KindParse Kind = "parse_error"
	// KindInternal marks states that prior validation should have ruled out.
	KindInternal Kind = "internal_error"
)

// Error carries a stable kind tag alongside a human-readable message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the kind to the status code written by the controllers.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindBackend:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func Validationf(format string, args ...interface{}) *Error {
	return Validation(fmt.Sprintf(format, args...))
}

func Backend(message string, err error) *Error {
	return &Error{Kind: KindBackend, Message: message, Err: err}
}

func Parse(message string) *Error {
	return &Error{Kind: KindParse, Message: message}
}

func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf reports the kind of err, treating untagged errors as internal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// StatusOf reports the HTTP status for err.
func StatusOf(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.HTTPStatus()
	}
	return http.StatusInternalServerError
}

// MessageOf returns the client-facing message for err.
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "internal server error"
}
