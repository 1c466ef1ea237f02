package apperror

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

type Kind string

const (
	KindValidation        Kind = "validation"
	KindNotFound          Kind = "not_found"
	KindSlotConflict      Kind = "slot_conflict"
	KindInvalidTransition Kind = "invalid_status_transition"
	KindTransient         Kind = "transient"
	KindUpstream          Kind = "upstream"
	KindInternal          Kind = "internal"
)

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the typed error every layer returns to the HTTP adaptor.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Fields  []FieldError
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

// Retryable reports whether the client may retry the same request.
func (e *Error) Retryable() bool {
	return e.Kind == KindTransient
}

func New(kind Kind, status int, message string) *Error {
	return &Error{Kind: kind, Status: status, Message: message}
}

func Validation(fields ...FieldError) *Error {
	return &Error{
		Kind:    KindValidation,
		Status:  http.StatusBadRequest,
		Message: "Validation failed",
		Fields:  fields,
	}
}

// InvalidField is a shorthand for a validation error on a single field.
func InvalidField(field, message string) *Error {
	return Validation(FieldError{Field: field, Message: message})
}

func NotFound(message string) *Error {
	return New(KindNotFound, http.StatusNotFound, message)
}

func SlotConflict(message string) *Error {
	return New(KindSlotConflict, http.StatusConflict, message)
}

func InvalidTransition(message string) *Error {
	return New(KindInvalidTransition, http.StatusConflict, message)
}

func Transient(message string, err error) *Error {
	return &Error{Kind: KindTransient, Status: http.StatusServiceUnavailable, Message: message, Err: err}
}

func Upstream(message string, err error) *Error {
	return &Error{Kind: KindUpstream, Status: http.StatusBadGateway, Message: message, Err: err}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Status: http.StatusInternalServerError, Message: "Server error", Err: err}
}

// From converts any error into an *Error. Typed errors pass through,
// timeouts and connection failures become Transient and everything else
// becomes Internal.
func From(err error) *Error {
	if err == nil {
		return nil
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}

	if IsTransient(err) {
		return Transient("Storage temporarily unavailable, please retry", err)
	}

	return Internal(err)
}

// IsTransient reports whether err is a deadline, cancellation or connection
// level failure.
func IsTransient(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	if pgconn.Timeout(err) {
		return true
	}

	var connectErr *pgconn.ConnectError
	return errors.As(err, &connectErr)
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}
