package apperror

import (
	stderrors "errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

// ErrorCode classifies an application error.
type ErrorCode string

const (
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrValidation   ErrorCode = "VALIDATION_ERROR"
	ErrUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrForbidden    ErrorCode = "FORBIDDEN"
	ErrConflict     ErrorCode = "CONFLICT"
	ErrUpstream     ErrorCode = "UPSTREAM_ERROR"
	ErrInternal     ErrorCode = "INTERNAL_ERROR"
)

// Error is the error type returned by services and rendered by the HTTP error middleware.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Cause   error     `json:"-"`
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches on code so errors.Is(err, apperror.New(ErrNotFound, "")) works.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// Status returns the HTTP status for the error code.
func (e *Error) Status() int {
	return HTTPStatus(e.Code)
}

func New(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a cause with a stack trace.
func Wrap(err error, code ErrorCode, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, Cause: errors.WithStack(err)}
}

func NotFound(message string) *Error     { return New(ErrNotFound, message) }
func Validation(message string) *Error   { return New(ErrValidation, message) }
func Unauthorized(message string) *Error { return New(ErrUnauthorized, message) }
func Forbidden(message string) *Error    { return New(ErrForbidden, message) }
func Conflict(message string) *Error     { return New(ErrConflict, message) }

// Upstream marks a failure of an external collaborator (generator, mail, oauth provider).
func Upstream(err error, message string) *Error {
	return Wrap(err, ErrUpstream, message)
}

// Internal keeps the original message so callers see it as-is.
func Internal(err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{Code: ErrInternal, Message: err.Error(), Cause: errors.WithStack(err)}
}

// As extracts an *Error from the chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code ErrorCode) bool {
	appErr, ok := As(err)
	return ok && appErr.Code == code
}

func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrNotFound:
		return fiber.StatusNotFound
	case ErrValidation:
		return fiber.StatusBadRequest
	case ErrUnauthorized:
		return fiber.StatusUnauthorized
	case ErrForbidden:
		return fiber.StatusForbidden
	case ErrConflict:
		return fiber.StatusConflict
	case ErrUpstream:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
