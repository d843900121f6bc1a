// Package apperrors defines the typed errors shared by repositories, services
// and controllers. Accessors return these; the HTTP layer maps them to status
// codes and leaks nothing else.
package apperrors

import (
	"errors"
	"net/http"
)

type Kind string

const (
	KindBadRequest   Kind = "Bad Request"
	KindNotFound     Kind = "Not Found"
	KindUnauthorized Kind = "Unauthorized"
	KindForbidden    Kind = "Forbidden"
)

// ErrStoreUnavailable wraps document store transport or auth failures. Never
// retried; it surfaces as a generic 500.
var ErrStoreUnavailable = errors.New("document store unavailable")

// Error is a classified application error with a caller-facing message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// Status maps the error kind to its HTTP status code. Unauthorized maps to
// 403 alongside Forbidden: ownership and hash mismatches are forbidden
// actions, not missing credentials.
func (e *Error) Status() int {
	switch e.Kind {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized, KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func BadRequest(message string) *Error   { return &Error{Kind: KindBadRequest, Message: message} }
func NotFound(message string) *Error     { return &Error{Kind: KindNotFound, Message: message} }
func Unauthorized(message string) *Error { return &Error{Kind: KindUnauthorized, Message: message} }
func Forbidden(message string) *Error    { return &Error{Kind: KindForbidden, Message: message} }

func isKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}

func IsBadRequest(err error) bool   { return isKind(err, KindBadRequest) }
func IsNotFound(err error) bool     { return isKind(err, KindNotFound) }
func IsUnauthorized(err error) bool { return isKind(err, KindUnauthorized) }
func IsForbidden(err error) bool    { return isKind(err, KindForbidden) }
