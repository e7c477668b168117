// Package apierr defines the error taxonomy shared by every handler and
// store in the service.
//
// Each failure carries a Kind that maps to exactly one HTTP status:
//
//	Unauthenticated -> 401  missing or invalid bearer credential
//	Forbidden       -> 403  authenticated but not authorized for the target
//	NotFound        -> 404  referenced entity absent
//	Conflict        -> 409  state-machine precondition violated
//	InvalidInput    -> 400  caller-supplied data rejected
//	Upstream        -> 502  identity provider or payment processor failure
//
// Stores and policies return these errors; handlers pass them to
// httpjson.Error which writes the stable status plus a human-readable
// message. Anything without a Kind is treated as an internal error (500).
package apierr

import (
	"errors"
	"net/http"
)

// Kind classifies a failure for status mapping.
type Kind int

const (
	Internal Kind = iota
	Unauthenticated
	Forbidden
	NotFound
	Conflict
	InvalidInput
	Upstream
)

// Error is a classified failure with an optional wrapped cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// New returns a classified error with the given message.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap returns a classified error wrapping cause. The message is what the
// caller sees; cause is preserved for logs and errors.Is/As.
func Wrap(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: cause}
}

// KindOf extracts the Kind from err, or Internal if err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// Message returns the caller-facing message for err. Unclassified errors
// get a generic message so internals never leak to clients.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Msg
	}
	return "internal server error"
}

// HTTPStatus maps a Kind to its HTTP status code.
func HTTPStatus(kind Kind) int {
	switch kind {
	case Unauthenticated:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	case InvalidInput:
		return http.StatusBadRequest
	case Upstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
