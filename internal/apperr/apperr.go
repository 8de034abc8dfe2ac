// Package apperr defines the closed set of failure kinds the service can
// produce. Every fallible operation returns an error carrying one of these
// kinds, and the HTTP layer owns the single translation to a wire response.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind int

const (
	// KindStoreFailure covers constraint violations, connectivity loss and
	// anything else the persistence layer cannot recover from. Unknown
	// errors also land here so nothing bypasses the translation point.
	KindStoreFailure Kind = iota
	// KindNotFound means the requested entity does not exist.
	KindNotFound
	// KindBadRequest means caller-supplied input failed validation.
	KindBadRequest
)

// Error ties a Kind to a client-safe message and an optional internal cause.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// NotFound reports a missing entity.
func NotFound() *Error {
	return &Error{Kind: KindNotFound, Message: "not found"}
}

// BadRequest reports invalid caller input with a client-visible message.
func BadRequest(message string) *Error {
	return &Error{Kind: KindBadRequest, Message: message}
}

// StoreFailure wraps a persistence error. The cause stays available for
// logging via Unwrap but the client-visible message is fixed.
func StoreFailure(cause error) *Error {
	return &Error{Kind: KindStoreFailure, Message: "database error", cause: cause}
}

// KindOf extracts the Kind from err. Errors that do not carry a Kind are
// treated as store failures.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindStoreFailure
}
