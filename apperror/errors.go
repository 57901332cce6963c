package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the transport layer.
type Kind string

const (
	KindNotFound         Kind = "NOT_FOUND"
	KindValidation       Kind = "VALIDATION"
	KindUpdateNotAllowed Kind = "UPDATE_NOT_ALLOWED"
	KindUnauthorized     Kind = "UNAUTHORIZED"
	KindForbidden        Kind = "FORBIDDEN"
	KindTooManyRequests  Kind = "TOO_MANY_REQUESTS"
)

// Code is an entry of the internal error code table. Message is a fmt template.
type Code struct {
	Code    string
	Message string
}

var (
	ML000 = Code{"ML-000", "Unauthorized"}
	ML001 = Code{"ML-001", "Invalid request"}
	ML002 = Code{"ML-002", "Access denied"}
	ML003 = Code{"ML-003", "Too many requests"}
	ML101 = Code{"ML-101", "Book [%s] not exist"}
	ML102 = Code{"ML-102", "Cannot update Book with status [%s]."}
	ML201 = Code{"ML-201", "Customer [%s] not exist"}
	ML202 = Code{"ML-202", "Email [%s] already in use"}
	ML301 = Code{"ML-301", "Purchase [%s] not exist"}
	ML302 = Code{"ML-302", "Book [%s] is not available for purchase"}
)

// Error is the domain error returned by services.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func newError(kind Kind, c Code, args ...any) *Error {
	msg := c.Message
	if len(args) > 0 {
		msg = fmt.Sprintf(c.Message, args...)
	}
	return &Error{Kind: kind, Code: c.Code, Message: msg}
}

// NotFound reports a missing entity. args fill the code's message template.
func NotFound(c Code, args ...any) *Error { return newError(KindNotFound, c, args...) }

// Validation reports malformed or conflicting input.
func Validation(c Code, args ...any) *Error { return newError(KindValidation, c, args...) }

// UpdateNotAllowed reports a status transition from an invalid source state.
func UpdateNotAllowed(c Code, args ...any) *Error {
	return newError(KindUpdateNotAllowed, c, args...)
}

func Unauthorized() *Error { return newError(KindUnauthorized, ML000) }

func Forbidden() *Error { return newError(KindForbidden, ML002) }

func TooManyRequests() *Error { return newError(KindTooManyRequests, ML003) }

// Wrap attaches a cause to a domain error.
func (e *Error) Wrap(err error) *Error {
	cp := *e
	cp.Err = err
	return &cp
}

// As extracts the domain error from err's chain.
func As(err error) (*Error, bool) {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr, true
	}
	return nil, false
}

// IsKind reports whether err carries a domain error of the given kind.
func IsKind(err error, kind Kind) bool {
	dErr, ok := As(err)
	return ok && dErr.Kind == kind
}

func IsNotFound(err error) bool { return IsKind(err, KindNotFound) }
