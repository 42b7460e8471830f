package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by use cases and services wraps exactly one of them,
// the HTTP layer maps kinds to status codes.
var (
	ErrValidation = errors.New("validation error")
	ErrPermission = errors.New("permission denied")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)

// kindError is a named sentinel that belongs to one of the error kinds.
type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

// NewError creates a sentinel error of the given kind.
func NewError(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

// DetailedError carries a user-facing detail on top of an error.
type DetailedError struct {
	Err    error
	Detail string
}

func (e *DetailedError) Error() string {
	return e.Err.Error() + ": " + e.Detail
}

func (e *DetailedError) Unwrap() error { return e.Err }

// WithDetail attaches a formatted user-facing detail to err.
func WithDetail(err error, format string, args ...interface{}) error {
	return &DetailedError{Err: err, Detail: fmt.Sprintf(format, args...)}
}

// Detail returns the outermost user-facing detail of err, if any.
func Detail(err error) (string, bool) {
	var detailed *DetailedError
	if errors.As(err, &detailed) {
		return detailed.Detail, true
	}
	return "", false
}

// KindOf returns the error kind of err or nil for unexpected errors.
func KindOf(err error) error {
	for _, kind := range []error{ErrValidation, ErrPermission, ErrNotFound, ErrConflict} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
