// Package errors augments the standard errors package with an Error type
// that wraps a nested cause without going through fmt.Errorf("%w", err).
package errors

import (
	stderr "errors"
)

var _ error = New("")

// New builds an Error with a fixed message and no cause yet.
func New(msg string) *Error {
	return &Error{msg: msg}
}

// Error is a message plus an optional wrapped cause.
type Error struct {
	msg string
	err error
}

// Error message
func (e *Error) Error() string {
	return e.msg
}

// Unwrap the nested cause
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.err
}

// Wrap attaches a cause to this error and returns it
func (e *Error) Wrap(err error) *Error {
	e.err = err
	return e
}

// Is of some error type?
func (e *Error) Is(target error) bool {
	return e == target || e.err == target
}

// As finds the first error in err's chain that matches target
// (a shortcut to the standard lib errors.As)
func As(err error, target interface{}) bool {
	return stderr.As(err, target)
}

// Is reports whether any error in err's chain matches target
// (a shortcut to the standard lib errors.Is)
func Is(err, target error) bool {
	return stderr.Is(err, target)
}
