// Package errors provides errors with stack traces, multi errors and a configurable formatter.
// All errors created by this package record the stack trace of the place where they were created.
package errors

import (
	"errors"
	"fmt"
)

type stackTracer interface {
	StackTrace() StackTrace
}

type withStack struct {
	error
	trace StackTrace
}

type wrappedError struct {
	msg   string
	cause error
	trace StackTrace
}

// chain is a list of errors returned from Unwrap() []error.
type chain []error

func New(message string) error {
	return &withStack{error: errors.New(message), trace: callers()}
}

// Errorf supports the %w verb, same as fmt.Errorf.
func Errorf(format string, a ...any) error {
	return &withStack{error: fmt.Errorf(format, a...), trace: callers()}
}

// Wrap replaces the error message, the original error is accessible via Unwrap.
func Wrap(err error, message string) error {
	return &wrappedError{msg: message, cause: err, trace: callers()}
}

func Wrapf(err error, format string, a ...any) error {
	return &wrappedError{msg: fmt.Sprintf(format, a...), cause: err, trace: callers()}
}

// WithStack adds the stack trace to an error, the message is not modified.
// Nil is returned for a nil error.
func WithStack(err error) error {
	if err == nil {
		return nil
	}
	return &withStack{error: err, trace: callers()}
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

func Unwrap(err error) error {
	return errors.Unwrap(err)
}

func (e *withStack) Unwrap() error {
	return e.error
}

func (e *withStack) StackTrace() StackTrace {
	return e.trace
}

func (e *wrappedError) Error() string {
	return e.msg
}

func (e *wrappedError) Unwrap() error {
	return e.cause
}

func (e *wrappedError) StackTrace() StackTrace {
	return e.trace
}

func (c chain) Error() string {
	return Format(c[0])
}

func (c chain) Unwrap() []error {
	return c
}
