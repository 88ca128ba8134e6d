// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for hioload-seq.

package api

import (
	"errors"
	"fmt"
)

// Common errors used across the library.
var (
	ErrAllocationFailure = errors.New("allocation failure")
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrInvalidArgument   = errors.New("invalid argument")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeAllocationFailure
	ErrCodeIndexOutOfRange
	ErrCodeInvalidArgument
	ErrCodeInternal
)

func (c ErrorCode) String() string {
	switch c {
	case ErrCodeOK:
		return "ok"
	case ErrCodeAllocationFailure:
		return "allocation failure"
	case ErrCodeIndexOutOfRange:
		return "index out of range"
	case ErrCodeInvalidArgument:
		return "invalid argument"
	default:
		return "internal"
	}
}

// sentinel maps a code to the package-level error it matches under errors.Is.
func (c ErrorCode) sentinel() error {
	switch c {
	case ErrCodeAllocationFailure:
		return ErrAllocationFailure
	case ErrCodeIndexOutOfRange:
		return ErrIndexOutOfRange
	case ErrCodeInvalidArgument:
		return ErrInvalidArgument
	default:
		return nil
	}
}

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	if len(e.Context) == 0 {
		return msg
	}
	return fmt.Sprintf("%s (context: %+v)", msg, e.Context)
}

// Is reports whether target is the sentinel for e.Code.
func (e *Error) Is(target error) bool {
	s := e.Code.sentinel()
	return s != nil && s == target
}

// Unwrap exposes the underlying cause, if any.
func (e *Error) Unwrap() error { return e.Cause }

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// WithCause attaches the error that triggered e.
func (e *Error) WithCause(err error) *Error {
	e.Cause = err
	return e
}

// CodeOf extracts the ErrorCode carried by err, or ErrCodeInternal when err
// is not a structured error. A nil err yields ErrCodeOK.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ErrCodeOK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrCodeInternal
}
