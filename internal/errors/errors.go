// Package errors provides coded errors for the persistence and I/O layers.
// The domain packages never return errors; absence is reported with nil.
package errors

import (
	"errors"
	"fmt"
)

// Code categorizes an error
type Code string

const (
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument means the caller passed something unusable, e.g. an empty key
	CodeInvalidArgument Code = "invalid_argument"

	CodeNotFound      Code = "not_found"
	CodeAlreadyExists Code = "already_exists"
	CodeInternal      Code = "internal"

	// CodeUnavailable means a backing store or remote service could not be reached
	CodeUnavailable Code = "unavailable"

	// CodeSchema means a persisted document declared a schema this build cannot read
	CodeSchema Code = "schema"

	// CodeMalformed means persisted data could not be decoded at all
	CodeMalformed Code = "malformed"
)

// Error is an error with a code and optional metadata
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
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

// WithMeta attaches a key/value pair and returns the same error
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap adds context to err. The code of a wrapped *Error is kept, anything else becomes unknown.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var ovlErr *Error
	if errors.As(err, &ovlErr) {
		return &Error{
			Code:    ovlErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(ovlErr.Meta),
		}
	}
	return &Error{Code: CodeUnknown, Message: message, Cause: err}
}

func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps err and overrides its code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}
	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

func AlreadyExistsf(format string, args ...any) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

func Schemaf(format string, args ...any) *Error {
	return Newf(CodeSchema, format, args...)
}

// Malformed wraps a decode failure
func Malformed(err error, message string) *Error {
	return WrapWithCode(err, CodeMalformed, message)
}

// Unavailable wraps a failure talking to a backing service
func Unavailable(err error, message string) *Error {
	return WrapWithCode(err, CodeUnavailable, message)
}

// Is reports whether err carries the code anywhere in its chain
func Is(err error, code Code) bool {
	var ovlErr *Error
	if errors.As(err, &ovlErr) {
		return ovlErr.Code == code
	}
	return false
}

func IsNotFound(err error) bool        { return Is(err, CodeNotFound) }
func IsInvalidArgument(err error) bool { return Is(err, CodeInvalidArgument) }
func IsAlreadyExists(err error) bool   { return Is(err, CodeAlreadyExists) }
func IsSchema(err error) bool          { return Is(err, CodeSchema) }
func IsMalformed(err error) bool       { return Is(err, CodeMalformed) }
func IsUnavailable(err error) bool     { return Is(err, CodeUnavailable) }

// GetCode returns the outermost code, CodeUnknown for foreign errors
func GetCode(err error) Code {
	var ovlErr *Error
	if errors.As(err, &ovlErr) {
		return ovlErr.Code
	}
	return CodeUnknown
}

func GetMeta(err error) map[string]any {
	var ovlErr *Error
	if errors.As(err, &ovlErr) {
		return ovlErr.Meta
	}
	return nil
}

func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}
	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
