// Package errors provides structured error types for tableaxis.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI, the panel and the HTTP API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages that can be shown verbatim
//   - Error wrapping with context preservation
//
// # Error Codes
//
// The axis-switch codes mirror the checks of the switch pipeline, in the
// order they run:
//
//   - NO_SELECTION, MULTIPLE_SELECTION, UNSUPPORTED_TYPE, NO_AXIS_LAYOUT,
//     EMPTY_CONTAINER: selection checks
//   - EMPTY_MATRIX, NON_RECTANGULAR_MATRIX: grid checks
//   - NO_PARENT: the table cannot be replaced in place
//
// The remaining codes cover ambient input handling (INVALID_*), lookups
// (*_NOT_FOUND) and unexpected failures (INTERNAL_ERROR).
//
// # Usage
//
//	err := errors.New(errors.ErrCodeNoAxisLayout, "selected frame must have auto layout")
//	if errors.Is(err, errors.ErrCodeNoAxisLayout) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidFormat, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Selection errors
	ErrCodeNoSelection       Code = "NO_SELECTION"
	ErrCodeMultipleSelection Code = "MULTIPLE_SELECTION"
	ErrCodeUnsupportedType   Code = "UNSUPPORTED_TYPE"
	ErrCodeNoAxisLayout      Code = "NO_AXIS_LAYOUT"
	ErrCodeEmptyContainer    Code = "EMPTY_CONTAINER"

	// Grid errors
	ErrCodeEmptyMatrix          Code = "EMPTY_MATRIX"
	ErrCodeNonRectangularMatrix Code = "NON_RECTANGULAR_MATRIX"

	// Replacement errors
	ErrCodeNoParent Code = "NO_PARENT"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Resource not found errors
	ErrCodeNotFound         Code = "NOT_FOUND"
	ErrCodeFileNotFound     Code = "FILE_NOT_FOUND"
	ErrCodeSnapshotNotFound Code = "SNAPSHOT_NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Coder is implemented by typed errors that carry their own code and a
// message suitable for end users, such as the grid error of package table.
type Coder interface {
	error
	Code() Code
	UserMessage() string
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error or a [Coder] with a
// matching code.
func Is(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the chain holds neither an *Error nor a [Coder].
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var c Coder
	if errors.As(err, &c) {
		return c.Code()
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error and [Coder] types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	var c Coder
	if errors.As(err, &c) {
		return c.UserMessage()
	}
	return err.Error()
}

// IsValidation reports whether err is one of the axis-switch validation
// failures. Validation failures never leave a partially modified document.
func IsValidation(err error) bool {
	switch GetCode(err) {
	case ErrCodeNoSelection, ErrCodeMultipleSelection, ErrCodeUnsupportedType,
		ErrCodeNoAxisLayout, ErrCodeEmptyContainer, ErrCodeEmptyMatrix,
		ErrCodeNonRectangularMatrix, ErrCodeNoParent:
		return true
	}
	return false
}
