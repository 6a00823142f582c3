package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Markup errors
	ErrParse ErrorCode = "PARSE"

	// Style errors
	ErrUndefinedOperation ErrorCode = "UNDEFINED_OPERATION"
	ErrRender             ErrorCode = "RENDER"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
)

// HelpdocError represents a structured error with code and details
type HelpdocError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *HelpdocError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *HelpdocError) Unwrap() error {
	return e.Wrapped
}

// Is matches any HelpdocError carrying the same code
func (e *HelpdocError) Is(target error) bool {
	var targetErr *HelpdocError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new HelpdocError with the given code and message
func New(code ErrorCode, message string) *HelpdocError {
	return &HelpdocError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new HelpdocError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *HelpdocError {
	return &HelpdocError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a HelpdocError.
// A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) error {
	if err == nil {
		return nil
	}
	return &HelpdocError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &HelpdocError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *HelpdocError) WithDetail(key string, value interface{}) *HelpdocError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var helpErr *HelpdocError
	if errors.As(err, &helpErr) {
		return helpErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a HelpdocError
func GetErrorCode(err error) ErrorCode {
	var helpErr *HelpdocError
	if errors.As(err, &helpErr) {
		return helpErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a HelpdocError
func GetErrorDetails(err error) map[string]interface{} {
	var helpErr *HelpdocError
	if errors.As(err, &helpErr) {
		return helpErr.Details
	}
	return nil
}
