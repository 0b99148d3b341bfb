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

	// Path errors
	ErrPathEscape ErrorCode = "PATH_ESCAPE"
	ErrNotFound   ErrorCode = "NOT_FOUND"

	// Content errors
	ErrEncoding ErrorCode = "ENCODING"

	// Comparison errors
	ErrComparison     ErrorCode = "COMPARISON"
	ErrPatternInvalid ErrorCode = "PATTERN_INVALID"

	// Filesystem errors
	ErrFileRead  ErrorCode = "FILE_READ"
	ErrFileWrite ErrorCode = "FILE_WRITE"
	ErrDirCreate ErrorCode = "DIR_CREATE"
	ErrCleanup   ErrorCode = "CLEANUP"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
)

// SandfixError represents a structured error with code and details
type SandfixError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SandfixError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SandfixError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *SandfixError) Is(target error) bool {
	var targetErr *SandfixError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SandfixError with the given code and message
func New(code ErrorCode, message string) *SandfixError {
	return &SandfixError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SandfixError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SandfixError {
	return &SandfixError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SandfixError
func Wrap(err error, code ErrorCode, message string) *SandfixError {
	if err == nil {
		return nil
	}
	return &SandfixError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SandfixError {
	if err == nil {
		return nil
	}
	return &SandfixError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *SandfixError) WithDetail(key string, value interface{}) *SandfixError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var sfErr *SandfixError
	if errors.As(err, &sfErr) {
		return sfErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a SandfixError
func GetErrorCode(err error) ErrorCode {
	var sfErr *SandfixError
	if errors.As(err, &sfErr) {
		return sfErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a SandfixError
func GetErrorDetails(err error) map[string]interface{} {
	var sfErr *SandfixError
	if errors.As(err, &sfErr) {
		return sfErr.Details
	}
	return nil
}
