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
	ErrConfigLoad   ErrorCode = "CONFIG_LOAD"
	ErrSchemaParse  ErrorCode = "SCHEMA_PARSE"
	ErrUnknownKey   ErrorCode = "UNKNOWN_KEY"
	ErrTypeMismatch ErrorCode = "TYPE_MISMATCH"

	// Scalar value errors
	ErrInvalidBool   ErrorCode = "INVALID_BOOL"
	ErrInvalidNumber ErrorCode = "INVALID_NUMBER"
	ErrValueTooLow   ErrorCode = "VALUE_TOO_LOW"
	ErrValueTooHigh  ErrorCode = "VALUE_TOO_HIGH"

	// Composite value errors
	ErrInvalidLogLevel      ErrorCode = "INVALID_LOG_LEVEL"
	ErrInvalidGraphSymbol   ErrorCode = "INVALID_GRAPH_SYMBOL"
	ErrInvalidBoxName       ErrorCode = "INVALID_BOX_NAME"
	ErrInvalidTempScale     ErrorCode = "INVALID_TEMP_SCALE"
	ErrInvalidCoreMap       ErrorCode = "INVALID_CORE_MAP"
	ErrInvalidIOSpeeds      ErrorCode = "INVALID_IO_SPEEDS"
	ErrTooManyPresets       ErrorCode = "TOO_MANY_PRESETS"
	ErrTooManyBoxes         ErrorCode = "TOO_MANY_BOXES"
	ErrMalformatted         ErrorCode = "MALFORMATTED"
	ErrInvalidPositionValue ErrorCode = "INVALID_POSITION_VALUE"
	ErrInvalidGraphName     ErrorCode = "INVALID_GRAPH_NAME"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
)

// GobtopError represents a structured error with code and details
type GobtopError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *GobtopError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *GobtopError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *GobtopError) Is(target error) bool {
	var targetErr *GobtopError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new GobtopError with the given code and message
func New(code ErrorCode, message string) *GobtopError {
	return &GobtopError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new GobtopError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *GobtopError {
	return &GobtopError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a GobtopError
func Wrap(err error, code ErrorCode, message string) *GobtopError {
	if err == nil {
		return nil
	}
	return &GobtopError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *GobtopError {
	if err == nil {
		return nil
	}
	return &GobtopError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *GobtopError) WithDetail(key string, value interface{}) *GobtopError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// Detail returns a string detail, or "" when it is missing or not a string
func (e *GobtopError) Detail(key string) string {
	if s, ok := e.Details[key].(string); ok {
		return s
	}
	return ""
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var gErr *GobtopError
	if errors.As(err, &gErr) {
		return gErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a GobtopError
func GetErrorCode(err error) ErrorCode {
	var gErr *GobtopError
	if errors.As(err, &gErr) {
		return gErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a GobtopError
func GetErrorDetails(err error) map[string]interface{} {
	var gErr *GobtopError
	if errors.As(err, &gErr) {
		return gErr.Details
	}
	return nil
}
