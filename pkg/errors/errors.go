package errors

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown        ErrorCode = "UNKNOWN"
	ErrInternal       ErrorCode = "INTERNAL"
	ErrInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrInvalidCommand ErrorCode = "INVALID_COMMAND"
	ErrCancelled      ErrorCode = "CANCELLED"

	// Path resolution and scanning errors
	ErrDirectoryNotFound      ErrorCode = "DIRECTORY_NOT_FOUND"
	ErrPermissionDenied       ErrorCode = "PERMISSION_DENIED"
	ErrInvalidExtensionFilter ErrorCode = "INVALID_EXTENSION_FILTER"

	// Recovery errors
	ErrCopyFailed   ErrorCode = "COPY_FAILED"
	ErrVerifyFailed ErrorCode = "VERIFY_FAILED"
	ErrLocked       ErrorCode = "LOCKED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// External tool errors
	ErrToolNotFound ErrorCode = "TOOL_NOT_FOUND"
	ErrToolFailed   ErrorCode = "TOOL_FAILED"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrDirCreate    ErrorCode = "DIR_CREATE"
)

// FreceError represents a structured error with code and details
type FreceError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *FreceError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *FreceError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *FreceError) Is(target error) bool {
	var targetErr *FreceError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new FreceError with the given code and message
func New(code ErrorCode, message string) *FreceError {
	return &FreceError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new FreceError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *FreceError {
	return &FreceError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a FreceError
func Wrap(err error, code ErrorCode, message string) *FreceError {
	if err == nil {
		return nil
	}
	return &FreceError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *FreceError {
	if err == nil {
		return nil
	}
	return &FreceError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *FreceError) WithDetail(key string, value interface{}) *FreceError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *FreceError) WithDetails(details map[string]interface{}) *FreceError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var freceErr *FreceError
	if errors.As(err, &freceErr) {
		return freceErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a FreceError
func GetErrorCode(err error) ErrorCode {
	var freceErr *FreceError
	if errors.As(err, &freceErr) {
		return freceErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a FreceError
func GetErrorDetails(err error) map[string]interface{} {
	var freceErr *FreceError
	if errors.As(err, &freceErr) {
		return freceErr.Details
	}
	return nil
}

// ClassifyOSError maps an error returned by the os package to an error code.
// Errors that are already coded keep their code; anything unrecognised maps to fallback.
func ClassifyOSError(err error, fallback ErrorCode) ErrorCode {
	switch {
	case err == nil:
		return ""
	case GetErrorCode(err) != ErrUnknown:
		return GetErrorCode(err)
	case errors.Is(err, fs.ErrNotExist):
		return ErrFileNotFound
	case errors.Is(err, fs.ErrPermission):
		return ErrPermissionDenied
	default:
		return fallback
	}
}

// FromOSError wraps an os error for path, choosing the code with ClassifyOSError.
func FromOSError(err error, path string, fallback ErrorCode) *FreceError {
	if err == nil {
		return nil
	}
	code := ClassifyOSError(err, fallback)
	return Wrapf(err, code, "%s", path).WithDetail("path", path)
}
