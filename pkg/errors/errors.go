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

	// Karabiner document errors
	ErrIO               ErrorCode = "IO"
	ErrInvalidSchema    ErrorCode = "INVALID_SCHEMA"
	ErrNoActiveProfile  ErrorCode = "NO_ACTIVE_PROFILE"
	ErrAmbiguousProfile ErrorCode = "AMBIGUOUS_PROFILE"
	ErrNotLoaded        ErrorCode = "NOT_LOADED"

	// Tool configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Interactive and watch errors
	ErrPrompt ErrorCode = "PROMPT"
	ErrWatch  ErrorCode = "WATCH"
)

// CLIError represents a structured error with code and details
type CLIError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *CLIError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *CLIError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *CLIError) Is(target error) bool {
	var targetErr *CLIError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new CLIError with the given code and message
func New(code ErrorCode, message string) *CLIError {
	return &CLIError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new CLIError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *CLIError {
	return &CLIError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a CLIError
func Wrap(err error, code ErrorCode, message string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *CLIError) WithDetail(key string, value interface{}) *CLIError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a CLIError
func GetErrorCode(err error) ErrorCode {
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr.Code
	}
	return ErrUnknown
}

// UserMessage returns the one-line cause shown to the user, without the code prefix
func UserMessage(err error) string {
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		if cliErr.Wrapped != nil {
			return fmt.Sprintf("%s: %v", cliErr.Message, cliErr.Wrapped)
		}
		return cliErr.Message
	}
	return err.Error()
}
