package minparse

import (
	"errors"
)

// ErrorType represents error categories for configuration and parse failures.
// These categories drive suggestion logic and exit-code mapping (via ExitCode).
type ErrorType string

// Configuration defects, reported by Validate before any token is read.
const (
	ErrorTypeEmptyName           ErrorType = "empty_name"
	ErrorTypeDuplicatePositional ErrorType = "duplicate_positional"
	ErrorTypeMisplacedVariadic   ErrorType = "misplaced_variadic"
	ErrorTypeDuplicateOption     ErrorType = "duplicate_option"
	ErrorTypeMissingFlag         ErrorType = "missing_flag"
	ErrorTypeMalformedFlag       ErrorType = "malformed_flag"
	ErrorTypeDuplicateFlag       ErrorType = "duplicate_flag"
	ErrorTypeInvalidKind         ErrorType = "invalid_kind"
)

// Command-line input errors, reported while tokens are consumed.
const (
	ErrorTypeUnknownFlag     ErrorType = "unknown_flag"
	ErrorTypeUnexpectedValue ErrorType = "unexpected_value"
	ErrorTypeInvalidValue    ErrorType = "invalid_value"
	ErrorTypeInvalidStack    ErrorType = "invalid_stack"
	ErrorTypeTooManyArgs     ErrorType = "too_many_args"
	ErrorTypeMissingValue    ErrorType = "missing_value"
	ErrorTypeStrayEquals     ErrorType = "stray_equals"
)

// ConfigError reports a defect in the caller's static configuration.
type ConfigError struct {
	Type    ErrorType
	Message string
	Name    string // Positional or option name the defect was found on
}

func (e *ConfigError) Error() string {
	return e.Message
}

// UserError reports malformed command-line input.
type UserError struct {
	Type       ErrorType
	Message    string
	Flag       string // Offending flag text, if any
	Arg        string // Raw argument the error was raised on
	Suggestion string // Closest registered flag for unknown flags
}

func (e *UserError) Error() string {
	return e.Message
}

// newConfigError creates a ConfigError with the given type and message
func newConfigError(typ ErrorType, name, message string) *ConfigError {
	return &ConfigError{Type: typ, Name: name, Message: message}
}

// IsConfigError reports whether err (or anything it wraps) is a *ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// IsUserError reports whether err (or anything it wraps) is a *UserError.
func IsUserError(err error) bool {
	var ue *UserError
	return errors.As(err, &ue)
}
