// Package errors provides standardized errors for the outer layers of the
// Stellar tooling: file access, configuration and version checks. Scan and
// parse failures keep their own typed errors and are only wrapped here.
package errors

import (
	stderrors "errors"
	"fmt"
	"runtime"
)

// ErrorCategory represents different categories of errors
type ErrorCategory string

const (
	CategoryIO      ErrorCategory = "IO"
	CategoryConfig  ErrorCategory = "CONFIG"
	CategoryVersion ErrorCategory = "VERSION"
	CategorySyntax  ErrorCategory = "SYNTAX"
)

// StandardError provides a consistent error format
type StandardError struct {
	Category ErrorCategory
	Code     string
	Message  string
	Context  map[string]interface{}
	Caller   string
	Cause    error
}

// Error implements the error interface
func (e *StandardError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s:%s] %s: %v", e.Category, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Category, e.Code, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *StandardError) Unwrap() error {
	return e.Cause
}

// NewStandardError creates a new standardized error
func NewStandardError(category ErrorCategory, code, message string, context map[string]interface{}) *StandardError {
	return newStandardError(category, code, message, context, nil)
}

func newStandardError(category ErrorCategory, code, message string, context map[string]interface{}, cause error) *StandardError {
	// Skip this helper and the exported constructor that called it.
	pc, _, _, ok := runtime.Caller(2)
	caller := "unknown"
	if ok {
		if fn := runtime.FuncForPC(pc); fn != nil {
			caller = fn.Name()
		}
	}

	return &StandardError{
		Category: category,
		Code:     code,
		Message:  message,
		Context:  context,
		Caller:   caller,
		Cause:    cause,
	}
}

// CategoryOf returns the category of the first StandardError in err's
// chain, or "" if there is none.
func CategoryOf(err error) ErrorCategory {
	var se *StandardError
	if stderrors.As(err, &se) {
		return se.Category
	}
	return ""
}

// Common error constructors

func ReadFailed(path string, cause error) *StandardError {
	return newStandardError(CategoryIO, "READ_FAILED",
		fmt.Sprintf("Cannot read %s", path),
		map[string]interface{}{"path": path}, cause)
}

func WatchFailed(path string, cause error) *StandardError {
	return newStandardError(CategoryIO, "WATCH_FAILED",
		fmt.Sprintf("Cannot watch %s", path),
		map[string]interface{}{"path": path}, cause)
}

func InvalidConfig(path string, cause error) *StandardError {
	return newStandardError(CategoryConfig, "INVALID_CONFIG",
		fmt.Sprintf("Invalid configuration in %s", path),
		map[string]interface{}{"path": path}, cause)
}

func UnsupportedConfigFormat(path string) *StandardError {
	return newStandardError(CategoryConfig, "UNSUPPORTED_FORMAT",
		fmt.Sprintf("Unsupported configuration format: %s", path),
		map[string]interface{}{"path": path}, nil)
}

func InvalidOption(name, value string, allowed []string) *StandardError {
	return newStandardError(CategoryConfig, "INVALID_OPTION",
		fmt.Sprintf("Invalid value %q for %s (allowed: %v)", value, name, allowed),
		map[string]interface{}{"option": name, "value": value}, nil)
}

func InvalidConstraint(constraint string, cause error) *StandardError {
	return newStandardError(CategoryVersion, "INVALID_CONSTRAINT",
		fmt.Sprintf("Invalid version constraint %q", constraint),
		map[string]interface{}{"constraint": constraint}, cause)
}

func VersionMismatch(version, constraint string) *StandardError {
	return newStandardError(CategoryVersion, "VERSION_MISMATCH",
		fmt.Sprintf("Language version %s does not satisfy %q", version, constraint),
		map[string]interface{}{"version": version, "constraint": constraint}, nil)
}

// SourceFailed wraps a scan or parse error of path. The original error
// stays reachable with errors.As.
func SourceFailed(path string, cause error) *StandardError {
	return newStandardError(CategorySyntax, "SOURCE_INVALID",
		fmt.Sprintf("%s is not valid Stellar source", path),
		map[string]interface{}{"path": path}, cause)
}
