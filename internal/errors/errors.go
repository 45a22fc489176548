// Package errors provides structured error types and exit codes for pyimplib.
package errors

import (
	"fmt"
)

// Exit codes returned by the CLI.
const (
	ExitSuccess          = 0 // Success
	ExitRuntimeError     = 1 // Runtime error (tool failed to start or exited non-zero, etc.)
	ExitConfigError      = 2 // Configuration error (invalid config, bad flags, etc.)
	ExitEnvironmentError = 3 // Environment error (unsupported target, unsupported version)
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindConfig
	KindValidation
	KindUnsupportedVersion
	KindUnsupportedTarget
	KindToolInvocation
	KindToolExit
)

// GenError is the base error type for pyimplib.
type GenError struct {
	Kind    ErrorKind
	Message string
	Command string // Attempted command line if applicable
	Cause   error  // Underlying error
}

func (e *GenError) Error() string {
	if e.Command != "" && e.Cause != nil {
		return fmt.Sprintf("%s: `%s`: %v", e.Message, e.Command, e.Cause)
	}
	if e.Command != "" {
		return fmt.Sprintf("%s: `%s`", e.Message, e.Command)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *GenError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *GenError) ExitCode() int {
	switch e.Kind {
	case KindConfig, KindValidation:
		return ExitConfigError
	case KindUnsupportedVersion, KindUnsupportedTarget:
		return ExitEnvironmentError
	default:
		return ExitRuntimeError
	}
}

// New creates a new runtime error.
func New(message string) *GenError {
	return &GenError{
		Kind:    KindRuntime,
		Message: message,
	}
}

// Newf creates a new runtime error with formatting.
func Newf(format string, args ...interface{}) *GenError {
	return New(fmt.Sprintf(format, args...))
}

// Config creates a new configuration error.
func Config(message string) *GenError {
	return &GenError{
		Kind:    KindConfig,
		Message: message,
	}
}

// Configf creates a new configuration error with formatting.
func Configf(format string, args ...interface{}) *GenError {
	return Config(fmt.Sprintf(format, args...))
}

// Validation creates a new validation error wrapping an underlying cause.
func Validation(message string, cause error) *GenError {
	return &GenError{
		Kind:    KindValidation,
		Message: message,
		Cause:   cause,
	}
}

// UnsupportedVersion creates an error for a Python version outside the
// supported set. The requested version is included for diagnostics.
func UnsupportedVersion(major, minor uint8) *GenError {
	return &GenError{
		Kind:    KindUnsupportedVersion,
		Message: fmt.Sprintf("unsupported Python version %d.%d", major, minor),
	}
}

// UnsupportedTarget creates an error for an architecture and environment ABI
// combination that has no toolchain mapping.
func UnsupportedTarget(arch, env string) *GenError {
	return &GenError{
		Kind:    KindUnsupportedTarget,
		Message: fmt.Sprintf("unsupported target arch %q or env ABI %q", arch, env),
	}
}

// ToolInvocation creates an error for an external tool that could not be
// started. The attempted command line and the spawn error are preserved.
func ToolInvocation(command string, cause error) *GenError {
	return &GenError{
		Kind:    KindToolInvocation,
		Message: "import library tool failed to start",
		Command: command,
		Cause:   cause,
	}
}

// ToolExit creates an error for an external tool that ran but returned a
// failing status. The attempted command line is preserved.
func ToolExit(command string, status int) *GenError {
	return &GenError{
		Kind:    KindToolExit,
		Message: fmt.Sprintf("import library tool exited with status %d", status),
		Command: command,
	}
}

// IsKind reports whether err is a *GenError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	genErr, ok := err.(*GenError)
	return ok && genErr.Kind == kind
}
