package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the operation timed out.
	ExitErrorMismatch = 3   // Indicates a result mismatch between strategies.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// Sentinel errors of the arithmetic engine. They are wrapped with context by
// the functions that return them and are meant to be matched with errors.Is.
var (
	// ErrRadixRange reports a radix outside 2..64.
	ErrRadixRange = errors.New("radix out of range [2, 64]")
	// ErrInvalidDigit reports a character that is not a digit of the radix.
	ErrInvalidDigit = errors.New("invalid digit")
	// ErrEmptyNumber reports a literal with no digits left once its sign,
	// whitespace and radix prefix are removed.
	ErrEmptyNumber = errors.New("empty number")
	// ErrDivisionByZero is the panic value of a division by zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrNotFinite reports a NaN or infinite float where an integer is needed.
	ErrNotFinite = errors.New("value is not finite")
	// ErrUnknownOperation reports an operator the evaluator does not know.
	ErrUnknownOperation = errors.New("unknown operation")
)

// ParseError describes a failure to convert text to an integer. It carries
// the offending input and radix and wraps one of the sentinel errors above.
type ParseError struct {
	// Input is the text that failed to parse, after sign and prefix removal.
	Input string
	// Radix is the radix the text was parsed in.
	Radix int
	// Err is the underlying cause.
	Err error
}

// Error returns a message naming the input, the radix and the cause.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %q in base %d: %v", e.Input, e.Radix, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error { return e.Err }

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// CalculationError encapsulates a failure of one strategy while preserving
// the original cause, so that the orchestration layer can report it next to
// the results of the other strategies.
type CalculationError struct {
	// Strategy is the name of the strategy that failed.
	Strategy string
	// Cause is the underlying error that triggered this calculation error.
	Cause error
}

// Error returns the strategy name followed by the underlying cause.
func (e CalculationError) Error() string {
	if e.Strategy == "" {
		return e.Cause.Error()
	}
	return e.Strategy + ": " + e.Cause.Error()
}

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
func (e CalculationError) Unwrap() error { return e.Cause }

// TimeoutError represents a calculation timeout. It captures the operation
// name and the duration limit that was exceeded.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Limit is the duration after which the operation was considered timed out.
	Limit time.Duration
}

// Error returns a formatted message describing the timeout.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// Unwrap returns context.DeadlineExceeded so that ExitCode and errors.Is
// classify the timeout.
func (e TimeoutError) Unwrap() error { return context.DeadlineExceeded }

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCode maps an error returned by a run of the application to its exit
// status.
//
// Parameters:
//   - err: The error to classify, possibly nil.
//
// Returns:
//   - int: One of the Exit* constants.
func ExitCode(err error) int {
	var configErr ConfigError
	var parseErr *ParseError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, context.DeadlineExceeded):
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	case errors.As(err, &configErr), errors.As(err, &parseErr):
		return ExitErrorConfig
	default:
		return ExitErrorGeneric
	}
}
