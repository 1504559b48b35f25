// Package errors provides sentinel errors and error types for the chesscodec tool.
// It defines the failure classes shared by every codec and a structured error
// type that preserves context while allowing inspection with errors.Is() and
// errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrRange indicates a value outside the encodable domain.
	ErrRange = errors.New("value out of range")

	// ErrFormat indicates malformed input to a decode operation.
	ErrFormat = errors.New("malformed input")

	// ErrTooLarge indicates content that exceeds the read buffer limit.
	ErrTooLarge = errors.New("content too large")

	// ErrNotFound indicates a key missing from the archive.
	ErrNotFound = errors.New("not found")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// maxInputLen bounds how much of an offending input is echoed in messages.
const maxInputLen = 40

// CodecError wraps a sentinel with the operation that failed and a short
// rendering of the input that caused it.
type CodecError struct {
	Err    error  // The underlying error
	Op     string // Operation name, e.g. "fixedwidth.Decode"
	Input  string // Offending input (if applicable)
	Detail string // Extra context (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *CodecError) Error() string {
	var parts []string

	if e.Op != "" {
		parts = append(parts, e.Op)
	}
	if e.Input != "" {
		parts = append(parts, fmt.Sprintf("input %q", truncate(e.Input)))
	}
	if e.Detail != "" {
		parts = append(parts, e.Detail)
	}

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the CodecError wrapper.
func (e *CodecError) Unwrap() error {
	return e.Err
}

// Range builds a CodecError wrapping ErrRange.
func Range(op, input, detail string) error {
	return &CodecError{Err: ErrRange, Op: op, Input: input, Detail: detail}
}

// Format builds a CodecError wrapping ErrFormat.
func Format(op, input, detail string) error {
	return &CodecError{Err: ErrFormat, Op: op, Input: input, Detail: detail}
}

func truncate(s string) string {
	r := []rune(s)
	if len(r) <= maxInputLen {
		return s
	}
	return string(r[:maxInputLen]) + "..."
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join is errors.Join. Nil errors are discarded; the result is nil if all are.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
