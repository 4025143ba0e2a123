package errors

import (
	"fmt"
)

// ParseError represents a tour file parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures tour file validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// TargetError reports a tour mark that names a region the host screen does
// not expose.
type TargetError struct {
	Target string
	Order  int
	Err    error
}

// NewTargetError constructs a TargetError for the mark at order.
func NewTargetError(target string, order int, err error) error {
	return &TargetError{Target: target, Order: order, Err: err}
}

func (e *TargetError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("target error: mark %d: %q: %v", e.Order, e.Target, e.Err)
	}
	return fmt.Sprintf("target error: mark %d: unknown target %q", e.Order, e.Target)
}

// Unwrap exposes the underlying error.
func (e *TargetError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
