// Package errors defines the structured error values reported while
// compiling SCPI command expressions.
package errors

import (
	"errors"
	"fmt"
)

// Severity represents the severity level of an error
type Severity int

const (
	Warning Severity = iota
	Error
	Fatal
)

// String returns the string representation of the severity
func (s Severity) String() string {
	switch s {
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Fatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// ExprError describes a grammar violation in a command expression. Offset
// is a byte position into Expression pointing at the offending character.
type ExprError struct {
	Code       string
	Message    string
	Expression string
	Offset     int
	Severity   Severity
}

// Error implements the error interface
func (e ExprError) Error() string {
	return fmt.Sprintf("%s: %s in %q at offset %d", e.Code, e.Message, e.Expression, e.Offset)
}

// NewExprError creates a new ExprError at Error severity.
func NewExprError(code, message, expression string, offset int) ExprError {
	return ExprError{
		Code:       code,
		Message:    message,
		Expression: expression,
		Offset:     offset,
		Severity:   Error,
	}
}

// IsInvalidExpression reports whether err is an expression grammar
// error, unwrapping as needed.
func IsInvalidExpression(err error) bool {
	var ee ExprError
	return errors.As(err, &ee)
}
