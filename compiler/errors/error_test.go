package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestExprError(t *testing.T) {
	err := NewExprError(CodeUnbalancedBracket, "unmatched '['", "SYSTem[:ERRor", 6)

	if err.Severity != Error {
		t.Errorf("severity: got %v, want Error", err.Severity)
	}

	msg := err.Error()
	for _, want := range []string{CodeUnbalancedBracket, "unmatched '['", "SYSTem[:ERRor", "6"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message %q missing %q", msg, want)
		}
	}

	if !IsInvalidExpression(err) {
		t.Error("IsInvalidExpression should accept ExprError")
	}
	if !IsInvalidExpression(fmt.Errorf("loading table: %w", err)) {
		t.Error("IsInvalidExpression should accept a wrapped ExprError")
	}
	if IsInvalidExpression(nil) {
		t.Error("IsInvalidExpression should reject nil")
	}
	if IsInvalidExpression(fmt.Errorf("plain failure")) {
		t.Error("IsInvalidExpression should reject unrelated errors")
	}
}

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{Warning, "warning"},
		{Error, "error"},
		{Fatal, "fatal"},
		{Severity(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.severity.String(); got != tt.want {
			t.Errorf("Severity(%d).String() = %q, want %q", tt.severity, got, tt.want)
		}
	}
}
