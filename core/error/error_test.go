// File: error_test.go
// Title: Core Error Unit Tests
// Description: Tests for the structured Error type covering creation,
//              wrapping, codes, severities, details and JSON output.

package error

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}

	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}

	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() should not be empty")
	}
}

func TestNewf(t *testing.T) {
	err := Newf("undefined variable: %s", "pos")
	if err.Error() != "undefined variable: pos" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("original error"),
			message:  "wrapper message",
			wantMsg:  "wrapper message: original error",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap structured error keeps code",
			err:      New("bad token").WithCode(CodeSyntax),
			message:  "parse failed",
			wantMsg:  "parse failed: bad token",
			wantCode: CodeSyntax,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, tt.message)

			if tt.wantNil {
				if wrapped != nil {
					t.Errorf("Wrap() = %v, want nil", wrapped)
				}
				return
			}

			if wrapped == nil {
				t.Fatal("Wrap() returned nil")
			}

			if wrapped.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", wrapped.Error(), tt.wantMsg)
			}

			if wrapped.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", wrapped.Code(), tt.wantCode)
			}

			if !errors.Is(wrapped, tt.err) && tt.err != nil {
				t.Error("wrapped error should unwrap to original")
			}
		})
	}
}

func TestWithCode(t *testing.T) {
	err := New("out of range").WithCode(CodeOutOfRange)

	if err.Code() != CodeOutOfRange {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeOutOfRange)
	}

	// Severity auto-derives from the code
	if err.Severity() != SeverityLow {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityLow)
	}
}

func TestWithSeverityOverride(t *testing.T) {
	err := New("syntax").WithSeverity(SeverityCritical).WithCode(CodeSyntax)

	// Explicit severity must not be overwritten by WithCode
	if err.Severity() != SeverityCritical {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityCritical)
	}
}

func TestWithDetail(t *testing.T) {
	err := New("domain mismatch").
		WithCode(CodeDomainMismatch).
		WithDetail("variable", "color").
		WithDetail("value", "purple")

	details := err.Details()
	if details["variable"] != "color" {
		t.Errorf("Details()[variable] = %v, want color", details["variable"])
	}
	if err.Detail("value") != "purple" {
		t.Errorf("Detail(value) = %v, want purple", err.Detail("value"))
	}

	// Details() returns a copy
	details["variable"] = "mutated"
	if err.Detail("variable") != "color" {
		t.Error("Details() must return a copy")
	}
}

func TestRootCause(t *testing.T) {
	root := errors.New("root cause")
	err := Wrap(Wrap(root, "middle"), "outer")

	if err.RootCause() != root {
		t.Errorf("RootCause() = %v, want %v", err.RootCause(), root)
	}
}

func TestHasCodeAndGetCode(t *testing.T) {
	err := New("conflict").WithCode(CodeNameConflict)

	if !HasCode(err, CodeNameConflict) {
		t.Error("HasCode() = false, want true")
	}
	if HasCode(err, CodeSyntax) {
		t.Error("HasCode() matched wrong code")
	}
	if HasCode(errors.New("plain"), CodeNameConflict) {
		t.Error("HasCode() matched plain error")
	}

	if GetCode(err) != CodeNameConflict {
		t.Errorf("GetCode() = %v, want %v", GetCode(err), CodeNameConflict)
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode() on plain error should be CodeUnknown")
	}
}

func TestErrorString(t *testing.T) {
	err := New("bad input").
		WithCode(CodeSyntax).
		WithOperation("parse").
		WithDetail("token", "&&")

	s := err.String()
	for _, want := range []string{"bad input", "SYNTAX", "parse", "token=&&"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in:\n%s", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := New("out of domain").
		WithCode(CodeOutOfDomain).
		WithDetail("constant", "purple")

	data, jsonErr := json.Marshal(err)
	if jsonErr != nil {
		t.Fatalf("Marshal: %v", jsonErr)
	}

	var decoded map[string]interface{}
	if jsonErr := json.Unmarshal(data, &decoded); jsonErr != nil {
		t.Fatalf("Unmarshal: %v", jsonErr)
	}

	if decoded["code"] != "OUT_OF_DOMAIN" {
		t.Errorf("code = %v, want OUT_OF_DOMAIN", decoded["code"])
	}
	if decoded["severity"] != "low" {
		t.Errorf("severity = %v, want low", decoded["severity"])
	}
}
