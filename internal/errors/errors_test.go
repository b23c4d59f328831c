package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeAuthFailed, "test error message")

	if err.Code != ErrCodeAuthFailed {
		t.Errorf("expected code %s, got %s", ErrCodeAuthFailed, err.Code)
	}

	if err.Message != "test error message" {
		t.Errorf("expected message 'test error message', got '%s'", err.Message)
	}

	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("underlying error")
	err := Wrap(ErrCodeRequestFailed, "request failed", cause)

	if err.Code != ErrCodeRequestFailed {
		t.Errorf("expected code %s, got %s", ErrCodeRequestFailed, err.Code)
	}

	if err.Cause != cause {
		t.Errorf("expected cause to be set")
	}

	// Test unwrapping
	if !errors.Is(err, cause) {
		t.Errorf("Wrap should support errors.Is")
	}
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name     string
		err      *PosError
		wantCode string
		wantMsg  string
	}{
		{
			name:     "simple error",
			err:      New(ErrCodeRoleUnknown, "unknown role"),
			wantCode: "ROLE-001",
			wantMsg:  "unknown role",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeRequestFailed, "request failed", fmt.Errorf("connection refused")),
			wantCode: "API-001",
			wantMsg:  "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errStr := tt.err.Error()

			if !strings.Contains(errStr, tt.wantCode) {
				t.Errorf("error string should contain code %s, got: %s", tt.wantCode, errStr)
			}

			if !strings.Contains(errStr, tt.wantMsg) {
				t.Errorf("error string should contain message '%s', got: %s", tt.wantMsg, errStr)
			}
		})
	}
}

func TestWithSuggestion(t *testing.T) {
	err := New(ErrCodeSessionMissing, "not logged in").
		WithSuggestion("Run 'posctl login' to authenticate")

	if len(err.Suggestions) != 1 {
		t.Errorf("expected 1 suggestion, got %d", len(err.Suggestions))
	}

	if err.Suggestions[0] != "Run 'posctl login' to authenticate" {
		t.Errorf("unexpected suggestion: %s", err.Suggestions[0])
	}
}

func TestAuthFailedErrorKeepsBackendMessage(t *testing.T) {
	err := NewAuthFailedError("Invalid credentials")

	if !strings.Contains(err.Error(), "Invalid credentials") {
		t.Errorf("backend message should be surfaced verbatim, got: %s", err.Error())
	}
}

func TestPasswordMismatchError(t *testing.T) {
	err := NewPasswordMismatchError()

	if err.Code != ErrCodePasswordMismatch {
		t.Errorf("expected code %s, got %s", ErrCodePasswordMismatch, err.Code)
	}

	if !strings.Contains(err.Error(), "Passwords do not match.") {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestOrphanedMerchantErrorCarriesID(t *testing.T) {
	cause := fmt.Errorf("bind rejected")
	err := NewOrphanedMerchantError("m1", cause)

	if err.Code != ErrCodeOrphanedMerchant {
		t.Errorf("expected code %s, got %s", ErrCodeOrphanedMerchant, err.Code)
	}

	if !strings.Contains(err.Error(), "m1") {
		t.Errorf("error should name the created merchant id, got: %s", err.Error())
	}

	if !errors.Is(err, cause) {
		t.Errorf("should unwrap to the bind failure")
	}
}
