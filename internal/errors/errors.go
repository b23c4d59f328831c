package errors

import (
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Authentication errors (AUTH-001 to AUTH-099)
	ErrCodeAuthFailed       ErrorCode = "AUTH-001"
	ErrCodeRegisterFailed   ErrorCode = "AUTH-002"
	ErrCodePasswordMismatch ErrorCode = "AUTH-003"

	// Session errors (SESSION-001 to SESSION-099)
	ErrCodeSessionMissing ErrorCode = "SESSION-001"
	ErrCodeSessionRead    ErrorCode = "SESSION-002"
	ErrCodeSessionWrite   ErrorCode = "SESSION-003"

	// Role errors (ROLE-001 to ROLE-099)
	ErrCodeRoleUnknown   ErrorCode = "ROLE-001"
	ErrCodeRoleResolve   ErrorCode = "ROLE-002"

	// Merchant binding errors (BIND-001 to BIND-099)
	ErrCodeBindFailed       ErrorCode = "BIND-001"
	ErrCodeOrphanedMerchant ErrorCode = "BIND-002"
	ErrCodeMerchantList     ErrorCode = "BIND-003"
	ErrCodeUnbindFailed     ErrorCode = "BIND-004"

	// API errors (API-001 to API-099)
	ErrCodeRequestFailed  ErrorCode = "API-001"
	ErrCodeDecodeFailed   ErrorCode = "API-002"
	ErrCodeInvalidID      ErrorCode = "API-003"

	// Configuration errors (CONFIG-001 to CONFIG-099)
	ErrCodeConfigInvalid ErrorCode = "CONFIG-001"
	ErrCodeConfigRead    ErrorCode = "CONFIG-002"
)

// PosError represents an enhanced error with code, suggestions, and a cause
type PosError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	Cause       error
}

// Error implements the error interface
func (e *PosError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *PosError) Unwrap() error {
	return e.Cause
}

// New creates a new PosError
func New(code ErrorCode, message string) *PosError {
	return &PosError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new PosError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *PosError {
	return &PosError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *PosError) WithSuggestion(suggestion string) *PosError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *PosError) WithSuggestions(suggestions ...string) *PosError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// Common error constructors for frequently used errors

// NewAuthFailedError creates a login failure error. The message comes from
// the backend response body and is surfaced verbatim.
func NewAuthFailedError(message string) *PosError {
	if message == "" {
		message = "login failed"
	}
	return New(ErrCodeAuthFailed, message).
		WithSuggestion("Check your email and password").
		WithSuggestion("Run 'posctl login' to try again")
}

// NewPasswordMismatchError creates a client-side password mismatch error.
// No network call is made when this is returned.
func NewPasswordMismatchError() *PosError {
	return New(ErrCodePasswordMismatch, "Passwords do not match.").
		WithSuggestion("Re-enter the password and repeat password fields")
}

// NewUnknownRoleError creates an error for a role outside the known set.
// The role is rejected, never defaulted.
func NewUnknownRoleError(role string) *PosError {
	return New(ErrCodeRoleUnknown, fmt.Sprintf("unknown role: %q", role)).
		WithSuggestion("Contact an administrator to fix the account role")
}

// NewSessionMissingError creates a not-logged-in error
func NewSessionMissingError() *PosError {
	return New(ErrCodeSessionMissing, "not logged in").
		WithSuggestion("Run 'posctl login' to authenticate")
}

// NewOrphanedMerchantError reports a create-then-bind compound operation
// where the merchant was created but binding it to the user failed. The
// created merchant id is preserved so the operation can be recovered by
// assigning it manually.
func NewOrphanedMerchantError(merchantID string, cause error) *PosError {
	return Wrap(ErrCodeOrphanedMerchant,
		fmt.Sprintf("merchant %s was created but could not be bound to your account", merchantID), cause).
		WithSuggestion(fmt.Sprintf("Run 'posctl merchant assign %s' to complete the binding", merchantID)).
		WithSuggestion(fmt.Sprintf("Or run 'posctl merchant delete %s' to remove the orphaned merchant", merchantID))
}

// NewRequestFailedError creates an error for any non-success CRUD response
func NewRequestFailedError(message string, cause error) *PosError {
	if message == "" {
		message = "request failed"
	}
	return Wrap(ErrCodeRequestFailed, message, cause).
		WithSuggestion("Retry the command").
		WithSuggestion("Check that the POS backend is reachable")
}

// NewInvalidIDError creates an error for a malformed id argument
func NewInvalidIDError(kind, value string) *PosError {
	return New(ErrCodeInvalidID, fmt.Sprintf("invalid %s id: %q", kind, value)).
		WithSuggestion(fmt.Sprintf("Pass a valid UUID, e.g. from 'posctl %s list'", kind))
}
