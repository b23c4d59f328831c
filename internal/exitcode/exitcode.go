package exitcode

import (
	stderrors "errors"
	"os"
	"strings"

	"github.com/shopipy/posctl/internal/errors"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args, etc.)
	UsageError = 2

	// AuthError indicates an authentication failure
	AuthError = 3

	// RoleError indicates the account role could not be resolved
	RoleError = 4

	// BindError indicates a merchant binding failure
	BindError = 5

	// NetworkError indicates a network connectivity issue
	NetworkError = 6

	// Interrupted indicates the user cancelled the operation
	Interrupted = 130
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	if err == nil {
		Exit(Success)
		return
	}

	Exit(DetermineExitCode(err))
}

// DetermineExitCode analyzes an error and returns the appropriate exit code
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	var posErr *errors.PosError
	if stderrors.As(err, &posErr) {
		switch {
		case strings.HasPrefix(string(posErr.Code), "AUTH-"),
			strings.HasPrefix(string(posErr.Code), "SESSION-"):
			return AuthError
		case strings.HasPrefix(string(posErr.Code), "ROLE-"):
			return RoleError
		case strings.HasPrefix(string(posErr.Code), "BIND-"):
			return BindError
		case posErr.Code == errors.ErrCodeInvalidID:
			return UsageError
		}
	}

	errMsg := strings.ToLower(err.Error())

	// Network errors
	if strings.Contains(errMsg, "connection") || strings.Contains(errMsg, "timeout") {
		return NetworkError
	}
	if strings.Contains(errMsg, "unreachable") || strings.Contains(errMsg, "no such host") {
		return NetworkError
	}

	// Usage errors
	if strings.Contains(errMsg, "invalid flag") || strings.Contains(errMsg, "unknown command") {
		return UsageError
	}
	if strings.Contains(errMsg, "required flag") || strings.Contains(errMsg, "missing argument") {
		return UsageError
	}

	return GeneralError
}

// Description returns a human-readable description of an exit code
func Description(code int) string {
	switch code {
	case Success:
		return "Success"
	case GeneralError:
		return "General error"
	case UsageError:
		return "Usage error (invalid flags or arguments)"
	case AuthError:
		return "Authentication error"
	case RoleError:
		return "Role resolution error"
	case BindError:
		return "Merchant binding error"
	case NetworkError:
		return "Network error"
	case Interrupted:
		return "Interrupted"
	default:
		return "Unknown error"
	}
}
