// Package error defines domain-specific errors for the Trackify ledger.
package error

import "fmt"

// Authentication domain errors.
var (
	// ErrAccountNotFound is returned when an account is not found in the system.
	ErrAccountNotFound = fmt.Errorf("account not found: %w", ErrNotFoundOrNotOwned)

	// ErrEmailAlreadyExists is returned when an email is already used by another account.
	ErrEmailAlreadyExists = fmt.Errorf("email already exists: %w", ErrConflict)

	// ErrInvalidCredentials is returned when login credentials are invalid.
	ErrInvalidCredentials = fmt.Errorf("invalid credentials: %w", ErrUnauthorized)

	// ErrInvalidToken is returned when a token is invalid, malformed or expired.
	ErrInvalidToken = fmt.Errorf("invalid token: %w", ErrUnauthorized)

	// ErrWeakPassword is returned when the provided password does not meet requirements.
	ErrWeakPassword = fmt.Errorf("password does not meet minimum requirements: %w", ErrValidationFailure)

	// ErrInvalidEmail is returned when the provided email format is invalid.
	ErrInvalidEmail = fmt.Errorf("invalid email format: %w", ErrValidationFailure)

	// ErrEmptyProfileUpdate is returned when a profile update carries no fields.
	ErrEmptyProfileUpdate = fmt.Errorf("profile update has no fields: %w", ErrValidationFailure)
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Registration and profile errors (01XXXX)
	ErrCodeEmailExists        AuthErrorCode = "AUTH-010001"
	ErrCodeWeakPassword       AuthErrorCode = "AUTH-010003"
	ErrCodeInvalidEmail       AuthErrorCode = "AUTH-010004"
	ErrCodeMissingFields      AuthErrorCode = "AUTH-010005"
	ErrCodeEmptyProfileUpdate AuthErrorCode = "AUTH-010006"

	// Login errors (02XXXX)
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-020001"
	ErrCodeAccountNotFound    AuthErrorCode = "AUTH-020002"
	ErrCodeRateLimited        AuthErrorCode = "AUTH-020003"

	// Token errors (03XXXX)
	ErrCodeInvalidToken AuthErrorCode = "AUTH-030001"
	ErrCodeMissingToken AuthErrorCode = "AUTH-030003"
	ErrCodeForbidden    AuthErrorCode = "AUTH-030004"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
