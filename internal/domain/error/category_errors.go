// Package error defines domain-specific errors for the Trackify ledger.
package error

import "fmt"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is absent or outside the caller's scope.
	ErrCategoryNotFound = fmt.Errorf("category not found: %w", ErrNotFoundOrNotOwned)

	// ErrCategoryNameExists is returned when the owner already has a category with the same name.
	ErrCategoryNameExists = fmt.Errorf("category name already exists: %w", ErrConflict)

	// ErrCategoryNameRequired is returned when the category name is blank.
	ErrCategoryNameRequired = fmt.Errorf("category name is required: %w", ErrValidationFailure)

	// ErrCategoryNameTooLong is returned when the category name exceeds the maximum length.
	ErrCategoryNameTooLong = fmt.Errorf("category name too long: %w", ErrValidationFailure)

	// ErrCategoryIconTooLong is returned when the icon exceeds the maximum length.
	ErrCategoryIconTooLong = fmt.Errorf("category icon too long: %w", ErrValidationFailure)
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCategoryNameTooLong   CategoryErrorCode = "CAT-010001"
	ErrCodeCategoryIconTooLong   CategoryErrorCode = "CAT-010002"
	ErrCodeCategoryNameRequired  CategoryErrorCode = "CAT-010003"
	ErrCodeCategoryNotFound      CategoryErrorCode = "CAT-010004"
	ErrCodeCategoryNameExists    CategoryErrorCode = "CAT-010005"
	ErrCodeMissingCategoryFields CategoryErrorCode = "CAT-010008"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
