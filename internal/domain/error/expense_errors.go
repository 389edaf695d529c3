// Package error defines domain-specific errors for the Trackify ledger.
package error

import "fmt"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense is absent or outside the caller's scope.
	ErrExpenseNotFound = fmt.Errorf("expense not found: %w", ErrNotFoundOrNotOwned)

	// ErrInvalidCategoryReference is returned when the expense category is malformed, missing or not owned.
	ErrInvalidCategoryReference = fmt.Errorf("invalid category reference: %w", ErrInvalidReference)

	// ErrInvalidAmount is returned when the amount is outside (0, 999999999.99].
	ErrInvalidAmount = fmt.Errorf("invalid amount: %w", ErrValidationFailure)

	// ErrPaymentModeTooLong is returned when the payment mode exceeds the maximum length.
	ErrPaymentModeTooLong = fmt.Errorf("payment mode too long: %w", ErrValidationFailure)

	// ErrNoteTooLong is returned when the note exceeds the maximum length.
	ErrNoteTooLong = fmt.Errorf("note too long: %w", ErrValidationFailure)

	// ErrMissingSpentAt is returned when no spend date is given.
	ErrMissingSpentAt = fmt.Errorf("spent-at date is required: %w", ErrValidationFailure)
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidAmount        ExpenseErrorCode = "EXP-010001"
	ErrCodePaymentModeTooLong   ExpenseErrorCode = "EXP-010002"
	ErrCodeNoteTooLong          ExpenseErrorCode = "EXP-010003"
	ErrCodeMissingSpentAt       ExpenseErrorCode = "EXP-010004"
	ErrCodeMissingExpenseFields ExpenseErrorCode = "EXP-010005"
	ErrCodeInvalidQuery         ExpenseErrorCode = "EXP-010006"

	// Reference errors (02XXXX)
	ErrCodeInvalidCategoryReference ExpenseErrorCode = "EXP-020001"
	ErrCodeExpenseNotFound          ExpenseErrorCode = "EXP-020002"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
