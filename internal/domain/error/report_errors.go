// Package error defines domain-specific errors for the Trackify ledger.
package error

import "fmt"

// Report domain errors.
var (
	// ErrInvalidDateRange is returned when a report range ends before it starts.
	ErrInvalidDateRange = fmt.Errorf("invalid date range: %w", ErrValidationFailure)

	// ErrInvalidReportParameter is returned when a report query parameter cannot be parsed.
	ErrInvalidReportParameter = fmt.Errorf("invalid report parameter: %w", ErrValidationFailure)
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidDateRange   ReportErrorCode = "RPT-010001"
	ErrCodeInvalidReportParam ReportErrorCode = "RPT-010002"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
