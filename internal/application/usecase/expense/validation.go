// Package expense contains the expense ledger use cases.
package expense

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/trackify/backend/internal/application/adapter"
	"github.com/trackify/backend/internal/domain/entity"
	domainerror "github.com/trackify/backend/internal/domain/error"
	"github.com/trackify/backend/internal/domain/valueobject"
)

const (
	// MaxPaymentModeLength is the maximum allowed length for payment modes.
	MaxPaymentModeLength = 50
	// MaxNoteLength is the maximum allowed length for notes.
	MaxNoteLength = 500
)

// ExpenseFields holds the writable fields shared by create and update.
type ExpenseFields struct {
	CategoryID  string
	Amount      decimal.Decimal
	PaymentMode string
	Note        *string
	ReceiptRef  *string
	SpentAt     time.Time
}

// validate checks the field preconditions and trims the optional text fields.
func (f *ExpenseFields) validate() error {
	if !entity.IsValidExpenseAmount(f.Amount) {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidAmount,
			"amount must be greater than 0 and at most 999999999.99",
			domainerror.ErrInvalidAmount,
		)
	}

	f.PaymentMode = strings.TrimSpace(f.PaymentMode)
	if utf8.RuneCountInString(f.PaymentMode) > MaxPaymentModeLength {
		return domainerror.NewExpenseError(
			domainerror.ErrCodePaymentModeTooLong,
			fmt.Sprintf("payment mode must not exceed %d characters", MaxPaymentModeLength),
			domainerror.ErrPaymentModeTooLong,
		)
	}

	f.Note = trimOptional(f.Note)
	if f.Note != nil && utf8.RuneCountInString(*f.Note) > MaxNoteLength {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeNoteTooLong,
			fmt.Sprintf("note must not exceed %d characters", MaxNoteLength),
			domainerror.ErrNoteTooLong,
		)
	}

	f.ReceiptRef = trimOptional(f.ReceiptRef)

	if f.SpentAt.IsZero() {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeMissingSpentAt,
			"spentAt is required",
			domainerror.ErrMissingSpentAt,
		)
	}

	return nil
}

// resolveCategory loads the referenced category and checks that the scope may use it.
func resolveCategory(ctx context.Context, categoryRepo adapter.CategoryRepository, scope valueobject.Scope, rawID string) (*entity.Category, error) {
	invalid := domainerror.NewExpenseError(
		domainerror.ErrCodeInvalidCategoryReference,
		"invalid category",
		domainerror.ErrInvalidCategoryReference,
	)

	categoryID, ok := entity.ParseID(rawID)
	if !ok {
		return nil, invalid
	}

	category, err := categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	if category == nil || !scope.Allows(category.OwnerID) {
		return nil, invalid
	}

	return category, nil
}

// trimOptional trims an optional string, mapping blank values to nil.
func trimOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
