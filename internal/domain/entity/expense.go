// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxExpenseAmount is the largest amount a single expense may record.
var MaxExpenseAmount = decimal.RequireFromString("999999999.99")

// Expense represents a single recorded spend.
type Expense struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	CategoryID  uuid.UUID
	Amount      decimal.Decimal
	PaymentMode string
	Note        *string
	ReceiptRef  *string
	SpentAt     time.Time
	CreatedAt   time.Time
}

// NewExpense creates a new Expense entity. Times are stored in UTC.
func NewExpense(ownerID, categoryID uuid.UUID, amount decimal.Decimal, paymentMode string, note, receiptRef *string, spentAt time.Time) *Expense {
	return &Expense{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		CategoryID:  categoryID,
		Amount:      amount,
		PaymentMode: paymentMode,
		Note:        note,
		ReceiptRef:  receiptRef,
		SpentAt:     spentAt.UTC(),
		CreatedAt:   time.Now().UTC(),
	}
}

// IsValidExpenseAmount reports whether amount lies in (0, MaxExpenseAmount].
func IsValidExpenseAmount(amount decimal.Decimal) bool {
	return amount.IsPositive() && amount.LessThanOrEqual(MaxExpenseAmount)
}

// ExpenseWithCategory pairs an expense with its resolved category name.
// CategoryName is empty when the category no longer exists.
type ExpenseWithCategory struct {
	Expense      *Expense
	CategoryName string
}
