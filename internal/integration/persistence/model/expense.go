// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/trackify/backend/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database.
// CategoryID carries no foreign key so that deleting a category leaves its
// expenses in place.
type ExpenseModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID       `gorm:"type:uuid;not null;index:idx_expenses_owner_spent_at,priority:1"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	PaymentMode string          `gorm:"type:varchar(50);not null"`
	Note        *string         `gorm:"type:varchar(500)"`
	ReceiptRef  *string         `gorm:"type:text"`
	SpentAt     time.Time       `gorm:"not null;index:idx_expenses_owner_spent_at,priority:2,sort:desc"`
	CreatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	return &entity.Expense{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		CategoryID:  m.CategoryID,
		Amount:      m.Amount,
		PaymentMode: m.PaymentMode,
		Note:        m.Note,
		ReceiptRef:  m.ReceiptRef,
		SpentAt:     m.SpentAt.UTC(),
		CreatedAt:   m.CreatedAt.UTC(),
	}
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(expense *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:          expense.ID,
		OwnerID:     expense.OwnerID,
		CategoryID:  expense.CategoryID,
		Amount:      expense.Amount,
		PaymentMode: expense.PaymentMode,
		Note:        expense.Note,
		ReceiptRef:  expense.ReceiptRef,
		SpentAt:     expense.SpentAt.UTC(),
		CreatedAt:   expense.CreatedAt.UTC(),
	}
}

// AllModels lists the models migrated at startup.
func AllModels() []any {
	return []any{
		&AccountModel{},
		&CategoryModel{},
		&ExpenseModel{},
	}
}
