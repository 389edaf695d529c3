// Package expense contains the expense ledger use cases.
package expense

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/trackify/backend/internal/application/adapter"
	"github.com/trackify/backend/internal/domain/entity"
	"github.com/trackify/backend/internal/domain/valueobject"
)

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	Scope valueobject.Scope
	ExpenseFields
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense      *entity.Expense
	CategoryName string
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	categoryRepo adapter.CategoryRepository
	reportCache  adapter.ReportCache
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	categoryRepo adapter.CategoryRepository,
	reportCache adapter.ReportCache,
) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
		reportCache:  reportCache,
	}
}

// Execute performs the expense creation. The expense is owned by the
// category's owner, so an admin writing under another account's category
// attributes the expense to that account.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	fields := input.ExpenseFields
	if err := fields.validate(); err != nil {
		return nil, err
	}

	category, err := resolveCategory(ctx, uc.categoryRepo, input.Scope, fields.CategoryID)
	if err != nil {
		return nil, err
	}

	expense := entity.NewExpense(
		category.OwnerID,
		category.ID,
		fields.Amount,
		fields.PaymentMode,
		fields.Note,
		fields.ReceiptRef,
		fields.SpentAt,
	)

	// Save expense to database
	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	if err := uc.reportCache.Invalidate(ctx, valueobject.OwnerScope(category.OwnerID)); err != nil {
		slog.Warn("Failed to invalidate report cache", "error", err, "account_id", category.OwnerID)
	}

	return &CreateExpenseOutput{
		Expense:      expense,
		CategoryName: category.Name,
	}, nil
}
