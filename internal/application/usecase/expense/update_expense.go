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

// UpdateExpenseInput represents the input for expense update.
type UpdateExpenseInput struct {
	ExpenseID string
	Scope     valueobject.Scope
	ExpenseFields
}

// UpdateExpenseOutput represents the output of expense update.
// Updated is false when the expense does not exist or is outside the scope.
type UpdateExpenseOutput struct {
	Updated bool
}

// UpdateExpenseUseCase handles expense update logic.
type UpdateExpenseUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	categoryRepo adapter.CategoryRepository
	reportCache  adapter.ReportCache
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	categoryRepo adapter.CategoryRepository,
	reportCache adapter.ReportCache,
) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
		reportCache:  reportCache,
	}
}

// Execute replaces every writable field of the expense. The owner is kept.
// An admin may move the expense into a category of another account; the
// expense then stays with its owner and lists that category's name.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	expenseID, ok := entity.ParseID(input.ExpenseID)
	if !ok {
		return &UpdateExpenseOutput{Updated: false}, nil
	}

	fields := input.ExpenseFields
	if err := fields.validate(); err != nil {
		return nil, err
	}

	category, err := resolveCategory(ctx, uc.categoryRepo, input.Scope, fields.CategoryID)
	if err != nil {
		return nil, err
	}

	expense := &entity.Expense{
		ID:          expenseID,
		CategoryID:  category.ID,
		Amount:      fields.Amount,
		PaymentMode: fields.PaymentMode,
		Note:        fields.Note,
		ReceiptRef:  fields.ReceiptRef,
		SpentAt:     fields.SpentAt.UTC(),
	}

	updated, err := uc.expenseRepo.Update(ctx, expense, input.Scope)
	if err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	if updated {
		if err := uc.reportCache.Invalidate(ctx, input.Scope); err != nil {
			slog.Warn("Failed to invalidate report cache", "error", err, "expense_id", expenseID)
		}
	}

	return &UpdateExpenseOutput{Updated: updated}, nil
}
