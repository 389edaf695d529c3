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

// DeleteExpenseInput represents the input for expense deletion.
type DeleteExpenseInput struct {
	ExpenseID string
	Scope     valueobject.Scope
}

// DeleteExpenseOutput represents the output of expense deletion.
// Deleted is false when the expense does not exist or is outside the scope.
type DeleteExpenseOutput struct {
	Deleted bool
}

// DeleteExpenseUseCase handles expense deletion logic.
type DeleteExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	reportCache adapter.ReportCache
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(expenseRepo adapter.ExpenseRepository, reportCache adapter.ReportCache) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		expenseRepo: expenseRepo,
		reportCache: reportCache,
	}
}

// Execute performs the expense deletion.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, input DeleteExpenseInput) (*DeleteExpenseOutput, error) {
	expenseID, ok := entity.ParseID(input.ExpenseID)
	if !ok {
		return &DeleteExpenseOutput{Deleted: false}, nil
	}

	deleted, err := uc.expenseRepo.Delete(ctx, expenseID, input.Scope)
	if err != nil {
		return nil, fmt.Errorf("failed to delete expense: %w", err)
	}

	if deleted {
		if err := uc.reportCache.Invalidate(ctx, input.Scope); err != nil {
			slog.Warn("Failed to invalidate report cache", "error", err, "expense_id", expenseID)
		}
	}

	return &DeleteExpenseOutput{Deleted: deleted}, nil
}
