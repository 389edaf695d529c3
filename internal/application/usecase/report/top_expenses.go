// Package report contains the aggregation report use cases.
package report

import (
	"context"
	"fmt"

	"github.com/trackify/backend/internal/application/adapter"
	"github.com/trackify/backend/internal/domain/entity"
	"github.com/trackify/backend/internal/domain/valueobject"
)

const (
	// DefaultTopLimit is the number of expenses returned when no limit is given.
	DefaultTopLimit = 5
	// MinTopLimit and MaxTopLimit bound the requested limit.
	MinTopLimit = 1
	MaxTopLimit = 50
)

// TopExpensesInput represents the input for the top expenses report.
type TopExpensesInput struct {
	Scope valueobject.Scope
	Limit int
}

// TopExpensesOutput represents the output of the top expenses report.
type TopExpensesOutput struct {
	Expenses []*entity.Expense
}

// TopExpensesUseCase ranks the highest-amount expenses in scope.
type TopExpensesUseCase struct {
	reportRepo  adapter.ReportRepository
	reportCache adapter.ReportCache
}

// NewTopExpensesUseCase creates a new TopExpensesUseCase instance.
func NewTopExpensesUseCase(reportRepo adapter.ReportRepository, reportCache adapter.ReportCache) *TopExpensesUseCase {
	return &TopExpensesUseCase{
		reportRepo:  reportRepo,
		reportCache: reportCache,
	}
}

// Execute returns at most the clamped limit of expenses, highest amount first.
func (uc *TopExpensesUseCase) Execute(ctx context.Context, input TopExpensesInput) (*TopExpensesOutput, error) {
	limit := ClampLimit(input.Limit)

	expenses, err := cached(ctx, uc.reportCache, input.Scope, reportTop, fmt.Sprintf("limit=%d", limit), func() ([]*entity.Expense, error) {
		expenses, err := uc.reportRepo.FindTopExpenses(ctx, input.Scope, limit)
		if err != nil {
			return nil, fmt.Errorf("failed to load top expenses: %w", err)
		}
		return expenses, nil
	})
	if err != nil {
		return nil, err
	}

	return &TopExpensesOutput{Expenses: expenses}, nil
}

// ClampLimit bounds a requested limit to [MinTopLimit, MaxTopLimit].
func ClampLimit(limit int) int {
	if limit < MinTopLimit {
		return MinTopLimit
	}
	if limit > MaxTopLimit {
		return MaxTopLimit
	}
	return limit
}
