// Package admin contains administrator-only use cases.
package admin

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/trackify/backend/internal/application/adapter"
)

// GetStatsOutput holds the system-wide record counts.
type GetStatsOutput struct {
	Accounts   int64
	Categories int64
	Expenses   int64
}

// GetStatsUseCase counts the records of every table.
type GetStatsUseCase struct {
	accountRepo  adapter.AccountRepository
	categoryRepo adapter.CategoryRepository
	expenseRepo  adapter.ExpenseRepository
}

// NewGetStatsUseCase creates a new GetStatsUseCase instance.
func NewGetStatsUseCase(
	accountRepo adapter.AccountRepository,
	categoryRepo adapter.CategoryRepository,
	expenseRepo adapter.ExpenseRepository,
) *GetStatsUseCase {
	return &GetStatsUseCase{
		accountRepo:  accountRepo,
		categoryRepo: categoryRepo,
		expenseRepo:  expenseRepo,
	}
}

// Execute runs the three counts concurrently.
func (uc *GetStatsUseCase) Execute(ctx context.Context) (*GetStatsOutput, error) {
	var out GetStatsOutput
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := uc.accountRepo.Count(gctx)
		if err != nil {
			return fmt.Errorf("failed to count accounts: %w", err)
		}
		out.Accounts = n
		return nil
	})
	g.Go(func() error {
		n, err := uc.categoryRepo.Count(gctx)
		if err != nil {
			return fmt.Errorf("failed to count categories: %w", err)
		}
		out.Categories = n
		return nil
	})
	g.Go(func() error {
		n, err := uc.expenseRepo.Count(gctx)
		if err != nil {
			return fmt.Errorf("failed to count expenses: %w", err)
		}
		out.Expenses = n
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}
