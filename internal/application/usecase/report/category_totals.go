// Package report contains the aggregation report use cases.
package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/trackify/backend/internal/application/adapter"
	"github.com/trackify/backend/internal/domain/valueobject"
)

// CategoryTotalsInput represents the input for the per-category totals report.
type CategoryTotalsInput struct {
	Scope valueobject.Scope
	From  *time.Time
	To    *time.Time
}

// CategoryTotal is the sum of one category.
// CategoryName is empty when the category no longer exists.
type CategoryTotal struct {
	CategoryID   uuid.UUID       `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
	Total        decimal.Decimal `json:"total"`
}

// CategoryTotalsOutput represents the output of the per-category totals report.
type CategoryTotalsOutput struct {
	Totals []CategoryTotal
}

// CategoryTotalsUseCase sums expenses per category.
type CategoryTotalsUseCase struct {
	reportRepo   adapter.ReportRepository
	categoryRepo adapter.CategoryRepository
	reportCache  adapter.ReportCache
}

// NewCategoryTotalsUseCase creates a new CategoryTotalsUseCase instance.
func NewCategoryTotalsUseCase(
	reportRepo adapter.ReportRepository,
	categoryRepo adapter.CategoryRepository,
	reportCache adapter.ReportCache,
) *CategoryTotalsUseCase {
	return &CategoryTotalsUseCase{
		reportRepo:   reportRepo,
		categoryRepo: categoryRepo,
		reportCache:  reportCache,
	}
}

// Execute returns one total per category, largest first.
func (uc *CategoryTotalsUseCase) Execute(ctx context.Context, input CategoryTotalsInput) (*CategoryTotalsOutput, error) {
	if err := validateRange(input.From, input.To); err != nil {
		return nil, err
	}

	totals, err := cached(ctx, uc.reportCache, input.Scope, reportByCategory, rangeParams(input.From, input.To), func() ([]CategoryTotal, error) {
		return uc.compute(ctx, input)
	})
	if err != nil {
		return nil, err
	}

	return &CategoryTotalsOutput{Totals: totals}, nil
}

func (uc *CategoryTotalsUseCase) compute(ctx context.Context, input CategoryTotalsInput) ([]CategoryTotal, error) {
	rows, err := uc.reportRepo.FindAmounts(ctx, adapter.ReportFilter{
		Scope: input.Scope,
		From:  input.From,
		To:    input.To,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load category amounts: %w", err)
	}

	sums := make(map[uuid.UUID]decimal.Decimal)
	ids := make([]uuid.UUID, 0)
	for _, row := range rows {
		if _, ok := sums[row.CategoryID]; !ok {
			ids = append(ids, row.CategoryID)
		}
		sums[row.CategoryID] = sums[row.CategoryID].Add(row.Amount)
	}

	totals := make([]CategoryTotal, 0, len(ids))
	if len(ids) == 0 {
		return totals, nil
	}

	names, err := uc.categoryRepo.FindNamesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve category names: %w", err)
	}

	for _, id := range ids {
		totals = append(totals, CategoryTotal{
			CategoryID:   id,
			CategoryName: names[id],
			Total:        sums[id],
		})
	}
	sort.Slice(totals, func(i, j int) bool {
		if cmp := totals[i].Total.Cmp(totals[j].Total); cmp != 0 {
			return cmp > 0
		}
		return totals[i].CategoryID.String() < totals[j].CategoryID.String()
	})

	return totals, nil
}
