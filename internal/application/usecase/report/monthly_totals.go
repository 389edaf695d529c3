// Package report contains the aggregation report use cases.
package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/trackify/backend/internal/application/adapter"
	"github.com/trackify/backend/internal/domain/valueobject"
)

// MonthlyTotalsInput represents the input for the monthly totals report.
type MonthlyTotalsInput struct {
	Scope valueobject.Scope
	// Year selects the calendar year. Zero or negative means the current UTC year.
	Year int
}

// MonthlyTotal is the sum of one calendar month.
type MonthlyTotal struct {
	Month int             `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// MonthlyTotalsOutput represents the output of the monthly totals report.
type MonthlyTotalsOutput struct {
	Year   int
	Totals []MonthlyTotal
}

// MonthlyTotalsUseCase sums expenses per calendar month of one year.
type MonthlyTotalsUseCase struct {
	reportRepo  adapter.ReportRepository
	reportCache adapter.ReportCache
	now         func() time.Time
}

// NewMonthlyTotalsUseCase creates a new MonthlyTotalsUseCase instance.
func NewMonthlyTotalsUseCase(reportRepo adapter.ReportRepository, reportCache adapter.ReportCache) *MonthlyTotalsUseCase {
	return &MonthlyTotalsUseCase{
		reportRepo:  reportRepo,
		reportCache: reportCache,
		now:         time.Now,
	}
}

// Execute returns the months of the year that have expenses, ascending.
// Months without expenses are absent.
func (uc *MonthlyTotalsUseCase) Execute(ctx context.Context, input MonthlyTotalsInput) (*MonthlyTotalsOutput, error) {
	year := input.Year
	if year <= 0 {
		year = uc.now().UTC().Year()
	}

	totals, err := cached(ctx, uc.reportCache, input.Scope, reportMonthly, fmt.Sprintf("year=%d", year), func() ([]MonthlyTotal, error) {
		return uc.compute(ctx, input.Scope, year)
	})
	if err != nil {
		return nil, err
	}

	return &MonthlyTotalsOutput{
		Year:   year,
		Totals: totals,
	}, nil
}

func (uc *MonthlyTotalsUseCase) compute(ctx context.Context, scope valueobject.Scope, year int) ([]MonthlyTotal, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	before := from.AddDate(1, 0, 0)

	rows, err := uc.reportRepo.FindAmounts(ctx, adapter.ReportFilter{
		Scope:  scope,
		From:   &from,
		Before: &before,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load monthly amounts: %w", err)
	}

	sums := make(map[int]decimal.Decimal)
	for _, row := range rows {
		month := int(row.SpentAt.UTC().Month())
		sums[month] = sums[month].Add(row.Amount)
	}

	totals := make([]MonthlyTotal, 0, len(sums))
	for month, total := range sums {
		totals = append(totals, MonthlyTotal{Month: month, Total: total})
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Month < totals[j].Month
	})

	return totals, nil
}
