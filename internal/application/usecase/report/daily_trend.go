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

// DailyTrendInput represents the input for the daily trend report.
type DailyTrendInput struct {
	Scope valueobject.Scope
	From  *time.Time
	To    *time.Time
}

// DailyTotal is the sum of one UTC calendar date.
type DailyTotal struct {
	Date  time.Time       `json:"date"`
	Total decimal.Decimal `json:"total"`
}

// DailyTrendOutput represents the output of the daily trend report.
type DailyTrendOutput struct {
	Totals []DailyTotal
}

// DailyTrendUseCase sums expenses per calendar date.
type DailyTrendUseCase struct {
	reportRepo  adapter.ReportRepository
	reportCache adapter.ReportCache
}

// NewDailyTrendUseCase creates a new DailyTrendUseCase instance.
func NewDailyTrendUseCase(reportRepo adapter.ReportRepository, reportCache adapter.ReportCache) *DailyTrendUseCase {
	return &DailyTrendUseCase{
		reportRepo:  reportRepo,
		reportCache: reportCache,
	}
}

// Execute returns one total per date that has expenses, ascending.
func (uc *DailyTrendUseCase) Execute(ctx context.Context, input DailyTrendInput) (*DailyTrendOutput, error) {
	if err := validateRange(input.From, input.To); err != nil {
		return nil, err
	}

	totals, err := cached(ctx, uc.reportCache, input.Scope, reportDaily, rangeParams(input.From, input.To), func() ([]DailyTotal, error) {
		return uc.compute(ctx, input)
	})
	if err != nil {
		return nil, err
	}

	return &DailyTrendOutput{Totals: totals}, nil
}

func (uc *DailyTrendUseCase) compute(ctx context.Context, input DailyTrendInput) ([]DailyTotal, error) {
	rows, err := uc.reportRepo.FindAmounts(ctx, adapter.ReportFilter{
		Scope: input.Scope,
		From:  input.From,
		To:    input.To,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load daily amounts: %w", err)
	}

	sums := make(map[time.Time]decimal.Decimal)
	for _, row := range rows {
		day := truncateToDate(row.SpentAt)
		sums[day] = sums[day].Add(row.Amount)
	}

	totals := make([]DailyTotal, 0, len(sums))
	for day, total := range sums {
		totals = append(totals, DailyTotal{Date: day, Total: total})
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Date.Before(totals[j].Date)
	})

	return totals, nil
}

// truncateToDate returns midnight UTC of the instant's UTC date.
func truncateToDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
