// Package report contains the aggregation report use cases.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/trackify/backend/internal/application/adapter"
	domainerror "github.com/trackify/backend/internal/domain/error"
	"github.com/trackify/backend/internal/domain/valueobject"
)

// Report names used as cache key segments.
const (
	reportMonthly    = "monthly"
	reportByCategory = "by-category"
	reportDaily      = "daily-trend"
	reportTop        = "top-expenses"
)

// cached returns the cached payload for the report or computes and stores it.
// Cache failures are logged and never fail the report.
func cached[T any](
	ctx context.Context,
	cache adapter.ReportCache,
	scope valueobject.Scope,
	report, params string,
	compute func() (T, error),
) (T, error) {
	var value T
	found, err := cache.Get(ctx, scope, report, params, &value)
	if err != nil {
		slog.Warn("Report cache read failed", "error", err, "report", report)
	} else if found {
		return value, nil
	}

	value, err = compute()
	if err != nil {
		return value, err
	}

	if err := cache.Set(ctx, scope, report, params, value); err != nil {
		slog.Warn("Report cache write failed", "error", err, "report", report)
	}
	return value, nil
}

// validateRange rejects ranges whose end precedes their start.
func validateRange(from, to *time.Time) error {
	if from != nil && to != nil && to.Before(*from) {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidDateRange,
			"'to' must not be before 'from'",
			domainerror.ErrInvalidDateRange,
		)
	}
	return nil
}

// rangeParams renders an optional range as a cache key segment.
func rangeParams(from, to *time.Time) string {
	return fmt.Sprintf("from=%s&to=%s", formatBound(from), formatBound(to))
}

func formatBound(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.UTC().Format(time.RFC3339Nano)
}
