// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/trackify/backend/internal/domain/entity"
	"github.com/trackify/backend/internal/domain/valueobject"
)

// ReportFilter holds the base predicate shared by all reports.
// From and To are inclusive bounds on spent-at, Before is an exclusive upper bound.
type ReportFilter struct {
	Scope  valueobject.Scope
	From   *time.Time
	To     *time.Time
	Before *time.Time
}

// AmountRow is the projection of an expense used for aggregation.
type AmountRow struct {
	CategoryID uuid.UUID
	Amount     decimal.Decimal
	SpentAt    time.Time
}

// ReportRepository defines the read side used by the aggregation reports.
type ReportRepository interface {
	// FindAmounts returns the category, amount and spent-at of every matching expense.
	FindAmounts(ctx context.Context, filter ReportFilter) ([]AmountRow, error)

	// FindTopExpenses returns the highest-amount expenses in scope, at most limit of them.
	FindTopExpenses(ctx context.Context, scope valueobject.Scope, limit int) ([]*entity.Expense, error)
}
