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

// ExpenseSort selects the ordering of an expense query.
type ExpenseSort string

const (
	ExpenseSortSpentAtDesc ExpenseSort = "spentat_desc"
	ExpenseSortSpentAtAsc  ExpenseSort = "spentat_asc"
	ExpenseSortAmountDesc  ExpenseSort = "amount_desc"
	ExpenseSortAmountAsc   ExpenseSort = "amount_asc"
)

// ExpenseFilter holds the predicate of an expense query. Nil fields are not applied.
type ExpenseFilter struct {
	Scope      valueobject.Scope
	From       *time.Time
	To         *time.Time
	CategoryID *uuid.UUID
	MinAmount  *decimal.Decimal
	MaxAmount  *decimal.Decimal
}

// ExpensePagination holds the page window of an expense query.
type ExpensePagination struct {
	Page     int
	PageSize int
}

// ExpenseQueryResult holds one page of expenses and the total match count.
type ExpenseQueryResult struct {
	Expenses []*entity.Expense
	Total    int64
}

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// Create inserts a new expense.
	Create(ctx context.Context, expense *entity.Expense) error

	// Query counts the matching expenses, then fetches one sorted page.
	Query(ctx context.Context, filter ExpenseFilter, sort ExpenseSort, pagination ExpensePagination) (*ExpenseQueryResult, error)

	// Update replaces category, amount, payment mode, note, receipt and spent-at
	// on the expense matching expense.ID within scope. The owner is never changed.
	// It reports whether exactly one row was modified.
	Update(ctx context.Context, expense *entity.Expense, scope valueobject.Scope) (bool, error)

	// Delete removes the expense matching id within scope.
	// It reports whether exactly one row was removed.
	Delete(ctx context.Context, id uuid.UUID, scope valueobject.Scope) (bool, error)

	// Count returns the number of expenses.
	Count(ctx context.Context) (int64, error)
}
