// Package expense contains the expense ledger use cases.
package expense

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/trackify/backend/internal/application/adapter"
	"github.com/trackify/backend/internal/domain/entity"
	"github.com/trackify/backend/internal/domain/valueobject"
)

const (
	// DefaultPage is the page used when none or an invalid one is requested.
	DefaultPage = 1
	// DefaultPageSize is the page size used when none or an invalid one is requested.
	DefaultPageSize = 10
	// MaxPageSize is the largest page size honored.
	MaxPageSize = 100
)

// QueryExpensesInput represents the input for an expense query.
type QueryExpensesInput struct {
	Scope      valueobject.Scope
	Page       int
	PageSize   int
	From       *time.Time
	To         *time.Time
	CategoryID *string
	Min        *decimal.Decimal
	Max        *decimal.Decimal
	Sort       string
}

// QueryExpensesOutput represents one page of matching expenses.
type QueryExpensesOutput struct {
	Items      []*entity.ExpenseWithCategory
	Page       int
	PageSize   int
	TotalCount int64
}

// QueryExpensesUseCase handles the paginated, filtered expense listing.
type QueryExpensesUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	categoryRepo adapter.CategoryRepository
}

// NewQueryExpensesUseCase creates a new QueryExpensesUseCase instance.
func NewQueryExpensesUseCase(expenseRepo adapter.ExpenseRepository, categoryRepo adapter.CategoryRepository) *QueryExpensesUseCase {
	return &QueryExpensesUseCase{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute runs the query: count, fetch one page, then resolve category names in one lookup.
func (uc *QueryExpensesUseCase) Execute(ctx context.Context, input QueryExpensesInput) (*QueryExpensesOutput, error) {
	page, pageSize := NormalizePagination(input.Page, input.PageSize)

	output := &QueryExpensesOutput{
		Items:    []*entity.ExpenseWithCategory{},
		Page:     page,
		PageSize: pageSize,
	}

	filter := adapter.ExpenseFilter{
		Scope:     input.Scope,
		From:      input.From,
		To:        input.To,
		MinAmount: input.Min,
		MaxAmount: input.Max,
	}
	if input.CategoryID != nil && strings.TrimSpace(*input.CategoryID) != "" {
		categoryID, ok := entity.ParseID(*input.CategoryID)
		if !ok {
			// A malformed category filter matches nothing
			return output, nil
		}
		filter.CategoryID = &categoryID
	}

	result, err := uc.expenseRepo.Query(ctx, filter, ParseSort(input.Sort), adapter.ExpensePagination{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	output.TotalCount = result.Total

	if len(result.Expenses) == 0 {
		return output, nil
	}

	names, err := uc.categoryRepo.FindNamesByIDs(ctx, distinctCategoryIDs(result.Expenses))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve category names: %w", err)
	}

	output.Items = make([]*entity.ExpenseWithCategory, len(result.Expenses))
	for i, expense := range result.Expenses {
		output.Items[i] = &entity.ExpenseWithCategory{
			Expense:      expense,
			CategoryName: names[expense.CategoryID],
		}
	}

	return output, nil
}

// NormalizePagination resets out-of-range page and page size to their defaults.
func NormalizePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		pageSize = DefaultPageSize
	}
	return page, pageSize
}

// ParseSort maps a sort key onto a sort mode, case-insensitively.
// Unknown and empty keys sort by spent-at descending.
func ParseSort(key string) adapter.ExpenseSort {
	switch adapter.ExpenseSort(strings.ToLower(strings.TrimSpace(key))) {
	case adapter.ExpenseSortAmountDesc:
		return adapter.ExpenseSortAmountDesc
	case adapter.ExpenseSortAmountAsc:
		return adapter.ExpenseSortAmountAsc
	case adapter.ExpenseSortSpentAtAsc:
		return adapter.ExpenseSortSpentAtAsc
	default:
		return adapter.ExpenseSortSpentAtDesc
	}
}

// distinctCategoryIDs collects the category ids of a page, in first-seen order.
func distinctCategoryIDs(expenses []*entity.Expense) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(expenses))
	ids := make([]uuid.UUID, 0, len(expenses))
	for _, expense := range expenses {
		if _, ok := seen[expense.CategoryID]; ok {
			continue
		}
		seen[expense.CategoryID] = struct{}{}
		ids = append(ids, expense.CategoryID)
	}
	return ids
}
