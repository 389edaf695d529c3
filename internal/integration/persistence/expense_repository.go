// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/trackify/backend/internal/application/adapter"
	"github.com/trackify/backend/internal/domain/entity"
	"github.com/trackify/backend/internal/domain/valueobject"
	"github.com/trackify/backend/internal/integration/persistence/model"
)

// expenseOrders maps each sort key to its ORDER BY clause. The id column breaks ties
// so that pages never overlap.
var expenseOrders = map[adapter.ExpenseSort]string{
	adapter.ExpenseSortSpentAtDesc: "spent_at DESC, id ASC",
	adapter.ExpenseSortSpentAtAsc:  "spent_at ASC, id ASC",
	adapter.ExpenseSortAmountDesc:  "amount DESC, id ASC",
	adapter.ExpenseSortAmountAsc:   "amount ASC, id ASC",
}

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// Create creates a new expense in the database.
func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	expenseModel := model.ExpenseFromEntity(expense)
	result := r.db.WithContext(ctx).Create(expenseModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Query counts the matching expenses and fetches one sorted page.
func (r *expenseRepository) Query(
	ctx context.Context,
	filter adapter.ExpenseFilter,
	sort adapter.ExpenseSort,
	pagination adapter.ExpensePagination,
) (*adapter.ExpenseQueryResult, error) {
	query := applyScope(r.db.WithContext(ctx).Model(&model.ExpenseModel{}), filter.Scope)

	// Apply filters
	if filter.From != nil {
		query = query.Where("spent_at >= ?", filter.From.UTC())
	}
	if filter.To != nil {
		query = query.Where("spent_at <= ?", filter.To.UTC())
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.MinAmount != nil {
		query = query.Where("amount >= ?", *filter.MinAmount)
	}
	if filter.MaxAmount != nil {
		query = query.Where("amount <= ?", *filter.MaxAmount)
	}

	// Get total count
	var total int64
	countQuery := query.Session(&gorm.Session{})
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, err
	}

	order, ok := expenseOrders[sort]
	if !ok {
		order = expenseOrders[adapter.ExpenseSortSpentAtDesc]
	}

	// Fetch the requested page
	var expenseModels []model.ExpenseModel
	offset := (pagination.Page - 1) * pagination.PageSize
	result := query.
		Order(order).
		Offset(offset).
		Limit(pagination.PageSize).
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	expenses := make([]*entity.Expense, len(expenseModels))
	for i, em := range expenseModels {
		expenses[i] = em.ToEntity()
	}

	return &adapter.ExpenseQueryResult{
		Expenses: expenses,
		Total:    total,
	}, nil
}

// Update replaces the editable fields of an expense within scope.
func (r *expenseRepository) Update(ctx context.Context, expense *entity.Expense, scope valueobject.Scope) (bool, error) {
	query := r.db.WithContext(ctx).Model(&model.ExpenseModel{}).Where("id = ?", expense.ID)
	result := applyScope(query, scope).Updates(map[string]any{
		"category_id":  expense.CategoryID,
		"amount":       expense.Amount,
		"payment_mode": expense.PaymentMode,
		"note":         expense.Note,
		"receipt_ref":  expense.ReceiptRef,
		"spent_at":     expense.SpentAt.UTC(),
	})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// Delete removes an expense within scope.
func (r *expenseRepository) Delete(ctx context.Context, id uuid.UUID, scope valueobject.Scope) (bool, error) {
	query := r.db.WithContext(ctx).Where("id = ?", id)
	result := applyScope(query, scope).Delete(&model.ExpenseModel{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// Count returns the number of expenses.
func (r *expenseRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.ExpenseModel{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
