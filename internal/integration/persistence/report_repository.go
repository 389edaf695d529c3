// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/trackify/backend/internal/application/adapter"
	"github.com/trackify/backend/internal/domain/entity"
	"github.com/trackify/backend/internal/domain/valueobject"
	"github.com/trackify/backend/internal/integration/persistence/model"
)

// reportRepository implements the adapter.ReportRepository interface.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository instance.
func NewReportRepository(db *gorm.DB) adapter.ReportRepository {
	return &reportRepository{
		db: db,
	}
}

// amountRow is the scan target of FindAmounts.
type amountRow struct {
	CategoryID uuid.UUID
	Amount     decimal.Decimal
	SpentAt    time.Time
}

// FindAmounts projects the matching expenses onto category, amount and spent-at.
func (r *reportRepository) FindAmounts(ctx context.Context, filter adapter.ReportFilter) ([]adapter.AmountRow, error) {
	query := applyScope(r.db.WithContext(ctx).Model(&model.ExpenseModel{}), filter.Scope)

	if filter.From != nil {
		query = query.Where("spent_at >= ?", filter.From.UTC())
	}
	if filter.To != nil {
		query = query.Where("spent_at <= ?", filter.To.UTC())
	}
	if filter.Before != nil {
		query = query.Where("spent_at < ?", filter.Before.UTC())
	}

	var rows []amountRow
	if err := query.Select("category_id, amount, spent_at").Find(&rows).Error; err != nil {
		return nil, err
	}

	amounts := make([]adapter.AmountRow, len(rows))
	for i, row := range rows {
		amounts[i] = adapter.AmountRow{
			CategoryID: row.CategoryID,
			Amount:     row.Amount,
			SpentAt:    row.SpentAt.UTC(),
		}
	}
	return amounts, nil
}

// FindTopExpenses retrieves the highest-amount expenses in scope.
func (r *reportRepository) FindTopExpenses(ctx context.Context, scope valueobject.Scope, limit int) ([]*entity.Expense, error) {
	var expenseModels []model.ExpenseModel
	result := applyScope(r.db.WithContext(ctx), scope).
		Order("amount DESC, spent_at DESC, id ASC").
		Limit(limit).
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	expenses := make([]*entity.Expense, len(expenseModels))
	for i, em := range expenseModels {
		expenses[i] = em.ToEntity()
	}
	return expenses, nil
}
