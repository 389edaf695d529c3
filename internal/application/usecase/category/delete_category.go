// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/trackify/backend/internal/application/adapter"
	"github.com/trackify/backend/internal/domain/entity"
	"github.com/trackify/backend/internal/domain/valueobject"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	CategoryID string
	Scope      valueobject.Scope
}

// DeleteCategoryOutput represents the output of category deletion.
// Deleted is false when the category does not exist or is outside the scope.
type DeleteCategoryOutput struct {
	Deleted bool
}

// DeleteCategoryUseCase handles category deletion logic.
// Expenses that still reference the category are left in place.
type DeleteCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	reportCache  adapter.ReportCache
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(categoryRepo adapter.CategoryRepository, reportCache adapter.ReportCache) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
		reportCache:  reportCache,
	}
}

// Execute performs the category deletion.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	categoryID, ok := entity.ParseID(input.CategoryID)
	if !ok {
		return &DeleteCategoryOutput{Deleted: false}, nil
	}

	deleted, err := uc.categoryRepo.Delete(ctx, categoryID, input.Scope)
	if err != nil {
		return nil, fmt.Errorf("failed to delete category: %w", err)
	}

	if deleted {
		if err := uc.reportCache.Invalidate(ctx, input.Scope); err != nil {
			slog.Warn("Failed to invalidate report cache", "error", err, "category_id", categoryID)
		}
	}

	return &DeleteCategoryOutput{Deleted: deleted}, nil
}
