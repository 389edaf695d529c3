// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/trackify/backend/internal/application/adapter"
	"github.com/trackify/backend/internal/domain/entity"
	domainerror "github.com/trackify/backend/internal/domain/error"
	"github.com/trackify/backend/internal/domain/valueobject"
)

// UpdateCategoryInput represents the input for category update.
type UpdateCategoryInput struct {
	CategoryID string
	Scope      valueobject.Scope
	Name       string
	Icon       string
}

// UpdateCategoryOutput represents the output of category update.
// Updated is false when the category does not exist or is outside the scope.
type UpdateCategoryOutput struct {
	Updated bool
}

// UpdateCategoryUseCase handles category update logic.
type UpdateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	reportCache  adapter.ReportCache
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(categoryRepo adapter.CategoryRepository, reportCache adapter.ReportCache) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo: categoryRepo,
		reportCache:  reportCache,
	}
}

// Execute performs the category update.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	name, icon, err := normalizeCategoryFields(input.Name, input.Icon)
	if err != nil {
		return nil, err
	}

	categoryID, ok := entity.ParseID(input.CategoryID)
	if !ok {
		return &UpdateCategoryOutput{Updated: false}, nil
	}

	updated, err := uc.categoryRepo.Update(ctx, categoryID, input.Scope, name, icon)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNameExists) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNameExists,
				"a category with this name already exists",
				domainerror.ErrCategoryNameExists,
			)
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	// Category names appear in reports
	if updated {
		if err := uc.reportCache.Invalidate(ctx, input.Scope); err != nil {
			slog.Warn("Failed to invalidate report cache", "error", err, "category_id", categoryID)
		}
	}

	return &UpdateCategoryOutput{Updated: updated}, nil
}
