// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/trackify/backend/internal/application/adapter"
	"github.com/trackify/backend/internal/domain/entity"
	"github.com/trackify/backend/internal/domain/valueobject"
)

// ListCategoriesInput represents the input for listing categories.
type ListCategoriesInput struct {
	Scope valueobject.Scope
	// OwnerID narrows an admin listing to one account. Ignored for non-admins.
	OwnerID *uuid.UUID
}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*entity.Category
}

// ListCategoriesUseCase handles listing categories.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute returns the categories visible in the input scope, newest first.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	scope := input.Scope
	if scope.IsAdmin && input.OwnerID != nil {
		scope = valueobject.OwnerScope(*input.OwnerID)
	}

	categories, err := uc.categoryRepo.List(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return &ListCategoriesOutput{
		Categories: categories,
	}, nil
}
