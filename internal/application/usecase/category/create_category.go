// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/trackify/backend/internal/application/adapter"
	"github.com/trackify/backend/internal/domain/entity"
	domainerror "github.com/trackify/backend/internal/domain/error"
)

const (
	// MaxCategoryNameLength is the maximum allowed length for category names.
	MaxCategoryNameLength = 50
	// MaxIconLength is the maximum allowed length for icon glyphs.
	MaxIconLength = 16
)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	OwnerID uuid.UUID
	Name    string
	Icon    string // Optional, defaults to DefaultCategoryIcon
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category creation.
// Name uniqueness per owner is enforced by the store, not checked beforehand.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	name, icon, err := normalizeCategoryFields(input.Name, input.Icon)
	if err != nil {
		return nil, err
	}

	category := entity.NewCategory(input.OwnerID, name, icon)

	// Save category to database
	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, domainerror.ErrCategoryNameExists) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNameExists,
				"a category with this name already exists",
				domainerror.ErrCategoryNameExists,
			)
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryOutput{
		Category: category,
	}, nil
}

// normalizeCategoryFields trims and validates name and icon, defaulting the icon.
func normalizeCategoryFields(name, icon string) (string, string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "", domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameRequired,
			"category name is required",
			domainerror.ErrCategoryNameRequired,
		)
	}
	if utf8.RuneCountInString(name) > MaxCategoryNameLength {
		return "", "", domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameTooLong,
			fmt.Sprintf("category name must not exceed %d characters", MaxCategoryNameLength),
			domainerror.ErrCategoryNameTooLong,
		)
	}

	icon = strings.TrimSpace(icon)
	if icon == "" {
		icon = entity.DefaultCategoryIcon
	}
	if utf8.RuneCountInString(icon) > MaxIconLength {
		return "", "", domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryIconTooLong,
			fmt.Sprintf("icon must not exceed %d characters", MaxIconLength),
			domainerror.ErrCategoryIconTooLong,
		)
	}

	return name, icon, nil
}
