// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/trackify/backend/internal/application/adapter"
	"github.com/trackify/backend/internal/domain/entity"
	domainerror "github.com/trackify/backend/internal/domain/error"
)

// EnsureDefaultCategoriesUseCase seeds the starter category set for an account.
type EnsureDefaultCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewEnsureDefaultCategoriesUseCase creates a new EnsureDefaultCategoriesUseCase instance.
func NewEnsureDefaultCategoriesUseCase(categoryRepo adapter.CategoryRepository) *EnsureDefaultCategoriesUseCase {
	return &EnsureDefaultCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute inserts the default categories when the account owns none.
// It is safe to call on every login; when two first calls race, the
// (owner, name) unique index rejects the second batch and the call is a no-op.
func (uc *EnsureDefaultCategoriesUseCase) Execute(ctx context.Context, ownerID uuid.UUID) error {
	count, err := uc.categoryRepo.CountByOwner(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	if err := uc.categoryRepo.CreateBatch(ctx, entity.NewDefaultCategories(ownerID)); err != nil {
		if errors.Is(err, domainerror.ErrCategoryNameExists) {
			slog.Info("Default categories already seeded concurrently", "account_id", ownerID)
			return nil
		}
		return fmt.Errorf("failed to seed default categories: %w", err)
	}

	slog.Info("Default categories seeded", "account_id", ownerID, "count", len(entity.DefaultCategories))
	return nil
}
