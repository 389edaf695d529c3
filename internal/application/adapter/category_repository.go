// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/trackify/backend/internal/domain/entity"
	"github.com/trackify/backend/internal/domain/valueobject"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// List returns the categories visible in scope, newest first.
	List(ctx context.Context, scope valueobject.Scope) ([]*entity.Category, error)

	// Create inserts a category. A duplicate (owner, name) yields domainerror.ErrCategoryNameExists.
	Create(ctx context.Context, category *entity.Category) error

	// CreateBatch inserts several categories in one statement.
	CreateBatch(ctx context.Context, categories []*entity.Category) error

	// Update sets name and icon on the category matching id within scope.
	// It reports whether a row was modified.
	Update(ctx context.Context, id uuid.UUID, scope valueobject.Scope, name, icon string) (bool, error)

	// Delete removes the category matching id within scope.
	// It reports whether a row was removed.
	Delete(ctx context.Context, id uuid.UUID, scope valueobject.Scope) (bool, error)

	// FindByID retrieves a category without scoping. It returns nil when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindNamesByIDs resolves category names in one lookup. Unknown ids are left out.
	FindNamesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)

	// CountByOwner returns the number of categories owned by an account.
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)

	// Count returns the number of categories.
	Count(ctx context.Context) (int64, error)
}
