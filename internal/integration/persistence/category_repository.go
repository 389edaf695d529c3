// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/trackify/backend/internal/application/adapter"
	"github.com/trackify/backend/internal/domain/entity"
	domainerror "github.com/trackify/backend/internal/domain/error"
	"github.com/trackify/backend/internal/domain/valueobject"
	"github.com/trackify/backend/internal/integration/persistence/model"
)

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// List retrieves the categories visible in scope, newest first.
func (r *categoryRepository) List(ctx context.Context, scope valueobject.Scope) ([]*entity.Category, error) {
	var categoryModels []model.CategoryModel
	result := applyScope(r.db.WithContext(ctx), scope).
		Order("created_at DESC, id ASC").
		Find(&categoryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i, cm := range categoryModels {
		categories[i] = cm.ToEntity()
	}
	return categories, nil
}

// Create creates a new category in the database.
func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryModel := model.CategoryFromEntity(category)
	result := r.db.WithContext(ctx).Create(categoryModel)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domainerror.ErrCategoryNameExists
		}
		return result.Error
	}
	return nil
}

// CreateBatch creates several categories in a single insert.
func (r *categoryRepository) CreateBatch(ctx context.Context, categories []*entity.Category) error {
	if len(categories) == 0 {
		return nil
	}

	categoryModels := make([]*model.CategoryModel, len(categories))
	for i, c := range categories {
		categoryModels[i] = model.CategoryFromEntity(c)
	}

	result := r.db.WithContext(ctx).Create(categoryModels)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domainerror.ErrCategoryNameExists
		}
		return result.Error
	}
	return nil
}

// Update sets name and icon on a category within scope.
func (r *categoryRepository) Update(ctx context.Context, id uuid.UUID, scope valueobject.Scope, name, icon string) (bool, error) {
	query := r.db.WithContext(ctx).Model(&model.CategoryModel{}).Where("id = ?", id)
	result := applyScope(query, scope).Updates(map[string]any{
		"name": name,
		"icon": icon,
	})
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return false, domainerror.ErrCategoryNameExists
		}
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// Delete removes a category within scope. Its expenses are kept.
func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID, scope valueobject.Scope) (bool, error) {
	query := r.db.WithContext(ctx).Where("id = ?", id)
	result := applyScope(query, scope).Delete(&model.CategoryModel{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// FindByID retrieves a category by its ID regardless of owner.
func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// FindNamesByIDs resolves the names of several categories in one query.
func (r *categoryRepository) FindNamesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	names := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	var rows []struct {
		ID   uuid.UUID
		Name string
	}
	result := r.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Select("id, name").
		Where("id IN ?", ids).
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	for _, row := range rows {
		names[row.ID] = row.Name
	}
	return names, nil
}

// CountByOwner returns the number of categories owned by an account.
func (r *categoryRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("owner_id = ?", ownerID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// Count returns the number of categories.
func (r *categoryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.CategoryModel{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
