// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/trackify/backend/internal/domain/entity"
)

// CategoryRequest represents the request body for category creation and update.
type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
	Icon string `json:"icon"`
}

// CategoryResponse represents a category in API responses.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:        category.ID.String(),
		Name:      category.Name,
		Icon:      category.Icon,
		UserID:    category.OwnerID.String(),
		CreatedAt: category.CreatedAt,
	}
}

// ToCategoryListResponse converts categories to their response DTOs.
func ToCategoryListResponse(categories []*entity.Category) []CategoryResponse {
	response := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		response[i] = ToCategoryResponse(category)
	}
	return response
}
