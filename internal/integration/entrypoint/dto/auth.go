// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/trackify/backend/internal/domain/entity"
)

// RegisterRequest represents the request body for account registration.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest represents the request body for account login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest represents the request body for a profile update.
// Omitted fields are left unchanged.
type UpdateProfileRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=100"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// AuthResponse represents the response for authentication endpoints.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse represents the account data in API responses.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// ToUserResponse converts a domain Account entity to a UserResponse DTO.
func ToUserResponse(account *entity.Account) UserResponse {
	return UserResponse{
		ID:        account.ID.String(),
		Name:      account.Name,
		Email:     account.Email,
		Role:      string(account.Role),
		CreatedAt: account.CreatedAt,
	}
}

// ToUserListResponse converts accounts to their response DTOs.
func ToUserListResponse(accounts []*entity.Account) []UserResponse {
	users := make([]UserResponse, len(accounts))
	for i, account := range accounts {
		users[i] = ToUserResponse(account)
	}
	return users
}
