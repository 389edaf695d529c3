// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/trackify/backend/internal/domain/entity"
)

// TokenClaims represents the claims contained in an access token.
type TokenClaims struct {
	AccountID uuid.UUID
	Email     string
	Name      string
	Role      entity.Role
	ExpiresAt time.Time
}

// TokenService defines the interface for access token operations.
type TokenService interface {
	// GenerateAccessToken issues a signed access token for the account.
	GenerateAccessToken(ctx context.Context, account *entity.Account) (string, error)

	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
}
