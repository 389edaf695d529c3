// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/trackify/backend/internal/domain/entity"
)

// AccountRepository defines the interface for account persistence operations.
type AccountRepository interface {
	// Create inserts a new account. A duplicate email yields domainerror.ErrEmailAlreadyExists.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID retrieves an account by its ID. A missing account yields domainerror.ErrAccountNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves an account by its normalized email address.
	// A missing account yields domainerror.ErrAccountNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Update writes name, email and credential hash in a single statement.
	// A duplicate email yields domainerror.ErrEmailAlreadyExists and a
	// missing row yields domainerror.ErrAccountNotFound.
	Update(ctx context.Context, account *entity.Account) error

	// List returns all accounts, newest first.
	List(ctx context.Context) ([]*entity.Account, error)

	// Count returns the number of accounts.
	Count(ctx context.Context) (int64, error)
}
