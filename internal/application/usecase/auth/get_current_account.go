// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/trackify/backend/internal/application/adapter"
	"github.com/trackify/backend/internal/domain/entity"
	domainerror "github.com/trackify/backend/internal/domain/error"
)

// GetCurrentAccountUseCase loads the profile of the authenticated account.
type GetCurrentAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewGetCurrentAccountUseCase creates a new GetCurrentAccountUseCase instance.
func NewGetCurrentAccountUseCase(accountRepo adapter.AccountRepository) *GetCurrentAccountUseCase {
	return &GetCurrentAccountUseCase{
		accountRepo: accountRepo,
	}
}

// Execute returns the account or an AuthError when it no longer exists.
func (uc *GetCurrentAccountUseCase) Execute(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	account, err := uc.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domainerror.ErrAccountNotFound) {
			return nil, accountNotFoundError()
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}
	return account, nil
}

func accountNotFoundError() error {
	return domainerror.NewAuthError(
		domainerror.ErrCodeAccountNotFound,
		"account not found",
		domainerror.ErrAccountNotFound,
	)
}
