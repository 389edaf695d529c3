// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/trackify/backend/internal/application/adapter"
	"github.com/trackify/backend/internal/domain/entity"
	domainerror "github.com/trackify/backend/internal/domain/error"
)

// LoginUserInput represents the input for account login.
type LoginUserInput struct {
	Email    string
	Password string
}

// LoginUserOutput represents the output of account login.
type LoginUserOutput struct {
	AccessToken string
	Account     *entity.Account
}

// LoginUserUseCase handles account login logic.
type LoginUserUseCase struct {
	accountRepo     adapter.AccountRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
	categorySeeder  CategorySeeder
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(
	accountRepo adapter.AccountRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
	categorySeeder CategorySeeder,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		accountRepo:     accountRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		categorySeeder:  categorySeeder,
	}
}

// Execute performs the account login.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	// Find account by email
	account, err := uc.accountRepo.FindByEmail(ctx, entity.NormalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, domainerror.ErrAccountNotFound) {
			return nil, invalidCredentialsError()
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	// Verify password
	if err := uc.passwordService.VerifyPassword(account.PasswordHash, input.Password); err != nil {
		return nil, invalidCredentialsError()
	}

	// Accounts created before seeding existed get their starter set here
	if err := uc.categorySeeder.Execute(ctx, account.ID); err != nil {
		return nil, err
	}

	token, err := uc.tokenService.GenerateAccessToken(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginUserOutput{
		AccessToken: token,
		Account:     account,
	}, nil
}

// invalidCredentialsError is shared by unknown email and wrong password.
func invalidCredentialsError() error {
	return domainerror.NewAuthError(
		domainerror.ErrCodeInvalidCredentials,
		"invalid email or password",
		domainerror.ErrInvalidCredentials,
	)
}
