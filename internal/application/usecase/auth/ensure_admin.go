// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/trackify/backend/internal/application/adapter"
	"github.com/trackify/backend/internal/domain/entity"
	domainerror "github.com/trackify/backend/internal/domain/error"
)

// EnsureAdminInput represents the configured administrator account.
type EnsureAdminInput struct {
	Name     string
	Email    string
	Password string
}

// EnsureAdminOutput reports the administrator account and whether it was created.
type EnsureAdminOutput struct {
	Account *entity.Account
	Created bool
}

// EnsureAdminUseCase creates the administrator account when it is missing.
type EnsureAdminUseCase struct {
	accountRepo     adapter.AccountRepository
	passwordService adapter.PasswordService
	categorySeeder  CategorySeeder
}

// NewEnsureAdminUseCase creates a new EnsureAdminUseCase instance.
func NewEnsureAdminUseCase(
	accountRepo adapter.AccountRepository,
	passwordService adapter.PasswordService,
	categorySeeder CategorySeeder,
) *EnsureAdminUseCase {
	return &EnsureAdminUseCase{
		accountRepo:     accountRepo,
		passwordService: passwordService,
		categorySeeder:  categorySeeder,
	}
}

// Execute is idempotent. An existing account with the email is left untouched.
func (uc *EnsureAdminUseCase) Execute(ctx context.Context, input EnsureAdminInput) (*EnsureAdminOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	if !isValidEmail(email) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"invalid administrator email",
			domainerror.ErrInvalidEmail,
		)
	}

	existing, err := uc.accountRepo.FindByEmail(ctx, email)
	if err == nil {
		if !existing.Role.IsAdministrator() {
			slog.Warn("Configured administrator email belongs to an owner account", "account_id", existing.ID)
		}
		return &EnsureAdminOutput{Account: existing}, nil
	}
	if !errors.Is(err, domainerror.ErrAccountNotFound) {
		return nil, fmt.Errorf("failed to find administrator: %w", err)
	}

	if err := uc.passwordService.ValidatePasswordStrength(input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			"administrator password does not meet minimum requirements",
			domainerror.ErrWeakPassword,
		)
	}

	passwordHash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	name := input.Name
	if name == "" {
		name = "Administrator"
	}
	account := entity.NewAccount(name, email, passwordHash, entity.RoleAdministrator)

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, domainerror.ErrEmailAlreadyExists) {
			// Another instance seeded it first
			existing, findErr := uc.accountRepo.FindByEmail(ctx, email)
			if findErr != nil {
				return nil, fmt.Errorf("failed to find administrator: %w", findErr)
			}
			return &EnsureAdminOutput{Account: existing}, nil
		}
		return nil, fmt.Errorf("failed to create administrator: %w", err)
	}

	if err := uc.categorySeeder.Execute(ctx, account.ID); err != nil {
		return nil, err
	}

	slog.Info("Administrator account created", "account_id", account.ID)
	return &EnsureAdminOutput{Account: account, Created: true}, nil
}
