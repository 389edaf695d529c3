// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/trackify/backend/internal/application/adapter"
	"github.com/trackify/backend/internal/domain/entity"
	domainerror "github.com/trackify/backend/internal/domain/error"
)

// UpdateProfileInput represents the input for a profile update.
// Nil fields are left unchanged.
type UpdateProfileInput struct {
	AccountID uuid.UUID
	Name      *string
	Email     *string
	Password  *string
}

// UpdateProfileOutput represents the output of a profile update.
// AccessToken carries the updated name and email.
type UpdateProfileOutput struct {
	AccessToken string
	Account     *entity.Account
}

// UpdateProfileUseCase handles partial profile updates.
type UpdateProfileUseCase struct {
	accountRepo     adapter.AccountRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(
	accountRepo adapter.AccountRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		accountRepo:     accountRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute applies the patch and persists it in a single write.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	patch, err := uc.buildPatch(input)
	if err != nil {
		return nil, err
	}

	account, err := uc.accountRepo.FindByID(ctx, input.AccountID)
	if err != nil {
		if errors.Is(err, domainerror.ErrAccountNotFound) {
			return nil, accountNotFoundError()
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	account.Apply(patch)

	if err := uc.accountRepo.Update(ctx, account); err != nil {
		switch {
		case errors.Is(err, domainerror.ErrEmailAlreadyExists):
			return nil, emailExistsError()
		case errors.Is(err, domainerror.ErrAccountNotFound):
			return nil, accountNotFoundError()
		default:
			return nil, fmt.Errorf("failed to update account: %w", err)
		}
	}

	token, err := uc.tokenService.GenerateAccessToken(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &UpdateProfileOutput{
		AccessToken: token,
		Account:     account,
	}, nil
}

// buildPatch validates the supplied fields and hashes a new password.
func (uc *UpdateProfileUseCase) buildPatch(input UpdateProfileInput) (entity.AccountPatch, error) {
	var patch entity.AccountPatch

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return patch, domainerror.NewAuthError(
				domainerror.ErrCodeMissingFields,
				"name must not be empty",
				domainerror.ErrValidationFailure,
			)
		}
		patch.Name = &name
	}

	if input.Email != nil {
		email := entity.NormalizeEmail(*input.Email)
		if !isValidEmail(email) {
			return patch, domainerror.NewAuthError(
				domainerror.ErrCodeInvalidEmail,
				"invalid email format",
				domainerror.ErrInvalidEmail,
			)
		}
		patch.Email = &email
	}

	if input.Password != nil {
		if err := uc.passwordService.ValidatePasswordStrength(*input.Password); err != nil {
			return patch, domainerror.NewAuthError(
				domainerror.ErrCodeWeakPassword,
				"password does not meet minimum requirements",
				domainerror.ErrWeakPassword,
			)
		}
		hash, err := uc.passwordService.HashPassword(*input.Password)
		if err != nil {
			return patch, fmt.Errorf("failed to hash password: %w", err)
		}
		patch.PasswordHash = &hash
	}

	if patch.IsEmpty() {
		return patch, domainerror.NewAuthError(
			domainerror.ErrCodeEmptyProfileUpdate,
			"at least one field must be provided",
			domainerror.ErrEmptyProfileUpdate,
		)
	}

	return patch, nil
}
