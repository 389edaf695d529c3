// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/trackify/backend/internal/application/adapter"
	"github.com/trackify/backend/internal/domain/entity"
	domainerror "github.com/trackify/backend/internal/domain/error"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// CategorySeeder seeds the starter categories of an account.
type CategorySeeder interface {
	Execute(ctx context.Context, ownerID uuid.UUID) error
}

// RegisterUserInput represents the input for account registration.
type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
}

// RegisterUserOutput represents the output of account registration.
type RegisterUserOutput struct {
	AccessToken string
	Account     *entity.Account
}

// RegisterUserUseCase handles account registration logic.
type RegisterUserUseCase struct {
	accountRepo     adapter.AccountRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
	categorySeeder  CategorySeeder
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
func NewRegisterUserUseCase(
	accountRepo adapter.AccountRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
	categorySeeder CategorySeeder,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		accountRepo:     accountRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		categorySeeder:  categorySeeder,
	}
}

// Execute performs the account registration. New accounts are always owners.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	name := strings.TrimSpace(input.Name)
	email := entity.NormalizeEmail(input.Email)

	// Validate required fields
	if name == "" || email == "" || input.Password == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingFields,
			"name, email and password are required",
			domainerror.ErrValidationFailure,
		)
	}

	// Validate email format
	if !isValidEmail(email) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"invalid email format",
			domainerror.ErrInvalidEmail,
		)
	}

	// Validate password strength
	if err := uc.passwordService.ValidatePasswordStrength(input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			"password does not meet minimum requirements",
			domainerror.ErrWeakPassword,
		)
	}

	// Hash password
	passwordHash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := entity.NewAccount(name, email, passwordHash, entity.RoleOwner)

	// Save account to database, the unique email index decides duplicates
	if err := uc.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, domainerror.ErrEmailAlreadyExists) {
			return nil, emailExistsError()
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	if err := uc.categorySeeder.Execute(ctx, account.ID); err != nil {
		return nil, err
	}

	token, err := uc.tokenService.GenerateAccessToken(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &RegisterUserOutput{
		AccessToken: token,
		Account:     account,
	}, nil
}

// isValidEmail validates email format using a simple regex.
func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func emailExistsError() error {
	return domainerror.NewAuthError(
		domainerror.ErrCodeEmailExists,
		"email already exists",
		domainerror.ErrEmailAlreadyExists,
	)
}
