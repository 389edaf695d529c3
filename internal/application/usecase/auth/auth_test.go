package auth_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/trackify/backend/internal/application/adapter"
	"github.com/trackify/backend/internal/application/usecase/auth"
	"github.com/trackify/backend/internal/application/usecase/category"
	"github.com/trackify/backend/internal/domain/entity"
	domainerror "github.com/trackify/backend/internal/domain/error"
	"github.com/trackify/backend/internal/integration/adapters"
	"github.com/trackify/backend/internal/integration/persistence"
	"github.com/trackify/backend/internal/integration/persistence/persistencetest"
)

// AuthTestSuite exercises the account use cases against SQLite.
type AuthTestSuite struct {
	suite.Suite
	ctx          context.Context
	accountRepo  adapter.AccountRepository
	categoryRepo adapter.CategoryRepository
	tokens       adapter.TokenService

	register    *auth.RegisterUserUseCase
	login       *auth.LoginUserUseCase
	update      *auth.UpdateProfileUseCase
	current     *auth.GetCurrentAccountUseCase
	ensureAdmin *auth.EnsureAdminUseCase
}

func TestAuth(t *testing.T) {
	suite.Run(t, new(AuthTestSuite))
}

// SetupTest runs before each test
func (s *AuthTestSuite) SetupTest() {
	db := persistencetest.NewDB(s.T())
	s.ctx = context.Background()
	s.accountRepo = persistence.NewAccountRepository(db)
	s.categoryRepo = persistence.NewCategoryRepository(db)
	s.tokens = adapters.NewTokenService(adapters.TokenConfig{Secret: "auth-secret"})

	passwords := adapters.NewPasswordService(bcrypt.MinCost)
	seeder := category.NewEnsureDefaultCategoriesUseCase(s.categoryRepo)

	s.register = auth.NewRegisterUserUseCase(s.accountRepo, passwords, s.tokens, seeder)
	s.login = auth.NewLoginUserUseCase(s.accountRepo, passwords, s.tokens, seeder)
	s.update = auth.NewUpdateProfileUseCase(s.accountRepo, passwords, s.tokens)
	s.current = auth.NewGetCurrentAccountUseCase(s.accountRepo)
	s.ensureAdmin = auth.NewEnsureAdminUseCase(s.accountRepo, passwords, seeder)
}

func (s *AuthTestSuite) registerAccount(email string) *auth.RegisterUserOutput {
	output, err := s.register.Execute(s.ctx, auth.RegisterUserInput{
		Name:     "Asha",
		Email:    email,
		Password: "password123",
	})
	require.NoError(s.T(), err)
	return output
}

func (s *AuthTestSuite) assertAuthCode(err error, code domainerror.AuthErrorCode) {
	var authErr *domainerror.AuthError
	require.ErrorAs(s.T(), err, &authErr)
	assert.Equal(s.T(), code, authErr.Code)
}

func (s *AuthTestSuite) TestRegisterCreatesOwnerWithStarterCategories() {
	output := s.registerAccount("  Asha@Example.COM ")

	assert.Equal(s.T(), "asha@example.com", output.Account.Email)
	assert.Equal(s.T(), entity.RoleOwner, output.Account.Role)
	assert.NotEqual(s.T(), "password123", output.Account.PasswordHash)

	claims, err := s.tokens.ValidateAccessToken(s.ctx, output.AccessToken)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), output.Account.ID, claims.AccountID)

	count, err := s.categoryRepo.CountByOwner(s.ctx, output.Account.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(len(entity.DefaultCategories)), count)
}

func (s *AuthTestSuite) TestRegisterRejectsDuplicateEmail() {
	s.registerAccount("asha@example.com")

	_, err := s.register.Execute(s.ctx, auth.RegisterUserInput{
		Name:     "Other",
		Email:    "ASHA@example.com",
		Password: "password123",
	})
	s.assertAuthCode(err, domainerror.ErrCodeEmailExists)
	assert.ErrorIs(s.T(), err, domainerror.ErrConflict)
}

func (s *AuthTestSuite) TestRegisterValidation() {
	tests := []struct {
		name  string
		input auth.RegisterUserInput
		code  domainerror.AuthErrorCode
	}{
		{
			name:  "missing name",
			input: auth.RegisterUserInput{Name: "  ", Email: "a@example.com", Password: "password123"},
			code:  domainerror.ErrCodeMissingFields,
		},
		{
			name:  "bad email",
			input: auth.RegisterUserInput{Name: "Asha", Email: "not-an-email", Password: "password123"},
			code:  domainerror.ErrCodeInvalidEmail,
		},
		{
			name:  "short password",
			input: auth.RegisterUserInput{Name: "Asha", Email: "a@example.com", Password: "short"},
			code:  domainerror.ErrCodeWeakPassword,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.register.Execute(s.ctx, tt.input)
			s.assertAuthCode(err, tt.code)
			assert.ErrorIs(s.T(), err, domainerror.ErrValidationFailure)
		})
	}
}

func (s *AuthTestSuite) TestLogin() {
	registered := s.registerAccount("asha@example.com")

	output, err := s.login.Execute(s.ctx, auth.LoginUserInput{Email: "ASHA@example.com", Password: "password123"})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), registered.Account.ID, output.Account.ID)
	assert.NotEmpty(s.T(), output.AccessToken)
}

func (s *AuthTestSuite) TestLoginFailuresAreIndistinguishable() {
	s.registerAccount("asha@example.com")

	_, wrongPassword := s.login.Execute(s.ctx, auth.LoginUserInput{Email: "asha@example.com", Password: "wrong-password"})
	_, unknownEmail := s.login.Execute(s.ctx, auth.LoginUserInput{Email: "nobody@example.com", Password: "password123"})

	s.assertAuthCode(wrongPassword, domainerror.ErrCodeInvalidCredentials)
	s.assertAuthCode(unknownEmail, domainerror.ErrCodeInvalidCredentials)
	assert.Equal(s.T(), wrongPassword.Error(), unknownEmail.Error())
	assert.ErrorIs(s.T(), unknownEmail, domainerror.ErrUnauthorized)
}

func (s *AuthTestSuite) TestLoginSeedsCategoriesForUnseededAccounts() {
	account := entity.NewAccount("Legacy", "legacy@example.com", mustHash(s.T(), "password123"), entity.RoleOwner)
	require.NoError(s.T(), s.accountRepo.Create(s.ctx, account))

	_, err := s.login.Execute(s.ctx, auth.LoginUserInput{Email: "legacy@example.com", Password: "password123"})
	require.NoError(s.T(), err)

	count, err := s.categoryRepo.CountByOwner(s.ctx, account.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(len(entity.DefaultCategories)), count)
}

func (s *AuthTestSuite) TestUpdateProfile() {
	registered := s.registerAccount("asha@example.com")
	name := "  Asha K  "
	email := "Asha.K@Example.com"
	password := "new-password"

	output, err := s.update.Execute(s.ctx, auth.UpdateProfileInput{
		AccountID: registered.Account.ID,
		Name:      &name,
		Email:     &email,
		Password:  &password,
	})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Asha K", output.Account.Name)
	assert.Equal(s.T(), "asha.k@example.com", output.Account.Email)

	claims, err := s.tokens.ValidateAccessToken(s.ctx, output.AccessToken)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "asha.k@example.com", claims.Email)

	_, err = s.login.Execute(s.ctx, auth.LoginUserInput{Email: "asha.k@example.com", Password: "new-password"})
	assert.NoError(s.T(), err)
}

func (s *AuthTestSuite) TestUpdateProfileFailures() {
	registered := s.registerAccount("asha@example.com")
	s.registerAccount("taken@example.com")
	blank := "   "
	taken := "taken@example.com"

	_, err := s.update.Execute(s.ctx, auth.UpdateProfileInput{AccountID: registered.Account.ID})
	s.assertAuthCode(err, domainerror.ErrCodeEmptyProfileUpdate)

	_, err = s.update.Execute(s.ctx, auth.UpdateProfileInput{AccountID: registered.Account.ID, Name: &blank})
	s.assertAuthCode(err, domainerror.ErrCodeMissingFields)

	_, err = s.update.Execute(s.ctx, auth.UpdateProfileInput{AccountID: registered.Account.ID, Email: &taken})
	s.assertAuthCode(err, domainerror.ErrCodeEmailExists)

	_, err = s.update.Execute(s.ctx, auth.UpdateProfileInput{AccountID: uuid.New(), Email: &taken})
	s.assertAuthCode(err, domainerror.ErrCodeAccountNotFound)
}

func (s *AuthTestSuite) TestGetCurrentAccount() {
	registered := s.registerAccount("asha@example.com")

	account, err := s.current.Execute(s.ctx, registered.Account.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "asha@example.com", account.Email)

	_, err = s.current.Execute(s.ctx, uuid.New())
	assert.ErrorIs(s.T(), err, domainerror.ErrNotFoundOrNotOwned)
}

func (s *AuthTestSuite) TestEnsureAdminIsIdempotent() {
	input := auth.EnsureAdminInput{Email: "Root@Example.com", Password: "supersecret"}

	first, err := s.ensureAdmin.Execute(s.ctx, input)
	require.NoError(s.T(), err)
	assert.True(s.T(), first.Created)
	assert.Equal(s.T(), entity.RoleAdministrator, first.Account.Role)
	assert.Equal(s.T(), "Administrator", first.Account.Name)

	second, err := s.ensureAdmin.Execute(s.ctx, input)
	require.NoError(s.T(), err)
	assert.False(s.T(), second.Created)
	assert.Equal(s.T(), first.Account.ID, second.Account.ID)
}

func (s *AuthTestSuite) TestEnsureAdminLeavesOwnerAccountsAlone() {
	registered := s.registerAccount("root@example.com")

	output, err := s.ensureAdmin.Execute(s.ctx, auth.EnsureAdminInput{Email: "root@example.com", Password: "supersecret"})
	require.NoError(s.T(), err)
	assert.False(s.T(), output.Created)
	assert.Equal(s.T(), registered.Account.ID, output.Account.ID)
	assert.Equal(s.T(), entity.RoleOwner, output.Account.Role)
}

func (s *AuthTestSuite) TestEnsureAdminValidation() {
	_, err := s.ensureAdmin.Execute(s.ctx, auth.EnsureAdminInput{Email: "root", Password: "supersecret"})
	s.assertAuthCode(err, domainerror.ErrCodeInvalidEmail)

	_, err = s.ensureAdmin.Execute(s.ctx, auth.EnsureAdminInput{Email: "root@example.com", Password: "short"})
	s.assertAuthCode(err, domainerror.ErrCodeWeakPassword)
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := adapters.NewPasswordService(bcrypt.MinCost).HashPassword(password)
	require.NoError(t, err)
	return hash
}
