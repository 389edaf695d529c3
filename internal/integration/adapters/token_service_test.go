package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trackify/backend/internal/domain/entity"
)

func newTestAccount(role entity.Role) *entity.Account {
	return entity.NewAccount("Asha", "asha@example.com", "hash", role)
}

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService(TokenConfig{Secret: "secret", Issuer: "trackify", Audience: "trackify-api"})
	account := newTestAccount(entity.RoleAdministrator)

	token, err := svc.GenerateAccessToken(context.Background(), account)
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, account.ID, claims.AccountID)
	assert.Equal(t, "asha@example.com", claims.Email)
	assert.Equal(t, "Asha", claims.Name)
	assert.Equal(t, entity.RoleAdministrator, claims.Role)
	assert.WithinDuration(t, time.Now().Add(DefaultAccessTokenExpiry), claims.ExpiresAt, 5*time.Second)
}

func TestTokenService_RejectsForeignTokens(t *testing.T) {
	account := newTestAccount(entity.RoleOwner)
	issued, err := NewTokenService(TokenConfig{Secret: "secret", Issuer: "trackify", Audience: "trackify-api"}).
		GenerateAccessToken(context.Background(), account)
	require.NoError(t, err)

	tests := []struct {
		name string
		cfg  TokenConfig
	}{
		{name: "wrong secret", cfg: TokenConfig{Secret: "other", Issuer: "trackify", Audience: "trackify-api"}},
		{name: "wrong issuer", cfg: TokenConfig{Secret: "secret", Issuer: "someone-else", Audience: "trackify-api"}},
		{name: "wrong audience", cfg: TokenConfig{Secret: "secret", Issuer: "trackify", Audience: "mobile"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTokenService(tt.cfg).ValidateAccessToken(context.Background(), issued)
			assert.Error(t, err)
		})
	}
}

func TestTokenService_RejectsExpiredTokens(t *testing.T) {
	svc := NewTokenService(TokenConfig{Secret: "secret", Expiry: time.Minute}).(*tokenService)
	issuedAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.GenerateAccessToken(context.Background(), newTestAccount(entity.RoleOwner))
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(context.Background(), token)
	require.NoError(t, err)

	svc.now = func() time.Time { return issuedAt.Add(2 * time.Minute) }
	_, err = svc.ValidateAccessToken(context.Background(), token)
	assert.Error(t, err)
}

func TestTokenService_RejectsGarbage(t *testing.T) {
	svc := NewTokenService(TokenConfig{Secret: "secret"})

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.ValidateAccessToken(context.Background(), token)
		assert.Error(t, err, token)
	}
}

func TestTokenService_UnknownRoleIsOwner(t *testing.T) {
	svc := NewTokenService(TokenConfig{Secret: "secret"})
	account := newTestAccount(entity.Role("superuser"))
	account.ID = uuid.New()

	token, err := svc.GenerateAccessToken(context.Background(), account)
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleOwner, claims.Role)
}
