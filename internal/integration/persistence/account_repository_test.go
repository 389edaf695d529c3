package persistence_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trackify/backend/internal/domain/entity"
	domainerror "github.com/trackify/backend/internal/domain/error"
	"github.com/trackify/backend/internal/integration/persistence"
	"github.com/trackify/backend/internal/integration/persistence/persistencetest"
)

func TestAccountRepository(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewAccountRepository(persistencetest.NewDB(t))

	asha := entity.NewAccount("Asha", "asha@example.com", "hash", entity.RoleOwner)
	require.NoError(t, repo.Create(ctx, asha))

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		err := repo.Create(ctx, entity.NewAccount("Other", "ASHA@example.com", "hash", entity.RoleOwner))
		assert.ErrorIs(t, err, domainerror.ErrEmailAlreadyExists)
	})

	t.Run("find by email", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "asha@example.com")
		require.NoError(t, err)
		assert.Equal(t, asha.ID, found.ID)
		assert.Equal(t, entity.RoleOwner, found.Role)
	})

	t.Run("missing account", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, domainerror.ErrAccountNotFound)

		_, err = repo.FindByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, domainerror.ErrAccountNotFound)
	})

	t.Run("update to a taken email", func(t *testing.T) {
		ben := entity.NewAccount("Ben", "ben@example.com", "hash", entity.RoleAdministrator)
		require.NoError(t, repo.Create(ctx, ben))

		ben.Email = "asha@example.com"
		assert.ErrorIs(t, repo.Update(ctx, ben), domainerror.ErrEmailAlreadyExists)
	})

	t.Run("update writes every profile field", func(t *testing.T) {
		asha.Name = "Asha R"
		asha.PasswordHash = "new-hash"
		require.NoError(t, repo.Update(ctx, asha))

		found, err := repo.FindByID(ctx, asha.ID)
		require.NoError(t, err)
		assert.Equal(t, "Asha R", found.Name)
		assert.Equal(t, "new-hash", found.PasswordHash)
	})

	t.Run("update of a missing account", func(t *testing.T) {
		ghost := entity.NewAccount("Ghost", "ghost@example.com", "hash", entity.RoleOwner)
		assert.ErrorIs(t, repo.Update(ctx, ghost), domainerror.ErrAccountNotFound)
	})

	t.Run("list and count", func(t *testing.T) {
		accounts, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, accounts, 2)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})
}
