package category_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trackify/backend/internal/application/adapter"
	"github.com/trackify/backend/internal/application/usecase/category"
	"github.com/trackify/backend/internal/domain/entity"
	domainerror "github.com/trackify/backend/internal/domain/error"
	"github.com/trackify/backend/internal/domain/valueobject"
	"github.com/trackify/backend/internal/integration/persistence"
	"github.com/trackify/backend/internal/integration/persistence/persistencetest"
)

type recordingCache struct {
	mu          sync.Mutex
	invalidated []valueobject.Scope
}

func (c *recordingCache) Get(context.Context, valueobject.Scope, string, string, any) (bool, error) {
	return false, nil
}

func (c *recordingCache) Set(context.Context, valueobject.Scope, string, string, any) error {
	return nil
}

func (c *recordingCache) Invalidate(_ context.Context, scope valueobject.Scope) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, scope)
	return nil
}

func newRepo(t *testing.T) adapter.CategoryRepository {
	return persistence.NewCategoryRepository(persistencetest.NewDB(t))
}

func TestEnsureDefaultCategories_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	uc := category.NewEnsureDefaultCategoriesUseCase(repo)
	ownerID := uuid.New()

	require.NoError(t, uc.Execute(ctx, ownerID))
	require.NoError(t, uc.Execute(ctx, ownerID))

	categories, err := repo.List(ctx, valueobject.OwnerScope(ownerID))
	require.NoError(t, err)
	require.Len(t, categories, len(entity.DefaultCategories))

	// Newest first puts the last template on top
	assert.Equal(t, entity.DefaultCategories[len(entity.DefaultCategories)-1].Name, categories[0].Name)
}

func TestEnsureDefaultCategories_ConcurrentCallsSeedOnce(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	uc := category.NewEnsureDefaultCategoriesUseCase(repo)
	ownerID := uuid.New()

	var wg sync.WaitGroup
	errs := make([]error, 5)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = uc.Execute(ctx, ownerID)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}

	count, err := repo.CountByOwner(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, int64(len(entity.DefaultCategories)), count)
}

func TestEnsureDefaultCategories_SkipsOwnersWithCategories(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	ownerID := uuid.New()
	require.NoError(t, repo.Create(ctx, entity.NewCategory(ownerID, "Mine", "📌")))

	require.NoError(t, category.NewEnsureDefaultCategoriesUseCase(repo).Execute(ctx, ownerID))

	count, err := repo.CountByOwner(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestCreateCategory(t *testing.T) {
	ctx := context.Background()
	uc := category.NewCreateCategoryUseCase(newRepo(t))
	ownerID := uuid.New()

	t.Run("trims the name and defaults the icon", func(t *testing.T) {
		output, err := uc.Execute(ctx, category.CreateCategoryInput{OwnerID: ownerID, Name: "  Pets  "})
		require.NoError(t, err)
		assert.Equal(t, "Pets", output.Category.Name)
		assert.Equal(t, entity.DefaultCategoryIcon, output.Category.Icon)
		assert.Equal(t, ownerID, output.Category.OwnerID)
	})

	t.Run("rejects a duplicate name", func(t *testing.T) {
		_, err := uc.Execute(ctx, category.CreateCategoryInput{OwnerID: ownerID, Name: "Pets"})

		var catErr *domainerror.CategoryError
		require.ErrorAs(t, err, &catErr)
		assert.Equal(t, domainerror.ErrCodeCategoryNameExists, catErr.Code)
		assert.ErrorIs(t, err, domainerror.ErrConflict)
	})

	t.Run("validates the fields", func(t *testing.T) {
		tests := []struct {
			name     string
			input    category.CreateCategoryInput
			expected domainerror.CategoryErrorCode
		}{
			{
				name:     "blank name",
				input:    category.CreateCategoryInput{OwnerID: ownerID, Name: "   "},
				expected: domainerror.ErrCodeCategoryNameRequired,
			},
			{
				name:     "long name",
				input:    category.CreateCategoryInput{OwnerID: ownerID, Name: strings.Repeat("a", category.MaxCategoryNameLength+1)},
				expected: domainerror.ErrCodeCategoryNameTooLong,
			},
			{
				name:     "long icon",
				input:    category.CreateCategoryInput{OwnerID: ownerID, Name: "Icons", Icon: strings.Repeat("x", category.MaxIconLength+1)},
				expected: domainerror.ErrCodeCategoryIconTooLong,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := uc.Execute(ctx, tt.input)

				var catErr *domainerror.CategoryError
				require.ErrorAs(t, err, &catErr)
				assert.Equal(t, tt.expected, catErr.Code)
				assert.ErrorIs(t, err, domainerror.ErrValidationFailure)
			})
		}
	})
}

func TestUpdateAndDeleteCategory(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	cache := &recordingCache{}
	update := category.NewUpdateCategoryUseCase(repo, cache)
	remove := category.NewDeleteCategoryUseCase(repo, cache)

	ownerID := uuid.New()
	owner := valueobject.OwnerScope(ownerID)
	stranger := valueobject.OwnerScope(uuid.New())
	pets := entity.NewCategory(ownerID, "Pets", "🐶")
	require.NoError(t, repo.Create(ctx, pets))

	t.Run("malformed id is not found", func(t *testing.T) {
		output, err := update.Execute(ctx, category.UpdateCategoryInput{CategoryID: "nope", Scope: owner, Name: "X"})
		require.NoError(t, err)
		assert.False(t, output.Updated)

		deleted, err := remove.Execute(ctx, category.DeleteCategoryInput{CategoryID: "nope", Scope: owner})
		require.NoError(t, err)
		assert.False(t, deleted.Deleted)
	})

	t.Run("another owner cannot touch the category", func(t *testing.T) {
		output, err := update.Execute(ctx, category.UpdateCategoryInput{CategoryID: pets.ID.String(), Scope: stranger, Name: "Stolen"})
		require.NoError(t, err)
		assert.False(t, output.Updated)

		deleted, err := remove.Execute(ctx, category.DeleteCategoryInput{CategoryID: pets.ID.String(), Scope: stranger})
		require.NoError(t, err)
		assert.False(t, deleted.Deleted)
		assert.Empty(t, cache.invalidated)
	})

	t.Run("owner renames and deletes", func(t *testing.T) {
		output, err := update.Execute(ctx, category.UpdateCategoryInput{CategoryID: pets.ID.String(), Scope: owner, Name: "Animals"})
		require.NoError(t, err)
		assert.True(t, output.Updated)

		deleted, err := remove.Execute(ctx, category.DeleteCategoryInput{CategoryID: pets.ID.String(), Scope: owner})
		require.NoError(t, err)
		assert.True(t, deleted.Deleted)

		assert.Equal(t, []valueobject.Scope{owner, owner}, cache.invalidated)
	})
}

func TestListCategories_AdminNarrowing(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	uc := category.NewListCategoriesUseCase(repo)

	first, second := uuid.New(), uuid.New()
	require.NoError(t, repo.Create(ctx, entity.NewCategory(first, "One", "📌")))
	require.NoError(t, repo.Create(ctx, entity.NewCategory(second, "Two", "📌")))

	admin := valueobject.Scope{IsAdmin: true, OwnerID: uuid.New()}

	all, err := uc.Execute(ctx, category.ListCategoriesInput{Scope: admin})
	require.NoError(t, err)
	assert.Len(t, all.Categories, 2)

	narrowed, err := uc.Execute(ctx, category.ListCategoriesInput{Scope: admin, OwnerID: &second})
	require.NoError(t, err)
	require.Len(t, narrowed.Categories, 1)
	assert.Equal(t, "Two", narrowed.Categories[0].Name)

	// Owners cannot widen or move their scope
	owned, err := uc.Execute(ctx, category.ListCategoriesInput{Scope: valueobject.OwnerScope(first), OwnerID: &second})
	require.NoError(t, err)
	require.Len(t, owned.Categories, 1)
	assert.Equal(t, "One", owned.Categories[0].Name)
}

func TestCreateCategory_ConcurrentDuplicatesHaveOneWinner(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	uc := category.NewCreateCategoryUseCase(repo)
	ownerID := uuid.New()

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(ctx, category.CreateCategoryInput{OwnerID: ownerID, Name: "Pets", Icon: "🐶"})
		}(i)
	}
	wg.Wait()

	created := 0
	for _, err := range errs {
		if err == nil {
			created++
			continue
		}
		assert.ErrorIs(t, err, domainerror.ErrConflict)
	}
	assert.Equal(t, 1, created)

	count, err := repo.CountByOwner(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
