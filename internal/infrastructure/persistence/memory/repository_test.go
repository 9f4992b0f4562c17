package memory

import (
	"context"
	"testing"
	"time"

	"github.com/alchemix/barkeep/internal/domain/inventory"
	"github.com/alchemix/barkeep/internal/domain/recipe"
	"github.com/alchemix/barkeep/internal/ports/outbound"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecipe(t *testing.T, name string, authorID uuid.UUID) *recipe.Recipe {
	t.Helper()
	r, err := recipe.NewRecipe(name, "", authorID)
	require.NoError(t, err)
	return r
}

func TestRecipeRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("SaveAndFindByID_ShouldRoundTrip", func(t *testing.T) {
		repo := NewRecipeRepository()
		entity := newTestRecipe(t, "Manhattan", uuid.New())

		require.NoError(t, repo.Save(ctx, entity))

		found, err := repo.FindByID(ctx, entity.ID())
		require.NoError(t, err)
		assert.Equal(t, entity.ID(), found.ID())
	})

	t.Run("FindByID_Unknown_ShouldReturnErrNotFound", func(t *testing.T) {
		repo := NewRecipeRepository()

		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, outbound.ErrNotFound)
	})

	t.Run("FindByAuthor_ShouldFilterAndOrderNewestFirst", func(t *testing.T) {
		repo := NewRecipeRepository()
		authorID := uuid.New()

		older := newTestRecipe(t, "Negroni", authorID)
		time.Sleep(time.Millisecond)
		newer := newTestRecipe(t, "Boulevardier", authorID)
		foreign := newTestRecipe(t, "Mojito", uuid.New())

		require.NoError(t, repo.Save(ctx, older))
		require.NoError(t, repo.Save(ctx, newer))
		require.NoError(t, repo.Save(ctx, foreign))

		found, err := repo.FindByAuthor(ctx, authorID)
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, "Boulevardier", found[0].Name())
		assert.Equal(t, "Negroni", found[1].Name())
	})

	t.Run("Delete_ShouldRemove", func(t *testing.T) {
		repo := NewRecipeRepository()
		entity := newTestRecipe(t, "Sazerac", uuid.New())
		require.NoError(t, repo.Save(ctx, entity))

		require.NoError(t, repo.Delete(ctx, entity.ID()))

		_, err := repo.FindByID(ctx, entity.ID())
		assert.ErrorIs(t, err, outbound.ErrNotFound)

		assert.ErrorIs(t, repo.Delete(ctx, entity.ID()), outbound.ErrNotFound)
	})

	t.Run("NamesByAuthor_ShouldMapIDsToNames", func(t *testing.T) {
		repo := NewRecipeRepository()
		authorID := uuid.New()
		entity := newTestRecipe(t, "Daiquiri", authorID)
		require.NoError(t, repo.Save(ctx, entity))

		names, err := repo.NamesByAuthor(ctx, authorID)
		require.NoError(t, err)
		assert.Equal(t, map[uuid.UUID]string{entity.ID(): "Daiquiri"}, names)
	})
}

func TestInventoryRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("SaveAndFindByOwner_ShouldListAlphabetically", func(t *testing.T) {
		repo := NewInventoryRepository()
		ownerID := uuid.New()

		vodka, err := inventory.NewItem(ownerID, "Vodka", inventory.CategorySpirit)
		require.NoError(t, err)
		aperol, err := inventory.NewItem(ownerID, "Aperol", inventory.CategoryLiqueur)
		require.NoError(t, err)

		require.NoError(t, repo.Save(ctx, vodka))
		require.NoError(t, repo.Save(ctx, aperol))

		items, err := repo.FindByOwner(ctx, ownerID)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "Aperol", items[0].Name)
		assert.Equal(t, "Vodka", items[1].Name)
	})

	t.Run("Delete_Unknown_ShouldReturnErrNotFound", func(t *testing.T) {
		repo := NewInventoryRepository()
		assert.ErrorIs(t, repo.Delete(ctx, uuid.New()), outbound.ErrNotFound)
	})
}

func TestCacheRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("SetAndGet_ShouldRoundTrip", func(t *testing.T) {
		cache := NewCacheRepository()

		require.NoError(t, cache.Set(ctx, "formula:x", []byte("Ry₂ · Sv"), time.Minute))

		value, err := cache.Get(ctx, "formula:x")
		require.NoError(t, err)
		assert.Equal(t, []byte("Ry₂ · Sv"), value)
	})

	t.Run("Get_Missing_ShouldReturnErrNotFound", func(t *testing.T) {
		cache := NewCacheRepository()

		_, err := cache.Get(ctx, "missing")
		assert.ErrorIs(t, err, outbound.ErrNotFound)
	})

	t.Run("ExpiredEntry_ShouldBehaveAsMissing", func(t *testing.T) {
		cache := NewCacheRepository()

		require.NoError(t, cache.Set(ctx, "short", []byte("v"), time.Millisecond))
		time.Sleep(5 * time.Millisecond)

		_, err := cache.Get(ctx, "short")
		assert.ErrorIs(t, err, outbound.ErrNotFound)
	})

	t.Run("ZeroTTL_ShouldNeverExpire", func(t *testing.T) {
		cache := NewCacheRepository()

		require.NoError(t, cache.Set(ctx, "forever", []byte("v"), 0))

		_, err := cache.Get(ctx, "forever")
		assert.NoError(t, err)
	})

	t.Run("Delete_ShouldRemove", func(t *testing.T) {
		cache := NewCacheRepository()

		require.NoError(t, cache.Set(ctx, "k", []byte("v"), time.Minute))
		require.NoError(t, cache.Delete(ctx, "k"))

		_, err := cache.Get(ctx, "k")
		assert.ErrorIs(t, err, outbound.ErrNotFound)
	})
}
