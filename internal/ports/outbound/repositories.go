// Package outbound defines the interfaces for outbound ports (secondary/
// driven adapters): persistence and caching implemented by infrastructure.
package outbound

import (
	"context"
	"errors"
	"time"

	"github.com/alchemix/barkeep/internal/domain/inventory"
	"github.com/alchemix/barkeep/internal/domain/recipe"
	"github.com/google/uuid"
)

// ErrNotFound is returned by repositories when the entity does not exist.
var ErrNotFound = errors.New("entity not found")

// RecipeRepository persists recipe aggregates
type RecipeRepository interface {
	Save(ctx context.Context, r *recipe.Recipe) error
	FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error)
	FindByAuthor(ctx context.Context, authorID uuid.UUID) ([]*recipe.Recipe, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// NamesByAuthor returns id/name pairs for the author's recipes; the
	// mention linker consumes these as its known-name list.
	NamesByAuthor(ctx context.Context, authorID uuid.UUID) (map[uuid.UUID]string, error)
}

// InventoryRepository persists bar inventory items
type InventoryRepository interface {
	Save(ctx context.Context, item *inventory.Item) error
	FindByID(ctx context.Context, id uuid.UUID) (*inventory.Item, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*inventory.Item, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CacheRepository caches derived values such as compiled formulas
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
