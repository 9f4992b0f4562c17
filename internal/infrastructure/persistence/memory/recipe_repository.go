// Package memory provides in-memory repository implementations for
// development and tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/alchemix/barkeep/internal/domain/recipe"
	"github.com/alchemix/barkeep/internal/ports/outbound"
	"github.com/google/uuid"
)

// RecipeRepository implements outbound.RecipeRepository in memory
type RecipeRepository struct {
	mu      sync.RWMutex
	recipes map[uuid.UUID]*recipe.Recipe
}

// NewRecipeRepository creates a new in-memory recipe repository
func NewRecipeRepository() *RecipeRepository {
	return &RecipeRepository{
		recipes: make(map[uuid.UUID]*recipe.Recipe),
	}
}

// Save stores a recipe aggregate
func (r *RecipeRepository) Save(ctx context.Context, entity *recipe.Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recipes[entity.ID()] = entity
	return nil
}

// FindByID loads one recipe aggregate
func (r *RecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entity, ok := r.recipes[id]
	if !ok {
		return nil, outbound.ErrNotFound
	}
	return entity, nil
}

// FindByAuthor loads all recipes of one author, newest first
func (r *RecipeRepository) FindByAuthor(ctx context.Context, authorID uuid.UUID) ([]*recipe.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var entities []*recipe.Recipe
	for _, entity := range r.recipes {
		if entity.AuthorID() == authorID {
			entities = append(entities, entity)
		}
	}
	sort.Slice(entities, func(i, j int) bool {
		return entities[i].CreatedAt().After(entities[j].CreatedAt())
	})
	return entities, nil
}

// Delete removes a recipe
func (r *RecipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.recipes[id]; !ok {
		return outbound.ErrNotFound
	}
	delete(r.recipes, id)
	return nil
}

// NamesByAuthor returns id/name pairs for the author's recipes
func (r *RecipeRepository) NamesByAuthor(ctx context.Context, authorID uuid.UUID) (map[uuid.UUID]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make(map[uuid.UUID]string)
	for id, entity := range r.recipes {
		if entity.AuthorID() == authorID {
			names[id] = entity.Name()
		}
	}
	return names, nil
}
