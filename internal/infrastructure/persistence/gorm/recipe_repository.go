package gorm

import (
	"context"
	"errors"

	"github.com/alchemix/barkeep/internal/domain/recipe"
	"github.com/alchemix/barkeep/internal/ports/outbound"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RecipeRepository implements outbound.RecipeRepository with GORM
type RecipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new recipe repository
func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// Save upserts a recipe aggregate
func (r *RecipeRepository) Save(ctx context.Context, entity *recipe.Recipe) error {
	model, err := toRecipeModel(entity)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(model).Error
}

// FindByID loads one recipe aggregate
func (r *RecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	var model RecipeModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, outbound.ErrNotFound
		}
		return nil, err
	}
	return toRecipeEntity(&model)
}

// FindByAuthor loads all recipes of one author, newest first
func (r *RecipeRepository) FindByAuthor(ctx context.Context, authorID uuid.UUID) ([]*recipe.Recipe, error) {
	var models []RecipeModel
	err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	entities := make([]*recipe.Recipe, 0, len(models))
	for i := range models {
		entity, err := toRecipeEntity(&models[i])
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

// Delete removes a recipe
func (r *RecipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&RecipeModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return outbound.ErrNotFound
	}
	return nil
}

// NamesByAuthor returns id/name pairs for the author's recipes
func (r *RecipeRepository) NamesByAuthor(ctx context.Context, authorID uuid.UUID) (map[uuid.UUID]string, error) {
	var rows []struct {
		ID   uuid.UUID
		Name string
	}
	err := r.db.WithContext(ctx).
		Model(&RecipeModel{}).
		Select("id", "name").
		Where("author_id = ?", authorID).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	names := make(map[uuid.UUID]string, len(rows))
	for _, row := range rows {
		names[row.ID] = row.Name
	}
	return names, nil
}
