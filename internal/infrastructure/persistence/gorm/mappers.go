package gorm

import (
	"encoding/json"
	"fmt"

	"github.com/alchemix/barkeep/internal/domain/inventory"
	"github.com/alchemix/barkeep/internal/domain/recipe"
)

// toRecipeModel maps a domain aggregate to its persistence model
func toRecipeModel(entity *recipe.Recipe) (*RecipeModel, error) {
	records := make([]ingredientRecord, 0, len(entity.Ingredients()))
	for _, ing := range entity.Ingredients() {
		records = append(records, ingredientRecord{
			ID:       ing.ID,
			Name:     ing.Name,
			Amount:   ing.Amount,
			Unit:     ing.Unit,
			Optional: ing.Optional,
			Notes:    ing.Notes,
		})
	}
	ingredients, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("marshal ingredients: %w", err)
	}

	steps := make(StringSlice, 0, len(entity.Steps()))
	for _, step := range entity.Steps() {
		steps = append(steps, step.Description)
	}

	return &RecipeModel{
		ID:          entity.ID(),
		Version:     entity.Version(),
		Name:        entity.Name(),
		Description: entity.Description(),
		AuthorID:    entity.AuthorID(),
		Ingredients: ingredients,
		Steps:       steps,
		Glass:       string(entity.Glass()),
		Method:      string(entity.Method()),
		Garnish:     entity.Garnish(),
		Tags:        StringSlice(entity.Tags()),
		Status:      string(entity.Status()),
		PublishedAt: entity.PublishedAt(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}, nil
}

// toRecipeEntity rebuilds the domain aggregate from its persistence model
func toRecipeEntity(model *RecipeModel) (*recipe.Recipe, error) {
	var records []ingredientRecord
	if len(model.Ingredients) > 0 {
		if err := json.Unmarshal(model.Ingredients, &records); err != nil {
			return nil, fmt.Errorf("unmarshal ingredients: %w", err)
		}
	}

	ingredients := make([]recipe.Ingredient, 0, len(records))
	for _, rec := range records {
		ingredients = append(ingredients, recipe.Ingredient{
			ID:       rec.ID,
			Name:     rec.Name,
			Amount:   rec.Amount,
			Unit:     rec.Unit,
			Optional: rec.Optional,
			Notes:    rec.Notes,
		})
	}

	steps := make([]recipe.Step, 0, len(model.Steps))
	for i, description := range model.Steps {
		steps = append(steps, recipe.Step{Number: i + 1, Description: description})
	}

	return recipe.Restore(
		model.ID,
		model.Version,
		model.Name,
		model.Description,
		model.AuthorID,
		ingredients,
		steps,
		recipe.GlassType(model.Glass),
		recipe.MixMethod(model.Method),
		model.Garnish,
		[]string(model.Tags),
		recipe.Status(model.Status),
		model.PublishedAt,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

// toBarItemModel maps a domain inventory item to its persistence model
func toBarItemModel(item *inventory.Item) *BarItemModel {
	return &BarItemModel{
		ID:        item.ID,
		OwnerID:   item.OwnerID,
		Name:      item.Name,
		Category:  string(item.Category),
		Volume:    item.Volume,
		Notes:     item.Notes,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

// toBarItemEntity rebuilds the domain inventory item
func toBarItemEntity(model *BarItemModel) *inventory.Item {
	return &inventory.Item{
		ID:        model.ID,
		OwnerID:   model.OwnerID,
		Name:      model.Name,
		Category:  inventory.Category(model.Category),
		Volume:    model.Volume,
		Notes:     model.Notes,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
