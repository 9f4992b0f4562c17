package recipe

import (
	"time"

	"github.com/google/uuid"
)

// Domain Events - Events that occur within the recipe domain

// RecipeCreatedEvent is raised when a new recipe is created
type RecipeCreatedEvent struct {
	RecipeID  uuid.UUID
	AuthorID  uuid.UUID
	Name      string
	CreatedAt time.Time
}

func (e RecipeCreatedEvent) EventName() string {
	return "recipe.created"
}

func (e RecipeCreatedEvent) OccurredAt() time.Time {
	return e.CreatedAt
}

// RecipeRenamedEvent is raised when a recipe name is updated
type RecipeRenamedEvent struct {
	RecipeID  uuid.UUID
	OldName   string
	NewName   string
	UpdatedAt time.Time
}

func (e RecipeRenamedEvent) EventName() string {
	return "recipe.renamed"
}

func (e RecipeRenamedEvent) OccurredAt() time.Time {
	return e.UpdatedAt
}

// IngredientAddedEvent is raised when an ingredient is added
type IngredientAddedEvent struct {
	RecipeID     uuid.UUID
	IngredientID uuid.UUID
	AddedAt      time.Time
}

func (e IngredientAddedEvent) EventName() string {
	return "recipe.ingredient.added"
}

func (e IngredientAddedEvent) OccurredAt() time.Time {
	return e.AddedAt
}

// RecipePublishedEvent is raised when a recipe is published
type RecipePublishedEvent struct {
	RecipeID    uuid.UUID
	PublishedAt time.Time
}

func (e RecipePublishedEvent) EventName() string {
	return "recipe.published"
}

func (e RecipePublishedEvent) OccurredAt() time.Time {
	return e.PublishedAt
}

// RecipeArchivedEvent is raised when a recipe is archived
type RecipeArchivedEvent struct {
	RecipeID   uuid.UUID
	ArchivedAt time.Time
}

func (e RecipeArchivedEvent) EventName() string {
	return "recipe.archived"
}

func (e RecipeArchivedEvent) OccurredAt() time.Time {
	return e.ArchivedAt
}
