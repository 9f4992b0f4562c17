// Package inbound defines the interfaces for inbound ports (primary/driving
// adapters): the use cases the application exposes to HTTP handlers.
package inbound

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RecipeService defines the use cases for recipe management
type RecipeService interface {
	// Commands - operations that modify state
	CreateRecipe(ctx context.Context, cmd CreateRecipeCommand) (*RecipeDTO, error)
	UpdateRecipe(ctx context.Context, cmd UpdateRecipeCommand) (*RecipeDTO, error)
	PublishRecipe(ctx context.Context, recipeID, userID uuid.UUID) error
	DeleteRecipe(ctx context.Context, recipeID, userID uuid.UUID) error

	// Queries - operations that read state
	GetRecipeByID(ctx context.Context, recipeID uuid.UUID) (*RecipeDTO, error)
	ListRecipes(ctx context.Context, authorID uuid.UUID) ([]*RecipeDTO, error)

	// Formula and mention linking
	CompileFormula(ctx context.Context, recipeID uuid.UUID) (string, error)
	LinkAssistantMessage(ctx context.Context, cmd LinkMessageCommand) (*LinkedMessageDTO, error)
}

// CreateRecipeCommand contains data for creating a new recipe
type CreateRecipeCommand struct {
	Name        string `validate:"required,min=2,max=200"`
	Description string `validate:"max=2000"`
	AuthorID    uuid.UUID
	Ingredients []IngredientCommand
	Steps       []string
	Glass       string
	Method      string
	Garnish     string
	Tags        []string
}

// UpdateRecipeCommand contains data for updating a recipe.
// Nil fields are left unchanged.
type UpdateRecipeCommand struct {
	RecipeID    uuid.UUID
	UserID      uuid.UUID
	Name        *string `validate:"omitempty,min=2,max=200"`
	Description *string `validate:"omitempty,max=2000"`
	Ingredients *[]IngredientCommand
	Garnish     *string
	Tags        *[]string
}

// IngredientCommand is one ingredient line in a command
type IngredientCommand struct {
	Name     string  `validate:"required"`
	Amount   float64 `validate:"gte=0"`
	Unit     string
	Optional bool
	Notes    string
}

// LinkMessageCommand asks for recipe mentions in an assistant message to be
// located and marked. Hints carry explicit recommendation names extracted
// upstream from structured response text.
type LinkMessageCommand struct {
	UserID  uuid.UUID
	Message string `validate:"required"`
	Hints   []string
}

// RecipeDTO is the read model returned to driving adapters
type RecipeDTO struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	AuthorID    uuid.UUID       `json:"author_id"`
	Formula     string          `json:"formula,omitempty"`
	Ingredients []IngredientDTO `json:"ingredients"`
	Steps       []string        `json:"steps,omitempty"`
	Glass       string          `json:"glass,omitempty"`
	Method      string          `json:"method,omitempty"`
	Garnish     string          `json:"garnish,omitempty"`
	Tags        []string        `json:"tags,omitempty"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// IngredientDTO is one ingredient line in the read model
type IngredientDTO struct {
	Name    string  `json:"name"`
	Amount  float64 `json:"amount"`
	Unit    string  `json:"unit"`
	Display string  `json:"display"` // formatted measurement, e.g. "01.50 oz"
}

// LinkedMessageDTO is the marked assistant message with retained mentions
type LinkedMessageDTO struct {
	Marked   string       `json:"marked"`
	Segments []SegmentDTO `json:"segments"`
	Recipes  []RecipeRef  `json:"recipes"`
}

// SegmentDTO is one plain or linked piece of the marked message
type SegmentDTO struct {
	Text     string     `json:"text"`
	Linked   bool       `json:"linked"`
	RecipeID *uuid.UUID `json:"recipe_id,omitempty"`
}

// RecipeRef identifies a retained recipe mention
type RecipeRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
