// Package recipe contains the core domain logic for cocktail recipes.
// This follows Domain-Driven Design principles with rich domain models.
package recipe

import (
	"time"

	"github.com/alchemix/barkeep/internal/domain/shared"
	"github.com/google/uuid"
)

// Recipe represents a cocktail recipe aggregate.
// It encapsulates all business logic related to recipes.
type Recipe struct {
	id      uuid.UUID
	version int64 // Optimistic locking

	name        string
	description string
	authorID    uuid.UUID

	ingredients []Ingredient
	steps       []Step
	glass       GlassType
	method      MixMethod
	garnish     string
	tags        []string

	status      Status
	publishedAt *time.Time
	createdAt   time.Time
	updatedAt   time.Time

	// Domain events to be dispatched
	events []shared.DomainEvent
}

// NewRecipe creates a new Recipe with validation
func NewRecipe(name, description string, authorID uuid.UUID) (*Recipe, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	if err := validateDescription(description); err != nil {
		return nil, err
	}

	now := time.Now()
	r := &Recipe{
		id:          uuid.New(),
		version:     1,
		name:        name,
		description: description,
		authorID:    authorID,
		status:      StatusDraft,
		createdAt:   now,
		updatedAt:   now,
		events:      []shared.DomainEvent{},
	}

	r.addEvent(RecipeCreatedEvent{
		RecipeID:  r.id,
		AuthorID:  authorID,
		Name:      name,
		CreatedAt: now,
	})

	return r, nil
}

// Restore rebuilds a Recipe from persisted state without raising events.
func Restore(
	id uuid.UUID,
	version int64,
	name, description string,
	authorID uuid.UUID,
	ingredients []Ingredient,
	steps []Step,
	glass GlassType,
	method MixMethod,
	garnish string,
	tags []string,
	status Status,
	publishedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Recipe {
	return &Recipe{
		id:          id,
		version:     version,
		name:        name,
		description: description,
		authorID:    authorID,
		ingredients: ingredients,
		steps:       steps,
		glass:       glass,
		method:      method,
		garnish:     garnish,
		tags:        tags,
		status:      status,
		publishedAt: publishedAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		events:      []shared.DomainEvent{},
	}
}

// ID returns the recipe's unique identifier
func (r *Recipe) ID() uuid.UUID {
	return r.id
}

// Version returns the recipe's version
func (r *Recipe) Version() int64 {
	return r.version
}

// Name returns the recipe's name
func (r *Recipe) Name() string {
	return r.name
}

// Description returns the recipe's description
func (r *Recipe) Description() string {
	return r.description
}

// AuthorID returns the recipe's author ID
func (r *Recipe) AuthorID() uuid.UUID {
	return r.authorID
}

// Ingredients returns the recipe's ingredient lines in declared order
func (r *Recipe) Ingredients() []Ingredient {
	return r.ingredients
}

// Steps returns the preparation steps
func (r *Recipe) Steps() []Step {
	return r.steps
}

// Glass returns the serving glass
func (r *Recipe) Glass() GlassType {
	return r.glass
}

// Method returns the mixing method
func (r *Recipe) Method() MixMethod {
	return r.method
}

// Garnish returns the garnish description
func (r *Recipe) Garnish() string {
	return r.garnish
}

// Tags returns the recipe's tags
func (r *Recipe) Tags() []string {
	return r.tags
}

// Status returns the recipe status
func (r *Recipe) Status() Status {
	return r.status
}

// PublishedAt returns when the recipe was published
func (r *Recipe) PublishedAt() *time.Time {
	return r.publishedAt
}

// CreatedAt returns when the recipe was created
func (r *Recipe) CreatedAt() time.Time {
	return r.createdAt
}

// UpdatedAt returns when the recipe was last updated
func (r *Recipe) UpdatedAt() time.Time {
	return r.updatedAt
}

// Rename updates the recipe name with validation
func (r *Recipe) Rename(name string) error {
	if err := validateName(name); err != nil {
		return err
	}

	oldName := r.name
	r.name = name
	r.touch()

	r.addEvent(RecipeRenamedEvent{
		RecipeID:  r.id,
		OldName:   oldName,
		NewName:   name,
		UpdatedAt: r.updatedAt,
	})

	return nil
}

// UpdateDescription updates the recipe description with validation
func (r *Recipe) UpdateDescription(description string) error {
	if err := validateDescription(description); err != nil {
		return err
	}
	r.description = description
	r.touch()
	return nil
}

// AddIngredient adds a new ingredient line to the recipe
func (r *Recipe) AddIngredient(ingredient Ingredient) error {
	if err := ingredient.Validate(); err != nil {
		return err
	}

	if ingredient.ID == uuid.Nil {
		ingredient.ID = uuid.New()
	}

	r.ingredients = append(r.ingredients, ingredient)
	r.touch()

	r.addEvent(IngredientAddedEvent{
		RecipeID:     r.id,
		IngredientID: ingredient.ID,
		AddedAt:      r.updatedAt,
	})

	return nil
}

// ReplaceIngredients swaps the full ingredient list, preserving order
func (r *Recipe) ReplaceIngredients(ingredients []Ingredient) error {
	for _, ing := range ingredients {
		if err := ing.Validate(); err != nil {
			return err
		}
	}

	replaced := make([]Ingredient, len(ingredients))
	for i, ing := range ingredients {
		if ing.ID == uuid.Nil {
			ing.ID = uuid.New()
		}
		replaced[i] = ing
	}

	r.ingredients = replaced
	r.touch()
	return nil
}

// AddStep appends a preparation step
func (r *Recipe) AddStep(step Step) error {
	if err := step.Validate(); err != nil {
		return err
	}

	step.Number = len(r.steps) + 1
	r.steps = append(r.steps, step)
	r.touch()

	return nil
}

// SetGlass sets the serving glass
func (r *Recipe) SetGlass(glass GlassType) {
	r.glass = glass
	r.touch()
}

// SetMethod sets the mixing method
func (r *Recipe) SetMethod(method MixMethod) {
	r.method = method
	r.touch()
}

// SetGarnish sets the garnish description
func (r *Recipe) SetGarnish(garnish string) {
	r.garnish = garnish
	r.touch()
}

// SetTags replaces the tag list
func (r *Recipe) SetTags(tags []string) {
	r.tags = tags
	r.touch()
}

// Publish publishes the recipe making it publicly visible
func (r *Recipe) Publish() error {
	if r.status != StatusDraft {
		return ErrInvalidStatusTransition
	}

	if err := r.validateForPublishing(); err != nil {
		return err
	}

	now := time.Now()
	r.status = StatusPublished
	r.publishedAt = &now
	r.updatedAt = now

	r.addEvent(RecipePublishedEvent{
		RecipeID:    r.id,
		PublishedAt: now,
	})

	return nil
}

// Archive archives the recipe
func (r *Recipe) Archive() error {
	if r.status != StatusPublished {
		return ErrInvalidStatusTransition
	}

	r.status = StatusArchived
	r.touch()

	r.addEvent(RecipeArchivedEvent{
		RecipeID:   r.id,
		ArchivedAt: r.updatedAt,
	})

	return nil
}

// validateForPublishing ensures the recipe meets publishing requirements
func (r *Recipe) validateForPublishing() error {
	if len(r.ingredients) == 0 {
		return ErrNoIngredients
	}

	if len(r.steps) == 0 {
		return ErrNoSteps
	}

	return nil
}

func (r *Recipe) touch() {
	r.version++
	r.updatedAt = time.Now()
}

// addEvent adds a domain event to be dispatched
func (r *Recipe) addEvent(event shared.DomainEvent) {
	r.events = append(r.events, event)
}

// Events returns and clears pending domain events
func (r *Recipe) Events() []shared.DomainEvent {
	events := r.events
	r.events = []shared.DomainEvent{}
	return events
}

// validateName validates the recipe name
func validateName(name string) error {
	if len(name) < 2 {
		return ErrNameTooShort
	}
	if len(name) > 200 {
		return ErrNameTooLong
	}
	return nil
}

// validateDescription validates the recipe description
func validateDescription(description string) error {
	if len(description) > 2000 {
		return ErrDescriptionTooLong
	}
	return nil
}
