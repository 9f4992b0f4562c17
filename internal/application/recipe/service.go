// Package recipe provides the application layer for recipe management.
// This implements the use cases defined in the inbound ports.
package recipe

import (
	"context"
	"fmt"
	"time"

	"github.com/alchemix/barkeep/internal/application/formula"
	"github.com/alchemix/barkeep/internal/application/mention"
	"github.com/alchemix/barkeep/internal/domain/recipe"
	"github.com/alchemix/barkeep/internal/domain/shared"
	"github.com/alchemix/barkeep/internal/ports/inbound"
	"github.com/alchemix/barkeep/internal/ports/outbound"
	"github.com/alchemix/barkeep/pkg/errors"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// formulaCacheTTL bounds how long a compiled formula stays cached. Keys
// carry the recipe version, so staleness only costs memory, not correctness.
const formulaCacheTTL = 24 * time.Hour

// RecipeService implements the recipe use cases
type RecipeService struct {
	recipeRepo outbound.RecipeRepository
	cache      outbound.CacheRepository
	compiler   *formula.Compiler
	linker     *mention.Linker
	dispatcher shared.EventDispatcher
	validate   *validator.Validate
	logger     *zap.Logger
}

// NewRecipeService creates a new recipe service
func NewRecipeService(
	recipeRepo outbound.RecipeRepository,
	cache outbound.CacheRepository,
	compiler *formula.Compiler,
	linker *mention.Linker,
	dispatcher shared.EventDispatcher,
	logger *zap.Logger,
) inbound.RecipeService {
	return &RecipeService{
		recipeRepo: recipeRepo,
		cache:      cache,
		compiler:   compiler,
		linker:     linker,
		dispatcher: dispatcher,
		validate:   validator.New(),
		logger:     logger.Named("recipe-service"),
	}
}

// CreateRecipe creates a new recipe
func (s *RecipeService) CreateRecipe(ctx context.Context, cmd inbound.CreateRecipeCommand) (*inbound.RecipeDTO, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	s.logger.Info("Creating new recipe",
		zap.String("name", cmd.Name),
		zap.String("author_id", cmd.AuthorID.String()),
	)

	entity, err := recipe.NewRecipe(cmd.Name, cmd.Description, cmd.AuthorID)
	if err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}

	for _, ing := range cmd.Ingredients {
		if err := entity.AddIngredient(recipe.Ingredient{
			Name:     ing.Name,
			Amount:   ing.Amount,
			Unit:     ing.Unit,
			Optional: ing.Optional,
			Notes:    ing.Notes,
		}); err != nil {
			return nil, errors.NewBadRequestError(err.Error())
		}
	}

	for _, step := range cmd.Steps {
		if err := entity.AddStep(recipe.Step{Description: step}); err != nil {
			return nil, errors.NewBadRequestError(err.Error())
		}
	}

	if cmd.Glass != "" {
		entity.SetGlass(recipe.GlassType(cmd.Glass))
	}
	if cmd.Method != "" {
		entity.SetMethod(recipe.MixMethod(cmd.Method))
	}
	if cmd.Garnish != "" {
		entity.SetGarnish(cmd.Garnish)
	}
	if len(cmd.Tags) > 0 {
		entity.SetTags(cmd.Tags)
	}

	if err := s.recipeRepo.Save(ctx, entity); err != nil {
		return nil, errors.NewDatabaseError("save recipe", err)
	}

	s.publishEvents(entity)

	return s.toDTO(entity), nil
}

// UpdateRecipe applies the non-nil fields of the command
func (s *RecipeService) UpdateRecipe(ctx context.Context, cmd inbound.UpdateRecipeCommand) (*inbound.RecipeDTO, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	entity, err := s.loadOwned(ctx, cmd.RecipeID, cmd.UserID)
	if err != nil {
		return nil, err
	}

	if cmd.Name != nil {
		if err := entity.Rename(*cmd.Name); err != nil {
			return nil, errors.NewBadRequestError(err.Error())
		}
	}
	if cmd.Description != nil {
		if err := entity.UpdateDescription(*cmd.Description); err != nil {
			return nil, errors.NewBadRequestError(err.Error())
		}
	}
	if cmd.Ingredients != nil {
		ingredients := make([]recipe.Ingredient, 0, len(*cmd.Ingredients))
		for _, ing := range *cmd.Ingredients {
			ingredients = append(ingredients, recipe.Ingredient{
				Name:     ing.Name,
				Amount:   ing.Amount,
				Unit:     ing.Unit,
				Optional: ing.Optional,
				Notes:    ing.Notes,
			})
		}
		if err := entity.ReplaceIngredients(ingredients); err != nil {
			return nil, errors.NewBadRequestError(err.Error())
		}
	}
	if cmd.Garnish != nil {
		entity.SetGarnish(*cmd.Garnish)
	}
	if cmd.Tags != nil {
		entity.SetTags(*cmd.Tags)
	}

	if err := s.recipeRepo.Save(ctx, entity); err != nil {
		return nil, errors.NewDatabaseError("update recipe", err)
	}

	s.publishEvents(entity)

	return s.toDTO(entity), nil
}

// PublishRecipe publishes a draft recipe
func (s *RecipeService) PublishRecipe(ctx context.Context, recipeID, userID uuid.UUID) error {
	entity, err := s.loadOwned(ctx, recipeID, userID)
	if err != nil {
		return err
	}

	if err := entity.Publish(); err != nil {
		return errors.NewAppError(errors.CodeRecipeNotEditable, "Recipe cannot be published", err.Error())
	}

	if err := s.recipeRepo.Save(ctx, entity); err != nil {
		return errors.NewDatabaseError("publish recipe", err)
	}

	s.publishEvents(entity)

	return nil
}

// DeleteRecipe removes a recipe owned by the user
func (s *RecipeService) DeleteRecipe(ctx context.Context, recipeID, userID uuid.UUID) error {
	if _, err := s.loadOwned(ctx, recipeID, userID); err != nil {
		return err
	}

	if err := s.recipeRepo.Delete(ctx, recipeID); err != nil {
		return errors.NewDatabaseError("delete recipe", err)
	}

	return nil
}

// GetRecipeByID returns one recipe with its compiled formula
func (s *RecipeService) GetRecipeByID(ctx context.Context, recipeID uuid.UUID) (*inbound.RecipeDTO, error) {
	entity, err := s.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		return nil, errors.NewRecipeNotFoundError(recipeID.String())
	}
	return s.toDTO(entity), nil
}

// ListRecipes returns all recipes of an author
func (s *RecipeService) ListRecipes(ctx context.Context, authorID uuid.UUID) ([]*inbound.RecipeDTO, error) {
	entities, err := s.recipeRepo.FindByAuthor(ctx, authorID)
	if err != nil {
		return nil, errors.NewDatabaseError("list recipes", err)
	}

	dtos := make([]*inbound.RecipeDTO, 0, len(entities))
	for _, e := range entities {
		dtos = append(dtos, s.toDTO(e))
	}
	return dtos, nil
}

// CompileFormula returns the recipe's formula string, serving from cache
// when the recipe version has been compiled before. An empty formula means
// no potable ingredients; callers render it as "no formula available".
func (s *RecipeService) CompileFormula(ctx context.Context, recipeID uuid.UUID) (string, error) {
	entity, err := s.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		return "", errors.NewRecipeNotFoundError(recipeID.String())
	}

	key := formulaCacheKey(entity.ID(), entity.Version())
	if cached, err := s.cache.Get(ctx, key); err == nil {
		return string(cached), nil
	}

	compiled := s.compiler.Compile(toLines(entity.Ingredients()))

	if err := s.cache.Set(ctx, key, []byte(compiled), formulaCacheTTL); err != nil {
		s.logger.Warn("Failed to cache formula",
			zap.String("recipe_id", entity.ID().String()),
			zap.Error(err),
		)
	}

	return compiled, nil
}

// LinkAssistantMessage locates the caller's recipe names in an assistant
// message and returns the marked message. An empty mention set is a normal
// outcome, not an error.
func (s *RecipeService) LinkAssistantMessage(ctx context.Context, cmd inbound.LinkMessageCommand) (*inbound.LinkedMessageDTO, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	names, err := s.recipeRepo.NamesByAuthor(ctx, cmd.UserID)
	if err != nil {
		return nil, errors.NewDatabaseError("load recipe names", err)
	}

	known := make([]mention.RecipeName, 0, len(names))
	for id, name := range names {
		known = append(known, mention.RecipeName{ID: id, Name: name})
	}

	result := s.linker.Link(cmd.Message, cmd.Hints, known)

	dto := &inbound.LinkedMessageDTO{
		Marked:   result.Marked,
		Segments: make([]inbound.SegmentDTO, 0, len(result.Segments)),
		Recipes:  make([]inbound.RecipeRef, 0, len(result.Recipes)),
	}
	for _, seg := range result.Segments {
		segDTO := inbound.SegmentDTO{Text: seg.Text, Linked: seg.Linked}
		if seg.Linked {
			id := seg.RecipeID
			segDTO.RecipeID = &id
		}
		dto.Segments = append(dto.Segments, segDTO)
	}
	for _, r := range result.Recipes {
		dto.Recipes = append(dto.Recipes, inbound.RecipeRef{ID: r.ID, Name: r.Name})
	}

	return dto, nil
}

// publishEvents drains the aggregate's pending events into the dispatcher.
// Event delivery is best effort; a handler failure never fails the command.
func (s *RecipeService) publishEvents(entity *recipe.Recipe) {
	for _, event := range entity.Events() {
		if err := s.dispatcher.Dispatch(event); err != nil {
			s.logger.Warn("Failed to dispatch domain event",
				zap.String("event", event.EventName()),
				zap.Error(err),
			)
		}
	}
}

// loadOwned loads a recipe and checks ownership
func (s *RecipeService) loadOwned(ctx context.Context, recipeID, userID uuid.UUID) (*recipe.Recipe, error) {
	entity, err := s.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		return nil, errors.NewRecipeNotFoundError(recipeID.String())
	}
	if entity.AuthorID() != userID {
		return nil, errors.NewRecipeNotFoundError(recipeID.String())
	}
	return entity, nil
}

// toDTO maps a domain entity to the read model, compiling the formula and
// formatting each measurement for display.
func (s *RecipeService) toDTO(entity *recipe.Recipe) *inbound.RecipeDTO {
	ingredients := entity.Ingredients()
	dtoIngredients := make([]inbound.IngredientDTO, 0, len(ingredients))
	for _, ing := range ingredients {
		dtoIngredients = append(dtoIngredients, inbound.IngredientDTO{
			Name:    ing.Name,
			Amount:  ing.Amount,
			Unit:    ing.Unit,
			Display: formula.Format(ing.Amount, ing.Unit),
		})
	}

	steps := make([]string, 0, len(entity.Steps()))
	for _, step := range entity.Steps() {
		steps = append(steps, step.Description)
	}

	return &inbound.RecipeDTO{
		ID:          entity.ID(),
		Name:        entity.Name(),
		Description: entity.Description(),
		AuthorID:    entity.AuthorID(),
		Formula:     s.compiler.Compile(toLines(ingredients)),
		Ingredients: dtoIngredients,
		Steps:       steps,
		Glass:       string(entity.Glass()),
		Method:      string(entity.Method()),
		Garnish:     entity.Garnish(),
		Tags:        entity.Tags(),
		Status:      string(entity.Status()),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}
}

// toLines maps domain ingredients to compiler input
func toLines(ingredients []recipe.Ingredient) []formula.IngredientLine {
	lines := make([]formula.IngredientLine, 0, len(ingredients))
	for _, ing := range ingredients {
		lines = append(lines, formula.IngredientLine{
			Name:   ing.Name,
			Amount: ing.Amount,
			Unit:   ing.Unit,
		})
	}
	return lines
}

// formulaCacheKey builds the version-scoped cache key
func formulaCacheKey(id uuid.UUID, version int64) string {
	return fmt.Sprintf("formula:%s:%d", id, version)
}
