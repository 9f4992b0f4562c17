// Package inventory provides the application layer for the bar inventory.
package inventory

import (
	"context"

	"github.com/alchemix/barkeep/internal/application/formula"
	"github.com/alchemix/barkeep/internal/domain/inventory"
	"github.com/alchemix/barkeep/internal/ports/inbound"
	"github.com/alchemix/barkeep/internal/ports/outbound"
	"github.com/alchemix/barkeep/pkg/errors"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InventoryService implements the bar inventory use cases
type InventoryService struct {
	itemRepo      outbound.InventoryRepository
	recipeService inbound.RecipeService
	registry      *formula.Registry
	compiler      *formula.Compiler
	validate      *validator.Validate
	logger        *zap.Logger
}

// NewInventoryService creates a new inventory service
func NewInventoryService(
	itemRepo outbound.InventoryRepository,
	recipeService inbound.RecipeService,
	registry *formula.Registry,
	logger *zap.Logger,
) inbound.InventoryService {
	return &InventoryService{
		itemRepo:      itemRepo,
		recipeService: recipeService,
		registry:      registry,
		compiler:      formula.NewCompiler(registry),
		validate:      validator.New(),
		logger:        logger.Named("inventory-service"),
	}
}

// AddItem adds a bottle or ingredient to the user's bar
func (s *InventoryService) AddItem(ctx context.Context, cmd inbound.AddItemCommand) (*inbound.BarItemDTO, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	existing, err := s.itemRepo.FindByOwner(ctx, cmd.OwnerID)
	if err != nil {
		return nil, errors.NewDatabaseError("list bar items", err)
	}
	for _, item := range existing {
		if item.Name == cmd.Name {
			return nil, errors.NewDuplicateBarItemError(cmd.Name)
		}
	}

	item, err := inventory.NewItem(cmd.OwnerID, cmd.Name, inventory.Category(cmd.Category))
	if err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}
	item.Volume = cmd.Volume
	item.Notes = cmd.Notes

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, errors.NewDatabaseError("save bar item", err)
	}

	s.logger.Info("Added bar item",
		zap.String("owner_id", cmd.OwnerID.String()),
		zap.String("name", cmd.Name),
	)

	return toItemDTO(item), nil
}

// RemoveItem deletes a bar item owned by the user
func (s *InventoryService) RemoveItem(ctx context.Context, itemID, ownerID uuid.UUID) error {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return errors.NewBarItemNotFoundError(itemID.String())
	}
	if item.OwnerID != ownerID {
		return errors.NewBarItemNotFoundError(itemID.String())
	}

	if err := s.itemRepo.Delete(ctx, itemID); err != nil {
		return errors.NewDatabaseError("delete bar item", err)
	}
	return nil
}

// ListItems returns the user's bar inventory
func (s *InventoryService) ListItems(ctx context.Context, ownerID uuid.UUID) ([]*inbound.BarItemDTO, error) {
	items, err := s.itemRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.NewDatabaseError("list bar items", err)
	}

	dtos := make([]*inbound.BarItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, toItemDTO(item))
	}
	return dtos, nil
}

// MixableRecipes returns recipes whose potable ingredients all resolve to
// symbols present in the bar. Resolution reuses the formula symbol registry
// so "Plantation Rum" in the bar satisfies a "White Rum" ingredient line.
func (s *InventoryService) MixableRecipes(ctx context.Context, ownerID uuid.UUID) ([]*inbound.RecipeDTO, error) {
	items, err := s.itemRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.NewDatabaseError("list bar items", err)
	}

	stocked := make(map[string]bool, len(items))
	for _, item := range items {
		stocked[s.registry.Resolve(item.Name)] = true
	}

	recipes, err := s.recipeService.ListRecipes(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	var mixable []*inbound.RecipeDTO
	for _, r := range recipes {
		if s.canMix(r, stocked) {
			mixable = append(mixable, r)
		}
	}
	return mixable, nil
}

// canMix reports whether every potable ingredient resolves to a stocked symbol.
func (s *InventoryService) canMix(r *inbound.RecipeDTO, stocked map[string]bool) bool {
	lines := make([]formula.IngredientLine, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		lines = append(lines, formula.IngredientLine{
			Name:   ing.Name,
			Amount: ing.Amount,
			Unit:   ing.Unit,
		})
	}

	for _, comp := range s.compiler.Components(lines) {
		if !stocked[comp.Code] {
			return false
		}
	}
	return true
}

// toItemDTO maps a domain item to the read model
func toItemDTO(item *inventory.Item) *inbound.BarItemDTO {
	return &inbound.BarItemDTO{
		ID:        item.ID,
		Name:      item.Name,
		Category:  string(item.Category),
		Volume:    item.Volume,
		Notes:     item.Notes,
		CreatedAt: item.CreatedAt,
	}
}
