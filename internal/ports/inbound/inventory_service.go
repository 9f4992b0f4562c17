package inbound

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// InventoryService defines the use cases for the user's bar inventory
type InventoryService interface {
	AddItem(ctx context.Context, cmd AddItemCommand) (*BarItemDTO, error)
	RemoveItem(ctx context.Context, itemID, ownerID uuid.UUID) error
	ListItems(ctx context.Context, ownerID uuid.UUID) ([]*BarItemDTO, error)

	// MixableRecipes returns the caller's recipes whose potable ingredients
	// all resolve to symbols stocked in the bar.
	MixableRecipes(ctx context.Context, ownerID uuid.UUID) ([]*RecipeDTO, error)
}

// AddItemCommand contains data for adding a bar item
type AddItemCommand struct {
	OwnerID  uuid.UUID
	Name     string `validate:"required,max=200"`
	Category string
	Volume   float64 `validate:"gte=0"`
	Notes    string
}

// BarItemDTO is the inventory read model
type BarItemDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Volume    float64   `json:"volume,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
