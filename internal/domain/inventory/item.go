// Package inventory contains the domain model for the user's bar inventory.
package inventory

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Item represents one bottle or ingredient the user keeps in their bar.
type Item struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Name      string
	Category  Category
	Volume    float64 // remaining volume in ml, 0 when unknown
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Category groups bar items for display and shopping lists.
type Category string

const (
	CategorySpirit   Category = "spirit"
	CategoryLiqueur  Category = "liqueur"
	CategoryWine     Category = "wine"
	CategoryBitters  Category = "bitters"
	CategoryMixer    Category = "mixer"
	CategorySyrup    Category = "syrup"
	CategoryProduce  Category = "produce"
	CategoryPantry   Category = "pantry"
)

// NewItem creates a validated inventory item.
func NewItem(ownerID uuid.UUID, name string, category Category) (*Item, error) {
	if name == "" {
		return nil, errors.New("item name is required")
	}
	if len(name) > 200 {
		return nil, errors.New("item name too long")
	}
	if category == "" {
		category = CategoryPantry
	}

	now := time.Now()
	return &Item{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      name,
		Category:  category,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
