package gorm

import (
	"context"
	"errors"

	"github.com/alchemix/barkeep/internal/domain/inventory"
	"github.com/alchemix/barkeep/internal/ports/outbound"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InventoryRepository implements outbound.InventoryRepository with GORM
type InventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// Save upserts a bar item
func (r *InventoryRepository) Save(ctx context.Context, item *inventory.Item) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(toBarItemModel(item)).Error
}

// FindByID loads one bar item
func (r *InventoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Item, error) {
	var model BarItemModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, outbound.ErrNotFound
		}
		return nil, err
	}
	return toBarItemEntity(&model), nil
}

// FindByOwner loads the owner's full bar, alphabetical
func (r *InventoryRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*inventory.Item, error) {
	var models []BarItemModel
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("name ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	items := make([]*inventory.Item, 0, len(models))
	for i := range models {
		items = append(items, toBarItemEntity(&models[i]))
	}
	return items, nil
}

// Delete removes a bar item
func (r *InventoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&BarItemModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return outbound.ErrNotFound
	}
	return nil
}
