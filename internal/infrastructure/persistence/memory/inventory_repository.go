package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/alchemix/barkeep/internal/domain/inventory"
	"github.com/alchemix/barkeep/internal/ports/outbound"
	"github.com/google/uuid"
)

// InventoryRepository implements outbound.InventoryRepository in memory
type InventoryRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*inventory.Item
}

// NewInventoryRepository creates a new in-memory inventory repository
func NewInventoryRepository() *InventoryRepository {
	return &InventoryRepository{
		items: make(map[uuid.UUID]*inventory.Item),
	}
}

// Save stores a bar item
func (r *InventoryRepository) Save(ctx context.Context, item *inventory.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[item.ID] = item
	return nil
}

// FindByID loads one bar item
func (r *InventoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, outbound.ErrNotFound
	}
	return item, nil
}

// FindByOwner loads the owner's full bar, alphabetical
func (r *InventoryRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*inventory.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var items []*inventory.Item
	for _, item := range r.items {
		if item.OwnerID == ownerID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Name < items[j].Name
	})
	return items, nil
}

// Delete removes a bar item
func (r *InventoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return outbound.ErrNotFound
	}
	delete(r.items, id)
	return nil
}
