package memory

import (
	"context"
	"sync"
	"time"

	"github.com/alchemix/barkeep/internal/ports/outbound"
)

type cacheEntry struct {
	value     []byte
	expiresAt time.Time
}

func (e cacheEntry) expired() bool {
	return !e.expiresAt.IsZero() && time.Now().After(e.expiresAt)
}

// CacheRepository implements outbound.CacheRepository in memory.
// Expired entries are dropped lazily on read.
type CacheRepository struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
}

// NewCacheRepository creates a new in-memory cache
func NewCacheRepository() *CacheRepository {
	return &CacheRepository{
		entries: make(map[string]cacheEntry),
	}
}

// Get returns the cached value, or ErrNotFound on miss
func (c *CacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, outbound.ErrNotFound
	}
	if entry.expired() {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, outbound.ErrNotFound
	}
	return entry.value, nil
}

// Set stores a value; ttl <= 0 means no expiry
func (c *CacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	entry := cacheEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}

	c.mu.Lock()
	c.entries[key] = entry
	c.mu.Unlock()
	return nil
}

// Delete removes a key
func (c *CacheRepository) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	return nil
}
