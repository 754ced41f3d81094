package memory

import (
	"context"
	"sync"
	"time"

	"jurisflow/internal/domain"
)

type entry struct {
	result    domain.ExtractionResult
	expiresAt time.Time
}

// Cache is an in-process ExtractionCache. Expired entries are dropped on read.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

// NewCache creates an empty in-memory cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]entry), now: time.Now}
}

// NewCacheWithClock creates a cache that reads time from now (for testing).
func NewCacheWithClock(now func() time.Time) *Cache {
	return &Cache{entries: make(map[string]entry), now: now}
}

func (c *Cache) Get(_ context.Context, key string) (*domain.ExtractionResult, bool, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if !c.now().Before(e.expiresAt) {
		c.mu.Lock()
		if cur, ok := c.entries[key]; ok && cur.expiresAt.Equal(e.expiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false, nil
	}
	result := e.result
	return &result, true, nil
}

func (c *Cache) Set(_ context.Context, key string, result *domain.ExtractionResult, ttl time.Duration) error {
	c.mu.Lock()
	c.entries[key] = entry{result: *result, expiresAt: c.now().Add(ttl)}
	c.mu.Unlock()
	return nil
}

// Len returns the number of stored entries, expired or not.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *Cache) Ping(_ context.Context) error { return nil }

func (c *Cache) Close() error { return nil }
