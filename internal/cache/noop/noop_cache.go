package noop

import (
	"context"
	"time"

	"jurisflow/internal/domain"
)

// Cache is an ExtractionCache that stores nothing. Used when caching is disabled.
type Cache struct{}

func NewCache() *Cache { return &Cache{} }

func (Cache) Get(_ context.Context, _ string) (*domain.ExtractionResult, bool, error) {
	return nil, false, nil
}

func (Cache) Set(_ context.Context, _ string, _ *domain.ExtractionResult, _ time.Duration) error {
	return nil
}

func (Cache) Ping(_ context.Context) error { return nil }

func (Cache) Close() error { return nil }
