package service

import (
	"context"
	"time"

	"jurisflow/internal/port"
)

const (
	StatusHealthy  = "healthy"
	StatusDegraded = "degraded"

	pingTimeout = 2 * time.Second
)

// Dependencies reports which optional collaborators are wired.
type Dependencies struct {
	TextGeneration  bool
	PrecedentSearch bool
	Storage         bool
}

// HealthService reports per-dependency status.
type HealthService interface {
	Check(ctx context.Context) map[string]bool
	Ready(ctx context.Context) bool
}

type healthService struct {
	cache port.ExtractionCache
	deps  Dependencies
}

// NewHealthService creates a new HealthService.
func NewHealthService(cache port.ExtractionCache, deps Dependencies) HealthService {
	return &healthService{cache: cache, deps: deps}
}

func (s *healthService) Check(ctx context.Context) map[string]bool {
	return map[string]bool{
		"cache":            s.cacheReachable(ctx),
		"text_generation":  s.deps.TextGeneration,
		"precedent_search": s.deps.PrecedentSearch,
		"storage":          s.deps.Storage,
	}
}

// Ready reports whether the service can answer analysis requests.
func (s *healthService) Ready(ctx context.Context) bool {
	return s.deps.TextGeneration && s.cacheReachable(ctx)
}

func (s *healthService) cacheReachable(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return s.cache.Ping(ctx) == nil
}
