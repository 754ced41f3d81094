package port

import (
	"context"
	"time"

	"jurisflow/internal/domain"
)

// ExtractionCache stores extraction results keyed by content fingerprint.
// Get returns found=false on a miss or an expired entry.
type ExtractionCache interface {
	Get(ctx context.Context, key string) (result *domain.ExtractionResult, found bool, err error)
	Set(ctx context.Context, key string, result *domain.ExtractionResult, ttl time.Duration) error
	Ping(ctx context.Context) error
	Close() error
}
