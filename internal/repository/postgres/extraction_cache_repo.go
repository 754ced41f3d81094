package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"jurisflow/internal/domain"
)

type extractionCacheRow struct {
	CacheKey  string    `db:"cache_key"`
	Payload   []byte    `db:"payload"`
	ExpiresAt time.Time `db:"expires_at"`
}

// ExtractionCacheRepo implements port.ExtractionCache on the extraction_cache table.
type ExtractionCacheRepo struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewExtractionCacheRepo creates a new PostgreSQL-backed extraction cache.
func NewExtractionCacheRepo(db *sqlx.DB) *ExtractionCacheRepo {
	return &ExtractionCacheRepo{db: db, now: time.Now}
}

func (r *ExtractionCacheRepo) Get(ctx context.Context, key string) (*domain.ExtractionResult, bool, error) {
	var row extractionCacheRow
	err := r.db.GetContext(ctx, &row,
		"SELECT cache_key, payload, expires_at FROM extraction_cache WHERE cache_key = $1 AND expires_at > $2",
		key, r.now().UTC())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("extractionCacheRepo.Get: %w", err)
	}

	var result domain.ExtractionResult
	if err := json.Unmarshal(row.Payload, &result); err != nil {
		return nil, false, fmt.Errorf("extractionCacheRepo.Get decode: %w", err)
	}
	return &result, true, nil
}

func (r *ExtractionCacheRepo) Set(ctx context.Context, key string, result *domain.ExtractionResult, ttl time.Duration) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("extractionCacheRepo.Set encode: %w", err)
	}

	query := `INSERT INTO extraction_cache (cache_key, payload, expires_at, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (cache_key) DO UPDATE
		SET payload = EXCLUDED.payload, expires_at = EXCLUDED.expires_at`

	now := r.now().UTC()
	if _, err := r.db.ExecContext(ctx, query, key, payload, now.Add(ttl), now); err != nil {
		return fmt.Errorf("extractionCacheRepo.Set: %w", err)
	}
	return nil
}

// DeleteExpired removes entries past their expiry and returns how many were removed.
func (r *ExtractionCacheRepo) DeleteExpired(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM extraction_cache WHERE expires_at <= $1", r.now().UTC())
	if err != nil {
		return 0, fmt.Errorf("extractionCacheRepo.DeleteExpired: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("extractionCacheRepo.DeleteExpired rows: %w", err)
	}
	return n, nil
}

func (r *ExtractionCacheRepo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *ExtractionCacheRepo) Close() error {
	return r.db.Close()
}
