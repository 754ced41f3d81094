package port

import (
	"context"

	"jurisflow/internal/domain"
)

// PrecedentSearcher abstracts the external case-law search API.
type PrecedentSearcher interface {
	Search(ctx context.Context, query domain.PrecedentQuery) (*domain.PrecedentResult, error)
}
