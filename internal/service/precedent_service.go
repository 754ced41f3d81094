package service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"jurisflow/internal/config"
	"jurisflow/internal/domain"
	"jurisflow/internal/port"
)

var courtPattern = regexp.MustCompile(`^[a-z0-9]+$`)

// SearchInput holds the optional filters of a precedent search.
// Nil pointers mean the filter is absent.
type SearchInput struct {
	Court           string
	ClassCode       *domain.Code
	JudgingBodyCode *domain.Code
	Keywords        *string
	Size            *int
}

// PrecedentService defines the precedent search contract.
type PrecedentService interface {
	Search(ctx context.Context, input SearchInput) (*domain.PrecedentResult, error)
}

type precedentService struct {
	searcher port.PrecedentSearcher
	cfg      *config.DataJudConfig
}

// NewPrecedentService creates a new PrecedentService.
func NewPrecedentService(searcher port.PrecedentSearcher, cfg *config.DataJudConfig) PrecedentService {
	return &precedentService{searcher: searcher, cfg: cfg}
}

// buildQuery applies defaults to input and validates it.
func (s *precedentService) buildQuery(input SearchInput) (domain.PrecedentQuery, error) {
	q := domain.PrecedentQuery{
		Court: strings.TrimSpace(input.Court),
		Size:  s.cfg.DefaultSize,
	}
	if q.Court == "" {
		q.Court = s.cfg.DefaultCourt
	}
	if !courtPattern.MatchString(q.Court) {
		return q, fmt.Errorf("%w: %q", domain.ErrInvalidCourt, q.Court)
	}

	if input.Size != nil {
		if *input.Size < 1 || *input.Size > s.cfg.MaxSize {
			return q, fmt.Errorf("%w: must be between 1 and %d", domain.ErrInvalidSize, s.cfg.MaxSize)
		}
		q.Size = *input.Size
	}

	if input.ClassCode != nil && *input.ClassCode != "" {
		q.ClassCode = input.ClassCode
	}
	if input.JudgingBodyCode != nil && *input.JudgingBodyCode != "" {
		q.JudgingBodyCode = input.JudgingBodyCode
	}
	if input.Keywords != nil && strings.TrimSpace(*input.Keywords) != "" {
		kw := strings.TrimSpace(*input.Keywords)
		q.Keywords = &kw
	}
	return q, nil
}

func (s *precedentService) Search(ctx context.Context, input SearchInput) (*domain.PrecedentResult, error) {
	q, err := s.buildQuery(input)
	if err != nil {
		return nil, err
	}

	result, err := s.searcher.Search(ctx, q)
	if err != nil {
		slog.ErrorContext(ctx, "precedentService.Search: search failed", "court", q.Court, "error", err)
		return nil, err
	}

	slog.InfoContext(ctx, "precedentService.Search: search completed",
		"court", q.Court, "total", result.Total, "returned", len(result.Precedents))
	return result, nil
}
