package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"jurisflow/internal/domain"
	"jurisflow/internal/llm"
	"jurisflow/internal/port"
)

const (
	draftMaxTokens   = 3000
	draftTemperature = 0.3
)

// DraftingService defines the judicial document drafting contract.
type DraftingService interface {
	Draft(ctx context.Context, kind domain.DocumentKind, caseData json.RawMessage) (*domain.DraftResult, error)
}

type draftingService struct {
	generator port.TextGenerator
	now       func() time.Time
}

// NewDraftingService creates a new DraftingService.
func NewDraftingService(generator port.TextGenerator) DraftingService {
	return &draftingService{generator: generator, now: time.Now}
}

func (s *draftingService) Draft(ctx context.Context, kind domain.DocumentKind, caseData json.RawMessage) (*domain.DraftResult, error) {
	kind = domain.NormalizeDocumentKind(string(kind))
	if kind == "" {
		return nil, domain.NewMissingFieldError("document_kind")
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedDocumentKind, kind)
	}
	data, err := indentObject("case_data", caseData)
	if err != nil {
		return nil, err
	}
	if s.generator == nil {
		return nil, domain.ErrGeneratorNotConfigured
	}

	prompt, err := llm.BuildDraftPrompt(kind, data)
	if err != nil {
		return nil, err
	}

	out, err := s.generator.Generate(ctx, port.GenerateInput{
		System:      llm.DraftSystemPrompt,
		Prompt:      prompt,
		MaxTokens:   draftMaxTokens,
		Temperature: draftTemperature,
	})
	if err != nil {
		slog.ErrorContext(ctx, "draftingService.Draft: generation failed", "kind", kind, "error", err)
		return nil, err
	}

	return &domain.DraftResult{
		DocumentType:  kind,
		GeneratedText: out.Text,
		Model:         out.Model,
		Timestamp:     s.now().UTC(),
	}, nil
}
