package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"jurisflow/internal/config"
	"jurisflow/internal/domain"
	"jurisflow/internal/llm"
	"jurisflow/internal/port"
)

const (
	firacMaxTokens   = 2000
	firacTemperature = 0.3
)

// AnalysisService defines the FIRAC legal analysis contract.
type AnalysisService interface {
	AnalyzeFIRAC(ctx context.Context, text string) (*domain.AnalysisResult, error)
}

type analysisService struct {
	generator port.TextGenerator
	cfg       *config.AnalysisConfig
	now       func() time.Time
}

// NewAnalysisService creates a new AnalysisService. generator may be nil when
// no provider is configured; calls then fail with ErrGeneratorNotConfigured.
func NewAnalysisService(generator port.TextGenerator, cfg *config.AnalysisConfig) AnalysisService {
	return &analysisService{generator: generator, cfg: cfg, now: time.Now}
}

func (s *analysisService) AnalyzeFIRAC(ctx context.Context, text string) (*domain.AnalysisResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.NewMissingFieldError("text")
	}
	if s.generator == nil {
		return nil, domain.ErrGeneratorNotConfigured
	}

	excerpt, truncated := llm.TruncateRunes(text, s.cfg.MaxChars)
	out, err := s.generator.Generate(ctx, port.GenerateInput{
		System:      llm.FIRACSystemPrompt,
		Prompt:      llm.BuildFIRACPrompt(excerpt, truncated),
		MaxTokens:   firacMaxTokens,
		Temperature: firacTemperature,
		JSON:        true,
	})
	if err != nil {
		slog.ErrorContext(ctx, "analysisService.AnalyzeFIRAC: generation failed", "error", err)
		return nil, err
	}

	result := &domain.AnalysisResult{
		FIRACAnalysis: out.Text,
		AnalysisType:  domain.AnalysisTypeAutoDetect,
		Truncated:     truncated,
		Model:         out.Model,
		Timestamp:     s.now().UTC(),
	}
	if structured, ok := llm.JSONObject(out.Text); ok {
		result.Structured = structured
	}
	return result, nil
}
