package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"jurisflow/internal/domain"
	"jurisflow/internal/llm"
	"jurisflow/internal/port"
)

const (
	distinguishMaxTokens   = 2000
	distinguishTemperature = 0.2
)

// DistinguishService defines the precedent applicability contract.
type DistinguishService interface {
	Analyze(ctx context.Context, currentFacts string, precedent json.RawMessage) (*domain.DistinguishResult, error)
}

type distinguishService struct {
	generator port.TextGenerator
	now       func() time.Time
}

// NewDistinguishService creates a new DistinguishService.
func NewDistinguishService(generator port.TextGenerator) DistinguishService {
	return &distinguishService{generator: generator, now: time.Now}
}

func (s *distinguishService) Analyze(ctx context.Context, currentFacts string, precedent json.RawMessage) (*domain.DistinguishResult, error) {
	if strings.TrimSpace(currentFacts) == "" {
		return nil, domain.NewMissingFieldError("current_facts")
	}
	indented, err := indentObject("precedent_data", precedent)
	if err != nil {
		return nil, err
	}
	if s.generator == nil {
		return nil, domain.ErrGeneratorNotConfigured
	}

	out, err := s.generator.Generate(ctx, port.GenerateInput{
		System:      llm.DistinguishSystemPrompt,
		Prompt:      llm.BuildDistinguishPrompt(currentFacts, indented),
		MaxTokens:   distinguishMaxTokens,
		Temperature: distinguishTemperature,
		JSON:        true,
	})
	if err != nil {
		slog.ErrorContext(ctx, "distinguishService.Analyze: generation failed", "error", err)
		return nil, err
	}

	result := &domain.DistinguishResult{
		DistinguishAnalysis: out.Text,
		VerdictStatus:       domain.VerdictUnparsed,
		Model:               out.Model,
		Timestamp:           s.now().UTC(),
	}
	if applicable, confidence, ok := ParseVerdict(out.Text); ok {
		result.Applicable = &applicable
		result.Confidence = confidence
		result.VerdictStatus = domain.VerdictParsed
	} else {
		slog.WarnContext(ctx, "distinguishService.Analyze: verdict not readable from model output")
	}
	return result, nil
}

type verdictPayload struct {
	Aplicavel  json.RawMessage `json:"aplicavel"`
	Applicable json.RawMessage `json:"applicable"`
	Confianca  json.RawMessage `json:"confianca"`
	Confidence json.RawMessage `json:"confidence"`
}

// ParseVerdict reads the applicability verdict and confidence from model
// output. ok is false when no verdict can be read; confidence is nil when
// absent or malformed, and clamped to [0,1] otherwise.
func ParseVerdict(text string) (applicable bool, confidence *float64, ok bool) {
	raw, isObject := llm.JSONObject(text)
	if !isObject {
		return false, nil, false
	}
	var p verdictPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return false, nil, false
	}

	verdict := p.Aplicavel
	if isAbsent(verdict) {
		verdict = p.Applicable
	}
	applicable, ok = parseApplicable(verdict)
	if !ok {
		return false, nil, false
	}

	conf := p.Confianca
	if isAbsent(conf) {
		conf = p.Confidence
	}
	if c, found := parseConfidence(conf); found {
		confidence = &c
	}
	return applicable, confidence, true
}

// isAbsent reports whether a JSON value is missing or null.
func isAbsent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func parseApplicable(raw json.RawMessage) (bool, bool) {
	if isAbsent(raw) {
		return false, false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b, true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return false, false
	}
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SIM", "YES", "TRUE", "APLICÁVEL", "APLICAVEL":
		return true, true
	case "NÃO", "NAO", "NO", "FALSE", "INAPLICÁVEL", "INAPLICAVEL":
		return false, true
	}
	return false, false
}

func parseConfidence(raw json.RawMessage) (float64, bool) {
	if isAbsent(raw) {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(strings.Replace(s, ",", ".", 1)), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	}
	switch {
	case f < 0:
		f = 0
	case f > 1:
		f = 1
	}
	return f, true
}

// indentObject checks that raw is a JSON object and returns it indented.
func indentObject(field string, raw json.RawMessage) (string, error) {
	if isAbsent(raw) {
		return "", domain.NewMissingFieldError(field)
	}
	trimmed := bytes.TrimSpace(raw)
	if trimmed[0] != '{' {
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidStructuredPayload, field)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, trimmed, "", "  "); err != nil {
		return "", fmt.Errorf("%w: %s: %v", domain.ErrInvalidStructuredPayload, field, err)
	}
	return buf.String(), nil
}
