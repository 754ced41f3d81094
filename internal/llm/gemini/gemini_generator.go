package gemini

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"jurisflow/internal/config"
	"jurisflow/internal/domain"
	"jurisflow/internal/llm"
	"jurisflow/internal/port"
)

const serviceName = "gemini"

// Generator implements port.TextGenerator using the Gemini API SDK.
type Generator struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGenerator creates a Gemini-backed generator authenticated by API key.
func NewGenerator(ctx context.Context, cfg *config.LLMConfig) (*Generator, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini: api key is required")
	}
	opts := []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}
	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("genai.NewClient: %w", err)
	}
	model := cfg.DefaultModel
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &Generator{client: client, model: model, timeout: cfg.Timeout()}, nil
}

func (g *Generator) Generate(ctx context.Context, input port.GenerateInput) (*port.GenerateOutput, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	// GenerativeModel is cheap and mutable, so build one per call.
	m := g.client.GenerativeModel(g.model)
	if input.System != "" {
		m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(input.System)}}
	}
	m.SetTemperature(float32(input.Temperature))
	if input.MaxTokens > 0 {
		m.SetMaxOutputTokens(int32(input.MaxTokens))
	}
	if input.JSON {
		m.ResponseMIMEType = "application/json"
	}

	resp, err := m.GenerateContent(ctx, genai.Text(input.Prompt))
	if err != nil {
		return nil, llm.NewGoogleUpstreamError(serviceName, fmt.Errorf("generating content: %w", err))
	}

	text, err := ResponseText(resp)
	if err != nil {
		return nil, domain.NewUpstreamError(serviceName, err)
	}
	return &port.GenerateOutput{Text: text, Model: g.model}, nil
}

// Close releases the underlying client.
func (g *Generator) Close() error {
	return g.client.Close()
}

// ResponseText joins the text parts of the first candidate.
func ResponseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return llm.CandidateText(nil)
	}
	cand := resp.Candidates[0]
	c := &llm.Candidate{Truncated: cand.FinishReason == genai.FinishReasonMaxTokens}
	if cand.Content != nil {
		c.PartCount = len(cand.Content.Parts)
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				c.Texts = append(c.Texts, string(t))
			}
		}
	}
	return llm.CandidateText(c)
}
