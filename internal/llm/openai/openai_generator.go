package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"jurisflow/internal/config"
	"jurisflow/internal/domain"
	"jurisflow/internal/llm"
	"jurisflow/internal/port"
)

const (
	apiURL      = "https://api.openai.com/v1/chat/completions"
	serviceName = "openai"
)

// Generator implements port.TextGenerator using the OpenAI Chat Completions API.
type Generator struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewGenerator creates an OpenAI-backed generator. cfg.Endpoint overrides the API URL.
func NewGenerator(cfg *config.LLMConfig) *Generator {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = apiURL
	}
	return NewGeneratorWithEndpoint(cfg, endpoint)
}

// NewGeneratorWithEndpoint creates a generator pointing at a custom API endpoint (for testing).
func NewGeneratorWithEndpoint(cfg *config.LLMConfig, endpoint string) *Generator {
	model := cfg.DefaultModel
	if model == "" {
		model = "gpt-4o"
	}
	return &Generator{
		apiKey:   cfg.APIKey,
		model:    model,
		endpoint: endpoint,
		client:   &http.Client{Timeout: cfg.Timeout()},
	}
}

func (g *Generator) Generate(ctx context.Context, input port.GenerateInput) (*port.GenerateOutput, error) {
	var messages []map[string]interface{}
	if input.System != "" {
		messages = append(messages, map[string]interface{}{"role": "system", "content": input.System})
	}
	messages = append(messages, map[string]interface{}{"role": "user", "content": input.Prompt})

	reqBody := map[string]interface{}{
		"model":                 g.model,
		"messages":              messages,
		"max_completion_tokens": input.MaxTokens,
		"temperature":           input.Temperature,
	}
	if input.JSON {
		reqBody["response_format"] = map[string]interface{}{"type": "json_object"}
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, domain.NewUpstreamError(serviceName, fmt.Errorf("calling openai API: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewUpstreamError(serviceName, fmt.Errorf("reading response: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		return nil, domain.NewUpstreamStatusError(serviceName, resp.StatusCode, string(respBody))
	}

	return parseResponse(respBody, g.model)
}

// apiResponse models the OpenAI Chat Completions API response.
type apiResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

func parseResponse(body []byte, model string) (*port.GenerateOutput, error) {
	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, domain.NewUpstreamError(serviceName,
			fmt.Errorf("unmarshaling response: %w (raw: %s)", err, llm.Truncate(string(body), 500)))
	}

	if len(resp.Choices) == 0 {
		return nil, domain.NewUpstreamError(serviceName, errors.New("empty response from API: no choices"))
	}

	if resp.Choices[0].FinishReason == "length" {
		return nil, domain.NewUpstreamError(serviceName,
			errors.New("output truncated (finish_reason: length): response exceeded output token limit"))
	}

	text := resp.Choices[0].Message.Content
	if strings.TrimSpace(text) == "" {
		return nil, domain.NewUpstreamError(serviceName, domain.ErrEmptyGeneration)
	}

	if resp.Model != "" {
		model = resp.Model
	}
	return &port.GenerateOutput{Text: text, Model: model}, nil
}
