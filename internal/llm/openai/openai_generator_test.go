package openai_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jurisflow/internal/config"
	"jurisflow/internal/domain"
	"jurisflow/internal/llm/openai"
	"jurisflow/internal/port"
)

func newTestGenerator(serverURL string) *openai.Generator {
	cfg := &config.LLMConfig{
		Provider:     "openai",
		APIKey:       "test-openai-key",
		DefaultModel: "gpt-4o",
		TimeoutSecs:  30,
	}
	return openai.NewGeneratorWithEndpoint(cfg, serverURL)
}

func successResponse(content, finish string) map[string]interface{} {
	return map[string]interface{}{
		"model": "gpt-4o-2024-08-06",
		"choices": []map[string]interface{}{
			{
				"message":       map[string]interface{}{"role": "assistant", "content": content},
				"finish_reason": finish,
			},
		},
	}
}

func TestGenerate_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-openai-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var reqBody map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
		assert.Equal(t, "gpt-4o", reqBody["model"])
		assert.Equal(t, float64(2000), reqBody["max_completion_tokens"])
		assert.Equal(t, 0.3, reqBody["temperature"])
		assert.Equal(t, map[string]interface{}{"type": "json_object"}, reqBody["response_format"])

		messages := reqBody["messages"].([]interface{})
		require.Len(t, messages, 2)
		assert.Equal(t, "system", messages[0].(map[string]interface{})["role"])
		assert.Equal(t, "user", messages[1].(map[string]interface{})["role"])
		assert.Equal(t, "analise isto", messages[1].(map[string]interface{})["content"])

		_ = json.NewEncoder(w).Encode(successResponse(`{"fatos":"x"}`, "stop"))
	}))
	defer server.Close()

	out, err := newTestGenerator(server.URL).Generate(context.Background(), port.GenerateInput{
		System:      "sistema",
		Prompt:      "analise isto",
		MaxTokens:   2000,
		Temperature: 0.3,
		JSON:        true,
	})

	require.NoError(t, err)
	assert.Equal(t, `{"fatos":"x"}`, out.Text)
	assert.Equal(t, "gpt-4o-2024-08-06", out.Model)
}

func TestGenerate_PlainTextOmitsResponseFormat(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var reqBody map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
		assert.NotContains(t, reqBody, "response_format")
		assert.Len(t, reqBody["messages"], 1)
		_ = json.NewEncoder(w).Encode(successResponse("Despacho: cite-se.", "stop"))
	}))
	defer server.Close()

	out, err := newTestGenerator(server.URL).Generate(context.Background(), port.GenerateInput{Prompt: "gere"})

	require.NoError(t, err)
	assert.Equal(t, "Despacho: cite-se.", out.Text)
}

func TestGenerate_ErrorStatusCarriesBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limit"}}`))
	}))
	defer server.Close()

	_, err := newTestGenerator(server.URL).Generate(context.Background(), port.GenerateInput{Prompt: "x"})

	var upErr *domain.UpstreamError
	require.True(t, errors.As(err, &upErr))
	assert.Equal(t, "openai", upErr.Service)
	assert.Equal(t, http.StatusTooManyRequests, upErr.StatusCode)
	assert.Contains(t, upErr.Body, "rate limit")
}

func TestGenerate_Truncated(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(successResponse(`{"fatos":`, "length"))
	}))
	defer server.Close()

	_, err := newTestGenerator(server.URL).Generate(context.Background(), port.GenerateInput{Prompt: "x"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "output truncated")
}

func TestGenerate_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	_, err := newTestGenerator(server.URL).Generate(context.Background(), port.GenerateInput{Prompt: "x"})

	var upErr *domain.UpstreamError
	require.True(t, errors.As(err, &upErr))
	assert.Contains(t, err.Error(), "no choices")
}

func TestGenerate_EmptyContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(successResponse("   ", "stop"))
	}))
	defer server.Close()

	_, err := newTestGenerator(server.URL).Generate(context.Background(), port.GenerateInput{Prompt: "x"})

	assert.ErrorIs(t, err, domain.ErrEmptyGeneration)
}

func TestGenerate_InvalidJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>gateway</html>`))
	}))
	defer server.Close()

	_, err := newTestGenerator(server.URL).Generate(context.Background(), port.GenerateInput{Prompt: "x"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshaling response")
}
