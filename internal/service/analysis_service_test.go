package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"jurisflow/internal/config"
	"jurisflow/internal/domain"
	"jurisflow/internal/port"
	"jurisflow/internal/service"
	"jurisflow/mocks"
)

func TestAnalyzeFIRAC_Success(t *testing.T) {
	gen := new(mocks.MockTextGenerator)
	cfg := config.AnalysisConfig{MaxChars: 3000}
	svc := service.NewAnalysisService(gen, &cfg)

	modelText := "```json\n{\"fatos\":\"a\",\"questoes\":\"b\",\"regras\":\"c\",\"analise\":\"d\",\"conclusao\":\"e\"}\n```"
	gen.On("Generate", mock.Anything, mock.MatchedBy(func(in port.GenerateInput) bool {
		return in.MaxTokens == 2000 && in.Temperature == 0.3 && in.JSON &&
			strings.Contains(in.Prompt, "O réu não pagou") && !strings.Contains(in.Prompt, "não pagou...")
	})).Return(&port.GenerateOutput{Text: modelText, Model: "gpt-4o"}, nil)

	result, err := svc.AnalyzeFIRAC(context.Background(), "O réu não pagou")

	require.NoError(t, err)
	assert.Equal(t, modelText, result.FIRACAnalysis)
	assert.JSONEq(t, `{"fatos":"a","questoes":"b","regras":"c","analise":"d","conclusao":"e"}`, string(result.Structured))
	assert.Equal(t, domain.AnalysisTypeAutoDetect, result.AnalysisType)
	assert.False(t, result.Truncated)
	assert.Equal(t, "gpt-4o", result.Model)
	gen.AssertExpectations(t)
}

func TestAnalyzeFIRAC_TruncatesLongText(t *testing.T) {
	gen := new(mocks.MockTextGenerator)
	cfg := config.AnalysisConfig{MaxChars: 10}
	svc := service.NewAnalysisService(gen, &cfg)

	gen.On("Generate", mock.Anything, mock.MatchedBy(func(in port.GenerateInput) bool {
		return strings.Contains(in.Prompt, "ação penal...") && !strings.Contains(in.Prompt, "pública")
	})).Return(&port.GenerateOutput{Text: "FATOS: texto livre", Model: "m"}, nil)

	result, err := svc.AnalyzeFIRAC(context.Background(), "ação penal pública")

	require.NoError(t, err)
	assert.True(t, result.Truncated)
	assert.Nil(t, result.Structured)
	assert.Equal(t, "FATOS: texto livre", result.FIRACAnalysis)
}

func TestAnalyzeFIRAC_MissingText(t *testing.T) {
	gen := new(mocks.MockTextGenerator)
	cfg := config.AnalysisConfig{MaxChars: 3000}
	svc := service.NewAnalysisService(gen, &cfg)

	_, err := svc.AnalyzeFIRAC(context.Background(), "   ")

	var fieldErr *domain.FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "text", fieldErr.Field)
	gen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestAnalyzeFIRAC_NoGenerator(t *testing.T) {
	cfg := config.AnalysisConfig{MaxChars: 3000}
	svc := service.NewAnalysisService(nil, &cfg)

	_, err := svc.AnalyzeFIRAC(context.Background(), "texto")

	assert.ErrorIs(t, err, domain.ErrGeneratorNotConfigured)
}

func TestAnalyzeFIRAC_UpstreamError(t *testing.T) {
	gen := new(mocks.MockTextGenerator)
	cfg := config.AnalysisConfig{MaxChars: 3000}
	svc := service.NewAnalysisService(gen, &cfg)

	upErr := domain.NewUpstreamStatusError("openai", 500, "boom")
	gen.On("Generate", mock.Anything, mock.Anything).Return(nil, upErr).Once()

	_, err := svc.AnalyzeFIRAC(context.Background(), "texto")

	var got *domain.UpstreamError
	require.True(t, errors.As(err, &got))
	assert.Equal(t, 500, got.StatusCode)
	gen.AssertNumberOfCalls(t, "Generate", 1)
}
