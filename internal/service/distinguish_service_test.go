package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"jurisflow/internal/domain"
	"jurisflow/internal/port"
	"jurisflow/internal/service"
	"jurisflow/mocks"
)

func TestParseVerdict(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		ok         bool
		applicable bool
		confidence *float64
	}{
		{"sim with confidence", `{"aplicavel":"SIM","confianca":0.8}`, true, true, floatPtr(0.8)},
		{"nao accented", `{"aplicavel":"não","confianca":"0,4"}`, true, false, floatPtr(0.4)},
		{"boolean english keys", `{"applicable":true,"confidence":1.7}`, true, true, floatPtr(1)},
		{"negative confidence clamped", `{"aplicavel":"NAO","confianca":-2}`, true, false, floatPtr(0)},
		{"fenced", "```json\n{\"aplicavel\":\"SIM\"}\n```", true, true, nil},
		{"missing verdict", `{"confianca":0.9}`, false, false, nil},
		{"unknown verdict", `{"aplicavel":"TALVEZ"}`, false, false, nil},
		{"free text", "O precedente se aplica.", false, false, nil},
		{"null verdict", `{"aplicavel":null,"confianca":0.9}`, false, false, nil},
		{"null verdict falls back to english key", `{"aplicavel":null,"applicable":true}`, true, true, nil},
		{"null confidence", `{"aplicavel":"SIM","confianca":null}`, true, true, nil},
		{"null confidence falls back to english key", `{"aplicavel":"SIM","confianca":null,"confidence":0.3}`, true, true, floatPtr(0.3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			applicable, confidence, ok := service.ParseVerdict(tt.text)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.applicable, applicable)
			if tt.confidence == nil {
				assert.Nil(t, confidence)
			} else {
				require.NotNil(t, confidence)
				assert.InDelta(t, *tt.confidence, *confidence, 1e-9)
			}
		})
	}
}

func floatPtr(v float64) *float64 { return &v }

func TestDistinguish_Parsed(t *testing.T) {
	gen := new(mocks.MockTextGenerator)
	svc := service.NewDistinguishService(gen)

	modelText := `{"aplicavel":"NÃO","semelhancas":"x","diferencas":"y","fundamentacao":"z","argumentacao_distinguish":"w","confianca":0.65}`
	gen.On("Generate", mock.Anything, mock.MatchedBy(func(in port.GenerateInput) bool {
		return in.Temperature == 0.2 && in.JSON &&
			strings.Contains(in.Prompt, "Fatos atuais") &&
			strings.Contains(in.Prompt, "{\n  \"id\": \"A1\"\n}")
	})).Return(&port.GenerateOutput{Text: modelText, Model: "gpt-4o"}, nil)

	result, err := svc.Analyze(context.Background(), "Fatos atuais", json.RawMessage(`{"id":"A1"}`))

	require.NoError(t, err)
	assert.Equal(t, modelText, result.DistinguishAnalysis)
	require.NotNil(t, result.Applicable)
	assert.False(t, *result.Applicable)
	require.NotNil(t, result.Confidence)
	assert.InDelta(t, 0.65, *result.Confidence, 1e-9)
	assert.Equal(t, domain.VerdictParsed, result.VerdictStatus)
	gen.AssertExpectations(t)
}

func TestDistinguish_Unparsed(t *testing.T) {
	gen := new(mocks.MockTextGenerator)
	svc := service.NewDistinguishService(gen)

	gen.On("Generate", mock.Anything, mock.Anything).
		Return(&port.GenerateOutput{Text: "1. O precedente se aplica parcialmente.", Model: "m"}, nil)

	result, err := svc.Analyze(context.Background(), "fatos", json.RawMessage(`{"id":"A1"}`))

	require.NoError(t, err)
	assert.Nil(t, result.Applicable)
	assert.Nil(t, result.Confidence)
	assert.Equal(t, domain.VerdictUnparsed, result.VerdictStatus)
}

func TestDistinguish_Validation(t *testing.T) {
	gen := new(mocks.MockTextGenerator)
	svc := service.NewDistinguishService(gen)
	ctx := context.Background()

	_, err := svc.Analyze(ctx, "", json.RawMessage(`{}`))
	var fieldErr *domain.FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "current_facts", fieldErr.Field)

	_, err = svc.Analyze(ctx, "fatos", nil)
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "precedent_data", fieldErr.Field)

	_, err = svc.Analyze(ctx, "fatos", json.RawMessage(`null`))
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "precedent_data", fieldErr.Field)

	_, err = svc.Analyze(ctx, "fatos", json.RawMessage(`["a"]`))
	assert.ErrorIs(t, err, domain.ErrInvalidStructuredPayload)

	gen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestDistinguish_NoGenerator(t *testing.T) {
	svc := service.NewDistinguishService(nil)

	_, err := svc.Analyze(context.Background(), "fatos", json.RawMessage(`{"id":"A1"}`))

	assert.ErrorIs(t, err, domain.ErrGeneratorNotConfigured)
}
