package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"jurisflow/internal/domain"
	"jurisflow/internal/handler"
	"jurisflow/mocks"
)

func TestAnalysisHandler_FIRAC_Success(t *testing.T) {
	mockSvc := new(mocks.MockAnalysisService)
	h := handler.NewAnalysisHandler(mockSvc, new(mocks.MockDistinguishService))

	mockSvc.On("AnalyzeFIRAC", mock.Anything, "O autor ajuizou ação").
		Return(&domain.AnalysisResult{FIRACAnalysis: "FATOS: ...", AnalysisType: domain.AnalysisTypeAutoDetect}, nil)

	c, w := newJSONContext(http.MethodPost, "/api/v1/analysis/firac", `{"text":"O autor ajuizou ação"}`)
	h.FIRAC(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var result domain.AnalysisResult
	decodeData(t, w, &result)
	assert.Equal(t, "FATOS: ...", result.FIRACAnalysis)
	assert.Equal(t, "auto-detect", result.AnalysisType)
	mockSvc.AssertExpectations(t)
}

func TestAnalysisHandler_FIRAC_UpstreamFailure(t *testing.T) {
	mockSvc := new(mocks.MockAnalysisService)
	h := handler.NewAnalysisHandler(mockSvc, new(mocks.MockDistinguishService))

	mockSvc.On("AnalyzeFIRAC", mock.Anything, "texto").
		Return(nil, domain.NewUpstreamStatusError("openai", http.StatusUnauthorized, "invalid api key"))

	c, w := newJSONContext(http.MethodPost, "/api/v1/analysis/firac", `{"text":"texto"}`)
	h.FIRAC(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "UPSTREAM_ERROR", resp.Error.Code)
	assert.Equal(t, "invalid api key", resp.Error.Details)
	assert.Equal(t, http.StatusUnauthorized, resp.Error.UpstreamStatus)
}

func TestAnalysisHandler_FIRAC_NoGenerator(t *testing.T) {
	mockSvc := new(mocks.MockAnalysisService)
	h := handler.NewAnalysisHandler(mockSvc, new(mocks.MockDistinguishService))

	mockSvc.On("AnalyzeFIRAC", mock.Anything, "texto").Return(nil, domain.ErrGeneratorNotConfigured)

	c, w := newJSONContext(http.MethodPost, "/api/v1/analysis/firac", `{"text":"texto"}`)
	h.FIRAC(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestAnalysisHandler_Distinguish_Success(t *testing.T) {
	mockSvc := new(mocks.MockDistinguishService)
	h := handler.NewAnalysisHandler(new(mocks.MockAnalysisService), mockSvc)

	applicable := true
	precedent := json.RawMessage(`{"numero":"123"}`)
	mockSvc.On("Analyze", mock.Anything, "fatos", precedent).
		Return(&domain.DistinguishResult{
			DistinguishAnalysis: "{}",
			Applicable:          &applicable,
			VerdictStatus:       domain.VerdictParsed,
		}, nil)

	c, w := newJSONContext(http.MethodPost, "/api/v1/analysis/distinguish", `{"current_facts":"fatos","precedent_data":{"numero":"123"}}`)
	h.Distinguish(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var result domain.DistinguishResult
	decodeData(t, w, &result)
	if assert.NotNil(t, result.Applicable) {
		assert.True(t, *result.Applicable)
	}
	assert.Nil(t, result.Confidence)
	assert.Equal(t, domain.VerdictParsed, result.VerdictStatus)
}

func TestAnalysisHandler_Distinguish_NonObjectPrecedent(t *testing.T) {
	mockSvc := new(mocks.MockDistinguishService)
	h := handler.NewAnalysisHandler(new(mocks.MockAnalysisService), mockSvc)

	mockSvc.On("Analyze", mock.Anything, "fatos", json.RawMessage(`[1,2]`)).
		Return(nil, domain.ErrInvalidStructuredPayload)

	c, w := newJSONContext(http.MethodPost, "/api/v1/analysis/distinguish", `{"current_facts":"fatos","precedent_data":[1,2]}`)
	h.Distinguish(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "INVALID_STRUCTURED_PAYLOAD", resp.Error.Code)
}
