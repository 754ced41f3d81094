package handler

import (
	"github.com/gin-gonic/gin"

	"jurisflow/internal/service"
)

// AnalysisHandler handles FIRAC and distinguish analysis endpoints.
type AnalysisHandler struct {
	analysisService    service.AnalysisService
	distinguishService service.DistinguishService
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(analysisService service.AnalysisService, distinguishService service.DistinguishService) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService, distinguishService: distinguishService}
}

// FIRAC handles POST /api/v1/analysis/firac
// @Summary FIRAC analysis
// @Description Analyze a legal text into Facts, Issues, Rules, Analysis and Conclusion.
// @Tags analysis
// @Accept json
// @Produce json
// @Param body body FIRACRequest true "Legal text"
// @Success 200 {object} Response{data=domain.AnalysisResult} "FIRAC analysis"
// @Failure 400 {object} ErrorResponseBody "Missing text"
// @Failure 502 {object} ErrorResponseBody "Text generation failed"
// @Failure 503 {object} ErrorResponseBody "No text generation provider"
// @Security BearerAuth
// @Router /analysis/firac [post]
func (h *AnalysisHandler) FIRAC(c *gin.Context) {
	var req FIRACRequest
	if err := decodeJSON(c, &req, false); err != nil {
		HandleError(c, err)
		return
	}

	result, err := h.analysisService.AnalyzeFIRAC(c.Request.Context(), req.Text)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// Distinguish handles POST /api/v1/analysis/distinguish
// @Summary Distinguish analysis
// @Description Judge whether a precedent applies to the current facts.
// @Tags analysis
// @Accept json
// @Produce json
// @Param body body DistinguishRequest true "Current facts and precedent"
// @Success 200 {object} Response{data=domain.DistinguishResult} "Distinguish analysis"
// @Failure 400 {object} ErrorResponseBody "Missing field or invalid precedent"
// @Failure 502 {object} ErrorResponseBody "Text generation failed"
// @Failure 503 {object} ErrorResponseBody "No text generation provider"
// @Security BearerAuth
// @Router /analysis/distinguish [post]
func (h *AnalysisHandler) Distinguish(c *gin.Context) {
	var req DistinguishRequest
	if err := decodeJSON(c, &req, false); err != nil {
		HandleError(c, err)
		return
	}

	result, err := h.distinguishService.Analyze(c.Request.Context(), req.CurrentFacts, req.PrecedentData)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}
