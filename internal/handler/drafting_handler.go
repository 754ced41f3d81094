package handler

import (
	"github.com/gin-gonic/gin"

	"jurisflow/internal/domain"
)

// Draft handles POST /api/v1/documents/draft
// @Summary Draft a judicial document
// @Description Generate a ruling or order from structured case data.
// @Tags documents
// @Accept json
// @Produce json
// @Param body body DraftRequest true "Document kind and case data"
// @Success 200 {object} Response{data=domain.DraftResult} "Generated document"
// @Failure 400 {object} ErrorResponseBody "Missing field or unsupported kind"
// @Failure 502 {object} ErrorResponseBody "Text generation failed"
// @Failure 503 {object} ErrorResponseBody "No text generation provider"
// @Security BearerAuth
// @Router /documents/draft [post]
func (h *DocumentHandler) Draft(c *gin.Context) {
	var req DraftRequest
	if err := decodeJSON(c, &req, false); err != nil {
		HandleError(c, err)
		return
	}

	kind := req.DocumentKind
	if kind == "" {
		kind = req.DocumentType
	}
	if kind == "" {
		HandleError(c, domain.NewMissingFieldError("document_kind"))
		return
	}

	result, err := h.draftingService.Draft(c.Request.Context(), domain.NormalizeDocumentKind(kind), req.CaseData)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}
