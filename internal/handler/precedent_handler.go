package handler

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"jurisflow/internal/export"
	"jurisflow/internal/service"
)

// PrecedentHandler handles precedent search and export endpoints.
type PrecedentHandler struct {
	precedentService service.PrecedentService
	now              func() time.Time
}

// NewPrecedentHandler creates a new PrecedentHandler.
func NewPrecedentHandler(precedentService service.PrecedentService) *PrecedentHandler {
	return &PrecedentHandler{precedentService: precedentService, now: time.Now}
}

// Search handles POST /api/v1/precedents/search
// @Summary Search precedents
// @Description Search court decisions on DataJud. Only court, class_code, judging_body_code, keywords and size are accepted.
// @Tags precedents
// @Accept json
// @Produce json
// @Param body body SearchRequest false "Search filters"
// @Success 200 {object} Response{data=domain.PrecedentResult} "Precedents, newest first"
// @Failure 400 {object} ErrorResponseBody "Unknown field, invalid court or size"
// @Failure 502 {object} ErrorResponseBody "DataJud failure"
// @Security BearerAuth
// @Router /precedents/search [post]
func (h *PrecedentHandler) Search(c *gin.Context) {
	input, err := bindSearch(c)
	if err != nil {
		HandleError(c, err)
		return
	}

	result, err := h.precedentService.Search(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// Export handles POST /api/v1/precedents/search/export
// @Summary Export precedents
// @Description Run a precedent search and download the results as XLSX or CSV.
// @Tags precedents
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet,text/csv
// @Param format query string false "Export format" Enums(xlsx, csv) default(xlsx)
// @Param body body SearchRequest false "Search filters"
// @Success 200 {file} file "Exported precedents"
// @Failure 400 {object} ErrorResponseBody "Unknown field, invalid court, size or format"
// @Failure 502 {object} ErrorResponseBody "DataJud failure"
// @Security BearerAuth
// @Router /precedents/search/export [post]
func (h *PrecedentHandler) Export(c *gin.Context) {
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		HandleError(c, err)
		return
	}

	input, err := bindSearch(c)
	if err != nil {
		HandleError(c, err)
		return
	}

	result, err := h.precedentService.Search(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	// Render into a buffer so a write failure can still produce a JSON error.
	var buf bytes.Buffer
	if err := export.Write(&buf, format, result.Precedents); err != nil {
		slog.ErrorContext(c.Request.Context(), "precedentHandler.Export: rendering failed", "format", format, "error", err)
		HandleError(c, err)
		return
	}

	filename := export.BuildFilename(result.Court, format, h.now())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, export.ContentType(format), buf.Bytes())
}

// bindSearch strictly decodes the search body and resolves legacy aliases.
func bindSearch(c *gin.Context) (service.SearchInput, error) {
	var req SearchRequest
	if err := decodeJSON(c, &req, true); err != nil {
		return service.SearchInput{}, err
	}

	input := service.SearchInput{
		ClassCode:       req.ClassCode,
		JudgingBodyCode: req.JudgingBodyCode,
		Keywords:        req.Keywords,
		Size:            req.Size,
	}
	if req.Court != nil {
		input.Court = *req.Court
	} else if req.Tribunal != nil {
		input.Court = *req.Tribunal
	}
	if input.ClassCode == nil {
		input.ClassCode = req.ClasseCodigo
	}
	if input.JudgingBodyCode == nil {
		input.JudgingBodyCode = req.OrgaoJulgador
	}
	if input.Keywords == nil {
		input.Keywords = req.TextoLivre
	}
	return input, nil
}
