package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jurisflow/internal/domain"
	"jurisflow/internal/service"
)

// multipartOverhead is allowed on top of the document limit for form framing.
const multipartOverhead = 1 << 20

// DocumentHandler handles document extraction and drafting endpoints.
type DocumentHandler struct {
	extractionService service.ExtractionService
	draftingService   service.DraftingService
	maxBytes          int64
}

// NewDocumentHandler creates a new DocumentHandler. maxBytes is the decoded
// document limit; request bodies are capped relative to it.
func NewDocumentHandler(extractionService service.ExtractionService, draftingService service.DraftingService, maxBytes int64) *DocumentHandler {
	return &DocumentHandler{
		extractionService: extractionService,
		draftingService:   draftingService,
		maxBytes:          maxBytes,
	}
}

// Extract handles POST /api/v1/documents/extract
// @Summary Extract text from a PDF
// @Description Extract plain text from a PDF supplied as base64 (pdf_content), a multipart file, or a storage object_key. Results are cached by content fingerprint.
// @Tags documents
// @Accept json,multipart/form-data
// @Produce json
// @Param body body ExtractRequest false "Base64 document or storage key"
// @Param file formData file false "PDF file"
// @Success 200 {object} Response{data=domain.ExtractionResult} "Extracted text"
// @Failure 400 {object} ErrorResponseBody "Missing or invalid document"
// @Failure 404 {object} ErrorResponseBody "Object not found"
// @Failure 413 {object} ErrorResponseBody "Document too large"
// @Failure 415 {object} ErrorResponseBody "Not a PDF"
// @Failure 422 {object} ErrorResponseBody "Extraction failed"
// @Failure 502 {object} ErrorResponseBody "Storage failure"
// @Security BearerAuth
// @Router /documents/extract [post]
func (h *DocumentHandler) Extract(c *gin.Context) {
	// Base64 inflates by 4/3; the service applies the exact decoded limit.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes/3*4+multipartOverhead)

	var input service.ExtractInput
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		data, err := h.readUpload(c)
		if err != nil {
			HandleError(c, err)
			return
		}
		input.Data = data
		input.Content = c.PostForm("pdf_content")
		input.ObjectKey = c.PostForm("object_key")
	} else {
		var req ExtractRequest
		if err := decodeJSON(c, &req, false); err != nil {
			HandleError(c, err)
			return
		}
		input.Content = req.PDFContent
		input.ObjectKey = req.ObjectKey
	}

	result, err := h.extractionService.Extract(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// readUpload returns the bytes of the optional "file" part.
func (h *DocumentHandler) readUpload(c *gin.Context) ([]byte, error) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return nil, domain.ErrDocumentTooLarge
		case errors.Is(err, http.ErrMissingFile):
			return nil, nil
		}
		return nil, &domain.FieldError{Field: "file", Reason: "could not be read"}
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, h.maxBytes+1))
	if err != nil {
		return nil, &domain.FieldError{Field: "file", Reason: "could not be read"}
	}
	if int64(len(data)) > h.maxBytes {
		return nil, domain.ErrDocumentTooLarge
	}
	return data, nil
}
