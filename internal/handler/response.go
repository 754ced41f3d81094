package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jurisflow/internal/domain"
	"jurisflow/internal/middleware"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response. Details and UpstreamStatus
// are set for failures of external dependencies.
type APIError struct {
	Code           string `json:"code"`
	Message        string `json:"message"`
	Details        string `json:"details,omitempty"`
	UpstreamStatus int    `json:"upstream_status,omitempty"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error bodies.
func MapDomainError(err error) (int, *APIError) {
	var upErr *domain.UpstreamError
	var unknownErr *domain.UnknownFieldError
	var fieldErr *domain.FieldError

	switch {
	case errors.As(err, &upErr):
		details := upErr.Body
		if details == "" && upErr.Err != nil {
			details = upErr.Err.Error()
		}
		return http.StatusBadGateway, &APIError{
			Code:           "UPSTREAM_ERROR",
			Message:        upErr.Service + " request failed",
			Details:        details,
			UpstreamStatus: upErr.StatusCode,
		}
	case errors.As(err, &unknownErr):
		return http.StatusBadRequest, &APIError{Code: "UNKNOWN_FIELD", Message: unknownErr.Error()}
	case errors.As(err, &fieldErr):
		code := "MISSING_FIELD"
		if fieldErr.Reason != "" {
			code = "INVALID_FIELD"
		}
		return http.StatusBadRequest, &APIError{Code: code, Message: fieldErr.Error()}
	case errors.Is(err, domain.ErrInvalidRequest):
		return http.StatusBadRequest, &APIError{Code: "INVALID_REQUEST", Message: err.Error()}
	case errors.Is(err, domain.ErrInvalidBase64):
		return http.StatusBadRequest, &APIError{Code: "INVALID_BASE64", Message: "pdf_content is not valid base64"}
	case errors.Is(err, domain.ErrAmbiguousDocumentSource):
		return http.StatusBadRequest, &APIError{Code: "AMBIGUOUS_DOCUMENT_SOURCE", Message: "provide exactly one of pdf_content, file, or object_key"}
	case errors.Is(err, domain.ErrDocumentTooLarge):
		return http.StatusRequestEntityTooLarge, &APIError{Code: "DOCUMENT_TOO_LARGE", Message: "document exceeds maximum allowed size"}
	case errors.Is(err, domain.ErrUnsupportedDocument):
		return http.StatusUnsupportedMediaType, &APIError{Code: "UNSUPPORTED_DOCUMENT", Message: "unsupported document format; allowed: pdf"}
	case errors.Is(err, domain.ErrExtractionFailed):
		return http.StatusUnprocessableEntity, &APIError{Code: "EXTRACTION_FAILED", Message: "document text extraction failed", Details: err.Error()}
	case errors.Is(err, domain.ErrNoExtractableText):
		return http.StatusUnprocessableEntity, &APIError{Code: "NO_EXTRACTABLE_TEXT", Message: "document contains no extractable text"}
	case errors.Is(err, domain.ErrStorageNotConfigured):
		return http.StatusBadRequest, &APIError{Code: "STORAGE_NOT_CONFIGURED", Message: "object_key requires a configured document store"}
	case errors.Is(err, domain.ErrObjectNotFound):
		return http.StatusNotFound, &APIError{Code: "OBJECT_NOT_FOUND", Message: "document not found in storage"}
	case errors.Is(err, domain.ErrUnsupportedDocumentKind):
		return http.StatusBadRequest, &APIError{Code: "UNSUPPORTED_DOCUMENT_KIND", Message: "unsupported document kind; allowed: " + supportedKinds()}
	case errors.Is(err, domain.ErrInvalidCourt):
		return http.StatusBadRequest, &APIError{Code: "INVALID_COURT", Message: err.Error()}
	case errors.Is(err, domain.ErrInvalidSize):
		return http.StatusBadRequest, &APIError{Code: "INVALID_SIZE", Message: err.Error()}
	case errors.Is(err, domain.ErrInvalidStructuredPayload):
		return http.StatusBadRequest, &APIError{Code: "INVALID_STRUCTURED_PAYLOAD", Message: err.Error()}
	case errors.Is(err, domain.ErrUnsupportedExportFormat):
		return http.StatusBadRequest, &APIError{Code: "UNSUPPORTED_EXPORT_FORMAT", Message: "unsupported export format; allowed: xlsx, csv"}
	case errors.Is(err, domain.ErrGeneratorNotConfigured):
		return http.StatusServiceUnavailable, &APIError{Code: "GENERATOR_NOT_CONFIGURED", Message: "text generation provider is not configured"}
	default:
		return http.StatusInternalServerError, &APIError{Code: "INTERNAL_ERROR", Message: "an internal error occurred"}
	}
}

func supportedKinds() string {
	kinds := make([]string, len(domain.SupportedDocumentKinds))
	for i, k := range domain.SupportedDocumentKinds {
		kinds[i] = string(k)
	}
	return strings.Join(kinds, ", ")
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, apiErr := MapDomainError(err)
	if status >= 500 {
		slog.ErrorContext(c.Request.Context(), "request failed",
			"request_id", middleware.GetRequestID(c),
			"status", status,
			"error", err,
		)
	}
	c.JSON(status, APIResponse{Success: false, Error: apiErr})
}

// decodeJSON reads the request body into dst. An empty body leaves dst
// untouched so required-field checks report the missing field. With strict
// set, keys that dst does not declare are rejected.
func decodeJSON(c *gin.Context, dst interface{}, strict bool) error {
	dec := json.NewDecoder(c.Request.Body)
	if strict {
		dec.DisallowUnknownFields()
	}
	err := dec.Decode(dst)
	switch {
	case err == nil, errors.Is(err, io.EOF):
		return nil
	}

	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return domain.ErrDocumentTooLarge
	}
	// encoding/json reports unknown keys only through the message text.
	if msg := err.Error(); strings.HasPrefix(msg, "json: unknown field ") {
		field := strings.Trim(strings.TrimPrefix(msg, "json: unknown field "), `"`)
		return &domain.UnknownFieldError{Field: field}
	}
	return fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
}
