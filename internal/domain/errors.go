package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRequest           = errors.New("invalid request body")
	ErrInvalidBase64            = errors.New("document content is not valid base64")
	ErrDocumentTooLarge         = errors.New("document exceeds maximum allowed size")
	ErrUnsupportedDocument      = errors.New("unsupported document format")
	ErrExtractionFailed         = errors.New("document text extraction failed")
	ErrNoExtractableText        = errors.New("document contains no extractable text")
	ErrStorageNotConfigured     = errors.New("document storage is not configured")
	ErrObjectNotFound           = errors.New("document not found in storage")
	ErrUnsupportedDocumentKind  = errors.New("unsupported document kind")
	ErrInvalidCourt             = errors.New("invalid court identifier")
	ErrInvalidSize              = errors.New("invalid page size")
	ErrGeneratorNotConfigured   = errors.New("text generation provider is not configured")
	ErrUnsupportedExportFormat  = errors.New("unsupported export format")
	ErrEmptyGeneration          = errors.New("text generation returned no content")
	ErrAmbiguousDocumentSource  = errors.New("exactly one document source is allowed")
	ErrInvalidStructuredPayload = errors.New("payload must be a JSON object")
)

// FieldError reports a missing or malformed required request field.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	if e.Reason == "" {
		return e.Field + " is required"
	}
	return e.Field + " " + e.Reason
}

// NewMissingFieldError creates a FieldError for an absent required field.
func NewMissingFieldError(field string) *FieldError {
	return &FieldError{Field: field}
}

// UnknownFieldError reports a request key the operation does not recognize.
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field %q", e.Field)
}

// UpstreamError wraps a failure from an external dependency. StatusCode and
// Body are set when the dependency answered with a non-success status.
type UpstreamError struct {
	Service    string
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s error (status %d): %v", e.Service, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s error: %v", e.Service, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// NewUpstreamError wraps err as a failure of the named external service.
func NewUpstreamError(service string, err error) *UpstreamError {
	return &UpstreamError{Service: service, Err: err}
}

// NewUpstreamStatusError records a non-success HTTP answer from an external service.
func NewUpstreamStatusError(service string, status int, body string) *UpstreamError {
	return &UpstreamError{
		Service:    service,
		StatusCode: status,
		Body:       body,
		Err:        fmt.Errorf("unexpected status %d", status),
	}
}
