package service

import (
	"context"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/blake2b"

	"jurisflow/internal/config"
	"jurisflow/internal/domain"
	"jurisflow/internal/port"
)

const cacheKeyPrefix = "pdf_extract:"

// ExtractInput carries exactly one document source.
type ExtractInput struct {
	Content   string // base64, optionally with a data: URI prefix
	Data      []byte // raw bytes from a multipart upload
	ObjectKey string // key in the configured storage bucket
}

// ExtractionService defines the document text extraction contract.
type ExtractionService interface {
	Extract(ctx context.Context, input ExtractInput) (*domain.ExtractionResult, error)
}

type extractionService struct {
	extractor  port.TextExtractor
	cache      port.ExtractionCache
	storage    port.ObjectStorage
	cfg        *config.ExtractionConfig
	cacheCfg   *config.CacheConfig
	storageCfg *config.StorageConfig
	now        func() time.Time
}

// NewExtractionService creates a new ExtractionService. storage may be nil
// when no document store is configured.
func NewExtractionService(
	extractor port.TextExtractor,
	cache port.ExtractionCache,
	storage port.ObjectStorage,
	cfg *config.ExtractionConfig,
	cacheCfg *config.CacheConfig,
	storageCfg *config.StorageConfig,
) ExtractionService {
	return &extractionService{
		extractor:  extractor,
		cache:      cache,
		storage:    storage,
		cfg:        cfg,
		cacheCfg:   cacheCfg,
		storageCfg: storageCfg,
		now:        time.Now,
	}
}

// Fingerprint returns the hex BLAKE2b-256 digest of data.
func Fingerprint(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// CacheKey returns the extraction cache key for a fingerprint.
func CacheKey(fingerprint string) string {
	return cacheKeyPrefix + fingerprint
}

// DecodeBase64 decodes standard base64 and falls back to the URL-safe
// alphabet. A data: URI prefix and embedded whitespace are ignored.
func DecodeBase64(s string) ([]byte, error) {
	if i := strings.Index(s, ";base64,"); i >= 0 && strings.HasPrefix(s, "data:") {
		s = s[i+len(";base64,"):]
	}
	s = strings.Join(strings.Fields(s), "")

	for _, enc := range []*base64.Encoding{base64.StdEncoding, base64.URLEncoding, base64.RawStdEncoding, base64.RawURLEncoding} {
		if data, err := enc.DecodeString(s); err == nil {
			return data, nil
		}
	}
	return nil, domain.ErrInvalidBase64
}

func (s *extractionService) Extract(ctx context.Context, input ExtractInput) (*domain.ExtractionResult, error) {
	data, err := s.load(ctx, input)
	if err != nil {
		return nil, err
	}

	if int64(len(data)) > s.cfg.MaxBytes() {
		return nil, domain.ErrDocumentTooLarge
	}

	fingerprint := Fingerprint(data)
	key := CacheKey(fingerprint)

	cached, found, err := s.cache.Get(ctx, key)
	if err != nil {
		slog.WarnContext(ctx, "extractionService.Extract: cache read failed, extracting", "key", key, "error", err)
	} else if found {
		slog.DebugContext(ctx, "extractionService.Extract: cache hit", "fingerprint", fingerprint)
		cached.Cached = true
		return cached, nil
	}

	extracted, err := s.extractor.Extract(ctx, data)
	if err != nil {
		return nil, err
	}

	result := &domain.ExtractionResult{
		Text:        extracted.Text,
		Pages:       extracted.Pages,
		Fingerprint: fingerprint,
		Metadata: domain.ExtractionMetadata{
			ExtractedAt: s.now().UTC(),
			Method:      domain.ExtractionMethod,
		},
	}

	if err := s.cache.Set(ctx, key, result, s.cacheCfg.TTL); err != nil {
		slog.WarnContext(ctx, "extractionService.Extract: cache write failed", "key", key, "error", err)
	}

	slog.InfoContext(ctx, "extractionService.Extract: document extracted",
		"fingerprint", fingerprint, "pages", result.Pages, "bytes", len(data))
	return result, nil
}

// load resolves the single document source in input to raw bytes.
func (s *extractionService) load(ctx context.Context, input ExtractInput) ([]byte, error) {
	sources := 0
	for _, present := range []bool{input.Content != "", len(input.Data) > 0, input.ObjectKey != ""} {
		if present {
			sources++
		}
	}
	switch {
	case sources == 0:
		return nil, domain.NewMissingFieldError("pdf_content")
	case sources > 1:
		return nil, domain.ErrAmbiguousDocumentSource
	}

	switch {
	case input.Content != "":
		// Reject oversized payloads before allocating the decoded buffer.
		if int64(base64.StdEncoding.DecodedLen(len(input.Content))) > s.cfg.MaxBytes()+3 {
			return nil, domain.ErrDocumentTooLarge
		}
		data, err := DecodeBase64(input.Content)
		if err != nil {
			return nil, err
		}
		if len(data) == 0 {
			return nil, domain.NewMissingFieldError("pdf_content")
		}
		return data, nil

	case input.ObjectKey != "":
		if s.storage == nil || !s.storageCfg.Configured() {
			return nil, domain.ErrStorageNotConfigured
		}
		ctx, cancel := context.WithTimeout(ctx, s.storageCfg.Timeout())
		defer cancel()
		data, err := s.storage.Download(ctx, s.storageCfg.Bucket, input.ObjectKey, s.cfg.MaxBytes())
		if err != nil {
			return nil, fmt.Errorf("downloading %s: %w", input.ObjectKey, err)
		}
		return data, nil

	default:
		return input.Data, nil
	}
}
