package pdf

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"jurisflow/internal/domain"
	"jurisflow/internal/port"
)

var magic = []byte("%PDF-")

// Extractor implements port.TextExtractor for PDF documents. pdfcpu validates
// the file and counts pages; ledongthuc/pdf reads the text layer.
type Extractor struct {
	conf *model.Configuration
}

// NewExtractor creates an Extractor with relaxed validation, which accepts
// the slightly malformed files scanners and court systems tend to emit.
func NewExtractor() *Extractor {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &Extractor{conf: conf}
}

// IsPDF reports whether data starts with the PDF header.
func IsPDF(data []byte) bool {
	return bytes.HasPrefix(data, magic)
}

// Extract returns the text of every page joined by newlines. Either the
// whole document is read or an error is returned.
func (e *Extractor) Extract(ctx context.Context, data []byte) (out *port.ExtractedText, err error) {
	if !IsPDF(data) {
		return nil, domain.ErrUnsupportedDocument
	}

	// Both parsers panic on some corrupt inputs.
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = fmt.Errorf("%w: parser panic: %v", domain.ErrExtractionFailed, r)
		}
	}()

	pages, err := api.PageCount(bytes.NewReader(data), e.conf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err)
	}

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err)
	}

	texts := make([]string, 0, r.NumPage())
	for i := 1; i <= r.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p := r.Page(i)
		if p.V.IsNull() {
			texts = append(texts, "")
			continue
		}
		t, err := p.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("%w: page %d: %v", domain.ErrExtractionFailed, i, err)
		}
		texts = append(texts, t)
	}

	text := strings.Join(texts, "\n")
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrNoExtractableText
	}
	return &port.ExtractedText{Text: text, Pages: pages}, nil
}
