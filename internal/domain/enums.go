package domain

import "strings"

// DocumentKind identifies a judicial document the drafting operation can produce.
type DocumentKind string

const (
	DocumentKindRuling DocumentKind = "ruling"
	DocumentKindOrder  DocumentKind = "order"
)

// SupportedDocumentKinds lists every kind accepted by drafting.
var SupportedDocumentKinds = []DocumentKind{DocumentKindRuling, DocumentKindOrder}

// Valid reports whether k is one of the supported kinds.
func (k DocumentKind) Valid() bool {
	for _, s := range SupportedDocumentKinds {
		if k == s {
			return true
		}
	}
	return false
}

// documentKindAliases maps the Portuguese names accepted by the legacy routes.
var documentKindAliases = map[string]DocumentKind{
	"sentenca": DocumentKindRuling,
	"sentença": DocumentKindRuling,
	"despacho": DocumentKindOrder,
}

// NormalizeDocumentKind lowercases and trims raw and resolves legacy aliases.
// The result may still be invalid.
func NormalizeDocumentKind(raw string) DocumentKind {
	k := strings.ToLower(strings.TrimSpace(raw))
	if alias, ok := documentKindAliases[k]; ok {
		return alias
	}
	return DocumentKind(k)
}

// VerdictStatus tells whether the distinguish verdict was read from the narrative.
type VerdictStatus string

const (
	VerdictParsed   VerdictStatus = "parsed"
	VerdictUnparsed VerdictStatus = "unparsed"
)

// AnalysisTypeAutoDetect is the classification tag attached to FIRAC results.
const AnalysisTypeAutoDetect = "auto-detect"

// ExtractionMethod names the text extractor in result metadata.
const ExtractionMethod = "pdfcpu+ledongthuc/pdf"

// ExportFormat selects the file type produced by precedent export.
type ExportFormat string

const (
	ExportFormatXLSX ExportFormat = "xlsx"
	ExportFormatCSV  ExportFormat = "csv"
)
