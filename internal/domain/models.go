package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// ExtractionMetadata describes how and when text was extracted.
type ExtractionMetadata struct {
	ExtractedAt time.Time `json:"extracted_at"`
	Method      string    `json:"method"`
}

// ExtractionResult is the plain text of a document.
type ExtractionResult struct {
	Text        string             `json:"text"`
	Pages       int                `json:"pages"`
	Fingerprint string             `json:"fingerprint"`
	Cached      bool               `json:"cached"`
	Metadata    ExtractionMetadata `json:"metadata"`
}

// AnalysisResult is a FIRAC analysis of a legal text.
type AnalysisResult struct {
	FIRACAnalysis string          `json:"firac_analysis"`
	Structured    json.RawMessage `json:"structured,omitempty"`
	AnalysisType  string          `json:"analysis_type"`
	Truncated     bool            `json:"truncated"`
	Model         string          `json:"model"`
	Timestamp     time.Time       `json:"timestamp"`
}

// Code is a DataJud catalogue code. It accepts JSON numbers and strings.
type Code string

func (c *Code) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = Code(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("code must be a number or string: %w", err)
	}
	*c = Code(n.String())
	return nil
}

// Query returns the value sent in a match clause. Canonical integers go out
// as numbers; anything else, including zero-padded codes, stays a string.
func (c Code) Query() interface{} {
	n, err := strconv.ParseInt(string(c), 10, 64)
	if err != nil || strconv.FormatInt(n, 10) != string(c) {
		return string(c)
	}
	return n
}

// PrecedentQuery holds the filters of a precedent search. Nil filters are absent.
type PrecedentQuery struct {
	Court           string
	ClassCode       *Code
	JudgingBodyCode *Code
	Keywords        *string
	Size            int
}

// Precedent is one decided case returned by the search API.
type Precedent struct {
	ID              string          `json:"id"`
	Index           string          `json:"index"`
	Score           *float64        `json:"score"`
	CaseNumber      string          `json:"case_number,omitempty"`
	ClassCode       string          `json:"class_code,omitempty"`
	ClassName       string          `json:"class_name,omitempty"`
	JudgingBodyCode string          `json:"judging_body_code,omitempty"`
	JudgingBody     string          `json:"judging_body,omitempty"`
	FiledAt         string          `json:"filed_at,omitempty"`
	UpdatedAt       string          `json:"updated_at,omitempty"`
	Source          json.RawMessage `json:"source"`
}

// PrecedentResult is a ranked page of precedents, newest first.
type PrecedentResult struct {
	Court      string      `json:"court"`
	Total      int         `json:"total"`
	Precedents []Precedent `json:"precedents"`
}

// DistinguishResult is an applicability judgment of one precedent against new facts.
// Applicable and Confidence are nil when the narrative carried no readable verdict.
type DistinguishResult struct {
	DistinguishAnalysis string        `json:"distinguish_analysis"`
	Applicable          *bool         `json:"applicable"`
	Confidence          *float64      `json:"confidence"`
	VerdictStatus       VerdictStatus `json:"verdict_status"`
	Model               string        `json:"model"`
	Timestamp           time.Time     `json:"timestamp"`
}

// DraftResult is a generated judicial document.
type DraftResult struct {
	DocumentType  DocumentKind `json:"document_type"`
	GeneratedText string       `json:"generated_text"`
	Model         string       `json:"model"`
	Timestamp     time.Time    `json:"timestamp"`
}

// HealthStatus reports process liveness and per-dependency readiness.
type HealthStatus struct {
	Status    string          `json:"status"`
	Timestamp time.Time       `json:"timestamp"`
	Services  map[string]bool `json:"services"`
}
