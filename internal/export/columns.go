package export

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"jurisflow/internal/domain"
)

// columns defines the header row shared by every export format.
var columns = []string{
	"ID",
	"Index",
	"Score",
	"Case Number",
	"Class Code",
	"Class Name",
	"Judging Body Code",
	"Judging Body",
	"Filed At",
	"Updated At",
}

// precedentToRow converts a precedent to a row aligned with columns.
func precedentToRow(p *domain.Precedent) []string {
	return []string{
		p.ID,
		p.Index,
		formatScore(p.Score),
		p.CaseNumber,
		p.ClassCode,
		p.ClassName,
		p.JudgingBodyCode,
		p.JudgingBody,
		p.FiledAt,
		p.UpdatedAt,
	}
}

func formatScore(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename replaces non-alphanumeric chars (except - _) with _,
// collapses consecutive underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a Content-Disposition filename.
// Format: precedents_{court}_{YYYY-MM-DD}.{ext}
func BuildFilename(court string, format domain.ExportFormat, now time.Time) string {
	return fmt.Sprintf("precedents_%s_%s.%s", SanitizeFilename(court), now.Format("2006-01-02"), format)
}

// ContentType returns the MIME type for format.
func ContentType(format domain.ExportFormat) string {
	switch format {
	case domain.ExportFormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case domain.ExportFormatCSV:
		return "text/csv; charset=utf-8"
	default:
		return "application/octet-stream"
	}
}
