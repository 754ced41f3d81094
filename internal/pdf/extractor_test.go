package pdf_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jurisflow/internal/domain"
	"jurisflow/internal/pdf"
)

// buildPDF writes a single-font PDF with one page per entry in pages and a
// correct cross-reference table.
func buildPDF(pages ...string) []byte {
	var objs []string
	n := len(pages)
	// 1: catalog, 2: pages, 3: font, then page/content pairs.
	kids := ""
	for i := 0; i < n; i++ {
		kids += fmt.Sprintf("%d 0 R ", 4+i*2)
	}
	objs = append(objs,
		"<< /Type /Catalog /Pages 2 0 R >>",
		fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", kids, n),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	)
	for i, text := range pages {
		content := ""
		if text != "" {
			content = fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
		}
		objs = append(objs,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", 5+i*2),
			fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		)
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objs))
	for i, o := range objs {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, o)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objs)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objs)+1, xref)
	return buf.Bytes()
}

func TestIsPDF(t *testing.T) {
	assert.True(t, pdf.IsPDF([]byte("%PDF-1.7\n...")))
	assert.False(t, pdf.IsPDF([]byte("PK\x03\x04")))
	assert.False(t, pdf.IsPDF(nil))
}

func TestExtract_MultiPage(t *testing.T) {
	data := buildPDF("Sentenca proferida", "Recurso de apelacao")

	out, err := pdf.NewExtractor().Extract(context.Background(), data)

	require.NoError(t, err)
	assert.Equal(t, 2, out.Pages)
	assert.Contains(t, out.Text, "Sentenca")
	assert.Contains(t, out.Text, "apelacao")
	assert.Contains(t, out.Text, "\n")
}

func TestExtract_Deterministic(t *testing.T) {
	data := buildPDF("Mesmo texto")
	ex := pdf.NewExtractor()

	first, err := ex.Extract(context.Background(), data)
	require.NoError(t, err)
	second, err := ex.Extract(context.Background(), data)
	require.NoError(t, err)

	assert.Equal(t, first.Text, second.Text)
}

func TestExtract_NotPDF(t *testing.T) {
	_, err := pdf.NewExtractor().Extract(context.Background(), []byte("plain text, not a pdf"))
	assert.ErrorIs(t, err, domain.ErrUnsupportedDocument)
}

func TestExtract_Corrupt(t *testing.T) {
	_, err := pdf.NewExtractor().Extract(context.Background(), []byte("%PDF-1.4\nthis is not really a pdf"))
	assert.ErrorIs(t, err, domain.ErrExtractionFailed)
}

func TestExtract_NoText(t *testing.T) {
	_, err := pdf.NewExtractor().Extract(context.Background(), buildPDF(""))
	assert.ErrorIs(t, err, domain.ErrNoExtractableText)
}
