package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"jurisflow/internal/domain"
)

func samplePrecedents() []domain.Precedent {
	score := 2.5
	return []domain.Precedent{
		{
			ID:              "A1",
			Index:           "api_publica_tjsp",
			Score:           &score,
			CaseNumber:      "0001234-56.2023.8.26.0100",
			ClassCode:       "1116",
			ClassName:       "Execução Fiscal",
			JudgingBodyCode: "5349",
			JudgingBody:     "Vara 1",
			FiledAt:         "2023-01-10",
			UpdatedAt:       "2024-05-01",
		},
		{ID: "A2", Index: "api_publica_tjsp"},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, domain.ExportFormatCSV, samplePrecedents()))

	raw := buf.Bytes()
	require.True(t, bytes.HasPrefix(raw, BOM))

	rows, err := csv.NewReader(bytes.NewReader(raw[len(BOM):])).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, columns, rows[0])
	assert.Equal(t, "A1", rows[1][0])
	assert.Equal(t, "2.5", rows[1][2])
	assert.Equal(t, "Execução Fiscal", rows[1][5])
	assert.Equal(t, "", rows[2][2])
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, domain.ExportFormatXLSX, samplePrecedents()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Case Number", rows[0][3])
	assert.Equal(t, "0001234-56.2023.8.26.0100", rows[1][3])
	assert.Equal(t, "A2", rows[2][0])
}

func TestWrite_UnsupportedFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, domain.ExportFormat("pdf"), nil)
	assert.ErrorIs(t, err, domain.ErrUnsupportedExportFormat)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, domain.ExportFormatXLSX, f)

	f, err = ParseFormat("csv")
	require.NoError(t, err)
	assert.Equal(t, domain.ExportFormatCSV, f)

	_, err = ParseFormat("ods")
	assert.ErrorIs(t, err, domain.ErrUnsupportedExportFormat)
}

func TestBuildFilename(t *testing.T) {
	now := time.Date(2024, 3, 9, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "precedents_tjsp_2024-03-09.xlsx", BuildFilename("tjsp", domain.ExportFormatXLSX, now))
	assert.Equal(t, "precedents_tj_sp_2024-03-09.csv", BuildFilename("tj sp!", domain.ExportFormatCSV, now))
}

func TestContentType(t *testing.T) {
	assert.Contains(t, ContentType(domain.ExportFormatCSV), "text/csv")
	assert.Contains(t, ContentType(domain.ExportFormatXLSX), "spreadsheetml")
}
