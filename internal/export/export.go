package export

import (
	"fmt"
	"io"

	"jurisflow/internal/domain"
)

// ParseFormat validates a requested export format. Empty means xlsx.
func ParseFormat(raw string) (domain.ExportFormat, error) {
	switch domain.ExportFormat(raw) {
	case "", domain.ExportFormatXLSX:
		return domain.ExportFormatXLSX, nil
	case domain.ExportFormatCSV:
		return domain.ExportFormatCSV, nil
	default:
		return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedExportFormat, raw)
	}
}

// Write renders precedents to w in the given format.
func Write(w io.Writer, format domain.ExportFormat, precedents []domain.Precedent) error {
	switch format {
	case domain.ExportFormatXLSX:
		return WriteXLSX(w, precedents)
	case domain.ExportFormatCSV:
		if _, err := w.Write(BOM); err != nil {
			return err
		}
		cw := NewCSVWriter(w)
		if err := cw.WriteHeader(); err != nil {
			return err
		}
		if err := cw.WritePrecedents(precedents); err != nil {
			return err
		}
		cw.Flush()
		return cw.Error()
	default:
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedExportFormat, format)
	}
}
