// Package csvutil provides helpers for writing CSV exports.
//
// Exports are consumed by spreadsheet tools, so writers emit a UTF-8 BOM,
// CRLF line endings, and guard text cells against formula injection.
package csvutil

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// BOM is the UTF-8 byte order mark Excel needs to detect the encoding.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// SanitizeField neutralizes spreadsheet formula injection by prefixing
// cells that would otherwise be interpreted as formulas.
func SanitizeField(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@':
		return "'" + s
	}
	return s
}

// NewExportWriter writes the attachment headers and BOM for a CSV download
// response and returns a CRLF csv.Writer. The caller must Flush.
func NewExportWriter(w http.ResponseWriter, filename string) (*csv.Writer, error) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, url.PathEscape(filename)))

	if _, err := w.Write(BOM); err != nil {
		return nil, fmt.Errorf("write BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	return cw, nil
}

// WriteAll writes a header row followed by data rows, sanitizing every
// data cell. It flushes the writer and returns the first error seen.
func WriteAll(cw *csv.Writer, header []string, rows [][]string) error {
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range rows {
		clean := make([]string, len(row))
		for j, cell := range row {
			clean[j] = SanitizeField(cell)
		}
		if err := cw.Write(clean); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteAllTo is WriteAll against an arbitrary io.Writer, without the HTTP
// headers. Used by tests and non-HTTP export paths.
func WriteAllTo(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	return WriteAll(cw, header, rows)
}
