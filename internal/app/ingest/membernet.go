// internal/app/ingest/membernet.go
package ingest

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fpl-indonesia/direktori/internal/domain/models"
	"go.uber.org/zap"
)

// Canonical member-network column headers. The contact column appears in
// exports with a line break in the middle; it is renamed on read.
const (
	colNama    = "Nama Organisasi"
	colAlamat  = "Alamat Organisasi"
	colKontak  = "Kontak Lembaga/Layanan"
	colEmail   = "Email Lembaga"
	colProfil  = "Profil Singkat"
	colLayanan = "Layanan Yang Diberikan"
)

// headerRenames maps known export-artifact header variants to their
// canonical names.
var headerRenames = map[string]string{
	"Kontak Lembaga/\nKontak Layanan": colKontak,
}

// MemberCSV normalizes the member-network table: a semicolon-separated
// CSV with a header row. This is the primary source; a read failure is
// fatal to the whole load.
type MemberCSV struct {
	Path string
	Log  *zap.Logger
}

func (s *MemberCSV) Name() string { return "jaringan FPL (csv)" }

func (s *MemberCSV) Load(ctx context.Context) ([]models.Organization, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open member csv: %w", err)
	}
	defer f.Close()

	return s.parse(f)
}

func (s *MemberCSV) parse(r io.Reader) ([]models.Organization, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := indexHeader(header)

	if _, ok := cols[colNama]; !ok {
		return nil, fmt.Errorf("member csv missing %q column", colNama)
	}

	var out []models.Organization
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", line, err)
		}

		rec := models.Organization{
			Name:        field(row, cols, colNama),
			Address:     field(row, cols, colAlamat),
			Contact:     field(row, cols, colKontak),
			Email:       field(row, cols, colEmail),
			Profile:     field(row, cols, colProfil),
			ServicesRaw: field(row, cols, colLayanan),
			Source:      models.SourceJaringanFPL,
		}
		if rec.Name == "" && rec.Address == "" && rec.ServicesRaw == "" {
			continue // trailing blank export rows
		}
		out = append(out, rec)
	}

	if s.Log != nil {
		s.Log.Info("member network table normalized", zap.Int("rows", len(out)))
	}
	return out, nil
}

// indexHeader maps canonical column names to their positions, applying
// known renames and dropping unnamed index columns (export artifacts).
func indexHeader(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF"))
		if canonical, ok := headerRenames[h]; ok {
			h = canonical
		}
		if h == "" || strings.HasPrefix(h, "Unnamed") {
			continue
		}
		cols[h] = i
	}
	return cols
}

func field(row []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok {
		return ""
	}
	return cell(row, i)
}
