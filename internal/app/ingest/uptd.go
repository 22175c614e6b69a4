// internal/app/ingest/uptd.go
//
// Normalizers for the DP3A authority workbook. The workbook carries two
// fixed-layout sheets, one for provincial UPTD PPA offices and one for
// district/city offices. Both use a multi-row header block and positional
// columns rather than named headers, so the mapping here is by zero-based
// column index.
package ingest

import (
	"context"
	"fmt"
	"strings"

	"github.com/fpl-indonesia/direktori/internal/domain/models"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const (
	// SheetProvinsi and SheetKabKota are the expected sheet names in the
	// authority workbook.
	SheetProvinsi = "UPTD PPA Provinsi"
	SheetKabKota  = "UPTD PPA KabKota"

	// headerRows is the size of the decorative header block on both
	// sheets.
	headerRows = 3

	// provinsiPrefix is the literal prefix on every jurisdiction cell of
	// the provincial sheet.
	provinsiPrefix = "PROVINSI"

	// kabKotaArtifact is a header fragment that leaks into the data area
	// of the district sheet in some workbook revisions.
	kabKotaArtifact = "KABUPATEN/KOTA"
)

// uptdServices is the canned services string for government units; every
// UPTD PPA provides the same standard service set, which the source
// workbook does not spell out per row.
const uptdServices = "Pengaduan;Penjemputan korban;Konseling;Rujukan faskes;Bantuan hukum"

// UPTDProvinsi normalizes the provincial-authority sheet.
// Columns (zero-based): 1 jurisdiction, 2 address, 3 office phone,
// 4 hotline.
type UPTDProvinsi struct {
	Path string
	Log  *zap.Logger
}

func (s *UPTDProvinsi) Name() string { return "UPTD PPA provinsi (xlsx)" }

func (s *UPTDProvinsi) Load(ctx context.Context) ([]models.Organization, error) {
	rows, err := sheetRows(s.Path, SheetProvinsi)
	if err != nil {
		return nil, err
	}

	var out []models.Organization
	for _, row := range dataRows(rows) {
		raw := cell(row, 1)
		if blankCell(raw) {
			continue
		}
		name := titleCase(strings.TrimSpace(strings.TrimPrefix(strings.ToUpper(raw), provinsiPrefix)))

		out = append(out, models.Organization{
			Name:        "UPTD PPA Provinsi " + name,
			Address:     cell(row, 2),
			Contact:     firstNonBlank(cell(row, 4), cell(row, 3)),
			ServicesRaw: uptdServices,
			Source:      models.SourceUPTDProvinsi,
		})
	}

	if s.Log != nil {
		s.Log.Info("provincial authority table normalized", zap.Int("rows", len(out)))
	}
	return out, nil
}

// UPTDKabKota normalizes the district/city-authority sheet.
// Columns (zero-based): 1 province, 2 district/city, 3 address, 4 phone,
// 5 hotline.
type UPTDKabKota struct {
	Path string
	Log  *zap.Logger
}

func (s *UPTDKabKota) Name() string { return "UPTD PPA kab/kota (xlsx)" }

func (s *UPTDKabKota) Load(ctx context.Context) ([]models.Organization, error) {
	rows, err := sheetRows(s.Path, SheetKabKota)
	if err != nil {
		return nil, err
	}

	var out []models.Organization
	for _, row := range dataRows(rows) {
		kabKota := cell(row, 2)
		if blankCell(kabKota) || strings.EqualFold(kabKota, kabKotaArtifact) {
			continue
		}
		province := titleCase(strings.TrimSpace(strings.TrimPrefix(strings.ToUpper(cell(row, 1)), provinsiPrefix)))

		name := "UPTD PPA " + titleCase(kabKota)
		if province != "" {
			name += " (" + province + ")"
		}

		out = append(out, models.Organization{
			Name:        name,
			Address:     cell(row, 3),
			Contact:     firstNonBlank(cell(row, 5), cell(row, 4)),
			ServicesRaw: uptdServices,
			Source:      models.SourceUPTDKabKota,
		})
	}

	if s.Log != nil {
		s.Log.Info("district/city authority table normalized", zap.Int("rows", len(out)))
	}
	return out, nil
}

// sheetRows opens the workbook and returns the named sheet's rows. When
// the exact name is absent it falls back to a suffix match so renamed
// workbook revisions ("Data UPTD PPA Provinsi") still load.
func sheetRows(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	name := sheet
	if idx, _ := f.GetSheetIndex(name); idx < 0 {
		name = ""
		for _, candidate := range f.GetSheetList() {
			if strings.HasSuffix(strings.ToLower(candidate), strings.ToLower(sheet)) {
				name = candidate
				break
			}
		}
		if name == "" {
			return nil, fmt.Errorf("workbook has no sheet %q", sheet)
		}
	}

	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", name, err)
	}
	return rows, nil
}

// dataRows skips the fixed header block.
func dataRows(rows [][]string) [][]string {
	if len(rows) <= headerRows {
		return nil
	}
	return rows[headerRows:]
}
