package ingest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/fpl-indonesia/direktori/internal/domain/models"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook builds a minimal authority workbook in the published
// layout: three decorative header rows, then positional data columns.
func writeWorkbook(t *testing.T, provinsiRows, kabKotaRows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetProvinsi); err != nil {
		t.Fatalf("SetSheetName: %v", err)
	}
	if _, err := f.NewSheet(SheetKabKota); err != nil {
		t.Fatalf("NewSheet: %v", err)
	}

	writeSheet := func(sheet string, rows [][]interface{}) {
		_ = f.SetCellValue(sheet, "A1", "DATA UPTD PPA")
		_ = f.SetCellValue(sheet, "A2", "Direktorat PPA")
		_ = f.SetCellValue(sheet, "A3", "No")
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, headerRows+1+i)
			if err != nil {
				t.Fatalf("CoordinatesToCellName: %v", err)
			}
			if err := f.SetSheetRow(sheet, cell, &row); err != nil {
				t.Fatalf("SetSheetRow: %v", err)
			}
		}
	}
	writeSheet(SheetProvinsi, provinsiRows)
	writeSheet(SheetKabKota, kabKotaRows)

	path := filepath.Join(t.TempDir(), "uptd.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	return path
}

func TestUPTDProvinsi_Load(t *testing.T) {
	path := writeWorkbook(t,
		[][]interface{}{
			{1, "PROVINSI JAWA TIMUR", "Jl. Pahlawan 110, Surabaya", "031-3524215", "129"},
			{2, "PROVINSI DKI JAKARTA", "Jl. Medan Merdeka Selatan", "021-3822000", 0},
			{3, "", "alamat tanpa provinsi", "000", ""},
		},
		nil,
	)

	src := &UPTDProvinsi{Path: path}
	got, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("Load() returned %d rows, want 2 (blank jurisdiction dropped)", len(got))
	}

	first := got[0]
	if first.Name != "UPTD PPA Provinsi Jawa Timur" {
		t.Errorf("row 0 Name = %q", first.Name)
	}
	if first.Contact != "129" {
		t.Errorf("row 0 Contact = %q, want hotline preferred over office phone", first.Contact)
	}
	if first.Source != models.SourceUPTDProvinsi {
		t.Errorf("row 0 Source = %q", first.Source)
	}
	if first.ServicesRaw == "" {
		t.Error("row 0 ServicesRaw empty, want canned UPTD services")
	}

	// A literal 0 hotline is treated as blank; the office phone wins.
	if got[1].Contact != "021-3822000" {
		t.Errorf("row 1 Contact = %q, want office phone fallback", got[1].Contact)
	}
}

func TestUPTDKabKota_Load(t *testing.T) {
	path := writeWorkbook(t,
		nil,
		[][]interface{}{
			{1, "PROVINSI JAWA TENGAH", "KABUPATEN/KOTA", "", "", ""},
			{2, "PROVINSI JAWA TENGAH", "KOTA SEMARANG", "Jl. Prof. Sudarto 116", "024-7477957", "0"},
			{3, "PROVINSI JAWA TENGAH", "", "alamat tanpa kabkota", "", ""},
		},
	)

	src := &UPTDKabKota{Path: path}
	got, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("Load() returned %d rows, want 1 (artifact and blank rows dropped)", len(got))
	}

	rec := got[0]
	if rec.Name != "UPTD PPA Kota Semarang (Jawa Tengah)" {
		t.Errorf("Name = %q", rec.Name)
	}
	if rec.Contact != "024-7477957" {
		t.Errorf("Contact = %q, want phone (hotline is literal 0)", rec.Contact)
	}
	if rec.Source != models.SourceUPTDKabKota {
		t.Errorf("Source = %q", rec.Source)
	}
}

func TestSheetRows_SuffixMatch(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", "Data UPTD PPA Provinsi"); err != nil {
		t.Fatalf("SetSheetName: %v", err)
	}
	path := filepath.Join(t.TempDir(), "renamed.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}

	if _, err := sheetRows(path, SheetProvinsi); err != nil {
		t.Errorf("sheetRows() with renamed sheet error = %v, want suffix match", err)
	}
}

func TestUPTD_MissingWorkbook(t *testing.T) {
	src := &UPTDProvinsi{Path: filepath.Join(t.TempDir(), "missing.xlsx")}
	if _, err := src.Load(context.Background()); err == nil {
		t.Fatal("expected error for missing workbook")
	}
}

func TestUPTD_MissingSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	path := filepath.Join(t.TempDir(), "wrong.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}

	src := &UPTDKabKota{Path: path}
	if _, err := src.Load(context.Background()); err == nil {
		t.Fatal("expected error for workbook without the expected sheet")
	}
}
