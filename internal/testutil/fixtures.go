// internal/testutil/fixtures.go
package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/fpl-indonesia/direktori/internal/app/ingest"
	"github.com/fpl-indonesia/direktori/internal/domain/models"
)

// SampleOrgs returns a small, stable record set covering every source
// and several category combinations.
func SampleOrgs() []models.Organization {
	return []models.Organization{
		{
			Name:        "Yayasan Pulih",
			Address:     "Jakarta Selatan, DKI Jakarta",
			Contact:     "021-7888-0000",
			Email:       "info@pulih.or.id",
			ServicesRaw: "Konseling trauma;Pendampingan psikologis",
			Services:    []string{"Konseling trauma", "Pendampingan psikologis"},
			Categories:  []models.Category{models.CategoryKonseling},
			Source:      models.SourceJaringanFPL,
		},
		{
			Name:        "LBH APIK Jakarta",
			Address:     "Jakarta Timur, DKI Jakarta",
			Contact:     "021-8779-7289",
			ServicesRaw: "Bantuan hukum;Pendampingan litigasi",
			Services:    []string{"Bantuan hukum", "Pendampingan litigasi"},
			Categories:  []models.Category{models.CategoryHukum},
			Source:      models.SourceJaringanFPL,
		},
		{
			Name:        "UPTD PPA Jawa Timur",
			Address:     "Surabaya, Jawa Timur",
			Contact:     "031-555-0123",
			ServicesRaw: "Pengaduan;Konseling;Rujukan faskes",
			Services:    []string{"Pengaduan", "Konseling", "Rujukan faskes"},
			Categories:  []models.Category{models.CategoryKonseling, models.CategoryRujukan},
			Source:      models.SourceUPTDProvinsi,
		},
	}
}

// SampleDataset wraps SampleOrgs in a loaded Dataset the way startup
// would produce it.
func SampleDataset() *ingest.Dataset {
	recs := SampleOrgs()
	return &ingest.Dataset{
		SnapshotID: uuid.New(),
		LoadedAt:   time.Now().UTC(),
		Records:    recs,
		SourceCount: map[models.Source]int{
			models.SourceJaringanFPL:  2,
			models.SourceUPTDProvinsi: 1,
		},
	}
}
