// internal/domain/models/organization.go
package models

// Category is one label from the controlled service-category vocabulary.
// The classifier in system/taxonomy maps free-text service descriptions to
// these labels; "Lainnya" is the fallback when nothing matches.
type Category string

const (
	CategoryEvakuasi    Category = "Evakuasi"
	CategoryKonseling   Category = "Konseling & Psikologis"
	CategoryHukum       Category = "Hukum / Litigasi"
	CategoryMedis       Category = "Medis"
	CategoryReintegrasi Category = "Reintegrasi & Repatriasi"
	CategoryRujukan     Category = "Rujukan & Pengaduan"
	CategoryShelter     Category = "Shelter / Rumah Aman"
	CategoryEkonomi     Category = "Pemberdayaan Ekonomi"
	CategoryPelatihan   Category = "Pelatihan & Keterampilan"
	CategorySpiritual   Category = "Pendampingan Spiritual"
	CategoryDisabilitas Category = "Disabilitas"
	CategoryLainnya     Category = "Lainnya"
)

// Source identifies which origin table produced a record. It is shown as a
// provenance badge in the UI and in exports.
type Source string

const (
	SourceJaringanFPL  Source = "Jaringan FPL"
	SourceUPTDProvinsi Source = "UPTD PPA Provinsi"
	SourceUPTDKabKota  Source = "UPTD PPA Kab/Kota"
)

// Organization is one canonical service-provider record after
// normalization. Records are built once at load time and never mutated for
// the duration of a session; corrections are advisory (see Suggestion) and
// applied out-of-band to the source files.
type Organization struct {
	Name        string
	Address     string
	Contact     string
	Email       string
	Profile     string
	ServicesRaw string // free text as it appeared in the source

	// Services holds the trimmed non-empty phrases split from ServicesRaw
	// on semicolon/newline delimiters, in source order.
	Services []string

	// Categories is the sorted union of classifier results over Services.
	// Always non-empty ("Lainnya" fallback).
	Categories []Category

	Source Source

	// Coordinates are absent for most records and only populated via an
	// approved correction.
	Lat *float64
	Lon *float64
}

// HasCategory reports whether the record carries the given tag.
func (o Organization) HasCategory(c Category) bool {
	for _, have := range o.Categories {
		if have == c {
			return true
		}
	}
	return false
}
