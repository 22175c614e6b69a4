package taxonomy

import (
	"reflect"
	"testing"

	"github.com/fpl-indonesia/direktori/internal/domain/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []models.Category
	}{
		{"empty input", "", []models.Category{models.CategoryLainnya}},
		{"blank input", "   ", []models.Category{models.CategoryLainnya}},
		{"no trigger", "layanan umum", []models.Category{models.CategoryLainnya}},
		{"counseling", "Konseling individu", []models.Category{models.CategoryKonseling}},
		{"legal aid", "Bantuan Hukum litigasi", []models.Category{models.CategoryHukum}},
		{"shelter", "Rumah Aman sementara", []models.Category{models.CategoryShelter}},
		{"uptd ppa counts as medical referral point", "UPTD PPA", []models.Category{models.CategoryMedis}},
		{
			"multiple categories from one phrase",
			"pendampingan psikolog dan bantuan hukum serta rujukan faskes",
			[]models.Category{models.CategoryKonseling, models.CategoryHukum, models.CategoryMedis, models.CategoryRujukan},
		},
		{
			"case insensitive",
			"EVAKUASI KORBAN",
			[]models.Category{models.CategoryEvakuasi},
		},
		{
			// Substring containment is intentional: triggers match inside
			// longer compound words.
			"trigger inside compound word",
			"pendekatan sosioekonomi",
			[]models.Category{models.CategoryEkonomi},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Classify(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestClassify_NeverEmpty(t *testing.T) {
	inputs := []string{"", " ", "xyz", "konseling", "a;b;c"}
	for _, in := range inputs {
		if got := Classify(in); len(got) == 0 {
			t.Errorf("Classify(%q) returned empty set", in)
		}
	}
}

func TestClassifyServices(t *testing.T) {
	tests := []struct {
		name    string
		phrases []string
		want    []models.Category
	}{
		{"nil phrases", nil, []models.Category{models.CategoryLainnya}},
		{"empty phrases", []string{}, []models.Category{models.CategoryLainnya}},
		{
			"union across phrases, sorted",
			[]string{"Konseling", "Bantuan Hukum"},
			[]models.Category{models.CategoryHukum, models.CategoryKonseling},
		},
		{
			"duplicate categories collapse",
			[]string{"konseling trauma", "dukungan sebaya"},
			[]models.Category{models.CategoryKonseling},
		},
		{
			"unmatched phrase contributes fallback",
			[]string{"layanan lain"},
			[]models.Category{models.CategoryLainnya},
		},
		{
			"fallback mixes in when one phrase is unmatched",
			[]string{"layanan lain", "shelter"},
			[]models.Category{models.CategoryLainnya, models.CategoryShelter},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyServices(tt.phrases)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ClassifyServices(%v) = %v, want %v", tt.phrases, got, tt.want)
			}
		})
	}
}

func TestAll_EndsWithFallback(t *testing.T) {
	all := All()
	if len(all) == 0 {
		t.Fatal("All() returned no categories")
	}
	if all[len(all)-1] != models.CategoryLainnya {
		t.Errorf("All() last = %v, want %v", all[len(all)-1], models.CategoryLainnya)
	}
}
