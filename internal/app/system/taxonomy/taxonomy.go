// Package taxonomy maps free-text service descriptions to the controlled
// set of category labels used throughout the directory.
//
// Matching is deliberately simple: a fixed ordered table of
// (category, trigger substrings) pairs is evaluated against the
// lower-cased input, and every category whose trigger occurs anywhere in
// the text is included. Triggers are plain substrings, not tokens, so a
// short trigger can match inside a longer compound word; this mirrors how
// the source data has always been tagged and is kept as-is.
package taxonomy

import (
	"sort"
	"strings"

	"github.com/fpl-indonesia/direktori/internal/domain/models"
)

// rule pairs a category with the substrings that trigger it.
type rule struct {
	category models.Category
	triggers []string
}

// rules is evaluated in order; order only affects All(), not results,
// since every matching category is included.
var rules = []rule{
	{models.CategoryEvakuasi, []string{"evakuasi"}},
	{models.CategoryKonseling, []string{"konseling", "psikolog", "support group", "trauma", "dukungan sebaya"}},
	{models.CategoryHukum, []string{"hukum", "litigasi", "non litigasi", "bantuan hukum"}},
	{models.CategoryMedis, []string{"medis", "faskes", "dokter", "uptd ppa"}},
	{models.CategoryReintegrasi, []string{"reintegrasi", "penjemputan", "jenasah", "jenazah"}},
	{models.CategoryRujukan, []string{"rujuk", "rujukan", "pengaduan"}},
	{models.CategoryShelter, []string{"rumah aman", "shelter"}},
	{models.CategoryEkonomi, []string{"ekonomi"}},
	{models.CategoryPelatihan, []string{"pelatihan", "keterampilan", "training"}},
	{models.CategorySpiritual, []string{"spiritu"}},
	{models.CategoryDisabilitas, []string{"disabilitas", "jbi"}},
}

// All returns every assignable category in rule-table order, with the
// fallback category last.
func All() []models.Category {
	out := make([]models.Category, 0, len(rules)+1)
	for _, r := range rules {
		out = append(out, r.category)
	}
	return append(out, models.CategoryLainnya)
}

// Classify returns the categories whose triggers occur in text. The result
// is never empty: when nothing matches (including blank input) it is
// exactly [Lainnya].
func Classify(text string) []models.Category {
	low := strings.ToLower(text)

	var cats []models.Category
	for _, r := range rules {
		for _, trig := range r.triggers {
			if strings.Contains(low, trig) {
				cats = append(cats, r.category)
				break
			}
		}
	}
	if len(cats) == 0 {
		return []models.Category{models.CategoryLainnya}
	}
	return cats
}

// ClassifyServices classifies every phrase and returns the union of the
// results, sorted for deterministic display order. An empty phrase list
// yields [Lainnya].
func ClassifyServices(phrases []string) []models.Category {
	seen := make(map[models.Category]struct{})
	for _, p := range phrases {
		for _, c := range Classify(p) {
			seen[c] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return []models.Category{models.CategoryLainnya}
	}

	out := make([]models.Category, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
