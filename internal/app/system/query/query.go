// Package query filters the in-memory directory record set.
//
// Filtering never mutates the source slice; it produces a new ordered view
// preserving the original relative order. Pagination and sorting are
// display-layer concerns and do not live here.
package query

import (
	"strings"

	"github.com/fpl-indonesia/direktori/internal/domain/models"
)

// Params holds the user-supplied filter constraints. Blank fields mean no
// constraint; all present constraints combine with AND.
type Params struct {
	Name       string // case-insensitive substring on organization name
	Address    string // case-insensitive substring on address
	Categories []models.Category
}

// IsZero reports whether no constraint is set.
func (p Params) IsZero() bool {
	return strings.TrimSpace(p.Name) == "" &&
		strings.TrimSpace(p.Address) == "" &&
		len(p.Categories) == 0
}

// Result is a filtered view over the record set with its counts.
// Indexes holds, for each entry of Records, its position in the source
// slice, so callers can link back to the canonical record.
type Result struct {
	Records  []models.Organization
	Indexes  []int
	Filtered int
	Total    int
}

// Filter applies the constraints in params over records.
func Filter(records []models.Organization, params Params) Result {
	name := strings.ToLower(strings.TrimSpace(params.Name))
	addr := strings.ToLower(strings.TrimSpace(params.Address))

	out := make([]models.Organization, 0, len(records))
	idx := make([]int, 0, len(records))
	for i, rec := range records {
		if name != "" && !strings.Contains(strings.ToLower(rec.Name), name) {
			continue
		}
		if addr != "" && !strings.Contains(strings.ToLower(rec.Address), addr) {
			continue
		}
		if len(params.Categories) > 0 && !matchesAny(rec, params.Categories) {
			continue
		}
		out = append(out, rec)
		idx = append(idx, i)
	}

	return Result{Records: out, Indexes: idx, Filtered: len(out), Total: len(records)}
}

// matchesAny implements OR semantics over the selected categories: the
// record passes when its tags intersect the selection.
func matchesAny(rec models.Organization, selected []models.Category) bool {
	for _, c := range selected {
		if rec.HasCategory(c) {
			return true
		}
	}
	return false
}
