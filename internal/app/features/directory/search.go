// internal/app/features/directory/search.go
package directory

import (
	"net/http"

	httpquery "github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"

	"github.com/fpl-indonesia/direktori/internal/app/system/search"
	"github.com/fpl-indonesia/direktori/internal/app/system/viewdata"
)

type searchPageData struct {
	viewdata.BaseVM
	Query   string
	Matches []search.Match
	Limit   int
}

// ServeSearch handles GET /cari with an optional ?q= keyword query.
// A blank query renders the empty search page.
func (h *Handler) ServeSearch(w http.ResponseWriter, r *http.Request) {
	q := httpquery.Search(r, "q")

	var matches []search.Match
	if q != "" {
		matches = search.Rank(h.Data.Records, q, search.DefaultLimit)
	}

	data := searchPageData{
		BaseVM:  viewdata.NewBaseVM(r, "Cari Layanan", "/"),
		Query:   q,
		Matches: matches,
		Limit:   search.DefaultLimit,
	}

	templates.Render(w, r, "directory_search", data)
}
