// internal/app/features/directory/list.go
package directory

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"

	"github.com/fpl-indonesia/direktori/internal/app/system/query"
	"github.com/fpl-indonesia/direktori/internal/app/system/taxonomy"
	"github.com/fpl-indonesia/direktori/internal/app/system/viewdata"
	"github.com/fpl-indonesia/direktori/internal/domain/models"
)

// orgRow pairs a record with its index in the aggregate dataset so the
// table can link to the canonical detail page.
type orgRow struct {
	Index int
	Org   models.Organization
}

type listPageData struct {
	viewdata.BaseVM
	Rows       []orgRow
	Filtered   int
	Total      int
	Categories []models.Category
	Params     query.Params
	Selected   map[models.Category]bool
	ExportURL  string
}

// ServeList handles GET / with optional ?nama=, ?alamat= and repeated
// ?kategori= filters.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	params := filterParams(r)
	res := query.Filter(h.Data.Records, params)

	rows := make([]orgRow, len(res.Records))
	for i, rec := range res.Records {
		rows[i] = orgRow{Index: res.Indexes[i], Org: rec}
	}

	selected := make(map[models.Category]bool, len(params.Categories))
	for _, c := range params.Categories {
		selected[c] = true
	}

	data := listPageData{
		BaseVM:     viewdata.NewBaseVM(r, "Direktori Layanan", "/"),
		Rows:       rows,
		Filtered:   res.Filtered,
		Total:      res.Total,
		Categories: taxonomy.All(),
		Params:     params,
		Selected:   selected,
		ExportURL:  exportURL(r),
	}

	templates.Render(w, r, "directory_list", data)
}

// exportURL carries the active filter query over to the CSV download.
func exportURL(r *http.Request) string {
	if r.URL.RawQuery == "" {
		return "/export.csv"
	}
	return "/export.csv?" + r.URL.RawQuery
}
