// internal/app/features/directory/export.go
package directory

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/fpl-indonesia/direktori/internal/app/system/csvutil"
	"github.com/fpl-indonesia/direktori/internal/app/system/query"
)

// exportHeader mirrors the source column names so a round trip through
// a spreadsheet stays recognizable to the data owners.
var exportHeader = []string{
	"Nama Organisasi",
	"Alamat Organisasi",
	"Kontak Lembaga/Layanan",
	"Email Lembaga",
	"Layanan Yang Diberikan",
	"Kategori",
	"Sumber",
}

// ServeExportCSV handles GET /export.csv. It applies the same filters
// as the list page and streams the filtered view as a CSV download.
func (h *Handler) ServeExportCSV(w http.ResponseWriter, r *http.Request) {
	res := query.Filter(h.Data.Records, filterParams(r))

	rows := make([][]string, 0, len(res.Records))
	for _, rec := range res.Records {
		cats := make([]string, len(rec.Categories))
		for i, c := range rec.Categories {
			cats[i] = string(c)
		}
		rows = append(rows, []string{
			rec.Name,
			rec.Address,
			rec.Contact,
			rec.Email,
			rec.ServicesRaw,
			strings.Join(cats, ", "),
			string(rec.Source),
		})
	}

	filename := fmt.Sprintf("direktori-layanan-%s.csv", time.Now().Format("20060102"))
	cw, err := csvutil.NewExportWriter(w, filename)
	if err != nil {
		h.Log.Error("csv export init failed", zap.Error(err))
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}
	if err := csvutil.WriteAll(cw, exportHeader, rows); err != nil {
		// Headers are already sent; nothing left to do but log.
		h.Log.Error("csv export write failed", zap.Error(err))
	}
}
