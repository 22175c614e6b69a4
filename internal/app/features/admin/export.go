// internal/app/features/admin/export.go
package admin

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	sugstore "github.com/fpl-indonesia/direktori/internal/app/store/suggestions"
	"github.com/fpl-indonesia/direktori/internal/app/system/csvutil"
	"github.com/fpl-indonesia/direktori/internal/domain/models"
)

// ServeExportCSV handles GET /admin/usulan/export.csv and downloads
// every stored suggestion in the store's column layout.
func (h *Handler) ServeExportCSV(w http.ResponseWriter, r *http.Request) {
	all, err := h.Store.List(r.Context())
	if err != nil {
		h.Log.Error("suggestion export failed", zap.Error(err))
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}

	rows := make([][]string, 0, len(all))
	for _, s := range all {
		rows = append(rows, exportRow(s))
	}

	filename := fmt.Sprintf("usulan-perbaikan-%s.csv", time.Now().Format("20060102"))
	cw, err := csvutil.NewExportWriter(w, filename)
	if err != nil {
		h.Log.Error("csv export init failed", zap.Error(err))
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}
	if err := csvutil.WriteAll(cw, sugstore.Header, rows); err != nil {
		h.Log.Error("csv export write failed", zap.Error(err))
	}
}

func exportRow(s models.Suggestion) []string {
	coord := func(v *float64) string {
		if v == nil {
			return ""
		}
		return strconv.FormatFloat(*v, 'f', -1, 64)
	}
	processed := ""
	if s.ProcessedAt != nil {
		processed = s.ProcessedAt.UTC().Format(time.RFC3339)
	}
	return []string{
		strconv.Itoa(s.ID),
		s.CreatedAt.UTC().Format(time.RFC3339),
		s.Organization,
		s.Submitter,
		s.Contact,
		strings.Join(s.Fields, "|"),
		s.Proposal,
		coord(s.Lat),
		coord(s.Lon),
		string(s.Status),
		processed,
	}
}
