// internal/app/features/admin/review.go
package admin

import (
	"net/http"

	httpquery "github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"

	"github.com/fpl-indonesia/direktori/internal/app/system/viewdata"
	"github.com/fpl-indonesia/direktori/internal/domain/models"
)

type reviewPageData struct {
	viewdata.BaseVM
	Suggestions []models.Suggestion
	Filter      string // "", "pending", "approved", "rejected"
	Pending     int
	Total       int
	StatusError bool
}

// ServeReview handles GET /admin/usulan with an optional ?status=
// filter. Without a filter every suggestion is listed, newest first.
func (h *Handler) ServeReview(w http.ResponseWriter, r *http.Request) {
	all, err := h.Store.List(r.Context())
	if err != nil {
		h.ErrLog.LogServerError(w, r, "suggestion list failed", err, "Gagal memuat daftar usulan.", "/")
		return
	}

	filter := httpquery.Search(r, "status")
	pending := 0
	shown := make([]models.Suggestion, 0, len(all))
	for _, s := range all {
		if s.Status == models.StatusPending {
			pending++
		}
		if filter == "" || string(s.Status) == filter {
			shown = append(shown, s)
		}
	}

	// Newest first for review.
	for i, j := 0, len(shown)-1; i < j; i, j = i+1, j-1 {
		shown[i], shown[j] = shown[j], shown[i]
	}

	data := reviewPageData{
		BaseVM:      viewdata.NewBaseVM(r, "Tinjau Usulan", "/"),
		Suggestions: shown,
		Filter:      filter,
		Pending:     pending,
		Total:       len(all),
		StatusError: r.URL.Query().Get("galat") == "status",
	}

	templates.Render(w, r, "admin_review", data)
}
