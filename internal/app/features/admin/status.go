// internal/app/features/admin/status.go
package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	uierrors "github.com/fpl-indonesia/direktori/internal/app/features/errors"
	sugstore "github.com/fpl-indonesia/direktori/internal/app/store/suggestions"
	"github.com/fpl-indonesia/direktori/internal/domain/models"
)

// HandleSetStatus handles POST /admin/usulan/{id}/status with a form
// field status=approved|rejected.
func (h *Handler) HandleSetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "Usulan tidak ditemukan.", "/admin/usulan")
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	status := models.SuggestionStatus(r.PostForm.Get("status"))
	err = h.Store.SetStatus(r.Context(), id, status)
	switch {
	case errors.Is(err, sugstore.ErrNotFound):
		uierrors.RenderNotFound(w, r, "Usulan tidak ditemukan.", "/admin/usulan")
		return
	case errors.Is(err, sugstore.ErrBadStatus):
		http.Redirect(w, r, "/admin/usulan?galat=status", http.StatusSeeOther)
		return
	case err != nil:
		h.ErrLog.LogServerError(w, r, "suggestion status update failed", err, "Gagal memperbarui status usulan.", "/admin/usulan")
		return
	}

	h.Log.Info("suggestion processed",
		zap.Int("id", id),
		zap.String("status", string(status)))
	http.Redirect(w, r, "/admin/usulan", http.StatusSeeOther)
}
