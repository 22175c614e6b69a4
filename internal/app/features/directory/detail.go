// internal/app/features/directory/detail.go
package directory

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"

	uierrors "github.com/fpl-indonesia/direktori/internal/app/features/errors"
	"github.com/fpl-indonesia/direktori/internal/app/system/viewdata"
	"github.com/fpl-indonesia/direktori/internal/domain/models"
)

type detailPageData struct {
	viewdata.BaseVM
	Index int
	Org   models.Organization
}

// ServeDetail handles GET /organisasi/{index}, where index is the
// record's position in the aggregate dataset.
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	idx, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || idx < 0 || idx >= len(h.Data.Records) {
		uierrors.RenderNotFound(w, r, "Organisasi tidak ditemukan.", "/")
		return
	}

	org := h.Data.Records[idx]
	data := detailPageData{
		BaseVM: viewdata.NewBaseVM(r, org.Name, "/"),
		Index:  idx,
		Org:    org,
	}

	templates.Render(w, r, "directory_detail", data)
}
