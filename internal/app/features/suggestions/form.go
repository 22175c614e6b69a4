// internal/app/features/suggestions/form.go
package suggestions

import (
	"net/http"

	httpquery "github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"

	"github.com/fpl-indonesia/direktori/internal/app/system/viewdata"
)

type formPageData struct {
	viewdata.BaseVM
	OrgNames     []string
	FieldOptions []string
	Organization string // pre-filled from ?organisasi=
	Submitted    bool
	ErrorMsg     string
}

// formError maps the ?galat= code set by ServeSubmit to a user message.
func formError(code string) string {
	switch code {
	case "kosong":
		return "Usulan belum berisi apa-apa: isi teks usulan atau koordinat."
	case "koordinat":
		return "Koordinat harus berupa angka desimal, misalnya -6.2088."
	case "simpan":
		return "Usulan gagal disimpan. Silakan coba lagi."
	default:
		return ""
	}
}

// ServeForm handles GET /usulan.
func (h *Handler) ServeForm(w http.ResponseWriter, r *http.Request) {
	names := make([]string, 0, len(h.Data.Records))
	for _, rec := range h.Data.Records {
		names = append(names, rec.Name)
	}

	data := formPageData{
		BaseVM:       viewdata.NewBaseVM(r, "Usulkan Perbaikan", "/"),
		OrgNames:     names,
		FieldOptions: fieldOptions,
		Organization: httpquery.Search(r, "organisasi"),
		Submitted:    r.URL.Query().Get("terkirim") == "1",
		ErrorMsg:     formError(r.URL.Query().Get("galat")),
	}

	templates.Render(w, r, "suggestion_form", data)
}
