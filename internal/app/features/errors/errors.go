// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/fpl-indonesia/direktori/internal/app/system/viewdata"
)

// pageData is the basic view model for error pages.
type pageData struct {
	viewdata.BaseVM
	Message string
}

// RenderNotFound renders a friendly "not found" page.
// If backURL is empty, it resolves a safe back URL with "/" as fallback.
func RenderNotFound(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if msg == "" {
		msg = "Halaman yang Anda cari tidak ditemukan."
	}

	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Tidak ditemukan", fallback(backURL)),
		Message: msg,
	}

	w.WriteHeader(http.StatusNotFound)
	templates.Render(w, r, "error_page", data)
}

// RenderServerError renders a generic failure page with a 500 status.
func RenderServerError(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if msg == "" {
		msg = "Terjadi kesalahan pada server. Silakan coba lagi."
	}

	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Terjadi kesalahan", fallback(backURL)),
		Message: msg,
	}

	w.WriteHeader(http.StatusInternalServerError)
	templates.Render(w, r, "error_page", data)
}

func fallback(backURL string) string {
	if backURL == "" {
		return "/"
	}
	return backURL
}
