// internal/app/features/admin/routes.go
package admin

import (
	"github.com/go-chi/chi/v5"

	"github.com/fpl-indonesia/direktori/internal/app/system/auth"
)

// Routes returns the admin router, mounted at "/admin" from bootstrap.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/login", h.ServeLoginForm)
	r.Post("/login", h.HandleLogin)
	r.Post("/logout", h.HandleLogout)

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireAdmin("/admin/login"))

		pr.Get("/usulan", h.ServeReview)
		pr.Get("/usulan/export.csv", h.ServeExportCSV)
		pr.Post("/usulan/{id}/status", h.HandleSetStatus)
	})

	return r
}
