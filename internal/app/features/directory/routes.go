// internal/app/features/directory/routes.go
package directory

import "github.com/go-chi/chi/v5"

// Routes returns the public directory router, mounted at "/" from
// bootstrap.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)
	r.Get("/organisasi/{index}", h.ServeDetail)
	r.Get("/cari", h.ServeSearch)
	r.Get("/export.csv", h.ServeExportCSV)

	return r
}
