// internal/app/features/suggestions/routes.go
package suggestions

import "github.com/go-chi/chi/v5"

// Routes returns the public suggestion-form router, mounted at
// "/usulan" from bootstrap.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeForm)
	r.Post("/", h.ServeSubmit)

	return r
}
