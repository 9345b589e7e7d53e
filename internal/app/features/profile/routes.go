// internal/app/features/profile/routes.go
package profile

import "github.com/go-chi/chi/v5"

// Routes returns the profile subrouter (mounted at /api/profile).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Get)
	r.Post("/", h.Upsert)
	return r
}
