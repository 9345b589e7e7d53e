// internal/app/features/complaints/routes.go
package complaints

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hosteldesk/hosteldesk/internal/app/policy/complaintpolicy"
	"github.com/hosteldesk/hosteldesk/internal/app/system/identity"
	"github.com/hosteldesk/hosteldesk/internal/app/system/respond"
)

// Routes returns the resident-facing subrouter (mounted at /api/complaints).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Delete("/{id}", h.Delete)
	return r
}

// AdminRoutes returns the admin subrouter (mounted at /api/admin). All
// routes require the admin role.
func AdminRoutes(h *AdminHandler) chi.Router {
	r := chi.NewRouter()
	r.Use(requireAdmin)
	r.Get("/complaints", h.List)
	r.Patch("/complaints/{id}/status", h.SetStatus)
	r.Patch("/complaints/{id}/resolve", h.Resolve)
	return r
}

// requireAdmin gates a route group on the management policy; the policy's
// reason string is the response body on denial.
func requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := complaintpolicy.CanManage(identity.FromRequest(r)); err != nil {
			respond.Error(w, http.StatusForbidden, err.Error())
			return
		}
		next.ServeHTTP(w, r)
	})
}
