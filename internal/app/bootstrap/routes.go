// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	authfeature "github.com/hosteldesk/hosteldesk/internal/app/features/auth"
	complaintsfeature "github.com/hosteldesk/hosteldesk/internal/app/features/complaints"
	dashboardfeature "github.com/hosteldesk/hosteldesk/internal/app/features/dashboard"
	healthfeature "github.com/hosteldesk/hosteldesk/internal/app/features/health"
	profilefeature "github.com/hosteldesk/hosteldesk/internal/app/features/profile"
	"github.com/hosteldesk/hosteldesk/internal/app/system/identity"
	"github.com/hosteldesk/hosteldesk/internal/app/system/token"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. HostelDesk applies the identity
// middleware globally, then mounts the API feature routers plus the health
// endpoint and the static frontend.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	tokens := token.NewService(appCfg.JWTSecret, appCfg.TokenTTL)
	resolver := identity.NewResolver(tokens, appCfg.AdminEmail)

	r := chi.NewRouter()

	// Global identity middleware: every request carries an Identity in its
	// context (guest when nothing verifiable is presented).
	r.Use(resolver.Middleware)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.ServeFile(w, req, "public/index.html")
	})

	// Complaint submission and browsing
	complaintHandler := complaintsfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/api/complaints", complaintsfeature.Routes(complaintHandler))

	// Admin complaint lifecycle
	adminHandler := complaintsfeature.NewAdminHandler(deps.MongoDatabase, logger)
	r.Mount("/api/admin", complaintsfeature.AdminRoutes(adminHandler))

	// Dashboard statistics
	dashHandler := dashboardfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/api/dashboard", dashboardfeature.Routes(dashHandler))

	// Profiles
	profileHandler := profilefeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/api/profile", profilefeature.Routes(profileHandler))

	// Signup and login
	authHandler := authfeature.NewHandler(deps.MongoDatabase, tokens, appCfg.AdminEmail, appCfg.AdminPassword, logger)
	r.Mount("/api/auth", authfeature.Routes(authHandler))

	return r, nil
}
