package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/asset-inventory/internal/asset"
	"github.com/frahmantamala/asset-inventory/internal/auth"
	"github.com/frahmantamala/asset-inventory/internal/dashboard"
	"github.com/frahmantamala/asset-inventory/internal/dropdown"
	"github.com/frahmantamala/asset-inventory/internal/export"
	"github.com/frahmantamala/asset-inventory/internal/search"
	"github.com/frahmantamala/asset-inventory/internal/transport/middleware"
	"github.com/frahmantamala/asset-inventory/internal/transport/swagger"
	"github.com/frahmantamala/asset-inventory/internal/user"
)

// RegisterAllRoutes wires every handler into the router under /api/v1.
// Role tiers: reads need any authenticated user, asset updates need
// manager or above, deletes and user administration need admin.
func RegisterAllRoutes(
	router *chi.Mux,
	db *sql.DB,
	authHandler *auth.Handler,
	userHandler *user.Handler,
	assetHandler *asset.Handler,
	searchHandler *search.Handler,
	exportHandler *export.Handler,
	dashboardHandler *dashboard.Handler,
	dropdownHandler *dropdown.Handler,
	logger *slog.Logger,
) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// OpenAPI spec and Swagger UI live outside the API prefix
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Post("/auth/login", authHandler.Login)

		// Everything below requires a valid bearer token and an active user
		r.Group(func(pr chi.Router) {
			pr.Use(authHandler.AuthMiddleware)

			pr.Get("/auth/me", userHandler.GetCurrentUser)
			pr.Put("/auth/me", userHandler.UpdateCurrentUser)

			pr.Route("/assets", func(ar chi.Router) {
				ar.Get("/", assetHandler.ListAssets)
				ar.Post("/", assetHandler.CreateAsset)
				ar.Get("/{id}", assetHandler.GetAsset)

				ar.Group(func(mr chi.Router) {
					mr.Use(authHandler.RequireRole(auth.RoleManager))
					mr.Put("/{id}", assetHandler.UpdateAsset)
				})

				ar.Group(func(adr chi.Router) {
					adr.Use(authHandler.RequireRole(auth.RoleAdmin))
					adr.Delete("/{id}", assetHandler.DeleteAsset)
				})
			})

			pr.Get("/search", searchHandler.Search)
			pr.Get("/export", exportHandler.Export)
			pr.Get("/dashboard", dashboardHandler.GetDashboard)
			pr.Get("/dropdowns", dropdownHandler.GetDropdowns)

			// User administration is admin only, registration included
			pr.Group(func(adr chi.Router) {
				adr.Use(authHandler.RequireRole(auth.RoleAdmin))
				adr.Post("/auth/register", userHandler.Register)
				adr.Get("/auth/users", userHandler.ListUsers)
				adr.Put("/auth/users/{id}", userHandler.UpdateUser)
			})
		})
	})
}
