// Package api wires the HTTP handlers onto the three listeners.
package api

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/Beingstupid4me/tmto-backend/internal/api/handlers"
	"github.com/Beingstupid4me/tmto-backend/internal/api/middleware"
	"github.com/Beingstupid4me/tmto-backend/internal/auth"
	"github.com/Beingstupid4me/tmto-backend/internal/metrics"
)

// RecordRoutes bundles the two catalog collections served by the data
// listeners.
type RecordRoutes struct {
	Technologies *handlers.RecordsHandler
	Events       *handlers.RecordsHandler
}

// NewAuthRouter serves signup, login and the token-guarded dashboard probe.
// Operational endpoints (health, metrics) live here as well.
func NewAuthRouter(authHandler *handlers.AuthHandler, tokens *auth.JWTManager, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/signup", authHandler.Signup)
	mux.HandleFunc("POST /auth/login", authHandler.Login)

	guard := middleware.RequireToken(tokens)
	mux.Handle("GET /admin-dashboard", guard(http.HandlerFunc(handlers.Dashboard)))

	mux.HandleFunc("GET /healthz", handlers.Healthz)
	mux.Handle("GET /metrics", metrics.Handler())

	return wrap(mux, "auth", logger)
}

// NewReadOnlyRouter exposes the catalog for public consumption. Only GET is
// routed; other methods fall through to the mux's 405.
func NewReadOnlyRouter(routes RecordRoutes, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /technologies", routes.Technologies.List)
	mux.HandleFunc("GET /technologies/{id}", routes.Technologies.Get)
	mux.HandleFunc("GET /events", routes.Events.List)
	mux.HandleFunc("GET /events/{id}", routes.Events.Get)

	mux.HandleFunc("GET /healthz", handlers.Healthz)

	return wrap(mux, "read", logger)
}

// NewCRUDRouter exposes the full read and write surface over the same
// handlers the read-only listener uses.
func NewCRUDRouter(routes RecordRoutes, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	registerCRUD(mux, "/technologies", routes.Technologies)
	registerCRUD(mux, "/events", routes.Events)

	mux.HandleFunc("GET /healthz", handlers.Healthz)

	return wrap(mux, "crud", logger)
}

func registerCRUD(mux *http.ServeMux, prefix string, h *handlers.RecordsHandler) {
	mux.HandleFunc("GET "+prefix, h.List)
	mux.HandleFunc("POST "+prefix, h.Create)
	mux.HandleFunc("GET "+prefix+"/{id}", h.Get)
	mux.HandleFunc("PUT "+prefix+"/{id}", h.Update)
	mux.HandleFunc("DELETE "+prefix+"/{id}", h.Delete)
}

func wrap(mux *http.ServeMux, listener string, logger zerolog.Logger) http.Handler {
	handler := metrics.HTTPMiddleware(listener)(mux)
	handler = middleware.RequestLogging(logger.With().Str("listener", listener).Logger())(handler)
	return middleware.CORS(handler)
}
