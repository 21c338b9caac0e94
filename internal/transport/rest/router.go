package rest

import (
	"database/sql"
	"log/slog"

	"github.com/chaimictalks/news-admin/internal/auth"
	"github.com/chaimictalks/news-admin/internal/nav"
	"github.com/chaimictalks/news-admin/internal/news"
	"github.com/chaimictalks/news-admin/internal/roles"
	"github.com/chaimictalks/news-admin/internal/transport/middleware"
	"github.com/chaimictalks/news-admin/internal/users"
	"github.com/go-chi/chi"
)

// RouteDeps bundles everything the gateway router mounts.
type RouteDeps struct {
	StateDB     *sql.DB
	Sessions    middleware.TokenReader
	LoginPath   string
	AuthHandler *auth.Handler
	NavHandler  *nav.Handler
	UserHandler *users.Handler
	RoleHandler *roles.Handler
	NewsHandler *news.Handler
	Logger      *slog.Logger
}

// RegisterAllRoutes wires the console gateway. The session endpoints and the
// menu are reachable anonymously (the menu composes to ungated items only);
// the page-data routes sit behind the route gate, which checks
// authentication and nothing else.
func RegisterAllRoutes(router *chi.Mux, deps RouteDeps) {
	healthHandler := NewHealthHandler(deps.StateDB)

	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(deps.Logger))
	router.Use(middleware.LoggingMiddleware(deps.Logger))

	router.Get("/health", healthHandler.healthCheckHandler)
	router.Get("/ping", healthHandler.pingHandler)

	router.Post("/login", deps.AuthHandler.Login)
	router.Post("/logout", deps.AuthHandler.Logout)
	router.Get("/session", deps.AuthHandler.Session)
	router.Get("/menu", deps.NavHandler.Menu)
	router.Post("/menu/{key}/toggle", deps.NavHandler.Toggle)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RouteGate(deps.Sessions, deps.LoginPath))

		r.Get("/users", deps.UserHandler.List)
		r.Post("/users", deps.UserHandler.Create)

		r.Get("/roles", deps.RoleHandler.List)
		r.Get("/roles/datatable", deps.RoleHandler.Datatable)
		r.Get("/rolesById/{id}", deps.RoleHandler.Get)
		r.Post("/roles", deps.RoleHandler.Create)
		r.Post("/rolesUpdate/{id}", deps.RoleHandler.Update)
		r.Get("/permissions", deps.RoleHandler.Permissions)

		r.Get("/news", deps.NewsHandler.List)
		r.Get("/news/datatable", deps.NewsHandler.Datatable)
		r.Post("/news", deps.NewsHandler.Create)
	})
}
