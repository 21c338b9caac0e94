package middleware

import (
	"log/slog"
	"net/http"
)

// PermissionChecker is satisfied by the access guard.
type PermissionChecker interface {
	HasAnyPermission(keys ...string) bool
}

// RequirePermissions gates a handler on the current session holding any of
// the given permission keys. Handlers opt in individually; the route gate
// itself never applies this.
func RequirePermissions(guard PermissionChecker, logger *slog.Logger, permissions ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !guard.HasAnyPermission(permissions...) {
				logger.Warn("access denied: session lacks required permissions",
					"path", r.URL.Path,
					"required_permissions", permissions)
				http.Error(w, "Forbidden: insufficient permissions", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
