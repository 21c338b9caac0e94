package middleware

import (
	"net/http"
)

// TokenReader is the slice of the session store the gate needs.
type TokenReader interface {
	Token() string
}

// RouteGate guards authenticated routes: without a token the request is
// redirected to the login path. The gate checks authentication only, not
// per-route permissions; permission enforcement lives in menu visibility and
// in the backend. A direct URL can therefore reach a permission-gated path,
// which the backend is expected to reject on its own.
func RouteGate(sessions TokenReader, loginPath string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if sessions.Token() == "" {
				http.Redirect(w, r, loginPath, http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
