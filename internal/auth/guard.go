package auth

import "github.com/chaimictalks/news-admin/internal/session"

// SessionReader is the read-only view the guard needs.
type SessionReader interface {
	Identity() *session.Identity
}

// Guard answers "does the current session satisfy permission P". It is a pure
// predicate over the session store: no side effects, no network.
type Guard struct {
	sessions SessionReader
}

func NewGuard(sessions SessionReader) *Guard {
	return &Guard{sessions: sessions}
}

// HasPermission returns true unconditionally for an empty key (ungated
// capability). Otherwise it is exact-match membership in the current role's
// permission set; no identity, no role or an absent permission list denies.
func (g *Guard) HasPermission(key string) bool {
	if key == "" {
		return true
	}

	identity := g.sessions.Identity()
	if identity == nil {
		return false
	}
	return identity.Role.HasPermission(key)
}

// HasAnyPermission reports whether any of the given keys is granted.
func (g *Guard) HasAnyPermission(keys ...string) bool {
	for _, key := range keys {
		if g.HasPermission(key) {
			return true
		}
	}
	return false
}
