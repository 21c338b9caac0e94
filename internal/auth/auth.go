package auth

import (
	"context"

	"github.com/chaimictalks/news-admin/internal/session"
)

// Backend is the remote news-platform API as the auth core sees it. The
// concrete client lives in internal/backend; timeouts and transport policy
// belong there, any failure here is uniform.
type Backend interface {
	Login(ctx context.Context, email, password string) (token string, identity *session.Identity, err error)
	Me(ctx context.Context) (*session.Identity, error)
}

// SessionStore is the mutation surface the auth service drives. It matches
// *session.Store; the interface keeps the service testable without a real
// durable store.
type SessionStore interface {
	Snapshot() session.Session
	Token() string
	Identity() *session.Identity
	SetSession(token string, identity *session.Identity) error
	UpdateIdentity(forToken string, identity *session.Identity) error
	Clear() error
	SetLoading(loading bool)
}

// BackendError is implemented by HTTP-layer errors that carry the backend's
// verbatim message. The message is surfaced to the operator unmodified.
type BackendError interface {
	error
	HTTPStatus() int
}
