package users

import (
	"context"
	"net/url"
	"time"

	"github.com/chaimictalks/news-admin/internal/session"
)

// API is the slice of the backend client the user screens need.
type API interface {
	Do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error
}

// User is a managed console account as the backend reports it.
type User struct {
	ID        session.FlexID `json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Role      *session.Role  `json:"role,omitempty"`
	CreatedAt *time.Time     `json:"createdAt,omitempty"`
}
