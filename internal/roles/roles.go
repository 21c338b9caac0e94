package roles

import (
	"context"
	"net/url"

	"github.com/chaimictalks/news-admin/internal/session"
)

// API is the slice of the backend client the roles screens need.
type API interface {
	Do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error
}

// Propagator receives successful role edits so the active session can pick
// them up. This is the only call the CRUD layer makes back into the auth
// core.
type Propagator interface {
	PropagateRoleUpdate(updated session.Role)
}

// Permission is one assignable permission key as listed by the backend.
type Permission struct {
	ID   session.FlexID `json:"id"`
	Name string         `json:"name"`
	Key  string         `json:"key"`
}

// DatatableResult is the paginated shape the list screen renders.
type DatatableResult struct {
	Draw            int            `json:"draw"`
	RecordsTotal    int64          `json:"recordsTotal"`
	RecordsFiltered int64          `json:"recordsFiltered"`
	Data            []session.Role `json:"data"`
}
