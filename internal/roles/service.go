package roles

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/chaimictalks/news-admin/internal/backend"
	"github.com/chaimictalks/news-admin/internal/session"
)

// Service wraps the backend's role endpoints. The backend owns persistence
// and pagination; this layer only shapes requests and feeds successful
// updates to the propagator.
type Service struct {
	api        API
	propagator Propagator
	logger     *slog.Logger
}

func NewService(api API, propagator Propagator, logger *slog.Logger) *Service {
	return &Service{
		api:        api,
		propagator: propagator,
		logger:     logger,
	}
}

func (s *Service) List(ctx context.Context) ([]session.Role, error) {
	var roles []session.Role
	if err := s.api.Do(ctx, http.MethodGet, "/roles", nil, nil, &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

func (s *Service) Datatable(ctx context.Context, query backend.DatatableQuery) (*DatatableResult, error) {
	var result DatatableResult
	if err := s.api.Do(ctx, http.MethodGet, "/roles/datatable", query.Values(), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *Service) Get(ctx context.Context, id string) (*session.Role, error) {
	var role session.Role
	if err := s.api.Do(ctx, http.MethodGet, "/rolesById/"+id, nil, nil, &role); err != nil {
		return nil, err
	}
	return &role, nil
}

func (s *Service) Create(ctx context.Context, dto RoleDTO) (*session.Role, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	var role session.Role
	if err := s.api.Do(ctx, http.MethodPost, "/roles", nil, dto, &role); err != nil {
		return nil, err
	}
	return &role, nil
}

// Update edits a role and, on success, pushes the result into the active
// session so an edit to the operator's own role takes effect immediately.
func (s *Service) Update(ctx context.Context, id string, dto RoleDTO) (*session.Role, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	var updated session.Role
	if err := s.api.Do(ctx, http.MethodPost, "/rolesUpdate/"+id, nil, dto, &updated); err != nil {
		return nil, err
	}

	if s.propagator != nil {
		s.propagator.PropagateRoleUpdate(updated)
	}
	return &updated, nil
}

func (s *Service) Permissions(ctx context.Context) ([]Permission, error) {
	var perms []Permission
	if err := s.api.Do(ctx, http.MethodGet, "/permissions", nil, nil, &perms); err != nil {
		return nil, err
	}
	return perms, nil
}
