package auth

import (
	"context"
	"log/slog"

	"github.com/chaimictalks/news-admin/internal/session"
)

// Service orchestrates session transitions against the backend: login,
// logout, the startup bootstrap and role-update propagation.
type Service struct {
	sessions SessionStore
	backend  Backend
	logger   *slog.Logger
}

func NewService(sessions SessionStore, backend Backend, logger *slog.Logger) *Service {
	return &Service{
		sessions: sessions,
		backend:  backend,
		logger:   logger,
	}
}

// Login exchanges credentials for a token and identity and installs both in
// the session store. Backend rejections come back as-is; the caller owns the
// user-facing messaging.
func (s *Service) Login(ctx context.Context, dto LoginDTO) (*session.Identity, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	token, identity, err := s.backend.Login(ctx, dto.Email, dto.Password)
	if err != nil {
		s.logger.Warn("login rejected", "email", dto.Email, "error", err)
		return nil, err
	}

	if err := s.sessions.SetSession(token, identity); err != nil {
		return nil, err
	}

	s.logger.Info("login successful", "email", dto.Email)
	return identity, nil
}

// Bootstrap reconciles the hydrated session with server truth. Without a
// token it settles immediately and makes no network call. With one, the
// cached identity stays visible while /auth/me is asked for the current
// identity; a refresh failure is logged and the session keeps the stale
// copy rather than forcing a logout. Loading settles either way.
func (s *Service) Bootstrap(ctx context.Context) {
	token := s.sessions.Token()
	if token == "" {
		s.sessions.SetLoading(false)
		return
	}
	defer s.sessions.SetLoading(false)

	identity, err := s.backend.Me(ctx)
	if err != nil {
		s.logger.Warn("session refresh failed, keeping cached identity", "error", err)
		return
	}

	// The store drops this update if the token changed while the request
	// was in flight.
	if err := s.sessions.UpdateIdentity(token, identity); err != nil {
		s.logger.Error("failed to store refreshed identity", "error", err)
	}
}

// Logout tears the session down locally. Server-side token invalidation, if
// any, is the backend's concern.
func (s *Service) Logout() error {
	if err := s.sessions.Clear(); err != nil {
		return err
	}
	s.logger.Info("logged out")
	return nil
}

// PropagateRoleUpdate pushes a successful role edit into the active session
// when the edited role is the signed-in user's own. Permission changes then
// take effect immediately, without a logout/login cycle. Editing any other
// role leaves the session untouched.
func (s *Service) PropagateRoleUpdate(updated session.Role) {
	snap := s.sessions.Snapshot()
	if snap.Identity == nil || snap.Identity.Role == nil {
		return
	}

	if !snap.Identity.Role.ID.Equal(updated.ID) {
		return
	}

	merged := snap.Identity.Role.Clone()
	merged.ID = updated.ID
	if updated.Name != "" {
		merged.Name = updated.Name
	}
	if updated.Key != "" {
		merged.Key = updated.Key
	}
	if updated.Permissions != nil {
		merged.Permissions = append([]string(nil), updated.Permissions...)
	} else {
		merged.Permissions = nil
	}

	next := snap.Identity.Clone()
	next.Role = merged

	if err := s.sessions.UpdateIdentity(snap.Token, next); err != nil {
		s.logger.Error("failed to propagate role update", "role_id", updated.ID, "error", err)
		return
	}

	s.logger.Info("role update propagated into active session",
		"role_id", updated.ID,
		"permissions", len(merged.Permissions))
}
