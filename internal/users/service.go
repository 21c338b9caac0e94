package users

import (
	"context"
	"log/slog"
	"net/http"
)

type Service struct {
	api    API
	logger *slog.Logger
}

func NewService(api API, logger *slog.Logger) *Service {
	return &Service{api: api, logger: logger}
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	var users []User
	if err := s.api.Do(ctx, http.MethodGet, "/users", nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Service) Create(ctx context.Context, dto CreateUserDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	var user User
	if err := s.api.Do(ctx, http.MethodPost, "/users", nil, dto, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
