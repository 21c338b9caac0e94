package news

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/chaimictalks/news-admin/internal/backend"
)

type Service struct {
	api    API
	logger *slog.Logger
}

func NewService(api API, logger *slog.Logger) *Service {
	return &Service{api: api, logger: logger}
}

func (s *Service) List(ctx context.Context) ([]Article, error) {
	var articles []Article
	if err := s.api.Do(ctx, http.MethodGet, "/news", nil, nil, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

func (s *Service) Datatable(ctx context.Context, query backend.DatatableQuery) (*DatatableResult, error) {
	var result DatatableResult
	if err := s.api.Do(ctx, http.MethodGet, "/news/datatable", query.Values(), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *Service) Create(ctx context.Context, dto ArticleDTO) (*Article, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	if dto.Status == "" {
		dto.Status = "draft"
	}

	var article Article
	if err := s.api.Do(ctx, http.MethodPost, "/news", nil, dto, &article); err != nil {
		return nil, err
	}
	return &article, nil
}
