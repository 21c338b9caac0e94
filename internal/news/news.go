package news

import (
	"context"
	"net/url"
	"time"

	"github.com/chaimictalks/news-admin/internal/session"
)

// API is the slice of the backend client the news screens need.
type API interface {
	Do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error
}

// Author is the byline the list screen shows.
type Author struct {
	ID   session.FlexID `json:"id"`
	Name string         `json:"name"`
}

// Article is a news article as the backend reports it. Content is opaque
// HTML produced by the editor; the console never interprets it.
type Article struct {
	ID        session.FlexID `json:"id"`
	Title     string         `json:"title"`
	Excerpt   string         `json:"excerpt,omitempty"`
	Content   string         `json:"content,omitempty"`
	Category  string         `json:"category,omitempty"`
	Tags      []string       `json:"tags,omitempty"`
	Status    string         `json:"status"`
	Author    *Author        `json:"author,omitempty"`
	CreatedAt *time.Time     `json:"createdAt,omitempty"`
}

// DatatableResult is the paginated shape the list screen renders.
type DatatableResult struct {
	Draw            int       `json:"draw"`
	RecordsTotal    int64     `json:"recordsTotal"`
	RecordsFiltered int64     `json:"recordsFiltered"`
	Data            []Article `json:"data"`
}
