package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/chaimictalks/news-admin/internal/session"
)

// TokenSource supplies the current bearer token; an empty string means the
// request goes out unauthenticated. The session store satisfies this.
type TokenSource interface {
	Token() string
}

// APIError is a non-2xx backend response. Message carries the backend's
// human-readable message field verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) HTTPStatus() int {
	return e.StatusCode
}

type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client talks to the news-platform REST API. Every request picks up the
// session token at send time, the same way the web console's HTTP
// interceptor reads local storage per request.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	logger     *slog.Logger
}

func NewClient(cfg Config, tokens TokenSource, logger *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
		logger:     logger,
	}
}

// Do issues a JSON request against the API. body is marshalled when non-nil;
// a 2xx response is decoded into out when out is non-nil. Non-2xx responses
// come back as *APIError with the backend's message.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.decodeError(method, path, resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *Client) decodeError(method, path string, resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Message != "" {
		apiErr.Message = payload.Message
	} else {
		apiErr.Message = fmt.Sprintf("backend returned status %d", resp.StatusCode)
	}

	c.logger.Debug("backend request failed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"message", apiErr.Message)
	return apiErr
}

// Login exchanges credentials for a token and identity.
func (c *Client) Login(ctx context.Context, email, password string) (string, *session.Identity, error) {
	payload := map[string]string{"email": email, "password": password}

	var result struct {
		Token string            `json:"token"`
		User  *session.Identity `json:"user"`
	}
	if err := c.Do(ctx, http.MethodPost, "/auth/login", nil, payload, &result); err != nil {
		return "", nil, err
	}
	return result.Token, result.User, nil
}

// Me re-resolves the current identity from the token.
func (c *Client) Me(ctx context.Context) (*session.Identity, error) {
	var identity session.Identity
	if err := c.Do(ctx, http.MethodGet, "/auth/me", nil, nil, &identity); err != nil {
		return nil, err
	}
	return &identity, nil
}
