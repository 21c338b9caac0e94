package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/chaimictalks/news-admin/pkg/logger"
)

func TestBackend(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Backend Client Suite")
}

type staticToken string

func (s staticToken) Token() string {
	return string(s)
}

var _ = ginkgo.Describe("Client", func() {
	newClient := func(server *httptest.Server, token string) *Client {
		return NewClient(Config{BaseURL: server.URL}, staticToken(token), logger.LoggerWrapper())
	}

	ginkgo.Describe("Login", func() {
		ginkgo.It("decodes the token and user from a successful exchange", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gomega.Expect(r.Method).To(gomega.Equal(http.MethodPost))
				gomega.Expect(r.URL.Path).To(gomega.Equal("/auth/login"))
				gomega.Expect(r.Header.Get("Authorization")).To(gomega.BeEmpty())

				var creds map[string]string
				gomega.Expect(json.NewDecoder(r.Body).Decode(&creds)).To(gomega.Succeed())
				gomega.Expect(creds["email"]).To(gomega.Equal("admin@example.com"))

				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"token":"abc","user":{"id":1,"name":"Ada","email":"admin@example.com","role":{"id":7,"key":"admin","permissions":["user.browse"]}}}`))
			}))
			defer server.Close()

			token, identity, err := newClient(server, "").Login(context.Background(), "admin@example.com", "secret")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(token).To(gomega.Equal("abc"))
			gomega.Expect(identity.Name).To(gomega.Equal("Ada"))
			gomega.Expect(identity.Role.ID.String()).To(gomega.Equal("7"))
			gomega.Expect(identity.Role.Permissions).To(gomega.Equal([]string{"user.browse"}))
		})

		ginkgo.It("surfaces the backend's message verbatim on rejection", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"message":"Invalid email or password"}`))
			}))
			defer server.Close()

			_, _, err := newClient(server, "").Login(context.Background(), "admin@example.com", "wrong")

			var apiErr *APIError
			gomega.Expect(err).To(gomega.BeAssignableToTypeOf(apiErr))
			apiErr = err.(*APIError)
			gomega.Expect(apiErr.Error()).To(gomega.Equal("Invalid email or password"))
			gomega.Expect(apiErr.HTTPStatus()).To(gomega.Equal(http.StatusUnauthorized))
		})

		ginkgo.It("falls back to a status message when the error body is unreadable", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				w.Write([]byte("upstream exploded"))
			}))
			defer server.Close()

			_, _, err := newClient(server, "").Login(context.Background(), "a@b.c", "x")
			gomega.Expect(err).To(gomega.MatchError("backend returned status 502"))
		})
	})

	ginkgo.Describe("Me", func() {
		ginkgo.It("sends the current bearer token", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gomega.Expect(r.URL.Path).To(gomega.Equal("/auth/me"))
				gomega.Expect(r.Header.Get("Authorization")).To(gomega.Equal("Bearer abc"))

				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"id":"1","name":"Ada","email":"admin@example.com"}`))
			}))
			defer server.Close()

			identity, err := newClient(server, "abc").Me(context.Background())
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(identity.Email).To(gomega.Equal("admin@example.com"))
		})
	})

	ginkgo.Describe("Do", func() {
		ginkgo.It("forwards query parameters", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gomega.Expect(r.URL.Query().Get("draw")).To(gomega.Equal("1"))
				gomega.Expect(r.URL.Query().Get("start")).To(gomega.Equal("20"))
				gomega.Expect(r.URL.Query().Get("length")).To(gomega.Equal("10"))
				gomega.Expect(r.URL.Query().Get("search[value]")).To(gomega.Equal("breaking"))

				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"draw":1,"data":[]}`))
			}))
			defer server.Close()

			query := DatatableQuery{Draw: 1, Start: 20, Length: 10, Search: "breaking"}
			var out map[string]interface{}
			err := newClient(server, "abc").Do(context.Background(), http.MethodGet, "/news/datatable", query.Values(), nil, &out)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
		})
	})
})

var _ = ginkgo.Describe("DatatableQuery", func() {
	ginkgo.It("defaults draw and length", func() {
		values := DatatableQuery{}.Values()
		gomega.Expect(values.Get("draw")).To(gomega.Equal("1"))
		gomega.Expect(values.Get("length")).To(gomega.Equal("10"))
		gomega.Expect(values.Get("start")).To(gomega.Equal("0"))
	})
})
