package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/chaimictalks/news-admin/internal/core/events"
	"github.com/chaimictalks/news-admin/internal/session"
	"github.com/chaimictalks/news-admin/pkg/logger"
)

func TestAuth(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Auth Module Suite")
}

// mapStorage is an in-memory durable side-channel for tests.
type mapStorage struct {
	entries map[string]string
}

func newMapStorage() *mapStorage {
	return &mapStorage{entries: make(map[string]string)}
}

func (m *mapStorage) Get(key string) (string, bool, error) {
	value, ok := m.entries[key]
	return value, ok, nil
}

func (m *mapStorage) Set(key, value string) error {
	m.entries[key] = value
	return nil
}

func (m *mapStorage) Delete(keys ...string) error {
	for _, key := range keys {
		delete(m.entries, key)
	}
	return nil
}

// fakeBackend scripts the remote API.
type fakeBackend struct {
	loginToken    string
	loginIdentity *session.Identity
	loginErr      error

	meIdentity *session.Identity
	meErr      error
	meCalls    int
	beforeMe   func()
}

func (f *fakeBackend) Login(ctx context.Context, email, password string) (string, *session.Identity, error) {
	if f.loginErr != nil {
		return "", nil, f.loginErr
	}
	return f.loginToken, f.loginIdentity, nil
}

func (f *fakeBackend) Me(ctx context.Context) (*session.Identity, error) {
	f.meCalls++
	if f.beforeMe != nil {
		f.beforeMe()
	}
	if f.meErr != nil {
		return nil, f.meErr
	}
	return f.meIdentity, nil
}

func adminIdentity() *session.Identity {
	return &session.Identity{
		ID:    "1",
		Name:  "Ada Editor",
		Email: "admin@example.com",
		Role: &session.Role{
			ID:          "7",
			Name:        "Admin",
			Key:         "admin",
			Permissions: []string{"user.browse", "role.browse"},
		},
	}
}

var _ = ginkgo.Describe("AuthService", func() {
	var (
		storage *mapStorage
		store   *session.Store
		fake    *fakeBackend
		service *Service
		guard   *Guard
	)

	ginkgo.BeforeEach(func() {
		storage = newMapStorage()
		bus := events.NewEventBus(logger.LoggerWrapper())
		store = session.NewStore(storage, bus, logger.LoggerWrapper())
		fake = &fakeBackend{}
		service = NewService(store, fake, logger.LoggerWrapper())
		guard = NewGuard(store)
	})

	ginkgo.Describe("Login", func() {
		ginkgo.It("installs exactly the returned token and identity", func() {
			fake.loginToken = "abc"
			fake.loginIdentity = adminIdentity()

			identity, err := service.Login(context.Background(), LoginDTO{Email: "admin@example.com", Password: "secret"})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(identity).To(gomega.Equal(adminIdentity()))

			gomega.Expect(store.Token()).To(gomega.Equal("abc"))
			gomega.Expect(store.Identity()).To(gomega.Equal(adminIdentity()))
			gomega.Expect(storage.entries).To(gomega.HaveKey(session.StorageKeyToken))
			gomega.Expect(storage.entries).To(gomega.HaveKey(session.StorageKeyIdentity))
		})

		ginkgo.It("grants permissions exactly as returned by the backend", func() {
			fake.loginToken = "abc"
			fake.loginIdentity = adminIdentity()

			_, err := service.Login(context.Background(), LoginDTO{Email: "admin@example.com", Password: "secret"})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			gomega.Expect(guard.HasPermission("user.browse")).To(gomega.BeTrue())
			gomega.Expect(guard.HasPermission("news.browse")).To(gomega.BeFalse())
		})

		ginkgo.It("propagates the backend rejection without touching the session", func() {
			fake.loginErr = errors.New("Invalid email or password")

			_, err := service.Login(context.Background(), LoginDTO{Email: "admin@example.com", Password: "wrong"})
			gomega.Expect(err).To(gomega.MatchError("Invalid email or password"))
			gomega.Expect(store.Token()).To(gomega.BeEmpty())
		})

		ginkgo.It("rejects incomplete credentials before calling the backend", func() {
			_, err := service.Login(context.Background(), LoginDTO{Email: "admin@example.com"})
			gomega.Expect(err).To(gomega.BeAssignableToTypeOf(ValidationError{}))
		})
	})

	ginkgo.Describe("Bootstrap", func() {
		ginkgo.It("settles an anonymous session without a network call", func() {
			gomega.Expect(store.Hydrate()).To(gomega.Succeed())

			service.Bootstrap(context.Background())

			gomega.Expect(fake.meCalls).To(gomega.Equal(0))
			gomega.Expect(store.Loading()).To(gomega.BeFalse())
			gomega.Expect(store.Identity()).To(gomega.BeNil())
		})

		ginkgo.It("shows the cached identity first, then the refreshed one", func() {
			stale := adminIdentity()
			stale.Role.Permissions = []string{"user.browse"}
			storage.entries[session.StorageKeyToken] = "abc"
			storage.entries[session.StorageKeyIdentity] = mustJSON(stale)

			gomega.Expect(store.Hydrate()).To(gomega.Succeed())

			// Phase one: the optimistic cached copy is already visible.
			gomega.Expect(store.Loading()).To(gomega.BeTrue())
			gomega.Expect(guard.HasPermission("user.browse")).To(gomega.BeTrue())
			gomega.Expect(guard.HasPermission("role.browse")).To(gomega.BeFalse())

			fresh := adminIdentity()
			fresh.Role.Permissions = []string{"user.browse", "role.browse"}
			fake.meIdentity = fresh

			service.Bootstrap(context.Background())

			// Phase two: server truth replaced the cached copy.
			gomega.Expect(store.Loading()).To(gomega.BeFalse())
			gomega.Expect(guard.HasPermission("role.browse")).To(gomega.BeTrue())
			gomega.Expect(storage.entries[session.StorageKeyIdentity]).To(gomega.Equal(mustJSON(fresh)))
		})

		ginkgo.It("keeps the stale identity when the refresh fails", func() {
			storage.entries[session.StorageKeyToken] = "abc"
			storage.entries[session.StorageKeyIdentity] = mustJSON(adminIdentity())
			gomega.Expect(store.Hydrate()).To(gomega.Succeed())

			fake.meErr = errors.New("token revoked")

			service.Bootstrap(context.Background())

			gomega.Expect(store.Loading()).To(gomega.BeFalse())
			gomega.Expect(store.Token()).To(gomega.Equal("abc"))
			gomega.Expect(store.Identity()).To(gomega.Equal(adminIdentity()))
		})

		ginkgo.It("does not resurrect a session logged out while the refresh was in flight", func() {
			storage.entries[session.StorageKeyToken] = "abc"
			storage.entries[session.StorageKeyIdentity] = mustJSON(adminIdentity())
			gomega.Expect(store.Hydrate()).To(gomega.Succeed())

			fake.meIdentity = adminIdentity()
			fake.beforeMe = func() {
				gomega.Expect(service.Logout()).To(gomega.Succeed())
			}

			service.Bootstrap(context.Background())

			snap := store.Snapshot()
			gomega.Expect(snap.Token).To(gomega.BeEmpty())
			gomega.Expect(snap.Identity).To(gomega.BeNil())
			gomega.Expect(storage.entries).NotTo(gomega.HaveKey(session.StorageKeyIdentity))
		})
	})

	ginkgo.Describe("Logout", func() {
		ginkgo.It("clears memory and durable storage", func() {
			fake.loginToken = "abc"
			fake.loginIdentity = adminIdentity()
			_, err := service.Login(context.Background(), LoginDTO{Email: "admin@example.com", Password: "secret"})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			gomega.Expect(service.Logout()).To(gomega.Succeed())

			gomega.Expect(store.Token()).To(gomega.BeEmpty())
			gomega.Expect(store.Identity()).To(gomega.BeNil())
			gomega.Expect(storage.entries).To(gomega.BeEmpty())
		})
	})

	ginkgo.Describe("PropagateRoleUpdate", func() {
		ginkgo.BeforeEach(func() {
			fake.loginToken = "abc"
			fake.loginIdentity = adminIdentity()
			_, err := service.Login(context.Background(), LoginDTO{Email: "admin@example.com", Password: "secret"})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
		})

		ginkgo.It("replaces the session role's permission set when the edited role is the active one", func() {
			service.PropagateRoleUpdate(session.Role{
				ID:          "7",
				Name:        "Administrator",
				Key:         "admin",
				Permissions: []string{"news.browse"},
			})

			role := store.Identity().Role
			gomega.Expect(role.Name).To(gomega.Equal("Administrator"))
			gomega.Expect(role.Permissions).To(gomega.Equal([]string{"news.browse"}))
			gomega.Expect(guard.HasPermission("news.browse")).To(gomega.BeTrue())
			gomega.Expect(guard.HasPermission("user.browse")).To(gomega.BeFalse())
		})

		ginkgo.It("tolerates a numeric identifier from the role screens", func() {
			var numeric session.Role
			gomega.Expect(unmarshalRole(`{"id":7,"name":"Admin","permissions":["news.browse"]}`, &numeric)).To(gomega.Succeed())

			service.PropagateRoleUpdate(numeric)

			gomega.Expect(store.Identity().Role.Permissions).To(gomega.Equal([]string{"news.browse"}))
		})

		ginkgo.It("leaves the session untouched when a different role is edited", func() {
			before := store.Snapshot()

			service.PropagateRoleUpdate(session.Role{
				ID:          "99",
				Name:        "Other",
				Permissions: []string{"developer.browse"},
			})

			gomega.Expect(store.Snapshot()).To(gomega.Equal(before))
		})

		ginkgo.It("is a no-op on an anonymous session", func() {
			gomega.Expect(service.Logout()).To(gomega.Succeed())

			service.PropagateRoleUpdate(session.Role{ID: "7", Permissions: []string{"news.browse"}})

			gomega.Expect(store.Identity()).To(gomega.BeNil())
		})
	})
})
