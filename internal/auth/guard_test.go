package auth

import (
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/chaimictalks/news-admin/internal/session"
)

type fakeSessionReader struct {
	identity *session.Identity
}

func (f *fakeSessionReader) Identity() *session.Identity {
	return f.identity
}

var _ = ginkgo.Describe("Guard", func() {
	var reader *fakeSessionReader
	var guard *Guard

	ginkgo.BeforeEach(func() {
		reader = &fakeSessionReader{}
		guard = NewGuard(reader)
	})

	ginkgo.It("allows an ungated capability regardless of session state", func() {
		gomega.Expect(guard.HasPermission("")).To(gomega.BeTrue())

		reader.identity = adminIdentity()
		gomega.Expect(guard.HasPermission("")).To(gomega.BeTrue())
	})

	ginkgo.It("denies every gated capability without an identity", func() {
		gomega.Expect(guard.HasPermission("user.browse")).To(gomega.BeFalse())
		gomega.Expect(guard.HasPermission("role.browse")).To(gomega.BeFalse())
	})

	ginkgo.It("denies when the role has no permission list", func() {
		reader.identity = &session.Identity{ID: "1", Role: &session.Role{ID: "7", Name: "Empty"}}
		gomega.Expect(guard.HasPermission("user.browse")).To(gomega.BeFalse())
	})

	ginkgo.It("denies when the identity has no role at all", func() {
		reader.identity = &session.Identity{ID: "1"}
		gomega.Expect(guard.HasPermission("user.browse")).To(gomega.BeFalse())
	})

	ginkgo.It("checks exact set membership", func() {
		reader.identity = adminIdentity()
		gomega.Expect(guard.HasPermission("user.browse")).To(gomega.BeTrue())
		gomega.Expect(guard.HasPermission("user")).To(gomega.BeFalse())
	})

	ginkgo.It("reports whether any of several keys is granted", func() {
		reader.identity = adminIdentity()
		gomega.Expect(guard.HasAnyPermission("developer.browse", "role.browse")).To(gomega.BeTrue())
		gomega.Expect(guard.HasAnyPermission("developer.browse", "news.browse")).To(gomega.BeFalse())
	})
})
