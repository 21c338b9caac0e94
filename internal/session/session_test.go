package session

import (
	"encoding/json"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("FlexID", func() {
	ginkgo.It("accepts string identifiers", func() {
		var id FlexID
		gomega.Expect(json.Unmarshal([]byte(`"66f1a"`), &id)).To(gomega.Succeed())
		gomega.Expect(id.String()).To(gomega.Equal("66f1a"))
	})

	ginkgo.It("normalizes numeric identifiers to their string form", func() {
		var id FlexID
		gomega.Expect(json.Unmarshal([]byte(`42`), &id)).To(gomega.Succeed())
		gomega.Expect(id.Equal(FlexID("42"))).To(gomega.BeTrue())
	})

	ginkgo.It("treats null as absent", func() {
		var id FlexID
		gomega.Expect(json.Unmarshal([]byte(`null`), &id)).To(gomega.Succeed())
		gomega.Expect(id.String()).To(gomega.BeEmpty())
	})
})

var _ = ginkgo.Describe("Role", func() {
	ginkgo.It("falls back to _id when id is missing", func() {
		var role Role
		raw := []byte(`{"_id":"66f1a","name":"Editor","key":"editor","permissions":["news.browse"]}`)
		gomega.Expect(json.Unmarshal(raw, &role)).To(gomega.Succeed())
		gomega.Expect(role.ID).To(gomega.Equal(FlexID("66f1a")))
	})

	ginkgo.It("prefers id over _id when both are present", func() {
		var role Role
		raw := []byte(`{"id":7,"_id":"66f1a","name":"Editor"}`)
		gomega.Expect(json.Unmarshal(raw, &role)).To(gomega.Succeed())
		gomega.Expect(role.ID).To(gomega.Equal(FlexID("7")))
	})

	ginkgo.Describe("HasPermission", func() {
		ginkgo.It("denies everything on a nil role", func() {
			var role *Role
			gomega.Expect(role.HasPermission("news.browse")).To(gomega.BeFalse())
		})

		ginkgo.It("denies everything when the permission list is absent", func() {
			role := &Role{ID: "7", Name: "Editor"}
			gomega.Expect(role.HasPermission("news.browse")).To(gomega.BeFalse())
		})

		ginkgo.It("matches keys exactly, with no prefix or wildcard semantics", func() {
			role := &Role{Permissions: []string{"news.browse"}}
			gomega.Expect(role.HasPermission("news.browse")).To(gomega.BeTrue())
			gomega.Expect(role.HasPermission("news")).To(gomega.BeFalse())
			gomega.Expect(role.HasPermission("news.*")).To(gomega.BeFalse())
		})
	})
})
