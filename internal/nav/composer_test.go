package nav

import (
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func TestNav(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Navigation Module Suite")
}

// setGuard grants exactly the listed permission keys. The empty key is
// always granted, matching the access guard's contract for ungated items.
type setGuard struct {
	granted map[string]bool
}

func newSetGuard(keys ...string) *setGuard {
	granted := make(map[string]bool, len(keys))
	for _, key := range keys {
		granted[key] = true
	}
	return &setGuard{granted: granted}
}

func (g *setGuard) HasPermission(key string) bool {
	if key == "" {
		return true
	}
	return g.granted[key]
}

func labels(items []Item) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Label)
	}
	return out
}

var _ = ginkgo.Describe("Composer", func() {
	ginkgo.Describe("Visible", func() {
		ginkgo.It("shows only ungated items to an anonymous session", func() {
			composer := NewComposer(newSetGuard(), nil)
			gomega.Expect(labels(composer.Visible())).To(gomega.Equal([]string{"Dashboard"}))
		})

		ginkgo.It("shows a group when at least one child is visible", func() {
			composer := NewComposer(newSetGuard(PermUserBrowse), nil)

			visible := composer.Visible()
			gomega.Expect(labels(visible)).To(gomega.Equal([]string{"Dashboard", "Admin Settings"}))

			settings := visible[1]
			gomega.Expect(labels(settings.Children)).To(gomega.Equal([]string{"Users"}))
		})

		ginkgo.It("hides a group whose own gate fails even when children would pass", func() {
			menu := []Item{
				{
					Label:      "Articles",
					Key:        "articles",
					Permission: PermDeveloperBrowse,
					Children: []Item{
						{Label: "All Articles", Path: "/articles", Permission: PermNewsBrowse},
					},
				},
			}
			composer := NewComposer(newSetGuard(PermNewsBrowse), menu)
			gomega.Expect(composer.Visible()).To(gomega.BeEmpty())
		})

		ginkgo.It("keeps the catalog order", func() {
			composer := NewComposer(newSetGuard(PermNewsBrowse, PermRoleBrowse), nil)
			gomega.Expect(labels(composer.Visible())).To(gomega.Equal([]string{"Dashboard", "News", "Admin Settings"}))
		})

		ginkgo.It("shows everything to a developer role", func() {
			composer := NewComposer(newSetGuard(PermNewsBrowse, PermUserBrowse, PermRoleBrowse, PermDeveloperBrowse), nil)
			gomega.Expect(labels(composer.Visible())).To(gomega.Equal([]string{
				"Dashboard", "News", "Articles", "Media Library", "Comments",
				"Pages", "Website Menu", "Reports", "Admin Settings",
			}))
		})
	})

	ginkgo.Describe("open state", func() {
		ginkgo.It("seeds groups containing the active path to open", func() {
			composer := NewComposer(newSetGuard(PermUserBrowse), nil)

			composer.SeedOpen("/settings/users/create")

			gomega.Expect(composer.IsOpen("settings")).To(gomega.BeTrue())
			gomega.Expect(composer.IsOpen("articles")).To(gomega.BeFalse())
		})

		ginkgo.It("keeps last-known state for untouched groups", func() {
			composer := NewComposer(newSetGuard(PermDeveloperBrowse), nil)

			composer.Toggle("pages")
			composer.SeedOpen("/settings/users")

			gomega.Expect(composer.IsOpen("pages")).To(gomega.BeTrue())
		})

		ginkgo.It("toggles a group open and closed", func() {
			composer := NewComposer(newSetGuard(), nil)

			composer.Toggle("settings")
			gomega.Expect(composer.IsOpen("settings")).To(gomega.BeTrue())
			composer.Toggle("settings")
			gomega.Expect(composer.IsOpen("settings")).To(gomega.BeFalse())
		})

		ginkgo.It("has no bearing on visibility", func() {
			composer := NewComposer(newSetGuard(PermUserBrowse), nil)
			composer.Toggle("settings")

			before := labels(composer.Visible())
			composer.Toggle("settings")
			gomega.Expect(labels(composer.Visible())).To(gomega.Equal(before))
		})
	})
})
