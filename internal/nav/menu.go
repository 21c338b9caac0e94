package nav

// Permission keys gating the console's navigable capabilities. They are
// opaque tokens checked by exact match; the backend owns their meaning.
const (
	PermNewsBrowse      = "news.browse"
	PermUserBrowse      = "user.browse"
	PermRoleBrowse      = "role.browse"
	PermDeveloperBrowse = "developer.browse"
)

// Item is one node of the static menu tree: a leaf with a path, or a group
// with children. An empty Permission leaves the item ungated.
type Item struct {
	Label      string `json:"label"`
	Path       string `json:"path,omitempty"`
	Key        string `json:"key,omitempty"`
	Permission string `json:"-"`
	Children   []Item `json:"children,omitempty"`
}

func (i Item) IsGroup() bool {
	return len(i.Children) > 0
}

// DefaultMenu is the console's navigation catalog. Order matters: it is the
// order items render in the shell.
func DefaultMenu() []Item {
	return []Item{
		{Label: "Dashboard", Path: "/dashboard"},
		{Label: "News", Path: "/news", Permission: PermNewsBrowse},
		{
			Label:      "Articles",
			Key:        "articles",
			Permission: PermDeveloperBrowse,
			Children: []Item{
				{Label: "All Articles", Path: "/comming-soon", Permission: PermDeveloperBrowse},
				{Label: "Create Article", Path: "/comming-soon", Permission: PermDeveloperBrowse},
				{Label: "Categories", Path: "/comming-soon", Permission: PermDeveloperBrowse},
				{Label: "Tags", Path: "/comming-soon", Permission: PermDeveloperBrowse},
			},
		},
		{Label: "Media Library", Path: "/comming-soon", Permission: PermDeveloperBrowse},
		{Label: "Comments", Path: "/comming-soon", Permission: PermDeveloperBrowse},
		{
			Label:      "Pages",
			Key:        "pages",
			Permission: PermDeveloperBrowse,
			Children: []Item{
				{Label: "All Pages", Path: "/comming-soon", Permission: PermDeveloperBrowse},
				{Label: "Create Page", Path: "/comming-soon", Permission: PermDeveloperBrowse},
			},
		},
		{Label: "Website Menu", Path: "/comming-soon", Permission: PermDeveloperBrowse},
		{Label: "Reports", Path: "/comming-soon", Permission: PermDeveloperBrowse},
		{
			Label: "Admin Settings",
			Key:   "settings",
			Children: []Item{
				{Label: "Users", Path: "/settings/users", Permission: PermUserBrowse},
				{Label: "Roles & Permissions", Path: "/settings/roles", Permission: PermRoleBrowse},
				{Label: "System Settings", Path: "/comming-soon", Permission: PermRoleBrowse},
				{Label: "Activity Logs", Path: "/comming-soon", Permission: PermDeveloperBrowse},
			},
		},
	}
}
