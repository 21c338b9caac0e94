package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/chaimictalks/news-admin/internal/news"
	"github.com/chaimictalks/news-admin/internal/roles"
	"github.com/chaimictalks/news-admin/internal/users"
	"github.com/spf13/cobra"
)

var (
	userName     string
	userEmail    string
	userPassword string
	userRoleID   string

	roleName  string
	roleKey   string
	rolePerms []string

	articleTitle    string
	articleExcerpt  string
	articleContent  string
	articleCategory string
	articleTags     []string
	articleStatus   string
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage console users",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List users",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := initDependencies()
		if err != nil {
			return err
		}

		svc := users.NewService(deps.Backend, deps.Logger)
		list, err := svc.List(context.Background())
		if err != nil {
			return err
		}

		for _, u := range list {
			assigned := "-"
			if u.Role != nil {
				assigned = u.Role.Name
			}
			fmt.Printf("%-8s %-24s %-32s %s\n", u.ID, u.Name, u.Email, assigned)
		}
		return nil
	},
}

var usersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := initDependencies()
		if err != nil {
			return err
		}

		svc := users.NewService(deps.Backend, deps.Logger)
		user, err := svc.Create(context.Background(), users.CreateUserDTO{
			Name:     userName,
			Email:    userEmail,
			Password: userPassword,
			RoleID:   userRoleID,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Created user %s (%s)\n", user.Name, user.ID)
		return nil
	},
}

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "Manage roles and permissions",
}

var rolesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List roles",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := initDependencies()
		if err != nil {
			return err
		}

		svc := roles.NewService(deps.Backend, deps.AuthService, deps.Logger)
		list, err := svc.List(context.Background())
		if err != nil {
			return err
		}

		for _, r := range list {
			fmt.Printf("%-8s %-24s %-16s %s\n", r.ID, r.Name, r.Key, strings.Join(r.Permissions, ","))
		}
		return nil
	},
}

var rolesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a role",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := initDependencies()
		if err != nil {
			return err
		}

		svc := roles.NewService(deps.Backend, deps.AuthService, deps.Logger)
		role, err := svc.Create(context.Background(), roles.RoleDTO{
			Name:        roleName,
			Key:         roleKey,
			Permissions: rolePerms,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Created role %s (%s)\n", role.Name, role.ID)
		return nil
	},
}

var rolesUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a role (propagates into the active session when it is your own role)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := initDependencies()
		if err != nil {
			return err
		}

		svc := roles.NewService(deps.Backend, deps.AuthService, deps.Logger)
		role, err := svc.Update(context.Background(), args[0], roles.RoleDTO{
			Name:        roleName,
			Key:         roleKey,
			Permissions: rolePerms,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Updated role %s (%s)\n", role.Name, role.ID)
		return nil
	},
}

var rolesPermissionsCmd = &cobra.Command{
	Use:   "permissions",
	Short: "List assignable permissions",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := initDependencies()
		if err != nil {
			return err
		}

		svc := roles.NewService(deps.Backend, deps.AuthService, deps.Logger)
		perms, err := svc.Permissions(context.Background())
		if err != nil {
			return err
		}

		for _, p := range perms {
			fmt.Printf("%-24s %s\n", p.Key, p.Name)
		}
		return nil
	},
}

var newsCmd = &cobra.Command{
	Use:   "news",
	Short: "Manage news articles",
}

var newsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List news articles",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := initDependencies()
		if err != nil {
			return err
		}

		svc := news.NewService(deps.Backend, deps.Logger)
		list, err := svc.List(context.Background())
		if err != nil {
			return err
		}

		for _, a := range list {
			author := "-"
			if a.Author != nil {
				author = a.Author.Name
			}
			fmt.Printf("%-8s %-40s %-12s %s\n", a.ID, a.Title, a.Status, author)
		}
		return nil
	},
}

var newsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a news article",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := initDependencies()
		if err != nil {
			return err
		}

		svc := news.NewService(deps.Backend, deps.Logger)
		article, err := svc.Create(context.Background(), news.ArticleDTO{
			Title:    articleTitle,
			Excerpt:  articleExcerpt,
			Content:  articleContent,
			Category: articleCategory,
			Tags:     articleTags,
			Status:   articleStatus,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Created article %s (%s)\n", article.Title, article.ID)
		return nil
	},
}

func init() {
	usersCreateCmd.Flags().StringVar(&userName, "name", "", "full name")
	usersCreateCmd.Flags().StringVar(&userEmail, "email", "", "email address")
	usersCreateCmd.Flags().StringVar(&userPassword, "password", "", "initial password")
	usersCreateCmd.Flags().StringVar(&userRoleID, "role", "", "role identifier")
	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersCreateCmd)

	for _, c := range []*cobra.Command{rolesCreateCmd, rolesUpdateCmd} {
		c.Flags().StringVar(&roleName, "name", "", "role name")
		c.Flags().StringVar(&roleKey, "key", "", "role key")
		c.Flags().StringSliceVar(&rolePerms, "permissions", nil, "permission keys")
	}
	rolesCmd.AddCommand(rolesListCmd)
	rolesCmd.AddCommand(rolesCreateCmd)
	rolesCmd.AddCommand(rolesUpdateCmd)
	rolesCmd.AddCommand(rolesPermissionsCmd)

	newsCreateCmd.Flags().StringVar(&articleTitle, "title", "", "article title")
	newsCreateCmd.Flags().StringVar(&articleExcerpt, "excerpt", "", "short excerpt")
	newsCreateCmd.Flags().StringVar(&articleContent, "content", "", "article body (HTML)")
	newsCreateCmd.Flags().StringVar(&articleCategory, "category", "", "category")
	newsCreateCmd.Flags().StringSliceVar(&articleTags, "tags", nil, "tags")
	newsCreateCmd.Flags().StringVar(&articleStatus, "status", "draft", "draft or published")
	newsCmd.AddCommand(newsListCmd)
	newsCmd.AddCommand(newsCreateCmd)
}
