package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/chaimictalks/news-admin/internal"
	"github.com/chaimictalks/news-admin/internal/auth"
	"github.com/spf13/cobra"
)

var (
	loginEmail    string
	loginPassword string
	menuPath      string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the news platform",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := initDependencies()
		if err != nil {
			return err
		}

		email := loginEmail
		if email == "" {
			email = prompt("Email: ")
		}
		password := loginPassword
		if password == "" {
			password = prompt("Password: ")
		}

		identity, err := deps.AuthService.Login(context.Background(), auth.LoginDTO{
			Email:    email,
			Password: password,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Signed in as %s", identity.Name)
		if identity.Role != nil {
			fmt.Printf(" (%s)", identity.Role.Name)
		}
		fmt.Println()
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := initDependencies()
		if err != nil {
			return err
		}

		if err := deps.AuthService.Logout(); err != nil {
			return err
		}
		fmt.Println("Logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := initDependencies()
		if err != nil {
			return err
		}

		// Pick up permission changes made server-side since last run.
		ctx, cancel := internal.WithTimeout(context.Background(), deps.Config.API.Timeout)
		defer cancel()
		deps.AuthService.Bootstrap(ctx)

		snap := deps.Store.Snapshot()
		if !snap.Authenticated() {
			fmt.Println("Not signed in")
			return nil
		}
		if snap.Identity == nil {
			fmt.Println("Signed in, identity not yet resolved")
			return nil
		}

		fmt.Printf("Name:  %s\n", snap.Identity.Name)
		fmt.Printf("Email: %s\n", snap.Identity.Email)
		if snap.Identity.Role != nil {
			fmt.Printf("Role:  %s (%s)\n", snap.Identity.Role.Name, snap.Identity.Role.Key)
			fmt.Printf("Permissions: %s\n", strings.Join(snap.Identity.Role.Permissions, ", "))
		}
		return nil
	},
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Show the navigation the current session can see",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := initDependencies()
		if err != nil {
			return err
		}

		ctx, cancel := internal.WithTimeout(context.Background(), deps.Config.API.Timeout)
		defer cancel()
		deps.AuthService.Bootstrap(ctx)
		printMenu(deps, menuPath)
		return nil
	},
}

func prompt(label string) string {
	fmt.Print(label)
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "account password")
	menuCmd.Flags().StringVar(&menuPath, "path", "", "active path used to open containing submenus")
}
