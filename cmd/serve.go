package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/chaimictalks/news-admin/internal/auth"
	"github.com/chaimictalks/news-admin/internal/nav"
	"github.com/chaimictalks/news-admin/internal/news"
	"github.com/chaimictalks/news-admin/internal/roles"
	"github.com/chaimictalks/news-admin/internal/transport/rest"
	"github.com/chaimictalks/news-admin/internal/users"
	"github.com/go-chi/chi"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the local console gateway",
	Long:  `Serve the console shell over HTTP: session endpoints, the composed menu and the guarded page-data routes.`,
	Run: func(cmd *cobra.Command, args []string) {
		startGateway()
	},
}

func startGateway() {
	deps, err := initDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	// Hydrate already ran; reconcile the cached identity in the background
	// so the first requests render from the optimistic copy.
	go deps.AuthService.Bootstrap(context.Background())

	stateDB, err := deps.Storage.SQLDB()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to access state database: %v\n", err)
		os.Exit(1)
	}

	authHandler := auth.NewHandler(deps.AuthService, deps.Store)
	navHandler := nav.NewHandler(nav.NewComposer(deps.Guard, nil))
	userHandler := users.NewHandler(users.NewService(deps.Backend, deps.Logger))
	roleHandler := roles.NewHandler(roles.NewService(deps.Backend, deps.AuthService, deps.Logger))
	newsHandler := news.NewHandler(news.NewService(deps.Backend, deps.Logger))

	router := chi.NewRouter()
	rest.RegisterAllRoutes(router, rest.RouteDeps{
		StateDB:     stateDB,
		Sessions:    deps.Store,
		LoginPath:   deps.Config.Gateway.LoginPath,
		AuthHandler: authHandler,
		NavHandler:  navHandler,
		UserHandler: userHandler,
		RoleHandler: roleHandler,
		NewsHandler: newsHandler,
		Logger:      deps.Logger,
	})

	addr := fmt.Sprintf(":%d", deps.Config.Gateway.Port)
	deps.Logger.Info("starting console gateway", "address", addr, "backend", deps.Config.API.BaseURL)

	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: deps.Config.Gateway.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Gateway.ReadTimeout,
		WriteTimeout:      deps.Config.Gateway.WriteTimeout,
		IdleTimeout:       deps.Config.Gateway.IdleTimeout,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("gateway failed", "error", err)
			os.Exit(1)
		}
	}()

	<-done
	deps.Logger.Info("shutting down console gateway")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		deps.Logger.Error("graceful shutdown failed", "error", err)
	}
}
