package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/chaimictalks/news-admin/internal"
	"github.com/chaimictalks/news-admin/internal/auth"
	"github.com/chaimictalks/news-admin/internal/backend"
	"github.com/chaimictalks/news-admin/internal/core/events"
	"github.com/chaimictalks/news-admin/internal/session"
	"github.com/chaimictalks/news-admin/internal/session/sqlite"
	"github.com/chaimictalks/news-admin/pkg/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "news-admin",
	Short: "News platform admin console",
	Long:  `Administration console for the news platform: session management, permission-gated navigation and CRUD over the platform API.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*internal.Config, error) {
	if os.Getenv("APP_ENV") == "production" || os.Getenv("DOCKER_ENV") == "true" {
		cfg := internal.LoadConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("error validating config from environment: %w", err)
		}
		return cfg, nil
	}

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.SetEnvPrefix("ENV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// No config file is fine for a CLI tool; fall back to env defaults.
		cfg := internal.LoadConfigFromEnv()
		if verr := cfg.Validate(); verr != nil {
			return nil, fmt.Errorf("error validating default config: %w", verr)
		}
		return cfg, nil
	}

	var cfg internal.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("error validating config: %w", err)
	}

	return &cfg, nil
}

// Dependencies is the wired console core shared by every subcommand.
type Dependencies struct {
	Config      *internal.Config
	Storage     *sqlite.Storage
	Store       *session.Store
	Bus         *events.EventBus
	Backend     *backend.Client
	AuthService *auth.Service
	Guard       *auth.Guard
	Logger      *slog.Logger
}

// initDependencies loads config, opens the state database and hydrates the
// session synchronously. Bootstrap is left to the caller: the gateway runs
// it in the background, CLI commands run it inline when they need fresh
// permissions.
func initDependencies() (*Dependencies, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}

	logger.Init(cfg.Observability.Logging.Level, cfg.Observability.Logging.Format)
	lg := logger.LoggerWrapper()

	storage, err := sqlite.Open(cfg.State.Path)
	if err != nil {
		return nil, internal.NewInternalError("failed to open session state database", err)
	}

	bus := events.NewEventBus(lg)
	store := session.NewStore(storage, bus, lg)
	if err := store.Hydrate(); err != nil {
		return nil, err
	}

	client := backend.NewClient(backend.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
	}, store, lg)

	return &Dependencies{
		Config:      cfg,
		Storage:     storage,
		Store:       store,
		Bus:         bus,
		Backend:     client,
		AuthService: auth.NewService(store, client, lg),
		Guard:       auth.NewGuard(store),
		Logger:      lg,
	}, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", ".", "directory containing config.yml")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(rolesCmd)
	rootCmd.AddCommand(newsCmd)
}
