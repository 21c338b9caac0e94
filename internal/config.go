package internal

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	API           APIConfig           `mapstructure:"api"`
	Gateway       GatewayConfig       `mapstructure:"gateway"`
	State         StateConfig         `mapstructure:"state"`
	Observability ObservabilityConfig `mapstructure:"observability"`
}

// APIConfig points at the news-platform REST backend.
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// GatewayConfig controls the local console gateway started by `serve`.
type GatewayConfig struct {
	Port              int           `mapstructure:"port"`
	LoginPath         string        `mapstructure:"login_path"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	ReadTimeout       time.Duration `mapstructure:"read_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
}

// StateConfig locates the durable session state database.
type StateConfig struct {
	Path string `mapstructure:"path"`
}

type ObservabilityConfig struct {
	Logging LoggingConfig `mapstructure:"logging"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ----------------- HELPERS -----------------

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultVal
}

// LoadConfigFromEnv builds a Config purely from environment variables,
// used when no config file is available (containerized deployments).
func LoadConfigFromEnv() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: getEnv("NEWS_API_BASE_URL", "http://localhost:5000/api"),
			Timeout: getEnvAsDuration("NEWS_API_TIMEOUT", 10*time.Second),
		},
		Gateway: GatewayConfig{
			Port:              getEnvAsInt("GATEWAY_PORT", 4000),
			LoginPath:         getEnv("GATEWAY_LOGIN_PATH", "/login"),
			ReadHeaderTimeout: getEnvAsDuration("GATEWAY_READ_HEADER_TIMEOUT", 5*time.Second),
			ReadTimeout:       getEnvAsDuration("GATEWAY_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:      getEnvAsDuration("GATEWAY_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:       getEnvAsDuration("GATEWAY_IDLE_TIMEOUT", 60*time.Second),
		},
		State: StateConfig{
			Path: getEnv("STATE_DB_PATH", defaultStatePath()),
		},
		Observability: ObservabilityConfig{
			Logging: LoggingConfig{
				Level:  getEnv("LOG_LEVEL", "info"),
				Format: getEnv("LOG_FORMAT", "text"),
			},
		},
	}
}

func defaultStatePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "news-admin-state.db"
	}
	return home + string(os.PathSeparator) + ".news-admin" + string(os.PathSeparator) + "state.db"
}

// ----------------- VALIDATION -----------------

func (c *Config) Validate() error {
	var errs []string

	if err := c.API.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("api config: %v", err))
	}

	if err := c.Gateway.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("gateway config: %v", err))
	}

	if err := c.State.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("state config: %v", err))
	}

	if err := c.Observability.Logging.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("logging config: %v", err))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func (a *APIConfig) Validate() error {
	if a.BaseURL == "" {
		return errors.New("base_url is required")
	}
	if _, err := url.ParseRequestURI(a.BaseURL); err != nil {
		return fmt.Errorf("base_url is not a valid URL: %w", err)
	}
	if a.Timeout <= 0 {
		a.Timeout = 10 * time.Second
	}
	return nil
}

func (g *GatewayConfig) Validate() error {
	if g.Port <= 0 || g.Port > 65535 {
		return fmt.Errorf("port %d is out of range", g.Port)
	}
	if g.LoginPath == "" {
		g.LoginPath = "/login"
	}
	if !strings.HasPrefix(g.LoginPath, "/") {
		return fmt.Errorf("login_path %q must start with /", g.LoginPath)
	}
	return nil
}

func (s *StateConfig) Validate() error {
	if s.Path == "" {
		return errors.New("path is required")
	}
	return nil
}

func (l *LoggingConfig) Validate() error {
	switch strings.ToLower(l.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", l.Level)
	}
	switch strings.ToLower(l.Format) {
	case "", "json", "text":
	default:
		return fmt.Errorf("unknown log format %q", l.Format)
	}
	return nil
}
