// Package config manages environment-driven configuration.
//
// It reads variables (optionally from a `.env` file), maps them into
// structured Go types via koanf, and validates that required values are
// present so the application fails fast on bad or missing config.
//
// Env vars use the FOCUSFLOW_ prefix with "." as the nesting delimiter:
//
//	FOCUSFLOW_SERVER.PORT -> server.port -> Config.Server.Port
package config

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads a `.env` file into the process environment
	// before any env vars are read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

// Config is the root configuration object for the application.
//
// Observability is a pointer because it is optional; defaults are injected
// when the block is absent.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis" validate:"required"`
	Mail          MailConfig           `koanf:"mail"`
	Auth          AuthConfig           `koanf:"auth"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are seconds. BodyLimit is an echo body-limit expression ("10K").
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
	BodyLimit          string   `koanf:"body_limit"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// RedisConfig contains Redis connection details ("host:port").
// Redis backs the background email queue.
type RedisConfig struct {
	Address string `koanf:"address" validate:"required"`
}

// MailConfig configures outbound transactional email.
//
// An empty APIKey disables sending entirely: the mail client logs and
// returns nil, so requests never fail because email is unconfigured.
type MailConfig struct {
	ResendAPIKey     string `koanf:"resend_api_key"`
	FromName         string `koanf:"from_name"`
	FromAddress      string `koanf:"from_address"`
	ContactRecipient string `koanf:"contact_recipient"`
	FrontendURL      string `koanf:"frontend_url"`
}

// AuthConfig gates the contact listing endpoint.
//
// The listing had no authorization in the system this replaces; that gap is
// surfaced here as configuration rather than hard-coded open. When
// AdminAPIKey is empty the listing stays open; when set, requests must send
// it in the X-Admin-Key header.
type AuthConfig struct {
	AdminAPIKey string `koanf:"admin_api_key"`
}

// loadConfig loads configuration from environment variables, unmarshals it
// into Config, validates it, and applies observability defaults.
func loadConfig() (*Config, error) {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	k := koanf.New(".")

	err := k.Load(env.Provider("FOCUSFLOW_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "FOCUSFLOW_"))
	}), nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("Could not load initial env variables.")
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Fatal().Err(err).Msg("Could not unmarshal main config.")
	}

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Fatal().Err(err).Msg("Config validation failed.")
	}

	if mainConfig.Server.BodyLimit == "" {
		// Request bodies are capped before they reach any handler.
		mainConfig.Server.BodyLimit = "10K"
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Service name and environment are forced so telemetry stays consistent
	// regardless of what was configured.
	mainConfig.Observability.ServiceName = "focusflow-api"
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid observability config")
	}

	return mainConfig, nil
}

// Load returns the fully validated application configuration.
func Load() (*Config, error) {
	return loadConfig()
}
