package config

import (
	"fmt"
	"strings"
	"time"

	apperrors "allocation-engine-backend/internal/errors"

	"github.com/spf13/viper"
)

// Allocation backends
const (
	BackendLocal  = "local"
	BackendRemote = "remote"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Allocation engine configuration
	AllocationBackend          string `mapstructure:"ALLOCATION_BACKEND"`
	AllocationServiceURL       string `mapstructure:"ALLOCATION_SERVICE_URL"`
	AllocationRequestTimeout   int    `mapstructure:"ALLOCATION_REQUEST_TIMEOUT_SEC"`
	AllocationMaxFailureMsgs   int    `mapstructure:"ALLOCATION_MAX_FAILURE_MESSAGES"`
	SelectionTruncate          bool   `mapstructure:"SELECTION_TRUNCATE"`
	SelectionSessionTTLMinutes int    `mapstructure:"SELECTION_SESSION_TTL_MIN"`

	// Event publishing
	NATSURL           string `mapstructure:"NATS_URL"`
	NATSSubjectPrefix string `mapstructure:"NATS_SUBJECT_PREFIX"`

	// Metrics
	MetricsEnabled bool `mapstructure:"METRICS_ENABLED"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Set default values
	setDefaults(v)

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}
	config.AllocationBackend = strings.ToLower(strings.TrimSpace(config.AllocationBackend))
	config.AllocationServiceURL = strings.TrimRight(config.AllocationServiceURL, "/")

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "7010")
	v.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "allocation_engine")
	v.SetDefault("DB_SSL_MODE", "disable")

	// CORS defaults
	v.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	// Allocation defaults
	v.SetDefault("ALLOCATION_BACKEND", BackendLocal)
	v.SetDefault("ALLOCATION_SERVICE_URL", "")
	v.SetDefault("ALLOCATION_REQUEST_TIMEOUT_SEC", 30)
	v.SetDefault("ALLOCATION_MAX_FAILURE_MESSAGES", 5)
	v.SetDefault("SELECTION_TRUNCATE", true)
	v.SetDefault("SELECTION_SESSION_TTL_MIN", 30)

	// Events: empty URL disables publishing
	v.SetDefault("NATS_URL", "")
	v.SetDefault("NATS_SUBJECT_PREFIX", "allocation")

	v.SetDefault("METRICS_ENABLED", true)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	switch config.AllocationBackend {
	case BackendLocal:
	case BackendRemote:
		if config.AllocationServiceURL == "" {
			return apperrors.ErrAllocationServiceURLMissing
		}
	default:
		return apperrors.NewConfigurationError(fmt.Sprintf("unknown ALLOCATION_BACKEND %q", config.AllocationBackend))
	}

	if config.AllocationRequestTimeout <= 0 {
		return apperrors.NewConfigurationError("ALLOCATION_REQUEST_TIMEOUT_SEC must be positive")
	}
	if config.AllocationMaxFailureMsgs < 0 {
		return apperrors.NewConfigurationError("ALLOCATION_MAX_FAILURE_MESSAGES must not be negative")
	}
	if config.SelectionSessionTTLMinutes <= 0 {
		return apperrors.NewConfigurationError("SELECTION_SESSION_TTL_MIN must be positive")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// RequestTimeout is the per-request timeout of the allocation service
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.AllocationRequestTimeout) * time.Second
}

// SessionTTL is the idle timeout of selection sessions
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SelectionSessionTTLMinutes) * time.Minute
}

// StrictSelection reports whether cardinality violations are rejected
func (c *Config) StrictSelection() bool {
	return !c.SelectionTruncate
}

// EventsEnabled reports whether allocation events are published
func (c *Config) EventsEnabled() bool {
	return c.NATSURL != ""
}
