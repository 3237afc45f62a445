package config

import (
	"fmt"
	"os"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// APIServerConfig represents the swap offer API server configuration
type APIServerConfig struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Logging   LoggingConfig   `yaml:"logging"`
	Auth      AuthConfig      `yaml:"auth"`
	Offers    OffersConfig    `yaml:"offers"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `yaml:"host" default:"0.0.0.0"`
	Port              int           `yaml:"port" default:"8081" validate:"gt=0,lt=65536"`
	ReadTimeout       time.Duration `yaml:"read_timeout" default:"15s"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout" default:"5s"`
	WriteTimeout      time.Duration `yaml:"write_timeout" default:"15s"`
	IdleTimeout       time.Duration `yaml:"idle_timeout" default:"60s"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout" default:"30s" validate:"gt=0"`
	RequestTimeout    time.Duration `yaml:"request_timeout" default:"60s" validate:"gt=0"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host" default:"localhost" validate:"required"`
	Port     int    `yaml:"port" default:"5432" validate:"gt=0,lt=65536"`
	User     string `yaml:"user" validate:"required"`
	Password string `yaml:"password"`
	Database string `yaml:"database" default:"swap_offers" validate:"required"`
	SSLMode  string `yaml:"ssl_mode" default:"disable" validate:"oneof=disable require verify-ca verify-full"`
	MaxConns int    `yaml:"max_conns" default:"20" validate:"gte=0"`
}

// LoggingConfig contains logging settings. An OutputPath other than stdout
// or stderr is a file rotated by size.
type LoggingConfig struct {
	Level      string `yaml:"level" default:"info"`
	Format     string `yaml:"format" default:"json" validate:"oneof=json console"`
	OutputPath string `yaml:"output_path" default:"stdout"`
	MaxSizeMB  int    `yaml:"max_size_mb" default:"100" validate:"gt=0"`
	MaxBackups int    `yaml:"max_backups" default:"5" validate:"gte=0"`
	MaxAgeDays int    `yaml:"max_age_days" default:"14" validate:"gte=0"`
}

// AuthConfig controls how the caller wallet is established for a request.
// With JWKSURL set, a bearer JWT is required and the wallet comes from
// WalletClaim. Otherwise WalletHeader is trusted as-is.
type AuthConfig struct {
	JWKSURL      string `yaml:"jwks_url" validate:"omitempty,url"`
	Issuer       string `yaml:"issuer"`
	WalletClaim  string `yaml:"wallet_claim" default:"wallet_address" validate:"required"`
	WalletHeader string `yaml:"wallet_header" default:"X-Wallet-Address" validate:"required"`
}

// OffersConfig contains offer lifecycle settings
type OffersConfig struct {
	FallbackPolicy string `yaml:"fallback_policy" default:"participants" validate:"oneof=participants open disabled"`
}

// RateLimitConfig contains per-caller rate limiting settings
type RateLimitConfig struct {
	Enabled           bool          `yaml:"enabled" default:"true"`
	RequestsPerMinute float64       `yaml:"requests_per_minute" default:"120" validate:"gt=0"`
	Burst             int           `yaml:"burst" default:"20" validate:"gt=0"`
	IdleTTL           time.Duration `yaml:"idle_ttl" default:"10m"`
}

// CatalogConfig points at the optional reference data seed file
type CatalogConfig struct {
	SeedFile string `yaml:"seed_file"`
}

// MetricsConfig contains prometheus exposition settings
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" default:"true"`
	Path    string `yaml:"path" default:"/metrics" validate:"startswith=/"`
}

// GetConnectionString returns a PostgreSQL DSN for the database config
func (c *DatabaseConfig) GetConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Database, c.SSLMode)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadAPIServer loads API server configuration from file.
// ${VAR} references in the file are expanded from the environment before parsing.
func LoadAPIServer(configPath string) (*APIServerConfig, error) {
	raw, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseAPIServer(raw)
}

// ParseAPIServer parses, defaults and validates a YAML document.
func ParseAPIServer(raw []byte) (*APIServerConfig, error) {
	var cfg APIServerConfig
	if err := defaults.Set(&cfg); err != nil {
		return nil, fmt.Errorf("failed to apply defaults: %w", err)
	}

	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(raw))), &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
