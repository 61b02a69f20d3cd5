package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `env:"PORT" envDefault:"8080"`
	APIKey      string `env:"API_KEY"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	Version     string `env:"VERSION" envDefault:"dev"`

	// Comma-separated peers whose X-Forwarded-For is honored
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	LogDir    string `env:"LOG_DIR" envDefault:"logs"`

	DBDriver      string `env:"DB_DRIVER" envDefault:"postgres"`
	DBUser        string `env:"DB_USER" envDefault:"postgres"`
	DBPassword    string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBHost        string `env:"DB_HOST" envDefault:"localhost"`
	DBPort        string `env:"DB_PORT" envDefault:"5432"`
	DBName        string `env:"DB_NAME" envDefault:"textrealm"`
	DBMaxConns    int    `env:"DB_MAX_CONNS" envDefault:"20"`
	DBMinConns    int    `env:"DB_MIN_CONNS" envDefault:"2"`
	SQLitePath    string `env:"SQLITE_PATH" envDefault:"data/textrealm.db"`
	RunMigrations bool   `env:"RUN_MIGRATIONS" envDefault:"true"`

	// Timezone decides where the calendar day rolls over for daily gates.
	Timezone    string `env:"GAME_TIMEZONE" envDefault:"UTC"`
	CatalogPath string `env:"CATALOG_PATH"`

	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`

	LeaderboardCacheTTL  time.Duration `env:"LEADERBOARD_CACHE_TTL" envDefault:"30s"`
	LeaderboardCacheSize int           `env:"LEADERBOARD_CACHE_SIZE" envDefault:"64"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	cfg.DBDriver = strings.ToLower(cfg.DBDriver)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that env parsing cannot.
func (c *Config) Validate() error {
	var errs []error
	if c.APIKey == "" {
		errs = append(errs, errors.New("API_KEY environment variable must be set for security"))
	}
	if c.Port < minPort || c.Port > maxPort {
		errs = append(errs, fmt.Errorf("invalid PORT value %d", c.Port))
	}
	switch c.DBDriver {
	case DriverPostgres:
		if c.DBMaxConns < 1 || c.DBMinConns < 0 || c.DBMinConns > c.DBMaxConns {
			errs = append(errs, fmt.Errorf("invalid pool sizes min=%d max=%d", c.DBMinConns, c.DBMaxConns))
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			errs = append(errs, errors.New("SQLITE_PATH must be set for the sqlite driver"))
		}
	case DriverMemory:
	default:
		errs = append(errs, fmt.Errorf("unknown DB_DRIVER %q", c.DBDriver))
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("invalid GAME_TIMEZONE %q: %w", c.Timezone, err))
	}
	if c.LeaderboardCacheSize < 1 {
		errs = append(errs, fmt.Errorf("invalid LEADERBOARD_CACHE_SIZE %d", c.LeaderboardCacheSize))
	}
	return errors.Join(errs...)
}

// Warnings lists insecure settings that are accepted but should be fixed.
func (c *Config) Warnings() []string {
	var warnings []string
	if c.DBPassword == ExampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}
	if c.APIKey == ExampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}
	return warnings
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
