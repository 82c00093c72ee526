package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Supported db.driver values.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config is the full application configuration, loaded from
// configs/config.yml with environment variable overrides
// (dots become underscores: db.dsn -> DB_DSN, session.secret -> SESSION_SECRET).
type Config struct {
	Port     string
	LogLevel string
	DB       DBConfig
	Session  SessionConfig
}

// DBConfig selects and parameterizes the credential store.
type DBConfig struct {
	Driver       string
	DSN          string        // postgres connection string
	Path         string        // sqlite file path
	QueryTimeout time.Duration // per-query deadline imposed by services
}

// SessionConfig holds the cookie-signing secret and the inactivity window.
type SessionConfig struct {
	Secret string
	TTL    time.Duration
}

var (
	ErrMissingSecret = errors.New("session.secret is required (SESSION_SECRET)")
	ErrMissingDSN    = errors.New("db.dsn is required for the postgres driver (DB_DSN)")
	ErrMissingPath   = errors.New("db.path is required for the sqlite driver (DB_PATH)")
)

// Load reads configs/config.yml (if present), applies environment
// overrides and defaults, and validates the result. Secrets and store
// parameters have no insecure fallbacks: a missing required value is an
// error so the process fails before binding a listener.
func Load(configPaths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yml")
	if len(configPaths) == 0 {
		configPaths = []string{"configs"}
	}
	for _, p := range configPaths {
		v.AddConfigPath(p)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", "5000")
	v.SetDefault("log.level", "info")
	v.SetDefault("db.driver", DriverPostgres)
	v.SetDefault("db.query_timeout", "5s")
	v.SetDefault("session.ttl", "1h")

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine (pure-env deployments); a malformed one is not.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Port:     v.GetString("port"),
		LogLevel: v.GetString("log.level"),
		DB: DBConfig{
			Driver:       v.GetString("db.driver"),
			DSN:          v.GetString("db.dsn"),
			Path:         v.GetString("db.path"),
			QueryTimeout: v.GetDuration("db.query_timeout"),
		},
		Session: SessionConfig{
			Secret: v.GetString("session.secret"),
			TTL:    v.GetDuration("session.ttl"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Session.Secret == "" {
		return ErrMissingSecret
	}
	switch c.DB.Driver {
	case DriverPostgres:
		if c.DB.DSN == "" {
			return ErrMissingDSN
		}
	case DriverSQLite:
		if c.DB.Path == "" {
			return ErrMissingPath
		}
	default:
		return fmt.Errorf("unknown db.driver %q", c.DB.Driver)
	}
	if c.DB.QueryTimeout <= 0 {
		return fmt.Errorf("db.query_timeout must be positive, got %s", c.DB.QueryTimeout)
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("session.ttl must be positive, got %s", c.Session.TTL)
	}
	return nil
}
