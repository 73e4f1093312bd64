package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Supported values for DB_TYPE after alias resolution.
const (
	DBTypePostgres = "postgres"
	DBTypeSQLite   = "sqlite"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	App      AppConfig
}

type ServerConfig struct {
	Port           string
	RequestTimeout time.Duration
}

// DatabaseConfig selects one backend and sizes its pool.
type DatabaseConfig struct {
	Type     string
	Postgres PostgresConfig
	SQLite   SQLiteConfig
	Pool     PoolConfig
}

type PostgresConfig struct {
	URL      string
	User     string
	Password string
	AutoInit bool
}

type SQLiteConfig struct {
	Path        string
	AutoInit    bool
	BusyTimeout time.Duration
}

// PoolConfig mirrors the sizing knobs of the connection pool.
type PoolConfig struct {
	MaxOpenConns       int
	MinIdleConns       int
	ConnectionTimeout  time.Duration
	IdleTimeout        time.Duration
	MaxLifetime        time.Duration
	StatementCacheSize int
}

// AuthConfig enables bearer-token verification when IssuerURL is set.
type AuthConfig struct {
	IssuerURL string
	ClientID  string
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
}

// Enabled reports whether OIDC verification is configured.
func (a AuthConfig) Enabled() bool {
	return a.IssuerURL != ""
}

// AutoInit returns the auto-init flag of the selected backend.
func (d DatabaseConfig) AutoInit() bool {
	if d.Type == DBTypeSQLite {
		return d.SQLite.AutoInit
	}
	return d.Postgres.AutoInit
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			RequestTimeout: getEnvAsDuration("REQUEST_TIMEOUT", 60*time.Second),
		},
		Database: DatabaseConfig{
			Type: NormalizeDBType(getEnv("DB_TYPE", DBTypePostgres)),
			Postgres: PostgresConfig{
				URL:      getEnv("POSTGRES_URL", ""),
				User:     getEnv("POSTGRES_USER", ""),
				Password: getEnv("POSTGRES_PASSWORD", ""),
				AutoInit: getEnvAsBool("POSTGRES_AUTO_INIT", false),
			},
			SQLite: SQLiteConfig{
				Path:        getEnv("SQLITE_PATH", "./data/ptlog.db"),
				AutoInit:    getEnvAsBool("SQLITE_AUTO_INIT", true),
				BusyTimeout: getEnvAsDuration("SQLITE_BUSY_TIMEOUT", 5*time.Second),
			},
			Pool: PoolConfig{
				MaxOpenConns:       getEnvAsInt("DB_MAX_POOL_SIZE", 10),
				MinIdleConns:       getEnvAsInt("DB_MIN_IDLE", 2),
				ConnectionTimeout:  getEnvAsDuration("DB_CONNECTION_TIMEOUT", 30*time.Second),
				IdleTimeout:        getEnvAsDuration("DB_IDLE_TIMEOUT", 10*time.Minute),
				MaxLifetime:        getEnvAsDuration("DB_MAX_LIFETIME", 30*time.Minute),
				StatementCacheSize: getEnvAsInt("DB_STATEMENT_CACHE_SIZE", 250),
			},
		},
		Auth: AuthConfig{
			IssuerURL: getEnv("OIDC_ISSUER_URL", ""),
			ClientID:  getEnv("OIDC_CLIENT_ID", ""),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	switch c.Database.Type {
	case DBTypePostgres:
		if c.Database.Postgres.URL == "" {
			return fmt.Errorf("POSTGRES_URL is required when DB_TYPE=%s", DBTypePostgres)
		}
	case DBTypeSQLite:
		if c.Database.SQLite.Path == "" {
			return fmt.Errorf("SQLITE_PATH is required when DB_TYPE=%s", DBTypeSQLite)
		}
	default:
		return fmt.Errorf("unsupported DB_TYPE %q (want %s or %s)", c.Database.Type, DBTypePostgres, DBTypeSQLite)
	}

	if c.Database.Pool.MaxOpenConns <= 0 {
		return fmt.Errorf("DB_MAX_POOL_SIZE must be positive")
	}
	if c.Database.Pool.MinIdleConns < 0 || c.Database.Pool.MinIdleConns > c.Database.Pool.MaxOpenConns {
		return fmt.Errorf("DB_MIN_IDLE must be between 0 and DB_MAX_POOL_SIZE")
	}
	if c.Database.Pool.ConnectionTimeout <= 0 {
		return fmt.Errorf("DB_CONNECTION_TIMEOUT must be positive")
	}

	if c.Auth.Enabled() && c.Auth.ClientID == "" {
		return fmt.Errorf("OIDC_CLIENT_ID is required when OIDC_ISSUER_URL is set")
	}

	return nil
}

// NormalizeDBType maps legacy backend names onto the supported ones.
// Unknown values are returned lower-cased so Validate can report them.
func NormalizeDBType(v string) string {
	switch t := strings.ToLower(strings.TrimSpace(v)); t {
	case "postgres", "postgresql", "pg", "oracle":
		return DBTypePostgres
	case "sqlite", "sqlite3", "h2":
		return DBTypeSQLite
	default:
		return t
	}
}

// ParseLogLevel maps LOG_LEVEL onto a slog level, defaulting to info.
func ParseLogLevel(v string) slog.Level {
	switch strings.ToLower(v) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		slog.Warn("invalid integer, using default", "key", key, "default", defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		slog.Warn("invalid boolean, using default", "key", key, "default", defaultValue)
		return defaultValue
	}

	return value
}

// getEnvAsDuration accepts Go durations ("30s") or plain milliseconds ("30000").
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	if ms, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return time.Duration(ms) * time.Millisecond
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		slog.Warn("invalid duration, using default", "key", key, "default", defaultValue)
		return defaultValue
	}

	return value
}
