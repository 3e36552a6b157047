package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig   `json:"server"`
	Database DatabaseConfig `json:"database"`
	Redis    RedisConfig    `json:"redis"`
	Catalog  CatalogConfig  `json:"catalog"`
	Logging  LoggingConfig  `json:"logging"`
}

// ServerConfig for HTTP server settings
type ServerConfig struct {
	Port           string   `json:"port"`
	ReadTimeout    int      `json:"read_timeout_seconds"`
	WriteTimeout   int      `json:"write_timeout_seconds"`
	RequestTimeout int      `json:"request_timeout_seconds"`
	AllowedOrigins []string `json:"allowed_origins"`
}

// DatabaseConfig for the SQLite catalog store
type DatabaseConfig struct {
	Path string `json:"path"`
}

// RedisConfig for the catalog snapshot cache
type RedisConfig struct {
	Enabled  bool   `json:"enabled"`
	Address  string `json:"address"`
	Password string `json:"password"`
	DB       int    `json:"db"`
}

// CatalogConfig controls how the catalog is loaded and browsed
type CatalogConfig struct {
	RefreshSchedule    string `json:"refresh_schedule"`
	CacheTTLSeconds    int    `json:"cache_ttl_seconds"`
	TimeZone           string `json:"time_zone"`
	SeedFile           string `json:"seed_file"`
	SessionIdleMinutes int    `json:"session_idle_minutes"`
	RefreshTimeoutSecs int    `json:"refresh_timeout_seconds"`
}

// LoggingConfig for zap
type LoggingConfig struct {
	Level  string `json:"level"`
	Format string `json:"format"`
}

// Load reads configuration from file and environment variables.
// A .env file in the working directory is loaded first when present.
// Environment variables override file values using the pattern PLANZ_SECTION_KEY
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	config := &Config{}

	// Load from file if it exists
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err == nil {
			if err := json.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	applyDefaults(config)

	if err := applyEnvOverrides(config); err != nil {
		return nil, err
	}

	return config, nil
}

func applyDefaults(config *Config) {
	if config.Server.Port == "" {
		config.Server.Port = "8080"
	}
	if config.Server.ReadTimeout == 0 {
		config.Server.ReadTimeout = 15
	}
	if config.Server.WriteTimeout == 0 {
		config.Server.WriteTimeout = 15
	}
	if config.Server.RequestTimeout == 0 {
		config.Server.RequestTimeout = 10
	}
	if len(config.Server.AllowedOrigins) == 0 {
		config.Server.AllowedOrigins = []string{"*"}
	}
	if config.Database.Path == "" {
		config.Database.Path = "planz.db"
	}
	if config.Redis.Address == "" {
		config.Redis.Address = "localhost:6379"
	}
	if config.Catalog.RefreshSchedule == "" {
		config.Catalog.RefreshSchedule = "@every 1m"
	}
	if config.Catalog.CacheTTLSeconds == 0 {
		config.Catalog.CacheTTLSeconds = 300
	}
	if config.Catalog.TimeZone == "" {
		config.Catalog.TimeZone = "Local"
	}
	if config.Catalog.SessionIdleMinutes == 0 {
		config.Catalog.SessionIdleMinutes = 30
	}
	if config.Catalog.RefreshTimeoutSecs == 0 {
		config.Catalog.RefreshTimeoutSecs = 30
	}
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
	if config.Logging.Format == "" {
		config.Logging.Format = "json"
	}
}

func applyEnvOverrides(config *Config) error {
	// Server overrides
	if v := os.Getenv("PLANZ_SERVER_PORT"); v != "" {
		config.Server.Port = v
	}
	if v := os.Getenv("PLANZ_SERVER_ALLOWED_ORIGINS"); v != "" {
		config.Server.AllowedOrigins = splitList(v)
	}

	// Storage overrides
	if v := os.Getenv("PLANZ_DATABASE_PATH"); v != "" {
		config.Database.Path = v
	}
	if v := os.Getenv("PLANZ_REDIS_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid PLANZ_REDIS_ENABLED: %w", err)
		}
		config.Redis.Enabled = enabled
	}
	if v := os.Getenv("PLANZ_REDIS_ADDRESS"); v != "" {
		config.Redis.Address = v
	}
	if v := os.Getenv("PLANZ_REDIS_PASSWORD"); v != "" {
		config.Redis.Password = v
	}
	if v := os.Getenv("PLANZ_REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PLANZ_REDIS_DB: %w", err)
		}
		config.Redis.DB = db
	}

	// Catalog overrides
	if v := os.Getenv("PLANZ_CATALOG_REFRESH_SCHEDULE"); v != "" {
		config.Catalog.RefreshSchedule = v
	}
	if v := os.Getenv("PLANZ_CATALOG_TIME_ZONE"); v != "" {
		config.Catalog.TimeZone = v
	}
	if v := os.Getenv("PLANZ_CATALOG_SEED_FILE"); v != "" {
		config.Catalog.SeedFile = v
	}

	// Logging overrides
	if v := os.Getenv("PLANZ_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}
	if v := os.Getenv("PLANZ_LOG_FORMAT"); v != "" {
		config.Logging.Format = v
	}

	return nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Location resolves the catalog time zone used for day boundaries.
func (c *CatalogConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog time zone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func (c *CatalogConfig) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

func (c *CatalogConfig) SessionIdle() time.Duration {
	return time.Duration(c.SessionIdleMinutes) * time.Minute
}

func (c *CatalogConfig) RefreshTimeout() time.Duration {
	return time.Duration(c.RefreshTimeoutSecs) * time.Second
}

// Validate checks if required configurations are present and well formed
func (c *Config) Validate() error {
	var problems []string

	if c.Server.Port == "" {
		problems = append(problems, "server.port")
	}
	if c.Database.Path == "" {
		problems = append(problems, "database.path")
	}
	if c.Redis.Enabled && c.Redis.Address == "" {
		problems = append(problems, "redis.address")
	}
	if _, err := cron.ParseStandard(c.Catalog.RefreshSchedule); err != nil {
		problems = append(problems, "catalog.refresh_schedule")
	}
	if _, err := c.Catalog.Location(); err != nil {
		problems = append(problems, "catalog.time_zone")
	}
	if c.Catalog.CacheTTLSeconds < 0 {
		problems = append(problems, "catalog.cache_ttl_seconds")
	}

	if len(problems) > 0 {
		return fmt.Errorf("missing or invalid configuration: %s", strings.Join(problems, ", "))
	}

	return nil
}
