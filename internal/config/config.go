// Package config provides configuration loading and validation for the site generator.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. SITEGEN_PORT
const EnvPrefix = "SITEGEN"

// Copy strategies
const (
	CopyStrategyTemplate = "template"
	CopyStrategyLLM      = "llm"
)

// Store drivers
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

// Config is the runtime configuration of the CLI and HTTP server.
// Values come from an optional JSON or YAML file, then SITEGEN_ environment overrides.
type Config struct {
	// Server
	Port      int    `mapstructure:"port" json:"port,omitempty"`
	LogLevel  string `mapstructure:"log_level" json:"log_level,omitempty"`
	LogFormat string `mapstructure:"log_format" json:"log_format,omitempty"` // json or console

	// Generation
	CopyStrategy      string   `mapstructure:"copy_strategy" json:"copy_strategy,omitempty"` // template or llm
	APIKey            string   `mapstructure:"api_key" json:"api_key,omitempty"`             // Gemini API key
	Model             string   `mapstructure:"model" json:"model,omitempty"`                 // overrides the standard tier model
	Personality       []string `mapstructure:"personality" json:"personality,omitempty"`
	LLMTimeoutSeconds int      `mapstructure:"llm_timeout_seconds" json:"llm_timeout_seconds,omitempty"`

	// Persistence
	Store         string `mapstructure:"store" json:"store,omitempty"` // memory, postgres or redis
	DatabaseURL   string `mapstructure:"database_url" json:"database_url,omitempty"`
	RedisAddr     string `mapstructure:"redis_addr" json:"redis_addr,omitempty"`
	RedisPassword string `mapstructure:"redis_password" json:"redis_password,omitempty"`
	RedisDB       int    `mapstructure:"redis_db" json:"redis_db,omitempty"`
	SiteTTLHours  int    `mapstructure:"site_ttl_hours" json:"site_ttl_hours,omitempty"` // 0 keeps sites forever
}

// Defaults returns the configuration used when nothing is set
func Defaults() Config {
	return Config{
		Port:              8080,
		LogLevel:          "info",
		LogFormat:         "console",
		CopyStrategy:      CopyStrategyTemplate,
		LLMTimeoutSeconds: 30,
		Store:             StoreMemory,
		RedisAddr:         "localhost:6379",
	}
}

// LoadConfig loads configuration from path and the environment.
// An empty path loads defaults plus environment overrides only.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only applies to keys viper already knows
	defaults := Defaults()
	v.SetDefault("port", defaults.Port)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("log_format", defaults.LogFormat)
	v.SetDefault("copy_strategy", defaults.CopyStrategy)
	v.SetDefault("api_key", "")
	v.SetDefault("model", "")
	v.SetDefault("personality", []string{})
	v.SetDefault("llm_timeout_seconds", defaults.LLMTimeoutSeconds)
	v.SetDefault("store", defaults.Store)
	v.SetDefault("database_url", "")
	v.SetDefault("redis_addr", defaults.RedisAddr)
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)
	v.SetDefault("site_ttl_hours", 0)

	// Unprefixed names shared with the rest of the tooling
	if err := v.BindEnv("api_key", EnvPrefix+"_API_KEY", "GEMINI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind api_key: %w", err)
	}
	if err := v.BindEnv("database_url", EnvPrefix+"_DATABASE_URL", "DATABASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind database_url: %w", err)
	}

	if path != "" {
		// Resolve path relative to current directory if not absolute
		if !filepath.IsAbs(path) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("failed to get current directory: %w", err)
			}
			path = filepath.Join(cwd, path)
		}
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var parseErr viper.ConfigParseError
			if errors.As(err, &parseErr) {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// Validate checks that the configuration has valid values
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535, got %d", c.Port)
	}

	switch c.LogFormat {
	case "", "json", "console":
	default:
		return fmt.Errorf("config error: 'log_format' must be json or console, got %q", c.LogFormat)
	}

	switch c.CopyStrategy {
	case "", CopyStrategyTemplate:
	case CopyStrategyLLM:
		if c.APIKey == "" {
			return fmt.Errorf("config error: 'api_key' is required for the llm copy strategy")
		}
	default:
		return fmt.Errorf("config error: unknown 'copy_strategy' %q", c.CopyStrategy)
	}

	switch c.Store {
	case "", StoreMemory:
	case StorePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("config error: 'database_url' is required for the postgres store")
		}
	case StoreRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("config error: 'redis_addr' is required for the redis store")
		}
	default:
		return fmt.Errorf("config error: unknown 'store' %q", c.Store)
	}

	// Validate numeric ranges
	if c.SiteTTLHours < 0 {
		return fmt.Errorf("config error: 'site_ttl_hours' must be non-negative")
	}
	if c.LLMTimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'llm_timeout_seconds' must be non-negative")
	}
	if c.RedisDB < 0 {
		return fmt.Errorf("config error: 'redis_db' must be non-negative")
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}
	if result.CopyStrategy == "" {
		result.CopyStrategy = defaults.CopyStrategy
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.Store == "" {
		result.Store = defaults.Store
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.RedisAddr == "" {
		result.RedisAddr = defaults.RedisAddr
	}
	if result.RedisPassword == "" {
		result.RedisPassword = defaults.RedisPassword
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.LLMTimeoutSeconds == 0 {
		result.LLMTimeoutSeconds = defaults.LLMTimeoutSeconds
	}
	if result.SiteTTLHours == 0 {
		result.SiteTTLHours = defaults.SiteTTLHours
	}
	if result.RedisDB == 0 {
		result.RedisDB = defaults.RedisDB
	}

	// Slices
	if len(result.Personality) == 0 {
		result.Personality = append([]string(nil), defaults.Personality...)
	}

	return result
}

// SiteTTL is the expiry applied to stored sites; zero means no expiry
func (c *Config) SiteTTL() time.Duration {
	return time.Duration(c.SiteTTLHours) * time.Hour
}

// LLMTimeout bounds a single model request
func (c *Config) LLMTimeout() time.Duration {
	return time.Duration(c.LLMTimeoutSeconds) * time.Second
}

// Addr is the listen address of the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
