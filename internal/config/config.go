// Package config provides configuration loading and validation for the
// profile site.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Log formats.
const (
	LogFormatJSON    = "json"
	LogFormatConsole = "console"
)

// Config is the service configuration. A config file (JSON or YAML) may
// supply values, environment variables override them, and anything still
// empty falls back to Defaults.
type Config struct {
	DatabaseURL          string `json:"database_url,omitempty" yaml:"database_url,omitempty" env:"DATABASE_URL"` // empty selects the in-memory store
	Port                 int    `json:"port,omitempty" yaml:"port,omitempty" env:"PORT"`
	LogLevel             string `json:"log_level,omitempty" yaml:"log_level,omitempty" env:"LOG_LEVEL"`
	LogFormat            string `json:"log_format,omitempty" yaml:"log_format,omitempty" env:"LOG_FORMAT"`
	SkipSchemaValidation bool   `json:"skip_schema_validation,omitempty" yaml:"skip_schema_validation,omitempty" env:"SKIP_SCHEMA_VALIDATION"`

	// ContactRequestsPerMinute limits contact reveals per client.
	ContactRequestsPerMinute int `json:"contact_requests_per_minute,omitempty" yaml:"contact_requests_per_minute,omitempty" env:"CONTACT_REQUESTS_PER_MINUTE"`

	Admin AdminConfig `json:"admin" yaml:"admin"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Port:                     8080,
		LogLevel:                 "info",
		LogFormat:                LogFormatJSON,
		ContactRequestsPerMinute: 10,
		Admin: AdminConfig{
			TokenTTLHours: 720,
		},
	}
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by
// extension. Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// Load builds the effective configuration: file (optional), then
// environment, then defaults. The result is validated.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		fileCfg, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}

	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}

	merged := cfg.MergeWithDefaults(Defaults())
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 1 and 65535, got %d", c.Port)
	}
	switch c.LogFormat {
	case LogFormatJSON, LogFormatConsole:
	default:
		return fmt.Errorf("config error: 'log_format' must be %q or %q", LogFormatJSON, LogFormatConsole)
	}
	if c.ContactRequestsPerMinute < 0 {
		return fmt.Errorf("config error: 'contact_requests_per_minute' must be non-negative")
	}
	return c.Admin.normalize()
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}
	if result.ContactRequestsPerMinute == 0 {
		result.ContactRequestsPerMinute = defaults.ContactRequestsPerMinute
	}
	if result.Admin.Key == "" {
		result.Admin.Key = defaults.Admin.Key
	}
	if result.Admin.KeyHash == "" {
		result.Admin.KeyHash = defaults.Admin.KeyHash
	}
	if result.Admin.TokenSecret == "" {
		result.Admin.TokenSecret = defaults.Admin.TokenSecret
	}
	if result.Admin.TokenTTLHours == 0 {
		result.Admin.TokenTTLHours = defaults.Admin.TokenTTLHours
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge

	return result
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
