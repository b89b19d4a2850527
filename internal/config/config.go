// Package config provides configuration loading and validation for the CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Store backends
const (
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
	StoreFile     = "file"
)

// Config represents the CLI configuration loaded from a YAML (or JSON) file.
// All fields are optional; missing values use defaults or come from
// environment variables and CLI flags.
type Config struct {
	// Storage
	Store       string `yaml:"store,omitempty" validate:"omitempty,oneof=postgres sqlite file"`
	DatabaseURL string `yaml:"database_url,omitempty" validate:"required_if=Store postgres"`
	SQLitePath  string `yaml:"sqlite_path,omitempty" validate:"required_if=Store sqlite"`
	JobsFile    string `yaml:"jobs_file,omitempty" validate:"required_if=Store file"`
	ResumesFile string `yaml:"resumes_file,omitempty"`

	// Limits
	DefaultLimit int `yaml:"default_limit,omitempty" validate:"gte=0"`
	MaxLimit     int `yaml:"max_limit,omitempty" validate:"gte=0"`

	// Behavior
	FetchTimeout string `yaml:"fetch_timeout,omitempty"` // Go duration, e.g. "10s"
	ScoreWorkers int    `yaml:"score_workers,omitempty" validate:"gte=0,lte=256"`
	Verbose      bool   `yaml:"verbose,omitempty"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Store:        StoreSQLite,
		SQLitePath:   "jobrec.db",
		DefaultLimit: 10,
		MaxLimit:     100,
		FetchTimeout: "10s",
	}
}

// LoadConfig loads configuration from a YAML or JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// ApplyEnv overlays values from environment variables. Only set,
// non-empty variables override the config.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := getenv("JOBREC_STORE"); v != "" {
		c.Store = strings.ToLower(v)
	}
	if v := getenv("JOBREC_SQLITE_PATH"); v != "" {
		c.SQLitePath = v
	}
	if v := getenv("JOBREC_JOBS_FILE"); v != "" {
		c.JobsFile = v
	}
	if v := getenv("JOBREC_RESUMES_FILE"); v != "" {
		c.ResumesFile = v
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.MaxLimit > 0 && c.DefaultLimit > c.MaxLimit {
		return fmt.Errorf("config error: 'default_limit' (%d) exceeds 'max_limit' (%d)", c.DefaultLimit, c.MaxLimit)
	}

	if c.FetchTimeout != "" {
		d, err := time.ParseDuration(c.FetchTimeout)
		if err != nil {
			return fmt.Errorf("config error: invalid 'fetch_timeout': %w", err)
		}
		if d < 0 {
			return fmt.Errorf("config error: 'fetch_timeout' must be non-negative")
		}
	}

	if c.Store == StoreFile && c.JobsFile != "" {
		if _, err := os.Stat(c.JobsFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: jobs file not found: %s", c.JobsFile)
		}
	}

	return nil
}

// Timeout returns FetchTimeout as a duration, or zero when unset or invalid.
func (c *Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.FetchTimeout)
	if err != nil {
		return 0
	}
	return d
}

// ClampLimit maps a requested limit into [1, MaxLimit], using DefaultLimit
// for non-positive requests.
func (c *Config) ClampLimit(limit int) int {
	if limit <= 0 {
		limit = c.DefaultLimit
	}
	if c.MaxLimit > 0 && limit > c.MaxLimit {
		limit = c.MaxLimit
	}
	return limit
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Store == "" {
		result.Store = defaults.Store
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.SQLitePath == "" {
		result.SQLitePath = defaults.SQLitePath
	}
	if result.JobsFile == "" {
		result.JobsFile = defaults.JobsFile
	}
	if result.ResumesFile == "" {
		result.ResumesFile = defaults.ResumesFile
	}
	if result.FetchTimeout == "" {
		result.FetchTimeout = defaults.FetchTimeout
	}

	// Int fields: use default if zero
	if result.DefaultLimit == 0 {
		result.DefaultLimit = defaults.DefaultLimit
	}
	if result.MaxLimit == 0 {
		result.MaxLimit = defaults.MaxLimit
	}
	if result.ScoreWorkers == 0 {
		result.ScoreWorkers = defaults.ScoreWorkers
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
