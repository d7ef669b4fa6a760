// Package config provides configuration loading and validation for the site CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/databonnd/site/internal/schemas"
	rootschemas "github.com/databonnd/site/schemas"
)

// Defaults applied when neither the config file nor flags set a value.
const (
	DefaultPort            = 8080
	DefaultSiteTitle       = "Databonnd Corp."
	DefaultSiteDescription = "Databonnd Corporation - A leading conglomerate of innovative companies"
)

// Config represents the site configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	Port            int    `json:"port,omitempty"`             // HTTP listen port
	SiteTitle       string `json:"site_title,omitempty"`       // Document title
	SiteDescription string `json:"site_description,omitempty"` // Meta description
	CompaniesFile   string `json:"companies_file,omitempty"`   // Company catalog override

	// DefaultSeed fixes stroke animation timing when non-zero; zero draws a
	// fresh seed per render.
	DefaultSeed int64 `json:"default_seed,omitempty"`

	RateLimitEnabled *bool `json:"rate_limit_enabled,omitempty"` // nil keeps the RATE_LIMIT_ENABLED env default
	Verbose          bool  `json:"verbose,omitempty"`            // Print layout and catalog summaries
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read, does not match the config
// schema, or cannot be parsed.
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
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := schemas.ValidateJSONString(rootschemas.MustGet(rootschemas.Config), string(data)); err != nil {
		return nil, fmt.Errorf("config file %s does not match schema: %w", path, err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	if c.CompaniesFile != "" {
		if _, err := os.Stat(c.CompaniesFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: companies file not found: %s", c.CompaniesFile)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.SiteTitle == "" {
		result.SiteTitle = defaults.SiteTitle
	}
	if result.SiteDescription == "" {
		result.SiteDescription = defaults.SiteDescription
	}
	if result.CompaniesFile == "" {
		result.CompaniesFile = defaults.CompaniesFile
	}
	if result.DefaultSeed == 0 {
		result.DefaultSeed = defaults.DefaultSeed
	}
	if result.RateLimitEnabled == nil {
		result.RateLimitEnabled = defaults.RateLimitEnabled
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Port:            DefaultPort,
		SiteTitle:       DefaultSiteTitle,
		SiteDescription: DefaultSiteDescription,
	}
}
