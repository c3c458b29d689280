// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Inputs
	Profile string `json:"profile,omitempty"` // Path to an intake profile JSON file
	UserID  string `json:"user_id,omitempty"` // User UUID (required for DB-based runs)

	// Generation
	DurationWeeks int    `json:"duration_weeks,omitempty"` // Program length in weeks
	ModelTier     string `json:"model_tier,omitempty"`     // Provider model tier: lite, standard, advanced

	// Behavior
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed derivation output
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Server
	ListenAddr string `json:"listen_addr,omitempty"` // HTTP listen address for serve mode
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
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

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Mutually exclusive profile sources
	if c.Profile != "" && c.UserID != "" {
		return fmt.Errorf("config error: 'profile' and 'user_id' are mutually exclusive")
	}

	if c.DurationWeeks < 0 {
		return fmt.Errorf("config error: 'duration_weeks' must be non-negative")
	}
	if c.DurationWeeks > 52 {
		return fmt.Errorf("config error: 'duration_weeks' must be at most 52")
	}

	switch c.ModelTier {
	case "", "lite", "standard", "advanced":
	default:
		return fmt.Errorf("config error: 'model_tier' must be one of lite, standard, advanced")
	}

	if c.Profile != "" {
		if _, err := os.Stat(c.Profile); os.IsNotExist(err) {
			return fmt.Errorf("config error: profile file not found: %s", c.Profile)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Profile == "" {
		result.Profile = defaults.Profile
	}
	if result.UserID == "" {
		result.UserID = defaults.UserID
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.ListenAddr == "" {
		result.ListenAddr = defaults.ListenAddr
	}
	if result.DurationWeeks == 0 {
		result.DurationWeeks = defaults.DurationWeeks
	}
	if result.ModelTier == "" {
		result.ModelTier = defaults.ModelTier
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
