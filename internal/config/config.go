// Package config provides configuration loading and validation for the
// extractor service and CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Config represents the service configuration. Values can come from a JSON
// file, environment variables and flags; missing values fall back to
// defaults.
type Config struct {
	// DataDir is the root of durable storage; snapshots live under
	// data_dir/companies and uploaded documents under data_dir/pdf.
	DataDir string `json:"data_dir,omitempty"`

	// Port is the HTTP listen port for serve.
	Port int `json:"port,omitempty" validate:"gte=0,lte=65535"`

	// APIKey is the Gemini API key.
	APIKey string `json:"api_key,omitempty"`

	// Model is the Gemini model used for extraction.
	Model string `json:"model,omitempty"`

	// DatabaseURL selects the PostgreSQL snapshot store when set; empty
	// means filesystem snapshots under DataDir.
	DatabaseURL string `json:"database_url,omitempty"`

	// MaxExtractions bounds concurrent extraction workers.
	MaxExtractions int `json:"max_extractions,omitempty" validate:"gte=0"`
}

// Defaults returns the built-in defaults.
func Defaults() Config {
	return Config{
		DataDir:        "data",
		Port:           8001,
		Model:          "gemini-2.5-pro",
		MaxExtractions: 2,
	}
}

// Load builds the effective configuration: defaults, overlaid by the JSON
// file at path (if non-empty), overlaid by environment variables.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		fileCfg, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadFile loads configuration from a JSON file.
func loadFile(path string) (Config, error) {
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return cfg, nil
}

// applyEnv overlays environment variables onto the config.
func (c *Config) applyEnv() {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.APIKey = v
	}
	// The original deployment used the Google SDK's variable name.
	if c.APIKey == "" {
		c.APIKey = os.Getenv("GOOGLE_API_KEY")
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("EXTRACTOR_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("EXTRACTOR_MODEL"); v != "" {
		c.Model = v
	}
	if v := os.Getenv("EXTRACTOR_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DataDir == "" {
		result.DataDir = defaults.DataDir
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.MaxExtractions == 0 {
		result.MaxExtractions = defaults.MaxExtractions
	}

	return result
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if c.DataDir == "" {
		return fmt.Errorf("config error: 'data_dir' must not be empty")
	}
	return nil
}

// SnapshotDir returns the filesystem snapshot directory.
func (c *Config) SnapshotDir() string {
	return filepath.Join(c.DataDir, "companies")
}

// DocumentDir returns the uploaded-document directory.
func (c *Config) DocumentDir() string {
	return filepath.Join(c.DataDir, "pdf")
}
