// Package config holds runtime configuration for symplacheck.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultBaseURL is the public Sympla API root.
const DefaultBaseURL = "https://api.sympla.com.br/public"

type Config struct {
	// BaseURL is the API root, without a trailing slash.
	BaseURL string `json:"base_url"`

	// Token and APIVersion prefill the interactive prompts when set.
	Token      string `json:"token"`
	APIVersion string `json:"api_version"`

	// HTTPTimeout bounds each upstream call so a hung upstream cannot
	// block the session indefinitely.
	HTTPTimeout time.Duration `json:"http_timeout"`

	// ExportDir is where CSV exports are written.
	ExportDir string `json:"export_dir"`

	Debug bool `json:"debug"`
}

// DefaultConfig builds the configuration from defaults, an optional .env
// file, and environment variable overrides.
func DefaultConfig() *Config {
	currentDir, _ := os.Getwd()

	cfg := &Config{
		BaseURL:     DefaultBaseURL,
		HTTPTimeout: 30 * time.Second,
		ExportDir:   filepath.Join(currentDir, "exports"),
	}

	// Load environment variables from .env file
	_ = godotenv.Load()

	cfg.loadFromEnv()

	return cfg
}

func (c *Config) loadFromEnv() {
	if val := os.Getenv("SYMPLA_BASE_URL"); val != "" {
		c.BaseURL = val
	}
	if val := os.Getenv("SYMPLA_TOKEN"); val != "" {
		c.Token = val
	}
	if val := os.Getenv("SYMPLA_API_VERSION"); val != "" {
		c.APIVersion = val
	}

	if val := os.Getenv("SYMPLACHECK_EXPORT_DIR"); val != "" {
		c.ExportDir = val
	}
	if val := os.Getenv("SYMPLACHECK_HTTP_TIMEOUT"); val != "" {
		if secs, err := strconv.Atoi(val); err == nil && secs > 0 {
			c.HTTPTimeout = time.Duration(secs) * time.Second
		}
	}
	if val := os.Getenv("SYMPLACHECK_DEBUG"); val != "" {
		if enabled, err := strconv.ParseBool(val); err == nil {
			c.Debug = enabled
		}
	}
}

// Validate checks the fields the rest of the program depends on.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base URL must not be empty")
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP timeout must be positive, got %s", c.HTTPTimeout)
	}
	if c.ExportDir == "" {
		return fmt.Errorf("export directory must not be empty")
	}
	return nil
}

// EnsureDirectories creates the export directory if it is missing.
func (c *Config) EnsureDirectories() error {
	if err := os.MkdirAll(c.ExportDir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", c.ExportDir, err)
	}
	return nil
}
