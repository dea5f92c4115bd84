// Package config provides configuration types, defaults, and persistence for
// larder.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/zjrosen/larder/internal/tracing"
)

// Config holds all configuration options for larder.
type Config struct {
	// DatabasePath is the location of the SQLite recipe database.
	// Default: ~/.config/larder/larder.db
	DatabasePath string `mapstructure:"database_path"`

	// LogPath is where the debug log is written when --debug or
	// LARDER_DEBUG is set.
	// Default: ~/.config/larder/debug.log
	LogPath string `mapstructure:"log_path"`

	// AutoRefresh regenerates the grocery list in watch mode when the
	// database changes on disk.
	AutoRefresh bool `mapstructure:"auto_refresh"`

	Cache   CacheConfig    `mapstructure:"cache"`
	Tracing tracing.Config `mapstructure:"tracing"`
}

// CacheConfig holds recipe cache settings.
type CacheConfig struct {
	// Disabled bypasses the in-memory recipe cache entirely.
	Disabled bool `mapstructure:"disabled"`

	// TTLMinutes is how long a cached recipe stays fresh.
	// Default: 5
	TTLMinutes int `mapstructure:"ttl_minutes"`
}

// TTL returns the cache TTL as a duration, falling back to the default when
// unset.
func (c CacheConfig) TTL() time.Duration {
	minutes := c.TTLMinutes
	if minutes <= 0 {
		minutes = 5
	}
	return time.Duration(minutes) * time.Minute
}

// ConfigDir returns the larder configuration directory, or empty string if
// the home directory is unavailable.
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "larder")
}

// DefaultDatabasePath returns the default recipe database location.
func DefaultDatabasePath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "larder.db")
}

// DefaultLogPath returns the default debug log location.
func DefaultLogPath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "debug.log")
}

// DefaultTracesFilePath returns the default path for trace file export.
func DefaultTracesFilePath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "traces", "traces.jsonl")
}

// Defaults returns the configuration used when no config file exists.
func Defaults() Config {
	tracingCfg := tracing.DefaultConfig()
	tracingCfg.FilePath = DefaultTracesFilePath()
	return Config{
		DatabasePath: DefaultDatabasePath(),
		LogPath:      DefaultLogPath(),
		AutoRefresh:  true,
		Cache: CacheConfig{
			Disabled:   false,
			TTLMinutes: 5,
		},
		Tracing: tracingCfg,
	}
}

// Validate checks the configuration for errors. Empty values use defaults and
// are always valid.
func (c Config) Validate() error {
	if err := ValidateCache(c.Cache); err != nil {
		return err
	}
	return ValidateTracing(c.Tracing)
}

// ValidateCache checks cache configuration for errors.
func ValidateCache(cache CacheConfig) error {
	if cache.TTLMinutes < 0 {
		return fmt.Errorf("cache.ttl_minutes must not be negative, got %d", cache.TTLMinutes)
	}
	return nil
}

// ValidateTracing checks tracing configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func ValidateTracing(cfg tracing.Config) error {
	if cfg.SampleRate < 0.0 || cfg.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", cfg.SampleRate)
	}

	if cfg.Exporter != "" {
		switch cfg.Exporter {
		case "none", "file", "stdout", "otlp":
			// Valid
		default:
			return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", cfg.Exporter)
		}
	}

	// Only validate path requirements when tracing is enabled
	if cfg.Enabled {
		if cfg.Exporter == "file" && cfg.FilePath == "" {
			return fmt.Errorf("tracing.file_path is required when exporter is \"file\"")
		}
		if cfg.Exporter == "otlp" && cfg.OTLPEndpoint == "" {
			return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
		}
	}

	return nil
}
