// Package config loads the YAML-defined tunables this core needs:
// the enumeration retry policy and the on-disk cache directory.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
//
// Grounded on nerrad567-gray-logic-stack's config.Config: load
// defaults, then let the YAML file override them, then validate.
type Config struct {
	Retry RetryConfig `yaml:"retry"`
	Cache CacheConfig `yaml:"cache"`
}

// RetryConfig mirrors enumeration.RetryPolicy so it can be tuned
// without a code change; spec.md §4.5 pins the default to 2 retries,
// 1000ms apart.
type RetryConfig struct {
	MaxRetries int           `yaml:"max_retries"`
	Delay      time.Duration `yaml:"delay"`
}

// CacheConfig controls where cache.Document files are read from and
// written to.
type CacheConfig struct {
	Directory string `yaml:"directory"`
}

// Load reads configuration from a YAML file, starting from defaults
// and letting the file override them.
//
// Loading order:
//  1. Default values (hardcoded)
//  2. YAML file values (override defaults)
//  3. Validation
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns a Config with the spec-mandated defaults.
func defaultConfig() *Config {
	return &Config{
		Retry: RetryConfig{
			MaxRetries: 2,
			Delay:      1000 * time.Millisecond,
		},
		Cache: CacheConfig{
			Directory: "./cache",
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Retry.MaxRetries < 0 {
		return fmt.Errorf("retry.max_retries must not be negative, got %d", c.Retry.MaxRetries)
	}
	if c.Retry.Delay < 0 {
		return fmt.Errorf("retry.delay must not be negative, got %v", c.Retry.Delay)
	}
	if c.Cache.Directory == "" {
		return fmt.Errorf("cache.directory is required")
	}
	return nil
}
