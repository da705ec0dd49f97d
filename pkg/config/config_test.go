package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_ValidConfig(t *testing.T) {
	content := `
retry:
  max_retries: 5
  delay: 2s
cache:
  directory: "/var/lib/avdecc/cache"
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Retry.MaxRetries != 5 {
		t.Errorf("Retry.MaxRetries = %d, want 5", cfg.Retry.MaxRetries)
	}
	if cfg.Retry.Delay != 2*time.Second {
		t.Errorf("Retry.Delay = %v, want 2s", cfg.Retry.Delay)
	}
	if cfg.Cache.Directory != "/var/lib/avdecc/cache" {
		t.Errorf("Cache.Directory = %q, want %q", cfg.Cache.Directory, "/var/lib/avdecc/cache")
	}
}

func TestLoad_DefaultsSurviveUnlistedSections(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("cache:\n  directory: \"/tmp/cache\"\n"), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Retry.MaxRetries != 2 {
		t.Errorf("Retry.MaxRetries = %d, want default 2", cfg.Retry.MaxRetries)
	}
	if cfg.Retry.Delay != 1000*time.Millisecond {
		t.Errorf("Retry.Delay = %v, want default 1000ms", cfg.Retry.Delay)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("Load() expected error for missing file, got nil")
	}
}

func TestValidate_RejectsNegativeMaxRetries(t *testing.T) {
	cfg := defaultConfig()
	cfg.Retry.MaxRetries = -1
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() expected error for negative max_retries, got nil")
	}
}

func TestValidate_RejectsEmptyCacheDirectory(t *testing.T) {
	cfg := defaultConfig()
	cfg.Cache.Directory = ""
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() expected error for empty cache.directory, got nil")
	}
}
