// Package config provides tests for config file loading.
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestLoadFromMissingFile tests that a missing config file yields
// defaults without error.
func TestLoadFromMissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope", "config.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error, got %v", err)
	}
	if cfg.DelaySeconds != 0 || cfg.Terminal != "" || cfg.Emulator != "" || cfg.DefaultStrategy != "" {
		t.Errorf("missing file should yield zero config, got %+v", cfg)
	}
}

// TestLoadFromValidFile tests parsing all supported keys.
func TestLoadFromValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `delay_seconds: 5
terminal: kitty
emulator: /opt/android-sdk/emulator/emulator
default_strategy: delayed
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DelaySeconds != 5 {
		t.Errorf("DelaySeconds = %d, want 5", cfg.DelaySeconds)
	}
	if cfg.Terminal != "kitty" {
		t.Errorf("Terminal = %q, want kitty", cfg.Terminal)
	}
	if cfg.Emulator != "/opt/android-sdk/emulator/emulator" {
		t.Errorf("Emulator = %q", cfg.Emulator)
	}
	if cfg.DefaultStrategy != "delayed" {
		t.Errorf("DefaultStrategy = %q, want delayed", cfg.DefaultStrategy)
	}
	if cfg.Delay() != 5*time.Second {
		t.Errorf("Delay() = %v, want 5s", cfg.Delay())
	}
}

// TestLoadFromMalformedFile tests that broken yaml is surfaced.
func TestLoadFromMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("delay_seconds: [not an int\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Fatal("expected parse error for malformed yaml")
	}
}

// TestDelayUnset tests that an unset delay defers to the scheduler.
func TestDelayUnset(t *testing.T) {
	cfg := &Config{}
	if cfg.Delay() != 0 {
		t.Errorf("unset delay should be zero, got %v", cfg.Delay())
	}
	cfg = &Config{DelaySeconds: -3}
	if cfg.Delay() != 0 {
		t.Errorf("negative delay should be zero, got %v", cfg.Delay())
	}
}
