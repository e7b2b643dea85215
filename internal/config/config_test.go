package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.DefaultView != "home" {
		t.Errorf("expected default view 'home', got %q", cfg.DefaultView)
	}
	if cfg.OrbitInterval != 80*time.Millisecond {
		t.Errorf("expected orbit interval 80ms, got %v", cfg.OrbitInterval)
	}
	if cfg.OrbitStep != 6 {
		t.Errorf("expected orbit step 6, got %v", cfg.OrbitStep)
	}
	if !cfg.MouseEnabled() {
		t.Error("expected mouse enabled by default")
	}
}

func TestLoadFrom_NonExistent(t *testing.T) {
	t.Setenv(EnvDefaultView, "")
	t.Setenv(EnvLogFile, "")

	cfg, err := LoadFrom("/nonexistent/path/config.yaml")
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	if cfg.DefaultView != "home" {
		t.Errorf("expected default config, got view %q", cfg.DefaultView)
	}
}

func TestLoadFrom_ValidConfig(t *testing.T) {
	t.Setenv(EnvDefaultView, "")
	t.Setenv(EnvLogFile, "")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
default_view: Writings
orbit_interval: 120ms
orbit_step: 3
mouse: false
log_file: /tmp/starfolio.log
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}

	if cfg.DefaultView != "writings" {
		t.Errorf("default view = %q, want writings", cfg.DefaultView)
	}
	if cfg.OrbitInterval != 120*time.Millisecond {
		t.Errorf("orbit interval = %v, want 120ms", cfg.OrbitInterval)
	}
	if cfg.OrbitStep != 3 {
		t.Errorf("orbit step = %v, want 3", cfg.OrbitStep)
	}
	if cfg.MouseEnabled() {
		t.Error("expected mouse disabled")
	}
	if cfg.LogFile != "/tmp/starfolio.log" {
		t.Errorf("log file = %q", cfg.LogFile)
	}
}

func TestLoadFrom_InvalidValuesFallBack(t *testing.T) {
	t.Setenv(EnvDefaultView, "")
	t.Setenv(EnvLogFile, "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
default_view: blog
orbit_interval: 1ms
orbit_step: -4
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if cfg.DefaultView != DefaultView || cfg.OrbitInterval != DefaultOrbitInterval || cfg.OrbitStep != DefaultOrbitStep {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadFrom_Malformed(t *testing.T) {
	t.Setenv(EnvDefaultView, "")
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("default_view: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err == nil {
		t.Fatal("expected error for malformed config")
	}
	if cfg.DefaultView != DefaultView {
		t.Errorf("expected defaults alongside the error, got %+v", cfg)
	}
}

func TestLoadFrom_MalformedKeepsEnvOverrides(t *testing.T) {
	t.Setenv(EnvDefaultView, "projects")
	t.Setenv(EnvLogFile, "/tmp/starfolio.log")

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("default_view: [oops\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err == nil {
		t.Fatal("expected error for malformed config")
	}
	if cfg.DefaultView != "projects" {
		t.Errorf("DefaultView = %q, want the env override projects", cfg.DefaultView)
	}
	if cfg.LogFile != "/tmp/starfolio.log" {
		t.Errorf("LogFile = %q, want the env override", cfg.LogFile)
	}
	if cfg.OrbitInterval != DefaultOrbitInterval {
		t.Errorf("OrbitInterval = %v, want default", cfg.OrbitInterval)
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	t.Setenv(EnvDefaultView, "technical")
	t.Setenv(EnvLogFile, "/var/log/sf.log")

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("default_view: projects\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if cfg.DefaultView != "technical" {
		t.Errorf("env should override file, got %q", cfg.DefaultView)
	}
	if cfg.LogFile != "/var/log/sf.log" {
		t.Errorf("log file = %q", cfg.LogFile)
	}
}

func TestConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	if got := ConfigDir(); got != filepath.Join("/xdg", "starfolio") {
		t.Errorf("ConfigDir() = %q", got)
	}
	if got := ConfigPath(); got != filepath.Join("/xdg", "starfolio", "config.yaml") {
		t.Errorf("ConfigPath() = %q", got)
	}
}
