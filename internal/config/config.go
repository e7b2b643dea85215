// Package config loads starfolio preferences.
//
// Preferences are read from $XDG_CONFIG_HOME/starfolio/config.yaml
// (~/.config/starfolio/config.yaml when unset), then overridden by the
// STARFOLIO_DEFAULT_VIEW and STARFOLIO_LOG_FILE environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	appName = "starfolio"

	DefaultView          = "home"
	DefaultOrbitInterval = 80 * time.Millisecond
	DefaultOrbitStep     = 6.0

	EnvDefaultView = "STARFOLIO_DEFAULT_VIEW"
	EnvLogFile     = "STARFOLIO_LOG_FILE"
)

var knownViews = map[string]bool{
	"home":      true,
	"projects":  true,
	"technical": true,
	"writings":  true,
}

// Config holds the user preferences
type Config struct {
	DefaultView   string        `yaml:"default_view,omitempty"`
	OrbitInterval time.Duration `yaml:"orbit_interval,omitempty"` // tick period of the orbiting dot
	OrbitStep     float64       `yaml:"orbit_step,omitempty"`     // degrees per tick
	Mouse         *bool         `yaml:"mouse,omitempty"`          // mouse hover and click on the star map
	LogFile       string        `yaml:"log_file,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	mouse := true
	return Config{
		DefaultView:   DefaultView,
		OrbitInterval: DefaultOrbitInterval,
		OrbitStep:     DefaultOrbitStep,
		Mouse:         &mouse,
	}
}

// MouseEnabled reports whether mouse support is on
func (c Config) MouseEnabled() bool {
	return c.Mouse == nil || *c.Mouse
}

// ConfigDir returns the XDG config directory for starfolio
func ConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}

// ConfigPath returns the full path to config.yaml
func ConfigPath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Load reads the config file from the XDG config directory and applies
// environment overrides. Returns DefaultConfig if the file doesn't exist.
func Load() (Config, error) {
	path := ConfigPath()
	if path == "" {
		cfg := DefaultConfig()
		applyEnv(&cfg)
		return cfg, nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from a specific path and applies environment
// overrides. Returns DefaultConfig if the file doesn't exist. On a read or
// parse error the returned config is the defaults with overrides applied.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		applyEnv(&cfg)
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			cfg = DefaultConfig()
			applyEnv(&cfg)
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	}

	applyEnv(&cfg)
	cfg.normalize()
	return cfg, nil
}

// ViewFromEnv returns the view from STARFOLIO_DEFAULT_VIEW,
// falling back to fallback.
func ViewFromEnv(fallback string) string {
	if env := os.Getenv(EnvDefaultView); env != "" {
		return env
	}
	return fallback
}

func applyEnv(cfg *Config) {
	cfg.DefaultView = ViewFromEnv(cfg.DefaultView)
	if env := os.Getenv(EnvLogFile); env != "" {
		cfg.LogFile = env
	}
	cfg.normalize()
}

// normalize replaces out-of-range values with defaults
func (c *Config) normalize() {
	c.DefaultView = strings.ToLower(strings.TrimSpace(c.DefaultView))
	if !knownViews[c.DefaultView] {
		c.DefaultView = DefaultView
	}
	if c.OrbitInterval < 10*time.Millisecond {
		c.OrbitInterval = DefaultOrbitInterval
	}
	if c.OrbitStep <= 0 || c.OrbitStep >= 360 {
		c.OrbitStep = DefaultOrbitStep
	}
	c.LogFile = expandHome(c.LogFile)
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
