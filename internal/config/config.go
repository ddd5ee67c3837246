// Package config handles XDG configuration directory, file paths and API settings.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	// AppName is the application directory name.
	AppName = "tareas"

	// SessionFile is the persisted session record filename.
	SessionFile = "session.json"

	// SettingsFile is the optional API settings filename.
	SettingsFile = "config.yaml"
)

// API holds the remote endpoint settings.
type API struct {
	// AuthURL is the base URL of the authentication endpoints.
	AuthURL string `yaml:"auth_url" env:"TAREAS_AUTH_URL" env-default:"http://localhost:3000/auth"`

	// TasksURL is the base URL of the task collection.
	TasksURL string `yaml:"tasks_url" env:"TAREAS_TASKS_URL" env-default:"http://localhost:3000/tasks"`

	// Timeout bounds every remote call.
	Timeout time.Duration `yaml:"timeout" env:"TAREAS_API_TIMEOUT" env-default:"5s"`
}

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// API holds the remote endpoint settings.
	API API

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// New creates a new Config with the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/tareas or $HOME/.config/tareas.
// API settings are read from config.yaml in the directory when present,
// falling back to environment variables and defaults.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	cfg := &Config{Dir: dir}

	settings := filepath.Join(dir, SettingsFile)
	if err := cleanenv.ReadConfig(settings, &cfg.API); err != nil {
		var pe *os.PathError
		if !errors.As(err, &pe) {
			return nil, err
		}
		// No settings file; environment and defaults only.
		if err := cleanenv.ReadEnv(&cfg.API); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// SessionPath returns the path to the persisted session record.
func (c *Config) SessionPath() string {
	return filepath.Join(c.Dir, SessionFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasSession checks if a session record exists.
func (c *Config) HasSession() bool {
	_, err := os.Stat(c.SessionPath())
	return err == nil
}

// RemoveSession deletes the session record.
func (c *Config) RemoveSession() error {
	return os.Remove(c.SessionPath())
}
