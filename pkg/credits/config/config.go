// Package config loads creditscope configuration from file and environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// LoggingConfig configures application logging.
type LoggingConfig struct {
	Level        string            `mapstructure:"level"`
	Path         string            `mapstructure:"path"`
	ConsoleLevel string            `mapstructure:"console_level"`
	Components   map[string]string `mapstructure:"components"`
}

// Config represents the application configuration.
type Config struct {
	// OrgID selects which org's consumption to display.
	OrgID string `mapstructure:"org_id"`

	// Period is the default reporting window (24h, 7d, 30d, 90d, custom).
	Period string `mapstructure:"period"`

	// Today overrides the reference date, formatted YYYY-MM-DD.
	// Empty uses the built-in reference date.
	Today string `mapstructure:"today"`

	// FeedPath points at a YAML feed file. Empty uses the embedded
	// fixture dataset.
	FeedPath string `mapstructure:"feed_path"`

	// Watch reloads the feed file when it changes on disk.
	// Ignored when FeedPath is empty.
	Watch bool `mapstructure:"watch"`

	// Format is the output format for non-interactive commands
	// (pretty, json, yaml, tsv).
	Format string `mapstructure:"format"`

	Logging LoggingConfig `mapstructure:"logging"`
}

// Load loads configuration from file and environment variables.
// Config file locations (in order of precedence):
//   - $XDG_CONFIG_HOME/creditscope/config.yaml
//   - $HOME/.config/creditscope/config.yaml
//
// Environment variables are prefixed with CREDITSCOPE_
// (e.g., CREDITSCOPE_ORG_ID).
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		v.AddConfigPath(filepath.Join(xdgConfigHome, "creditscope"))
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}
	v.AddConfigPath(filepath.Join(homeDir, ".config", "creditscope"))

	v.SetEnvPrefix("CREDITSCOPE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("org_id", DefaultOrgID)
	v.SetDefault("period", DefaultPeriod)
	v.SetDefault("today", "")
	v.SetDefault("feed_path", "")
	v.SetDefault("watch", false)
	v.SetDefault("format", DefaultFormat)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.path", "") // Empty means use the default XDG path
	v.SetDefault("logging.console_level", "")
	v.SetDefault("logging.components", map[string]string{
		"feed":   "info",
		"ledger": "info",
		"tui":    "info",
	})

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is acceptable; we use defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if strings.HasPrefix(cfg.FeedPath, "~") {
		cfg.FeedPath = filepath.Join(homeDir, cfg.FeedPath[1:])
	}

	return &cfg, nil
}

// ConfigDir returns the configuration directory path.
func ConfigDir() (string, error) {
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return filepath.Join(xdgConfigHome, "creditscope"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", "creditscope"), nil
}

// EnsureConfigDir creates the config directory if it doesn't exist.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	return nil
}

// WriteDefault writes a default config file if none exists.
// Returns nil if a config file already exists.
func WriteDefault() error {
	if err := EnsureConfigDir(); err != nil {
		return err
	}

	configDir, err := ConfigDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(configDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check config file: %w", err)
	}

	defaultConfig := fmt.Sprintf(`# Creditscope Configuration

# Org whose consumption is displayed
org_id: %s

# Default reporting window: 24h, 7d, 30d, 90d, custom
period: %s

# Reference date override (M/D/YYYY). Empty uses the built-in date.
today: ""

# YAML feed file. Empty uses the embedded demo dataset.
feed_path: ""

# Reload the feed when the file changes on disk
watch: false

# Output format for report commands: pretty, json, yaml, tsv
format: %s

# Logging configuration
logging:
  # Log level: debug, info, warn, error
  level: info
  # Log file path (empty means use default: $XDG_STATE_HOME/creditscope/creditscope.log)
  path: ""
  # Console output level for non-interactive runs (empty disables)
  console_level: ""
  # Per-component log levels
  components:
    feed: info
    ledger: info
    tui: info
`, DefaultOrgID, DefaultPeriod, DefaultFormat)

	if err := os.WriteFile(configPath, []byte(defaultConfig), 0o644); err != nil {
		return fmt.Errorf("failed to write default config: %w", err)
	}

	return nil
}

// ExpandPath expands ~ in a path to the user's home directory.
func ExpandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, path[1:]), nil
}

// StateDir returns $XDG_STATE_HOME/creditscope/ for log files.
func StateDir() string {
	return filepath.Join(xdg.StateHome, "creditscope")
}

// DefaultLogPath returns the default log file path.
func DefaultLogPath() string {
	return filepath.Join(StateDir(), "creditscope.log")
}

// EnsureStateDir creates the state directory if it doesn't exist.
func EnsureStateDir() error {
	if err := os.MkdirAll(StateDir(), 0o755); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}
	return nil
}
