// Package config loads and validates pulse configuration via viper.
//
// Configuration is read from a YAML file (default
// $XDG_CONFIG_HOME/pulse/config.yaml), overridable per-key through
// PULSE_-prefixed environment variables, e.g. PULSE_HUB_POLICY for
// hub.policy.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the complete pulse configuration
type Config struct {
	Hub     HubConfig     `mapstructure:"hub"`
	Logging LoggingConfig `mapstructure:"logging"`
	Demo    DemoConfig    `mapstructure:"demo"`
}

// HubConfig controls notification hub behavior
type HubConfig struct {
	// Policy selects the notification predicate consulted on every state
	// change. Options: "always", "from-zero", "on-change"
	Policy string `mapstructure:"policy"`
}

// LoggingConfig controls the structured log output
type LoggingConfig struct {
	// Enabled controls whether a log file is written at all
	Enabled bool `mapstructure:"enabled"`
	// Level is the minimum level written: debug, info, warn, error
	Level string `mapstructure:"level"`
	// Dir is the directory holding the log file; empty means stderr
	Dir string `mapstructure:"dir"`
	// MaxSizeMB rotates the log file when it exceeds this size (0 disables)
	MaxSizeMB int `mapstructure:"max_size_mb"`
	// MaxBackups is the number of rotated log files to keep
	MaxBackups int `mapstructure:"max_backups"`
	// Compress gzips rotated log files
	Compress bool `mapstructure:"compress"`
}

// DemoConfig controls the observe and clone demo commands
type DemoConfig struct {
	// Subscribers are the display names registered with the demo hub, in
	// subscription order
	Subscribers []string `mapstructure:"subscribers"`
	// States is the sequence of values the observe demo drives through the hub
	States []int `mapstructure:"states"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Hub: HubConfig{
			Policy: "always",
		},
		Logging: LoggingConfig{
			Enabled:    true,
			Level:      "info",
			Dir:        "", // stderr unless a directory is configured
			MaxSizeMB:  10,
			MaxBackups: 3,
			Compress:   false,
		},
		Demo: DemoConfig{
			Subscribers: []string{"phone", "tv"},
			States:      []int{25, 30},
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("hub.policy", defaults.Hub.Policy)

	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
	viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	viper.SetDefault("logging.compress", defaults.Logging.Compress)

	viper.SetDefault("demo.subscribers", defaults.Demo.Subscribers)
	viper.SetDefault("demo.states", defaults.Demo.States)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFile reads and validates the configuration from a specific file,
// using a private viper instance so the global state is untouched. Used by
// the config watcher to re-read a changed file.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "pulse")
	}
	// Fall back to ~/.config/pulse
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pulse"
	}
	return filepath.Join(home, ".config", "pulse")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// ValidPolicies returns the list of valid hub policy names
func ValidPolicies() []string {
	return []string{"always", "from-zero", "on-change"}
}

// IsValidPolicy checks if the given policy name is valid
func IsValidPolicy(policy string) bool {
	for _, valid := range ValidPolicies() {
		if policy == valid {
			return true
		}
	}
	return false
}
