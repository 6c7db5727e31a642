// Package config loads notification preferences from the per-user config
// file. The file is optional: a missing or unparsable file means "all
// defaults", never an error, since this subsystem must not fail louder than
// the notifications it guards.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the five notification preferences. It is loaded once per
// process and treated as immutable afterwards.
type Config struct {
	// SuppressWhenFocused withholds toast and banner when the terminal pane
	// hosting the session already has the user's attention.
	SuppressWhenFocused bool `mapstructure:"suppressWhenFocused" json:"suppressWhenFocused"`

	// NotifyOnError enables notifications for session.error events.
	NotifyOnError bool `mapstructure:"notifyOnError" json:"notifyOnError"`

	// NotifyOnPermission enables notifications for permission events.
	NotifyOnPermission bool `mapstructure:"notifyOnPermission" json:"notifyOnPermission"`

	// NotifyOnQuestion enables notifications for question.asked events.
	NotifyOnQuestion bool `mapstructure:"notifyOnQuestion" json:"notifyOnQuestion"`

	// NotifyChildSessions opts sub-sessions (child agents) into
	// notifications; they are excluded by default.
	NotifyChildSessions bool `mapstructure:"notifyChildSessions" json:"notifyChildSessions"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		SuppressWhenFocused: true,
		NotifyOnError:       true,
		NotifyOnPermission:  true,
		NotifyOnQuestion:    true,
		NotifyChildSessions: false,
	}
}

// Path returns the fixed per-user config file location.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "opencode", "notify.json"), nil
}

// Load reads the per-user config file. Missing file, unreadable file, and
// parse failures all silently fall back to defaults; keys absent from the
// file keep their default values.
func Load() *Config {
	path, err := Path()
	if err != nil {
		return Default()
	}
	cfg, err := LoadFromFile(path)
	if err != nil {
		return Default()
	}
	return cfg
}

// LoadFromFile reads configuration from a specific JSON file.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	defaults := Default()
	v.SetDefault("suppressWhenFocused", defaults.SuppressWhenFocused)
	v.SetDefault("notifyOnError", defaults.NotifyOnError)
	v.SetDefault("notifyOnPermission", defaults.NotifyOnPermission)
	v.SetDefault("notifyOnQuestion", defaults.NotifyOnQuestion)
	v.SetDefault("notifyChildSessions", defaults.NotifyChildSessions)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
