// Package config provides configuration management functionality for the
// tock countdown timer.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Display settings bounds and defaults.
const (
	DefaultFPS = 30
	MinFPS     = 1
	MaxFPS     = 120
)

// GetValue retrieves a configuration value by key
func GetValue(key string) (string, error) {
	if !viper.IsSet(key) {
		return "", fmt.Errorf("key '%s' not found in configuration", key)
	}
	return viper.GetString(key), nil
}

// SetValue sets a configuration value by key and persists it to the config file
func SetValue(key string, value string) error {
	viper.Set(key, value)
	return viper.WriteConfig()
}

// Settings holds the resolved runtime configuration for a timer run.
type Settings struct {
	FPS    int
	Notify bool
	DVD    bool
}

// Resolve reads timer settings from configuration, applying defaults for
// anything unset. Flag overrides are applied in the command layer.
func Resolve() *Settings {
	s := &Settings{
		FPS:    DefaultFPS,
		Notify: true,
	}
	if viper.IsSet("fps") {
		s.FPS = viper.GetInt("fps")
	}
	if viper.IsSet("notify") {
		s.Notify = viper.GetBool("notify")
	}
	s.DVD = viper.GetBool("dvd")
	return s
}

// Validate checks that resolved settings are usable.
func (s *Settings) Validate() error {
	if s.FPS < MinFPS || s.FPS > MaxFPS {
		return fmt.Errorf("fps must be in [%d,%d], got %d", MinFPS, MaxFPS, s.FPS)
	}
	return nil
}
