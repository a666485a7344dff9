// Package config provides the runtime configuration for the game.
// Values come from an optional JSON file layered over the defaults; the
// binaries then apply their command-line flags on top.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Config holds all runtime settings
type Config struct {
	Window WindowConfig `json:"window"`
	Audio  AudioConfig  `json:"audio"`

	Container string `json:"container"` // Name of the element holding the game area
	Level     string `json:"level"`     // Level built at startup
	Fragment  string `json:"fragment"`  // Launch context, e.g. "#debug"
}

// WindowConfig defines the desktop window
type WindowConfig struct {
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Title     string `json:"title"`
	Resizable bool   `json:"resizable"`
}

// AudioConfig defines sound playback
type AudioConfig struct {
	Muted      bool              `json:"muted"`
	SampleRate int               `json:"sample_rate"`
	Sounds     map[string]string `json:"sounds"` // Sound name -> WAV path
}

// DefaultConfig returns the settings used when no file is given
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			Title:     "Fireflies",
			Resizable: true,
		},
		Audio: AudioConfig{
			SampleRate: 44100,
			Sounds:     map[string]string{},
		},
		Container: "container",
		Level:     "alpha",
	}
}

// LoadConfig loads config from a JSON file. An empty path or a missing
// file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks values the game cannot start with
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Container == "" {
		errs = append(errs, errors.New("container name is empty"))
	}
	if c.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("sample rate %d must be positive", c.Audio.SampleRate))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Debug reports whether the launch context carries the debug marker
func Debug(launch string) bool {
	return strings.Contains(launch, "debug")
}
