// Package config loads presentation settings from a YAML file with DECK_*
// environment overrides layered on top of the defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/ensigniasec/deck/internal/validate"
)

// DefaultPath is where the CLI looks for a config file when --config is unset.
const DefaultPath = "~/.config/deck/config.yaml"

const envPrefix = "DECK_"

// Config is the full set of runtime settings.
type Config struct {
	Deck       string           `yaml:"deck" koanf:"deck"`
	Transition TransitionConfig `yaml:"transition" koanf:"transition"`
	Wheel      WheelConfig      `yaml:"wheel" koanf:"wheel"`
	Swipe      SwipeConfig      `yaml:"swipe" koanf:"swipe"`
	Timer      TimerConfig      `yaml:"timer" koanf:"timer"`
	FrameRate  int              `yaml:"frame_rate" koanf:"frame_rate" validate:"min=1,max=120"`
	Backdrop   BackdropConfig   `yaml:"backdrop" koanf:"backdrop"`
	Export     ExportConfig     `yaml:"export" koanf:"export"`
	Storage    StorageConfig    `yaml:"storage" koanf:"storage"`
	Log        LogConfig        `yaml:"log" koanf:"log"`
}

type TransitionConfig struct {
	Duration time.Duration `yaml:"duration" koanf:"duration" validate:"gt=0"`
	Exit     time.Duration `yaml:"exit" koanf:"exit" validate:"gt=0"`
}

type WheelConfig struct {
	Cooldown time.Duration `yaml:"cooldown" koanf:"cooldown" validate:"gte=0"`
}

type SwipeConfig struct {
	ThresholdPx int `yaml:"threshold_px" koanf:"threshold_px" validate:"gte=0"`
	CellWidthPx int `yaml:"cell_width_px" koanf:"cell_width_px" validate:"min=1"`
}

type TimerConfig struct {
	Duration time.Duration `yaml:"duration" koanf:"duration" validate:"gt=0"`
}

type BackdropConfig struct {
	Enabled bool `yaml:"enabled" koanf:"enabled"`
}

type ExportConfig struct {
	Path string `yaml:"path" koanf:"path"`
}

type StorageConfig struct {
	Path string `yaml:"path" koanf:"path"`
}

type LogConfig struct {
	// File receives log output while the presentation owns the terminal.
	// Empty discards it.
	File  string `yaml:"file" koanf:"file"`
	Level string `yaml:"level" koanf:"level" validate:"oneof=trace debug info warn error"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() *Config {
	return &Config{
		Transition: TransitionConfig{Duration: 850 * time.Millisecond, Exit: 300 * time.Millisecond},
		Wheel:      WheelConfig{Cooldown: 900 * time.Millisecond},
		Swipe:      SwipeConfig{ThresholdPx: 60, CellWidthPx: 8},
		Timer:      TimerConfig{Duration: 20 * time.Minute},
		FrameRate:  30,
		Backdrop:   BackdropConfig{Enabled: true},
		Export:     ExportConfig{Path: "Vibe-Coding-Guide.pdf"},
		Storage:    StorageConfig{Path: "~/.config/deck/state.json"},
		Log:        LogConfig{Level: "info"},
	}
}

// Load reads configuration from path, then overlays environment variables.
// A missing file is not an error. Nested keys use a double underscore:
// DECK_TRANSITION__DURATION=1s sets transition.duration.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	path, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ExpandPath replaces a leading "~/" with the user's home directory.
func ExpandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, path[2:]), nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}
