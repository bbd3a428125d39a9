// Package config holds the timing settings for activities and reads them
// from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate for settings no timer can run with.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the top-level structure of the settings file.
type Config struct {
	Version    int              `yaml:"version"`
	Timing     TimingConfig     `yaml:"timing"`
	Breathing  BreathingConfig  `yaml:"breathing"`
	Reflection ReflectionConfig `yaml:"reflection"`
	Menu       MenuConfig       `yaml:"menu"`
}

// TimingConfig controls the shared spinner and countdown helpers.
type TimingConfig struct {
	SpinnerFrameMs  int `yaml:"spinner_frame_ms"`  // ms per spinner frame
	CountdownTickMs int `yaml:"countdown_tick_ms"` // ms per countdown number
	GetReady        int `yaml:"get_ready"`         // seconds
	WellDone        int `yaml:"well_done"`         // seconds
	Summary         int `yaml:"summary"`           // seconds
	BeginCountdown  int `yaml:"begin_countdown"`   // seconds
}

// BreathingConfig sets the length of each half of a breath cycle.
type BreathingConfig struct {
	Inhale int `yaml:"inhale"` // seconds
	Exhale int `yaml:"exhale"` // seconds
}

// ReflectionConfig sets how long each reflection question stays up.
type ReflectionConfig struct {
	Question int `yaml:"question"` // seconds
}

// MenuConfig controls the menu loop.
type MenuConfig struct {
	InvalidChoicePauseMs int `yaml:"invalid_choice_pause_ms"`
}

// DefaultConfig returns the standard timings.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Timing: TimingConfig{
			SpinnerFrameMs:  250,
			CountdownTickMs: 1000,
			GetReady:        5,
			WellDone:        3,
			Summary:         5,
			BeginCountdown:  5,
		},
		Breathing: BreathingConfig{
			Inhale: 4,
			Exhale: 6,
		},
		Reflection: ReflectionConfig{
			Question: 10,
		},
		Menu: MenuConfig{
			InvalidChoicePauseMs: 2000,
		},
	}
}

// ReadConfig reads the YAML file at path on top of DefaultConfig, so keys
// missing from the file keep their default values.
// Returns an error if the file cannot be read, is malformed or fails Validate.
func ReadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that every interval is usable.
func (c *Config) Validate() error {
	checks := []struct {
		name  string
		value int
		min   int
	}{
		{"timing.spinner_frame_ms", c.Timing.SpinnerFrameMs, 1},
		{"timing.countdown_tick_ms", c.Timing.CountdownTickMs, 1},
		{"timing.get_ready", c.Timing.GetReady, 0},
		{"timing.well_done", c.Timing.WellDone, 0},
		{"timing.summary", c.Timing.Summary, 0},
		{"timing.begin_countdown", c.Timing.BeginCountdown, 0},
		{"breathing.inhale", c.Breathing.Inhale, 0},
		{"breathing.exhale", c.Breathing.Exhale, 0},
		{"reflection.question", c.Reflection.Question, 1},
		{"menu.invalid_choice_pause_ms", c.Menu.InvalidChoicePauseMs, 0},
	}
	for _, ch := range checks {
		if ch.value < ch.min {
			return fmt.Errorf("%w: %s must be at least %d, got %d", ErrInvalidConfig, ch.name, ch.min, ch.value)
		}
	}
	// A breath cycle of zero length would never let the clock reach the deadline.
	if c.Breathing.Inhale+c.Breathing.Exhale == 0 {
		return fmt.Errorf("%w: breathing.inhale and breathing.exhale cannot both be 0", ErrInvalidConfig)
	}
	return nil
}

// SpinnerFrame returns the time each spinner frame stays on screen.
func (t TimingConfig) SpinnerFrame() time.Duration {
	return time.Duration(t.SpinnerFrameMs) * time.Millisecond
}

// CountdownTick returns the time each countdown number stays on screen.
func (t TimingConfig) CountdownTick() time.Duration {
	return time.Duration(t.CountdownTickMs) * time.Millisecond
}

// InvalidChoicePause returns the delay after an unrecognised menu choice.
func (m MenuConfig) InvalidChoicePause() time.Duration {
	return time.Duration(m.InvalidChoicePauseMs) * time.Millisecond
}
