// Package config handles configuration loading and validation for parlor.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	TUI       TUIConfig       `yaml:"tui"`
	Data      DataConfig      `yaml:"data"`
	Animation AnimationConfig `yaml:"animation"`
	DataDir   string          `yaml:"-"` // set by caller, not from config file
}

// TUIConfig holds presentation settings.
type TUIConfig struct {
	Theme string `yaml:"theme"`
	// InitialFilter is the quality filter active on startup. The filter is
	// never reset automatically afterwards; it persists across selection
	// changes for the panel's lifetime.
	InitialFilter string `yaml:"initial_filter"`
}

// DataConfig describes where catalog files are discovered.
type DataConfig struct {
	// Globs are doublestar patterns resolved relative to the data directory.
	Globs []string `yaml:"globs"`
	// Watch enables live reload of catalog files. nil means enabled.
	Watch *bool `yaml:"watch"`
}

// WatchEnabled reports whether the catalog watcher should run.
func (d DataConfig) WatchEnabled() bool {
	return d.Watch == nil || *d.Watch
}

// AnimationConfig tunes the panel's motion. Durations are milliseconds.
type AnimationConfig struct {
	// EmphasisMS is how long the selection-change emphasis stays lit.
	EmphasisMS int `yaml:"emphasis_ms"`
	// SlideMS is the indicator's horizontal travel duration.
	SlideMS int `yaml:"slide_ms"`
	// WidthMS is the indicator's width-change duration.
	WidthMS int `yaml:"width_ms"`
	// FPS is the frame rate for indicator interpolation ticks.
	FPS int `yaml:"fps"`
}

// Emphasis returns the emphasis window as a duration.
func (a AnimationConfig) Emphasis() time.Duration {
	return time.Duration(a.EmphasisMS) * time.Millisecond
}

// Slide returns the indicator travel duration.
func (a AnimationConfig) Slide() time.Duration {
	return time.Duration(a.SlideMS) * time.Millisecond
}

// Width returns the indicator width-change duration.
func (a AnimationConfig) Width() time.Duration {
	return time.Duration(a.WidthMS) * time.Millisecond
}

// FrameInterval returns the delay between interpolation ticks.
func (a AnimationConfig) FrameInterval() time.Duration {
	return time.Second / time.Duration(a.FPS)
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		TUI: TUIConfig{
			Theme:         "tokyo-night",
			InitialFilter: "all",
		},
		Data: DataConfig{
			Globs: []string{"catalog/**/*.{yml,yaml}"},
		},
		Animation: AnimationConfig{
			EmphasisMS: 650,
			SlideMS:    280,
			WidthMS:    180,
			FPS:        30,
		},
	}
}

// Load reads the config file at configPath, merging it over defaults.
// A missing file is not an error; defaults apply.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults fills zero values left by a partial config file.
func (c *Config) applyDefaults() {
	def := DefaultConfig()

	if c.TUI.Theme == "" {
		c.TUI.Theme = def.TUI.Theme
	}
	if c.TUI.InitialFilter == "" {
		c.TUI.InitialFilter = def.TUI.InitialFilter
	}
	if len(c.Data.Globs) == 0 {
		c.Data.Globs = def.Data.Globs
	}
	if c.Animation.EmphasisMS == 0 {
		c.Animation.EmphasisMS = def.Animation.EmphasisMS
	}
	if c.Animation.SlideMS == 0 {
		c.Animation.SlideMS = def.Animation.SlideMS
	}
	if c.Animation.WidthMS == 0 {
		c.Animation.WidthMS = def.Animation.WidthMS
	}
	if c.Animation.FPS == 0 {
		c.Animation.FPS = def.Animation.FPS
	}
}
