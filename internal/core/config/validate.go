package config

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"

	"github.com/colonyops/parlor/internal/core/catalog"
	"github.com/colonyops/parlor/internal/core/styles"
)

// Validate performs structural validation of the configuration.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("tui.theme", c.TUI.Theme, themeExists),
		criterio.Run("tui.initial_filter", c.TUI.InitialFilter, filterModeKnown),
		criterio.Run("animation.emphasis_ms", c.Animation.EmphasisMS, inRange(100, 5000)),
		criterio.Run("animation.slide_ms", c.Animation.SlideMS, inRange(50, 2000)),
		criterio.Run("animation.width_ms", c.Animation.WidthMS, inRange(50, 2000)),
		criterio.Run("animation.fps", c.Animation.FPS, inRange(1, 120)),
		c.validateGlobs(),
	)
}

// ValidateDeep adds I/O checks on top of Validate. The configPath argument
// specifies the config file location (empty string skips the file check).
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("data_dir", c.DataDir, isDirectoryOrNotExist),
	)
}

func (c *Config) validateGlobs() error {
	var errs criterio.FieldErrorsBuilder
	for i, g := range c.Data.Globs {
		if !doublestar.ValidatePattern(g) {
			errs = errs.Append(fmt.Sprintf("data.globs[%d]", i), fmt.Errorf("invalid glob pattern %q", g))
		}
	}
	return errs.ToError()
}

func themeExists(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %v)", name, styles.ThemeNames())
	}
	return nil
}

func filterModeKnown(name string) error {
	_, err := catalog.ParseFilterMode(name)
	return err
}

func inRange(lo, hi int) func(int) error {
	return func(v int) error {
		if v < lo || v > hi {
			return fmt.Errorf("must be between %d and %d, got %d", lo, hi, v)
		}
		return nil
	}
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

func isDirectoryOrNotExist(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil // will be created
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("exists but is not a directory")
	}
	return nil
}
