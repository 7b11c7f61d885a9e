package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/parlor/internal/core/config"
	"github.com/colonyops/parlor/internal/core/styles"
)

// InitCmd scaffolds a config file interactively.
type InitCmd struct {
	flags *Flags
}

// NewInitCmd creates a new init command.
func NewInitCmd(flags *Flags) *InitCmd {
	return &InitCmd{flags: flags}
}

// Register adds the init command to the application.
func (cmd *InitCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "init",
		Usage:     "Create a config file interactively",
		UsageText: "parlor init",
		Action:    cmd.run,
	})

	return app
}

func (cmd *InitCmd) run(_ context.Context, _ *cli.Command) error {
	path := cmd.flags.ConfigPath

	if _, err := os.Stat(path); err == nil {
		overwrite := false
		confirm := huh.NewConfirm().
			Title(fmt.Sprintf("%s already exists. Overwrite?", path)).
			Value(&overwrite)
		if err := confirm.Run(); err != nil {
			return fmt.Errorf("confirm: %w", err)
		}
		if !overwrite {
			return nil
		}
	}

	cfg := config.DefaultConfig()
	watch := true

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Options(huh.NewOptions(styles.ThemeNames()...)...).
				Value(&cfg.TUI.Theme),
			huh.NewConfirm().
				Title("Reload the panel when catalog files change?").
				Value(&watch),
		),
	)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return fmt.Errorf("form: %w", err)
	}
	cfg.Data.Watch = &watch

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	fmt.Printf("Wrote %s\n", path)
	return nil
}
