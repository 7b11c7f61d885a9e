package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/parlor/internal/core/config"
)

// ConfigCmd groups configuration subcommands.
type ConfigCmd struct {
	flags *Flags
	cfg   *config.Config
}

// NewConfigCmd creates a new config command.
func NewConfigCmd(flags *Flags, cfg *config.Config) *ConfigCmd {
	return &ConfigCmd{flags: flags, cfg: cfg}
}

// Register adds the config command to the application.
func (cmd *ConfigCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Inspect and validate configuration",
		Commands: []*cli.Command{
			{
				Name:      "validate",
				Usage:     "Validate the config file and data directory",
				UsageText: "parlor config validate",
				Action:    cmd.runValidate,
			},
		},
	})

	return app
}

func (cmd *ConfigCmd) runValidate(_ context.Context, c *cli.Command) error {
	if err := cmd.cfg.ValidateDeep(cmd.flags.ConfigPath); err != nil {
		return fmt.Errorf("config invalid:\n%w", err)
	}

	fmt.Fprintln(c.Root().Writer, "config ok")
	return nil
}
