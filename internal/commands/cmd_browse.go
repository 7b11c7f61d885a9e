package commands

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/parlor/internal/core/config"
	"github.com/colonyops/parlor/internal/data/catalogfile"
	"github.com/colonyops/parlor/internal/tui"
)

// BrowseCmd runs the interactive review panel. It is also the default
// action when parlor is invoked without a subcommand.
type BrowseCmd struct {
	flags *Flags
	cfg   *config.Config
}

// NewBrowseCmd creates a new browse command.
func NewBrowseCmd(flags *Flags, cfg *config.Config) *BrowseCmd {
	return &BrowseCmd{flags: flags, cfg: cfg}
}

// Register adds the browse command to the application.
func (cmd *BrowseCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "browse",
		Usage:     "Open the interactive review panel",
		UsageText: "parlor browse",
		Description: `Opens the review panel: pick a provider from the rail to narrow the
review list, filter by rating or photos, and open individual reviews.

Catalog files are watched while the panel is open; edits show up live.`,
		Action: cmd.run,
	})

	return app
}

// Run executes the browse command. Exported for use as the default action.
func (cmd *BrowseCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *BrowseCmd) run(_ context.Context, _ *cli.Command) error {
	cat, paths, err := catalogfile.Load(cmd.cfg.DataDir, cmd.cfg.Data.Globs)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	deps := tui.Deps{
		Config:    cmd.cfg,
		Providers: cat.Providers,
		Reviews:   cat.Reviews,
		Logger:    log.With().Str("component", "tui").Logger(),
		Reload: func() (catalogfile.Catalog, error) {
			reloaded, _, err := catalogfile.Load(cmd.cfg.DataDir, cmd.cfg.Data.Globs)
			return reloaded, err
		},
	}

	if cmd.cfg.Data.WatchEnabled() {
		watcher, err := catalogfile.NewWatcher(paths, log.With().Str("component", "watcher").Logger())
		if err != nil {
			// Live reload is a convenience; the panel works without it.
			log.Warn().Err(err).Msg("catalog watcher unavailable")
		} else {
			defer func() { _ = watcher.Close() }()
			deps.ReloadEvents = watcher.Events()
		}
	}

	program := tea.NewProgram(tui.New(deps), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run panel: %w", err)
	}
	return nil
}
