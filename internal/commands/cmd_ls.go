package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/parlor/internal/core/catalog"
	"github.com/colonyops/parlor/internal/core/config"
	"github.com/colonyops/parlor/internal/data/catalogfile"
)

// LsCmd prints a non-interactive provider table.
type LsCmd struct {
	flags *Flags
	cfg   *config.Config

	// flags
	filter string
}

// NewLsCmd creates a new ls command.
func NewLsCmd(flags *Flags, cfg *config.Config) *LsCmd {
	return &LsCmd{flags: flags, cfg: cfg}
}

// Register adds the ls command to the application.
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Usage:     "List providers with review counts and averages",
		UsageText: "parlor ls [--filter mode]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "filter",
				Usage:       "quality filter (all, five-star, four-plus-star, has-photo)",
				Value:       "all",
				Destination: &cmd.filter,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *LsCmd) run(_ context.Context, c *cli.Command) error {
	mode, err := catalog.ParseFilterMode(cmd.filter)
	if err != nil {
		return err
	}

	cat, _, err := catalogfile.Load(cmd.cfg.DataDir, cmd.cfg.Data.Globs)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	if len(cat.Providers) == 0 {
		fmt.Fprintln(os.Stderr, "No providers found. Run 'parlor seed' to create a sample catalog.")
		return nil
	}

	nameWidth := 40
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		// Leave room for the rating, count, and filter columns.
		nameWidth = w - 30
		if nameWidth < 10 {
			nameWidth = 10
		}
	}

	out := c.Root().Writer
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PROVIDER\tAVG\tREVIEWS")

	// The all-providers row first, matching the panel's rail order.
	all := catalog.Filter(cat.Reviews, "", mode)
	fmt.Fprintf(tw, "(all)\t%s\t%d\n", catalog.Average(all), len(all))

	for _, p := range cat.Providers {
		subset := catalog.Filter(cat.Reviews, p.ID, mode)
		fmt.Fprintf(tw, "%s\t%s\t%d\n", truncate(p.Name, nameWidth), catalog.Average(subset), len(subset))
	}

	return tw.Flush()
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
