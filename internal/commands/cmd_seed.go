package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/parlor/internal/core/catalog"
	"github.com/colonyops/parlor/internal/core/config"
	"github.com/colonyops/parlor/internal/data/catalogfile"
	"github.com/colonyops/parlor/pkg/randid"
)

// SeedCmd writes a sample catalog so a fresh install has data to browse.
type SeedCmd struct {
	flags *Flags
	cfg   *config.Config

	// flags
	force bool
}

// NewSeedCmd creates a new seed command.
func NewSeedCmd(flags *Flags, cfg *config.Config) *SeedCmd {
	return &SeedCmd{flags: flags, cfg: cfg}
}

// Register adds the seed command to the application.
func (cmd *SeedCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "seed",
		Usage:     "Write a sample catalog file",
		UsageText: "parlor seed [--force]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "force",
				Usage:       "overwrite an existing sample catalog",
				Destination: &cmd.force,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *SeedCmd) run(_ context.Context, c *cli.Command) error {
	path := filepath.Join(cmd.cfg.DataDir, "catalog", "sample.yml")

	if _, err := os.Stat(path); err == nil && !cmd.force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	data, err := yaml.Marshal(sampleCatalog())
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create catalog dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}

	fmt.Fprintf(c.Root().Writer, "Wrote %s\n", path)
	return nil
}

func sampleCatalog() catalogfile.Catalog {
	rid := func() string { return "rv-" + randid.Generate(8) }

	return catalogfile.Catalog{
		Providers: []catalog.Provider{
			{ID: "mira", Name: "Mira Chen", Avatar: "avatars/mira.png"},
			{ID: "joss", Name: "Joss Okafor", Avatar: "avatars/joss.png"},
			{ID: "elena", Name: "Elena Petrova", Avatar: "avatars/elena.png"},
		},
		Reviews: []catalog.Review{
			{ID: rid(), ProviderID: "mira", Rating: 5, HasPhoto: true, Author: "Dana", Service: "Balayage", Date: "2026-07-14",
				Text: "Mira completely transformed my hair. The **balayage** blend is seamless and she talked me through every step."},
			{ID: rid(), ProviderID: "mira", Rating: 4, Author: "Lee", Service: "Haircut", Date: "2026-07-02",
				Text: "Solid cut, easy booking. Would have liked a little more time on styling tips."},
			{ID: rid(), ProviderID: "joss", Rating: 5, HasPhoto: true, Author: "Sam", Service: "Skin fade", Date: "2026-06-28",
				Text: "Sharpest fade I've had in years. Joss is fast *and* careful."},
			{ID: rid(), ProviderID: "joss", Rating: 3, Author: "Ash", Service: "Beard trim", Date: "2026-06-20",
				Text: "Decent trim but the appointment started twenty minutes late."},
			{ID: rid(), ProviderID: "elena", Rating: 5, Author: "Noor", Service: "Color correction", Date: "2026-06-11",
				Text: "Fixed a box-dye disaster another salon refused to touch. Worth every penny."},
			{ID: rid(), ProviderID: "elena", Rating: 4, HasPhoto: true, Author: "Kit", Service: "Keratin treatment", Date: "2026-05-30",
				Text: "Hair is noticeably smoother. Booking again in three months."},
		},
	}
}
