package tui

import (
	"github.com/charmbracelet/huh"

	"github.com/colonyops/parlor/internal/core/catalog"
)

// newFilterForm builds the quality-filter picker. The chosen mode lands in
// *mode when the form completes; cancelling leaves it untouched because the
// form is seeded with the active value.
func newFilterForm(mode *catalog.FilterMode) *huh.Form {
	opts := make([]huh.Option[catalog.FilterMode], 0, len(catalog.Modes()))
	for _, m := range catalog.Modes() {
		opts = append(opts, huh.NewOption(m.Label(), m))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[catalog.FilterMode]().
				Title("Show reviews").
				Options(opts...).
				Value(mode),
		),
	)
	form.WithShowHelp(false)
	return form
}
