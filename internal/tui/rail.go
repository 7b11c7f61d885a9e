package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/parlor/internal/core/catalog"
	"github.com/colonyops/parlor/internal/core/styles"
	"github.com/colonyops/parlor/pkg/kv"
)

// AllKey is the registry sentinel for the "all providers" control. Provider
// ids come from user data, so the sentinel uses characters no id will.
const AllKey = "__all__"

// ControlBox is the measured horizontal geometry of one rail control,
// relative to the rail's left edge. Boxes are written into the registry on
// every measurement pass and read by the indicator; they are a cache of the
// latest layout, never authoritative state.
type ControlBox struct {
	Offset int
	Width  int
}

// ProviderRail renders the horizontal row of selectable controls: the "All"
// control followed by one control per provider.
//
// The rail is a controlled view. It never owns the selection value; it only
// requests changes through onSelect and trusts whatever SetSelected passes
// down on the next cycle.
type ProviderRail struct {
	providers []catalog.Provider
	selected  string // provider id, "" = no selection; owned by the parent
	cursor    int    // focused control index, 0 = the All control
	width     int
	registry  *kv.Store[string, ControlBox]
	onSelect  func(id string)
}

// NewProviderRail creates a rail that records control geometry in registry
// and reports selection requests through onSelect. onSelect receives the
// requested provider id, or "" to clear the selection.
func NewProviderRail(registry *kv.Store[string, ControlBox], onSelect func(id string)) *ProviderRail {
	return &ProviderRail{
		registry: registry,
		onSelect: onSelect,
	}
}

// SetProviders replaces the provider roster. The cursor is clamped so it
// always points at an existing control.
func (r *ProviderRail) SetProviders(providers []catalog.Provider) {
	r.providers = providers
	if r.cursor > len(providers) {
		r.cursor = len(providers)
	}
}

// SetSelected passes the externally owned selection value down to the rail.
func (r *ProviderRail) SetSelected(id string) {
	r.selected = id
}

// SetWidth sets the available rail width in cells.
func (r *ProviderRail) SetWidth(w int) {
	r.width = w
}

// MoveLeft shifts the cursor one control left, stopping at the All control.
func (r *ProviderRail) MoveLeft() {
	if r.cursor > 0 {
		r.cursor--
	}
}

// MoveRight shifts the cursor one control right, stopping at the last
// provider.
func (r *ProviderRail) MoveRight() {
	if r.cursor < len(r.providers) {
		r.cursor++
	}
}

// Activate requests a selection change for the control under the cursor.
// Activating the All control always requests a clear. Activating the
// already-selected provider toggles it off; any other provider replaces the
// selection. The rail does not apply the change itself.
func (r *ProviderRail) Activate() {
	r.ActivateIndex(r.cursor)
}

// ActivateIndex activates the control at index i (0 = All). Out-of-range
// indexes are ignored.
func (r *ProviderRail) ActivateIndex(i int) {
	if i < 0 || i > len(r.providers) || r.onSelect == nil {
		return
	}
	if i == 0 {
		r.onSelect("")
		return
	}

	id := r.providers[i-1].ID
	if id == r.selected {
		r.onSelect("")
		return
	}
	r.onSelect(id)
}

// SelectedKey returns the registry key of the currently selected control.
func (r *ProviderRail) SelectedKey() string {
	if r.selected == "" {
		return AllKey
	}
	return r.selected
}

// keys returns the registry key for each control in render order.
func (r *ProviderRail) keys() []string {
	keys := make([]string, 0, len(r.providers)+1)
	keys = append(keys, AllKey)
	for _, p := range r.providers {
		keys = append(keys, p.ID)
	}
	return keys
}

func (r *ProviderRail) label(i int) string {
	if i == 0 {
		return styles.IconAllProfile + " All"
	}
	return styles.IconPerson + " " + r.providers[i-1].Name
}

func (r *ProviderRail) style(i int, emphasized bool) lipgloss.Style {
	key := r.keys()[i]
	switch {
	case key == r.SelectedKey() && emphasized:
		return styles.TabEmphasisStyle
	case key == r.SelectedKey():
		return styles.TabActiveStyle
	case i == r.cursor:
		return styles.TabCursorStyle
	default:
		return styles.TabStyle
	}
}

// Measure lays the controls out for the current width and records each
// control's box in the registry. It runs on every render and again
// synchronously after any event that can move controls (resize, roster
// reload), so indicator retargeting never reads a stale layout.
func (r *ProviderRail) Measure() {
	offset := 0
	for i, key := range r.keys() {
		// State styles differ only in color attributes, so the neutral
		// style gives the same cell width the render will.
		w := lipgloss.Width(styles.TabStyle.Render(r.label(i)))
		r.registry.Set(key, ControlBox{Offset: offset, Width: w})
		offset += w
	}
}

// View renders the rail and refreshes control geometry as a side effect.
func (r *ProviderRail) View(emphasized bool) string {
	r.Measure()

	var b strings.Builder
	for i := range r.keys() {
		b.WriteString(r.style(i, emphasized).Render(r.label(i)))
	}

	row := b.String()
	if r.width > 0 {
		row = lipgloss.NewStyle().MaxWidth(r.width).Render(row)
	}
	return row
}
