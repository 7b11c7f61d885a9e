package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/parlor/internal/core/catalog"
	"github.com/colonyops/parlor/internal/core/styles"
)

// ReviewItem wraps a review for the list component.
type ReviewItem struct {
	Review catalog.Review
}

// FilterValue returns the value used for the list's fuzzy filtering. The
// panel disables it, but the interface requires one.
func (i ReviewItem) FilterValue() string {
	return fmt.Sprintf("%s %s %s", i.Review.Author, i.Review.Service, i.Review.Text)
}

// ReviewDelegate handles rendering of review items in the list.
type ReviewDelegate struct {
	Styles ReviewDelegateStyles
}

// ReviewDelegateStyles defines the styles for the review delegate.
type ReviewDelegateStyles struct {
	Normal   lipgloss.Style
	Selected lipgloss.Style
	Author   lipgloss.Style
	Meta     lipgloss.Style
	Text     lipgloss.Style
	Border   lipgloss.Style
}

// DefaultReviewDelegateStyles returns styles derived from the active theme.
func DefaultReviewDelegateStyles() ReviewDelegateStyles {
	return ReviewDelegateStyles{
		Normal:   lipgloss.NewStyle().Foreground(styles.ColorForeground),
		Selected: lipgloss.NewStyle().Foreground(styles.ColorPrimary).Bold(true),
		Author:   lipgloss.NewStyle().Foreground(styles.ColorSecondary),
		Meta:     lipgloss.NewStyle().Foreground(styles.ColorMuted),
		Text:     lipgloss.NewStyle().Foreground(styles.ColorForeground),
		Border:   lipgloss.NewStyle().Foreground(styles.ColorPrimary),
	}
}

// NewReviewDelegate creates a review delegate with default styles.
func NewReviewDelegate() ReviewDelegate {
	return ReviewDelegate{Styles: DefaultReviewDelegateStyles()}
}

// Height returns the height of each item.
func (d ReviewDelegate) Height() int {
	return 2
}

// Spacing returns the spacing between items.
func (d ReviewDelegate) Spacing() int {
	return 1
}

// Update handles item updates.
func (d ReviewDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Stars renders a rating as filled and empty stars. Ratings outside 0-5
// are clamped for display only; the underlying value is untouched.
func Stars(rating int) string {
	shown := rating
	if shown < 0 {
		shown = 0
	}
	if shown > 5 {
		shown = 5
	}
	filled := strings.Repeat(styles.IconStar, shown)
	empty := strings.Repeat(styles.IconStarEmpty, 5-shown)
	return styles.StarStyle.Render(filled) + styles.StarDimStyle.Render(empty)
}

// Render renders a single review item.
// Line 1: ★★★★★ Author • Service • 2026-07-14 [camera]
// Line 2: comment text (truncated to fit)
func (d ReviewDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ri, ok := item.(ReviewItem)
	if !ok {
		return
	}

	rv := ri.Review
	isSelected := index == m.Index()
	width := m.Width()
	if width <= 0 {
		width = 80
	}
	contentWidth := width - 4

	author := rv.Author
	if author == "" {
		author = "anonymous"
	}

	line1 := fmt.Sprintf("%s %s %s %s %s %s",
		Stars(rv.Rating),
		d.Styles.Author.Render(author),
		styles.IconDot,
		d.Styles.Meta.Render(rv.Service),
		styles.IconDot,
		d.Styles.Meta.Render(rv.Date),
	)
	if rv.HasPhoto {
		line1 += " " + d.Styles.Meta.Render(styles.IconCamera)
	}

	text := strings.ReplaceAll(rv.Text, "\n", " ")
	textRunes := []rune(text)
	if len(textRunes) > contentWidth && contentWidth > 3 {
		text = string(textRunes[:contentWidth-3]) + "..."
	}
	line2 := d.Styles.Text.Render(text)

	var border string
	if isSelected {
		border = d.Styles.Border.Render("┃") + " "
	} else {
		border = "  "
	}

	_, _ = fmt.Fprintf(w, "%s%s\n", border, line1)
	_, _ = fmt.Fprintf(w, "%s%s", border, line2)
}

// newReviewList builds the list model the panel embeds.
func newReviewList(width, height int) list.Model {
	l := list.New(nil, NewReviewDelegate(), width, height)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(true)
	return l
}

// reviewItems converts a filtered subset into list items, preserving order.
func reviewItems(reviews []catalog.Review) []list.Item {
	items := make([]list.Item, len(reviews))
	for i, r := range reviews {
		items[i] = ReviewItem{Review: r}
	}
	return items
}
