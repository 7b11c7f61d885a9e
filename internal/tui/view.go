package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/parlor/internal/core/styles"
)

// Fixed rows around the review list: header, rail, indicator, status, help.
const chromeHeight = 6

func listHeight(windowHeight int) int {
	h := windowHeight - chromeHeight
	if h < 3 {
		h = 3
	}
	return h
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "loading..."
	}

	if m.filterForm != nil {
		return m.overlay(m.filterForm.View())
	}
	if m.detail != nil {
		return m.overlay(m.detail.View())
	}

	var b strings.Builder

	b.WriteString(m.headerView())
	b.WriteString("\n")
	b.WriteString(m.rail.View(m.emphasis.Active()))
	b.WriteString("\n")
	b.WriteString(m.indicator.View(m.width))
	b.WriteString("\n")
	b.WriteString(m.reviewList.View())
	b.WriteString("\n")
	b.WriteString(m.statusView())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m *Model) headerView() string {
	title := styles.TitleStyle.Render("parlor")

	summary := fmt.Sprintf("%s %s %d reviews",
		styles.StarStyle.Render(styles.IconStar+" "+m.summary.Average),
		styles.IconDot,
		m.summary.Count,
	)

	filterTag := styles.SubtitleStyle.Render(m.filter.Label())

	left := title + "  " + summary
	right := filterTag

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m *Model) statusView() string {
	if m.statusMsg == "" {
		return ""
	}
	return styles.MutedStyle.Render(m.statusMsg)
}

// overlay centers content in the window.
func (m *Model) overlay(content string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
