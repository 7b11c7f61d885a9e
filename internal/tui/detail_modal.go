package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/parlor/internal/core/catalog"
	"github.com/colonyops/parlor/internal/core/styles"
)

// DetailModal shows a single review with its full comment rendered as
// markdown in a scrollable viewport.
type DetailModal struct {
	review   catalog.Review
	provider string
	viewport viewport.Model
	width    int
	height   int
}

// NewDetailModal renders the review body and prepares the viewport.
// providerName may be empty when the review references an unknown provider.
func NewDetailModal(rv catalog.Review, providerName string, width, height int) (*DetailModal, error) {
	contentWidth := modalContentWidth(width)

	body, err := renderMarkdown(rv.Text, contentWidth)
	if err != nil {
		return nil, fmt.Errorf("render review body: %w", err)
	}

	vp := viewport.New(contentWidth, modalContentHeight(height))
	vp.SetContent(body)

	return &DetailModal{
		review:   rv,
		provider: providerName,
		viewport: vp,
		width:    width,
		height:   height,
	}, nil
}

// Resize adjusts the modal to a new window size.
func (m *DetailModal) Resize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = modalContentWidth(width)
	m.viewport.Height = modalContentHeight(height)
}

// Update forwards scrolling to the viewport.
func (m *DetailModal) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}

// View renders the modal box.
func (m *DetailModal) View() string {
	rv := m.review

	author := rv.Author
	if author == "" {
		author = "anonymous"
	}
	title := styles.ModalTitleStyle.Render(fmt.Sprintf("%s %s", Stars(rv.Rating), author))

	meta := rv.Service
	if m.provider != "" {
		meta = m.provider + " " + styles.IconDot + " " + meta
	}
	if rv.Date != "" {
		meta += " " + styles.IconDot + " " + rv.Date
	}
	if rv.HasPhoto {
		meta += " " + styles.IconCamera
	}

	help := styles.ModalHelpStyle.Render("↑/↓ scroll " + styles.IconDot + " esc close")

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		styles.MutedStyle.Render(meta),
		"",
		m.viewport.View(),
		"",
		help,
	)

	return styles.ModalStyle.Render(content)
}

func renderMarkdown(text string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(text)
}

func modalContentWidth(windowWidth int) int {
	w := windowWidth - 12
	if w < 20 {
		w = 20
	}
	if w > 80 {
		w = 80
	}
	return w
}

func modalContentHeight(windowHeight int) int {
	h := windowHeight - 10
	if h < 5 {
		h = 5
	}
	return h
}
