// Package styles provides the shared lipgloss theme for CLI and TUI output.
package styles

import (
	"sort"

	glamouransi "github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Background lipgloss.Color
	Surface    lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tokyo-night"

// themes holds the built-in named palettes.
var themes = map[string]Palette{
	"tokyo-night": {
		Primary:    lipgloss.Color("#7aa2f7"),
		Secondary:  lipgloss.Color("#7dcfff"),
		Foreground: lipgloss.Color("#c0caf5"),
		Muted:      lipgloss.Color("#565f89"),
		Background: lipgloss.Color("#1a1b26"),
		Surface:    lipgloss.Color("#3b4261"),
		Success:    lipgloss.Color("#9ece6a"),
		Warning:    lipgloss.Color("#e0af68"),
		Error:      lipgloss.Color("#f7768e"),
	},
	"gruvbox": {
		Primary:    lipgloss.Color("#83a598"),
		Secondary:  lipgloss.Color("#8ec07c"),
		Foreground: lipgloss.Color("#ebdbb2"),
		Muted:      lipgloss.Color("#665c54"),
		Background: lipgloss.Color("#282828"),
		Surface:    lipgloss.Color("#3c3836"),
		Success:    lipgloss.Color("#b8bb26"),
		Warning:    lipgloss.Color("#fabd2f"),
		Error:      lipgloss.Color("#fb4934"),
	},
	"rose": {
		Primary:    lipgloss.Color("#eb6f92"),
		Secondary:  lipgloss.Color("#f6c177"),
		Foreground: lipgloss.Color("#e0def4"),
		Muted:      lipgloss.Color("#6e6a86"),
		Background: lipgloss.Color("#191724"),
		Surface:    lipgloss.Color("#26233a"),
		Success:    lipgloss.Color("#9ccfd8"),
		Warning:    lipgloss.Color("#f6c177"),
		Error:      lipgloss.Color("#eb6f92"),
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Semantic color aliases, populated by SetTheme.
var (
	ColorPrimary    lipgloss.Color
	ColorSecondary  lipgloss.Color
	ColorForeground lipgloss.Color
	ColorMuted      lipgloss.Color
	ColorBackground lipgloss.Color
	ColorSurface    lipgloss.Color
	ColorSuccess    lipgloss.Color
	ColorWarning    lipgloss.Color
	ColorError      lipgloss.Color
)

// Shared style exports, populated by SetTheme.
var (
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	MutedStyle    lipgloss.Style
	StarStyle     lipgloss.Style
	StarDimStyle  lipgloss.Style

	TabStyle         lipgloss.Style
	TabActiveStyle   lipgloss.Style
	TabCursorStyle   lipgloss.Style
	TabEmphasisStyle lipgloss.Style
	IndicatorStyle   lipgloss.Style

	ModalStyle      lipgloss.Style
	ModalTitleStyle lipgloss.Style
	ModalHelpStyle  lipgloss.Style
)

func init() {
	SetTheme(themes[DefaultTheme])
}

// SetTheme applies the palette and rebuilds all derived styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(p.Primary)
	SubtitleStyle = lipgloss.NewStyle().Foreground(p.Secondary)
	MutedStyle = lipgloss.NewStyle().Foreground(p.Muted)
	StarStyle = lipgloss.NewStyle().Foreground(p.Warning)
	StarDimStyle = lipgloss.NewStyle().Foreground(p.Surface)

	TabStyle = lipgloss.NewStyle().Foreground(p.Muted).Padding(0, 1)
	TabActiveStyle = lipgloss.NewStyle().Foreground(p.Foreground).Bold(true).Padding(0, 1)
	TabCursorStyle = lipgloss.NewStyle().Foreground(p.Secondary).Padding(0, 1).Underline(true)
	TabEmphasisStyle = lipgloss.NewStyle().Foreground(p.Primary).Bold(true).Padding(0, 1)
	IndicatorStyle = lipgloss.NewStyle().Foreground(p.Primary)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Surface).
		Padding(1, 2)
	ModalTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(p.Primary)
	ModalHelpStyle = lipgloss.NewStyle().Foreground(p.Muted)
}

func colorHexPtr(c lipgloss.Color) *string {
	if c == "" {
		return nil
	}
	hex := string(c)
	return &hex
}

// GlamourStyle returns a Glamour style config derived from the active theme.
func GlamourStyle() glamouransi.StyleConfig {
	cfg := glamourstyles.DarkStyleConfig

	fg := colorHexPtr(ColorForeground)
	primary := colorHexPtr(ColorPrimary)
	secondary := colorHexPtr(ColorSecondary)
	muted := colorHexPtr(ColorMuted)
	surface := colorHexPtr(ColorSurface)

	cfg.Document.Color = fg
	cfg.Paragraph.Color = fg

	cfg.Heading.Color = primary
	cfg.H1.Color = fg
	cfg.H1.BackgroundColor = surface
	cfg.H2.Color = primary
	cfg.H3.Color = primary

	cfg.BlockQuote.Color = muted
	cfg.HorizontalRule.Color = muted

	cfg.Link.Color = secondary
	cfg.LinkText.Color = secondary

	cfg.Code.Color = secondary
	cfg.CodeBlock.Color = muted

	return cfg
}
