// Package styles provides reusable lipgloss-based TUI components.
package styles

import "github.com/charmbracelet/lipgloss"

// Dark palette used by every command.
const (
	colorBackground     = "#0a0a0b"
	colorSurface        = "#1a1a1b"
	colorSurfaceVariant = "#2d2d2d"
	colorText           = "#ffffff"
	colorMuted          = "#909090"
	colorAccent         = "#4ade80"
	colorBorder         = "#333333"
	colorError          = "#ef4444"
	colorWarning        = "#f59e0b"
)

// Theme holds lipgloss colors and prebuilt styles.
type Theme struct {
	Background     lipgloss.Color
	Surface        lipgloss.Color
	SurfaceVariant lipgloss.Color
	Text           lipgloss.Color
	Muted          lipgloss.Color
	Accent         lipgloss.Color
	Border         lipgloss.Color
	Error          lipgloss.Color
	Warning        lipgloss.Color

	Title        lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	ListItemTitle lipgloss.Style
	ListItemDesc  lipgloss.Style

	Badge      lipgloss.Style
	BadgeMuted lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	Box lipgloss.Style
}

// NewTheme creates the default dark theme.
func NewTheme() *Theme {
	t := &Theme{
		Background:     lipgloss.Color(colorBackground),
		Surface:        lipgloss.Color(colorSurface),
		SurfaceVariant: lipgloss.Color(colorSurfaceVariant),
		Text:           lipgloss.Color(colorText),
		Muted:          lipgloss.Color(colorMuted),
		Accent:         lipgloss.Color(colorAccent),
		Border:         lipgloss.Color(colorBorder),
		Error:          lipgloss.Color(colorError),
		Warning:        lipgloss.Color(colorWarning),
	}
	t.buildStyles()
	return t
}

func (t *Theme) buildStyles() {
	t.Title = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	t.Normal = lipgloss.NewStyle().
		Foreground(t.Text)

	t.Subtle = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Highlight = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	t.WarningStyle = lipgloss.NewStyle().
		Foreground(t.Warning)

	t.SuccessStyle = lipgloss.NewStyle().
		Foreground(t.Accent)

	t.ListItemTitle = lipgloss.NewStyle().
		Foreground(t.Text)

	t.ListItemDesc = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Badge = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Padding(0, 1)

	t.BadgeMuted = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.SurfaceVariant).
		Padding(0, 1)

	t.HelpKey = lipgloss.NewStyle().
		Foreground(t.Accent)

	t.HelpDesc = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)
}
