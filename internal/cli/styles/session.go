package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tabshell/internal/domain/entity"
)

// SessionRenderer renders the saved session for the tabs command.
type SessionRenderer struct {
	theme *Theme
}

// NewSessionRenderer creates a session renderer with the given theme.
func NewSessionRenderer(theme *Theme) *SessionRenderer {
	return &SessionRenderer{theme: theme}
}

// RenderSession lists every saved tab, marking the selected one.
func (r *SessionRenderer) RenderSession(state *entity.SessionState) string {
	t := r.theme
	iconStyle := lipgloss.NewStyle().Foreground(t.Accent)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n  %s %s %s\n\n",
		iconStyle.Render(IconTab),
		t.Title.Render(fmt.Sprintf("%d saved tabs", len(state.Tabs))),
		t.Subtle.Render("saved "+RelativeTime(state.SavedAt)),
	))

	for _, item := range TabItemsFromSession(state) {
		marker := cursorEmpty
		title := t.Normal
		if item.Selected {
			marker = cursorSelected
			title = t.Highlight
		}
		sb.WriteString(fmt.Sprintf("  %s%s %s\n      %s\n",
			t.Highlight.Render(marker),
			t.Subtle.Render(fmt.Sprintf("%2d.", item.Index)),
			title.Render(Truncate(item.DisplayTitle(), maxTitleLength)),
			t.Subtle.Render(Truncate(item.URL, maxURLLength)),
		))
	}
	return sb.String()
}

// RenderNoSession renders the message shown before anything was saved.
func (r *SessionRenderer) RenderNoSession() string {
	return fmt.Sprintf("\n  %s %s\n",
		lipgloss.NewStyle().Foreground(r.theme.Muted).Render(IconInfo),
		r.theme.Subtle.Render("No saved session yet. Run 'tabshell browse' first."),
	)
}

// RenderCleared confirms that the saved session was deleted.
func (r *SessionRenderer) RenderCleared() string {
	return fmt.Sprintf("\n  %s %s\n",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Normal.Render("Saved session cleared"),
	)
}

// RenderError renders an error message.
func (r *SessionRenderer) RenderError(err error) string {
	return fmt.Sprintf("\n  %s %s\n",
		r.theme.ErrorStyle.Render(IconX),
		r.theme.ErrorStyle.Render(err.Error()),
	)
}
