package styles

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/domain/url"
)

const (
	maxTitleLength = 60
	maxURLLength   = 70
)

// TabItem is one saved tab in a list.
type TabItem struct {
	Index    int
	Title    string
	URL      string
	Selected bool
}

// TabItemsFromSession converts a saved session into list items.
func TabItemsFromSession(state *entity.SessionState) []TabItem {
	if state == nil {
		return nil
	}
	items := make([]TabItem, 0, len(state.Tabs))
	for i, tab := range state.Tabs {
		items = append(items, TabItem{
			Index:    i + 1,
			Title:    tab.Title,
			URL:      tab.URL,
			Selected: i == state.SelectedIndex,
		})
	}
	return items
}

// FilterValue implements list.Item.
func (i TabItem) FilterValue() string {
	return i.Title + " " + i.URL
}

// DisplayTitle falls back to the URL when the page had no title.
func (i TabItem) DisplayTitle() string {
	if i.Title != "" {
		return i.Title
	}
	return i.URL
}

// Truncate shortens s to max runes, ending with "...".
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// TabDelegate renders tab items with theme styling.
type TabDelegate struct {
	Theme *Theme
}

// Height returns the height of each item.
func (d TabDelegate) Height() int { return 2 }

// Spacing returns the spacing between items.
func (d TabDelegate) Spacing() int { return 0 }

// Update handles item-level events.
func (d TabDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

// Render renders a single list item.
func (d TabDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ti, ok := item.(TabItem)
	if !ok {
		return
	}

	t := d.Theme
	isCursor := index == m.Index()

	cursor := cursorEmpty
	titleStyle := t.ListItemTitle
	urlStyle := t.ListItemDesc
	if isCursor {
		cursor = cursorSelected
		titleStyle = titleStyle.Foreground(t.Accent).Bold(true)
		urlStyle = urlStyle.Foreground(t.Text)
	}

	line1 := lipgloss.JoinHorizontal(
		lipgloss.Left,
		t.Highlight.Render(cursor),
		titleStyle.Render(Truncate(ti.DisplayTitle(), maxTitleLength)),
	)
	if ti.Selected {
		line1 += " " + t.AccentBadge("active")
	}

	meta := ""
	if domain := url.ExtractDomain(ti.URL); domain != "" {
		meta = " " + t.MutedBadge(domain)
	}
	line2 := strings.Repeat(" ", 2) + urlStyle.Render(Truncate(ti.URL, maxURLLength)) + meta

	_, _ = fmt.Fprintf(w, "%s\n%s", line1, line2)
}

// NewTabList creates a themed list for saved tabs.
func NewTabList(theme *Theme, items []TabItem, width, height int) list.Model {
	listItems := make([]list.Item, len(items))
	for i, item := range items {
		listItems[i] = item
	}

	l := list.New(listItems, TabDelegate{Theme: theme}, width, height)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(true)

	l.Styles.PaginationStyle = lipgloss.NewStyle().Foreground(theme.Muted)
	l.Styles.ActivePaginationDot = lipgloss.NewStyle().Foreground(theme.Accent)
	l.Styles.InactivePaginationDot = lipgloss.NewStyle().Foreground(theme.Muted)

	return l
}
