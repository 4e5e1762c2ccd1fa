// Package model provides Bubble Tea models for interactive commands.
package model

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tabshell/internal/cli/styles"
	"github.com/bnema/tabshell/internal/domain/entity"
)

const (
	defaultPickerWidth  = 80
	defaultPickerHeight = 20
	pickerChromeHeight  = 4
)

// TabPickerModel lets the user choose one tab from the saved session.
type TabPickerModel struct {
	theme  *styles.Theme
	list   list.Model
	keys   styles.PickerKeyMap
	help   help.Model
	chosen *styles.TabItem
	width  int
	height int
}

// NewTabPickerModel creates a picker over the tabs of state.
func NewTabPickerModel(theme *styles.Theme, state *entity.SessionState) TabPickerModel {
	items := styles.TabItemsFromSession(state)
	l := styles.NewTabList(theme, items, defaultPickerWidth, defaultPickerHeight-pickerChromeHeight)
	if state != nil {
		l.Select(state.SelectedIndex)
	}

	return TabPickerModel{
		theme:  theme,
		list:   l,
		keys:   styles.DefaultPickerKeyMap(),
		help:   styles.NewStyledHelp(theme),
		width:  defaultPickerWidth,
		height: defaultPickerHeight,
	}
}

// Init implements tea.Model.
func (m TabPickerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m TabPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(msg.Width, max(1, msg.Height-pickerChromeHeight))
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		// While the filter prompt is open every key belongs to the list.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Choose):
			if item, ok := m.list.SelectedItem().(styles.TabItem); ok {
				m.chosen = &item
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m TabPickerModel) View() string {
	header := m.theme.Title.Render(styles.IconTab + " Saved tabs")
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		m.list.View(),
		m.help.View(m.keys),
	)
}

// Chosen returns the tab picked with enter, if any.
func (m TabPickerModel) Chosen() (styles.TabItem, bool) {
	if m.chosen == nil {
		return styles.TabItem{}, false
	}
	return *m.chosen, true
}
