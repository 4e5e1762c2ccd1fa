package entity

import (
	"errors"
	"fmt"
	"time"
)

// SessionStateVersion is the current schema version for session state.
// Increment when making breaking changes to the serialization format.
const SessionStateVersion = 1

// ErrUnsupportedSessionVersion is returned when a stored snapshot was written
// by an incompatible build.
var ErrUnsupportedSessionVersion = errors.New("unsupported session state version")

// SessionState is a snapshot of the tab strip, serialized to JSON and stored
// in the database so the next launch can restore it.
type SessionState struct {
	Version       int           `json:"version"`
	Tabs          []TabSnapshot `json:"tabs"`
	SelectedIndex int           `json:"selected_index"`
	SavedAt       time.Time     `json:"saved_at"`
}

// TabSnapshot captures the state of a single tab.
type TabSnapshot struct {
	ID    TabID  `json:"id"`
	URL   string `json:"url"`
	Title string `json:"title"`
}

// IDGenerator is a function that generates unique IDs.
type IDGenerator func() string

// SnapshotFromTabs creates a SessionState from a live tab list.
func SnapshotFromTabs(tabs TabList, selected TabID, now time.Time) *SessionState {
	snapTabs := make([]TabSnapshot, 0, len(tabs))
	selectedIndex := 0

	for i, tab := range tabs {
		if tab.ID == selected {
			selectedIndex = i
		}
		snapTabs = append(snapTabs, TabSnapshot{
			ID:    tab.ID,
			URL:   tab.URL,
			Title: tab.Title,
		})
	}

	return &SessionState{
		Version:       SessionStateVersion,
		Tabs:          snapTabs,
		SelectedIndex: selectedIndex,
		SavedAt:       now,
	}
}

// Validate checks that the snapshot can be restored.
func (s *SessionState) Validate() error {
	if s.Version != SessionStateVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedSessionVersion, s.Version)
	}
	return nil
}

// TabsFromSnapshot rebuilds a tab list from a snapshot.
// Tabs get fresh IDs from idGen so IDs are never reused across launches.
// Snapshot entries without a URL are skipped. The returned selection points at
// the tab that was selected when the snapshot was taken, clamped into range.
func TabsFromSnapshot(state *SessionState, idGen IDGenerator) (TabList, TabID) {
	if state == nil || len(state.Tabs) == 0 {
		return TabList{}, ""
	}

	tabs := make(TabList, 0, len(state.Tabs))
	selected := TabID("")

	for i, snap := range state.Tabs {
		if snap.URL == "" {
			continue
		}
		tab := NewTab(TabID(idGen()), snap.URL, snap.Title)
		tabs = append(tabs, tab)
		if i <= state.SelectedIndex {
			selected = tab.ID
		}
	}

	if selected == "" && len(tabs) > 0 {
		selected = tabs[0].ID
	}

	return tabs, selected
}
