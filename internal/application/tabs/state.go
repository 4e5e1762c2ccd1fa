package tabs

import "github.com/bnema/tabshell/internal/domain/entity"

// State is an immutable snapshot of the tab strip.
// Tabs is never modified after publication; a later mutation publishes a new State.
type State struct {
	Tabs          entity.TabList
	SelectedTabID entity.TabID
	// Version increases by one with every published snapshot.
	Version uint64
}

// SelectedIndex returns the position of the selected tab, or -1.
func (s State) SelectedIndex() int {
	return s.Tabs.IndexOf(s.SelectedTabID)
}

// SelectedTab returns the selected tab, or nil for an empty state.
func (s State) SelectedTab() *entity.Tab {
	return s.Tabs.Find(s.SelectedTabID)
}

// Listener receives every published snapshot, in publication order.
type Listener func(State)
