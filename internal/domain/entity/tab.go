package entity

// TabID uniquely identifies a tab.
type TabID string

// Tab represents one browsing session in the tab strip.
// A published Tab is never mutated; updates produce a copy with the same ID.
type Tab struct {
	ID    TabID
	URL   string
	Title string // Page title reported by the engine, may be empty
}

// NewTab creates a tab.
func NewTab(id TabID, url, title string) *Tab {
	return &Tab{
		ID:    id,
		URL:   url,
		Title: title,
	}
}

// DisplayTitle returns the label shown in the tab strip.
// Falls back to the URL while the page has no title.
func (t *Tab) DisplayTitle() string {
	if t.Title != "" {
		return t.Title
	}
	return t.URL
}

// WithURL returns a copy of the tab pointing at url.
func (t *Tab) WithURL(url string) *Tab {
	c := *t
	c.URL = url
	return &c
}

// WithTitle returns a copy of the tab with a new title.
func (t *Tab) WithTitle(title string) *Tab {
	c := *t
	c.Title = title
	return &c
}

// TabList is an ordered collection of tabs; order is display order.
// Every method returning a TabList allocates a new slice so snapshots
// already handed to subscribers stay untouched.
type TabList []*Tab

// IndexOf returns the position of the tab with the given ID, or -1.
func (tl TabList) IndexOf(id TabID) int {
	for i, tab := range tl {
		if tab.ID == id {
			return i
		}
	}
	return -1
}

// Find returns a tab by ID.
func (tl TabList) Find(id TabID) *Tab {
	if i := tl.IndexOf(id); i >= 0 {
		return tl[i]
	}
	return nil
}

// Contains reports whether a tab with the given ID exists.
func (tl TabList) Contains(id TabID) bool {
	return tl.IndexOf(id) >= 0
}

// Count returns the number of tabs.
func (tl TabList) Count() int {
	return len(tl)
}

// Append returns a new list with tab added at the end.
func (tl TabList) Append(tab *Tab) TabList {
	out := make(TabList, 0, len(tl)+1)
	out = append(out, tl...)
	return append(out, tab)
}

// Without returns a new list with the tab removed and the index it had.
// When the tab is missing the original list and -1 are returned.
func (tl TabList) Without(id TabID) (TabList, int) {
	idx := tl.IndexOf(id)
	if idx < 0 {
		return tl, -1
	}
	out := make(TabList, 0, len(tl)-1)
	out = append(out, tl[:idx]...)
	out = append(out, tl[idx+1:]...)
	return out, idx
}

// ReplaceAt returns a new list with the tab at index i swapped for tab.
func (tl TabList) ReplaceAt(i int, tab *Tab) TabList {
	out := make(TabList, len(tl))
	copy(out, tl)
	out[i] = tab
	return out
}

// IDs returns the tab IDs in display order.
func (tl TabList) IDs() []TabID {
	ids := make([]TabID, len(tl))
	for i, tab := range tl {
		ids[i] = tab.ID
	}
	return ids
}

// Neighbor returns the ID of the tab offset positions away from id,
// wrapping around both ends. Returns "" when id is not in the list.
func (tl TabList) Neighbor(id TabID, offset int) TabID {
	n := len(tl)
	idx := tl.IndexOf(id)
	if idx < 0 || n == 0 {
		return ""
	}
	pos := ((idx+offset)%n + n) % n
	return tl[pos].ID
}
