// Package tabs owns the tab list, the selection, and the bounded cache of
// live rendering views.
package tabs

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/logging"
)

// DefaultURL is loaded by tabs created without a URL.
const DefaultURL = "https://www.google.com/"

// Config holds Manager settings.
type Config struct {
	// DefaultURL is used for AddTab with an empty URL and for the reset tab.
	DefaultURL string
	// CacheCapacity bounds the number of live views.
	CacheCapacity int
	// IDGenerator produces tab IDs. Defaults to random UUIDs.
	IDGenerator entity.IDGenerator
}

// Manager is the single owner of tab state for one window.
//
// Mutations are serialized by mu and publish a new State; listeners are
// called synchronously, in order, after each mutation. Listeners must not
// mutate the manager from inside the callback.
type Manager struct {
	mu       sync.Mutex
	notifyMu sync.Mutex
	state    atomic.Pointer[State]

	listenersMu  sync.Mutex
	listeners    map[uint64]Listener
	nextListener uint64

	views      *ViewCache
	defaultURL string
	idGen      entity.IDGenerator
	closed     atomic.Bool
}

// NewManager creates a manager holding one tab on the default URL.
func NewManager(ctx context.Context, cfg Config) *Manager {
	if cfg.DefaultURL == "" {
		cfg.DefaultURL = DefaultURL
	}
	if cfg.CacheCapacity <= 0 {
		cfg.CacheCapacity = DefaultCacheCapacity
	}
	if cfg.IDGenerator == nil {
		cfg.IDGenerator = uuid.NewString
	}

	log := logging.FromContext(logging.WithComponent(ctx, "tabs"))

	m := &Manager{
		listeners:  make(map[uint64]Listener),
		views:      NewViewCache(cfg.CacheCapacity, *log),
		defaultURL: cfg.DefaultURL,
		idGen:      cfg.IDGenerator,
	}

	initial := m.newDefaultTab()
	m.state.Store(&State{
		Tabs:          entity.TabList{initial},
		SelectedTabID: initial.ID,
		Version:       1,
	})

	log.Debug().
		Str("tab_id", string(initial.ID)).
		Int("cache_capacity", cfg.CacheCapacity).
		Msg("tab manager created")

	return m
}

// DefaultURL returns the URL used for new blank tabs.
func (m *Manager) DefaultURL() string {
	return m.defaultURL
}

// Snapshot returns the current state.
func (m *Manager) Snapshot() State {
	return *m.state.Load()
}

// Tab returns the tab with the given ID, or nil.
func (m *Manager) Tab(id entity.TabID) *entity.Tab {
	return m.Snapshot().Tabs.Find(id)
}

// SelectedTab returns the active tab.
func (m *Manager) SelectedTab() *entity.Tab {
	return m.Snapshot().SelectedTab()
}

// Subscribe registers fn, calls it once with the current state, and returns
// a function that removes it.
func (m *Manager) Subscribe(fn Listener) (unsubscribe func()) {
	m.notifyMu.Lock()
	defer m.notifyMu.Unlock()

	m.listenersMu.Lock()
	id := m.nextListener
	m.nextListener++
	m.listeners[id] = fn
	m.listenersMu.Unlock()

	fn(m.Snapshot())

	var once sync.Once
	return func() {
		once.Do(func() {
			m.listenersMu.Lock()
			delete(m.listeners, id)
			m.listenersMu.Unlock()
		})
	}
}

// AddTab appends a tab and selects it. An empty url means the default URL.
// No view is created.
func (m *Manager) AddTab(ctx context.Context, url, title string) *entity.Tab {
	if url == "" {
		url = m.defaultURL
	}
	tab := entity.NewTab(entity.TabID(m.idGen()), url, title)

	m.mu.Lock()
	cur := m.state.Load()
	next := m.publishLocked(cur.Tabs.Append(tab), tab.ID)

	logging.FromContext(ctx).Info().
		Str("tab_id", string(tab.ID)).
		Str("url", url).
		Int("tab_count", next.Tabs.Count()).
		Msg("tab created")

	m.notifyAndUnlock(next)
	return tab
}

// CloseTab removes a tab and releases its view.
//
// Closing while a single tab remains ignores id: every cached view is
// released and the list is replaced by one fresh default tab. Unknown ids
// are ignored otherwise. When the selected tab is closed the tab now at its
// former index is selected, or the new last tab.
func (m *Manager) CloseTab(ctx context.Context, id entity.TabID) {
	log := logging.FromContext(ctx)

	m.mu.Lock()
	cur := m.state.Load()

	if cur.Tabs.Count() <= 1 {
		m.views.Purge()
		fresh := m.newDefaultTab()
		next := m.publishLocked(entity.TabList{fresh}, fresh.ID)
		log.Info().
			Str("closed_id", string(id)).
			Str("tab_id", string(fresh.ID)).
			Msg("last tab closed, reset to default tab")
		m.notifyAndUnlock(next)
		return
	}

	remaining, idx := cur.Tabs.Without(id)
	if idx < 0 {
		m.mu.Unlock()
		log.Debug().Str("tab_id", string(id)).Msg("close ignored, unknown tab")
		return
	}

	selected := cur.SelectedTabID
	if selected == id {
		if idx > len(remaining)-1 {
			idx = len(remaining) - 1
		}
		selected = remaining[idx].ID
	}

	m.views.Remove(id)
	next := m.publishLocked(remaining, selected)

	log.Info().
		Str("tab_id", string(id)).
		Str("selected_id", string(selected)).
		Int("tab_count", remaining.Count()).
		Msg("tab closed")

	m.notifyAndUnlock(next)
}

// SelectTab makes id the active tab. Unknown ids return ErrTabNotFound and
// leave the state unchanged.
func (m *Manager) SelectTab(ctx context.Context, id entity.TabID) error {
	m.mu.Lock()
	cur := m.state.Load()

	if !cur.Tabs.Contains(id) {
		m.mu.Unlock()
		logging.FromContext(ctx).Debug().Str("tab_id", string(id)).Msg("select rejected, unknown tab")
		return ErrTabNotFound
	}
	if cur.SelectedTabID == id {
		m.mu.Unlock()
		return nil
	}

	next := m.publishLocked(cur.Tabs, id)
	logging.FromContext(ctx).Debug().Str("tab_id", string(id)).Msg("tab selected")
	m.notifyAndUnlock(next)
	return nil
}

// SelectNext selects the tab after the active one, wrapping to the first.
func (m *Manager) SelectNext(ctx context.Context) {
	m.selectRelative(ctx, 1)
}

// SelectPrevious selects the tab before the active one, wrapping to the last.
func (m *Manager) SelectPrevious(ctx context.Context) {
	m.selectRelative(ctx, -1)
}

func (m *Manager) selectRelative(ctx context.Context, offset int) {
	m.mu.Lock()
	cur := m.state.Load()

	target := cur.Tabs.Neighbor(cur.SelectedTabID, offset)
	if target == "" || target == cur.SelectedTabID {
		m.mu.Unlock()
		return
	}

	next := m.publishLocked(cur.Tabs, target)
	logging.FromContext(ctx).Debug().Str("tab_id", string(target)).Int("offset", offset).Msg("tab selected")
	m.notifyAndUnlock(next)
}

// UpdateTabURL records a navigation. Unknown ids and unchanged URLs are no-ops
// and publish nothing.
func (m *Manager) UpdateTabURL(ctx context.Context, id entity.TabID, url string) {
	m.updateTab(ctx, id, func(t *entity.Tab) *entity.Tab {
		if t.URL == url {
			return nil
		}
		return t.WithURL(url)
	})
}

// UpdateTabTitle records a title change. Unknown ids and unchanged titles are
// no-ops and publish nothing.
func (m *Manager) UpdateTabTitle(ctx context.Context, id entity.TabID, title string) {
	m.updateTab(ctx, id, func(t *entity.Tab) *entity.Tab {
		if t.Title == title {
			return nil
		}
		return t.WithTitle(title)
	})
}

// updateTab replaces the tab with the result of change; a nil result means no change.
func (m *Manager) updateTab(ctx context.Context, id entity.TabID, change func(*entity.Tab) *entity.Tab) {
	m.mu.Lock()
	cur := m.state.Load()

	idx := cur.Tabs.IndexOf(id)
	if idx < 0 {
		m.mu.Unlock()
		return
	}
	updated := change(cur.Tabs[idx])
	if updated == nil {
		m.mu.Unlock()
		return
	}

	next := m.publishLocked(cur.Tabs.ReplaceAt(idx, updated), cur.SelectedTabID)
	logging.FromContext(ctx).Debug().
		Str("tab_id", string(id)).
		Str("url", updated.URL).
		Str("title", updated.Title).
		Msg("tab updated")
	m.notifyAndUnlock(next)
}

// GetOrCreateView returns the live view for a tab, building it with factory
// when it is not cached. At most one factory call happens per uncached tab
// even under concurrent requests. Factory errors are returned and nothing is cached.
func (m *Manager) GetOrCreateView(ctx context.Context, id entity.TabID, factory port.ViewFactory) (*View, error) {
	if m.closed.Load() {
		return nil, ErrManagerClosed
	}
	if !m.Snapshot().Tabs.Contains(id) {
		return nil, ErrTabNotFound
	}
	return m.views.GetOrCreate(ctx, id, factory)
}

// CachedView returns the cached view for id without creating one or touching recency.
func (m *Manager) CachedView(id entity.TabID) (*View, bool) {
	return m.views.Peek(id)
}

// CacheLen returns the number of live views.
func (m *Manager) CacheLen() int {
	return m.views.Len()
}

// CachedIDs returns the tabs with live views, most recently used first.
func (m *Manager) CachedIDs() []entity.TabID {
	return m.views.IDs()
}

// SetCacheCapacity changes the view cache bound, releasing views that no longer fit.
func (m *Manager) SetCacheCapacity(ctx context.Context, capacity int) {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	m.views.Resize(capacity)
	logging.FromContext(ctx).Info().Int("cache_capacity", capacity).Msg("view cache resized")
}

// Restore replaces the tab list with a persisted session and releases all
// cached views. A nil, empty, or invalid session leaves a single default tab;
// an invalid session's error is returned after the fallback is applied.
func (m *Manager) Restore(ctx context.Context, session *entity.SessionState) error {
	log := logging.FromContext(ctx)

	var (
		restored entity.TabList
		selected entity.TabID
		err      error
	)
	if session != nil {
		if err = session.Validate(); err == nil {
			restored, selected = entity.TabsFromSnapshot(session, m.idGen)
		}
	}
	if len(restored) == 0 {
		fresh := m.newDefaultTab()
		restored = entity.TabList{fresh}
		selected = fresh.ID
	}

	m.mu.Lock()
	m.views.Purge()
	next := m.publishLocked(restored, selected)
	log.Info().
		Int("tab_count", restored.Count()).
		Str("selected_id", string(selected)).
		Msg("session restored")
	m.notifyAndUnlock(next)

	return err
}

// Teardown releases every cached view. The manager must not request views
// afterwards; GetOrCreateView returns ErrManagerClosed. Calling it again is a no-op.
func (m *Manager) Teardown(ctx context.Context) {
	if m.closed.Swap(true) {
		return
	}
	m.views.Purge()

	m.listenersMu.Lock()
	m.listeners = make(map[uint64]Listener)
	m.listenersMu.Unlock()

	logging.FromContext(ctx).Info().Msg("tab manager torn down")
}

func (m *Manager) newDefaultTab() *entity.Tab {
	return entity.NewTab(entity.TabID(m.idGen()), m.defaultURL, "")
}

// publishLocked stores a new state. Caller holds mu.
func (m *Manager) publishLocked(tabs entity.TabList, selected entity.TabID) State {
	next := &State{
		Tabs:          tabs,
		SelectedTabID: selected,
		Version:       m.state.Load().Version + 1,
	}
	m.state.Store(next)
	return *next
}

// notifyAndUnlock hands the mutation lock over to the notification lock so
// listeners observe snapshots in publication order, then calls them.
func (m *Manager) notifyAndUnlock(st State) {
	m.notifyMu.Lock()
	m.mu.Unlock()
	defer m.notifyMu.Unlock()

	m.listenersMu.Lock()
	ids := make([]uint64, 0, len(m.listeners))
	for id := range m.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	fns := make([]Listener, 0, len(ids))
	for _, id := range ids {
		fns = append(fns, m.listeners[id])
	}
	m.listenersMu.Unlock()

	for _, fn := range fns {
		fn(st)
	}
}
