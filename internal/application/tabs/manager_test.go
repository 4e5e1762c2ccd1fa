package tabs_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/application/tabs"
	"github.com/bnema/tabshell/internal/domain/entity"
)

func newTestManager(t *testing.T, capacity int) *tabs.Manager {
	t.Helper()
	return tabs.NewManager(context.Background(), tabs.Config{
		DefaultURL:    "https://start.example/",
		CacheCapacity: capacity,
		IDGenerator:   seqIDs(),
	})
}

// assertInvariants checks the list is non-empty, the selection is valid and
// the cache is within bounds.
func assertInvariants(t *testing.T, m *tabs.Manager, capacity int) {
	t.Helper()
	st := m.Snapshot()
	require.NotEmpty(t, st.Tabs)
	assert.GreaterOrEqual(t, st.SelectedIndex(), 0, "selection must point at an existing tab")
	assert.LessOrEqual(t, m.CacheLen(), capacity)
}

func TestNewManager_StartsWithDefaultTab(t *testing.T) {
	m := newTestManager(t, 4)

	st := m.Snapshot()
	require.Len(t, st.Tabs, 1)
	assert.Equal(t, "https://start.example/", st.Tabs[0].URL)
	assert.Equal(t, st.Tabs[0].ID, st.SelectedTabID)
	assert.Equal(t, uint64(1), st.Version)
	assert.Equal(t, 0, m.CacheLen())
}

func TestNewManager_Defaults(t *testing.T) {
	m := tabs.NewManager(context.Background(), tabs.Config{})

	assert.Equal(t, tabs.DefaultURL, m.DefaultURL())
	assert.NotEmpty(t, m.SelectedTab().ID)
}

func TestAddTab_AppendsAndSelects(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, 4)

	tab := m.AddTab(ctx, "https://a.example/", "A")

	st := m.Snapshot()
	require.Len(t, st.Tabs, 2)
	assert.Same(t, tab, st.Tabs[1])
	assert.Equal(t, tab.ID, st.SelectedTabID)
	assert.Equal(t, 0, m.CacheLen(), "adding a tab must not create a view")
}

func TestAddTab_EmptyURLUsesDefault(t *testing.T) {
	m := newTestManager(t, 4)

	tab := m.AddTab(context.Background(), "", "")

	assert.Equal(t, "https://start.example/", tab.URL)
}

func TestAddTab_IDsAreUnique(t *testing.T) {
	ctx := context.Background()
	m := tabs.NewManager(ctx, tabs.Config{})

	seen := map[entity.TabID]bool{m.SelectedTab().ID: true}
	for i := 0; i < 20; i++ {
		tab := m.AddTab(ctx, "", "")
		assert.False(t, seen[tab.ID], "id %s reused", tab.ID)
		seen[tab.ID] = true
	}
}

func TestSelectTab(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, 4)
	first := m.SelectedTab()
	m.AddTab(ctx, "https://a.example/", "")

	require.NoError(t, m.SelectTab(ctx, first.ID))
	assert.Equal(t, first.ID, m.Snapshot().SelectedTabID)
}

func TestSelectTab_UnknownIDRejected(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, 4)
	before := m.Snapshot()

	err := m.SelectTab(ctx, "nope")

	assert.ErrorIs(t, err, tabs.ErrTabNotFound)
	assert.Equal(t, before, m.Snapshot())
}

func TestSelectTab_SameSelectionPublishesNothing(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, 4)
	before := m.Snapshot()

	require.NoError(t, m.SelectTab(ctx, before.SelectedTabID))

	assert.Equal(t, before.Version, m.Snapshot().Version)
}

func TestSelectNextAndPrevious_Wrap(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, 4)
	a := m.SelectedTab()
	b := m.AddTab(ctx, "https://b.example/", "")
	c := m.AddTab(ctx, "https://c.example/", "")

	m.SelectNext(ctx)
	assert.Equal(t, a.ID, m.SelectedTab().ID)

	m.SelectPrevious(ctx)
	assert.Equal(t, c.ID, m.SelectedTab().ID)

	m.SelectPrevious(ctx)
	assert.Equal(t, b.ID, m.SelectedTab().ID)
}

func TestSelectNext_SingleTabIsNoop(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, 4)
	before := m.Snapshot()

	m.SelectNext(ctx)

	assert.Equal(t, before.Version, m.Snapshot().Version)
}

func TestUpdateTab_IdempotentKeepsSameTab(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, 4)
	tab := m.AddTab(ctx, "https://a.example/", "A")
	before := m.Snapshot()

	m.UpdateTabURL(ctx, tab.ID, "https://a.example/")
	m.UpdateTabTitle(ctx, tab.ID, "A")

	after := m.Snapshot()
	assert.Same(t, tab, after.Tabs.Find(tab.ID))
	assert.Equal(t, before.Version, after.Version)
}

func TestUpdateTab_ChangesProduceNewTab(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, 4)
	tab := m.AddTab(ctx, "https://a.example/", "A")

	m.UpdateTabURL(ctx, tab.ID, "https://a.example/next")
	m.UpdateTabTitle(ctx, tab.ID, "Next")

	got := m.Tab(tab.ID)
	require.NotNil(t, got)
	assert.NotSame(t, tab, got)
	assert.Equal(t, tab.ID, got.ID)
	assert.Equal(t, "https://a.example/next", got.URL)
	assert.Equal(t, "Next", got.Title)
	// The original value is untouched.
	assert.Equal(t, "A", tab.Title)
}

func TestUpdateTab_UnknownIDIgnored(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, 4)
	before := m.Snapshot()

	m.UpdateTabURL(ctx, "nope", "https://x.example/")
	m.UpdateTabTitle(ctx, "nope", "x")

	assert.Equal(t, before, m.Snapshot())
}

func TestCloseTab_SelectedReselectsSameIndex(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, 4)
	a := m.SelectedTab()
	b := m.AddTab(ctx, "https://b.example/", "")
	c := m.AddTab(ctx, "https://c.example/", "")
	require.NoError(t, m.SelectTab(ctx, b.ID))

	m.CloseTab(ctx, b.ID)

	st := m.Snapshot()
	assert.Equal(t, []entity.TabID{a.ID, c.ID}, st.Tabs.IDs())
	assert.Equal(t, c.ID, st.SelectedTabID)
}

func TestCloseTab_SelectedLastClampsToNewLast(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, 4)
	m.AddTab(ctx, "https://b.example/", "")
	c := m.AddTab(ctx, "https://c.example/", "")
	b := m.Snapshot().Tabs[1]

	m.CloseTab(ctx, c.ID)

	assert.Equal(t, b.ID, m.Snapshot().SelectedTabID)
}

func TestCloseTab_UnselectedKeepsSelection(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, 4)
	a := m.SelectedTab()
	c := m.AddTab(ctx, "https://c.example/", "")

	m.CloseTab(ctx, a.ID)

	st := m.Snapshot()
	assert.Equal(t, []entity.TabID{c.ID}, st.Tabs.IDs())
	assert.Equal(t, c.ID, st.SelectedTabID)
}

func TestCloseTab_UnknownIDIgnored(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, 4)
	m.AddTab(ctx, "", "")
	before := m.Snapshot()

	m.CloseTab(ctx, "nope")

	assert.Equal(t, before, m.Snapshot())
}

func TestCloseTab_ReleasesCachedView(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, 4)
	a := m.SelectedTab()
	m.AddTab(ctx, "", "")
	factory := &recordingFactory{}

	v, err := m.GetOrCreateView(ctx, a.ID, factory.build)
	require.NoError(t, err)

	m.CloseTab(ctx, a.ID)

	assert.Equal(t, tabs.ViewReleased, v.State())
	assert.Equal(t, int32(1), factory.resources()[0].destroyed.Load())
	assert.Equal(t, 0, m.CacheLen())
}

func TestCloseTab_LastTabResets(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, 4)
	only := m.SelectedTab()
	m.UpdateTabURL(ctx, only.ID, "https://elsewhere.example/")
	factory := &recordingFactory{}

	_, err := m.GetOrCreateView(ctx, only.ID, factory.build)
	require.NoError(t, err)

	// The id is ignored when one tab remains.
	m.CloseTab(ctx, "whatever")

	st := m.Snapshot()
	require.Len(t, st.Tabs, 1)
	assert.NotEqual(t, only.ID, st.Tabs[0].ID)
	assert.Equal(t, "https://start.example/", st.Tabs[0].URL)
	assert.Equal(t, st.Tabs[0].ID, st.SelectedTabID)
	assert.Equal(t, 0, m.CacheLen())

	for _, res := range factory.resources() {
		assert.Equal(t, int32(1), res.destroyed.Load(), "each view released exactly once")
	}
}

func TestGetOrCreateView_ReusesCachedView(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, 4)
	id := m.SelectedTab().ID
	factory := &recordingFactory{}

	v1, err := m.GetOrCreateView(ctx, id, factory.build)
	require.NoError(t, err)
	v2, err := m.GetOrCreateView(ctx, id, factory.build)
	require.NoError(t, err)

	assert.Same(t, v1, v2)
	assert.Equal(t, int32(1), factory.calls.Load())
	assert.Equal(t, tabs.ViewUnbound, v1.State())
}

func TestGetOrCreateView_FactoryErrorCachesNothing(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, 4)
	id := m.SelectedTab().ID
	boom := errors.New("engine unavailable")

	v, err := m.GetOrCreateView(ctx, id, func(context.Context) (port.ViewResource, error) {
		return nil, boom
	})

	assert.Nil(t, v)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, m.CacheLen())
}

func TestGetOrCreateView_UnknownTab(t *testing.T) {
	m := newTestManager(t, 4)
	factory := &recordingFactory{}

	_, err := m.GetOrCreateView(context.Background(), "nope", factory.build)

	assert.ErrorIs(t, err, tabs.ErrTabNotFound)
	assert.Zero(t, factory.calls.Load())
}

func TestGetOrCreateView_LRUEviction(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, 4)
	ids := []entity.TabID{m.SelectedTab().ID}
	for i := 0; i < 4; i++ {
		ids = append(ids, m.AddTab(ctx, "", "").ID)
	}
	a, b, c, d, e := ids[0], ids[1], ids[2], ids[3], ids[4]
	factory := &recordingFactory{}

	views := map[entity.TabID]*tabs.View{}
	for _, id := range []entity.TabID{a, b, c, d} {
		v, err := m.GetOrCreateView(ctx, id, factory.build)
		require.NoError(t, err)
		views[id] = v
	}

	// Touch A so B becomes least recently used.
	_, err := m.GetOrCreateView(ctx, a, factory.build)
	require.NoError(t, err)

	_, err = m.GetOrCreateView(ctx, e, factory.build)
	require.NoError(t, err)

	assert.ElementsMatch(t, []entity.TabID{a, c, d, e}, m.CachedIDs())
	assert.Equal(t, tabs.ViewReleased, views[b].State())
	for _, id := range []entity.TabID{a, c, d} {
		assert.NotEqual(t, tabs.ViewReleased, views[id].State())
	}
	assert.Equal(t, int32(5), factory.calls.Load())
	assertInvariants(t, m, 4)
}

func TestGetOrCreateView_ConcurrentRequestsCreateOnce(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, 4)
	id := m.SelectedTab().ID

	var calls int
	var callsMu sync.Mutex
	factory := func(context.Context) (port.ViewResource, error) {
		callsMu.Lock()
		calls++
		callsMu.Unlock()
		// Widen the window for a racing request.
		time.Sleep(5 * time.Millisecond)
		return &fakeResource{}, nil
	}

	const workers = 16
	results := make([]*tabs.View, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := m.GetOrCreateView(ctx, id, factory)
			assert.NoError(t, err)
			results[i] = v
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, calls)
	for _, v := range results {
		assert.Same(t, results[0], v)
	}
	assert.Equal(t, 1, m.CacheLen())
}

func TestSetCacheCapacity_ReleasesOverflow(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, 4)
	factory := &recordingFactory{}

	for i := 0; i < 3; i++ {
		tab := m.AddTab(ctx, "", "")
		_, err := m.GetOrCreateView(ctx, tab.ID, factory.build)
		require.NoError(t, err)
	}

	m.SetCacheCapacity(ctx, 1)

	assert.Equal(t, 1, m.CacheLen())
	destroyed := 0
	for _, res := range factory.resources() {
		destroyed += int(res.destroyed.Load())
	}
	assert.Equal(t, 2, destroyed)
}

func TestTeardown_ReleasesAllOnce(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, 4)
	factory := &recordingFactory{}

	_, err := m.GetOrCreateView(ctx, m.SelectedTab().ID, factory.build)
	require.NoError(t, err)
	tab := m.AddTab(ctx, "", "")
	_, err = m.GetOrCreateView(ctx, tab.ID, factory.build)
	require.NoError(t, err)

	m.Teardown(ctx)
	m.Teardown(ctx)

	assert.Equal(t, 0, m.CacheLen())
	for _, res := range factory.resources() {
		assert.Equal(t, int32(1), res.destroyed.Load())
	}

	_, err = m.GetOrCreateView(ctx, tab.ID, factory.build)
	assert.ErrorIs(t, err, tabs.ErrManagerClosed)
}

func TestSubscribe_ReceivesCurrentAndSubsequentStates(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, 4)

	var got []tabs.State
	unsubscribe := m.Subscribe(func(st tabs.State) { got = append(got, st) })

	m.AddTab(ctx, "https://a.example/", "")
	m.UpdateTabTitle(ctx, m.SelectedTab().ID, "A")

	require.Len(t, got, 3)
	assert.Equal(t, uint64(1), got[0].Version)
	assert.Len(t, got[1].Tabs, 2)
	assert.Equal(t, "A", got[2].SelectedTab().Title)

	unsubscribe()
	unsubscribe()
	m.AddTab(ctx, "", "")
	assert.Len(t, got, 3)
}

func TestSubscribe_SnapshotsAreImmutable(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, 4)

	var first tabs.State
	m.Subscribe(func(st tabs.State) {
		if first.Version == 0 {
			first = st
		}
	})
	firstIDs := first.Tabs.IDs()

	m.AddTab(ctx, "", "")
	m.CloseTab(ctx, firstIDs[0])

	assert.Equal(t, firstIDs, first.Tabs.IDs())
}

func TestRestore_ReplacesTabs(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, 4)
	factory := &recordingFactory{}
	_, err := m.GetOrCreateView(ctx, m.SelectedTab().ID, factory.build)
	require.NoError(t, err)

	err = m.Restore(ctx, &entity.SessionState{
		Version:       entity.SessionStateVersion,
		SelectedIndex: 1,
		Tabs: []entity.TabSnapshot{
			{ID: "old-1", URL: "https://a.example/", Title: "A"},
			{ID: "old-2", URL: "https://b.example/", Title: "B"},
		},
	})
	require.NoError(t, err)

	st := m.Snapshot()
	require.Len(t, st.Tabs, 2)
	assert.Equal(t, "B", st.SelectedTab().Title)
	assert.NotEqual(t, entity.TabID("old-2"), st.SelectedTabID)
	assert.Equal(t, 0, m.CacheLen())
	assert.Equal(t, int32(1), factory.resources()[0].destroyed.Load())
}

func TestRestore_InvalidFallsBackToDefault(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, 4)

	err := m.Restore(ctx, &entity.SessionState{Version: 42, Tabs: []entity.TabSnapshot{{URL: "https://a.example/"}}})

	assert.ErrorIs(t, err, entity.ErrUnsupportedSessionVersion)
	st := m.Snapshot()
	require.Len(t, st.Tabs, 1)
	assert.Equal(t, "https://start.example/", st.Tabs[0].URL)
}

func TestRestore_NilFallsBackToDefault(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, 4)
	m.AddTab(ctx, "", "")

	require.NoError(t, m.Restore(ctx, nil))
	assert.Len(t, m.Snapshot().Tabs, 1)
}

// TestScenario_EndToEnd walks a typical session: three tabs, views for each,
// a close of the active tab and a navigation update.
func TestScenario_EndToEnd(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, 2)
	factory := &recordingFactory{}

	t1 := m.SelectedTab()
	_, err := m.GetOrCreateView(ctx, t1.ID, factory.build)
	require.NoError(t, err)

	t2 := m.AddTab(ctx, "https://two.example/", "")
	_, err = m.GetOrCreateView(ctx, t2.ID, factory.build)
	require.NoError(t, err)

	t3 := m.AddTab(ctx, "https://three.example/", "")
	_, err = m.GetOrCreateView(ctx, t3.ID, factory.build)
	require.NoError(t, err)
	assertInvariants(t, m, 2)

	// Capacity 2: the first tab's view was evicted and released.
	assert.ElementsMatch(t, []entity.TabID{t2.ID, t3.ID}, m.CachedIDs())
	assert.Equal(t, int32(1), factory.resources()[0].destroyed.Load())

	m.UpdateTabTitle(ctx, t3.ID, "Three")
	m.CloseTab(ctx, t3.ID)
	assertInvariants(t, m, 2)

	st := m.Snapshot()
	assert.Equal(t, []entity.TabID{t1.ID, t2.ID}, st.Tabs.IDs())
	assert.Equal(t, t2.ID, st.SelectedTabID)
	assert.Equal(t, int32(1), factory.resources()[2].destroyed.Load())

	require.NoError(t, m.SelectTab(ctx, t1.ID))
	v1, err := m.GetOrCreateView(ctx, t1.ID, factory.build)
	require.NoError(t, err)
	require.NoError(t, v1.Bind(t1.ID))
	assert.Equal(t, int32(4), factory.calls.Load())
	assertInvariants(t, m, 2)

	m.Teardown(ctx)
	for _, res := range factory.resources() {
		assert.Equal(t, int32(1), res.destroyed.Load())
	}
}
