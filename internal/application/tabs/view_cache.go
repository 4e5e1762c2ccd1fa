package tabs

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/infrastructure/cache"
)

// DefaultCacheCapacity is the number of live views kept when no capacity is configured.
const DefaultCacheCapacity = 4

// ViewCache keeps at most capacity live views, keyed by tab, evicting the
// least recently used. Evicted and removed views are released exactly once.
type ViewCache struct {
	// mu makes lookup, creation, insertion and eviction one critical section,
	// so concurrent requests for an uncached tab build a single view.
	mu     sync.Mutex
	lru    *cache.LRU[entity.TabID, *View]
	logger zerolog.Logger
}

// NewViewCache creates a cache holding up to capacity views.
func NewViewCache(capacity int, logger zerolog.Logger) *ViewCache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	vc := &ViewCache{logger: logger}
	vc.lru = cache.NewLRU[entity.TabID, *View](capacity, vc.onEvict)
	return vc
}

func (vc *ViewCache) onEvict(id entity.TabID, v *View) {
	if v.Release() {
		vc.logger.Info().Str("tab_id", string(id)).Msg("view evicted")
	}
}

// GetOrCreate returns the cached view for id, refreshing its recency, or
// builds one with factory and caches it. A factory error leaves the cache unchanged.
func (vc *ViewCache) GetOrCreate(ctx context.Context, id entity.TabID, factory port.ViewFactory) (*View, error) {
	vc.mu.Lock()
	defer vc.mu.Unlock()

	if v, ok := vc.lru.Get(id); ok {
		return v, nil
	}

	resource, err := factory(ctx)
	if err != nil {
		return nil, fmt.Errorf("create view for tab %s: %w", id, err)
	}

	v := NewView(resource)
	vc.lru.Set(id, v)
	vc.logger.Debug().Str("tab_id", string(id)).Int("cached", vc.lru.Len()).Msg("view created")
	return v, nil
}

// Peek returns the cached view for id without touching recency.
func (vc *ViewCache) Peek(id entity.TabID) (*View, bool) {
	return vc.lru.Peek(id)
}

// Remove drops and releases the view for id, if cached.
func (vc *ViewCache) Remove(id entity.TabID) {
	vc.mu.Lock()
	defer vc.mu.Unlock()

	if v, ok := vc.lru.Remove(id); ok {
		if v.Release() {
			vc.logger.Info().Str("tab_id", string(id)).Msg("view released")
		}
	}
}

// Purge releases every cached view and empties the cache.
func (vc *ViewCache) Purge() {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	vc.lru.Purge()
}

// Resize changes the capacity, releasing views that no longer fit.
func (vc *ViewCache) Resize(capacity int) {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	vc.lru.Resize(capacity)
}

// Len returns the number of cached views.
func (vc *ViewCache) Len() int {
	return vc.lru.Len()
}

// Capacity returns the current bound.
func (vc *ViewCache) Capacity() int {
	return vc.lru.Capacity()
}

// IDs returns cached tab IDs from most to least recently used.
func (vc *ViewCache) IDs() []entity.TabID {
	return vc.lru.Keys()
}
