// Package cache provides bounded in-memory caches.
package cache

import (
	"container/list"
	"sync"
)

// EvictFunc is called with every entry pushed out of the cache by capacity
// pressure, a resize, or a purge. It runs after the cache lock is released.
type EvictFunc[K comparable, V any] func(key K, value V)

// LRU is a thread-safe LRU (Least Recently Used) cache with a fixed capacity.
//
// When the cache reaches capacity, the least recently accessed entry is evicted
// to make room for new entries. Both Get and Set operations mark an entry as
// recently used; Peek does not.
type LRU[K comparable, V any] struct {
	capacity int
	mu       sync.RWMutex
	items    map[K]*list.Element
	order    *list.List // Front = most recent, Back = least recent
	onEvict  EvictFunc[K, V]
}

// entry holds a key-value pair in the LRU cache.
type entry[K comparable, V any] struct {
	key   K
	value V
}

// NewLRU creates a new LRU cache with the given capacity.
// Capacity must be positive; if zero or negative, a capacity of 1 is used.
// onEvict may be nil.
func NewLRU[K comparable, V any](capacity int, onEvict EvictFunc[K, V]) *LRU[K, V] {
	if capacity <= 0 {
		capacity = 1
	}
	return &LRU[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element),
		order:    list.New(),
		onEvict:  onEvict,
	}
}

// Get retrieves a value by key and marks it as recently used.
// Returns the value and true if found, or the zero value and false if not found.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		return elem.Value.(*entry[K, V]).value, true
	}
	var zero V
	return zero, false
}

// Peek retrieves a value without touching its recency.
func (c *LRU[K, V]) Peek(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if elem, ok := c.items[key]; ok {
		return elem.Value.(*entry[K, V]).value, true
	}
	var zero V
	return zero, false
}

// Set adds or updates a value in the cache and marks it as recently used.
// A displaced value for the same key, and the least recently used entry when
// the cache is full, are handed to the eviction callback.
func (c *LRU[K, V]) Set(key K, value V) {
	c.mu.Lock()
	var evicted []*entry[K, V]

	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		e := elem.Value.(*entry[K, V])
		evicted = append(evicted, &entry[K, V]{key: key, value: e.value})
		e.value = value
	} else {
		// Evict before inserting so the new entry is never its own victim.
		for c.order.Len() >= c.capacity {
			evicted = append(evicted, c.removeOldest())
		}
		c.items[key] = c.order.PushFront(&entry[K, V]{key: key, value: value})
	}
	c.mu.Unlock()

	c.notify(evicted)
}

// Remove deletes a key from the cache and returns its value.
// The eviction callback is not invoked; the caller owns the returned value.
func (c *LRU[K, V]) Remove(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.order.Remove(elem)
		delete(c.items, key)
		return elem.Value.(*entry[K, V]).value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is cached without touching its recency.
func (c *LRU[K, V]) Contains(key K) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.items[key]
	return ok
}

// Keys returns the cached keys from most to least recently used.
func (c *LRU[K, V]) Keys() []K {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := make([]K, 0, c.order.Len())
	for elem := c.order.Front(); elem != nil; elem = elem.Next() {
		keys = append(keys, elem.Value.(*entry[K, V]).key)
	}
	return keys
}

// Len returns the number of items currently in the cache.
func (c *LRU[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.order.Len()
}

// Capacity returns the maximum number of entries.
func (c *LRU[K, V]) Capacity() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.capacity
}

// Resize changes the capacity, evicting least recently used entries that no
// longer fit.
func (c *LRU[K, V]) Resize(capacity int) {
	if capacity <= 0 {
		capacity = 1
	}

	c.mu.Lock()
	c.capacity = capacity
	var evicted []*entry[K, V]
	for c.order.Len() > c.capacity {
		evicted = append(evicted, c.removeOldest())
	}
	c.mu.Unlock()

	c.notify(evicted)
}

// Purge removes every entry, passing each to the eviction callback from least
// to most recently used.
func (c *LRU[K, V]) Purge() {
	c.mu.Lock()
	evicted := make([]*entry[K, V], 0, c.order.Len())
	for c.order.Len() > 0 {
		evicted = append(evicted, c.removeOldest())
	}
	c.mu.Unlock()

	c.notify(evicted)
}

// Clear removes all items from the cache without invoking the callback.
func (c *LRU[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[K]*list.Element)
	c.order.Init()
}

// removeOldest unlinks the back entry. Caller holds the write lock.
func (c *LRU[K, V]) removeOldest() *entry[K, V] {
	oldest := c.order.Back()
	c.order.Remove(oldest)
	e := oldest.Value.(*entry[K, V])
	delete(c.items, e.key)
	return e
}

func (c *LRU[K, V]) notify(evicted []*entry[K, V]) {
	if c.onEvict == nil {
		return
	}
	for _, e := range evicted {
		c.onEvict(e.key, e.value)
	}
}
