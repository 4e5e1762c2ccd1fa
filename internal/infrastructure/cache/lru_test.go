package cache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// evictLog records eviction callbacks.
type evictLog struct {
	mu   sync.Mutex
	keys []string
}

func (l *evictLog) record(key string, _ int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.keys = append(l.keys, key)
}

func (l *evictLog) snapshot() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.keys...)
}

func TestLRU_BasicOperations(t *testing.T) {
	cache := NewLRU[string, int](3, nil)

	cache.Set("a", 1)
	cache.Set("b", 2)
	cache.Set("c", 3)

	val, ok := cache.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, val)

	// Test not found
	val, ok = cache.Get("notfound")
	assert.False(t, ok)
	assert.Equal(t, 0, val)

	assert.Equal(t, 3, cache.Len())
	assert.Equal(t, 3, cache.Capacity())
}

func TestLRU_EvictionInvokesCallback(t *testing.T) {
	log := &evictLog{}
	cache := NewLRU[string, int](2, log.record)

	cache.Set("a", 1)
	cache.Set("b", 2)
	// Adding "c" should evict "a" (least recently used)
	cache.Set("c", 3)

	assert.Equal(t, []string{"a"}, log.snapshot())
	assert.False(t, cache.Contains("a"))
	assert.Equal(t, []string{"c", "b"}, cache.Keys())
}

func TestLRU_GetUpdatesRecency(t *testing.T) {
	log := &evictLog{}
	cache := NewLRU[string, int](4, log.record)

	for _, k := range []string{"A", "B", "C", "D"} {
		cache.Set(k, 0)
	}
	cache.Get("A")
	cache.Set("E", 0)

	assert.Equal(t, []string{"B"}, log.snapshot())
	assert.ElementsMatch(t, []string{"A", "C", "D", "E"}, cache.Keys())
}

func TestLRU_PeekDoesNotTouchRecency(t *testing.T) {
	log := &evictLog{}
	cache := NewLRU[string, int](2, log.record)

	cache.Set("a", 1)
	cache.Set("b", 2)

	val, ok := cache.Peek("a")
	require.True(t, ok)
	assert.Equal(t, 1, val)

	cache.Set("c", 3)
	assert.Equal(t, []string{"a"}, log.snapshot())
}

func TestLRU_UpdateExistingHandsOldValueToCallback(t *testing.T) {
	var displaced []int
	cache := NewLRU[string, int](2, func(_ string, v int) { displaced = append(displaced, v) })

	cache.Set("a", 1)
	cache.Set("b", 2)
	cache.Set("a", 100)

	val, ok := cache.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 100, val)
	assert.Equal(t, []int{1}, displaced)
	assert.Equal(t, 2, cache.Len())
}

func TestLRU_RemoveSkipsCallback(t *testing.T) {
	log := &evictLog{}
	cache := NewLRU[string, int](3, log.record)

	cache.Set("a", 1)
	cache.Set("b", 2)

	val, ok := cache.Remove("b")
	assert.True(t, ok)
	assert.Equal(t, 2, val)
	assert.Equal(t, 1, cache.Len())
	assert.Empty(t, log.snapshot())

	// Remove non-existent key should not panic
	_, ok = cache.Remove("notfound")
	assert.False(t, ok)
}

func TestLRU_PurgeEvictsEverythingOnce(t *testing.T) {
	log := &evictLog{}
	cache := NewLRU[string, int](3, log.record)

	cache.Set("a", 1)
	cache.Set("b", 2)
	cache.Set("c", 3)

	cache.Purge()
	cache.Purge()

	assert.Equal(t, []string{"a", "b", "c"}, log.snapshot())
	assert.Equal(t, 0, cache.Len())
}

func TestLRU_ResizeShrinks(t *testing.T) {
	log := &evictLog{}
	cache := NewLRU[string, int](3, log.record)

	cache.Set("a", 1)
	cache.Set("b", 2)
	cache.Set("c", 3)

	cache.Resize(1)

	assert.Equal(t, []string{"a", "b"}, log.snapshot())
	assert.Equal(t, []string{"c"}, cache.Keys())
}

func TestLRU_ClearSkipsCallback(t *testing.T) {
	log := &evictLog{}
	cache := NewLRU[string, int](3, log.record)

	cache.Set("a", 1)
	cache.Clear()

	assert.Equal(t, 0, cache.Len())
	assert.Empty(t, log.snapshot())
}

func TestLRU_ZeroCapacity(t *testing.T) {
	// Should default to capacity of 1
	cache := NewLRU[string, int](0, nil)

	cache.Set("a", 1)
	cache.Set("b", 2)

	_, ok := cache.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 1, cache.Len())
}

func TestLRU_ConcurrentAccess(t *testing.T) {
	cache := NewLRU[int, int](100, nil)
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(3)
		go func(i int) {
			defer wg.Done()
			cache.Set(i+100, i)
		}(i)
		go func(i int) {
			defer wg.Done()
			cache.Get(i)
		}(i)
		go func(i int) {
			defer wg.Done()
			cache.Remove(i + 50)
		}(i)
	}
	wg.Wait()

	require.LessOrEqual(t, cache.Len(), 100)
}
