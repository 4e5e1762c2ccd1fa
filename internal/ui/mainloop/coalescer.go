// Package mainloop schedules work onto the GTK main loop.
package mainloop

import "sync"

// Coalescer merges bursts of same-key tasks into one main-loop callback.
// The latest function posted for a key wins.
type Coalescer struct {
	mu        sync.Mutex
	queued    map[string]func()
	post      func(func())
	destroyed bool
}

// NewCoalescer returns a Coalescer that schedules through post.
func NewCoalescer(post func(func())) *Coalescer {
	if post == nil {
		panic("mainloop.NewCoalescer: post function cannot be nil")
	}
	return &Coalescer{
		queued: make(map[string]func()),
		post:   post,
	}
}

// Post queues fn under key. If a callback for key is already scheduled, fn
// replaces its work and nothing new is scheduled.
func (c *Coalescer) Post(key string, fn func()) {
	if fn == nil || key == "" {
		return
	}

	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	_, scheduled := c.queued[key]
	c.queued[key] = fn
	c.mu.Unlock()

	if scheduled {
		return
	}
	c.post(func() { c.run(key) })
}

func (c *Coalescer) run(key string) {
	c.mu.Lock()
	fn := c.queued[key]
	delete(c.queued, key)
	destroyed := c.destroyed
	c.mu.Unlock()

	if fn != nil && !destroyed {
		fn()
	}
}

// Pending returns the number of keys waiting to run.
func (c *Coalescer) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.queued)
}

// Destroy drops queued work. Later posts are ignored.
func (c *Coalescer) Destroy() {
	c.mu.Lock()
	c.destroyed = true
	c.queued = map[string]func(){}
	c.mu.Unlock()
}
