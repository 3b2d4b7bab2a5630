// Package cache provides a small generic cache with a soft size limit.
//
// It backs the per-size font faces of the text package: a chart uses two or
// three sizes, but a long-running caller may measure many.
package cache

import (
	"slices"
	"sync"
)

// Cache is a thread-safe map with least-recently-used eviction. When it
// grows past its soft limit, the oldest quarter of the entries is dropped.
//
// Cache must not be copied after creation (has mutex).
type Cache[K comparable, V any] struct {
	mu        sync.Mutex
	entries   map[K]*entry[V]
	softLimit int
	tick      int64 // Monotonic access counter
	evicted   func(V)
}

type entry[V any] struct {
	value V
	atime int64
}

// New creates a cache holding about softLimit entries. A softLimit of 0
// means unlimited. evicted, when non-nil, is called with every value dropped
// by eviction or Clear.
func New[K comparable, V any](softLimit int, evicted func(V)) *Cache[K, V] {
	return &Cache[K, V]{
		entries:   make(map[K]*entry[V]),
		softLimit: softLimit,
		evicted:   evicted,
	}
}

// GetOrCreate returns the cached value for key, calling create under the
// lock on a miss. A create error is returned as is and nothing is stored.
func (c *Cache[K, V]) GetOrCreate(key K, create func() (V, error)) (V, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tick++
	if e, ok := c.entries[key]; ok {
		e.atime = c.tick
		return e.value, nil
	}

	v, err := create()
	if err != nil {
		return v, err
	}
	c.entries[key] = &entry[V]{value: v, atime: c.tick}
	if c.softLimit > 0 && len(c.entries) > c.softLimit {
		c.evictOldest()
	}
	return v, nil
}

// Len returns the number of entries in the cache.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear removes all entries.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.evicted != nil {
		for _, e := range c.entries {
			c.evicted(e.value)
		}
	}
	c.entries = make(map[K]*entry[V])
	c.tick = 0
}

// evictOldest shrinks the cache to three quarters of the soft limit.
// Caller must hold c.mu.
func (c *Cache[K, V]) evictOldest() {
	target := max(c.softLimit*3/4, 1)
	n := len(c.entries) - target
	if n <= 0 {
		return
	}

	keys := make([]K, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b K) int {
		return int(c.entries[a].atime - c.entries[b].atime)
	})
	for _, k := range keys[:n] {
		if c.evicted != nil {
			c.evicted(c.entries[k].value)
		}
		delete(c.entries, k)
	}
}
