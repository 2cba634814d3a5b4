// Package cache keeps a small bounded history of completed requests so the
// user can browse back to recent results.
package cache

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	ai "github.com/spetersoncode/alchemy"
)

// DefaultCapacity is how many completed requests are kept.
const DefaultCapacity = 3

// Cache is a fixed-capacity FIFO of completed requests. Entries are only
// ever added, never touched afterward, so the backing LRU evicts in strict
// insertion order: when full, the oldest entry goes.
type Cache struct {
	mu  sync.Mutex
	seq uint64
	lru *lru.Cache[uint64, ai.CacheEntry]
}

// New creates a cache holding up to capacity entries. A non-positive
// capacity uses DefaultCapacity.
func New(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	l, err := lru.New[uint64, ai.CacheEntry](capacity)
	if err != nil {
		// Only reachable with a non-positive size, which is guarded above.
		panic(err)
	}
	return &Cache{lru: l}
}

// Push records a completed request, evicting the oldest entry when full.
func (c *Cache) Push(entry ai.CacheEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	c.lru.Add(c.seq, entry)
}

// List returns the cached entries oldest first.
func (c *Cache) List() []ai.CacheEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := c.lru.Keys() // oldest first
	entries := make([]ai.CacheEntry, 0, len(keys))
	for _, k := range keys {
		if entry, ok := c.lru.Peek(k); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

// Get returns the i-th entry, oldest first. The second return is false
// when i is out of range.
func (c *Cache) Get(i int) (ai.CacheEntry, bool) {
	entries := c.List()
	if i < 0 || i >= len(entries) {
		return ai.CacheEntry{}, false
	}
	return entries[i], true
}

// Len reports how many entries are cached.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}
