package cache

import (
	"sync"
	"sync/atomic"

	"github.com/hashicorp/golang-lru/v2/simplelru"
)

// LRUCache is a thread-safe bounded cache with least-recently-used eviction.
//
// Capacity is fixed at construction. A capacity of zero disables caching:
// Put retains nothing and Get always misses. The mutex is held only for the
// duration of a single Get or Put, never across network calls, so a slow
// upstream request never blocks unrelated cache operations.
type LRUCache struct {
	mu      sync.Mutex
	entries *simplelru.LRU[string, string] // nil when capacity is zero
	hits    atomic.Uint64
	misses  atomic.Uint64
}

// NewLRUCache creates a cache holding at most capacity entries.
// A capacity of zero or less disables caching entirely.
func NewLRUCache(capacity int) *LRUCache {
	if capacity <= 0 {
		return &LRUCache{}
	}

	// simplelru.NewLRU errors only on a non-positive size, which is
	// excluded above.
	entries, _ := simplelru.NewLRU[string, string](capacity, nil)
	return &LRUCache{entries: entries}
}

// Get retrieves a value and marks it most-recently-used.
func (c *LRUCache) Get(key string) (string, bool) {
	if c.entries == nil {
		c.misses.Add(1)
		return "", false
	}

	c.mu.Lock()
	value, ok := c.entries.Get(key)
	c.mu.Unlock()

	if !ok {
		c.misses.Add(1)
		return "", false
	}
	c.hits.Add(1)
	return value, true
}

// Put inserts or overwrites an entry and marks it most-recently-used.
// When the insertion would exceed capacity, the least-recently-used entry
// is evicted first. Eviction is silent.
func (c *LRUCache) Put(key string, value string) error {
	if c.entries == nil {
		return nil
	}

	c.mu.Lock()
	c.entries.Add(key, value)
	c.mu.Unlock()
	return nil
}

// Len returns the current number of entries.
func (c *LRUCache) Len() int {
	if c.entries == nil {
		return 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Len()
}

// HitCount returns the number of Get calls served from the cache.
func (c *LRUCache) HitCount() uint64 {
	return c.hits.Load()
}

// MissCount returns the number of Get calls that missed.
func (c *LRUCache) MissCount() uint64 {
	return c.misses.Load()
}

// Verify LRUCache implements Cache
var _ Cache = (*LRUCache)(nil)
