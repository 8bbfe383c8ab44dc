// Package cache provides result caching implementations.
package cache

// Cache is the interface for caching translated descriptions.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Get never errors; it returns ("", false) on miss.
// - Put overwrites any existing entry for the key.
type Cache interface {
	// Get retrieves a cached value. Returns ("", false) on miss.
	Get(key string) (string, bool)

	// Put stores a value in the cache.
	Put(key string, value string) error
}
