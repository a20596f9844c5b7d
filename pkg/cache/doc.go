// Package cache provides a generic LRU (Least Recently Used) cache
// implementation for efficiently managing limited resources in memory.
//
// The cache automatically evicts the least recently used items when it reaches
// its configured capacity, making it ideal for scenarios where you need to
// cache data but want to prevent unbounded memory growth.
//
// # Key Features
//
//   - Generic implementation supporting any comparable key type and any value type
//   - O(1) Get, Set and Remove
//   - Automatic LRU eviction when capacity is reached
//   - Optional eviction callbacks for resource cleanup (e.g., closing files, connections)
//   - Hit, miss and eviction counters exposed through Stats
//
// # Usage
//
// Create a cache with a specified capacity:
//
//	c := cache.NewLRUCache[string, *sql.DB](100)
//
// Basic operations:
//
//	// Add items to cache
//	c.Set("user:123", userData)
//	c.Set("session:abc", sessionData)
//
//	// Retrieve items (marks as recently used)
//	data, found := c.Get("user:123")
//	if found {
//		// Use data
//	}
//
//	// Inspect without touching recency
//	_, found = c.Peek("session:abc")
//
//	// Remove specific items
//	removed, existed := c.Remove("user:123")
//
//	// Clear all items
//	c.Clear()
//
// # Internals
//
// Two structures describe the cache contents: a map from key to node and a
// doubly linked recency list ordered from most to least recently used. Nodes
// live in a slice and link to each other by index rather than by pointer;
// slots released by Remove or eviction are chained into a free list and
// reused by later inserts. Every public method mutates the map and the list
// together, so between calls the set of keys in the map is exactly the set of
// keys in the list.
//
// # Capacity Management
//
// When the cache is full and a new key is set:
//
//  1. The least recently used item is unlinked and dropped from the index
//  2. If an eviction callback is set, it's called with the item's key and value
//  3. The new item is added at the head of the recency list
//
// Items are considered "recently used" when they are:
//   - Retrieved with Get()
//   - Added or updated with Set()
//
// A capacity of zero or less is a programming error and panics with
// ErrInvalidCapacity.
//
// # Concurrency
//
// LRUCache performs no locking. Callers sharing a cache between goroutines
// must serialize access, for example with one sync.Mutex per cache.
package cache
