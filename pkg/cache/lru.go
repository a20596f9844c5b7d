package cache

// none marks the absence of a neighbour in the recency list.
const none = -1

// lruNode is one slot of the node arena. Free slots are chained through next.
type lruNode[K comparable, V any] struct {
	key   K
	value V
	prev  int
	next  int
}

// LRUCache is a fixed-capacity cache that evicts the least recently used
// entry when full.
//
// Entries are indexed by a map from key to arena slot and ordered by a doubly
// linked recency list threaded through the arena, most recently used at the
// head. Every public method updates both structures before returning.
//
// LRUCache is not safe for concurrent use; guard it with a mutex when sharing.
type LRUCache[K comparable, V any] struct {
	capacity int
	items    map[K]int
	nodes    []lruNode[K, V]
	head     int
	tail     int
	free     int
	onEvict  func(key K, value V)

	hits      uint64
	misses    uint64
	evictions uint64
}

// Stats is a point-in-time snapshot of cache counters.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
	Len       int
	Capacity  int
}

// NewLRUCache creates a new LRU cache with the specified capacity.
// The capacity must be positive, otherwise it panics.
func NewLRUCache[K comparable, V any](capacity int) *LRUCache[K, V] {
	if capacity <= 0 {
		panic(ErrInvalidCapacity)
	}
	return &LRUCache[K, V]{
		capacity: capacity,
		items:    make(map[K]int),
		head:     none,
		tail:     none,
		free:     none,
	}
}

// SetEvictCallback sets a function called whenever an entry leaves the
// cache: capacity eviction, Remove and Clear. The entry is already gone from
// the cache when fn runs; on eviction the new entry has already been added.
func (c *LRUCache[K, V]) SetEvictCallback(fn func(key K, value V)) {
	c.onEvict = fn
}

// Get retrieves a value from the cache and marks it as recently used.
// Returns the value and true if found, zero value and false otherwise.
func (c *LRUCache[K, V]) Get(key K) (V, bool) {
	idx, ok := c.items[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	c.moveToFront(idx)
	return c.nodes[idx].value, true
}

// Set adds or updates a value and marks it as recently used.
// A new key evicts the least recently used entry first when the cache is full.
// Returns the previous value and true if the key already existed.
func (c *LRUCache[K, V]) Set(key K, value V) (V, bool) {
	if idx, ok := c.items[key]; ok {
		n := &c.nodes[idx]
		old := n.value
		n.value = value
		c.moveToFront(idx)
		return old, true
	}

	var evicted *lruNode[K, V]
	if len(c.items) >= c.capacity {
		c.evictions++
		n := c.detach(c.tail)
		evicted = &n
	}

	idx := c.alloc(key, value)
	c.items[key] = idx
	c.pushFront(idx)

	if evicted != nil && c.onEvict != nil {
		c.onEvict(evicted.key, evicted.value)
	}

	var zero V
	return zero, false
}

// Remove removes an item from the cache.
// Returns the removed value and true if it existed, zero value and false otherwise.
func (c *LRUCache[K, V]) Remove(key K) (V, bool) {
	idx, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	return c.removeNode(idx), true
}

// Peek returns the value for key without updating its recency.
func (c *LRUCache[K, V]) Peek(key K) (V, bool) {
	if idx, ok := c.items[key]; ok {
		return c.nodes[idx].value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is cached without updating its recency.
func (c *LRUCache[K, V]) Contains(key K) bool {
	_, ok := c.items[key]
	return ok
}

// Keys returns the cached keys from most to least recently used.
func (c *LRUCache[K, V]) Keys() []K {
	keys := make([]K, 0, len(c.items))
	for idx := c.head; idx != none; idx = c.nodes[idx].next {
		keys = append(keys, c.nodes[idx].key)
	}
	return keys
}

func (c *LRUCache[K, V]) Len() int { return len(c.items) }

func (c *LRUCache[K, V]) Cap() int { return c.capacity }

// Stats returns the hit, miss and eviction counters with the current size.
func (c *LRUCache[K, V]) Stats() Stats {
	return Stats{
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		Len:       len(c.items),
		Capacity:  c.capacity,
	}
}

// Clear removes all items from the cache, most recently used first.
// If an evict callback is set, it's called for each item.
func (c *LRUCache[K, V]) Clear() {
	var evicted []lruNode[K, V]
	if c.onEvict != nil {
		evicted = make([]lruNode[K, V], 0, len(c.items))
		for idx := c.head; idx != none; idx = c.nodes[idx].next {
			evicted = append(evicted, c.nodes[idx])
		}
	}

	c.items = make(map[K]int)
	c.nodes = nil
	c.head, c.tail, c.free = none, none, none

	for _, n := range evicted {
		c.onEvict(n.key, n.value)
	}
}

// alloc places an entry in a free slot, growing the arena when none is left.
func (c *LRUCache[K, V]) alloc(key K, value V) int {
	if idx := c.free; idx != none {
		c.free = c.nodes[idx].next
		c.nodes[idx] = lruNode[K, V]{key: key, value: value, prev: none, next: none}
		return idx
	}
	c.nodes = append(c.nodes, lruNode[K, V]{key: key, value: value, prev: none, next: none})
	return len(c.nodes) - 1
}

// removeNode detaches idx and reports it to the evict callback.
func (c *LRUCache[K, V]) removeNode(idx int) V {
	n := c.detach(idx)
	if c.onEvict != nil {
		c.onEvict(n.key, n.value)
	}
	return n.value
}

// detach unlinks idx, drops its index entry and recycles the slot.
func (c *LRUCache[K, V]) detach(idx int) lruNode[K, V] {
	c.unlink(idx)
	n := c.nodes[idx]
	delete(c.items, n.key)

	c.nodes[idx] = lruNode[K, V]{prev: none, next: c.free}
	c.free = idx
	return n
}

func (c *LRUCache[K, V]) moveToFront(idx int) {
	if c.head == idx {
		return
	}
	c.unlink(idx)
	c.pushFront(idx)
}

func (c *LRUCache[K, V]) pushFront(idx int) {
	n := &c.nodes[idx]
	n.prev = none
	n.next = c.head
	if c.head != none {
		c.nodes[c.head].prev = idx
	}
	c.head = idx
	if c.tail == none {
		c.tail = idx
	}
}

func (c *LRUCache[K, V]) unlink(idx int) {
	n := &c.nodes[idx]
	if n.prev != none {
		c.nodes[n.prev].next = n.next
	} else {
		c.head = n.next
	}
	if n.next != none {
		c.nodes[n.next].prev = n.prev
	} else {
		c.tail = n.prev
	}
	n.prev, n.next = none, none
}
