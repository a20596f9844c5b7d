package cache

import "fmt"

// CheckInvariants verifies that the key index and the recency list describe
// the same set of entries and that the list is well formed in both directions.
func CheckInvariants[K comparable, V any](c *LRUCache[K, V]) error {
	if len(c.items) > c.capacity {
		return fmt.Errorf("len %d exceeds capacity %d", len(c.items), c.capacity)
	}

	seen := make(map[K]struct{}, len(c.items))
	prev := none
	for idx := c.head; idx != none; idx = c.nodes[idx].next {
		n := c.nodes[idx]
		if n.prev != prev {
			return fmt.Errorf("node %d: prev is %d, want %d", idx, n.prev, prev)
		}
		if _, dup := seen[n.key]; dup {
			return fmt.Errorf("key %v appears twice in the recency list", n.key)
		}
		seen[n.key] = struct{}{}
		if got, ok := c.items[n.key]; !ok || got != idx {
			return fmt.Errorf("key %v: list slot %d, index slot %d (present=%t)", n.key, idx, got, ok)
		}
		if len(seen) > len(c.items) {
			return fmt.Errorf("recency list longer than index (%d)", len(c.items))
		}
		prev = idx
	}
	if c.tail != prev {
		return fmt.Errorf("tail is %d, want %d", c.tail, prev)
	}
	if len(seen) != len(c.items) {
		return fmt.Errorf("recency list has %d keys, index has %d", len(seen), len(c.items))
	}

	free := 0
	for idx := c.free; idx != none; idx = c.nodes[idx].next {
		free++
		if free > len(c.nodes) {
			return fmt.Errorf("free list cycles")
		}
	}
	if free+len(c.items) != len(c.nodes) {
		return fmt.Errorf("arena has %d slots, %d live and %d free", len(c.nodes), len(c.items), free)
	}
	return nil
}
