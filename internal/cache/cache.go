// Package cache implements the bounded, concurrency-safe LRU cache
// shared by the glyph and shaping caches (spec.md §4.5): eviction uses
// a doubly linked list with sentinel head/tail nodes in the shape of
// gioui.org/text's lru.go, request coalescing is
// golang.org/x/sync/singleflight so concurrent misses for the same key
// compute once, and hit/miss/entry counts are exposed for diagnostics
// via sync/atomic.
package cache

import (
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

type entry[K comparable, V any] struct {
	next, prev *entry[K, V]
	key        K
	val        V
}

// Cache is a generic, bounded LRU with single-flight miss coalescing.
// Zero value is not usable; construct with New.
type Cache[K comparable, V any] struct {
	mu         sync.Mutex
	m          map[K]*entry[K, V]
	head, tail *entry[K, V]
	capacity   int

	group singleflight.Group

	hits, misses, evictions atomic.Int64
}

// New builds a Cache bounded to capacity entries. capacity <= 0 means
// unbounded (eviction never triggers).
func New[K comparable, V any](capacity int) *Cache[K, V] {
	c := &Cache[K, V]{
		m:        make(map[K]*entry[K, V]),
		capacity: capacity,
	}
	c.head = new(entry[K, V])
	c.tail = new(entry[K, V])
	c.head.prev = c.tail
	c.tail.next = c.head
	return c
}

// Get reports the cached value for key, if present, moving it to the
// most-recently-used position.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	v, ok := c.peek(key)
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return v, ok
}

// peek is Get without the hit/miss accounting, used internally by
// GetOrCompute so that probing for an already-coalesced value doesn't
// inflate the miss counter (spec.md §8 scenario 5: 100 concurrent
// lookups for the same missing key must report miss_count == 1, not
// one miss per probe).
func (c *Cache[K, V]) peek(key K) (V, bool) {
	c.mu.Lock()
	e, ok := c.m[key]
	if ok {
		c.remove(e)
		c.insert(e)
	}
	c.mu.Unlock()

	if ok {
		return e.val, true
	}
	var zero V
	return zero, false
}

// Put inserts or updates key's value, evicting the least-recently-used
// entry if capacity is exceeded.
func (c *Cache[K, V]) Put(key K, val V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.m[key]; ok {
		e.val = val
		c.remove(e)
		c.insert(e)
		return
	}

	e := &entry[K, V]{key: key, val: val}
	c.m[key] = e
	c.insert(e)

	if c.capacity > 0 && len(c.m) > c.capacity {
		oldest := c.tail.next
		c.remove(oldest)
		delete(c.m, oldest.key)
		c.evictions.Add(1)
	}
}

// GetOrCompute returns the cached value for key, or computes it via fn
// if absent. Concurrent calls for the same missing key coalesce into a
// single fn invocation (spec.md §4.5 "single-flight" / §8 property 7),
// implemented with golang.org/x/sync/singleflight so only the winning
// caller runs fn while the rest wait on its result.
//
// A call counts as a miss only when it actually runs fn; every other
// call — including the singleflight followers that never execute the
// shared closure — counts as a hit, since it retrieved a value without
// computing one (spec.md §8 scenario 5: 100 concurrent lookups for a
// single missing key report hit_count == 99, miss_count == 1).
func (c *Cache[K, V]) GetOrCompute(key K, fn func() (V, error)) (V, error) {
	if v, ok := c.peek(key); ok {
		c.hits.Add(1)
		return v, nil
	}

	groupKey := fmtKey(key)
	ran := false
	v, err, _ := c.group.Do(groupKey, func() (any, error) {
		// Re-check: another goroutine may have populated the entry
		// while this one waited to enter singleflight.
		if v, ok := c.peek(key); ok {
			return v, nil
		}
		ran = true
		val, err := fn()
		if err != nil {
			return nil, err
		}
		c.Put(key, val)
		return val, nil
	})
	if ran {
		c.misses.Add(1)
	} else {
		c.hits.Add(1)
	}
	if err != nil {
		var zero V
		return zero, err
	}
	return v.(V), nil
}

// Len returns the current entry count.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.m)
}

// Stats reports cumulative hit/miss/eviction counts for diagnostics.
type Stats struct {
	Hits, Misses, Evictions int64
}

func (c *Cache[K, V]) Stats() Stats {
	return Stats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}

// fmtKey derives a singleflight group key from a comparable cache key.
// Cache keys in this package are always small structs of primitive
// fields (glyph IDs, font identities, shaping inputs), so %v produces
// a stable, collision-free string for the group's lifetime.
func fmtKey[K comparable](key K) string {
	return fmt.Sprintf("%v", key)
}

func (c *Cache[K, V]) remove(e *entry[K, V]) {
	e.next.prev = e.prev
	e.prev.next = e.next
}

func (c *Cache[K, V]) insert(e *entry[K, V]) {
	e.next = c.head
	e.prev = c.head.prev
	e.prev.next = e
	e.next.prev = e
}
