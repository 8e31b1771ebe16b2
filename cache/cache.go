// Package cache contains an in-process MRU cache built on the list package.
// It offers a generic Cache interface with MRU-based eviction; the recency
// chain is a list.List, so the cache inherits the list's allocation
// contract: when a recency node cannot be allocated the entry is simply not
// admitted, it is never a panic.
package cache

import (
	"github.com/sharedcode/safelist"
	"github.com/sharedcode/safelist/list"
)

// Cache is a generic MRU cache interface used for in-memory caching scenarios.
// Implementations should maintain recency and support bulk operations.
type Cache[TK comparable, TV any] interface {
	// Clear removes all entries from the cache.
	Clear()
	// Set inserts or updates the given key/value pairs. Admission is
	// best-effort: an entry whose recency node cannot be allocated is
	// dropped.
	Set(items []safelist.KeyValuePair[TK, TV])
	// Get looks up the values for the given keys; missing keys yield zero values.
	Get(keys []TK) []TV
	// Delete removes the given keys from the cache, if present.
	Delete(keys []TK)
	// Count returns the number of items currently stored in the cache.
	Count() int
	// IsFull reports whether the cache has reached its maximum capacity.
	IsFull() bool
	// Evict removes least-recently-used entries until capacity constraints are satisfied.
	Evict()
}

type cacheEntry[TK, TV any] struct {
	data        TV
	recencyNode list.Iterator[TK]
}

type cache[TK comparable, TV any] struct {
	lookup map[TK]*cacheEntry[TK, TV]
	mru    *mru[TK, TV]
}

// NewCache creates a new generic cache with MRU-based eviction, backed by
// the heap allocator.
func NewCache[TK comparable, TV any](minCapacity, maxCapacity int) Cache[TK, TV] {
	return NewCacheWithAllocator[TK, TV](minCapacity, maxCapacity, list.HeapAllocator())
}

// NewCacheWithAllocator creates a cache whose recency nodes are gated by a;
// with a quota allocator the cache degrades to best-effort admission instead
// of growing past the budget.
func NewCacheWithAllocator[TK comparable, TV any](minCapacity, maxCapacity int, a list.Allocator) Cache[TK, TV] {
	c := cache[TK, TV]{
		lookup: make(map[TK]*cacheEntry[TK, TV], maxCapacity),
	}
	c.mru = newMru(&c, minCapacity, maxCapacity, a)
	return &c
}

func (c *cache[TK, TV]) Clear() {
	c.lookup = make(map[TK]*cacheEntry[TK, TV], c.mru.maxCapacity)
	c.mru.recency.Clear()
}

func (c *cache[TK, TV]) Set(items []safelist.KeyValuePair[TK, TV]) {
	for i := range items {
		if v, ok := c.lookup[items[i].Key]; ok {
			c.mru.remove(v.recencyNode)
			n, ok := c.mru.add(items[i].Key)
			if !ok {
				// Lost its recency node; drop the entry rather than keep an
				// unevictable one.
				delete(c.lookup, items[i].Key)
				continue
			}
			v.data = items[i].Value
			v.recencyNode = n
			continue
		}
		n, ok := c.mru.add(items[i].Key)
		if !ok {
			continue
		}
		c.lookup[items[i].Key] = &cacheEntry[TK, TV]{
			data:        items[i].Value,
			recencyNode: n,
		}
	}
	c.Evict()
}

func (c *cache[TK, TV]) Get(keys []TK) []TV {
	r := make([]TV, len(keys))
	for i := range keys {
		if v, ok := c.lookup[keys[i]]; ok {
			c.mru.remove(v.recencyNode)
			n, ok := c.mru.add(keys[i])
			if !ok {
				// Value is still served; the entry just loses recency and
				// gets dropped.
				r[i] = v.data
				delete(c.lookup, keys[i])
				continue
			}
			v.recencyNode = n
			r[i] = v.data
		}
	}
	return r
}

func (c *cache[TK, TV]) Delete(keys []TK) {
	for i := range keys {
		if v, ok := c.lookup[keys[i]]; ok {
			c.mru.remove(v.recencyNode)
			v.recencyNode = list.Iterator[TK]{}
			delete(c.lookup, keys[i])
		}
	}
}

// Count returns the number of items currently stored in this cache.
func (c *cache[TK, TV]) Count() int {
	return len(c.lookup)
}

func (c *cache[TK, TV]) IsFull() bool {
	return c.mru.isFull()
}

// Evict removes least-recently-used entries until the cache size is within capacity.
func (c *cache[TK, TV]) Evict() {
	c.mru.evict()
}
