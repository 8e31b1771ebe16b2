package cache

import (
	"github.com/sharedcode/safelist/list"
)

// mru manages MRU ordering and eviction for the generic cache type. Recency
// is a list.List of keys: most recent at the front, eviction candidates at
// the back. Entry handles are list iterators, valid for as long as the node
// lives.
type mru[TK comparable, TV any] struct {
	minCapacity int
	maxCapacity int
	recency     *list.List[TK]
	cache       *cache[TK, TV]
}

func newMru[TK comparable, TV any](c *cache[TK, TV], minCapacity, maxCapacity int, a list.Allocator) *mru[TK, TV] {
	return &mru[TK, TV]{
		cache:       c,
		minCapacity: minCapacity,
		maxCapacity: maxCapacity,
		recency:     list.NewWithAllocator[TK](a),
	}
}

// add inserts the id at the head of the MRU list and returns its node
// handle. ok is false when the recency node's allocation was refused; the
// caller must not admit the entry in that case.
func (m *mru[TK, TV]) add(id TK) (list.Iterator[TK], bool) {
	if !m.recency.PushFront(id) {
		return list.Iterator[TK]{}, false
	}
	return m.recency.Begin(), true
}

// remove unchains the node from the MRU list.
func (m *mru[TK, TV]) remove(it list.Iterator[TK]) {
	if it.Valid() {
		m.recency.Erase(it)
	}
}

// evict removes entries from the tail while the cache exceeds its capacity,
// updating the index.
func (m *mru[TK, TV]) evict() {
	for {
		if !m.isFull() {
			break
		}
		back := m.recency.Back()
		if back == nil {
			break
		}
		id := *back
		m.recency.PopBack()
		if v, found := m.cache.lookup[id]; found {
			v.recencyNode = list.Iterator[TK]{}
			delete(m.cache.lookup, id)
		}
	}
}

// isFull reports whether the cache has reached its maximum capacity.
func (m *mru[TK, TV]) isFull() bool {
	return m.recency.Count() >= m.maxCapacity
}
