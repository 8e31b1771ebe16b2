// Package list implements a generic doubly-linked list whose allocating
// operations never panic and never abort. Every operation that may create a
// node reports failure through its return value (false or an invalid
// iterator), while operations that only release or rearrange nodes (pop,
// erase, clear, swap, reverse) are unconditional. Node creation is gated by
// an Allocator, so callers with a memory budget observe exhaustion as an
// ordinary return value and decide what to do about it.
//
// A List owns its nodes exclusively; nodes are never shared across lists and
// never move in memory, so iterators to untouched nodes stay valid across
// unrelated insertions and erasures. Nothing here is synchronized: a List
// and its iterators must be confined to one goroutine or guarded externally.
package list

import (
	"math"
	"unsafe"
)

// List is a doubly-linked sequence of T anchored by a head/tail/size
// aggregate. The zero value is an empty list using the heap allocator.
type List[T any] struct {
	store storage[T]
	alloc Allocator
}

// nodeSize is the per-node reservation requested from the Allocator.
func nodeSize[T any]() int {
	return int(unsafe.Sizeof(node[T]{}))
}

// New creates an empty list backed by the heap allocator.
func New[T any]() *List[T] {
	return NewWithAllocator[T](HeapAllocator())
}

// NewWithAllocator creates an empty list whose node creation is gated by a.
func NewWithAllocator[T any](a Allocator) *List[T] {
	return &List[T]{alloc: a}
}

// NewSize creates a list holding count zero values of T. Growth stops at the
// first refused reservation, leaving the successfully created prefix.
func NewSize[T any](count int) *List[T] {
	l := New[T]()
	_ = l.Resize(count)
	return l
}

// NewFill creates a list holding count copies of value. Growth stops at the
// first refused reservation, leaving the successfully created prefix.
func NewFill[T any](count int, value T) *List[T] {
	l := New[T]()
	_ = l.ResizeWith(count, value)
	return l
}

// NewFrom creates a list holding items in the given order, stopping at the
// first refused reservation.
func NewFrom[T any](items ...T) *List[T] {
	l := New[T]()
	_ = l.Assign(items...)
	return l
}

// allocator returns the list's gate, defaulting the zero-value list to the
// heap allocator.
func (l *List[T]) allocator() Allocator {
	if l.alloc == nil {
		l.alloc = HeapAllocator()
	}
	return l.alloc
}

// newNode reserves room for one node and materializes it, or returns nil on
// a refused reservation. nil is this package's AllocationFailure signal.
func (l *List[T]) newNode(v T) *node[T] {
	if !l.allocator().Allocate(nodeSize[T]()) {
		return nil
	}
	return &node[T]{value: v}
}

// freeNode returns the node's reservation and severs its links. No-op on
// nil. A node is freed exactly once, by the erase/pop/clear path that
// unlinked it.
func (l *List[T]) freeNode(n *node[T]) {
	if n == nil {
		return
	}
	n.next = nil
	n.prev = nil
	l.allocator().Release(nodeSize[T]())
}

// Count returns the number of elements.
func (l *List[T]) Count() int {
	return l.store.size
}

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.store.size == 0
}

// MaxCount returns the upper bound on Count, derived from the address space
// divided by the element size. Push and insert report failure at this bound.
func (l *List[T]) MaxCount() int {
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	if elemSize == 0 {
		elemSize = 1
	}
	return math.MaxInt / elemSize
}

// Front returns a view of the first element, or nil when the list is empty.
// Absence is represented, never panicked on.
func (l *List[T]) Front() *T {
	if l.store.head == nil {
		return nil
	}
	return &l.store.head.value
}

// Back returns a view of the last element, or nil when the list is empty.
func (l *List[T]) Back() *T {
	if l.store.tail == nil {
		return nil
	}
	return &l.store.tail.value
}

// Begin returns a mutable iterator at the first element; invalid on an empty
// list.
func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{n: l.store.head}
}

// End returns the past-the-end position.
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{}
}

// ConstBegin returns a read-only iterator at the first element.
func (l *List[T]) ConstBegin() ConstIterator[T] {
	return ConstIterator[T]{n: l.store.head}
}

// ConstEnd returns the read-only past-the-end position.
func (l *List[T]) ConstEnd() ConstIterator[T] {
	return ConstIterator[T]{}
}

// ReverseBegin returns a mutable reverse iterator at the last element;
// advancing it walks toward the head.
func (l *List[T]) ReverseBegin() ReverseIterator[T] {
	return ReverseIterator[T]{n: l.store.tail}
}

// ReverseEnd returns the reverse past-the-end position, reached by stepping
// past the head.
func (l *List[T]) ReverseEnd() ReverseIterator[T] {
	return ReverseIterator[T]{}
}

// ConstReverseBegin returns a read-only reverse iterator at the last element.
func (l *List[T]) ConstReverseBegin() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{n: l.store.tail}
}

// ConstReverseEnd returns the read-only reverse past-the-end position.
func (l *List[T]) ConstReverseEnd() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{}
}

// Assign replaces the contents with items, in order. On a refused
// reservation it returns false and keeps whatever prefix was already
// appended; callers needing certainty inspect Count.
func (l *List[T]) Assign(items ...T) bool {
	l.Clear()
	for _, v := range items {
		if !l.PushBack(v) {
			return false
		}
	}
	return true
}

// AssignRepeat replaces the contents with count copies of value. Same
// partial-prefix contract as Assign.
func (l *List[T]) AssignRepeat(count int, value T) bool {
	l.Clear()
	return l.ResizeWith(count, value)
}

// Clear destroys every node. Unconditional.
func (l *List[T]) Clear() {
	for n := l.store.head; n != nil; {
		next := n.next
		l.freeNode(n)
		n = next
	}
	l.store.reset()
}

// Insert splices a new element before at, returning an iterator to it. The
// begin and end positions are O(1) special cases; any other position must be
// an iterator the caller already holds into this list. An invalid at means
// the end position. On an empty list at is ignored and the element becomes
// the sole node. Returns an invalid iterator when the list is at MaxCount or
// the reservation is refused, leaving the list unmodified.
func (l *List[T]) Insert(at Iterator[T], value T) Iterator[T] {
	if l.store.size >= l.MaxCount() {
		return Iterator[T]{}
	}
	if l.store.size == 0 {
		if l.PushBack(value) {
			return l.Begin()
		}
		return Iterator[T]{}
	}

	n := l.newNode(value)
	if n == nil {
		return Iterator[T]{}
	}

	switch {
	case at.n == l.store.head: // before the first node
		n.next = l.store.head
		l.store.head.prev = n
		l.store.head = n
	case at.n == nil: // end position appends
		n.prev = l.store.tail
		l.store.tail.next = n
		l.store.tail = n
	default: // interior splice
		before := at.n.prev
		n.prev = before
		n.next = at.n
		at.n.prev = n
		before.next = n
	}

	l.store.size++
	return Iterator[T]{n: n}
}

// InsertRepeat inserts count copies of value before at, one node at a time.
// It stops at the first refused reservation and returns an iterator to the
// last node successfully inserted, or an invalid one if none was.
func (l *List[T]) InsertRepeat(at Iterator[T], count int, value T) Iterator[T] {
	var last Iterator[T]
	for i := 0; i < count; i++ {
		it := l.Insert(at, value)
		if !it.Valid() {
			return last
		}
		last = it
		at = it
	}
	return last
}

// InsertAll inserts items before at preserving their order, one node at a
// time, stopping at the first refused reservation. Returns an iterator to
// the last node successfully inserted, or an invalid one if none was.
func (l *List[T]) InsertAll(at Iterator[T], items ...T) Iterator[T] {
	var last Iterator[T]
	for _, v := range items {
		it := l.Insert(at, v)
		if !it.Valid() {
			return last
		}
		last = it
		at = it.Next()
	}
	return last
}

// Emplace calls construct to build the element, then inserts it before at.
// Only the node reservation is non-failing by contract; a panic inside
// construct passes through untouched, before the list is modified.
func (l *List[T]) Emplace(at Iterator[T], construct func() T) Iterator[T] {
	return l.Insert(at, construct())
}

// EmplaceBack calls construct to build the element, then appends it. Same
// contract as PushBack for the append step.
func (l *List[T]) EmplaceBack(construct func() T) bool {
	return l.PushBack(construct())
}

// EmplaceFront calls construct to build the element, then prepends it. Same
// contract as PushFront for the prepend step.
func (l *List[T]) EmplaceFront(construct func() T) bool {
	return l.PushFront(construct())
}

// Erase unlinks and destroys the node at references, returning an iterator
// to the following node, invalid when the erased node was the last one.
// Erasing the end position or on an empty list is a no-op returning an
// invalid iterator. at must reference a node of this list.
func (l *List[T]) Erase(at Iterator[T]) Iterator[T] {
	if l.store.size == 0 || at.n == nil {
		return Iterator[T]{}
	}
	next := at.n.next
	l.unlink(at.n)
	l.freeNode(at.n)
	return Iterator[T]{n: next}
}

// EraseRange erases [first, last) by repeatedly erasing first until it
// reaches last. O(k) in the number of erased elements. Returns the iterator
// following the last erased node.
func (l *List[T]) EraseRange(first, last Iterator[T]) Iterator[T] {
	var it Iterator[T]
	for first != last {
		if !first.Valid() {
			return it
		}
		it = l.Erase(first)
		first = it
	}
	return it
}

// unlink detaches n from the chain, fixing head/tail and the neighbors'
// links, and drops the count. Invariants hold even when n is the sole node.
func (l *List[T]) unlink(n *node[T]) {
	if n == l.store.head {
		l.store.head = n.next
	}
	if n == l.store.tail {
		l.store.tail = n.prev
	}
	if n.prev != nil {
		n.prev.next = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
	l.store.size--
}

// PushBack appends value. Returns false, with the list unmodified, when
// the list is at MaxCount or the reservation is refused.
func (l *List[T]) PushBack(value T) bool {
	if l.store.size >= l.MaxCount() {
		return false
	}
	n := l.newNode(value)
	if n == nil {
		return false
	}
	if l.store.size == 0 {
		l.store.head = n
		l.store.tail = n
	} else {
		n.prev = l.store.tail
		l.store.tail.next = n
		l.store.tail = n
	}
	l.store.size++
	return true
}

// PushFront prepends value. Same contract as PushBack.
func (l *List[T]) PushFront(value T) bool {
	if l.store.size >= l.MaxCount() {
		return false
	}
	n := l.newNode(value)
	if n == nil {
		return false
	}
	if l.store.size == 0 {
		l.store.head = n
		l.store.tail = n
	} else {
		n.next = l.store.head
		l.store.head.prev = n
		l.store.head = n
	}
	l.store.size++
	return true
}

// PopBack destroys the last element. Unconditional; no-op on an empty list.
func (l *List[T]) PopBack() {
	switch l.store.size {
	case 0:
	case 1:
		n := l.store.head
		l.store.reset()
		l.freeNode(n)
	default:
		n := l.store.tail
		l.store.tail = n.prev
		l.store.tail.next = nil
		l.store.size--
		l.freeNode(n)
	}
}

// PopFront destroys the first element. Unconditional; no-op on an empty
// list.
func (l *List[T]) PopFront() {
	switch l.store.size {
	case 0:
	case 1:
		n := l.store.head
		l.store.reset()
		l.freeNode(n)
	default:
		n := l.store.head
		l.store.head = n.next
		l.store.head.prev = nil
		l.store.size--
		l.freeNode(n)
	}
}

// Resize grows the list with zero values or shrinks it by popping from the
// back until Count equals count. Shrinking always succeeds; growing stops
// and returns false at the first refused reservation, keeping the partial
// growth.
func (l *List[T]) Resize(count int) bool {
	var zero T
	return l.ResizeWith(count, zero)
}

// ResizeWith is Resize growing with copies of value.
func (l *List[T]) ResizeWith(count int, value T) bool {
	if count < 0 {
		count = 0
	}
	if l.store.size < count {
		for l.store.size != count {
			if !l.PushBack(value) {
				return false
			}
		}
	} else {
		for l.store.size != count {
			l.PopBack()
		}
	}
	return true
}

// Swap exchanges contents with other in O(1) by swapping the storage
// aggregates and allocators. Cannot fail. Live iterators keep referencing
// the same nodes, which now logically belong to the other list.
func (l *List[T]) Swap(other *List[T]) {
	if l == other {
		return
	}
	l.store.swap(&other.store)
	la, oa := l.allocator(), other.allocator()
	l.alloc, other.alloc = oa, la
}

// Take moves other's contents into l: l's current nodes are destroyed, then
// the aggregates are exchanged in O(1), leaving other empty. l adopts
// other's allocator so node accounting stays with the gate that granted it.
func (l *List[T]) Take(other *List[T]) {
	if l == other {
		return
	}
	l.Clear()
	l.Swap(other)
}

// Clone deep-copies the list in traversal order, sharing the source's
// allocator. If a reservation is refused mid-copy the clone stops early and
// holds only the prefix copied so far; there is no rollback.
func (l *List[T]) Clone() *List[T] {
	c := NewWithAllocator[T](l.allocator())
	for n := l.store.head; n != nil; n = n.next {
		if !c.PushBack(n.value) {
			break
		}
	}
	return c
}

// RemoveIf walks front to back once, applying pred to each element exactly
// once in original order and destroying every node it matches immediately.
// Returns the number removed. Survivors keep their relative order.
func (l *List[T]) RemoveIf(pred func(value T) bool) int {
	if l.store.size == 0 {
		return 0
	}
	var removed int
	for n := l.store.head; n != nil; {
		next := n.next
		if pred(n.value) {
			l.unlink(n)
			l.freeNode(n)
			removed++
		}
		n = next
	}
	return removed
}

// Reverse mirrors the element order by walking two cursors inward from both
// ends and swapping the stored values; nodes are not relinked, so an
// iterator captured before the call still references the same node, now
// holding the mirrored value. No-op for fewer than two elements.
func (l *List[T]) Reverse() {
	if l.store.size < 2 {
		return
	}
	front, back := l.store.head, l.store.tail
	for front != back {
		front.value, back.value = back.value, front.value
		if front.next == back { // adjacent pair already swapped
			break
		}
		front = front.next
		back = back.prev
	}
}
