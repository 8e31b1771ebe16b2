package list

// node is the storage cell for one element: the value plus links to its
// chain neighbors. A *node is the handle iterators and the storage anchors
// carry; the handle itself is pure identity, ownership of the chain belongs
// to the List holding it.
type node[T any] struct {
	value T
	next  *node[T]
	prev  *node[T]
}

// storage anchors the node chain: first node, last node and the node count.
// Head and tail are entry points only; the owning List drains them explicitly.
type storage[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

// swap exchanges the two aggregates. O(1), cannot fail; this is what gives
// List.Swap and List.Take their unconditional guarantee.
func (s *storage[T]) swap(other *storage[T]) {
	s.head, other.head = other.head, s.head
	s.tail, other.tail = other.tail, s.tail
	s.size, other.size = other.size, s.size
}

// reset detaches the aggregate from whatever chain it anchored.
func (s *storage[T]) reset() {
	s.head = nil
	s.tail = nil
	s.size = 0
}
