package list

// The iterator family: four bidirectional cursors over node handles, either
// direction crossed with either mutability. An iterator is a single node
// handle; the zero value carries no handle and is the past-the-end position
// for both traversal directions; there is no sentinel node. Iterators
// compare with ==, which is handle identity.
//
// Stepping or dereferencing an invalid (zero) iterator violates the cursor
// precondition and panics the way any nil dereference does; callers check
// Valid or compare against the list's end first. Iterators never own the
// node they reference: erasing that node, clearing the list, or shrinking
// past it leaves the iterator dangling.

// Iterator is the mutable forward cursor. Next follows the chain toward the
// tail.
type Iterator[T any] struct {
	n *node[T]
}

// Valid reports whether the iterator references a node.
func (it Iterator[T]) Valid() bool {
	return it.n != nil
}

// Next returns the iterator advanced one node toward the tail.
func (it Iterator[T]) Next() Iterator[T] {
	return Iterator[T]{n: it.n.next}
}

// Prev returns the iterator moved one node toward the head.
func (it Iterator[T]) Prev() Iterator[T] {
	return Iterator[T]{n: it.n.prev}
}

// Value returns a copy of the referenced element.
func (it Iterator[T]) Value() T {
	return it.n.value
}

// Ref returns a writable view of the referenced element. The pointer stays
// valid for as long as the node lives; nodes never move in memory.
func (it Iterator[T]) Ref() *T {
	return &it.n.value
}

// Set overwrites the referenced element.
func (it Iterator[T]) Set(v T) {
	it.n.value = v
}

// Const converts to the read-only view of the same position.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{n: it.n}
}

// ConstIterator is the read-only forward cursor.
type ConstIterator[T any] struct {
	n *node[T]
}

// Valid reports whether the iterator references a node.
func (it ConstIterator[T]) Valid() bool {
	return it.n != nil
}

// Next returns the iterator advanced one node toward the tail.
func (it ConstIterator[T]) Next() ConstIterator[T] {
	return ConstIterator[T]{n: it.n.next}
}

// Prev returns the iterator moved one node toward the head.
func (it ConstIterator[T]) Prev() ConstIterator[T] {
	return ConstIterator[T]{n: it.n.prev}
}

// Value returns a copy of the referenced element.
func (it ConstIterator[T]) Value() T {
	return it.n.value
}

// ReverseIterator is the mutable reverse cursor: Next follows prev links, so
// advancing it walks from the tail toward the head.
type ReverseIterator[T any] struct {
	n *node[T]
}

// Valid reports whether the iterator references a node.
func (it ReverseIterator[T]) Valid() bool {
	return it.n != nil
}

// Next returns the iterator advanced one node toward the head.
func (it ReverseIterator[T]) Next() ReverseIterator[T] {
	return ReverseIterator[T]{n: it.n.prev}
}

// Prev returns the iterator moved one node toward the tail.
func (it ReverseIterator[T]) Prev() ReverseIterator[T] {
	return ReverseIterator[T]{n: it.n.next}
}

// Value returns a copy of the referenced element.
func (it ReverseIterator[T]) Value() T {
	return it.n.value
}

// Ref returns a writable view of the referenced element.
func (it ReverseIterator[T]) Ref() *T {
	return &it.n.value
}

// Set overwrites the referenced element.
func (it ReverseIterator[T]) Set(v T) {
	it.n.value = v
}

// Const converts to the read-only view of the same position.
func (it ReverseIterator[T]) Const() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{n: it.n}
}

// ConstReverseIterator is the read-only reverse cursor.
type ConstReverseIterator[T any] struct {
	n *node[T]
}

// Valid reports whether the iterator references a node.
func (it ConstReverseIterator[T]) Valid() bool {
	return it.n != nil
}

// Next returns the iterator advanced one node toward the head.
func (it ConstReverseIterator[T]) Next() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{n: it.n.prev}
}

// Prev returns the iterator moved one node toward the tail.
func (it ConstReverseIterator[T]) Prev() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{n: it.n.next}
}

// Value returns a copy of the referenced element.
func (it ConstReverseIterator[T]) Value() T {
	return it.n.value
}
