package list

// collect gathers the list's elements front to back via the forward iterator.
func collect[T any](l *List[T]) []T {
	r := make([]T, 0, l.Count())
	for it := l.ConstBegin(); it != l.ConstEnd(); it = it.Next() {
		r = append(r, it.Value())
	}
	return r
}

// collectReverse gathers the list's elements back to front via the reverse iterator.
func collectReverse[T any](l *List[T]) []T {
	r := make([]T, 0, l.Count())
	for it := l.ConstReverseBegin(); it != l.ConstReverseEnd(); it = it.Next() {
		r = append(r, it.Value())
	}
	return r
}

// equalSlices reports element-wise equality.
func equalSlices[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// checkChain verifies the storage invariants: head/tail/size agreement,
// forward and backward walks visiting exactly size nodes, and mutual
// prev/next linkage.
func checkChain[T any](l *List[T]) bool {
	if (l.store.head == nil) != (l.store.tail == nil) {
		return false
	}
	if l.store.head == nil && l.store.size != 0 {
		return false
	}
	var count int
	for n := l.store.head; n != nil; n = n.next {
		if n.next != nil && n.next.prev != n {
			return false
		}
		if n.prev != nil && n.prev.next != n {
			return false
		}
		count++
		if count > l.store.size {
			return false
		}
	}
	if count != l.store.size {
		return false
	}
	count = 0
	for n := l.store.tail; n != nil; n = n.prev {
		count++
	}
	return count == l.store.size
}

// sampleValues is the shared input used across the scenario tests.
func sampleValues() []int {
	return []int{251, 515, 25, 16232, 5156, 2551, 251, 5621, 6722, 915}
}
