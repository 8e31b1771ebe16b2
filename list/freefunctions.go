package list

// Package-level helpers mirroring the member operations. Capabilities the
// element type needs only for a particular operation, such as equality or a
// custom comparison, are expressed as per-function type constraints here instead
// of constraining List itself, so List[T] stays usable for any T.

// Swap exchanges the contents of a and b in O(1). Cannot fail.
func Swap[T any](a, b *List[T]) {
	a.Swap(b)
}

// Remove destroys every element equal to value in one front-to-back pass,
// returning how many were removed.
func Remove[T comparable](l *List[T], value T) int {
	return l.RemoveIf(func(v T) bool {
		return v == value
	})
}

// RemoveFunc is Remove for element types without built-in equality: eq
// reports whether two elements are equal.
func RemoveFunc[T any](l *List[T], value T, eq func(a, b T) bool) int {
	return l.RemoveIf(func(v T) bool {
		return eq(v, value)
	})
}

// Erase removes every element equal to value; forwarding wrapper over
// Remove.
func Erase[T comparable](l *List[T], value T) int {
	return Remove(l, value)
}

// EraseIf removes every element matching pred; forwarding wrapper over
// RemoveIf.
func EraseIf[T any](l *List[T], pred func(value T) bool) int {
	return l.RemoveIf(pred)
}
