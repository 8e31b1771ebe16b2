package safelist

// KeyValuePair is a tuple, used by the cache package to let callers hand in
// a batch of entries each carrying its own key.
type KeyValuePair[TK any, TV any] struct {
	Key   TK
	Value TV
}
