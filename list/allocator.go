package list

import (
	log "log/slog"
)

// Allocator gates node creation so that running out of memory budget is an
// observable outcome instead of a fatal one. Before materializing a node the
// List asks for a reservation of the node's size in bytes; a refusal makes
// the operation report failure (false or an invalid iterator) and leave the
// list in its documented state. Destroying a node returns the reservation.
//
// Implementations are not required to be safe for concurrent use; a List and
// its Allocator follow the same single-owner discipline.
type Allocator interface {
	// Allocate reserves room for size bytes, reporting false when the
	// reservation cannot be granted.
	Allocate(size int) bool
	// Release returns a previously granted reservation of size bytes.
	Release(size int)
}

// heapAllocator grants everything; the Go heap is the only limit.
type heapAllocator struct{}

func (heapAllocator) Allocate(int) bool { return true }
func (heapAllocator) Release(int)       {}

// HeapAllocator returns the default Allocator. It never refuses a
// reservation, so lists using it only fail allocation at their MaxCount
// bound.
func HeapAllocator() Allocator {
	return heapAllocator{}
}

// QuotaAllocator enforces a fixed byte budget across every list that shares
// it. Reservations that would exceed the budget are refused, which surfaces
// as allocation failure on the calling list.
type QuotaAllocator struct {
	limit int
	used  int
}

// NewQuotaAllocator creates an allocator with the given budget in bytes.
func NewQuotaAllocator(limit int) *QuotaAllocator {
	return &QuotaAllocator{limit: limit}
}

// Allocate grants the reservation if it fits the remaining budget.
func (qa *QuotaAllocator) Allocate(size int) bool {
	if size < 0 || qa.used+size > qa.limit {
		log.Debug("allocation denied", "size", size, "used", qa.used, "limit", qa.limit)
		return false
	}
	qa.used += size
	return true
}

// Release returns size bytes to the budget.
func (qa *QuotaAllocator) Release(size int) {
	qa.used -= size
	if qa.used < 0 {
		qa.used = 0
	}
}

// Used returns the number of bytes currently reserved.
func (qa *QuotaAllocator) Used() int {
	return qa.used
}

// Limit returns the budget in bytes.
func (qa *QuotaAllocator) Limit() int {
	return qa.limit
}
