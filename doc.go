// Package safelist defines the shared types and helpers used across the safelist codebase.
// The core container lives in the list subpackage: a generic doubly-linked list whose
// allocating operations never panic and never abort, reporting memory exhaustion through
// boolean or iterator return values instead. Higher-level features build on it, such as
// the MRU cache in the cache subpackage.
// It is a foundational package that the subpackages build upon; it carries the key/value
// pair tuple and the default logging configuration.
package safelist

// Failure model
//
// The containers in this module have exactly one recoverable failure kind: allocation
// denial. An operation that needs a new node asks the list's Allocator for a reservation
// first; when the reservation is refused the operation returns false (or an invalid
// iterator) and leaves documented state behind. Nothing in this module panics for
// allocation, and nothing retries: callers inspect every fallible return and decide
// whether to retry, fall back, or abort.
//
// Operations that only release memory (pop, clear, erase, swap) are unconditional and
// cannot fail.
