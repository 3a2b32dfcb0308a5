package api

// List interface for sorted-sets built over a key ordered chain of
// nodes. Implementations differ only in the concurrency discipline
// guarding the chain, so drivers can swap one list for another
// without changing call sites.
type List interface {
	// ID return name of the list instance.
	ID() string

	// Count return number of items in the list. Under concurrent
	// mutation the count is a momentary value.
	Count() int64

	// Add item into the list. Returns true if item's key was
	// absent and a node was spliced in, false otherwise without
	// mutating the list.
	Add(item []byte) bool

	// Remove item from the list. Returns true if item's key was
	// present and its node was unlinked, false otherwise without
	// mutating the list.
	Remove(item []byte) bool

	// Contains return true iff item's key is present in the list.
	Contains(item []byte) bool

	// Stats return operation counters for this list.
	Stats() map[string]interface{}

	// Validate walk the chain and panic if the sort order, the
	// uniqueness guarantee or the counters are broken. Not safe
	// to call concurrent with mutations, except on the coarse
	// list.
	Validate()

	// Log current statistics via the logging shim.
	Log()

	// Destroy the list. Outstanding operations shall be drained
	// before calling Destroy, calling twice will panic.
	Destroy() error
}
