package toast

import (
	"strconv"
	"sync/atomic"
)

// Allocator issues notification identifiers that are unique for the lifetime
// of the allocator. IDs are canonical decimal strings ("1", "2", ...) so that
// identity comparison never depends on the caller's numeric representation.
type Allocator struct {
	counter uint64
}

// NewAllocator creates a new Allocator starting at zero.
func NewAllocator() *Allocator {
	return &Allocator{}
}

// Next returns the next unique identifier.
// Safe for concurrent use.
func (a *Allocator) Next() string {
	return strconv.FormatUint(atomic.AddUint64(&a.counter, 1), 10)
}
