package reactive

import "sync"

// batchState tracks nesting depth and pending listeners for Batch.
// A single process-wide queue keeps the semantics simple: notifications
// fire when the outermost batch completes, regardless of which goroutine
// queued them.
var batchState struct {
	mu      sync.Mutex
	depth   int
	pending []Listener
}

func getBatchDepth() int {
	batchState.mu.Lock()
	defer batchState.mu.Unlock()
	return batchState.depth
}

func queuePendingUpdate(l Listener) {
	batchState.mu.Lock()
	defer batchState.mu.Unlock()
	batchState.pending = append(batchState.pending, l)
}

func drainPendingUpdates() []Listener {
	batchState.mu.Lock()
	defer batchState.mu.Unlock()
	updates := batchState.pending
	batchState.pending = nil
	return updates
}

// Batch groups multiple signal updates into a single notification phase.
// All signal updates within the batch function are collected, deduplicated,
// and all affected listeners are notified once when the batch completes.
//
// Batches can be nested. Notifications only fire when the outermost batch
// completes.
//
// Example:
//
//	Batch(func() {
//	    firstName.Set("John")
//	    lastName.Set("Doe")
//	})
//	// Listeners are notified once with both changes applied.
func Batch(fn func()) {
	batchState.mu.Lock()
	batchState.depth++
	batchState.mu.Unlock()

	defer func() {
		batchState.mu.Lock()
		batchState.depth--
		last := batchState.depth == 0
		batchState.mu.Unlock()

		if last {
			processPendingUpdates()
		}
	}()

	fn()
}

// processPendingUpdates deduplicates and notifies all pending listeners.
func processPendingUpdates() {
	updates := drainPendingUpdates()
	if len(updates) == 0 {
		return
	}

	// Deduplicate by listener ID
	seen := make(map[uint64]bool, len(updates))
	unique := make([]Listener, 0, len(updates))

	for _, listener := range updates {
		id := listener.ID()
		if !seen[id] {
			seen[id] = true
			unique = append(unique, listener)
		}
	}

	for _, listener := range unique {
		listener.MarkDirty()
	}
}
