package toast

// Snapshot is an immutable mapping from position to ordered notification
// sequence, representing manager state at one instant. Mutating operations
// return a fresh Snapshot and never touch existing ones, so concurrent
// readers can hold a Snapshot without synchronization.
//
// Order within a sequence encodes visual stacking order, not insertion time.
// Every notification appears in exactly one position's sequence.
type Snapshot struct {
	buckets map[Position][]Notification

	// version orders published snapshots; later transitions carry larger
	// values. Stamped by the manager when the snapshot is stored.
	version uint64
}

// Get returns the ordered sequence for a position. The returned slice is
// owned by the snapshot and must not be modified.
func (s Snapshot) Get(p Position) []Notification {
	return s.buckets[p]
}

// Find locates a notification by id. It scans every position's sequence in
// canonical order and returns the first match. Linear time in the number of
// visible notifications, which is bounded by screen real estate rather than
// anything the library enforces.
func (s Snapshot) Find(id string) (Position, int, bool) {
	for _, p := range allPositions {
		for i, n := range s.buckets[p] {
			if n.ID == id {
				return p, i, true
			}
		}
	}
	return "", 0, false
}

// Len returns the total number of tracked notifications.
func (s Snapshot) Len() int {
	total := 0
	for _, seq := range s.buckets {
		total += len(seq)
	}
	return total
}

// replace returns a new Snapshot with the sequence at p swapped out.
// The bucket map is copied; untouched sequences are shared structurally,
// which is safe because sequences are never mutated in place.
func (s Snapshot) replace(p Position, seq []Notification) Snapshot {
	buckets := make(map[Position][]Notification, len(s.buckets)+1)
	for k, v := range s.buckets {
		buckets[k] = v
	}
	if len(seq) == 0 {
		delete(buckets, p)
	} else {
		buckets[p] = seq
	}
	return Snapshot{buckets: buckets}
}
