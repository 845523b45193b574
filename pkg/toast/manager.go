package toast

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/glaze-ui/glaze/pkg/reactive"
)

// Manager is the lifecycle controller for toast notifications. It owns the
// notification store for its entire lifetime: every mutation flows through a
// Manager operation and produces exactly one atomic snapshot transition.
type Manager struct {
	mu sync.Mutex

	// snap is the authoritative state, guarded by mu.
	snap Snapshot

	// version stamps each published snapshot so a delayed notification
	// cannot clobber a newer one on the signal.
	version uint64

	// snapshots carries transitions to observers. It is written only
	// through notifyObservers, after mu is released, because subscribers
	// run synchronously and may call back into the manager.
	snapshots *reactive.Signal[Snapshot]

	alloc   *Allocator
	logger  *slog.Logger
	metrics *Metrics

	defaultPosition Position
	insets          Insets

	// timers tracks pending auto-dismiss timers by notification id.
	timers map[string]*time.Timer
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) ManagerOption {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithMetrics attaches Prometheus instrumentation to the manager.
func WithMetrics(metrics *Metrics) ManagerOption {
	return func(m *Manager) {
		m.metrics = metrics
	}
}

// WithDefaultPosition sets the position used when Notify is called without
// WithPosition. Defaults to Top.
func WithDefaultPosition(p Position) ManagerOption {
	return func(m *Manager) {
		m.defaultPosition = p
	}
}

// WithInsets sets the viewport insets used for region geometry.
func WithInsets(in Insets) ManagerOption {
	return func(m *Manager) {
		m.insets = in
	}
}

// NewManager creates a Manager with an empty store.
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		// Every Set is a real transition; snapshots are never reused, so
		// change detection would only waste a deep comparison.
		snapshots:       reactive.NewSignal(Snapshot{}).WithEquals(func(_, _ Snapshot) bool { return false }),
		alloc:           NewAllocator(),
		defaultPosition: Top,
		insets:          DefaultInsets(),
		timers:          make(map[string]*time.Timer),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = slog.Default()
	}
	return m
}

// store records snap as the authoritative state and stamps its version.
// Caller must hold m.mu.
func (m *Manager) store(snap Snapshot) Snapshot {
	m.version++
	snap.version = m.version
	m.snap = snap
	return snap
}

// notifyObservers publishes a stored snapshot to the signal. Must be called
// after m.mu is released: subscribers run synchronously and may invoke
// mutating operations (a renderer with no exit animation resolves
// OnExitComplete the moment it sees a closing toast). The version guard
// keeps a delayed publish from replacing a newer one.
func (m *Manager) notifyObservers(snap Snapshot) {
	m.snapshots.Update(func(cur Snapshot) Snapshot {
		if cur.version > snap.version {
			return cur
		}
		return snap
	})
}

// Notify creates a notification and inserts it into its position's sequence.
// It returns the notification id. The id is allocated unless WithID was
// supplied; the position defaults to the manager's default position and is
// validated before any state changes.
//
// Insertion side follows the stacking policy: top-anchored positions prepend
// (newest on top), bottom-anchored positions append (newest on bottom), so
// the newest notification always sits closest to the screen edge.
func (m *Manager) Notify(message any, opts ...Option) (string, error) {
	o := collect(opts)

	position := m.defaultPosition
	if o.position != nil {
		position = *o.position
	}
	if !position.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPosition, position)
	}

	id := ""
	if o.id != nil {
		id = *o.id
	} else {
		id = m.alloc.Next()
	}

	n := Notification{
		ID:       id,
		Message:  message,
		Position: position,
	}
	o.mergeInto(&n)
	n.onRequestRemove = func() { m.remove(id, position) }

	m.mu.Lock()
	seq := m.snap.Get(position)

	next := make([]Notification, 0, len(seq)+1)
	if position.IsTop() {
		next = append(next, n)
		next = append(next, seq...)
	} else {
		next = append(next, seq...)
		next = append(next, n)
	}

	if n.Duration > 0 {
		m.scheduleDismiss(id, n.Duration)
	}
	snap := m.store(m.snap.replace(position, next))
	m.mu.Unlock()

	m.notifyObservers(snap)
	m.metrics.notificationShown(position, n.Status)
	m.logger.Debug("toast shown", "id", id, "position", position, "status", n.Status)
	return id, nil
}

// Update merges the supplied options into an existing notification. Unknown
// ids are a silent no-op: the notification may have already removed itself
// after its exit animation, which is a benign race rather than an error.
//
// The position option is ignored; a notification cannot change which corner
// it is anchored to after creation. Supplying a new duration restarts the
// auto-dismiss timer.
func (m *Manager) Update(id string, opts ...Option) {
	o := collect(opts)

	m.mu.Lock()
	position, idx, ok := m.snap.Find(id)
	if !ok {
		m.mu.Unlock()
		return
	}

	seq := m.snap.Get(position)
	next := make([]Notification, len(seq))
	copy(next, seq)

	n := next[idx]
	o.mergeInto(&n)
	next[idx] = n

	if o.duration != nil && !n.RequestClose {
		m.cancelDismiss(id)
		if n.Duration > 0 {
			m.scheduleDismiss(id, n.Duration)
		}
	}

	snap := m.store(m.snap.replace(position, next))
	m.mu.Unlock()

	m.notifyObservers(snap)
}

// Close marks a notification as leaving by setting RequestClose. Order and
// all other fields are untouched; removal happens when the rendering
// collaborator reports the exit animation finished. Unknown ids and already
// closing notifications are no-ops.
func (m *Manager) Close(id string) {
	m.closeWithReason(id, closeReasonExplicit)
}

// closeWithReason is Close with a metrics label for the trigger.
func (m *Manager) closeWithReason(id string, reason string) {
	m.mu.Lock()

	position, idx, ok := m.snap.Find(id)
	if !ok {
		m.mu.Unlock()
		return
	}

	seq := m.snap.Get(position)
	if seq[idx].RequestClose {
		m.mu.Unlock()
		return
	}

	next := make([]Notification, len(seq))
	copy(next, seq)
	next[idx].RequestClose = true

	m.cancelDismiss(id)
	snap := m.store(m.snap.replace(position, next))
	m.mu.Unlock()

	m.notifyObservers(snap)
	m.metrics.notificationClosed(reason)
	m.logger.Debug("toast closing", "id", id, "reason", reason)
}

// CloseAll marks every notification in the given positions as leaving.
// With no arguments it affects all six positions. The whole operation is a
// single snapshot transition: a concurrent reader either sees none or all
// of the affected notifications closing.
func (m *Manager) CloseAll(positions ...Position) error {
	if len(positions) == 0 {
		positions = allPositions
	}
	for _, p := range positions {
		if !p.Valid() {
			return fmt.Errorf("%w: %q", ErrInvalidPosition, p)
		}
	}

	m.mu.Lock()

	snap := m.snap
	closed := 0
	for _, p := range positions {
		seq := snap.Get(p)
		dirty := false
		for _, n := range seq {
			if !n.RequestClose {
				dirty = true
				break
			}
		}
		if !dirty {
			continue
		}

		next := make([]Notification, len(seq))
		copy(next, seq)
		for i := range next {
			if !next[i].RequestClose {
				next[i].RequestClose = true
				m.cancelDismiss(next[i].ID)
				closed++
			}
		}
		snap = snap.replace(p, next)
	}

	if closed == 0 {
		m.mu.Unlock()
		return nil
	}

	snap = m.store(snap)
	m.mu.Unlock()

	m.notifyObservers(snap)
	for i := 0; i < closed; i++ {
		m.metrics.notificationClosed(closeReasonCloseAll)
	}
	m.logger.Debug("toasts closing", "count", closed, "positions", len(positions))
	return nil
}

// IsActive reports whether a notification is still tracked. A closing
// notification that has not finished its exit animation still counts as
// active.
func (m *Manager) IsActive(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, _, ok := m.snap.Find(id)
	return ok
}

// Snapshot returns the current store snapshot.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snap
}

// Subscribe registers fn to run after every snapshot transition. The
// returned stop function removes the subscription.
//
// Callbacks run synchronously on the mutating goroutine but outside the
// manager's lock, so a subscriber may call back into any Manager operation,
// including resolving a removal capability the moment it sees a closing
// notification.
func (m *Manager) Subscribe(fn func(Snapshot)) (stop func()) {
	return reactive.Watch(m.snapshots, fn)
}

// Insets returns the viewport insets used for region geometry.
func (m *Manager) Insets() Insets {
	return m.insets
}

// remove deletes a notification from its position's sequence. It is the
// only operation that shrinks a sequence, and it is reached exclusively
// through the removal capability bound at creation. Tolerates ids that are
// already gone, since the capability may fire during unmount paths outside
// normal control.
func (m *Manager) remove(id string, position Position) {
	m.mu.Lock()

	seq := m.snap.Get(position)

	idx := -1
	for i, n := range seq {
		if n.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		m.mu.Unlock()
		return
	}

	removed := seq[idx]
	next := make([]Notification, 0, len(seq)-1)
	next = append(next, seq[:idx]...)
	next = append(next, seq[idx+1:]...)

	m.cancelDismiss(id)
	snap := m.store(m.snap.replace(position, next))
	m.mu.Unlock()

	m.notifyObservers(snap)
	m.metrics.notificationRemoved(position)
	m.logger.Debug("toast removed", "id", id, "position", position)

	if removed.OnCloseComplete != nil {
		removed.OnCloseComplete()
	}
}

// scheduleDismiss starts the auto-dismiss timer for id, replacing any
// pending one so a stale timer cannot close a later notification that
// reuses the id. Caller must hold m.mu.
func (m *Manager) scheduleDismiss(id string, d time.Duration) {
	m.cancelDismiss(id)
	m.timers[id] = time.AfterFunc(d, func() {
		m.closeWithReason(id, closeReasonTimeout)
	})
}

// cancelDismiss stops and forgets the auto-dismiss timer for id, if any.
// Caller must hold m.mu.
func (m *Manager) cancelDismiss(id string) {
	if t, ok := m.timers[id]; ok {
		t.Stop()
		delete(m.timers, id)
	}
}

// Close reasons reported to metrics.
const (
	closeReasonExplicit = "close"
	closeReasonCloseAll = "close_all"
	closeReasonTimeout  = "timeout"
)
