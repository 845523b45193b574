package toast

import (
	"errors"
	"testing"
	"time"

	"github.com/glaze-ui/glaze/pkg/vdom"
)

// ids collects the notification ids in a sequence, in stacking order.
func ids(seq []Notification) []string {
	out := make([]string, len(seq))
	for i, n := range seq {
		out[i] = n.ID
	}
	return out
}

func equalIDs(a, b []string) bool {
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

func TestNotifyStackingPolicy(t *testing.T) {
	m := NewManager()

	idA, err := m.Notify("A", WithPosition(Top))
	if err != nil {
		t.Fatalf("Notify(A): %v", err)
	}
	if idA != "1" {
		t.Fatalf("first id = %q, want \"1\"", idA)
	}

	idB, _ := m.Notify("B", WithPosition(Top))
	if idB != "2" {
		t.Fatalf("second id = %q, want \"2\"", idB)
	}

	// Top-anchored: newest first.
	if got := ids(m.Snapshot().Get(Top)); !equalIDs(got, []string{"2", "1"}) {
		t.Fatalf("top sequence = %v, want [2 1]", got)
	}

	idC, _ := m.Notify("C", WithPosition(Bottom))
	idD, _ := m.Notify("D", WithPosition(Bottom))
	if idC != "3" || idD != "4" {
		t.Fatalf("ids = %q %q, want 3 4", idC, idD)
	}

	// Bottom-anchored: newest last.
	if got := ids(m.Snapshot().Get(Bottom)); !equalIDs(got, []string{"3", "4"}) {
		t.Fatalf("bottom sequence = %v, want [3 4]", got)
	}
}

func TestNotifyDefaultsToTop(t *testing.T) {
	m := NewManager()
	id, err := m.Notify("hello")
	if err != nil {
		t.Fatalf("Notify: %v", err)
	}
	p, _, ok := m.Snapshot().Find(id)
	if !ok || p != Top {
		t.Fatalf("Find(%q) = (%q, %v), want top", id, p, ok)
	}
}

func TestNotifyRejectsInvalidPositionBeforeMutating(t *testing.T) {
	m := NewManager()
	_, err := m.Notify("x", WithPosition(Position("center")))
	if !errors.Is(err, ErrInvalidPosition) {
		t.Fatalf("error = %v, want ErrInvalidPosition", err)
	}
	if m.Snapshot().Len() != 0 {
		t.Fatal("store must be untouched after a rejected Notify")
	}
}

func TestNotifyWithExplicitID(t *testing.T) {
	m := NewManager()
	id, err := m.Notify("x", WithID("custom-7"))
	if err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if id != "custom-7" {
		t.Fatalf("id = %q, want custom-7", id)
	}
	// Explicit ids bypass the allocator entirely.
	next, _ := m.Notify("y")
	if next != "1" {
		t.Fatalf("allocator id = %q, want \"1\"", next)
	}
}

func TestDuplicateExplicitIDShadowsOlder(t *testing.T) {
	m := NewManager()
	m.Notify("old", WithID("dup"), WithPosition(Bottom))
	m.Notify("new", WithID("dup"), WithPosition(Bottom))

	if got := m.Snapshot().Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2 (no dedup of explicit ids)", got)
	}
	p, idx, ok := m.Snapshot().Find("dup")
	if !ok {
		t.Fatal("Find(dup) failed")
	}
	// Find returns the first match in stacking order.
	if m.Snapshot().Get(p)[idx].Message != "old" {
		t.Fatalf("Find resolved %v, want the first entry", m.Snapshot().Get(p)[idx].Message)
	}
}

func TestUpdateMergesOnlySuppliedFields(t *testing.T) {
	m := NewManager()
	id, _ := m.Notify("msg",
		WithPosition(BottomRight),
		WithStatus(StatusInfo),
		WithContainerStyle(vdom.Style{"background": "black"}),
	)

	m.Update(id, WithStatus(StatusError))

	p, idx, _ := m.Snapshot().Find(id)
	n := m.Snapshot().Get(p)[idx]
	if n.Status != StatusError {
		t.Fatalf("Status = %q, want error", n.Status)
	}
	if n.ContainerStyle["background"] != "black" {
		t.Fatal("unsupplied field ContainerStyle was not preserved")
	}
	if n.Message != "msg" {
		t.Fatalf("Message = %v, want msg", n.Message)
	}
}

func TestUpdateIgnoresPosition(t *testing.T) {
	m := NewManager()
	id, _ := m.Notify("x", WithPosition(TopLeft))

	m.Update(id, WithPosition(BottomRight), WithStatus(StatusWarning))

	p, idx, ok := m.Snapshot().Find(id)
	if !ok || p != TopLeft {
		t.Fatalf("position after update = %q, want top-left", p)
	}
	if m.Snapshot().Get(p)[idx].Status != StatusWarning {
		t.Fatal("other supplied fields must still merge")
	}
	if len(m.Snapshot().Get(BottomRight)) != 0 {
		t.Fatal("notification leaked into the supplied position")
	}
}

func TestUpdateUnknownIDIsSilentNoOp(t *testing.T) {
	m := NewManager()
	m.Notify("x", WithPosition(Top))

	notified := 0
	stop := m.Subscribe(func(Snapshot) { notified++ })
	defer stop()

	m.Update("does-not-exist", WithStatus(StatusError))

	if notified != 0 {
		t.Fatalf("snapshot transitioned %d times for unknown id, want 0", notified)
	}
}

func TestCloseMarksExactlyOne(t *testing.T) {
	m := NewManager()
	idA, _ := m.Notify("A", WithPosition(Top))
	idB, _ := m.Notify("B", WithPosition(Top))

	m.Close(idB)

	seq := m.Snapshot().Get(Top)
	if got := ids(seq); !equalIDs(got, []string{"2", "1"}) {
		t.Fatalf("close must not reorder: %v", got)
	}
	for _, n := range seq {
		want := n.ID == idB
		if n.RequestClose != want {
			t.Fatalf("RequestClose(%s) = %v, want %v", n.ID, n.RequestClose, want)
		}
	}
	_ = idA
}

func TestCloseUnknownIDIsNoOp(t *testing.T) {
	m := NewManager()
	notified := 0
	stop := m.Subscribe(func(Snapshot) { notified++ })
	defer stop()

	m.Close("ghost")
	if notified != 0 {
		t.Fatalf("snapshot transitioned %d times, want 0", notified)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	m := NewManager()
	id, _ := m.Notify("x")

	m.Close(id)

	notified := 0
	stop := m.Subscribe(func(Snapshot) { notified++ })
	defer stop()

	m.Close(id)
	if notified != 0 {
		t.Fatal("second Close must not produce a transition")
	}
}

func TestCloseAllIsOneAtomicTransition(t *testing.T) {
	m := NewManager()
	for _, p := range Positions() {
		m.Notify("x", WithPosition(p))
		m.Notify("y", WithPosition(p))
	}

	transitions := 0
	stop := m.Subscribe(func(s Snapshot) {
		transitions++
		// Inside the one transition, every notification is already closing.
		for _, p := range Positions() {
			for _, n := range s.Get(p) {
				if !n.RequestClose {
					t.Errorf("observed partial closeAll: %s not closing", n.ID)
				}
			}
		}
	})
	defer stop()

	if err := m.CloseAll(); err != nil {
		t.Fatalf("CloseAll: %v", err)
	}
	if transitions != 1 {
		t.Fatalf("CloseAll produced %d transitions, want 1", transitions)
	}
}

func TestCloseAllWithPositions(t *testing.T) {
	m := NewManager()
	m.Notify("t", WithPosition(Top))
	m.Notify("b", WithPosition(Bottom))

	if err := m.CloseAll(Top); err != nil {
		t.Fatalf("CloseAll(Top): %v", err)
	}

	if !m.Snapshot().Get(Top)[0].RequestClose {
		t.Fatal("top notification should be closing")
	}
	if m.Snapshot().Get(Bottom)[0].RequestClose {
		t.Fatal("bottom notification must be untouched")
	}
}

func TestCloseAllRejectsInvalidPosition(t *testing.T) {
	m := NewManager()
	m.Notify("x", WithPosition(Top))

	err := m.CloseAll(Top, Position("nowhere"))
	if !errors.Is(err, ErrInvalidPosition) {
		t.Fatalf("error = %v, want ErrInvalidPosition", err)
	}
	if m.Snapshot().Get(Top)[0].RequestClose {
		t.Fatal("store must be untouched after a rejected CloseAll")
	}
}

func TestIsActiveLifecycle(t *testing.T) {
	m := NewManager()
	b := NewBridge(m)

	id, _ := m.Notify("x", WithPosition(Top))
	if !m.IsActive(id) {
		t.Fatal("IsActive must be true after Notify")
	}

	m.Close(id)
	if !m.IsActive(id) {
		t.Fatal("a closing notification still counts as active")
	}

	b.CompleteExit(id)
	if m.IsActive(id) {
		t.Fatal("IsActive must be false after removal")
	}
}

func TestRemovalCapabilityFiresOnCloseComplete(t *testing.T) {
	m := NewManager()
	b := NewBridge(m)

	completed := 0
	id, _ := m.Notify("x", WithOnCloseComplete(func() { completed++ }))

	m.Close(id)
	b.CompleteExit(id)

	if completed != 1 {
		t.Fatalf("OnCloseComplete fired %d times, want 1", completed)
	}

	// Late duplicate completion is tolerated as a no-op.
	b.CompleteExit(id)
	if completed != 1 {
		t.Fatalf("OnCloseComplete fired %d times after duplicate exit, want 1", completed)
	}
}

func TestRemovalScenario(t *testing.T) {
	m := NewManager()
	b := NewBridge(m)

	m.Notify("A", WithPosition(Top))
	idB, _ := m.Notify("B", WithPosition(Top))

	m.Close(idB)
	b.CompleteExit(idB)

	if got := ids(m.Snapshot().Get(Top)); !equalIDs(got, []string{"1"}) {
		t.Fatalf("top sequence = %v, want [1]", got)
	}
}

func TestAutoDismissClosesAfterDuration(t *testing.T) {
	m := NewManager()
	id, _ := m.Notify("x", WithDuration(20*time.Millisecond))

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		p, idx, ok := m.Snapshot().Find(id)
		if ok && m.Snapshot().Get(p)[idx].RequestClose {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("notification was not closed by its auto-dismiss timer")
}

func TestCloseCancelsAutoDismiss(t *testing.T) {
	m := NewManager()
	id, _ := m.Notify("x", WithDuration(time.Hour))

	m.Close(id)

	m.mu.Lock()
	_, pending := m.timers[id]
	m.mu.Unlock()
	if pending {
		t.Fatal("Close must cancel the auto-dismiss timer")
	}
}

func TestSubscriberMayResolveExitSynchronously(t *testing.T) {
	m := NewManager()
	b := NewBridge(m)

	// A renderer with no exit animation resolves the removal capability
	// the moment it sees a closing notification, from inside the
	// subscription callback.
	stop := m.Subscribe(func(s Snapshot) {
		for _, p := range Positions() {
			for _, n := range s.Get(p) {
				if n.RequestClose {
					b.CompleteExit(n.ID)
				}
			}
		}
	})
	defer stop()

	id, _ := m.Notify("x")

	done := make(chan struct{})
	go func() {
		m.Close(id)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Close blocked while a subscriber resolved the exit synchronously")
	}
	if m.IsActive(id) {
		t.Fatal("notification should be removed after the synchronous exit")
	}
}

func TestNotifyReplacesStaleDismissTimer(t *testing.T) {
	m := NewManager()

	m.Notify("old", WithID("dup"), WithPosition(Top), WithDuration(30*time.Millisecond))
	m.Notify("new", WithID("dup"), WithPosition(Top), WithDuration(time.Hour))

	// The first timer must be stopped when the id is rescheduled, or it
	// fires and closes the surviving entry early.
	time.Sleep(150 * time.Millisecond)

	for _, n := range m.Snapshot().Get(Top) {
		if n.RequestClose {
			t.Fatalf("notification %q closed by a stale auto-dismiss timer", n.ID)
		}
	}
}

func TestSnapshotImmutability(t *testing.T) {
	m := NewManager()
	m.Notify("A", WithPosition(Top))

	before := m.Snapshot()
	m.Notify("B", WithPosition(Top))

	if got := ids(before.Get(Top)); !equalIDs(got, []string{"1"}) {
		t.Fatalf("old snapshot changed under a later Notify: %v", got)
	}
}

func TestSubscribeSeesEveryTransition(t *testing.T) {
	m := NewManager()

	var lens []int
	stop := m.Subscribe(func(s Snapshot) { lens = append(lens, s.Len()) })
	defer stop()

	m.Notify("a")
	m.Notify("b")

	if len(lens) != 2 || lens[0] != 1 || lens[1] != 2 {
		t.Fatalf("subscriber saw %v, want [1 2]", lens)
	}
}
