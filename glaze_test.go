package glaze

import (
	"testing"

	"github.com/glaze-ui/glaze/pkg/toast"
)

func TestDefaultManagerLifecycle(t *testing.T) {
	SetDefault(toast.NewManager())

	id, err := Notify("hello", toast.WithStatus(toast.StatusInfo))
	if err != nil {
		t.Fatalf("notify: %v", err)
	}
	if !IsActive(id) {
		t.Fatal("notification not active after notify")
	}

	Update(id, toast.WithStatus(toast.StatusSuccess))
	p, idx, ok := Default().Snapshot().Find(id)
	if !ok || Default().Snapshot().Get(p)[idx].Status != toast.StatusSuccess {
		t.Fatal("update not applied")
	}

	Close(id)
	if !IsActive(id) {
		t.Fatal("closing notification should remain active until exit completes")
	}

	toast.NewBridge(Default()).CompleteExit(id)
	if IsActive(id) {
		t.Fatal("notification still active after exit completed")
	}
}

func TestCloseAllOnDefault(t *testing.T) {
	SetDefault(toast.NewManager())

	Notify("a")
	Notify("b", toast.WithPosition(toast.BottomLeft))

	if err := CloseAll(); err != nil {
		t.Fatalf("closeAll: %v", err)
	}
	snap := Default().Snapshot()
	for _, p := range toast.Positions() {
		for _, n := range snap.Get(p) {
			if !n.RequestClose {
				t.Fatalf("notification %s not closing", n.ID)
			}
		}
	}
}

func TestDefaultIsLazilyCreated(t *testing.T) {
	SetDefault(nil)
	if Default() == nil {
		t.Fatal("Default returned nil")
	}
}
