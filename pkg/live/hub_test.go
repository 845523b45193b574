package live

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/glaze-ui/glaze/pkg/toast"
)

func int64ptr(v int64) *int64 { return &v }

func TestHandleCommandNotify(t *testing.T) {
	m := toast.NewManager()
	h := NewHub(m)
	defer h.Close()

	h.handleCommand("c1", command{
		Op:       opNotify,
		ID:       "greet",
		Message:  "hello",
		Position: "bottom-right",
		Status:   "success",
	})

	if !m.IsActive("greet") {
		t.Fatal("notify command did not create the toast")
	}
	seq := m.Snapshot().Get(toast.BottomRight)
	if len(seq) != 1 || seq[0].Status != toast.StatusSuccess {
		t.Fatalf("seq = %+v", seq)
	}
}

func TestHandleCommandNotifyInvalidPosition(t *testing.T) {
	m := toast.NewManager()
	h := NewHub(m)
	defer h.Close()

	h.handleCommand("c1", command{Op: opNotify, Message: "x", Position: "middle"})

	if m.Snapshot().Len() != 0 {
		t.Fatal("invalid position must not create a toast")
	}
}

func TestHandleCommandUpdate(t *testing.T) {
	m := toast.NewManager()
	h := NewHub(m)
	defer h.Close()

	id, err := m.Notify("old")
	if err != nil {
		t.Fatalf("notify: %v", err)
	}

	h.handleCommand("c1", command{Op: opUpdate, ID: id, Message: "new", Status: "warning"})

	p, idx, ok := m.Snapshot().Find(id)
	if !ok {
		t.Fatal("toast gone after update")
	}
	n := m.Snapshot().Get(p)[idx]
	if n.Message != "new" || n.Status != toast.StatusWarning {
		t.Fatalf("update not merged: %+v", n)
	}
}

func TestHandleCommandCloseAndExited(t *testing.T) {
	m := toast.NewManager()
	h := NewHub(m)
	defer h.Close()

	id, _ := m.Notify("bye")

	h.handleCommand("c1", command{Op: opClose, ID: id})
	p, idx, ok := m.Snapshot().Find(id)
	if !ok || !m.Snapshot().Get(p)[idx].RequestClose {
		t.Fatal("close command did not mark the toast closing")
	}

	h.handleCommand("c1", command{Op: opExited, ID: id})
	if m.IsActive(id) {
		t.Fatal("exited command did not remove the toast")
	}
}

func TestHandleCommandCloseAll(t *testing.T) {
	m := toast.NewManager()
	h := NewHub(m)
	defer h.Close()

	m.Notify("a", toast.WithPosition(toast.Top))
	m.Notify("b", toast.WithPosition(toast.BottomLeft))

	h.handleCommand("c1", command{Op: opCloseAll, Positions: []string{"top"}})

	topSeq := m.Snapshot().Get(toast.Top)
	if !topSeq[0].RequestClose {
		t.Fatal("top toast not closing")
	}
	bottomSeq := m.Snapshot().Get(toast.BottomLeft)
	if bottomSeq[0].RequestClose {
		t.Fatal("bottom-left toast must be untouched")
	}
}

func TestHandleCommandDuration(t *testing.T) {
	m := toast.NewManager()
	h := NewHub(m)
	defer h.Close()

	h.handleCommand("c1", command{Op: opNotify, ID: "t", Message: "x", DurationMS: int64ptr(20)})

	deadline := time.Now().Add(2 * time.Second)
	for m.IsActive("t") {
		if time.Now().After(deadline) {
			t.Fatal("toast with duration never auto-closed")
		}
		time.Sleep(5 * time.Millisecond)

		// Resolve the exit once the close fires.
		p, idx, ok := m.Snapshot().Find("t")
		if ok && m.Snapshot().Get(p)[idx].RequestClose {
			h.handleCommand("c1", command{Op: opExited, ID: "t"})
		}
	}
}

func TestHandleCommandUnknownOp(t *testing.T) {
	m := toast.NewManager()
	h := NewHub(m)
	defer h.Close()

	h.handleCommand("c1", command{Op: "reboot"})

	if m.Snapshot().Len() != 0 {
		t.Fatal("unknown op must not mutate state")
	}
}

func TestEncodeSnapshotShape(t *testing.T) {
	m := toast.NewManager()
	h := NewHub(m)
	defer h.Close()

	m.Notify("hi", toast.WithID("1"), toast.WithStatus(toast.StatusError))
	m.Close("1")

	frame, err := encodeSnapshot(h.renderer, h.bridge.Regions())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	var msg snapshotMessage
	if err := json.Unmarshal(frame, &msg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if msg.Op != "snapshot" {
		t.Fatalf("op = %q", msg.Op)
	}
	if len(msg.Regions) != len(toast.Positions()) {
		t.Fatalf("regions = %d, want %d", len(msg.Regions), len(toast.Positions()))
	}

	top := msg.Regions[0]
	if top.Position != string(toast.Top) {
		t.Fatalf("first region = %q, want top", top.Position)
	}
	if !strings.Contains(top.Style, "position: fixed") {
		t.Fatalf("region style = %q", top.Style)
	}
	if len(top.Toasts) != 1 {
		t.Fatalf("top toasts = %d", len(top.Toasts))
	}

	tp := top.Toasts[0]
	if tp.ID != "1" || tp.Status != "error" || !tp.Closing {
		t.Fatalf("toast payload = %+v", tp)
	}
	if !strings.Contains(tp.HTML, `class="glaze-toast"`) {
		t.Fatalf("toast html = %q", tp.HTML)
	}
	if !strings.Contains(tp.HTML, `data-closing="true"`) {
		t.Fatalf("toast html missing closing marker: %q", tp.HTML)
	}
}

func dialHub(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(url, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	return conn
}

func readSnapshot(t *testing.T, conn *websocket.Conn) snapshotMessage {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var msg snapshotMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return msg
}

func TestHubRoundTrip(t *testing.T) {
	m := toast.NewManager()
	h := NewHub(m, WithCheckOrigin(func(_ *http.Request) bool { return true }))
	defer h.Close()

	srv := httptest.NewServer(h)
	defer srv.Close()

	conn := dialHub(t, srv.URL)
	defer conn.Close()

	// Seed snapshot arrives immediately, with all regions empty.
	seed := readSnapshot(t, conn)
	for _, r := range seed.Regions {
		if len(r.Toasts) != 0 {
			t.Fatalf("seed region %s not empty", r.Position)
		}
	}

	// A notify command comes back as a broadcast snapshot.
	cmd := command{Op: opNotify, ID: "rt", Message: "round trip"}
	payload, _ := json.Marshal(cmd)
	if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		t.Fatalf("write: %v", err)
	}

	next := readSnapshot(t, conn)
	if len(next.Regions[0].Toasts) != 1 || next.Regions[0].Toasts[0].ID != "rt" {
		t.Fatalf("broadcast snapshot = %+v", next.Regions[0])
	}
}
