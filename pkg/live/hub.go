package live

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/glaze-ui/glaze/pkg/render"
	"github.com/glaze-ui/glaze/pkg/toast"
)

// Hub fans toast snapshots out to connected WebSocket clients and feeds
// client commands back into the manager. It implements http.Handler; mount
// it on the route the browser client connects to.
type Hub struct {
	bridge   *toast.Bridge
	renderer *render.Renderer
	upgrader websocket.Upgrader
	logger   *slog.Logger

	mu      sync.Mutex
	clients map[string]*client
	closed  bool

	unsubscribe func()
}

// HubOption configures a Hub.
type HubOption func(*Hub)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) HubOption {
	return func(h *Hub) {
		h.logger = logger
	}
}

// WithCheckOrigin sets the origin check used during the WebSocket upgrade.
// The default accepts same-origin requests only.
func WithCheckOrigin(fn func(r *http.Request) bool) HubOption {
	return func(h *Hub) {
		h.upgrader.CheckOrigin = fn
	}
}

// NewHub creates a Hub over the given manager and subscribes to its
// snapshot transitions. Call Close to detach.
func NewHub(m *toast.Manager, opts ...HubOption) *Hub {
	h := &Hub{
		bridge:   toast.NewBridge(m),
		renderer: render.NewRenderer(render.Config{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		clients: make(map[string]*client),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.logger == nil {
		h.logger = slog.Default()
	}

	h.unsubscribe = m.Subscribe(func(snap toast.Snapshot) {
		h.broadcast(snap)
	})

	return h
}

// ServeHTTP upgrades the request and runs the client until it disconnects.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", "error", err)
		return
	}

	c := newClient(uuid.NewString(), conn, h)

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		conn.Close()
		return
	}
	h.clients[c.id] = c
	h.mu.Unlock()

	h.logger.Debug("client connected", "client_id", c.id)

	go c.writePump()
	go c.readPump()

	// Seed the new client with the current state so it does not wait for
	// the next transition.
	if frame, err := encodeSnapshot(h.renderer, h.bridge.Regions()); err == nil {
		c.enqueue(frame)
	}
}

// Close detaches the hub from the manager and disconnects every client.
func (h *Hub) Close() {
	if h.unsubscribe != nil {
		h.unsubscribe()
	}

	h.mu.Lock()
	h.closed = true
	clients := make([]*client, 0, len(h.clients))
	for _, c := range h.clients {
		clients = append(clients, c)
	}
	h.clients = make(map[string]*client)
	h.mu.Unlock()

	for _, c := range clients {
		c.close()
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// broadcast encodes one snapshot and enqueues it to every client.
func (h *Hub) broadcast(snap toast.Snapshot) {
	frame, err := encodeSnapshot(h.renderer, h.bridge.RegionsFor(snap))
	if err != nil {
		h.logger.Error("snapshot encode failed", "error", err)
		return
	}

	h.mu.Lock()
	clients := make([]*client, 0, len(h.clients))
	for _, c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		c.enqueue(frame)
	}
}

// drop unregisters a client after its pumps exit.
func (h *Hub) drop(c *client) {
	h.mu.Lock()
	delete(h.clients, c.id)
	h.mu.Unlock()
	h.logger.Debug("client disconnected", "client_id", c.id)
}

// handleMessage decodes and dispatches one inbound client frame.
func (h *Hub) handleMessage(clientID string, data []byte) {
	var cmd command
	if err := json.Unmarshal(data, &cmd); err != nil {
		h.logger.Warn("bad command frame", "client_id", clientID, "error", err)
		return
	}
	h.handleCommand(clientID, cmd)
}

// handleCommand translates a client command into a manager operation.
func (h *Hub) handleCommand(clientID string, cmd command) {
	m := h.bridge.Manager()

	switch cmd.Op {
	case opNotify:
		opts, err := commandOptions(cmd)
		if err != nil {
			h.logger.Warn("notify rejected", "client_id", clientID, "error", err)
			return
		}
		if _, err := m.Notify(cmd.Message, opts...); err != nil {
			h.logger.Warn("notify rejected", "client_id", clientID, "error", err)
		}

	case opUpdate:
		opts, err := commandOptions(cmd)
		if err != nil {
			h.logger.Warn("update rejected", "client_id", clientID, "error", err)
			return
		}
		if cmd.Message != "" {
			opts = append(opts, toast.WithMessage(cmd.Message))
		}
		m.Update(cmd.ID, opts...)

	case opClose:
		m.Close(cmd.ID)

	case opCloseAll:
		positions := make([]toast.Position, 0, len(cmd.Positions))
		for _, raw := range cmd.Positions {
			p, err := toast.ParsePosition(raw)
			if err != nil {
				h.logger.Warn("closeAll rejected", "client_id", clientID, "error", err)
				return
			}
			positions = append(positions, p)
		}
		if err := m.CloseAll(positions...); err != nil {
			h.logger.Warn("closeAll rejected", "client_id", clientID, "error", err)
		}

	case opExited:
		h.bridge.CompleteExit(cmd.ID)

	default:
		h.logger.Warn("unknown op", "client_id", clientID, "op", cmd.Op)
	}
}

// commandOptions converts the optional command fields shared by notify and
// update into manager options.
func commandOptions(cmd command) ([]toast.Option, error) {
	var opts []toast.Option

	if cmd.ID != "" && cmd.Op == opNotify {
		opts = append(opts, toast.WithID(cmd.ID))
	}
	if cmd.Position != "" {
		p, err := toast.ParsePosition(cmd.Position)
		if err != nil {
			return nil, err
		}
		opts = append(opts, toast.WithPosition(p))
	}
	if cmd.Status != "" {
		opts = append(opts, toast.WithStatus(toast.Status(cmd.Status)))
	}
	if cmd.DurationMS != nil {
		opts = append(opts, toast.WithDuration(time.Duration(*cmd.DurationMS)*time.Millisecond))
	}

	return opts, nil
}
