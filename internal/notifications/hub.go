package notifications

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"nhaf/internal/middleware"
	"nhaf/internal/observability"

	"github.com/gofiber/websocket/v2"
)

const (
	// A staff member rarely keeps more than a few dashboard tabs open.
	maxConnsPerUser = 12
	maxTotalConns   = 1000
	// presenceInterval spaces out admin_last_seen writes for one user.
	presenceInterval = time.Minute
)

// Register failures.
var (
	ErrHubFull  = errors.New("server connection limit reached")
	ErrUserFull = errors.New("user connection limit reached")
)

// presence throttles the staff activity callback to one call per interval
// per user.
type presence struct {
	mu       sync.Mutex
	fn       func(userID uint)
	interval time.Duration
	last     map[uint]time.Time
}

func (p *presence) seen(userID uint, now time.Time) {
	p.mu.Lock()
	fn := p.fn
	prev, ok := p.last[userID]
	due := fn != nil && (!ok || now.Sub(prev) >= p.interval)
	if due {
		p.last[userID] = now
	}
	p.mu.Unlock()

	if due {
		fn(userID)
	}
}

// Hub tracks the dashboard connections of signed-in staff and fans admin
// events out to them.
type Hub struct {
	mu      sync.RWMutex
	clients map[uint]map[*Client]struct{}
	total   int

	presence presence
	now      func() time.Time
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		clients:  make(map[uint]map[*Client]struct{}),
		presence: presence{interval: presenceInterval, last: make(map[uint]time.Time)},
		now:      time.Now,
	}
}

// OnStaffActivity registers fn to run when a staff client connects or sends
// a frame, at most once per interval per user.
func (h *Hub) OnStaffActivity(fn func(userID uint), interval time.Duration) {
	h.presence.mu.Lock()
	defer h.presence.mu.Unlock()
	h.presence.fn = fn
	if interval > 0 {
		h.presence.interval = interval
	}
}

func (h *Hub) touch(userID uint) {
	h.presence.seen(userID, h.now())
}

// Register adds a connection for userID. It fails with ErrHubFull or
// ErrUserFull once a limit is reached.
func (h *Hub) Register(userID uint, conn *websocket.Conn) (*Client, error) {
	h.mu.Lock()
	switch {
	case h.total >= maxTotalConns:
		h.mu.Unlock()
		return nil, ErrHubFull
	case len(h.clients[userID]) >= maxConnsPerUser:
		h.mu.Unlock()
		return nil, ErrUserFull
	}
	if h.clients[userID] == nil {
		h.clients[userID] = make(map[*Client]struct{})
	}
	client := newClient(h, conn, userID)
	h.clients[userID][client] = struct{}{}
	h.total++
	h.mu.Unlock()

	observability.WebSocketConnectionsTotal.Inc()
	h.touch(userID)
	return client, nil
}

// Unregister removes client. Repeated calls are no-ops.
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set := h.clients[client.UserID]
	if _, ok := set[client]; !ok {
		return
	}
	delete(set, client)
	h.total--
	observability.WebSocketConnectionsTotal.Dec()
	if len(set) == 0 {
		delete(h.clients, client.UserID)
	}
}

func (h *Hub) snapshot() []*Client {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]*Client, 0, h.total)
	for _, set := range h.clients {
		for c := range set {
			out = append(out, c)
		}
	}
	return out
}

// BroadcastAll queues message on every connected staff client.
func (h *Hub) BroadcastAll(message string) {
	data := []byte(message)
	for _, c := range h.snapshot() {
		c.TrySend(data)
	}
}

// ConnectionCount returns the number of open staff connections.
func (h *Hub) ConnectionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.total
}

// IsConnected reports whether userID has at least one open connection.
func (h *Hub) IsConnected(userID uint) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID]) > 0
}

// Relay forwards AdminChannel messages published by any API instance to
// the clients of this one until ctx is done.
func (h *Hub) Relay(ctx context.Context, n *Notifier) error {
	return n.StartAdminSubscriber(ctx, h.BroadcastAll)
}

// Shutdown sends a going-away close frame to every client and forgets them.
func (h *Hub) Shutdown(_ context.Context) error {
	h.mu.Lock()
	clients := make([]*Client, 0, h.total)
	for _, set := range h.clients {
		for c := range set {
			clients = append(clients, c)
		}
	}
	h.clients = make(map[uint]map[*Client]struct{})
	h.total = 0
	h.mu.Unlock()
	observability.WebSocketConnectionsTotal.Sub(float64(len(clients)))

	bye := websocket.FormatCloseMessage(websocket.CloseGoingAway, "Server shutting down")
	for _, c := range clients {
		if c.conn == nil {
			continue
		}
		if err := c.conn.WriteMessage(websocket.CloseMessage, bye); err != nil {
			middleware.Logger.Debug("close frame not delivered",
				slog.Uint64("user_id", uint64(c.UserID)), slog.String("error", err.Error()))
		}
		_ = c.conn.Close()
	}
	return nil
}
