package notifications

import (
	"encoding/json"
	"log/slog"
	"time"

	"nhaf/internal/middleware"
	"nhaf/internal/observability"

	"github.com/gofiber/websocket/v2"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10

	// Dashboards only send heartbeats.
	maxFrameSize = 1024
	sendBuffer   = 256

	// hubLabel is the metrics label for the staff hub.
	hubLabel = "admin"
)

var (
	pongFrame    = []byte(`{"type":"pong"}`)
	droppedFrame = []byte(`{"type":"messages_dropped","payload":{"reason":"buffer_full"}}`)
)

// Client is one staff dashboard connection.
type Client struct {
	hub  *Hub
	conn *websocket.Conn

	// Send is drained by WritePump; the hub never blocks on it.
	Send   chan []byte
	UserID uint
}

func newClient(hub *Hub, conn *websocket.Conn, userID uint) *Client {
	return &Client{hub: hub, conn: conn, UserID: userID, Send: make(chan []byte, sendBuffer)}
}

// ReadPump consumes heartbeats until the connection fails, then unregisters.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxFrameSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		c.activity()
		return nil
	})

	for {
		_, frame, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				middleware.Logger.Warn("staff websocket read failed",
					slog.Uint64("user_id", uint64(c.UserID)),
					slog.String("error", err.Error()),
				)
			}
			return
		}
		c.activity()
		c.handleFrame(frame)
	}
}

// handleFrame answers application-level pings; browsers cannot send
// protocol pings themselves.
func (c *Client) handleFrame(frame []byte) {
	var msg struct {
		Type string `json:"type"`
	}
	if json.Unmarshal(frame, &msg) == nil && msg.Type == "ping" {
		c.TrySend(pongFrame)
	}
}

func (c *Client) activity() {
	c.hub.touch(c.UserID)
}

// WritePump writes queued events and keeps the connection alive with pings.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.Send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// TrySend queues msg without blocking. On a full buffer the message is
// dropped and the dashboard is told to refetch its feed.
func (c *Client) TrySend(msg []byte) {
	defer func() {
		if recover() != nil {
			observability.WebSocketBackpressureDrops.WithLabelValues(hubLabel, "closed").Inc()
		}
	}()

	select {
	case c.Send <- msg:
		return
	default:
	}

	observability.WebSocketBackpressureDrops.WithLabelValues(hubLabel, "full").Inc()
	middleware.Logger.Warn("staff websocket buffer full, dropped event", slog.Uint64("user_id", uint64(c.UserID)))
	select {
	case c.Send <- droppedFrame:
	default:
	}
}
