package notifications

import (
	"context"
	"encoding/json"
	"log/slog"

	"nhaf/internal/middleware"
)

// Event types pushed to staff dashboards.
const (
	EventNotificationCreated = "notification_created"
	EventNotificationsRead   = "notifications_read"
	EventChatMessage         = "chat_message"
	EventPaymentUpdated      = "payment_updated"
	EventApplicationUpdated  = "application_updated"
)

// Event is the envelope written to staff websockets.
type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// Publisher is the realtime sink used by services after a write commits.
type Publisher interface {
	Publish(ctx context.Context, eventType string, payload any)
}

// Fanout publishes through Redis when available so every API instance's hub
// receives the event; without Redis it delivers to the local hub only.
type Fanout struct {
	hub      *Hub
	notifier *Notifier
}

// NewFanout wires a hub and notifier. Either may be nil.
func NewFanout(hub *Hub, notifier *Notifier) *Fanout {
	return &Fanout{hub: hub, notifier: notifier}
}

// Publish never returns an error; realtime delivery is best effort.
func (f *Fanout) Publish(ctx context.Context, eventType string, payload any) {
	if f == nil {
		return
	}
	data, err := json.Marshal(Event{Type: eventType, Payload: payload})
	if err != nil {
		middleware.Logger.ErrorContext(ctx, "failed to marshal realtime event",
			slog.String("event", eventType), slog.String("error", err.Error()))
		return
	}

	if f.notifier.Enabled() {
		err := f.notifier.PublishAdmin(ctx, string(data))
		if err == nil {
			return
		}
		middleware.Logger.WarnContext(ctx, "redis publish failed, delivering locally",
			slog.String("event", eventType), slog.String("error", err.Error()))
	}
	if f.hub != nil {
		f.hub.BroadcastAll(string(data))
	}
}
