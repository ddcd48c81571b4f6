// Package notifications delivers realtime staff events over Redis pub/sub and
// websockets.
package notifications

import (
	"context"
	"log/slog"
	"runtime/debug"

	"nhaf/internal/middleware"

	"github.com/redis/go-redis/v9"
)

// AdminChannel carries every staff-facing realtime event.
const AdminChannel = "notifications:admin"

// Notifier provides helpers to publish events into Redis channels.
type Notifier struct {
	rdb *redis.Client
}

// NewNotifier creates a new Notifier instance using the provided Redis client.
func NewNotifier(rdb *redis.Client) *Notifier {
	return &Notifier{rdb: rdb}
}

// Enabled reports whether events travel through Redis.
func (n *Notifier) Enabled() bool {
	return n != nil && n.rdb != nil
}

// PublishAdmin sends a payload to every subscribed API instance.
func (n *Notifier) PublishAdmin(ctx context.Context, payload string) error {
	if !n.Enabled() {
		return nil
	}
	return n.rdb.Publish(ctx, AdminChannel, payload).Err()
}

// StartAdminSubscriber subscribes to AdminChannel and calls onMessage for
// each payload until ctx is canceled.
func (n *Notifier) StartAdminSubscriber(ctx context.Context, onMessage func(payload string)) error {
	if !n.Enabled() {
		return nil
	}
	sub := n.rdb.Subscribe(ctx, AdminChannel)
	// Wait for the subscription so publishes right after return are not lost.
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return err
	}
	ch := sub.Channel()

	go func() {
		defer func() { _ = sub.Close() }()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				func() {
					defer func() {
						if r := recover(); r != nil {
							middleware.Logger.Error("panic in admin subscriber",
								slog.Any("panic", r),
								slog.String("stack", string(debug.Stack())),
							)
						}
					}()
					onMessage(msg.Payload)
				}()
			}
		}
	}()

	return nil
}
