package notifications

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func TestNotifier_NilRedisIsNoop(t *testing.T) {
	n := NewNotifier(nil)
	assert.False(t, n.Enabled())
	assert.NoError(t, n.PublishAdmin(context.Background(), "payload"))
	assert.NoError(t, n.StartAdminSubscriber(context.Background(), func(string) {}))
}

func TestNotifier_AdminSubscriberStopsOnCancel(t *testing.T) {
	n := NewNotifier(newRedis(t))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	payloads := make(chan string, 4)
	require.NoError(t, n.StartAdminSubscriber(ctx, func(p string) { payloads <- p }))

	require.NoError(t, n.PublishAdmin(context.Background(), "before-cancel"))
	select {
	case p := <-payloads:
		assert.Equal(t, "before-cancel", p)
	case <-time.After(time.Second):
		t.Fatal("payload not delivered")
	}

	cancel()
	time.Sleep(20 * time.Millisecond)

	_ = n.PublishAdmin(context.Background(), "after-cancel")
	assert.Never(t, func() bool {
		select {
		case p := <-payloads:
			return p == "after-cancel"
		default:
			return false
		}
	}, 200*time.Millisecond, 10*time.Millisecond)
}

func TestFanout_LocalDeliveryWithoutRedis(t *testing.T) {
	hub := NewHub()
	c, err := hub.Register(1, nil)
	require.NoError(t, err)

	NewFanout(hub, NewNotifier(nil)).Publish(context.Background(), EventNotificationCreated, map[string]any{"id": 4})

	msgs := drain(c)
	require.Len(t, msgs, 1)
	var ev struct {
		Type    string         `json:"type"`
		Payload map[string]any `json:"payload"`
	}
	require.NoError(t, json.Unmarshal([]byte(msgs[0]), &ev))
	assert.Equal(t, EventNotificationCreated, ev.Type)
	assert.Equal(t, float64(4), ev.Payload["id"])
}

func TestFanout_RedisDeliversOnceThroughWiring(t *testing.T) {
	hub := NewHub()
	c, err := hub.Register(1, nil)
	require.NoError(t, err)

	n := NewNotifier(newRedis(t))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, hub.Relay(ctx, n))

	NewFanout(hub, n).Publish(context.Background(), EventChatMessage, map[string]any{"session_id": "s"})

	assert.Eventually(t, func() bool { return len(c.Send) == 1 }, time.Second, 10*time.Millisecond)
	assert.Never(t, func() bool { return len(c.Send) > 1 }, 100*time.Millisecond, 10*time.Millisecond)
}

func TestFanout_NilIsSafe(t *testing.T) {
	var f *Fanout
	f.Publish(context.Background(), EventPaymentUpdated, nil)
}
