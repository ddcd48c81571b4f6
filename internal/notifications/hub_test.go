package notifications

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(c *Client) []string {
	var out []string
	for {
		select {
		case m := <-c.Send:
			out = append(out, string(m))
		default:
			return out
		}
	}
}

func TestHub_BroadcastAllReachesEveryStaffClient(t *testing.T) {
	hub := NewHub()
	a, err := hub.Register(1, nil)
	require.NoError(t, err)
	b, err := hub.Register(2, nil)
	require.NoError(t, err)

	hub.BroadcastAll(`{"type":"notification_created"}`)

	assert.Equal(t, []string{`{"type":"notification_created"}`}, drain(a))
	assert.Equal(t, []string{`{"type":"notification_created"}`}, drain(b))
	assert.Equal(t, 2, hub.ConnectionCount())
}

func TestHub_PerUserConnectionLimit(t *testing.T) {
	hub := NewHub()
	for i := 0; i < maxConnsPerUser; i++ {
		_, err := hub.Register(7, nil)
		require.NoError(t, err)
	}
	_, err := hub.Register(7, nil)
	assert.ErrorIs(t, err, ErrUserFull)

	_, err = hub.Register(8, nil)
	assert.NoError(t, err, "limit is per user")
}

func TestHub_UnregisterIsIdempotent(t *testing.T) {
	hub := NewHub()
	c, err := hub.Register(3, nil)
	require.NoError(t, err)
	assert.True(t, hub.IsConnected(3))

	hub.Unregister(c)
	hub.Unregister(c)

	assert.False(t, hub.IsConnected(3))
	assert.Equal(t, 0, hub.ConnectionCount())
}

func TestHub_StaffActivityIsThrottled(t *testing.T) {
	hub := NewHub()
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	hub.now = func() time.Time { return now }

	var calls int32
	hub.OnStaffActivity(func(uint) { atomic.AddInt32(&calls, 1) }, time.Minute)

	c, err := hub.Register(5, nil)
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "connect counts as activity")

	c.activity()
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	now = now.Add(61 * time.Second)
	c.activity()
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestHub_TrySendDropsWhenBufferFull(t *testing.T) {
	hub := NewHub()
	c, err := hub.Register(9, nil)
	require.NoError(t, err)

	for i := 0; i < cap(c.Send)+5; i++ {
		c.TrySend([]byte("x"))
	}
	assert.Len(t, c.Send, cap(c.Send))
}

func TestHub_ShutdownClearsConnections(t *testing.T) {
	hub := NewHub()
	_, err := hub.Register(1, nil)
	require.NoError(t, err)

	require.NoError(t, hub.Shutdown(context.Background()))
	assert.Equal(t, 0, hub.ConnectionCount())
}

func TestClient_AnswersHeartbeat(t *testing.T) {
	hub := NewHub()
	c, err := hub.Register(4, nil)
	require.NoError(t, err)

	c.handleFrame([]byte(`{"type":"ping"}`))
	c.handleFrame([]byte(`{"type":"ack"}`))
	c.handleFrame([]byte(`not json`))

	assert.Equal(t, []string{`{"type":"pong"}`}, drain(c))
}
