package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"nhaf/internal/models"
	"nhaf/internal/notifications"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationFeed(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for i := 0; i < FeedSize+3; i++ {
		_, err := env.notifier.Append(ctx, models.NotificationSystem, fmt.Sprintf("event %d", i), strings.Repeat("x", 120), "")
		require.NoError(t, err)
	}

	feed, err := env.notifier.Feed(ctx)
	require.NoError(t, err)
	require.Len(t, feed.Items, FeedSize)
	assert.Equal(t, fmt.Sprintf("event %d", FeedSize+2), feed.Items[0].Title, "newest first")
	assert.Len(t, []rune(feed.Items[0].Message), 80)
	assert.Equal(t, int64(FeedSize+3), feed.UnreadCount)
	assert.Equal(t, FeedSize+3, env.publisher.count(notifications.EventNotificationCreated))
}

func TestNotificationAppendRejectsUnknownCategory(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.notifier.Append(context.Background(), "gossip", "t", "m", "")
	assertValidationError(t, err)
}

func TestNotificationReadState(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first, err := env.notifier.Append(ctx, models.NotificationSystem, "one", "", "")
	require.NoError(t, err)
	_, err = env.notifier.Append(ctx, models.NotificationSystem, "two", "", "")
	require.NoError(t, err)

	require.NoError(t, env.notifier.MarkRead(ctx, first.ID))
	require.NoError(t, env.notifier.MarkRead(ctx, first.ID), "idempotent")
	require.NoError(t, env.notifier.MarkRead(ctx, 9999), "missing ids are ignored")

	n, err := env.notifier.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	changed, err := env.notifier.MarkAllRead(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), changed)
	changed, err = env.notifier.MarkAllRead(ctx)
	require.NoError(t, err)
	assert.Zero(t, changed)

	// Arrivals after mark-all-read stay unread.
	_, err = env.notifier.Append(ctx, models.NotificationSystem, "three", "", "")
	require.NoError(t, err)
	n, err = env.notifier.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.GreaterOrEqual(t, env.publisher.count(notifications.EventNotificationsRead), 2)
}

func TestNilNotifierIsSilent(t *testing.T) {
	var s *NotificationService
	assert.NotPanics(t, func() {
		s.notify(context.Background(), models.NotificationSystem, "t", "m", "")
	})
}
