package repository

import (
	"context"
	"sync"
	"testing"

	"nhaf/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appendNotification(t *testing.T, repo NotificationRepository, title string) *models.Notification {
	t.Helper()
	n := &models.Notification{Category: models.NotificationSystem, Title: title}
	require.NoError(t, repo.Create(context.Background(), n))
	return n
}

func TestNotificationRepository_LatestNewestFirst(t *testing.T) {
	repo := NewNotificationRepository(newTestDB(t))
	for _, title := range []string{"one", "two", "three"} {
		appendNotification(t, repo, title)
	}

	items, err := repo.Latest(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "three", items[0].Title)
	assert.Equal(t, "two", items[1].Title)
}

func TestNotificationRepository_MarkReadIsIdempotent(t *testing.T) {
	repo := NewNotificationRepository(newTestDB(t))
	ctx := context.Background()
	n := appendNotification(t, repo, "hello")

	require.NoError(t, repo.MarkRead(ctx, n.ID))
	require.NoError(t, repo.MarkRead(ctx, n.ID))
	require.NoError(t, repo.MarkRead(ctx, 9999), "unknown ids are ignored")

	unread, err := repo.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, unread)

	_, total, err := repo.List(ctx, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestNotificationRepository_MarkAllReadKeepsCount(t *testing.T) {
	repo := NewNotificationRepository(newTestDB(t))
	ctx := context.Background()

	changed, err := repo.MarkAllRead(ctx)
	require.NoError(t, err)
	assert.Zero(t, changed, "empty log")

	for i := 0; i < 4; i++ {
		appendNotification(t, repo, "n")
	}
	changed, err = repo.MarkAllRead(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), changed)

	later := appendNotification(t, repo, "later")
	unread, err := repo.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)

	items, total, err := repo.List(ctx, 50, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Equal(t, later.ID, items[0].ID)
	assert.False(t, items[0].IsRead)
}

func TestNotificationRepository_MarkAllReadConcurrentAppend(t *testing.T) {
	repo := NewNotificationRepository(newTestDB(t))
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		appendNotification(t, repo, "before")
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, err := repo.MarkAllRead(ctx)
		assert.NoError(t, err)
	}()
	go func() {
		defer wg.Done()
		assert.NoError(t, repo.Create(ctx, &models.Notification{Category: models.NotificationContactMessage, Title: "New message from Sita"}))
	}()
	wg.Wait()

	unread, err := repo.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Contains(t, []int64{0, 1}, unread)

	_, total, err := repo.List(ctx, 50, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total, "the concurrent notification is never lost")
}
