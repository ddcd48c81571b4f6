package service

import (
	"context"
	"log/slog"

	"nhaf/internal/middleware"
	"nhaf/internal/models"
	"nhaf/internal/notifications"
	"nhaf/internal/observability"
	"nhaf/internal/repository"
)

const (
	// FeedSize is how many notifications the admin bell shows.
	FeedSize = 15
	// feedMessageRunes is where feed messages are cut.
	feedMessageRunes = 80
)

// Admin console links used by notifications.
const (
	LinkMembers   = "/admin/members"
	LinkDonations = "/admin/donations"
	LinkContact   = "/admin/contact"
	LinkChat      = "/admin/chat"
)

// NotificationService owns the admin notification log.
type NotificationService struct {
	repo      repository.NotificationRepository
	publisher notifications.Publisher
}

// NewNotificationService returns a NotificationService. publisher may be nil.
func NewNotificationService(repo repository.NotificationRepository, publisher notifications.Publisher) *NotificationService {
	return &NotificationService{repo: repo, publisher: publisher}
}

// FeedItem is one entry of the notification bell.
type FeedItem struct {
	ID        uint                        `json:"id"`
	Category  models.NotificationCategory `json:"type"`
	Title     string                      `json:"title"`
	Message   string                      `json:"message"`
	Link      string                      `json:"link"`
	IsRead    bool                        `json:"is_read"`
	CreatedAt string                      `json:"created"`
}

// Feed is the bell payload.
type Feed struct {
	Items       []FeedItem `json:"notifications"`
	UnreadCount int64      `json:"unread_count"`
}

// Append records a notification and pushes it to connected staff dashboards.
func (s *NotificationService) Append(ctx context.Context, category models.NotificationCategory, title, message, link string) (*models.Notification, error) {
	if !category.Valid() {
		return nil, models.NewValidationError("unknown notification category")
	}
	n := &models.Notification{
		Category: category,
		Title:    truncateRunes(title, 200),
		Message:  message,
		Link:     link,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	observability.NotificationsCreated.WithLabelValues(string(category)).Inc()

	if s.publisher != nil {
		s.publisher.Publish(ctx, notifications.EventNotificationCreated, toFeedItem(n))
	}
	return n, nil
}

// notify is Append for write paths whose outcome must not depend on the
// notification: failures are logged and dropped.
func (s *NotificationService) notify(ctx context.Context, category models.NotificationCategory, title, message, link string) {
	if s == nil {
		return
	}
	if _, err := s.Append(ctx, category, title, message, link); err != nil {
		middleware.Logger.WarnContext(ctx, "failed to append notification",
			slog.String("category", string(category)),
			slog.String("title", title),
			slog.String("error", err.Error()),
		)
	}
}

// Feed returns the latest notifications and the unread badge count.
func (s *NotificationService) Feed(ctx context.Context) (*Feed, error) {
	latest, err := s.repo.Latest(ctx, FeedSize)
	if err != nil {
		return nil, err
	}
	unread, err := s.repo.UnreadCount(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]FeedItem, 0, len(latest))
	for i := range latest {
		item := toFeedItem(&latest[i])
		item.Message = truncateRunes(item.Message, feedMessageRunes)
		items = append(items, item)
	}
	return &Feed{Items: items, UnreadCount: unread}, nil
}

// List pages through the full log, newest first.
func (s *NotificationService) List(ctx context.Context, limit, offset int) ([]models.Notification, int64, error) {
	return s.repo.List(ctx, limit, offset)
}

// UnreadCount returns the badge count.
func (s *NotificationService) UnreadCount(ctx context.Context) (int64, error) {
	return s.repo.UnreadCount(ctx)
}

// MarkRead flags one notification read. Unknown ids are not an error.
func (s *NotificationService) MarkRead(ctx context.Context, id uint) error {
	if err := s.repo.MarkRead(ctx, id); err != nil {
		return err
	}
	s.publishRead(ctx, []uint{id})
	return nil
}

// MarkAllRead flags every notification that existed when the call started.
// Notifications appended concurrently keep their unread flag.
func (s *NotificationService) MarkAllRead(ctx context.Context) (int64, error) {
	n, err := s.repo.MarkAllRead(ctx)
	if err != nil {
		return 0, err
	}
	s.publishRead(ctx, nil)
	return n, nil
}

func (s *NotificationService) publishRead(ctx context.Context, ids []uint) {
	if s.publisher == nil {
		return
	}
	unread, err := s.repo.UnreadCount(ctx)
	if err != nil {
		return
	}
	s.publisher.Publish(ctx, notifications.EventNotificationsRead, map[string]any{
		"ids":          ids,
		"unread_count": unread,
	})
}

func toFeedItem(n *models.Notification) FeedItem {
	return FeedItem{
		ID:        n.ID,
		Category:  n.Category,
		Title:     n.Title,
		Message:   n.Message,
		Link:      n.Link,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt.Format("Jan 02, 15:04"),
	}
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
