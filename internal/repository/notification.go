package repository

import (
	"context"

	"nhaf/internal/models"

	"gorm.io/gorm"
)

// NotificationRepository persists the append-only admin notification log.
type NotificationRepository interface {
	Create(ctx context.Context, n *models.Notification) error
	Latest(ctx context.Context, limit int) ([]models.Notification, error)
	List(ctx context.Context, limit, offset int) ([]models.Notification, int64, error)
	UnreadCount(ctx context.Context) (int64, error)
	MarkRead(ctx context.Context, id uint) error
	MarkAllRead(ctx context.Context) (int64, error)
}

type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository returns a new NotificationRepository implementation.
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, n *models.Notification) error {
	if err := r.db.WithContext(ctx).Create(n).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func newestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC").Order("id DESC")
}

// Latest reads from the primary so a badge refresh right after an append
// sees the new row.
func (r *notificationRepository) Latest(ctx context.Context, limit int) ([]models.Notification, error) {
	var items []models.Notification
	if err := newestFirst(r.db.WithContext(ctx)).
		Limit(clampLimit(limit, 15, 100)).
		Find(&items).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return items, nil
}

func (r *notificationRepository) List(ctx context.Context, limit, offset int) ([]models.Notification, int64, error) {
	db := readDB(r.db).WithContext(ctx)

	var total int64
	if err := db.Model(&models.Notification{}).Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	var items []models.Notification
	if err := newestFirst(db).
		Limit(clampLimit(limit, 50, 200)).
		Offset(offset).
		Find(&items).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return items, total, nil
}

func (r *notificationRepository) UnreadCount(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Notification{}).Where("is_read = ?", false).Count(&n).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return n, nil
}

// MarkRead flags one notification. A missing id is not an error.
func (r *notificationRepository) MarkRead(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Model(&models.Notification{}).
		Where("id = ? AND is_read = ?", id, false).
		Update("is_read", true).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// MarkAllRead flags every notification that existed when the call started.
// Rows appended concurrently have a higher id and stay unread.
func (r *notificationRepository) MarkAllRead(ctx context.Context) (int64, error) {
	var maxID uint
	if err := r.db.WithContext(ctx).Model(&models.Notification{}).
		Select("COALESCE(MAX(id), 0)").
		Scan(&maxID).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	if maxID == 0 {
		return 0, nil
	}

	res := r.db.WithContext(ctx).Model(&models.Notification{}).
		Where("is_read = ? AND id <= ?", false, maxID).
		Update("is_read", true)
	if res.Error != nil {
		return 0, models.NewInternalError(res.Error)
	}
	return res.RowsAffected, nil
}
