package repository

import (
	"context"
	"errors"
	"time"

	"nhaf/internal/models"

	"gorm.io/gorm"
)

// ChatSession summarizes one visitor conversation for the admin console.
type ChatSession struct {
	SessionID   string    `json:"session_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	LastMessage string    `json:"last_message"`
	LastTime    time.Time `json:"last_time"`
	Unread      int       `json:"unread"`
}

// ChatRepository persists chat transcripts and canned replies.
type ChatRepository interface {
	Append(ctx context.Context, msg *models.ChatMessage) error
	SessionMessages(ctx context.Context, sessionID string) ([]models.ChatMessage, error)
	Sessions(ctx context.Context, limit int) ([]ChatSession, error)
	VisitorMessageCount(ctx context.Context, sessionID string) (int64, error)
	MarkSessionRead(ctx context.Context, sessionID string) (int64, error)
	UnreadCount(ctx context.Context) (int64, error)

	ListQuickResponses(ctx context.Context, activeOnly bool) ([]models.QuickResponse, error)
	GetQuickResponse(ctx context.Context, id uint) (*models.QuickResponse, error)
	SaveQuickResponse(ctx context.Context, q *models.QuickResponse) error
	DeleteQuickResponse(ctx context.Context, id uint) error
	ReorderQuickResponses(ctx context.Context, ids []uint) error
}

type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository returns a new ChatRepository implementation.
func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

func transcriptOrder(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC").Order("id ASC")
}

func (r *chatRepository) Append(ctx context.Context, msg *models.ChatMessage) error {
	if err := r.db.WithContext(ctx).Create(msg).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// SessionMessages returns the transcript oldest first. Visitors poll right
// after sending, so this reads from the primary.
func (r *chatRepository) SessionMessages(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	var msgs []models.ChatMessage
	if err := transcriptOrder(r.db.WithContext(ctx)).
		Where("session_id = ?", sessionID).
		Find(&msgs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return msgs, nil
}

// sessionSummary is one GROUP BY session_id row. Message ids stand in for
// timestamps so the aggregate scans the same way on every driver.
type sessionSummary struct {
	SessionID   string
	FirstUserID *uint
	LastID      uint
	Unread      int
}

// Sessions summarizes the limit most recently active sessions, newest
// first. Name and email come from the visitor's first message.
func (r *chatRepository) Sessions(ctx context.Context, limit int) ([]ChatSession, error) {
	db := readDB(r.db).WithContext(ctx)
	var rows []sessionSummary
	if err := db.Model(&models.ChatMessage{}).
		Select("session_id, "+
			"MIN(CASE WHEN sender_type = ? THEN id END) AS first_user_id, "+
			"MAX(id) AS last_id, "+
			"SUM(CASE WHEN sender_type = ? AND is_read = ? THEN 1 ELSE 0 END) AS unread",
			models.ChatSenderUser, models.ChatSenderUser, false).
		Group("session_id").
		Order("MAX(created_at) DESC").Order("MAX(id) DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	if len(rows) == 0 {
		return []ChatSession{}, nil
	}

	ids := make([]uint, 0, 2*len(rows))
	for _, row := range rows {
		ids = append(ids, row.LastID)
		if row.FirstUserID != nil {
			ids = append(ids, *row.FirstUserID)
		}
	}
	var msgs []models.ChatMessage
	if err := db.Where("id IN ?", ids).Find(&msgs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	byID := make(map[uint]*models.ChatMessage, len(msgs))
	for i := range msgs {
		byID[msgs[i].ID] = &msgs[i]
	}

	out := make([]ChatSession, 0, len(rows))
	for _, row := range rows {
		s := ChatSession{SessionID: row.SessionID, Unread: row.Unread, Name: "Anonymous"}
		if last := byID[row.LastID]; last != nil {
			s.LastMessage = truncateRunes(last.Message, 50)
			s.LastTime = last.CreatedAt
		}
		if row.FirstUserID != nil {
			if first := byID[*row.FirstUserID]; first != nil {
				s.Email = first.SenderEmail
				if first.SenderName != "" {
					s.Name = first.SenderName
				}
			}
		}
		out = append(out, s)
	}
	return out, nil
}

// VisitorMessageCount counts the visitor's own messages in a session.
func (r *chatRepository) VisitorMessageCount(ctx context.Context, sessionID string) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.ChatMessage{}).
		Where("session_id = ? AND sender_type = ?", sessionID, models.ChatSenderUser).
		Count(&n).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return n, nil
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// MarkSessionRead flags the visitor's messages in the session as read.
func (r *chatRepository) MarkSessionRead(ctx context.Context, sessionID string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.ChatMessage{}).
		Where("session_id = ? AND sender_type = ? AND is_read = ?", sessionID, models.ChatSenderUser, false).
		Update("is_read", true)
	if res.Error != nil {
		return 0, models.NewInternalError(res.Error)
	}
	return res.RowsAffected, nil
}

func (r *chatRepository) UnreadCount(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.ChatMessage{}).
		Where("sender_type = ? AND is_read = ?", models.ChatSenderUser, false).
		Count(&n).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return n, nil
}

// ListQuickResponses returns canned replies by (order, id).
func (r *chatRepository) ListQuickResponses(ctx context.Context, activeOnly bool) ([]models.QuickResponse, error) {
	q := r.db.WithContext(ctx).Order("sort_order ASC").Order("id ASC")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var items []models.QuickResponse
	if err := q.Find(&items).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return items, nil
}

func (r *chatRepository) GetQuickResponse(ctx context.Context, id uint) (*models.QuickResponse, error) {
	var q models.QuickResponse
	if err := r.db.WithContext(ctx).First(&q, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Quick response", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &q, nil
}

func (r *chatRepository) SaveQuickResponse(ctx context.Context, q *models.QuickResponse) error {
	if err := r.db.WithContext(ctx).Save(q).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// DeleteQuickResponse also clears it as the chat settings default.
func (r *chatRepository) DeleteQuickResponse(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.ChatSettings{}).
			Where("default_quick_response_id = ?", id).
			Update("default_quick_response_id", nil).Error; err != nil {
			return models.NewInternalError(err)
		}
		res := tx.Delete(&models.QuickResponse{}, id)
		if res.Error != nil {
			return models.NewInternalError(res.Error)
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("Quick response", id)
		}
		return nil
	})
}

// ReorderQuickResponses assigns order 0..n-1 following ids.
func (r *chatRepository) ReorderQuickResponses(ctx context.Context, ids []uint) error {
	return reorder[models.QuickResponse](ctx, r.db, ids)
}
