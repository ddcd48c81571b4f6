package models

import "time"

// NotificationCategory tags what kind of event produced a Notification.
type NotificationCategory string

const (
	NotificationMemberPending    NotificationCategory = "member_pending"
	NotificationVolunteerPending NotificationCategory = "volunteer_pending"
	NotificationMemberApproved   NotificationCategory = "member_approved"
	NotificationMemberRejected   NotificationCategory = "member_rejected"
	NotificationPaymentReceived  NotificationCategory = "payment_received"
	NotificationContactMessage   NotificationCategory = "contact_message"
	NotificationSystem           NotificationCategory = "system"
)

// Valid reports whether c belongs to the fixed category set.
func (c NotificationCategory) Valid() bool {
	switch c {
	case NotificationMemberPending, NotificationVolunteerPending, NotificationMemberApproved,
		NotificationMemberRejected, NotificationPaymentReceived, NotificationContactMessage,
		NotificationSystem:
		return true
	}
	return false
}

// Notification is an admin-facing event record. Rows are append-only; only
// IsRead ever changes.
type Notification struct {
	ID        uint                 `gorm:"primaryKey" json:"id"`
	Category  NotificationCategory `gorm:"type:varchar(30);not null;index" json:"type"`
	Title     string               `gorm:"size:200;not null" json:"title"`
	Message   string               `gorm:"type:text" json:"message"`
	Link      string               `gorm:"size:500" json:"link"`
	IsRead    bool                 `gorm:"not null;default:false;index" json:"is_read"`
	CreatedAt time.Time            `gorm:"index" json:"created"`
}

// ContactMessage is a submission of the public contact form.
type ContactMessage struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:200;not null" json:"name"`
	Email       string    `gorm:"size:254;not null" json:"email"`
	Subject     string    `gorm:"size:200" json:"subject"`
	Message     string    `gorm:"type:text;not null" json:"message"`
	SubmittedAt time.Time `gorm:"autoCreateTime;index" json:"submitted_at"`
}
