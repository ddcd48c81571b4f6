package models

import (
	"strings"
	"time"
)

// ChatSender identifies who wrote a chat line.
type ChatSender string

const (
	// ChatSenderUser is an anonymous site visitor.
	ChatSenderUser ChatSender = "user"
	// ChatSenderAdmin is staff or the auto-responder.
	ChatSenderAdmin ChatSender = "admin"
)

// ChatMessage is one line of a support conversation keyed by an opaque session token.
type ChatMessage struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	SessionID   string     `gorm:"size:100;not null;index:idx_chat_session_created,priority:1" json:"session_id"`
	SenderType  ChatSender `gorm:"type:varchar(10);not null" json:"sender"`
	SenderName  string     `gorm:"size:200" json:"name"`
	SenderEmail string     `gorm:"size:254" json:"email"`
	Message     string     `gorm:"type:text;not null" json:"message"`
	IsRead      bool       `gorm:"not null;default:false" json:"is_read"`
	CreatedAt   time.Time  `gorm:"index:idx_chat_session_created,priority:2" json:"time"`
}

// QuickResponse is a canned reply the auto-responder can send.
type QuickResponse struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Message         string    `gorm:"type:text;not null" json:"message"`
	TriggerKeywords string    `gorm:"size:500" json:"trigger_keywords"`
	Order           int       `gorm:"column:sort_order;not null;default:0" json:"order"`
	IsActive        bool      `gorm:"not null" json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Keywords returns the trimmed, lower-cased, non-empty trigger keywords.
func (q *QuickResponse) Keywords() []string {
	var out []string
	for _, kw := range strings.Split(q.TriggerKeywords, ",") {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			out = append(out, kw)
		}
	}
	return out
}

// Matches reports whether any keyword is a case-insensitive substring of text.
// A response without keywords never matches; it is a fallback reply.
func (q *QuickResponse) Matches(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range q.Keywords() {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// ChatMode selects which chat widget the public site renders.
type ChatMode string

const (
	ChatModeBuiltin  ChatMode = "builtin"
	ChatModeWhatsApp ChatMode = "whatsapp"
	ChatModeCustom   ChatMode = "custom"
)

// DefaultAutoResponse is the reply used when no quick response applies.
const DefaultAutoResponse = "Thank you for contacting us. Our team will respond shortly."

// AdminOnlineWindow is how long after the last console visit an admin counts as online.
const AdminOnlineWindow = 5 * time.Minute

// ChatSettings is the singleton live-chat configuration row.
type ChatSettings struct {
	ID                     uint           `gorm:"primaryKey" json:"id"`
	IsEnabled              bool           `gorm:"not null" json:"is_enabled"`
	ChatMode               ChatMode       `gorm:"type:varchar(20);not null;default:'builtin'" json:"chat_mode"`
	WhatsappPhone          string         `gorm:"size:20" json:"whatsapp_phone"`
	CustomChatLink         string         `gorm:"size:500" json:"custom_chat_link"`
	AutoResponseEnabled    bool           `gorm:"not null;default:false" json:"auto_response_enabled"`
	DefaultQuickResponseID *uint          `json:"default_quick_response_id"`
	DefaultQuickResponse   *QuickResponse `gorm:"foreignKey:DefaultQuickResponseID;constraint:OnDelete:SET NULL" json:"default_quick_response,omitempty"`
	AutoResponseMessage    string         `gorm:"type:text;not null" json:"auto_response_message"`
	AdminLastSeen          *time.Time     `json:"admin_last_seen"`
	UpdatedAt              time.Time      `json:"updated_at"`
}

// AdminOnline reports whether an admin visited the chat console within the online window.
func (s *ChatSettings) AdminOnline(now time.Time) bool {
	if s.AdminLastSeen == nil {
		return false
	}
	return now.Sub(*s.AdminLastSeen) < AdminOnlineWindow
}

// WhatsAppLink builds the wa.me link for the whatsapp chat mode.
func (s *ChatSettings) WhatsAppLink() string {
	if s.WhatsappPhone == "" {
		return ""
	}
	return "https://wa.me/" + s.WhatsappPhone
}
