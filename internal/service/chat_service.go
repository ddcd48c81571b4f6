// Package service holds the business logic behind the HTTP handlers: the
// member directory, application review, payments and live chat.
package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"nhaf/internal/featureflags"
	"nhaf/internal/middleware"
	"nhaf/internal/models"
	"nhaf/internal/notifications"
	"nhaf/internal/observability"
	"nhaf/internal/repository"
	"nhaf/internal/validation"

	"github.com/google/uuid"
)

const (
	anonymousSender = "Anonymous"
	systemSender    = "System"
	maxChatMessage  = 2000
	// consoleSessions caps the session list of the staff console.
	consoleSessions = 200
)

// ChatService runs the visitor chat widget and the staff chat console.
type ChatService struct {
	repo      repository.ChatRepository
	settings  repository.SettingsRepository
	flags     *featureflags.Manager
	notifier  *NotificationService
	publisher notifications.Publisher
	now       func() time.Time
}

// NewChatService returns a ChatService. flags, notifier and publisher may be nil.
func NewChatService(
	repo repository.ChatRepository,
	settings repository.SettingsRepository,
	flags *featureflags.Manager,
	notifier *NotificationService,
	publisher notifications.Publisher,
) *ChatService {
	return &ChatService{
		repo:      repo,
		settings:  settings,
		flags:     flags,
		notifier:  notifier,
		publisher: publisher,
		now:       time.Now,
	}
}

// ChatStatus is what the public widget needs to render itself.
type ChatStatus struct {
	Enabled        bool            `json:"enabled"`
	Mode           models.ChatMode `json:"mode"`
	WhatsAppLink   string          `json:"whatsapp_link,omitempty"`
	CustomChatLink string          `json:"custom_chat_link,omitempty"`
	AdminOnline    bool            `json:"admin_online"`
}

// Status reports whether chat is open and if staff are around.
func (s *ChatService) Status(ctx context.Context) (*ChatStatus, error) {
	cfg, err := s.settings.ChatSettings(ctx)
	if err != nil {
		return nil, err
	}
	return &ChatStatus{
		Enabled:        s.enabled(cfg),
		Mode:           cfg.ChatMode,
		WhatsAppLink:   cfg.WhatsAppLink(),
		CustomChatLink: cfg.CustomChatLink,
		AdminOnline:    cfg.AdminOnline(s.now()),
	}, nil
}

func (s *ChatService) enabled(cfg *models.ChatSettings) bool {
	if s.flags != nil && !s.flags.Enabled(featureflags.LiveChat) {
		return false
	}
	return cfg.IsEnabled
}

// SendInput is one visitor message. An empty SessionID starts a new session.
type SendInput struct {
	SessionID string `json:"session_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
}

// SendResult echoes the session token and what was stored.
type SendResult struct {
	SessionID string              `json:"session_id"`
	Message   *models.ChatMessage `json:"message"`
	Reply     *models.ChatMessage `json:"reply,omitempty"`
}

// Send stores a visitor message and, when enabled, exactly one automatic reply.
func (s *ChatService) Send(ctx context.Context, in SendInput) (*SendResult, error) {
	cfg, err := s.settings.ChatSettings(ctx)
	if err != nil {
		return nil, err
	}
	if !s.enabled(cfg) {
		return nil, models.NewUnavailableError("Chat is currently disabled", nil)
	}
	in.Message = strings.TrimSpace(in.Message)
	if in.Message == "" {
		return nil, models.NewValidationError("Message is required")
	}
	if err := validation.MaxLength("message", in.Message, maxChatMessage); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	in.Email = strings.TrimSpace(in.Email)
	if err := validation.ValidateOptionalEmail(in.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if in.SessionID == "" {
		in.SessionID = uuid.NewString()
	}
	if in.Name = strings.TrimSpace(in.Name); in.Name == "" {
		in.Name = anonymousSender
	}

	msg := &models.ChatMessage{
		SessionID:   in.SessionID,
		SenderType:  models.ChatSenderUser,
		SenderName:  in.Name,
		SenderEmail: in.Email,
		Message:     in.Message,
	}
	if err := s.repo.Append(ctx, msg); err != nil {
		return nil, err
	}
	observability.ChatMessages.WithLabelValues(string(models.ChatSenderUser)).Inc()
	s.announce(ctx, msg)
	s.notifyFirstMessage(ctx, msg)

	out := &SendResult{SessionID: in.SessionID, Message: msg}
	if !cfg.AutoResponseEnabled {
		return out, nil
	}
	text, err := s.autoReply(ctx, cfg, in.Message)
	if err != nil {
		// The visitor's message is stored; a missing reply is not fatal.
		middleware.Logger.WarnContext(ctx, "auto response failed",
			slog.String("session_id", in.SessionID),
			slog.String("error", err.Error()),
		)
		return out, nil
	}
	reply := &models.ChatMessage{
		SessionID:  in.SessionID,
		SenderType: models.ChatSenderAdmin,
		SenderName: systemSender,
		Message:    text,
	}
	if err := s.repo.Append(ctx, reply); err != nil {
		middleware.Logger.WarnContext(ctx, "auto response not stored",
			slog.String("session_id", in.SessionID),
			slog.String("error", err.Error()),
		)
		return out, nil
	}
	observability.ChatMessages.WithLabelValues("system").Inc()
	out.Reply = reply
	return out, nil
}

// notifyFirstMessage tells staff about a new conversation. Later lines of
// the same session only show up in the console badge.
func (s *ChatService) notifyFirstMessage(ctx context.Context, msg *models.ChatMessage) {
	if s.notifier == nil {
		return
	}
	n, err := s.repo.VisitorMessageCount(ctx, msg.SessionID)
	if err != nil {
		middleware.Logger.WarnContext(ctx, "chat notification skipped",
			slog.String("session_id", msg.SessionID),
			slog.String("error", err.Error()),
		)
		return
	}
	if n != 1 {
		return
	}
	s.notifier.notify(ctx, models.NotificationContactMessage,
		"New chat message from "+msg.SenderName,
		truncateRunes(msg.Message, 100),
		LinkChat,
	)
}

// autoReply picks the reply text: the first active keyword match, then the
// configured default, then the first active keyword-less response, then the
// settings message.
func (s *ChatService) autoReply(ctx context.Context, cfg *models.ChatSettings, text string) (string, error) {
	active, err := s.repo.ListQuickResponses(ctx, true)
	if err != nil {
		return "", err
	}
	for i := range active {
		if active[i].Matches(text) {
			return active[i].Message, nil
		}
	}
	if cfg.DefaultQuickResponseID != nil {
		for i := range active {
			if active[i].ID == *cfg.DefaultQuickResponseID {
				return active[i].Message, nil
			}
		}
	}
	for i := range active {
		if len(active[i].Keywords()) == 0 {
			return active[i].Message, nil
		}
	}
	if msg := strings.TrimSpace(cfg.AutoResponseMessage); msg != "" {
		return msg, nil
	}
	return models.DefaultAutoResponse, nil
}

// Poll returns the session transcript oldest first.
func (s *ChatService) Poll(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	if sessionID == "" {
		return []models.ChatMessage{}, nil
	}
	return s.repo.SessionMessages(ctx, sessionID)
}

// Sessions lists visitor sessions for the console, most recent first.
func (s *ChatService) Sessions(ctx context.Context) ([]repository.ChatSession, error) {
	if err := s.touch(ctx); err != nil {
		return nil, err
	}
	return s.repo.Sessions(ctx, consoleSessions)
}

// ViewSession opens a session in the console: the visitor's messages become
// read and the staff presence timestamp moves forward.
func (s *ChatService) ViewSession(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	if sessionID == "" {
		return nil, models.NewValidationError("session_id is required")
	}
	if _, err := s.repo.MarkSessionRead(ctx, sessionID); err != nil {
		return nil, err
	}
	if err := s.touch(ctx); err != nil {
		return nil, err
	}
	return s.repo.SessionMessages(ctx, sessionID)
}

// Reply stores a staff answer signed with the staff username.
func (s *ChatService) Reply(ctx context.Context, sessionID, staffName, text string) (*models.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if sessionID == "" || text == "" {
		return nil, models.NewValidationError("session_id and message are required")
	}
	if err := validation.MaxLength("message", text, maxChatMessage); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	msg := &models.ChatMessage{
		SessionID:  sessionID,
		SenderType: models.ChatSenderAdmin,
		SenderName: staffName,
		Message:    text,
		IsRead:     true,
	}
	if err := s.repo.Append(ctx, msg); err != nil {
		return nil, err
	}
	observability.ChatMessages.WithLabelValues(string(models.ChatSenderAdmin)).Inc()
	if err := s.touch(ctx); err != nil {
		middleware.Logger.WarnContext(ctx, "admin last seen not updated", slog.String("error", err.Error()))
	}
	s.announce(ctx, msg)
	return msg, nil
}

// UnreadCount is the console badge count.
func (s *ChatService) UnreadCount(ctx context.Context) (int64, error) {
	return s.repo.UnreadCount(ctx)
}

func (s *ChatService) touch(ctx context.Context) error {
	return s.settings.TouchAdminLastSeen(ctx, s.now())
}

func (s *ChatService) announce(ctx context.Context, msg *models.ChatMessage) {
	if s.publisher == nil {
		return
	}
	s.publisher.Publish(ctx, notifications.EventChatMessage, map[string]any{
		"session_id": msg.SessionID,
		"sender":     msg.SenderType,
		"name":       msg.SenderName,
		"message":    truncateRunes(msg.Message, 50),
	})
}

// Settings returns the chat configuration.
func (s *ChatService) Settings(ctx context.Context) (*models.ChatSettings, error) {
	return s.settings.ChatSettings(ctx)
}

// UpdateSettings replaces the chat configuration. The presence timestamp is
// owned by the console and kept as stored.
func (s *ChatService) UpdateSettings(ctx context.Context, in models.ChatSettings) (*models.ChatSettings, error) {
	switch in.ChatMode {
	case "":
		in.ChatMode = models.ChatModeBuiltin
	case models.ChatModeBuiltin, models.ChatModeCustom:
	case models.ChatModeWhatsApp:
		if strings.TrimSpace(in.WhatsappPhone) == "" {
			return nil, models.NewValidationError("whatsapp_phone is required for whatsapp mode")
		}
	default:
		return nil, models.NewValidationError("chat_mode must be builtin, whatsapp or custom")
	}
	if in.ChatMode == models.ChatModeCustom && strings.TrimSpace(in.CustomChatLink) == "" {
		return nil, models.NewValidationError("custom_chat_link is required for custom mode")
	}
	if in.DefaultQuickResponseID != nil {
		if _, err := s.repo.GetQuickResponse(ctx, *in.DefaultQuickResponseID); err != nil {
			return nil, err
		}
	}
	if strings.TrimSpace(in.AutoResponseMessage) == "" {
		in.AutoResponseMessage = models.DefaultAutoResponse
	}

	current, err := s.settings.ChatSettings(ctx)
	if err != nil {
		return nil, err
	}
	in.AdminLastSeen = current.AdminLastSeen
	in.DefaultQuickResponse = nil
	if err := s.settings.Save(ctx, &in); err != nil {
		return nil, err
	}
	return &in, nil
}

// ListQuickResponses returns all canned replies in display order.
func (s *ChatService) ListQuickResponses(ctx context.Context) ([]models.QuickResponse, error) {
	return s.repo.ListQuickResponses(ctx, false)
}

// SaveQuickResponse creates or updates a canned reply.
func (s *ChatService) SaveQuickResponse(ctx context.Context, q *models.QuickResponse) error {
	q.Message = strings.TrimSpace(q.Message)
	if q.Message == "" {
		return models.NewValidationError("Message is required")
	}
	if err := validation.MaxLength("trigger_keywords", q.TriggerKeywords, 500); err != nil {
		return models.NewValidationError(err.Error())
	}
	if q.ID != 0 {
		if _, err := s.repo.GetQuickResponse(ctx, q.ID); err != nil {
			return err
		}
	}
	return s.repo.SaveQuickResponse(ctx, q)
}

// DeleteQuickResponse removes a canned reply.
func (s *ChatService) DeleteQuickResponse(ctx context.Context, id uint) error {
	return s.repo.DeleteQuickResponse(ctx, id)
}

// ReorderQuickResponses sets the display order to ids.
func (s *ChatService) ReorderQuickResponses(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return models.NewValidationError("ids are required")
	}
	return s.repo.ReorderQuickResponses(ctx, ids)
}
