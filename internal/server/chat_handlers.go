package server

import (
	"time"

	"nhaf/internal/models"
	"nhaf/internal/service"

	"github.com/gofiber/fiber/v2"
)

const chatCookieTTL = 30 * 24 * time.Hour

// chatSessionID prefers the explicit value, then the visitor cookie.
func chatSessionID(c *fiber.Ctx, explicit string) string {
	if explicit != "" {
		return explicit
	}
	return c.Cookies(chatCookieName)
}

// GetChatStatus handles GET /api/chat/status
// @Summary Chat widget status
// @Description Whether chat is open, its mode and whether staff were active recently
// @Tags chat
// @Produce json
// @Success 200 {object} service.ChatStatus
// @Router /chat/status [get]
func (s *Server) GetChatStatus(c *fiber.Ctx) error {
	status, err := s.chatService.Status(c.UserContext())
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(status)
}

// SendChatMessage handles POST /api/chat/messages
// @Summary Send a visitor chat message
// @Description Starts a session when none is given and may append one automatic reply
// @Tags chat
// @Accept json
// @Produce json
// @Param request body service.SendInput true "Message"
// @Success 201 {object} service.SendResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /chat/messages [post]
func (s *Server) SendChatMessage(c *fiber.Ctx) error {
	var in service.SendInput
	if err := parseBody(c, &in); err != nil {
		return nil
	}
	in.SessionID = chatSessionID(c, in.SessionID)

	out, err := s.chatService.Send(c.UserContext(), in)
	if err != nil {
		return s.respondError(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     chatCookieName,
		Value:    out.SessionID,
		Path:     "/api/chat",
		Expires:  time.Now().Add(chatCookieTTL),
		HTTPOnly: true,
		Secure:   s.config.IsProduction(),
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Status(fiber.StatusCreated).JSON(out)
}

// PollChatMessages handles GET /api/chat/messages
// @Summary Poll a visitor transcript
// @Tags chat
// @Produce json
// @Param session_id query string false "Session token; defaults to the chat cookie"
// @Success 200 {array} models.ChatMessage
// @Router /chat/messages [get]
func (s *Server) PollChatMessages(c *fiber.Ctx) error {
	sessionID := chatSessionID(c, c.Query("session_id"))
	if sessionID == "" {
		return c.JSON([]models.ChatMessage{})
	}
	msgs, err := s.chatService.Poll(c.UserContext(), sessionID)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(msgs)
}

// ListChatSessions handles GET /api/admin/chat/sessions
// @Summary Chat sessions
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Success 200 {array} repository.ChatSession
// @Router /admin/chat/sessions [get]
func (s *Server) ListChatSessions(c *fiber.Ctx) error {
	sessions, err := s.chatService.Sessions(c.UserContext())
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(sessions)
}

// ViewChatSession handles GET /api/admin/chat/sessions/:session
// @Summary Read a chat transcript
// @Description Marks the visitor's messages read
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Param session path string true "Session token"
// @Success 200 {array} models.ChatMessage
// @Router /admin/chat/sessions/{session} [get]
func (s *Server) ViewChatSession(c *fiber.Ctx) error {
	msgs, err := s.chatService.ViewSession(c.UserContext(), c.Params("session"))
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(msgs)
}

// ReplyToChat handles POST /api/admin/chat/sessions/:session/reply
// @Summary Reply to a visitor
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param session path string true "Session token"
// @Param request body object{message=string} true "Reply"
// @Success 201 {object} models.ChatMessage
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/chat/sessions/{session}/reply [post]
func (s *Server) ReplyToChat(c *fiber.Ctx) error {
	var req struct {
		Message string `json:"message"`
	}
	if err := parseBody(c, &req); err != nil {
		return nil
	}
	staffName, _ := c.Locals("username").(string)
	if staffName == "" {
		user, err := s.userService.GetUserByID(c.UserContext(), currentUserID(c))
		if err != nil {
			return s.respondError(c, err)
		}
		staffName = user.Username
	}
	msg, err := s.chatService.Reply(c.UserContext(), c.Params("session"), staffName, req.Message)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(msg)
}

// GetChatUnreadCount handles GET /api/admin/chat/unread
// @Summary Unread visitor messages
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{unread=int}
// @Router /admin/chat/unread [get]
func (s *Server) GetChatUnreadCount(c *fiber.Ctx) error {
	n, err := s.chatService.UnreadCount(c.UserContext())
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(fiber.Map{"unread": n})
}

// GetChatSettings handles GET /api/admin/chat/settings
// @Summary Chat settings
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ChatSettings
// @Router /admin/chat/settings [get]
func (s *Server) GetChatSettings(c *fiber.Ctx) error {
	cfg, err := s.chatService.Settings(c.UserContext())
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(cfg)
}

// UpdateChatSettings handles PUT /api/admin/chat/settings
// @Summary Update chat settings
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ChatSettings true "Settings"
// @Success 200 {object} models.ChatSettings
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/chat/settings [put]
func (s *Server) UpdateChatSettings(c *fiber.Ctx) error {
	var in models.ChatSettings
	if err := parseBody(c, &in); err != nil {
		return nil
	}
	out, err := s.chatService.UpdateSettings(c.UserContext(), in)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(out)
}

// ListQuickResponses handles GET /api/admin/chat/quick-responses
// @Summary Canned replies
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.QuickResponse
// @Router /admin/chat/quick-responses [get]
func (s *Server) ListQuickResponses(c *fiber.Ctx) error {
	items, err := s.chatService.ListQuickResponses(c.UserContext())
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(items)
}

// SaveQuickResponse handles POST/PUT /api/admin/chat/quick-responses
// @Summary Create or update a canned reply
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.QuickResponse true "Canned reply"
// @Success 200 {object} models.QuickResponse
// @Router /admin/chat/quick-responses [post]
func (s *Server) SaveQuickResponse(c *fiber.Ctx) error {
	id, err := s.optionalID(c, "id")
	if err != nil {
		return nil
	}
	var q models.QuickResponse
	if err := parseBody(c, &q); err != nil {
		return nil
	}
	q.ID = id
	if err := s.chatService.SaveQuickResponse(c.UserContext(), &q); err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(q)
}

// DeleteQuickResponse handles DELETE /api/admin/chat/quick-responses/:id
// @Summary Delete a canned reply
// @Tags chat
// @Security BearerAuth
// @Param id path int true "Canned reply ID"
// @Success 204
// @Router /admin/chat/quick-responses/{id} [delete]
func (s *Server) DeleteQuickResponse(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.chatService.DeleteQuickResponse(c.UserContext(), id); err != nil {
		return s.respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ReorderQuickResponses handles POST /api/admin/chat/quick-responses/reorder
// @Summary Reorder canned replies
// @Tags chat
// @Accept json
// @Security BearerAuth
// @Param request body object{ids=[]int} true "IDs in display order"
// @Success 204
// @Router /admin/chat/quick-responses/reorder [post]
func (s *Server) ReorderQuickResponses(c *fiber.Ctx) error {
	var req struct {
		IDs []uint `json:"ids"`
	}
	if err := parseBody(c, &req); err != nil {
		return nil
	}
	if err := s.chatService.ReorderQuickResponses(c.UserContext(), req.IDs); err != nil {
		return s.respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
