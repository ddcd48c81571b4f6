package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetNotificationFeed handles GET /api/admin/notifications
// @Summary Notification bell feed
// @Description The most recent notifications with the unread count
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.Feed
// @Router /admin/notifications [get]
func (s *Server) GetNotificationFeed(c *fiber.Ctx) error {
	feed, err := s.notificationService.Feed(c.UserContext())
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(feed)
}

// ListNotifications handles GET /api/admin/notifications/all
// @Summary All notifications
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {object} object{items=[]models.Notification,total=int}
// @Router /admin/notifications/all [get]
func (s *Server) ListNotifications(c *fiber.Ctx) error {
	p := parsePagination(c, 50)
	items, total, err := s.notificationService.List(c.UserContext(), p.Limit, p.Offset)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(paginated(items, total, p))
}

// MarkNotificationRead handles POST /api/admin/notifications/:id/read
// @Summary Mark one notification read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Notification ID"
// @Success 200 {object} object{unread_count=int}
// @Router /admin/notifications/{id}/read [post]
func (s *Server) MarkNotificationRead(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.notificationService.MarkRead(c.UserContext(), id); err != nil {
		return s.respondError(c, err)
	}
	unread, err := s.notificationService.UnreadCount(c.UserContext())
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(fiber.Map{"unread_count": unread})
}

// MarkAllNotificationsRead handles POST /api/admin/notifications/read-all
// @Summary Mark every notification read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{marked=int,unread_count=int}
// @Router /admin/notifications/read-all [post]
func (s *Server) MarkAllNotificationsRead(c *fiber.Ctx) error {
	n, err := s.notificationService.MarkAllRead(c.UserContext())
	if err != nil {
		return s.respondError(c, err)
	}
	unread, err := s.notificationService.UnreadCount(c.UserContext())
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(fiber.Map{"marked": n, "unread_count": unread})
}
