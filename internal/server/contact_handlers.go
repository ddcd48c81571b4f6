package server

import (
	"nhaf/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SubmitContact handles POST /api/contact
// @Summary Send a contact message
// @Tags public
// @Accept json
// @Produce json
// @Param request body service.ContactInput true "Message"
// @Success 201 {object} object{message=string}
// @Failure 400 {object} models.ErrorResponse
// @Failure 429 {object} models.ErrorResponse
// @Router /contact [post]
func (s *Server) SubmitContact(c *fiber.Ctx) error {
	var in service.ContactInput
	if err := parseBody(c, &in); err != nil {
		return nil
	}
	if _, err := s.contactService.Submit(c.UserContext(), in); err != nil {
		return s.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Thank you for reaching out. We will get back to you soon."})
}

// ListContactMessages handles GET /api/admin/contact
// @Summary Contact messages
// @Tags contact
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {object} object{items=[]models.ContactMessage,total=int}
// @Router /admin/contact [get]
func (s *Server) ListContactMessages(c *fiber.Ctx) error {
	p := parsePagination(c, 50)
	items, total, err := s.contactService.List(c.UserContext(), p.Limit, p.Offset)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(paginated(items, total, p))
}
