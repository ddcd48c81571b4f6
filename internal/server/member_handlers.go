package server

import (
	"nhaf/internal/models"
	"nhaf/internal/repository"
	"nhaf/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetTeamDirectory handles GET /api/team
// @Summary Public team directory
// @Description Active board members and volunteers with the team page settings
// @Tags public
// @Produce json
// @Success 200 {object} service.Directory
// @Router /team [get]
func (s *Server) GetTeamDirectory(c *fiber.Ctx) error {
	dir, err := s.memberService.PublicDirectory(c.UserContext())
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(dir)
}

// ListMembers handles GET /api/admin/members
// @Summary List members
// @Tags members
// @Produce json
// @Security BearerAuth
// @Param type query string false "board or volunteer"
// @Param active query bool false "Filter by active flag"
// @Param chapter_id query int false "Chapter"
// @Param q query string false "Search name, email or member ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {object} object{items=[]models.Member,total=int}
// @Router /admin/members [get]
func (s *Server) ListMembers(c *fiber.Ctx) error {
	p := parsePagination(c, 50)
	f := repository.MemberFilter{
		Type:   models.MemberType(c.Query("type")),
		Search: c.Query("q"),
		Limit:  p.Limit,
		Offset: p.Offset,
	}
	if f.Type != "" && !f.Type.Valid() {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid member type"))
	}
	if v := c.Query("active"); v != "" {
		active := c.QueryBool("active")
		f.Active = &active
	}
	if v := c.QueryInt("chapter_id"); v > 0 {
		id := uint(v)
		f.ChapterID = &id
	}

	items, total, err := s.memberService.List(c.UserContext(), f)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(paginated(items, total, p))
}

// GetMember handles GET /api/admin/members/:id
// @Summary Get a member
// @Tags members
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Success 200 {object} models.Member
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/members/{id} [get]
func (s *Server) GetMember(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	m, err := s.memberService.Get(c.UserContext(), id)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(m)
}

// CreateMember handles POST /api/admin/members
// @Summary Create a member
// @Description A missing member_id is generated from the member type and join year
// @Tags members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.MemberInput true "Member"
// @Success 201 {object} models.Member
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/members [post]
func (s *Server) CreateMember(c *fiber.Ctx) error {
	var in service.MemberInput
	if err := parseBody(c, &in); err != nil {
		return nil
	}
	m, err := s.memberService.Create(c.UserContext(), in)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(m)
}

// UpdateMember handles PUT /api/admin/members/:id
// @Summary Update a member
// @Description Changing the member type or blanking member_id assigns a fresh identifier
// @Tags members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Param request body service.MemberInput true "Member"
// @Success 200 {object} models.Member
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/members/{id} [put]
func (s *Server) UpdateMember(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	var in service.MemberInput
	if err := parseBody(c, &in); err != nil {
		return nil
	}
	m, err := s.memberService.Update(c.UserContext(), id, in)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(m)
}

// DeleteMember handles DELETE /api/admin/members/:id
// @Summary Delete a member
// @Tags members
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Success 204
// @Router /admin/members/{id} [delete]
func (s *Server) DeleteMember(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.memberService.Delete(c.UserContext(), id); err != nil {
		return s.respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListChapters handles GET /api/admin/chapters
// @Summary List chapters
// @Tags members
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Chapter
// @Router /admin/chapters [get]
func (s *Server) ListChapters(c *fiber.Ctx) error {
	items, err := s.memberService.ListChapters(c.UserContext())
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(items)
}

// SaveChapter handles POST /api/admin/chapters and PUT /api/admin/chapters/:id
// @Summary Create or update a chapter
// @Tags members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.Chapter true "Chapter"
// @Success 200 {object} models.Chapter
// @Router /admin/chapters [post]
func (s *Server) SaveChapter(c *fiber.Ctx) error {
	id, err := s.optionalID(c, "id")
	if err != nil {
		return nil
	}
	var ch models.Chapter
	if err := parseBody(c, &ch); err != nil {
		return nil
	}
	ch.ID = id
	if err := s.memberService.SaveChapter(c.UserContext(), &ch); err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(ch)
}

// DeleteChapter handles DELETE /api/admin/chapters/:id
// @Summary Delete a chapter
// @Tags members
// @Security BearerAuth
// @Param id path int true "Chapter ID"
// @Success 204
// @Router /admin/chapters/{id} [delete]
func (s *Server) DeleteChapter(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.memberService.DeleteChapter(c.UserContext(), id); err != nil {
		return s.respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
