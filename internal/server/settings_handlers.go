package server

import (
	"nhaf/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetPublicSettings handles GET /api/settings
// @Summary Site identity and theme
// @Tags public
// @Produce json
// @Success 200 {object} service.PublicSettings
// @Router /settings [get]
func (s *Server) GetPublicSettings(c *fiber.Ctx) error {
	out, err := s.settingsService.Public(c.UserContext())
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateSiteIdentity handles PUT /api/admin/settings/site
// @Summary Update site identity
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.SiteIdentity true "Identity"
// @Success 200 {object} models.SiteIdentity
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/settings/site [put]
func (s *Server) UpdateSiteIdentity(c *fiber.Ctx) error {
	var in models.SiteIdentity
	if err := parseBody(c, &in); err != nil {
		return nil
	}
	out, err := s.settingsService.UpdateSiteIdentity(c.UserContext(), in)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateSiteTheme handles PUT /api/admin/settings/theme
// @Summary Update the site palette
// @Description Blank colors fall back to the stock palette
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.SiteTheme true "Theme"
// @Success 200 {object} models.SiteTheme
// @Router /admin/settings/theme [put]
func (s *Server) UpdateSiteTheme(c *fiber.Ctx) error {
	var in models.SiteTheme
	if err := parseBody(c, &in); err != nil {
		return nil
	}
	out, err := s.settingsService.UpdateSiteTheme(c.UserContext(), in)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(out)
}

// GetTeamPageSettings handles GET /api/admin/settings/team-page
// @Summary Team page layout
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.TeamPageSettings
// @Router /admin/settings/team-page [get]
func (s *Server) GetTeamPageSettings(c *fiber.Ctx) error {
	out, err := s.settingsService.TeamPage(c.UserContext())
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateTeamPageSettings handles PUT /api/admin/settings/team-page
// @Summary Update the team page layout
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.TeamPageSettings true "Layout"
// @Success 200 {object} models.TeamPageSettings
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/settings/team-page [put]
func (s *Server) UpdateTeamPageSettings(c *fiber.Ctx) error {
	var in models.TeamPageSettings
	if err := parseBody(c, &in); err != nil {
		return nil
	}
	out, err := s.settingsService.UpdateTeamPage(c.UserContext(), in)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(out)
}

// ResetTeamPageSettings handles POST /api/admin/settings/team-page/reset
// @Summary Restore the stock team page layout
// @Description The uploaded watermark image is kept
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.TeamPageSettings
// @Router /admin/settings/team-page/reset [post]
func (s *Server) ResetTeamPageSettings(c *fiber.Ctx) error {
	out, err := s.settingsService.ResetTeamPage(c.UserContext())
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(out)
}
