package server

import (
	"context"

	"nhaf/internal/models"
	"nhaf/internal/service"

	"github.com/gofiber/fiber/v2"
)

func listJSON[T any](s *Server, c *fiber.Ctx, list func(context.Context) ([]T, error)) error {
	items, err := list(c.UserContext())
	if err != nil {
		return s.respondError(c, err)
	}
	if items == nil {
		items = []T{}
	}
	return c.JSON(items)
}

// saveJSON decodes a T, hands it to save with the optional :id and echoes
// the stored row.
func saveJSON[T any](s *Server, c *fiber.Ctx, save func(context.Context, uint, *T) error) error {
	id, err := s.optionalID(c, "id")
	if err != nil {
		return nil
	}
	row := new(T)
	if err := parseBody(c, row); err != nil {
		return nil
	}
	if err := save(c.UserContext(), id, row); err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(row)
}

func (s *Server) deleteJSON(c *fiber.Ctx, del func(context.Context, uint) error) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := del(c.UserContext(), id); err != nil {
		return s.respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetHomePage handles GET /api/pages/home
// @Summary Homepage content
// @Description Banners, copy blocks, live announcements, recent gallery photos and programs, and partners.
// @Tags content
// @Produce json
// @Success 200 {object} service.HomePage
// @Router /pages/home [get]
func (s *Server) GetHomePage(c *fiber.Ctx) error {
	page, err := s.siteContentService.Home(c.UserContext())
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(page)
}

// GetAboutPage handles GET /api/pages/about
// @Summary About page content
// @Tags content
// @Produce json
// @Success 200 {object} service.AboutPage
// @Router /pages/about [get]
func (s *Server) GetAboutPage(c *fiber.Ctx) error {
	page, err := s.siteContentService.About(c.UserContext())
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(page)
}

// GetImpactPage handles GET /api/pages/impact
// @Summary Impact counters
// @Tags content
// @Produce json
// @Success 200 {array} models.ImpactStat
// @Router /pages/impact [get]
func (s *Server) GetImpactPage(c *fiber.Ctx) error {
	return listJSON(s, c, s.siteContentService.Impact)
}

// GetContactInfo handles GET /api/pages/contact
// @Summary Contact page details
// @Tags content
// @Produce json
// @Success 200 {object} models.ContactInfo
// @Router /pages/contact [get]
func (s *Server) GetContactInfo(c *fiber.Ctx) error {
	info, err := s.settingsService.ContactInfo(c.UserContext())
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(info)
}

// ListPublicPrograms handles GET /api/programs
// @Summary Programs page
// @Tags content
// @Produce json
// @Param category query string false "upcoming or past"
// @Param sort query string false "asc or desc by event date"
// @Success 200 {object} service.ProgramsPage
// @Failure 400 {object} models.ErrorResponse
// @Router /programs [get]
func (s *Server) ListPublicPrograms(c *fiber.Ctx) error {
	page, err := s.siteContentService.Programs(c.UserContext(), service.ProgramQuery{
		Phase: c.Query("category"),
		Sort:  c.Query("sort", "desc"),
	})
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(page)
}

// GetProgram handles GET /api/programs/:slug
// @Summary Program detail
// @Tags content
// @Produce json
// @Param slug path string true "Program slug"
// @Success 200 {object} service.ProgramDetail
// @Failure 404 {object} models.ErrorResponse
// @Router /programs/{slug} [get]
func (s *Server) GetProgram(c *fiber.Ctx) error {
	detail, err := s.siteContentService.Program(c.UserContext(), c.Params("slug"))
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(detail)
}

// GetGallery handles GET /api/gallery
// @Summary Gallery photos
// @Tags content
// @Produce json
// @Success 200 {array} models.GalleryImage
// @Router /gallery [get]
func (s *Server) GetGallery(c *fiber.Ctx) error {
	return listJSON(s, c, s.siteContentService.Gallery)
}

// GetNavigation handles GET /api/navigation
// @Summary Site menu
// @Tags content
// @Produce json
// @Success 200 {array} models.NavItem
// @Router /navigation [get]
func (s *Server) GetNavigation(c *fiber.Ctx) error {
	return listJSON(s, c, s.siteContentService.Navigation)
}

// ListPublicCollaborations handles GET /api/collaborations
// @Summary Partner organizations
// @Tags content
// @Produce json
// @Param type query string false "Partnership type"
// @Param status query string false "active, ongoing or completed"
// @Param search query string false "Matches name and descriptions"
// @Param sort query string false "newest, oldest or name"
// @Param page query int false "Page number from 1"
// @Success 200 {object} service.CollaborationPage
// @Router /collaborations [get]
func (s *Server) ListPublicCollaborations(c *fiber.Ctx) error {
	page, err := s.siteContentService.Collaborations(c.UserContext(), service.CollaborationQuery{
		Type:   c.Query("type"),
		Status: c.Query("status"),
		Search: c.Query("search"),
		Sort:   c.Query("sort", "newest"),
		Page:   c.QueryInt("page", 1),
	})
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(page)
}

// GetCollaboration handles GET /api/collaborations/:id
// @Summary Partner detail
// @Tags content
// @Produce json
// @Param id path int true "Collaboration ID"
// @Success 200 {object} service.CollaborationDetail
// @Failure 404 {object} models.ErrorResponse
// @Router /collaborations/{id} [get]
func (s *Server) GetCollaboration(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	detail, err := s.siteContentService.Collaboration(c.UserContext(), id)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(detail)
}

// GetOrganizationInfo handles GET /api/admin/content/organization
// @Summary About page copy
// @Tags content
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.OrganizationInfo
// @Router /admin/content/organization [get]
func (s *Server) GetOrganizationInfo(c *fiber.Ctx) error {
	info, err := s.settingsService.OrganizationInfo(c.UserContext())
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(info)
}

// UpdateOrganizationInfo handles PUT /api/admin/content/organization
// @Summary Update about page copy
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.OrganizationInfo true "Mission, vision, objectives and history"
// @Success 200 {object} models.OrganizationInfo
// @Router /admin/content/organization [put]
func (s *Server) UpdateOrganizationInfo(c *fiber.Ctx) error {
	var in models.OrganizationInfo
	if err := parseBody(c, &in); err != nil {
		return nil
	}
	out, err := s.settingsService.UpdateOrganizationInfo(c.UserContext(), in)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateContactInfo handles PUT /api/admin/content/contact-info
// @Summary Update contact page details
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ContactInfo true "Contact details"
// @Success 200 {object} models.ContactInfo
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/content/contact-info [put]
func (s *Server) UpdateContactInfo(c *fiber.Ctx) error {
	var in models.ContactInfo
	if err := parseBody(c, &in); err != nil {
		return nil
	}
	out, err := s.settingsService.UpdateContactInfo(c.UserContext(), in)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(out)
}

// ListProgramCategories handles GET /api/admin/content/program-categories
// @Summary Program category tags
// @Tags content
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ProgramCategory
// @Router /admin/content/program-categories [get]
func (s *Server) ListProgramCategories(c *fiber.Ctx) error {
	return listJSON(s, c, s.siteContentService.ListProgramCategories)
}

// SaveProgramCategory handles POST/PUT /api/admin/content/program-categories
// @Summary Create or update a program category
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ProgramCategory true "Category"
// @Success 200 {object} models.ProgramCategory
// @Router /admin/content/program-categories [post]
func (s *Server) SaveProgramCategory(c *fiber.Ctx) error {
	return saveJSON(s, c, s.siteContentService.SaveProgramCategory)
}

// DeleteProgramCategory handles DELETE /api/admin/content/program-categories/:id
// @Summary Delete a program category
// @Tags content
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 204
// @Router /admin/content/program-categories/{id} [delete]
func (s *Server) DeleteProgramCategory(c *fiber.Ctx) error {
	return s.deleteJSON(c, s.siteContentService.DeleteProgramCategory)
}

// ListPrograms handles GET /api/admin/content/programs
// @Summary All programs
// @Tags content
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Program
// @Router /admin/content/programs [get]
func (s *Server) ListPrograms(c *fiber.Ctx) error {
	return listJSON(s, c, s.siteContentService.ListPrograms)
}

// SaveProgram handles POST/PUT /api/admin/content/programs
// @Summary Create or update a program
// @Description A blank slug is derived from the title.
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.Program true "Program"
// @Success 200 {object} models.Program
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /admin/content/programs [post]
func (s *Server) SaveProgram(c *fiber.Ctx) error {
	return saveJSON(s, c, s.siteContentService.SaveProgram)
}

// DeleteProgram handles DELETE /api/admin/content/programs/:id
// @Summary Delete a program
// @Tags content
// @Security BearerAuth
// @Param id path int true "Program ID"
// @Success 204
// @Router /admin/content/programs/{id} [delete]
func (s *Server) DeleteProgram(c *fiber.Ctx) error {
	return s.deleteJSON(c, s.siteContentService.DeleteProgram)
}

// ListImpactStats handles GET /api/admin/content/impact-stats
// @Summary Impact counters
// @Tags content
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ImpactStat
// @Router /admin/content/impact-stats [get]
func (s *Server) ListImpactStats(c *fiber.Ctx) error {
	return listJSON(s, c, s.siteContentService.ListImpactStats)
}

// SaveImpactStat handles POST/PUT /api/admin/content/impact-stats
// @Summary Create or update an impact counter
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ImpactStat true "Counter"
// @Success 200 {object} models.ImpactStat
// @Router /admin/content/impact-stats [post]
func (s *Server) SaveImpactStat(c *fiber.Ctx) error {
	return saveJSON(s, c, s.siteContentService.SaveImpactStat)
}

// DeleteImpactStat handles DELETE /api/admin/content/impact-stats/:id
// @Summary Delete an impact counter
// @Tags content
// @Security BearerAuth
// @Param id path int true "Counter ID"
// @Success 204
// @Router /admin/content/impact-stats/{id} [delete]
func (s *Server) DeleteImpactStat(c *fiber.Ctx) error {
	return s.deleteJSON(c, s.siteContentService.DeleteImpactStat)
}

// ListFounders handles GET /api/admin/content/founders
// @Summary Founders
// @Tags content
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Founder
// @Router /admin/content/founders [get]
func (s *Server) ListFounders(c *fiber.Ctx) error {
	return listJSON(s, c, s.siteContentService.ListFounders)
}

// SaveFounder handles POST/PUT /api/admin/content/founders
// @Summary Create or update a founder
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.Founder true "Founder"
// @Success 200 {object} models.Founder
// @Router /admin/content/founders [post]
func (s *Server) SaveFounder(c *fiber.Ctx) error {
	return saveJSON(s, c, s.siteContentService.SaveFounder)
}

// DeleteFounder handles DELETE /api/admin/content/founders/:id
// @Summary Delete a founder
// @Tags content
// @Security BearerAuth
// @Param id path int true "Founder ID"
// @Success 204
// @Router /admin/content/founders/{id} [delete]
func (s *Server) DeleteFounder(c *fiber.Ctx) error {
	return s.deleteJSON(c, s.siteContentService.DeleteFounder)
}

// ListChapterLocations handles GET /api/admin/content/chapter-locations
// @Summary Office locations
// @Tags content
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ChapterLocation
// @Router /admin/content/chapter-locations [get]
func (s *Server) ListChapterLocations(c *fiber.Ctx) error {
	return listJSON(s, c, s.siteContentService.ListChapterLocations)
}

// SaveChapterLocation handles POST/PUT /api/admin/content/chapter-locations
// @Summary Create or update an office location
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ChapterLocation true "Location"
// @Success 200 {object} models.ChapterLocation
// @Router /admin/content/chapter-locations [post]
func (s *Server) SaveChapterLocation(c *fiber.Ctx) error {
	return saveJSON(s, c, s.siteContentService.SaveChapterLocation)
}

// DeleteChapterLocation handles DELETE /api/admin/content/chapter-locations/:id
// @Summary Delete an office location
// @Tags content
// @Security BearerAuth
// @Param id path int true "Location ID"
// @Success 204
// @Router /admin/content/chapter-locations/{id} [delete]
func (s *Server) DeleteChapterLocation(c *fiber.Ctx) error {
	return s.deleteJSON(c, s.siteContentService.DeleteChapterLocation)
}

// ListAchievements handles GET /api/admin/content/achievements
// @Summary Milestones
// @Tags content
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Achievement
// @Router /admin/content/achievements [get]
func (s *Server) ListAchievements(c *fiber.Ctx) error {
	return listJSON(s, c, s.siteContentService.ListAchievements)
}

// SaveAchievement handles POST/PUT /api/admin/content/achievements
// @Summary Create or update a milestone
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.Achievement true "Milestone"
// @Success 200 {object} models.Achievement
// @Router /admin/content/achievements [post]
func (s *Server) SaveAchievement(c *fiber.Ctx) error {
	return saveJSON(s, c, s.siteContentService.SaveAchievement)
}

// DeleteAchievement handles DELETE /api/admin/content/achievements/:id
// @Summary Delete a milestone
// @Tags content
// @Security BearerAuth
// @Param id path int true "Milestone ID"
// @Success 204
// @Router /admin/content/achievements/{id} [delete]
func (s *Server) DeleteAchievement(c *fiber.Ctx) error {
	return s.deleteJSON(c, s.siteContentService.DeleteAchievement)
}

// ListHeroBanners handles GET /api/admin/content/hero-banners
// @Summary Homepage slides
// @Tags content
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.HeroBanner
// @Router /admin/content/hero-banners [get]
func (s *Server) ListHeroBanners(c *fiber.Ctx) error {
	return listJSON(s, c, s.siteContentService.ListHeroBanners)
}

// SaveHeroBanner handles POST/PUT /api/admin/content/hero-banners
// @Summary Create or update a homepage slide
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.HeroBanner true "Slide"
// @Success 200 {object} models.HeroBanner
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/content/hero-banners [post]
func (s *Server) SaveHeroBanner(c *fiber.Ctx) error {
	return saveJSON(s, c, s.siteContentService.SaveHeroBanner)
}

// DeleteHeroBanner handles DELETE /api/admin/content/hero-banners/:id
// @Summary Delete a homepage slide
// @Tags content
// @Security BearerAuth
// @Param id path int true "Slide ID"
// @Success 204
// @Router /admin/content/hero-banners/{id} [delete]
func (s *Server) DeleteHeroBanner(c *fiber.Ctx) error {
	return s.deleteJSON(c, s.siteContentService.DeleteHeroBanner)
}

// ListHomeContent handles GET /api/admin/content/home-content
// @Summary Homepage copy blocks
// @Tags content
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.HomeContent
// @Router /admin/content/home-content [get]
func (s *Server) ListHomeContent(c *fiber.Ctx) error {
	return listJSON(s, c, s.siteContentService.ListHomeContent)
}

// SaveHomeContent handles POST/PUT /api/admin/content/home-content
// @Summary Create or update a homepage copy block
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.HomeContent true "Block"
// @Success 200 {object} models.HomeContent
// @Failure 409 {object} models.ErrorResponse
// @Router /admin/content/home-content [post]
func (s *Server) SaveHomeContent(c *fiber.Ctx) error {
	return saveJSON(s, c, s.siteContentService.SaveHomeContent)
}

// DeleteHomeContent handles DELETE /api/admin/content/home-content/:id
// @Summary Delete a homepage copy block
// @Tags content
// @Security BearerAuth
// @Param id path int true "Block ID"
// @Success 204
// @Router /admin/content/home-content/{id} [delete]
func (s *Server) DeleteHomeContent(c *fiber.Ctx) error {
	return s.deleteJSON(c, s.siteContentService.DeleteHomeContent)
}

// ListAnnouncements handles GET /api/admin/content/announcements
// @Summary Homepage popups
// @Tags content
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.AnnouncementPopup
// @Router /admin/content/announcements [get]
func (s *Server) ListAnnouncements(c *fiber.Ctx) error {
	return listJSON(s, c, s.siteContentService.ListAnnouncements)
}

// SaveAnnouncement handles POST/PUT /api/admin/content/announcements
// @Summary Create or update a homepage popup
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.AnnouncementPopup true "Popup"
// @Success 200 {object} models.AnnouncementPopup
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/content/announcements [post]
func (s *Server) SaveAnnouncement(c *fiber.Ctx) error {
	return saveJSON(s, c, s.siteContentService.SaveAnnouncement)
}

// DeleteAnnouncement handles DELETE /api/admin/content/announcements/:id
// @Summary Delete a homepage popup
// @Tags content
// @Security BearerAuth
// @Param id path int true "Popup ID"
// @Success 204
// @Router /admin/content/announcements/{id} [delete]
func (s *Server) DeleteAnnouncement(c *fiber.Ctx) error {
	return s.deleteJSON(c, s.siteContentService.DeleteAnnouncement)
}

// ListGalleryImages handles GET /api/admin/content/gallery
// @Summary Gallery photos, hidden ones included
// @Tags content
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.GalleryImage
// @Router /admin/content/gallery [get]
func (s *Server) ListGalleryImages(c *fiber.Ctx) error {
	return listJSON(s, c, s.siteContentService.ListGallery)
}

// SaveGalleryImage handles POST/PUT /api/admin/content/gallery
// @Summary Create or update a gallery photo
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.GalleryImage true "Photo"
// @Success 200 {object} models.GalleryImage
// @Router /admin/content/gallery [post]
func (s *Server) SaveGalleryImage(c *fiber.Ctx) error {
	return saveJSON(s, c, s.siteContentService.SaveGalleryImage)
}

// DeleteGalleryImage handles DELETE /api/admin/content/gallery/:id
// @Summary Delete a gallery photo
// @Tags content
// @Security BearerAuth
// @Param id path int true "Photo ID"
// @Success 204
// @Router /admin/content/gallery/{id} [delete]
func (s *Server) DeleteGalleryImage(c *fiber.Ctx) error {
	return s.deleteJSON(c, s.siteContentService.DeleteGalleryImage)
}

// ListNavItems handles GET /api/admin/content/navigation
// @Summary Full site menu, hidden entries included
// @Tags content
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.NavItem
// @Router /admin/content/navigation [get]
func (s *Server) ListNavItems(c *fiber.Ctx) error {
	return listJSON(s, c, s.siteContentService.ListNavItems)
}

// SaveNavItem handles POST/PUT /api/admin/content/navigation
// @Summary Create or update a menu entry
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.NavItem true "Menu entry"
// @Success 200 {object} models.NavItem
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/content/navigation [post]
func (s *Server) SaveNavItem(c *fiber.Ctx) error {
	return saveJSON(s, c, s.siteContentService.SaveNavItem)
}

// DeleteNavItem handles DELETE /api/admin/content/navigation/:id
// @Summary Delete a menu entry and its submenu
// @Tags content
// @Security BearerAuth
// @Param id path int true "Menu entry ID"
// @Success 204
// @Router /admin/content/navigation/{id} [delete]
func (s *Server) DeleteNavItem(c *fiber.Ctx) error {
	return s.deleteJSON(c, s.siteContentService.DeleteNavItem)
}

// ReorderNavItems handles POST /api/admin/content/navigation/reorder
// @Summary Reorder menu entries
// @Tags content
// @Accept json
// @Security BearerAuth
// @Param request body object{ids=[]int} true "IDs in display order"
// @Success 204
// @Router /admin/content/navigation/reorder [post]
func (s *Server) ReorderNavItems(c *fiber.Ctx) error {
	var req struct {
		IDs []uint `json:"ids"`
	}
	if err := parseBody(c, &req); err != nil {
		return nil
	}
	if err := s.siteContentService.ReorderNavItems(c.UserContext(), req.IDs); err != nil {
		return s.respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RestoreDefaultNav handles POST /api/admin/content/navigation/restore-defaults
// @Summary Recreate the stock menu entries
// @Tags content
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{created=int}
// @Router /admin/content/navigation/restore-defaults [post]
func (s *Server) RestoreDefaultNav(c *fiber.Ctx) error {
	created, err := s.siteContentService.RestoreDefaultNav(c.UserContext())
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(fiber.Map{"created": created})
}

// ListCollaborations handles GET /api/admin/content/collaborations
// @Summary All partner organizations
// @Tags content
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Collaboration
// @Router /admin/content/collaborations [get]
func (s *Server) ListCollaborations(c *fiber.Ctx) error {
	return listJSON(s, c, s.siteContentService.ListCollaborations)
}

// SaveCollaboration handles POST/PUT /api/admin/content/collaborations
// @Summary Create or update a partner organization
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.Collaboration true "Partner"
// @Success 200 {object} models.Collaboration
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/content/collaborations [post]
func (s *Server) SaveCollaboration(c *fiber.Ctx) error {
	return saveJSON(s, c, s.siteContentService.SaveCollaboration)
}

// DeleteCollaboration handles DELETE /api/admin/content/collaborations/:id
// @Summary Delete a partner organization
// @Tags content
// @Security BearerAuth
// @Param id path int true "Collaboration ID"
// @Success 204
// @Router /admin/content/collaborations/{id} [delete]
func (s *Server) DeleteCollaboration(c *fiber.Ctx) error {
	return s.deleteJSON(c, s.siteContentService.DeleteCollaboration)
}
