package server

import (
	"io"

	"nhaf/internal/models"
	"nhaf/internal/service"

	"github.com/gofiber/fiber/v2"
)

// UploadMedia handles POST /api/admin/media
// @Summary Upload an image
// @Description Multipart form with "file" and "kind" (members, volunteers, site or team_page)
// @Tags media
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param kind formData string true "Upload folder"
// @Param file formData file true "Image"
// @Success 201 {object} service.Media
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/media [post]
func (s *Server) UploadMedia(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("No file uploaded"))
	}

	src, err := file.Open()
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Unable to read uploaded file"))
	}
	defer func() { _ = src.Close() }()

	content, err := io.ReadAll(src)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Unable to read uploaded file"))
	}

	media, err := s.mediaService.Upload(c.UserContext(), service.UploadInput{
		Kind:     service.MediaKind(c.FormValue("kind")),
		Filename: file.Filename,
		Content:  content,
	})
	if err != nil {
		return s.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(media)
}

// DeleteMedia handles DELETE /api/admin/media?path=
// @Summary Delete an uploaded image
// @Tags media
// @Security BearerAuth
// @Param path query string true "Stored path"
// @Success 204
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/media [delete]
func (s *Server) DeleteMedia(c *fiber.Ctx) error {
	if err := s.mediaService.Delete(c.UserContext(), c.Query("path")); err != nil {
		return s.respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
