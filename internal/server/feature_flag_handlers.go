package server

import (
	"nhaf/internal/featureflags"

	"github.com/gofiber/fiber/v2"
)

// GetFeatureFlags lists every flag with its configured value and whether it
// is on for anonymous visitors.
// @Summary Feature flags
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} featureflags.Flag
// @Router /admin/feature-flags [get]
func (s *Server) GetFeatureFlags(c *fiber.Ctx) error {
	flags := s.featureFlags
	if flags == nil {
		flags = featureflags.NewManager("")
	}
	return c.JSON(flags.Flags())
}
