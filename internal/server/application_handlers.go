package server

import (
	"nhaf/internal/models"
	"nhaf/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SubmitVolunteer handles POST /api/volunteers
// @Summary Apply as a volunteer
// @Tags public
// @Accept json
// @Produce json
// @Param request body service.VolunteerInput true "Application"
// @Success 201 {object} models.VolunteerApplication
// @Failure 400 {object} models.ErrorResponse
// @Failure 429 {object} models.ErrorResponse
// @Router /volunteers [post]
func (s *Server) SubmitVolunteer(c *fiber.Ctx) error {
	var in service.VolunteerInput
	if err := parseBody(c, &in); err != nil {
		return nil
	}
	app, err := s.applicationService.SubmitVolunteer(c.UserContext(), in)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(app)
}

// SubmitMembership handles POST /api/memberships
// @Summary Apply for membership
// @Description Records the application and starts the fee payment with the chosen method
// @Tags public
// @Accept json
// @Produce json
// @Param request body service.MembershipInput true "Application"
// @Success 201 {object} service.MembershipCheckout
// @Failure 400 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /memberships [post]
func (s *Server) SubmitMembership(c *fiber.Ctx) error {
	var in service.MembershipInput
	if err := parseBody(c, &in); err != nil {
		return nil
	}
	out, err := s.applicationService.SubmitMembership(c.UserContext(), in)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetMembershipFees handles GET /api/memberships/fees
// @Summary Membership fees
// @Tags public
// @Produce json
// @Success 200 {array} models.MembershipFee
// @Router /memberships/fees [get]
func (s *Server) GetMembershipFees(c *fiber.Ctx) error {
	fees, err := s.applicationService.ListFees(c.UserContext())
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(fees)
}

// SaveMembershipFee handles POST/PUT /api/admin/membership-fees
// @Summary Create or update a membership fee
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.MembershipFee true "Fee"
// @Success 200 {object} models.MembershipFee
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/membership-fees [post]
func (s *Server) SaveMembershipFee(c *fiber.Ctx) error {
	id, err := s.optionalID(c, "id")
	if err != nil {
		return nil
	}
	var fee models.MembershipFee
	if err := parseBody(c, &fee); err != nil {
		return nil
	}
	fee.ID = id
	if err := s.applicationService.SaveFee(c.UserContext(), &fee); err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(fee)
}

// DeleteMembershipFee handles DELETE /api/admin/membership-fees/:id
// @Summary Delete a membership fee
// @Tags applications
// @Security BearerAuth
// @Param id path int true "Fee ID"
// @Success 204
// @Router /admin/membership-fees/{id} [delete]
func (s *Server) DeleteMembershipFee(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.applicationService.DeleteFee(c.UserContext(), id); err != nil {
		return s.respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetReviewQueue handles GET /api/admin/applications
// @Summary Applications awaiting review
// @Description Volunteer and membership applications, pending first
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.ReviewQueue
// @Router /admin/applications [get]
func (s *Server) GetReviewQueue(c *fiber.Ctx) error {
	q, err := s.applicationService.Queue(c.UserContext())
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(q)
}

// GetVolunteerApplication handles GET /api/admin/applications/volunteers/:id
// @Summary Get a volunteer application
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Success 200 {object} models.VolunteerApplication
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/applications/volunteers/{id} [get]
func (s *Server) GetVolunteerApplication(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	app, err := s.applicationService.GetVolunteer(c.UserContext(), id)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(app)
}

// GetMembershipApplication handles GET /api/admin/applications/memberships/:id
// @Summary Get a membership application
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Success 200 {object} models.MembershipApplication
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/applications/memberships/{id} [get]
func (s *Server) GetMembershipApplication(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	app, err := s.applicationService.GetMembership(c.UserContext(), id)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(app)
}

type reviewFunc func(c *fiber.Ctx, id uint) (*service.ReviewResult, error)

func (s *Server) review(c *fiber.Ctx, fn reviewFunc) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	res, err := fn(c, id)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(res)
}

// ApproveVolunteer handles POST /api/admin/applications/volunteers/:id/approve
// @Summary Approve a volunteer application
// @Description Approval publishes the applicant to the member directory
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Success 200 {object} service.ReviewResult
// @Router /admin/applications/volunteers/{id}/approve [post]
func (s *Server) ApproveVolunteer(c *fiber.Ctx) error {
	return s.review(c, func(c *fiber.Ctx, id uint) (*service.ReviewResult, error) {
		return s.promotionService.ApproveVolunteer(c.UserContext(), id)
	})
}

// RejectVolunteer handles POST /api/admin/applications/volunteers/:id/reject
// @Summary Reject a volunteer application
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Success 200 {object} service.ReviewResult
// @Router /admin/applications/volunteers/{id}/reject [post]
func (s *Server) RejectVolunteer(c *fiber.Ctx) error {
	return s.review(c, func(c *fiber.Ctx, id uint) (*service.ReviewResult, error) {
		return s.promotionService.RejectVolunteer(c.UserContext(), id)
	})
}

// ApproveMembership handles POST /api/admin/applications/memberships/:id/approve
// @Summary Approve a membership application
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Success 200 {object} service.ReviewResult
// @Router /admin/applications/memberships/{id}/approve [post]
func (s *Server) ApproveMembership(c *fiber.Ctx) error {
	return s.review(c, func(c *fiber.Ctx, id uint) (*service.ReviewResult, error) {
		return s.promotionService.ApproveMembership(c.UserContext(), id)
	})
}

// RejectMembership handles POST /api/admin/applications/memberships/:id/reject
// @Summary Reject a membership application
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Success 200 {object} service.ReviewResult
// @Router /admin/applications/memberships/{id}/reject [post]
func (s *Server) RejectMembership(c *fiber.Ctx) error {
	return s.review(c, func(c *fiber.Ctx, id uint) (*service.ReviewResult, error) {
		return s.promotionService.RejectMembership(c.UserContext(), id)
	})
}

type settlementRequest struct {
	Status models.PaymentStatus `json:"status"`
}

// ConfirmMembershipPayment handles POST /api/admin/applications/memberships/:id/payment
// @Summary Settle a bank transfer
// @Description Marks an offline membership payment completed or failed
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Param request body object{status=string} true "completed or failed"
// @Success 200 {object} service.PaymentOutcome
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/applications/memberships/{id}/payment [post]
func (s *Server) ConfirmMembershipPayment(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	var req settlementRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}
	out, err := s.applicationService.ConfirmBankPayment(c.UserContext(), id, req.Status)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(out)
}
