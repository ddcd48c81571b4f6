package server

import (
	"nhaf/internal/models"
	"nhaf/internal/repository"
	"nhaf/internal/service"

	"github.com/gofiber/fiber/v2"
)

const (
	paymentKindDonation   = "donation"
	paymentKindMembership = "membership"
)

// GetDonationPage handles GET /api/donations/page
// @Summary Donation page content
// @Description Suggested tiers, bank accounts and the payment methods currently offered
// @Tags public
// @Produce json
// @Success 200 {object} service.DonationPage
// @Router /donations/page [get]
func (s *Server) GetDonationPage(c *fiber.Ctx) error {
	page, err := s.donationService.Page(c.UserContext())
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(page)
}

// CreateDonation handles POST /api/donations
// @Summary Start a donation
// @Description Bank transfers return account details; eSewa returns a signed form; Khalti returns a redirect URL
// @Tags public
// @Accept json
// @Produce json
// @Param request body service.DonateInput true "Donation"
// @Success 201 {object} service.DonationCheckout
// @Failure 400 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /donations [post]
func (s *Server) CreateDonation(c *fiber.Ctx) error {
	var in service.DonateInput
	if err := parseBody(c, &in); err != nil {
		return nil
	}
	out, err := s.donationService.Create(c.UserContext(), in)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// DonationEsewaSuccess handles eSewa's success redirect for a donation.
// @Summary eSewa donation success callback
// @Tags payments
// @Param token path string true "Transaction UUID"
// @Param refId query string false "v1 reference id"
// @Param data query string false "v2 signed payload"
// @Success 303
// @Router /payments/esewa/donations/{token}/success [get]
func (s *Server) DonationEsewaSuccess(c *fiber.Ctx) error {
	out, err := s.donationService.EsewaSuccess(c.UserContext(), c.Params("token"), c.Query("refId"), c.Query("data"))
	return s.redirectPayment(c, paymentKindDonation, out, err)
}

// DonationEsewaFailure handles eSewa's failure redirect for a donation.
// @Summary eSewa donation failure callback
// @Tags payments
// @Param token path string true "Transaction UUID"
// @Success 303
// @Router /payments/esewa/donations/{token}/failure [get]
func (s *Server) DonationEsewaFailure(c *fiber.Ctx) error {
	out, err := s.donationService.EsewaFailure(c.UserContext(), c.Params("token"))
	return s.redirectPayment(c, paymentKindDonation, out, err)
}

// DonationKhaltiReturn handles Khalti's return redirect for a donation.
// @Summary Khalti donation return
// @Description The payment is verified with a lookup; the status parameter alone never completes it
// @Tags payments
// @Param pidx query string true "Khalti payment id"
// @Param status query string false "Status hint"
// @Success 303
// @Router /payments/khalti/donations/return [get]
func (s *Server) DonationKhaltiReturn(c *fiber.Ctx) error {
	out, err := s.donationService.KhaltiReturn(c.UserContext(), c.Query("pidx"), c.Query("status"))
	return s.redirectPayment(c, paymentKindDonation, out, err)
}

// MembershipEsewaSuccess handles eSewa's success redirect for a membership fee.
// @Summary eSewa membership success callback
// @Tags payments
// @Param token path string true "Transaction UUID"
// @Success 303
// @Router /payments/esewa/memberships/{token}/success [get]
func (s *Server) MembershipEsewaSuccess(c *fiber.Ctx) error {
	out, err := s.applicationService.MembershipEsewaSuccess(c.UserContext(), c.Params("token"), c.Query("refId"), c.Query("data"))
	return s.redirectPayment(c, paymentKindMembership, out, err)
}

// MembershipEsewaFailure handles eSewa's failure redirect for a membership fee.
// @Summary eSewa membership failure callback
// @Tags payments
// @Param token path string true "Transaction UUID"
// @Success 303
// @Router /payments/esewa/memberships/{token}/failure [get]
func (s *Server) MembershipEsewaFailure(c *fiber.Ctx) error {
	out, err := s.applicationService.MembershipEsewaFailure(c.UserContext(), c.Params("token"))
	return s.redirectPayment(c, paymentKindMembership, out, err)
}

// MembershipKhaltiReturn handles Khalti's return redirect for a membership fee.
// @Summary Khalti membership return
// @Tags payments
// @Param pidx query string true "Khalti payment id"
// @Success 303
// @Router /payments/khalti/memberships/return [get]
func (s *Server) MembershipKhaltiReturn(c *fiber.Ctx) error {
	out, err := s.applicationService.MembershipKhaltiReturn(c.UserContext(), c.Query("pidx"), c.Query("status"))
	return s.redirectPayment(c, paymentKindMembership, out, err)
}

// ListDonations handles GET /api/admin/donations
// @Summary List donations
// @Tags donations
// @Produce json
// @Security BearerAuth
// @Param status query string false "Payment status"
// @Param method query string false "Payment method"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {object} object{items=[]models.Donation,total=int}
// @Router /admin/donations [get]
func (s *Server) ListDonations(c *fiber.Ctx) error {
	p := parsePagination(c, 50)
	f := repository.DonationFilter{
		Status: models.PaymentStatus(c.Query("status")),
		Method: models.PaymentMethod(c.Query("method")),
		Limit:  p.Limit,
		Offset: p.Offset,
	}
	if f.Status != "" && !f.Status.Valid() {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid status"))
	}
	if f.Method != "" && !f.Method.Valid() {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid payment method"))
	}
	items, total, err := s.donationService.List(c.UserContext(), f)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(paginated(items, total, p))
}

// GetDonation handles GET /api/admin/donations/:id
// @Summary Get a donation
// @Tags donations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Donation ID"
// @Success 200 {object} models.Donation
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/donations/{id} [get]
func (s *Server) GetDonation(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	d, err := s.donationService.Get(c.UserContext(), id)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(d)
}

// ConfirmDonation handles POST /api/admin/donations/:id/confirm
// @Summary Settle a bank transfer donation
// @Tags donations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Donation ID"
// @Param request body object{status=string} true "completed or failed"
// @Success 200 {object} service.PaymentOutcome
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/donations/{id}/confirm [post]
func (s *Server) ConfirmDonation(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	var req settlementRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}
	out, err := s.donationService.ConfirmBank(c.UserContext(), id, req.Status)
	if err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(out)
}

// SaveDonationTier handles POST/PUT /api/admin/donation-tiers
// @Summary Create or update a suggested donation tier
// @Tags donations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.DonationTier true "Tier"
// @Success 200 {object} models.DonationTier
// @Router /admin/donation-tiers [post]
func (s *Server) SaveDonationTier(c *fiber.Ctx) error {
	id, err := s.optionalID(c, "id")
	if err != nil {
		return nil
	}
	var t models.DonationTier
	if err := parseBody(c, &t); err != nil {
		return nil
	}
	t.ID = id
	if err := s.donationService.SaveTier(c.UserContext(), &t); err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(t)
}

// DeleteDonationTier handles DELETE /api/admin/donation-tiers/:id
// @Summary Delete a donation tier
// @Tags donations
// @Security BearerAuth
// @Param id path int true "Tier ID"
// @Success 204
// @Router /admin/donation-tiers/{id} [delete]
func (s *Server) DeleteDonationTier(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.donationService.DeleteTier(c.UserContext(), id); err != nil {
		return s.respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SaveBankDetail handles POST/PUT /api/admin/bank-details
// @Summary Create or update a bank account shown for transfers
// @Tags donations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.BankDetail true "Bank account"
// @Success 200 {object} models.BankDetail
// @Router /admin/bank-details [post]
func (s *Server) SaveBankDetail(c *fiber.Ctx) error {
	id, err := s.optionalID(c, "id")
	if err != nil {
		return nil
	}
	var b models.BankDetail
	if err := parseBody(c, &b); err != nil {
		return nil
	}
	b.ID = id
	if err := s.donationService.SaveBankDetail(c.UserContext(), &b); err != nil {
		return s.respondError(c, err)
	}
	return c.JSON(b)
}

// DeleteBankDetail handles DELETE /api/admin/bank-details/:id
// @Summary Delete a bank account
// @Tags donations
// @Security BearerAuth
// @Param id path int true "Bank detail ID"
// @Success 204
// @Router /admin/bank-details/{id} [delete]
func (s *Server) DeleteBankDetail(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.donationService.DeleteBankDetail(c.UserContext(), id); err != nil {
		return s.respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
