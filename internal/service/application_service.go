package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"nhaf/internal/cache"
	"nhaf/internal/middleware"
	"nhaf/internal/models"
	"nhaf/internal/notifications"
	"nhaf/internal/observability"
	"nhaf/internal/payments/khalti"
	"nhaf/internal/repository"
	"nhaf/internal/validation"
)

// Membership callback routes registered by the HTTP server.
const (
	MembershipEsewaSuccessPath = "/api/payments/esewa/memberships/%s/success"
	MembershipEsewaFailurePath = "/api/payments/esewa/memberships/%s/failure"
	MembershipKhaltiReturnPath = "/api/payments/khalti/memberships/return"
)

// reviewQueueSize is how many applications of each variant staff see.
const reviewQueueSize = 50

// ApplicationService handles public applications and their membership payments.
type ApplicationService struct {
	repo      repository.ApplicationRepository
	content   repository.ContentRepository
	gateways  *Gateways
	notifier  *NotificationService
	publisher notifications.Publisher
}

// NewApplicationService returns an ApplicationService. publisher may be nil.
func NewApplicationService(
	repo repository.ApplicationRepository,
	content repository.ContentRepository,
	gateways *Gateways,
	notifier *NotificationService,
	publisher notifications.Publisher,
) *ApplicationService {
	return &ApplicationService{
		repo:      repo,
		content:   content,
		gateways:  gateways,
		notifier:  notifier,
		publisher: publisher,
	}
}

// VolunteerInput is a public volunteer form submission.
type VolunteerInput struct {
	Name           string `json:"name"`
	ContactNumber  string `json:"contact_number"`
	Email          string `json:"email"`
	ProfileImage   string `json:"profile_image"`
	Location       string `json:"location"`
	Availability   string `json:"availability"`
	PastExperience string `json:"past_experience"`
}

// SubmitVolunteer stores a volunteer application and notifies staff.
func (s *ApplicationService) SubmitVolunteer(ctx context.Context, in VolunteerInput) (*models.VolunteerApplication, error) {
	trim(&in.Name, &in.ContactNumber, &in.Email, &in.Location, &in.Availability)
	if err := validation.Required(
		validation.Field{Name: "name", Value: in.Name},
		validation.Field{Name: "contact_number", Value: in.ContactNumber},
		validation.Field{Name: "email", Value: in.Email},
		validation.Field{Name: "location", Value: in.Location},
		validation.Field{Name: "availability", Value: in.Availability},
	); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePhone(in.ContactNumber); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	app := &models.VolunteerApplication{
		Name:           in.Name,
		ContactNumber:  in.ContactNumber,
		Email:          in.Email,
		ProfileImage:   in.ProfileImage,
		Location:       in.Location,
		Availability:   in.Availability,
		PastExperience: in.PastExperience,
		Status:         models.ApplicationStatusPending,
	}
	if err := s.repo.CreateVolunteer(ctx, app); err != nil {
		return nil, err
	}
	observability.FormSubmissions.WithLabelValues("volunteer").Inc()

	s.notifier.notify(ctx, models.NotificationVolunteerPending,
		"New volunteer: "+app.Name,
		app.Location+" - Pending approval",
		LinkMembers,
	)
	return app, nil
}

// MembershipInput is a public membership form submission.
type MembershipInput struct {
	Name          string                `json:"name"`
	Email         string                `json:"email"`
	Phone         string                `json:"phone"`
	MemberType    models.MembershipTier `json:"member_type"`
	PaymentMethod models.PaymentMethod  `json:"payment_method"`
}

// MembershipCheckout is the result of a membership submission.
type MembershipCheckout struct {
	Application *models.MembershipApplication `json:"application"`
	Amount      float64                       `json:"amount"`
	*Checkout
}

// SubmitMembership stores a membership application, notifies staff and starts
// the fee payment with the chosen method.
func (s *ApplicationService) SubmitMembership(ctx context.Context, in MembershipInput) (*MembershipCheckout, error) {
	trim(&in.Name, &in.Email, &in.Phone)
	if err := validation.Required(
		validation.Field{Name: "name", Value: in.Name},
		validation.Field{Name: "email", Value: in.Email},
		validation.Field{Name: "phone", Value: in.Phone},
	); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if !in.MemberType.Valid() {
		return nil, models.NewValidationError("member_type must be general or active")
	}
	if err := s.gateways.checkMethod(in.PaymentMethod); err != nil {
		return nil, err
	}

	fee, err := s.content.FeeFor(ctx, in.MemberType)
	if err != nil {
		return nil, err
	}
	online := in.PaymentMethod != models.PaymentMethodBank
	if fee == nil && online {
		return nil, models.NewValidationError(fmt.Sprintf("No fee is configured for %s membership", in.MemberType.Label()))
	}
	switch in.PaymentMethod {
	case models.PaymentMethodKhalti:
		if err := s.gateways.khaltiReady(); err != nil {
			return nil, err
		}
	case models.PaymentMethodEsewa:
		if err := esewaAmount(fee.Amount); err != nil {
			return nil, err
		}
	}

	app := &models.MembershipApplication{
		Name:          in.Name,
		Email:         in.Email,
		Phone:         in.Phone,
		MemberType:    in.MemberType,
		PaymentMethod: in.PaymentMethod,
		PaymentStatus: models.PaymentStatusPending,
		Status:        models.ApplicationStatusPending,
	}
	var amount float64
	if fee != nil {
		amount = fee.Amount
		app.AmountPaid = &amount
	}
	if err := s.repo.CreateMembership(ctx, app); err != nil {
		return nil, err
	}
	observability.FormSubmissions.WithLabelValues("membership").Inc()
	s.notifier.notify(ctx, models.NotificationMemberPending,
		"New membership: "+app.Name,
		app.MemberType.Label()+" - Pending approval",
		LinkMembers,
	)

	out := &MembershipCheckout{Application: app, Amount: amount}
	switch in.PaymentMethod {
	case models.PaymentMethodBank:
		banks, err := s.content.ListBankDetails(ctx)
		if err != nil {
			return nil, err
		}
		out.Checkout = &Checkout{Method: models.PaymentMethodBank, BankDetails: banks}

	case models.PaymentMethodEsewa:
		token := fmt.Sprintf("memb-%d-%s", app.ID, shortToken())
		if err := s.repo.SetPaymentReference(ctx, app.ID, token); err != nil {
			return nil, err
		}
		app.PaymentReference = token
		out.Checkout = s.gateways.esewaCheckout(amount, token, MembershipEsewaSuccessPath, MembershipEsewaFailurePath)

	default:
		res, err := s.gateways.initiateKhalti(ctx, khalti.InitiateRequest{
			ReturnURL:         s.gateways.callbackURL(MembershipKhaltiReturnPath),
			Amount:            toPaisa(amount),
			PurchaseOrderID:   "memb-" + strconv.FormatUint(uint64(app.ID), 10),
			PurchaseOrderName: "NHAF Membership - " + app.MemberType.Label(),
			CustomerInfo:      &khalti.CustomerInfo{Name: app.Name, Email: app.Email, Phone: app.Phone},
		})
		if err != nil {
			// The application stays on file; only its payment attempt failed.
			if _, serr := s.repo.SettleMembershipPayment(ctx, app.ID, models.PaymentStatusFailed, "", nil); serr != nil {
				middleware.Logger.ErrorContext(ctx, "failed to mark membership payment failed",
					slog.Uint64("application_id", uint64(app.ID)),
					slog.String("error", serr.Error()),
				)
			}
			return nil, err
		}
		if err := s.repo.SetPaymentReference(ctx, app.ID, res.Pidx); err != nil {
			return nil, err
		}
		app.PaymentReference = res.Pidx
		out.Checkout = &Checkout{Method: models.PaymentMethodKhalti, RedirectURL: res.PaymentURL}
	}
	return out, nil
}

// MembershipEsewaSuccess settles the fee payment of the application holding token.
// It never approves the application; staff still review it.
func (s *ApplicationService) MembershipEsewaSuccess(ctx context.Context, token, refID, data string) (*PaymentOutcome, error) {
	app, err := s.repo.GetMembershipByReference(ctx, models.PaymentMethodEsewa, token)
	if err != nil {
		return nil, err
	}
	if app == nil {
		middleware.Logger.WarnContext(ctx, "esewa success for unknown membership", slog.String("token", token))
		return &PaymentOutcome{Reason: "Application not found."}, nil
	}
	txn, ok := s.gateways.decodeEsewa(ctx, token, refID, data)
	if !ok {
		return &PaymentOutcome{Status: app.PaymentStatus, Reason: reasonNotCompleted}, nil
	}
	return s.settlePayment(ctx, app, models.PaymentStatusCompleted, txn, nil)
}

// MembershipEsewaFailure marks a pending fee payment failed.
func (s *ApplicationService) MembershipEsewaFailure(ctx context.Context, token string) (*PaymentOutcome, error) {
	app, err := s.repo.GetMembershipByReference(ctx, models.PaymentMethodEsewa, token)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return &PaymentOutcome{Reason: reasonNotCompleted}, nil
	}
	out, err := s.settlePayment(ctx, app, models.PaymentStatusFailed, "", nil)
	if err != nil {
		return nil, err
	}
	out.Reason = reasonNotCompleted
	return out, nil
}

// MembershipKhaltiReturn verifies a Khalti fee payment by lookup.
func (s *ApplicationService) MembershipKhaltiReturn(ctx context.Context, pidx, statusHint string) (*PaymentOutcome, error) {
	if pidx == "" {
		return nil, models.NewValidationError(reasonInvalid)
	}
	app, err := s.repo.GetMembershipByReference(ctx, models.PaymentMethodKhalti, pidx)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, &models.AppError{Code: models.CodeNotFound, Message: "Application not found."}
	}

	if res := s.gateways.verifyKhalti(ctx, pidx); res != nil && res.Completed() {
		var paid *float64
		if res.TotalAmount > 0 {
			v := float64(res.TotalAmount) / 100
			paid = &v
		}
		return s.settlePayment(ctx, app, models.PaymentStatusCompleted, res.TransactionID, paid)
	}
	if statusHint == khalti.StatusUserCanceled {
		out, err := s.settlePayment(ctx, app, models.PaymentStatusCanceled, "", nil)
		if err != nil {
			return nil, err
		}
		out.Reason = reasonNotCompleted
		return out, nil
	}
	return &PaymentOutcome{Status: app.PaymentStatus, Reason: reasonNotCompleted}, nil
}

// ConfirmBankPayment lets staff settle an offline membership fee.
func (s *ApplicationService) ConfirmBankPayment(ctx context.Context, id uint, to models.PaymentStatus) (*PaymentOutcome, error) {
	if to != models.PaymentStatusCompleted && to != models.PaymentStatusFailed {
		return nil, models.NewValidationError("status must be completed or failed")
	}
	app, err := s.repo.GetMembership(ctx, id)
	if err != nil {
		return nil, err
	}
	if app.PaymentMethod != models.PaymentMethodBank {
		return nil, models.NewValidationError("only bank transfers can be settled manually")
	}
	return s.settlePayment(ctx, app, to, "", nil)
}

func (s *ApplicationService) settlePayment(ctx context.Context, app *models.MembershipApplication, to models.PaymentStatus, txn string, paid *float64) (*PaymentOutcome, error) {
	changed, err := s.repo.SettleMembershipPayment(ctx, app.ID, to, txn, paid)
	if err != nil {
		return nil, err
	}
	if !changed {
		current, err := s.repo.GetMembership(ctx, app.ID)
		if err != nil {
			return nil, err
		}
		out := &PaymentOutcome{Status: current.PaymentStatus}
		if !out.Completed() {
			out.Reason = reasonNotCompleted
		}
		return out, nil
	}

	observability.PaymentEvents.WithLabelValues(string(app.PaymentMethod), string(to)).Inc()
	middleware.Logger.InfoContext(ctx, "membership payment settled",
		slog.Uint64("application_id", uint64(app.ID)),
		slog.String("status", string(to)),
	)
	if to == models.PaymentStatusCompleted {
		s.notifier.notify(ctx, models.NotificationPaymentReceived,
			"Membership payment received: "+app.Name,
			fmt.Sprintf("%s fee via %s", app.MemberType.Label(), methodLabel(app.PaymentMethod)),
			LinkMembers,
		)
	}
	if s.publisher != nil {
		s.publisher.Publish(ctx, notifications.EventPaymentUpdated, map[string]any{
			"kind":   "membership",
			"id":     app.ID,
			"status": to,
		})
	}
	return &PaymentOutcome{Status: to, Changed: true}, nil
}

// ReviewQueue is the staff approval center payload.
type ReviewQueue struct {
	Volunteers  []models.VolunteerApplication  `json:"volunteers"`
	Memberships []models.MembershipApplication `json:"memberships"`
}

// Queue lists applications for review, pending first.
func (s *ApplicationService) Queue(ctx context.Context) (*ReviewQueue, error) {
	volunteers, err := s.repo.ListVolunteers(ctx, reviewQueueSize)
	if err != nil {
		return nil, err
	}
	memberships, err := s.repo.ListMemberships(ctx, reviewQueueSize)
	if err != nil {
		return nil, err
	}
	return &ReviewQueue{Volunteers: volunteers, Memberships: memberships}, nil
}

// GetVolunteer returns one volunteer application.
func (s *ApplicationService) GetVolunteer(ctx context.Context, id uint) (*models.VolunteerApplication, error) {
	return s.repo.GetVolunteer(ctx, id)
}

// GetMembership returns one membership application.
func (s *ApplicationService) GetMembership(ctx context.Context, id uint) (*models.MembershipApplication, error) {
	return s.repo.GetMembership(ctx, id)
}

// ListFees returns the membership fee table.
func (s *ApplicationService) ListFees(ctx context.Context) ([]models.MembershipFee, error) {
	var fees []models.MembershipFee
	err := cache.Aside(ctx, cache.MembershipFeesKey, &fees, cache.DonationPageTTL, func() error {
		var err error
		fees, err = s.content.ListFees(ctx)
		return err
	})
	return fees, err
}

// SaveFee creates or updates the fee of a tier. Tiers are unique.
func (s *ApplicationService) SaveFee(ctx context.Context, f *models.MembershipFee) error {
	if !f.MemberType.Valid() {
		return models.NewValidationError("member_type must be general or active")
	}
	if f.Amount < 0 {
		return models.NewValidationError("Amount must not be negative")
	}
	if err := s.content.SaveFee(ctx, f); err != nil {
		return err
	}
	cache.InvalidateDonationPage(ctx)
	return nil
}

// DeleteFee removes a fee row.
func (s *ApplicationService) DeleteFee(ctx context.Context, id uint) error {
	if err := s.content.DeleteFee(ctx, id); err != nil {
		return err
	}
	cache.InvalidateDonationPage(ctx)
	return nil
}

func trim(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}
