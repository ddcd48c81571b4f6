package service

import (
	"context"
	"fmt"
	"log/slog"
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

// Callback routes registered by the HTTP server.
const (
	DonationEsewaSuccessPath = "/api/payments/esewa/donations/%s/success"
	DonationEsewaFailurePath = "/api/payments/esewa/donations/%s/failure"
	DonationKhaltiReturnPath = "/api/payments/khalti/donations/return"
)

// DonationOrderName is shown on the Khalti payment page.
const DonationOrderName = "NHAF Nepal Donation"

// DonationService records donations and settles them from gateway callbacks.
type DonationService struct {
	repo      repository.DonationRepository
	content   repository.ContentRepository
	gateways  *Gateways
	notifier  *NotificationService
	publisher notifications.Publisher
}

// NewDonationService returns a DonationService. publisher may be nil.
func NewDonationService(
	repo repository.DonationRepository,
	content repository.ContentRepository,
	gateways *Gateways,
	notifier *NotificationService,
	publisher notifications.Publisher,
) *DonationService {
	return &DonationService{
		repo:      repo,
		content:   content,
		gateways:  gateways,
		notifier:  notifier,
		publisher: publisher,
	}
}

// DonateInput is a public donation form submission.
type DonateInput struct {
	Amount        float64              `json:"amount"`
	DonorName     string               `json:"donor_name"`
	DonorEmail    string               `json:"donor_email"`
	PaymentMethod models.PaymentMethod `json:"payment_method"`
	// ReturnURL overrides where Khalti sends the payer back.
	ReturnURL string `json:"-"`
}

// DonationCheckout is the result of a donation submission.
type DonationCheckout struct {
	Donation *models.Donation `json:"donation"`
	*Checkout
}

// Create validates the submission and starts the payment. Offline transfers
// are recorded as pending without contacting any gateway; Khalti donations
// are only recorded once Khalti accepted the initiation.
func (s *DonationService) Create(ctx context.Context, in DonateInput) (*DonationCheckout, error) {
	in.DonorName = strings.TrimSpace(in.DonorName)
	in.DonorEmail = strings.TrimSpace(in.DonorEmail)
	if in.Amount <= 0 {
		return nil, models.NewValidationError("Amount must be greater than zero")
	}
	if err := validation.ValidateOptionalEmail(in.DonorEmail); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := s.gateways.checkMethod(in.PaymentMethod); err != nil {
		return nil, err
	}

	d := &models.Donation{
		Amount:        in.Amount,
		DonorName:     in.DonorName,
		DonorEmail:    in.DonorEmail,
		PaymentMethod: in.PaymentMethod,
		Status:        models.PaymentStatusPending,
	}

	switch in.PaymentMethod {
	case models.PaymentMethodBank:
		if err := s.repo.Create(ctx, d); err != nil {
			return nil, err
		}
		banks, err := s.content.ListBankDetails(ctx)
		if err != nil {
			return nil, err
		}
		s.recordCreated(ctx, d)
		return &DonationCheckout{Donation: d, Checkout: &Checkout{Method: models.PaymentMethodBank, BankDetails: banks}}, nil

	case models.PaymentMethodEsewa:
		if err := esewaAmount(d.Amount); err != nil {
			return nil, err
		}
		seq, err := s.nextSequence(ctx)
		if err != nil {
			return nil, err
		}
		d.PaymentReference = fmt.Sprintf("don-%d-%s", seq, shortToken())
		checkout := s.gateways.esewaCheckout(d.Amount, d.PaymentReference, DonationEsewaSuccessPath, DonationEsewaFailurePath)
		if err := s.repo.Create(ctx, d); err != nil {
			return nil, err
		}
		s.recordCreated(ctx, d)
		return &DonationCheckout{Donation: d, Checkout: checkout}, nil

	default:
		if err := s.gateways.khaltiReady(); err != nil {
			return nil, err
		}
		seq, err := s.nextSequence(ctx)
		if err != nil {
			return nil, err
		}
		orderID := fmt.Sprintf("donate-%d-%s", seq, shortToken())
		name := in.DonorName
		if name == "" {
			name = "Donor"
		}
		returnURL := in.ReturnURL
		if returnURL == "" {
			returnURL = s.gateways.callbackURL(DonationKhaltiReturnPath)
		}
		res, err := s.gateways.initiateKhalti(ctx, khalti.InitiateRequest{
			ReturnURL:         returnURL,
			Amount:            toPaisa(d.Amount),
			PurchaseOrderID:   orderID,
			PurchaseOrderName: DonationOrderName,
			CustomerInfo:      &khalti.CustomerInfo{Name: name, Email: in.DonorEmail},
		})
		if err != nil {
			return nil, err
		}
		d.Pidx = res.Pidx
		d.PaymentReference = orderID
		if err := s.repo.Create(ctx, d); err != nil {
			return nil, err
		}
		s.recordCreated(ctx, d)
		return &DonationCheckout{Donation: d, Checkout: &Checkout{Method: models.PaymentMethodKhalti, RedirectURL: res.PaymentURL}}, nil
	}
}

func (s *DonationService) nextSequence(ctx context.Context) (int64, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	return n + 1, nil
}

func (s *DonationService) recordCreated(ctx context.Context, d *models.Donation) {
	observability.PaymentEvents.WithLabelValues(string(d.PaymentMethod), string(models.PaymentStatusPending)).Inc()
	middleware.Logger.InfoContext(ctx, "donation created",
		slog.Uint64("donation_id", uint64(d.ID)),
		slog.String("method", string(d.PaymentMethod)),
		slog.String("reference", d.PaymentReference),
	)
}

// EsewaSuccess handles eSewa's success redirect for token. refID is the v1
// reference id and data the v2 signed payload; both are optional. An unknown
// token changes nothing and is not an error.
func (s *DonationService) EsewaSuccess(ctx context.Context, token, refID, data string) (*PaymentOutcome, error) {
	d, err := s.repo.GetByReference(ctx, models.PaymentMethodEsewa, token)
	if err != nil {
		return nil, err
	}
	if d == nil {
		middleware.Logger.WarnContext(ctx, "esewa success for unknown donation", slog.String("token", token))
		return &PaymentOutcome{Reason: "Donation record not found."}, nil
	}
	txn, ok := s.gateways.decodeEsewa(ctx, token, refID, data)
	if !ok {
		return &PaymentOutcome{Status: d.Status, Reason: reasonNotCompleted}, nil
	}
	return s.settle(ctx, d, models.PaymentStatusCompleted, txn)
}

// EsewaFailure marks a pending eSewa donation failed. Completed donations stay completed.
func (s *DonationService) EsewaFailure(ctx context.Context, token string) (*PaymentOutcome, error) {
	d, err := s.repo.GetByReference(ctx, models.PaymentMethodEsewa, token)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return &PaymentOutcome{Reason: reasonNotCompleted}, nil
	}
	out, err := s.settle(ctx, d, models.PaymentStatusFailed, "")
	if err != nil {
		return nil, err
	}
	out.Reason = reasonNotCompleted
	return out, nil
}

// KhaltiReturn verifies a Khalti return by lookup. The status query parameter
// is only a hint: it can cancel a pending donation but never complete one.
func (s *DonationService) KhaltiReturn(ctx context.Context, pidx, statusHint string) (*PaymentOutcome, error) {
	if pidx == "" {
		return nil, models.NewValidationError(reasonInvalid)
	}
	d, err := s.repo.GetByPidx(ctx, pidx)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, &models.AppError{Code: models.CodeNotFound, Message: "Donation record not found."}
	}

	if res := s.gateways.verifyKhalti(ctx, pidx); res != nil && res.Completed() {
		return s.settle(ctx, d, models.PaymentStatusCompleted, res.TransactionID)
	}
	if statusHint == khalti.StatusUserCanceled {
		out, err := s.settle(ctx, d, models.PaymentStatusCanceled, "")
		if err != nil {
			return nil, err
		}
		out.Reason = reasonNotCompleted
		return out, nil
	}
	return &PaymentOutcome{Status: d.Status, Reason: reasonNotCompleted}, nil
}

// ConfirmBank lets staff settle an offline donation as completed or failed.
func (s *DonationService) ConfirmBank(ctx context.Context, id uint, to models.PaymentStatus) (*PaymentOutcome, error) {
	if to != models.PaymentStatusCompleted && to != models.PaymentStatusFailed {
		return nil, models.NewValidationError("status must be completed or failed")
	}
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d.PaymentMethod != models.PaymentMethodBank {
		return nil, models.NewValidationError("only bank transfers can be settled manually")
	}
	return s.settle(ctx, d, to, "")
}

// settle moves d from pending to `to` with a conditional update. Replays and
// late callbacks find the row already settled and change nothing, so the
// payment notification is appended at most once.
func (s *DonationService) settle(ctx context.Context, d *models.Donation, to models.PaymentStatus, txn string) (*PaymentOutcome, error) {
	changed, err := s.repo.Settle(ctx, d.ID, to, txn)
	if err != nil {
		return nil, err
	}
	if !changed {
		current, err := s.repo.GetByID(ctx, d.ID)
		if err != nil {
			return nil, err
		}
		out := &PaymentOutcome{Status: current.Status}
		if !out.Completed() {
			out.Reason = reasonNotCompleted
		}
		return out, nil
	}

	d.Status = to
	if txn != "" {
		d.TransactionID = txn
	}
	observability.PaymentEvents.WithLabelValues(string(d.PaymentMethod), string(to)).Inc()
	middleware.Logger.InfoContext(ctx, "donation settled",
		slog.Uint64("donation_id", uint64(d.ID)),
		slog.String("status", string(to)),
	)
	if to == models.PaymentStatusCompleted {
		s.notifier.notify(ctx, models.NotificationPaymentReceived,
			"Donation received: "+d.AmountLabel(),
			fmt.Sprintf("From %s via %s", d.DisplayDonor(), methodLabel(d.PaymentMethod)),
			LinkDonations,
		)
	}
	if s.publisher != nil {
		s.publisher.Publish(ctx, notifications.EventPaymentUpdated, map[string]any{
			"kind":   "donation",
			"id":     d.ID,
			"status": to,
		})
	}
	return &PaymentOutcome{Status: to, Changed: true}, nil
}

// List pages through donations for staff.
func (s *DonationService) List(ctx context.Context, f repository.DonationFilter) ([]models.Donation, int64, error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, 0, models.NewValidationError("unknown status filter")
	}
	if f.Method != "" && !f.Method.Valid() {
		return nil, 0, models.NewValidationError("unknown payment method filter")
	}
	return s.repo.List(ctx, f)
}

// Get returns one donation.
func (s *DonationService) Get(ctx context.Context, id uint) (*models.Donation, error) {
	return s.repo.GetByID(ctx, id)
}

// DonationPage is the public donate page payload.
type DonationPage struct {
	Tiers       []models.DonationTier `json:"tiers"`
	BankDetails []models.BankDetail   `json:"bank_details"`
	Methods     map[string]bool       `json:"methods"`
}

// Page returns the suggested tiers, bank accounts and available methods.
func (s *DonationService) Page(ctx context.Context) (*DonationPage, error) {
	var out DonationPage
	err := cache.Aside(ctx, cache.DonationPageKey, &out, cache.DonationPageTTL, func() error {
		tiers, err := s.content.ListTiers(ctx)
		if err != nil {
			return err
		}
		banks, err := s.content.ListBankDetails(ctx)
		if err != nil {
			return err
		}
		out.Tiers, out.BankDetails = tiers, banks
		return nil
	})
	if err != nil {
		return nil, err
	}
	out.Methods = map[string]bool{
		string(models.PaymentMethodBank):   true,
		string(models.PaymentMethodEsewa):  s.gateways.checkMethod(models.PaymentMethodEsewa) == nil,
		string(models.PaymentMethodKhalti): s.gateways.checkMethod(models.PaymentMethodKhalti) == nil && s.gateways.khaltiReady() == nil,
	}
	return &out, nil
}

// SaveTier creates or updates a suggested amount.
func (s *DonationService) SaveTier(ctx context.Context, t *models.DonationTier) error {
	if t.Amount <= 0 {
		return models.NewValidationError("Amount must be greater than zero")
	}
	if t.ID != 0 {
		if _, err := s.content.GetTier(ctx, t.ID); err != nil {
			return err
		}
	}
	if err := s.content.SaveTier(ctx, t); err != nil {
		return err
	}
	cache.InvalidateDonationPage(ctx)
	return nil
}

// DeleteTier removes a suggested amount.
func (s *DonationService) DeleteTier(ctx context.Context, id uint) error {
	if err := s.content.DeleteTier(ctx, id); err != nil {
		return err
	}
	cache.InvalidateDonationPage(ctx)
	return nil
}

// SaveBankDetail creates or updates a bank account.
func (s *DonationService) SaveBankDetail(ctx context.Context, b *models.BankDetail) error {
	if err := validation.Required(
		validation.Field{Name: "bank_name", Value: b.BankName},
		validation.Field{Name: "account_name", Value: b.AccountName},
		validation.Field{Name: "account_number", Value: b.AccountNumber},
	); err != nil {
		return models.NewValidationError(err.Error())
	}
	if b.ID != 0 {
		if _, err := s.content.GetBankDetail(ctx, b.ID); err != nil {
			return err
		}
	}
	if err := s.content.SaveBankDetail(ctx, b); err != nil {
		return err
	}
	cache.InvalidateDonationPage(ctx)
	return nil
}

// DeleteBankDetail removes a bank account.
func (s *DonationService) DeleteBankDetail(ctx context.Context, id uint) error {
	if err := s.content.DeleteBankDetail(ctx, id); err != nil {
		return err
	}
	cache.InvalidateDonationPage(ctx)
	return nil
}
