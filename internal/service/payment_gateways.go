package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"nhaf/internal/config"
	"nhaf/internal/featureflags"
	"nhaf/internal/middleware"
	"nhaf/internal/models"
	"nhaf/internal/observability"
	"nhaf/internal/payments/esewa"
	"nhaf/internal/payments/khalti"

	"github.com/google/uuid"
)

// Gateways bundles the payment providers and where they call back to.
type Gateways struct {
	Esewa  *esewa.Client
	Khalti *khalti.Client
	Flags  *featureflags.Manager
	// CallbackBaseURL is the public base URL of this API; provider callbacks
	// are built under it.
	CallbackBaseURL string
}

// NewGateways builds the provider clients from cfg. CallbackBaseURL is the
// configured site URL.
func NewGateways(cfg *config.Config, flags *featureflags.Manager) *Gateways {
	return &Gateways{
		Esewa:           esewa.New(cfg.EsewaMerchantID, cfg.EsewaSecretKey, cfg.EsewaPaymentURL),
		Khalti:          khalti.New(cfg.KhaltiSecretKey, cfg.KhaltiAPIURL, cfg.KhaltiLookupURL, cfg.SiteURL, cfg.PaymentTimeout()),
		Flags:           flags,
		CallbackBaseURL: cfg.SiteURL,
	}
}

// Checkout tells the client how to continue a payment.
type Checkout struct {
	Method models.PaymentMethod `json:"method"`
	// BankDetails is set for offline transfers.
	BankDetails []models.BankDetail `json:"bank_details,omitempty"`
	// EsewaURL and EsewaForm describe the auto-submitting form for eSewa.
	EsewaURL  string            `json:"esewa_url,omitempty"`
	EsewaForm map[string]string `json:"esewa_form,omitempty"`
	// RedirectURL is the Khalti payment page.
	RedirectURL string `json:"redirect_url,omitempty"`
}

// PaymentOutcome is the result of a gateway callback.
type PaymentOutcome struct {
	Status  models.PaymentStatus `json:"status"`
	Changed bool                 `json:"changed"`
	// Reason is a user-facing explanation when the payment did not complete.
	Reason string `json:"reason,omitempty"`
}

// Completed reports whether the record is settled as completed.
func (o *PaymentOutcome) Completed() bool {
	return o.Status == models.PaymentStatusCompleted
}

const (
	reasonNotCompleted = "Payment was not completed."
	reasonInvalid      = "Invalid payment response."
)

// checkMethod rejects unknown and switched-off payment methods.
func (g *Gateways) checkMethod(m models.PaymentMethod) error {
	if !m.Valid() {
		return models.NewValidationError("payment_method must be esewa, khalti or bank")
	}
	if m == models.PaymentMethodBank || g.Flags == nil {
		return nil
	}
	flag := featureflags.Esewa
	if m == models.PaymentMethodKhalti {
		flag = featureflags.Khalti
	}
	if !g.Flags.Enabled(flag) {
		return models.NewUnavailableError(fmt.Sprintf("%s payments are currently disabled. Please use another method.", methodLabel(m)), nil)
	}
	return nil
}

// khaltiReady fails with a descriptive error when Khalti has no credentials.
func (g *Gateways) khaltiReady() error {
	if g.Khalti == nil || !g.Khalti.Configured() {
		return models.NewUnavailableError("Khalti payment is not configured. Please use eSewa or Bank Transfer.", khalti.ErrNotConfigured)
	}
	return nil
}

func (g *Gateways) callbackURL(format string, args ...any) string {
	return strings.TrimRight(g.CallbackBaseURL, "/") + fmt.Sprintf(format, args...)
}

// esewaAmount rejects amounts eSewa would charge differently from what we record.
func esewaAmount(amount float64) error {
	if !esewa.WholeRupees(amount) {
		return models.NewValidationError("eSewa payments must be a whole number of rupees")
	}
	return nil
}

// esewaCheckout signs a form for token.
func (g *Gateways) esewaCheckout(amount float64, token, successPath, failurePath string) *Checkout {
	return &Checkout{
		Method:    models.PaymentMethodEsewa,
		EsewaURL:  g.Esewa.PaymentURL(),
		EsewaForm: g.Esewa.FormData(amount, g.callbackURL(successPath, token), g.callbackURL(failurePath, token), token),
	}
}

// initiateKhalti starts a Khalti payment. Provider failures become an
// unavailable error carrying the provider's reason.
func (g *Gateways) initiateKhalti(ctx context.Context, req khalti.InitiateRequest) (*khalti.InitiateResponse, error) {
	res, err := g.Khalti.Initiate(ctx, req)
	if err != nil {
		middleware.Logger.WarnContext(ctx, "khalti initiate failed",
			slog.String("order_id", req.PurchaseOrderID),
			slog.String("error", err.Error()),
		)
		observability.PaymentEvents.WithLabelValues(khalti.Gateway, "initiate_failed").Inc()
		return nil, models.NewUnavailableError("Khalti error: "+khaltiReason(err), err)
	}
	return res, nil
}

// verifyKhalti asks Khalti for the authoritative status of pidx. A failed
// lookup is reported as "not completed" rather than an error.
func (g *Gateways) verifyKhalti(ctx context.Context, pidx string) *khalti.LookupResponse {
	res, err := g.Khalti.Lookup(ctx, pidx)
	if err != nil {
		middleware.Logger.WarnContext(ctx, "khalti lookup failed",
			slog.String("pidx", pidx),
			slog.String("error", err.Error()),
		)
		return nil
	}
	return res
}

// decodeEsewa verifies the optional signed data eSewa sends to the success URL.
// It returns the provider reference, or ok=false when the payload is present
// but does not prove a completed payment for token.
func (g *Gateways) decodeEsewa(ctx context.Context, token, refID, data string) (string, bool) {
	if data == "" {
		if refID != "" {
			return refID, true
		}
		return token, true
	}
	cb, err := g.Esewa.DecodeCallback(data)
	if err != nil {
		middleware.Logger.WarnContext(ctx, "esewa callback rejected",
			slog.String("token", token),
			slog.String("error", err.Error()),
		)
		return "", false
	}
	if cb.TransactionUUID != token || !cb.Completed() {
		return "", false
	}
	if cb.TransactionCode != "" {
		return cb.TransactionCode, true
	}
	return token, true
}

func khaltiReason(err error) string {
	var apiErr *khalti.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Detail
	}
	if errors.Is(err, khalti.ErrNotConfigured) {
		return "Khalti not configured"
	}
	return "payment provider unreachable"
}

// shortToken returns 8 random hex characters.
func shortToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

func toPaisa(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func methodLabel(m models.PaymentMethod) string {
	switch m {
	case models.PaymentMethodEsewa:
		return "eSewa"
	case models.PaymentMethodKhalti:
		return "Khalti"
	case models.PaymentMethodBank:
		return "Bank Transfer"
	default:
		return string(m)
	}
}
