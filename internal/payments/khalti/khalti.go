// Package khalti talks to the Khalti ePayment v2 API: initiate a payment and
// verify it by lookup. Calls are never retried.
package khalti

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"nhaf/internal/observability"

	"go.opentelemetry.io/otel/attribute"
)

// Gateway is the label used in metrics and spans.
const Gateway = "khalti"

// Lookup statuses reported by Khalti.
const (
	StatusCompleted    = "Completed"
	StatusPending      = "Pending"
	StatusInitiated    = "Initiated"
	StatusRefunded     = "Refunded"
	StatusExpired      = "Expired"
	StatusUserCanceled = "User canceled"
)

// ErrNotConfigured is returned when no secret key is set.
var ErrNotConfigured = errors.New("Khalti is not configured")

// APIError is a non-200 answer from Khalti.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("khalti: %s (HTTP %d)", e.Detail, e.StatusCode)
}

// CustomerInfo is the optional payer block of an initiate request.
type CustomerInfo struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// InitiateRequest starts a payment. Amount is in paisa.
type InitiateRequest struct {
	ReturnURL         string        `json:"return_url"`
	WebsiteURL        string        `json:"website_url"`
	Amount            int64         `json:"amount"`
	PurchaseOrderID   string        `json:"purchase_order_id"`
	PurchaseOrderName string        `json:"purchase_order_name"`
	CustomerInfo      *CustomerInfo `json:"customer_info,omitempty"`
}

// InitiateResponse carries the redirect target and the payment index.
type InitiateResponse struct {
	Pidx       string `json:"pidx"`
	PaymentURL string `json:"payment_url"`
	ExpiresAt  string `json:"expires_at"`
}

// LookupResponse is Khalti's view of a payment.
type LookupResponse struct {
	Pidx          string `json:"pidx"`
	TotalAmount   int64  `json:"total_amount"`
	Status        string `json:"status"`
	TransactionID string `json:"transaction_id"`
	Fee           int64  `json:"fee"`
	Refunded      bool   `json:"refunded"`
}

// Completed reports whether the lookup confirms the payment.
func (r *LookupResponse) Completed() bool {
	return r.Status == StatusCompleted
}

// Client is a Khalti API client bound to one merchant secret.
type Client struct {
	secret      string
	initiateURL string
	lookupURL   string
	websiteURL  string
	http        *http.Client
}

// New creates a Client. timeout bounds every call; zero means 10 seconds.
func New(secret, initiateURL, lookupURL, websiteURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		secret:      secret,
		initiateURL: initiateURL,
		lookupURL:   lookupURL,
		websiteURL:  websiteURL,
		http:        &http.Client{Timeout: timeout},
	}
}

// Configured reports whether a secret key is set.
func (c *Client) Configured() bool {
	return c != nil && c.secret != ""
}

// Initiate registers a payment and returns where to send the payer.
func (c *Client) Initiate(ctx context.Context, req InitiateRequest) (*InitiateResponse, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}
	if req.WebsiteURL == "" {
		req.WebsiteURL = c.websiteURL
	}
	if req.CustomerInfo == nil {
		req.CustomerInfo = &CustomerInfo{}
	}

	var out InitiateResponse
	if err := c.call(ctx, "initiate", c.initiateURL, req, &out); err != nil {
		return nil, err
	}
	if out.PaymentURL == "" {
		return nil, &APIError{StatusCode: http.StatusOK, Detail: "response has no payment_url"}
	}
	return &out, nil
}

// Lookup asks Khalti for the authoritative status of pidx.
func (c *Client) Lookup(ctx context.Context, pidx string) (*LookupResponse, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}
	var out LookupResponse
	if err := c.call(ctx, "lookup", c.lookupURL, map[string]string{"pidx": pidx}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) call(ctx context.Context, operation, url string, in, out any) (err error) {
	ctx, span := observability.GetTraceLayer().TraceGatewayCall(ctx, Gateway, operation)
	start := time.Now()
	defer func() {
		observability.ObserveGatewayCall(Gateway, operation, start, err)
		observability.EndSpan(span, err)
	}()

	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("khalti: marshal %s request: %w", operation, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("khalti: build %s request: %w", operation, err)
	}
	req.Header.Set("Authorization", "Key "+c.secret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("khalti: %s: %w", operation, err)
	}
	defer func() { _ = resp.Body.Close() }()
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("khalti: read %s response: %w", operation, err)
	}
	if resp.StatusCode != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode, Detail: errorDetail(raw)}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("khalti: decode %s response: %w", operation, err)
	}
	return nil
}

// errorDetail extracts Khalti's "detail" message, falling back to the raw body.
func errorDetail(raw []byte) string {
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Detail != "" {
		return body.Detail
	}
	s := string(bytes.TrimSpace(raw))
	if len(s) > 300 {
		s = s[:300]
	}
	if s == "" {
		s = "empty response"
	}
	return s
}
