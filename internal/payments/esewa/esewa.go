// Package esewa builds signed redirect forms for the eSewa ePay v2 gateway and
// verifies the payloads eSewa sends back to the success URL.
package esewa

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
)

// SignedFieldNames lists the form fields covered by the outbound signature, in order.
const SignedFieldNames = "total_amount,transaction_uuid,product_code"

// StatusComplete is the callback status of a settled payment.
const StatusComplete = "COMPLETE"

var (
	// ErrInvalidSignature is returned when a callback payload fails verification.
	ErrInvalidSignature = errors.New("esewa: invalid callback signature")
	// ErrMalformedCallback is returned when the callback data cannot be decoded.
	ErrMalformedCallback = errors.New("esewa: malformed callback data")
)

// Client signs forms for one merchant.
type Client struct {
	productCode string
	secret      []byte
	paymentURL  string
}

// New creates a Client for merchantID. paymentURL is where the payer's browser posts the form.
func New(merchantID, secret, paymentURL string) *Client {
	return &Client{
		productCode: merchantID,
		secret:      []byte(secret),
		paymentURL:  paymentURL,
	}
}

// ProductCode returns the merchant code sent as product_code.
func (c *Client) ProductCode() string {
	return c.productCode
}

// PaymentURL returns the form action URL.
func (c *Client) PaymentURL() string {
	return c.paymentURL
}

// Signature returns the base64 HMAC-SHA256 of the canonical
// "total_amount=..,transaction_uuid=..,product_code=.." message.
func (c *Client) Signature(total, token, productCode string) string {
	msg := fmt.Sprintf("total_amount=%s,transaction_uuid=%s,product_code=%s", total, token, productCode)
	return c.sign(msg)
}

func (c *Client) sign(msg string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(msg))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// WholeRupees reports whether amount can be charged without rounding.
func WholeRupees(amount float64) bool {
	return amount == math.Trunc(amount)
}

// FormatAmount renders amount as whole rupees, the way eSewa expects it.
func FormatAmount(amount float64) string {
	return fmt.Sprintf("%d", int64(math.Trunc(amount)))
}

// FormData returns the fields the payer's browser must post to PaymentURL.
func (c *Client) FormData(amount float64, successURL, failureURL, token string) map[string]string {
	total := FormatAmount(amount)
	return map[string]string{
		"amount":                  total,
		"tax_amount":              "0",
		"total_amount":            total,
		"transaction_uuid":        token,
		"product_code":            c.productCode,
		"product_service_charge":  "0",
		"product_delivery_charge": "0",
		"success_url":             successURL,
		"failure_url":             failureURL,
		"signed_field_names":      SignedFieldNames,
		"signature":               c.Signature(total, token, c.productCode),
	}
}

// Callback is the decoded payload eSewa appends to the success URL as ?data=.
type Callback struct {
	TransactionCode string
	Status          string
	TotalAmount     string
	TransactionUUID string
	ProductCode     string
}

// Completed reports whether eSewa settled the payment.
func (cb *Callback) Completed() bool {
	return strings.EqualFold(cb.Status, StatusComplete)
}

// DecodeCallback decodes eSewa's base64 JSON data parameter and verifies its
// signature over the fields named in signed_field_names.
func (c *Client) DecodeCallback(data string) (*Callback, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(data))
	if err != nil {
		// Some proxies hand the value through URL-safe.
		if raw, err = base64.URLEncoding.DecodeString(strings.TrimSpace(data)); err != nil {
			return nil, ErrMalformedCallback
		}
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return nil, ErrMalformedCallback
	}

	names := fieldString(fields["signed_field_names"])
	signature := fieldString(fields["signature"])
	if names == "" || signature == "" {
		return nil, ErrInvalidSignature
	}

	parts := make([]string, 0, 8)
	for _, name := range strings.Split(names, ",") {
		name = strings.TrimSpace(name)
		parts = append(parts, name+"="+fieldString(fields[name]))
	}
	expected := c.sign(strings.Join(parts, ","))
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return nil, ErrInvalidSignature
	}

	cb := &Callback{
		TransactionCode: fieldString(fields["transaction_code"]),
		Status:          fieldString(fields["status"]),
		TotalAmount:     fieldString(fields["total_amount"]),
		TransactionUUID: fieldString(fields["transaction_uuid"]),
		ProductCode:     fieldString(fields["product_code"]),
	}
	if cb.ProductCode != "" && cb.ProductCode != c.productCode {
		return nil, fmt.Errorf("%w: product code %q", ErrInvalidSignature, cb.ProductCode)
	}
	return cb, nil
}

// fieldString renders a decoded JSON value exactly as eSewa signed it.
func fieldString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprint(t)
	}
}
