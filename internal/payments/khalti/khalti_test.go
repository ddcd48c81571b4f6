package khalti

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeKhalti struct {
	t        *testing.T
	initiate func(w http.ResponseWriter, req InitiateRequest)
	lookup   func(w http.ResponseWriter, pidx string)
	calls    int
}

func (f *fakeKhalti) server() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/epayment/initiate/", func(w http.ResponseWriter, r *http.Request) {
		f.calls++
		assert.Equal(f.t, http.MethodPost, r.Method)
		assert.Equal(f.t, "Key live_secret", r.Header.Get("Authorization"))
		assert.Equal(f.t, "application/json", r.Header.Get("Content-Type"))
		var req InitiateRequest
		require.NoError(f.t, json.NewDecoder(r.Body).Decode(&req))
		f.initiate(w, req)
	})
	mux.HandleFunc("/epayment/lookup/", func(w http.ResponseWriter, r *http.Request) {
		f.calls++
		assert.Equal(f.t, "Key live_secret", r.Header.Get("Authorization"))
		var body map[string]string
		require.NoError(f.t, json.NewDecoder(r.Body).Decode(&body))
		f.lookup(w, body["pidx"])
	})
	srv := httptest.NewServer(mux)
	f.t.Cleanup(srv.Close)
	return srv
}

func newTestClient(srv *httptest.Server, timeout time.Duration) *Client {
	return New("live_secret", srv.URL+"/epayment/initiate/", srv.URL+"/epayment/lookup/", "https://nhaf.example", timeout)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestInitiate(t *testing.T) {
	fake := &fakeKhalti{t: t}
	fake.initiate = func(w http.ResponseWriter, req InitiateRequest) {
		assert.Equal(t, int64(50000), req.Amount)
		assert.Equal(t, "donate-4", req.PurchaseOrderID)
		assert.Equal(t, "NHAF Nepal Donation", req.PurchaseOrderName)
		assert.Equal(t, "https://nhaf.example", req.WebsiteURL, "client default fills website_url")
		require.NotNil(t, req.CustomerInfo)
		assert.Equal(t, "Donor", req.CustomerInfo.Name)
		writeJSON(w, http.StatusOK, map[string]string{
			"pidx":        "bZQLD9wRVWo4CdESSfuSsB",
			"payment_url": "https://test-pay.khalti.com/?pidx=bZQLD9wRVWo4CdESSfuSsB",
		})
	}
	c := newTestClient(fake.server(), time.Second)

	out, err := c.Initiate(context.Background(), InitiateRequest{
		ReturnURL:         "https://nhaf.example/return",
		Amount:            50000,
		PurchaseOrderID:   "donate-4",
		PurchaseOrderName: "NHAF Nepal Donation",
		CustomerInfo:      &CustomerInfo{Name: "Donor"},
	})
	require.NoError(t, err)
	assert.Equal(t, "bZQLD9wRVWo4CdESSfuSsB", out.Pidx)
	assert.Contains(t, out.PaymentURL, "pidx=bZQLD9wRVWo4CdESSfuSsB")
}

func TestInitiateErrors(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		c := New("", "http://unused", "http://unused", "", 0)
		assert.False(t, c.Configured())
		_, err := c.Initiate(context.Background(), InitiateRequest{})
		assert.ErrorIs(t, err, ErrNotConfigured)
		_, err = c.Lookup(context.Background(), "x")
		assert.ErrorIs(t, err, ErrNotConfigured)
	})

	t.Run("provider detail surfaces", func(t *testing.T) {
		fake := &fakeKhalti{t: t}
		fake.initiate = func(w http.ResponseWriter, _ InitiateRequest) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Invalid token."})
		}
		_, err := newTestClient(fake.server(), time.Second).Initiate(context.Background(), InitiateRequest{Amount: 1000})

		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
		assert.Equal(t, "Invalid token.", apiErr.Detail)
	})

	t.Run("body without detail", func(t *testing.T) {
		fake := &fakeKhalti{t: t}
		fake.initiate = func(w http.ResponseWriter, _ InitiateRequest) {
			writeJSON(w, http.StatusBadRequest, map[string][]string{"amount": {"Amount should be greater than Rs. 10"}})
		}
		_, err := newTestClient(fake.server(), time.Second).Initiate(context.Background(), InitiateRequest{Amount: 100})

		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Contains(t, apiErr.Detail, "Amount should be greater")
	})

	t.Run("200 without payment url", func(t *testing.T) {
		fake := &fakeKhalti{t: t}
		fake.initiate = func(w http.ResponseWriter, _ InitiateRequest) {
			writeJSON(w, http.StatusOK, map[string]string{"pidx": "abc"})
		}
		_, err := newTestClient(fake.server(), time.Second).Initiate(context.Background(), InitiateRequest{Amount: 1000})
		assert.Error(t, err)
	})

	t.Run("timeout", func(t *testing.T) {
		fake := &fakeKhalti{t: t}
		fake.initiate = func(w http.ResponseWriter, _ InitiateRequest) {
			time.Sleep(200 * time.Millisecond)
			writeJSON(w, http.StatusOK, map[string]string{"pidx": "late", "payment_url": "https://pay"})
		}
		_, err := newTestClient(fake.server(), 50*time.Millisecond).Initiate(context.Background(), InitiateRequest{Amount: 1000})
		assert.Error(t, err)
		assert.Equal(t, 1, fake.calls, "no retry after a timeout")
	})
}

func TestLookup(t *testing.T) {
	fake := &fakeKhalti{t: t}
	fake.lookup = func(w http.ResponseWriter, pidx string) {
		switch pidx {
		case "done":
			writeJSON(w, http.StatusOK, map[string]any{
				"pidx": pidx, "status": StatusCompleted, "transaction_id": "GFq9PFS7b2iYvL8Lir9oXe", "total_amount": 50000,
			})
		case "waiting":
			writeJSON(w, http.StatusOK, map[string]any{"pidx": pidx, "status": StatusPending})
		default:
			writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
		}
	}
	c := newTestClient(fake.server(), time.Second)
	ctx := context.Background()

	res, err := c.Lookup(ctx, "done")
	require.NoError(t, err)
	assert.True(t, res.Completed())
	assert.Equal(t, "GFq9PFS7b2iYvL8Lir9oXe", res.TransactionID)
	assert.Equal(t, int64(50000), res.TotalAmount)

	res, err = c.Lookup(ctx, "waiting")
	require.NoError(t, err)
	assert.False(t, res.Completed())

	_, err = c.Lookup(ctx, "missing")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Not found.", apiErr.Detail)
}
