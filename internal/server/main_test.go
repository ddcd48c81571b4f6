package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"nhaf/internal/cache"
	"nhaf/internal/config"
	"nhaf/internal/middleware"
	"nhaf/internal/models"
	"nhaf/internal/service"
	"nhaf/internal/testutil"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

const (
	testJWTSecret   = "test-secret-key-12345678901234567890123456789012"
	testPassword    = "Namaste-Nepal-2025!"
	testReturnURL   = "http://localhost:5173/donate"
	testEsewaSecret = "8gBm/:&EnhH.1/q"
)

func TestMain(m *testing.M) {
	_ = os.Setenv("APP_ENV", "test")
	os.Exit(m.Run())
}

type testServer struct {
	*Server
	app   *fiber.App
	mr    *miniredis.Miniredis
	store *testutil.MemoryStorage
}

func testConfig() *config.Config {
	return &config.Config{
		Env:              "test",
		JWTSecret:        testJWTSecret,
		AllowedOrigins:   "http://localhost:5173",
		SiteURL:          "https://api.nhaf.example",
		MemberIDPrefix:   "NHAFN",
		PaymentReturnURL: testReturnURL,
		EsewaMerchantID:  "EPAYTEST",
		EsewaSecretKey:   testEsewaSecret,
		EsewaPaymentURL:  "https://rc-epay.esewa.com.np/api/epay/main/v2/form",
		StorageBackend:   "memory",
	}
}

// newTestServer wires the full route table against SQLite and miniredis.
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	previous := cache.GetClient()
	cache.SetClient(rdb)
	t.Cleanup(func() { cache.SetClient(previous) })

	store := testutil.NewMemoryStorage()
	s := newServer(testConfig(), testutil.NewSQLiteDB(t), rdb, store)

	app := fiber.New()
	s.SetupMiddleware(app)
	s.SetupRoutes(app)
	return &testServer{Server: s, app: app, mr: mr, store: store}
}

// staff creates an account and returns it with a signed token.
func (ts *testServer) staff(t *testing.T, username string, admin bool) (*models.User, string) {
	t.Helper()
	user, err := ts.userService.CreateStaff(t.Context(), service.CreateStaffInput{
		Username: username,
		Email:    username + "@nhaf.example",
		Password: testPassword,
		IsAdmin:  admin,
	})
	require.NoError(t, err)
	token, _, err := middleware.IssueToken(testJWTSecret, user.ID, user.Username)
	require.NoError(t, err)
	return user, token
}

type request struct {
	method string
	path   string
	body   any
	token  string
	header map[string]string
}

func (ts *testServer) do(t *testing.T, r request) *http.Response {
	t.Helper()
	var body io.Reader
	if r.body != nil {
		raw, err := json.Marshal(r.body)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(r.method, r.path, body)
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}
	for k, v := range r.header {
		req.Header.Set(k, v)
	}
	resp, err := ts.app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}
