package server

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthChecks(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.do(t, request{method: http.MethodGet, path: "/health/live"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	live := decode[map[string]any](t, resp)
	assert.Equal(t, "up", live["status"])

	resp = ts.do(t, request{method: http.MethodGet, path: "/health/ready"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	ready := decode[map[string]any](t, resp)
	assert.Equal(t, "healthy", ready["status"])

	ts.mr.Close()
	resp = ts.do(t, request{method: http.MethodGet, path: "/health/ready"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	ready = decode[map[string]any](t, resp)
	assert.Equal(t, "degraded", ready["status"])
	assert.Equal(t, "unhealthy", ready["checks"].(map[string]any)["redis"])
}

func TestResponsesCarrySecurityHeaders(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.do(t, request{method: http.MethodGet, path: "/api/settings"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "nosniff", resp.Header.Get(fiber.HeaderXContentTypeOptions))
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXFrameOptions))
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
}
