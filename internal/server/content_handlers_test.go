package server

import (
	"fmt"
	"net/http"
	"testing"

	"nhaf/internal/models"
	"nhaf/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentAdminRequiresAuth(t *testing.T) {
	ts := newTestServer(t)

	for _, path := range []string{
		"/api/admin/content/programs",
		"/api/admin/content/navigation",
		"/api/admin/content/organization",
	} {
		resp := ts.do(t, request{method: http.MethodGet, path: path})
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, path)
	}
	resp := ts.do(t, request{method: http.MethodPost, path: "/api/admin/content/navigation/restore-defaults"})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProgramPublishing(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.staff(t, "editor", false)

	resp := ts.do(t, request{method: http.MethodPost, path: "/api/admin/content/program-categories", token: token,
		body: map[string]any{"name": "Health"}})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	tag := decode[models.ProgramCategory](t, resp)

	resp = ts.do(t, request{method: http.MethodPost, path: "/api/admin/content/programs", token: token,
		body: map[string]any{"title": "Free Health Camp", "description": "Checkups in Lalitpur.",
			"event_date": "2025-05-01T00:00:00Z", "category": "upcoming", "category_tag_id": tag.ID}})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	camp := decode[models.Program](t, resp)
	assert.Equal(t, "free-health-camp", camp.Slug)

	resp = ts.do(t, request{method: http.MethodPost, path: "/api/admin/content/programs", token: token,
		body: map[string]any{"title": "Blood Drive", "event_date": "2024-11-01T00:00:00Z"}})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "description is required")

	resp = ts.do(t, request{method: http.MethodGet, path: "/api/programs?category=upcoming"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	page := decode[service.ProgramsPage](t, resp)
	require.Len(t, page.Programs, 1)
	require.NotNil(t, page.Programs[0].CategoryTag)
	assert.Equal(t, "Health", page.Programs[0].CategoryTag.Name)

	resp = ts.do(t, request{method: http.MethodGet, path: "/api/programs?category=someday"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = ts.do(t, request{method: http.MethodPost, path: "/api/admin/content/gallery", token: token,
		body: map[string]any{"title": "Queue at the camp", "image": "gallery/queue.jpg", "program_id": camp.ID, "is_active": true}})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = ts.do(t, request{method: http.MethodGet, path: "/api/programs/free-health-camp"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	detail := decode[service.ProgramDetail](t, resp)
	assert.Equal(t, camp.ID, detail.ID)
	assert.Len(t, detail.Gallery, 1)

	resp = ts.do(t, request{method: http.MethodDelete, path: fmt.Sprintf("/api/admin/content/programs/%d", camp.ID), token: token})
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = ts.do(t, request{method: http.MethodGet, path: "/api/programs/free-health-camp"})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestNavigationAdmin(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.staff(t, "editor", false)

	resp := ts.do(t, request{method: http.MethodPost, path: "/api/admin/content/navigation/restore-defaults", token: token})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	restored := decode[struct {
		Created int `json:"created"`
	}](t, resp)
	assert.Equal(t, 8, restored.Created, "seven top-level entries and the gallery submenu")

	resp = ts.do(t, request{method: http.MethodGet, path: "/api/navigation"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	menu := decode[[]models.NavItem](t, resp)
	require.Len(t, menu, 7)
	assert.Equal(t, "Home", menu[0].Title)

	resp = ts.do(t, request{method: http.MethodPost, path: "/api/admin/content/navigation", token: token,
		body: map[string]any{"title": "Blog", "url": "javascript:alert(1)", "is_active": true}})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	ids := make([]uint, 0, len(menu))
	for i := len(menu) - 1; i >= 0; i-- {
		ids = append(ids, menu[i].ID)
	}
	resp = ts.do(t, request{method: http.MethodPost, path: "/api/admin/content/navigation/reorder", token: token,
		body: map[string]any{"ids": ids}})
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = ts.do(t, request{method: http.MethodGet, path: "/api/navigation"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	menu = decode[[]models.NavItem](t, resp)
	require.Len(t, menu, 7)
	assert.Equal(t, "Donate", menu[0].Title, "reorder invalidates the cached menu")

	resp = ts.do(t, request{method: http.MethodPost, path: "/api/admin/content/navigation/restore-defaults", token: token})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	restored = decode[struct {
		Created int `json:"created"`
	}](t, resp)
	assert.Zero(t, restored.Created)
}

func TestSitePagesAndCollaborations(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.staff(t, "editor", false)

	resp := ts.do(t, request{method: http.MethodPut, path: "/api/admin/content/organization", token: token,
		body: map[string]any{"mission": "Healthy Nepal", "vision": "Care for all"}})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = ts.do(t, request{method: http.MethodPost, path: "/api/admin/content/founders", token: token,
		body: map[string]any{"name": "Sita Sharma", "title": "Founder"}})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = ts.do(t, request{method: http.MethodGet, path: "/api/pages/about"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	about := decode[service.AboutPage](t, resp)
	require.NotNil(t, about.Organization)
	assert.Equal(t, "Healthy Nepal", about.Organization.Mission)
	assert.Len(t, about.Founders, 1)

	resp = ts.do(t, request{method: http.MethodPut, path: "/api/admin/content/contact-info", token: token,
		body: map[string]any{"email": "not-an-email"}})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = ts.do(t, request{method: http.MethodGet, path: "/api/pages/contact"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = ts.do(t, request{method: http.MethodGet, path: "/api/pages/home"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = ts.do(t, request{method: http.MethodPost, path: "/api/admin/content/collaborations", token: token,
		body: map[string]any{"organization_name": "Tribhuvan University", "short_description": "Research partner",
			"partnership_type": "mou", "is_active": true}})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	tu := decode[models.Collaboration](t, resp)

	resp = ts.do(t, request{method: http.MethodPost, path: "/api/admin/content/collaborations", token: token,
		body: map[string]any{"organization_name": "Red Cross", "short_description": "Relief", "status": "paused"}})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = ts.do(t, request{method: http.MethodGet, path: "/api/collaborations?search=tribhuvan"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	list := decode[service.CollaborationPage](t, resp)
	assert.Equal(t, 1, list.Total)

	resp = ts.do(t, request{method: http.MethodGet, path: fmt.Sprintf("/api/collaborations/%d", tu.ID)})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	detail := decode[service.CollaborationDetail](t, resp)
	assert.Equal(t, "Tribhuvan University", detail.OrganizationName)

	resp = ts.do(t, request{method: http.MethodGet, path: "/api/collaborations/999"})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
