package models

import (
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuickResponseMatches(t *testing.T) {
	tests := []struct {
		name     string
		keywords string
		message  string
		want     bool
	}{
		{name: "exact keyword", keywords: "donate", message: "donate", want: true},
		{name: "case insensitive substring", keywords: "Donate, volunteer", message: "How can I VOLUNTEER here?", want: true},
		{name: "no match", keywords: "donate,volunteer", message: "Where is your office?", want: false},
		{name: "empty keywords never match", keywords: " , ", message: "anything", want: false},
		{name: "blank keywords never match", keywords: "", message: "anything", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := QuickResponse{TriggerKeywords: tt.keywords}
			assert.Equal(t, tt.want, q.Matches(tt.message))
		})
	}
}

func TestChatSettingsAdminOnline(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s := DefaultChatSettings()
	assert.False(t, s.AdminOnline(now), "never seen")

	seen := now.Add(-4 * time.Minute)
	s.AdminLastSeen = &seen
	assert.True(t, s.AdminOnline(now))

	seen = now.Add(-5 * time.Minute)
	s.AdminLastSeen = &seen
	assert.False(t, s.AdminOnline(now), "threshold is exclusive")
}

func TestMemberInitials(t *testing.T) {
	assert.Equal(t, "", (&Member{Name: "  "}).Initials())
	assert.Equal(t, "AL", (&Member{Name: "alice"}).Initials())
	assert.Equal(t, "AB", (&Member{Name: "alice bob carter"}).Initials())
}

func TestMemberHasMemberID(t *testing.T) {
	assert.False(t, (&Member{MemberID: "   "}).HasMemberID())
	assert.True(t, (&Member{MemberID: "NHAFN-B-001-2024"}).HasMemberID())
}

func TestStatusForError(t *testing.T) {
	assert.Equal(t, fiber.StatusNotFound, StatusForError(NewNotFoundError("Member", 1)))
	assert.Equal(t, fiber.StatusBadRequest, StatusForError(fmt.Errorf("wrapped: %w", NewValidationError("bad"))))
	assert.Equal(t, fiber.StatusServiceUnavailable, StatusForError(NewUnavailableError("Khalti is not configured", nil)))
	assert.Equal(t, fiber.StatusTooManyRequests, StatusForError(NewRateLimitError("slow down")))
	assert.Equal(t, fiber.StatusInternalServerError, StatusForError(errors.New("boom")))
}

func TestRespondWithError(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return RespondWithError(c, fiber.StatusBadRequest, NewValidationError("Message required"))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
