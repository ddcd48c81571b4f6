package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"nhaf/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enableAutoResponse(t *testing.T, env *testEnv, defaultID *uint, message string) {
	t.Helper()
	cfg := models.DefaultChatSettings()
	cfg.AutoResponseEnabled = true
	cfg.DefaultQuickResponseID = defaultID
	cfg.AutoResponseMessage = message
	_, err := env.chat.UpdateSettings(context.Background(), cfg)
	require.NoError(t, err)
}

func addQuickResponse(t *testing.T, env *testEnv, message, keywords string, order int, active bool) *models.QuickResponse {
	t.Helper()
	q := &models.QuickResponse{Message: message, TriggerKeywords: keywords, Order: order, IsActive: active}
	require.NoError(t, env.chat.SaveQuickResponse(context.Background(), q))
	return q
}

func TestChatSendStartsSession(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	out, err := env.chat.Send(ctx, SendInput{Message: "  Namaste  "})
	require.NoError(t, err)
	assert.NotEmpty(t, out.SessionID)
	assert.Equal(t, "Anonymous", out.Message.SenderName)
	assert.Equal(t, "Namaste", out.Message.Message)
	assert.Nil(t, out.Reply, "auto response is off by default")

	again, err := env.chat.Send(ctx, SendInput{SessionID: out.SessionID, Name: "Sita", Message: "Hello?"})
	require.NoError(t, err)
	assert.Equal(t, out.SessionID, again.SessionID)

	msgs, err := env.chat.Poll(ctx, out.SessionID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "Namaste", msgs[0].Message)
}

func TestChatSendNotifiesStaffOncePerSession(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	out, err := env.chat.Send(ctx, SendInput{Name: "Sita", Message: "Hello"})
	require.NoError(t, err)
	_, err = env.chat.Send(ctx, SendInput{SessionID: out.SessionID, Name: "Sita", Message: "Is anyone there?"})
	require.NoError(t, err)
	_, err = env.chat.Reply(ctx, out.SessionID, "admin", "Yes, how can we help?")
	require.NoError(t, err)

	got := env.notificationsOf(t, models.NotificationContactMessage)
	require.Len(t, got, 1)
	assert.Equal(t, "New chat message from Sita", got[0].Title)
	assert.Equal(t, "Hello", got[0].Message)
	assert.Equal(t, LinkChat, got[0].Link)

	_, err = env.chat.Send(ctx, SendInput{Message: strings.Repeat("ab", 80)})
	require.NoError(t, err)
	got = env.notificationsOf(t, models.NotificationContactMessage)
	require.Len(t, got, 2)
	assert.Equal(t, "New chat message from Anonymous", got[1].Title)
	assert.Len(t, got[1].Message, 100)
}

func TestChatSendValidation(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.chat.Send(context.Background(), SendInput{Message: "   "})
	assertValidationError(t, err)
	_, err = env.chat.Send(context.Background(), SendInput{Message: "hi", Email: "bad"})
	assertValidationError(t, err)
}

func TestChatDisabled(t *testing.T) {
	t.Run("settings", func(t *testing.T) {
		env := newTestEnv(t)
		cfg := models.DefaultChatSettings()
		cfg.IsEnabled = false
		_, err := env.chat.UpdateSettings(context.Background(), cfg)
		require.NoError(t, err)

		_, err = env.chat.Send(context.Background(), SendInput{Message: "hi"})
		assertErrorCode(t, err, models.CodeUnavailable)
	})

	t.Run("feature flag", func(t *testing.T) {
		env := newTestEnvWithFlags(t, "live_chat=off")
		_, err := env.chat.Send(context.Background(), SendInput{Message: "hi"})
		assertErrorCode(t, err, models.CodeUnavailable)

		status, err := env.chat.Status(context.Background())
		require.NoError(t, err)
		assert.False(t, status.Enabled)
	})
}

func TestChatAutoResponseSelection(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	donate := addQuickResponse(t, env, "You can donate at /donate.", "donate, Donation", 1, true)
	addQuickResponse(t, env, "Volunteer form: /volunteer", "volunteer", 0, true)
	addQuickResponse(t, env, "Inactive reply", "donate", 0, false)
	fallback := addQuickResponse(t, env, "We will get back to you.", "", 5, true)
	chosenDefault := addQuickResponse(t, env, "Office hours are 10-5.", "hours", 9, true)

	t.Run("keyword match is case insensitive", func(t *testing.T) {
		enableAutoResponse(t, env, nil, "")
		out, err := env.chat.Send(ctx, SendInput{Message: "How do I make a DONATION?"})
		require.NoError(t, err)
		require.NotNil(t, out.Reply)
		assert.Equal(t, donate.Message, out.Reply.Message)
		assert.Equal(t, models.ChatSenderAdmin, out.Reply.SenderType)
		assert.Equal(t, "System", out.Reply.SenderName)
	})

	t.Run("first match by order wins", func(t *testing.T) {
		out, err := env.chat.Send(ctx, SendInput{Message: "volunteer or donate?"})
		require.NoError(t, err)
		assert.Equal(t, "Volunteer form: /volunteer", out.Reply.Message)
	})

	t.Run("configured default", func(t *testing.T) {
		enableAutoResponse(t, env, &chosenDefault.ID, "")
		out, err := env.chat.Send(ctx, SendInput{Message: "something else"})
		require.NoError(t, err)
		assert.Equal(t, chosenDefault.Message, out.Reply.Message)
	})

	t.Run("keyword-less fallback", func(t *testing.T) {
		enableAutoResponse(t, env, nil, "")
		out, err := env.chat.Send(ctx, SendInput{Message: "something else"})
		require.NoError(t, err)
		assert.Equal(t, fallback.Message, out.Reply.Message)
	})

	t.Run("settings message", func(t *testing.T) {
		require.NoError(t, env.chat.DeleteQuickResponse(ctx, fallback.ID))
		enableAutoResponse(t, env, nil, "Custom hello")
		out, err := env.chat.Send(ctx, SendInput{SessionID: "s-1", Message: "something else"})
		require.NoError(t, err)
		assert.Equal(t, "Custom hello", out.Reply.Message)

		msgs, err := env.chat.Poll(ctx, "s-1")
		require.NoError(t, err)
		assert.Len(t, msgs, 2, "exactly one reply per message")
	})
}

func TestChatConsole(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	env.chat.now = func() time.Time { return now }

	_, err := env.chat.Send(ctx, SendInput{SessionID: "a", Name: "Sita", Email: "sita@example.org", Message: "first"})
	require.NoError(t, err)
	_, err = env.chat.Send(ctx, SendInput{SessionID: "a", Name: "Someone else", Message: "second"})
	require.NoError(t, err)

	status, err := env.chat.Status(ctx)
	require.NoError(t, err)
	assert.False(t, status.AdminOnline)

	sessions, err := env.chat.Sessions(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "Sita", sessions[0].Name)
	assert.Equal(t, "sita@example.org", sessions[0].Email)
	assert.Equal(t, 2, sessions[0].Unread)

	msgs, err := env.chat.ViewSession(ctx, "a")
	require.NoError(t, err)
	assert.Len(t, msgs, 2)
	unread, err := env.chat.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, unread)

	reply, err := env.chat.Reply(ctx, "a", "admin", "Hi Sita")
	require.NoError(t, err)
	assert.Equal(t, "admin", reply.SenderName)
	assert.Equal(t, models.ChatSenderAdmin, reply.SenderType)

	status, err = env.chat.Status(ctx)
	require.NoError(t, err)
	assert.True(t, status.AdminOnline)

	env.chat.now = func() time.Time { return now.Add(6 * time.Minute) }
	status, err = env.chat.Status(ctx)
	require.NoError(t, err)
	assert.False(t, status.AdminOnline)
}

func TestChatSettingsKeepLastSeen(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	seen := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, env.settingsRepo.TouchAdminLastSeen(ctx, seen))

	cfg := models.DefaultChatSettings()
	cfg.ChatMode = models.ChatModeWhatsApp
	_, err := env.chat.UpdateSettings(ctx, cfg)
	assertValidationError(t, err)

	cfg.WhatsappPhone = "9779800000000"
	saved, err := env.chat.UpdateSettings(ctx, cfg)
	require.NoError(t, err)
	require.NotNil(t, saved.AdminLastSeen)
	assert.True(t, saved.AdminLastSeen.Equal(seen))

	cfg.DefaultQuickResponseID = ptr(uint(404))
	_, err = env.chat.UpdateSettings(ctx, cfg)
	assertErrorCode(t, err, models.CodeNotFound)
}

func TestQuickResponseReorder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	a := addQuickResponse(t, env, "A", "a", 0, true)
	b := addQuickResponse(t, env, "B", "b", 1, true)

	require.NoError(t, env.chat.ReorderQuickResponses(ctx, []uint{b.ID, a.ID}))
	items, err := env.chat.ListQuickResponses(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "B", items[0].Message)

	assertValidationError(t, env.chat.ReorderQuickResponses(ctx, nil))
	assertValidationError(t, env.chat.SaveQuickResponse(ctx, &models.QuickResponse{Message: " "}))
}
