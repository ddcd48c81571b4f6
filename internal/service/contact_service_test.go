package service

import (
	"context"
	"strings"
	"testing"

	"nhaf/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactSubmit(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.contact.Submit(ctx, ContactInput{Name: "Sita", Email: "sita@example.org", Subject: "Partnership", Message: "Hello"})
	require.NoError(t, err)
	_, err = env.contact.Submit(ctx, ContactInput{Name: "Ram", Email: "ram@example.org", Message: strings.Repeat("a", 150)})
	require.NoError(t, err)

	got := env.notificationsOf(t, models.NotificationContactMessage)
	require.Len(t, got, 2)
	assert.Equal(t, "New message from Sita", got[0].Title)
	assert.Equal(t, "Partnership", got[0].Message)
	assert.Equal(t, strings.Repeat("a", 100), got[1].Message)
	assert.Equal(t, LinkContact, got[1].Link)

	items, total, err := env.contact.List(ctx, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, items, 2)
}

func TestContactValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	_, err := env.contact.Submit(ctx, ContactInput{Name: "Sita", Email: "sita@example.org"})
	assertValidationError(t, err)
	_, err = env.contact.Submit(ctx, ContactInput{Name: "Sita", Email: "sita", Message: "hi"})
	assertValidationError(t, err)
}
