package service

import (
	"context"
	"testing"

	"nhaf/internal/models"
	"nhaf/internal/notifications"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedVolunteer(t *testing.T, env *testEnv, name, email string) *models.VolunteerApplication {
	t.Helper()
	app := &models.VolunteerApplication{
		Name:          name,
		ContactNumber: "9800000000",
		Email:         email,
		Location:      "Kathmandu",
		Availability:  "Weekends",
		ProfileImage:  "volunteers/2025/03/face.png",
		Status:        models.ApplicationStatusPending,
	}
	require.NoError(t, env.apps.CreateVolunteer(context.Background(), app))
	return app
}

func seedMembership(t *testing.T, env *testEnv, name, email string, tier models.MembershipTier) *models.MembershipApplication {
	t.Helper()
	app := &models.MembershipApplication{
		Name:          name,
		Email:         email,
		Phone:         "9811111111",
		MemberType:    tier,
		PaymentMethod: models.PaymentMethodBank,
		PaymentStatus: models.PaymentStatusPending,
		Status:        models.ApplicationStatusPending,
	}
	require.NoError(t, env.apps.CreateMembership(context.Background(), app))
	return app
}

func countMembers(t *testing.T, env *testEnv) int64 {
	t.Helper()
	var n int64
	require.NoError(t, env.db.Model(&models.Member{}).Count(&n).Error)
	return n
}

func TestApproveVolunteerPublishesMember(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	app := seedVolunteer(t, env, "Sita Rai", "sita@example.org")

	res, err := env.promotion.ApproveVolunteer(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusApproved, res.Status)
	assert.Equal(t, models.ApplicationStatusPending, res.PreviousStatus)
	assert.Empty(t, res.PromotionError)
	require.NotNil(t, res.Member)

	m := res.Member
	assert.Equal(t, "Sita Rai", m.Name)
	assert.Equal(t, "Volunteer", m.Role)
	assert.Equal(t, models.MemberTypeVolunteer, m.MemberType)
	assert.Equal(t, "sita@example.org", m.Email)
	assert.Equal(t, "9800000000", m.Phone)
	assert.Equal(t, "volunteers/2025/03/face.png", m.Photo)
	assert.True(t, m.IsActive)
	assert.Equal(t, "NHAFN-M-001-2025", m.MemberID)

	stored, err := env.apps.GetVolunteer(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusApproved, stored.Status)

	approved := env.notificationsOf(t, models.NotificationMemberApproved)
	require.Len(t, approved, 1)
	assert.Equal(t, "Volunteer approved: Sita Rai", approved[0].Title)
	assert.Equal(t, LinkMembers, approved[0].Link)
	assert.Equal(t, 1, env.publisher.count(notifications.EventApplicationUpdated))
}

func TestApproveTwiceKeepsOneMember(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	app := seedMembership(t, env, "Hari Thapa", "hari@example.org", models.MembershipTierActive)

	first, err := env.promotion.ApproveMembership(ctx, app.ID)
	require.NoError(t, err)
	second, err := env.promotion.ApproveMembership(ctx, app.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(1), countMembers(t, env))
	assert.Equal(t, first.Member.ID, second.Member.ID)
	assert.Equal(t, first.Member.MemberID, second.Member.MemberID, "identifier is stable across re-approval")
	assert.Equal(t, "Active Member", second.Member.Role)
	assert.Equal(t, models.ApplicationStatusApproved, second.PreviousStatus)

	// Each approval is reported, duplicates included.
	assert.Len(t, env.notificationsOf(t, models.NotificationMemberApproved), 2)
}

func TestPromotionMatchesExistingMemberByEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	existing, err := env.memberSvc.Create(ctx, MemberInput{
		Name:       "Hari T.",
		MemberType: models.MemberTypeVolunteer,
		Email:      "hari@example.org",
		IsActive:   ptr(false),
	})
	require.NoError(t, err)
	app := seedMembership(t, env, "Hari Thapa", "hari@example.org", models.MembershipTierGeneral)

	res, err := env.promotion.ApproveMembership(ctx, app.ID)
	require.NoError(t, err)
	require.NotNil(t, res.Member)
	assert.Equal(t, existing.ID, res.Member.ID)
	assert.Equal(t, existing.MemberID, res.Member.MemberID)
	assert.Equal(t, "Hari Thapa", res.Member.Name)
	assert.Equal(t, "General Member", res.Member.Role)
	assert.True(t, res.Member.IsActive)
	assert.Equal(t, int64(1), countMembers(t, env))
}

func TestPromotionBlankEmailBucket(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	a := seedVolunteer(t, env, "Gita", "")
	b := seedVolunteer(t, env, "Ram", "")

	_, err := env.promotion.ApproveVolunteer(ctx, a.ID)
	require.NoError(t, err)
	_, err = env.promotion.ApproveVolunteer(ctx, b.ID)
	require.NoError(t, err)
	_, err = env.promotion.ApproveVolunteer(ctx, a.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(2), countMembers(t, env), "applicants without email are told apart by name")
}

func TestPromotionNumbersAfterExistingPeers(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	for _, name := range []string{"A", "B"} {
		_, err := env.memberSvc.Create(ctx, MemberInput{Name: name, MemberType: models.MemberTypeVolunteer})
		require.NoError(t, err)
	}
	_, err := env.memberSvc.Create(ctx, MemberInput{Name: "Chair", MemberType: models.MemberTypeBoard})
	require.NoError(t, err)

	app := seedVolunteer(t, env, "Sita Rai", "sita@example.org")
	res, err := env.promotion.ApproveVolunteer(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, "NHAFN-M-003-2025", res.Member.MemberID)
}

func TestRejectTransitions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("pending to rejected", func(t *testing.T) {
		app := seedVolunteer(t, env, "Pending One", "p1@example.org")
		res, err := env.promotion.RejectVolunteer(ctx, app.ID)
		require.NoError(t, err)
		assert.Equal(t, models.ApplicationStatusRejected, res.Status)
		assert.Nil(t, res.Member)
	})

	t.Run("rejecting twice is idempotent", func(t *testing.T) {
		app := seedMembership(t, env, "Pending Two", "p2@example.org", models.MembershipTierGeneral)
		_, err := env.promotion.RejectMembership(ctx, app.ID)
		require.NoError(t, err)
		res, err := env.promotion.RejectMembership(ctx, app.ID)
		require.NoError(t, err)
		assert.Equal(t, models.ApplicationStatusRejected, res.PreviousStatus)
	})

	t.Run("approved cannot be rejected", func(t *testing.T) {
		app := seedVolunteer(t, env, "Approved", "a@example.org")
		_, err := env.promotion.ApproveVolunteer(ctx, app.ID)
		require.NoError(t, err)
		_, err = env.promotion.RejectVolunteer(ctx, app.ID)
		assertValidationError(t, err)

		stored, err := env.apps.GetVolunteer(ctx, app.ID)
		require.NoError(t, err)
		assert.Equal(t, models.ApplicationStatusApproved, stored.Status)
	})

	t.Run("rejected cannot be approved", func(t *testing.T) {
		app := seedMembership(t, env, "Rejected", "r@example.org", models.MembershipTierGeneral)
		_, err := env.promotion.RejectMembership(ctx, app.ID)
		require.NoError(t, err)
		_, err = env.promotion.ApproveMembership(ctx, app.ID)
		assertValidationError(t, err)
	})

	t.Run("unknown application", func(t *testing.T) {
		_, err := env.promotion.ApproveVolunteer(ctx, 9999)
		assertErrorCode(t, err, models.CodeNotFound)
	})

	rejected := env.notificationsOf(t, models.NotificationMemberRejected)
	require.NotEmpty(t, rejected)
	assert.Equal(t, "Volunteer rejected: Pending One", rejected[0].Title)
}

func TestPromotionFailureKeepsApproval(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	app := seedVolunteer(t, env, "Sita Rai", "sita@example.org")

	// Without the members table the upsert fails after the status commit.
	require.NoError(t, env.db.Migrator().DropTable(&models.Member{}))

	res, err := env.promotion.ApproveVolunteer(ctx, app.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, res.PromotionError)
	assert.Nil(t, res.Member)

	stored, err := env.apps.GetVolunteer(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusApproved, stored.Status)
	assert.Len(t, env.notificationsOf(t, models.NotificationMemberApproved), 1)
}
