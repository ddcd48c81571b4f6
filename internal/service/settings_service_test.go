package service

import (
	"context"
	"testing"

	"nhaf/internal/cache"
	"nhaf/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsDefaultsAndCache(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	mr := useMiniredis(t)

	pub, err := env.settings.Public(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSiteIdentity().SiteTitle, pub.Site.SiteTitle)
	assert.True(t, mr.Exists(cache.SettingsKey(cache.SettingsSite)))

	in := *pub.Site
	in.SiteTitle = "NHAF Nepal Trust"
	_, err = env.settings.UpdateSiteIdentity(ctx, in)
	require.NoError(t, err)
	assert.False(t, mr.Exists(cache.SettingsKey(cache.SettingsSite)), "update invalidates")

	pub, err = env.settings.Public(ctx)
	require.NoError(t, err)
	assert.Equal(t, "NHAF Nepal Trust", pub.Site.SiteTitle)

	in.SiteTitle = "  "
	_, err = env.settings.UpdateSiteIdentity(ctx, in)
	assertValidationError(t, err)
}

func TestSettingsThemeFillsBlanks(t *testing.T) {
	env := newTestEnv(t)
	theme, err := env.settings.UpdateSiteTheme(context.Background(), models.SiteTheme{PrimaryColor: "#123456"})
	require.NoError(t, err)
	assert.Equal(t, "#123456", theme.PrimaryColor)
	assert.Equal(t, models.DefaultSiteTheme().SecondaryColor, theme.SecondaryColor)
}

func TestTeamPageUpdateAndReset(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	page, err := env.settings.TeamPage(ctx)
	require.NoError(t, err)

	bad := *page
	bad.HeadingAlign = "justify"
	_, err = env.settings.UpdateTeamPage(ctx, bad)
	assertValidationError(t, err)

	bad = *page
	bad.CardMinHeightPx = bad.CardMaxHeightPx + 1
	_, err = env.settings.UpdateTeamPage(ctx, bad)
	assertValidationError(t, err)

	in := *page
	in.TitleText = "Our People"
	in.BackgroundImage = "team_page/2025/03/wm.png"
	_, err = env.settings.UpdateTeamPage(ctx, in)
	require.NoError(t, err)

	reset, err := env.settings.ResetTeamPage(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultTeamPageSettings().TitleText, reset.TitleText)
	assert.Equal(t, "team_page/2025/03/wm.png", reset.BackgroundImage)
}

func TestContactAndOrganizationInfo(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	mr := useMiniredis(t)

	info, err := env.settings.ContactInfo(ctx)
	require.NoError(t, err)
	assert.Empty(t, info.Email)
	assert.True(t, mr.Exists(cache.SettingsKey(cache.SettingsContact)))

	_, err = env.settings.UpdateContactInfo(ctx, models.ContactInfo{Email: "not-an-email"})
	assertValidationError(t, err)

	_, err = env.settings.UpdateContactInfo(ctx, models.ContactInfo{Email: " info@nhaf.example ", Phone: "+977 1 4000000"})
	require.NoError(t, err)
	assert.False(t, mr.Exists(cache.SettingsKey(cache.SettingsContact)))

	info, err = env.settings.ContactInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "info@nhaf.example", info.Email)

	_, err = env.settings.OrganizationInfo(ctx)
	require.NoError(t, err)
	_, err = env.settings.UpdateOrganizationInfo(ctx, models.OrganizationInfo{Vision: "Care within reach."})
	require.NoError(t, err)
	org, err := env.settings.OrganizationInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Care within reach.", org.Vision)
	assert.Equal(t, models.SingletonID, org.ID)
}
