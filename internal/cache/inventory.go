package cache

import (
	"context"
	"fmt"
	"time"
)

// Cached public read models. Staff writes invalidate the matching key.
const (
	SettingsKeyPrefix    = "settings:%s"
	PublicDirectoryKey   = "members:public"
	DonationPageKey      = "donations:page"
	MembershipFeesKey    = "membership:fees"
	TokenBlacklistPrefix = "blacklist:%s"
	ContentKeyPrefix     = "content:%s"
)

// Public content pages.
const (
	ContentHome           = "home"
	ContentAbout          = "about"
	ContentImpact         = "impact"
	ContentPrograms       = "programs"
	ContentGallery        = "gallery"
	ContentNav            = "nav"
	ContentCollaborations = "collaborations"
)

// Singleton settings kinds.
const (
	SettingsSite     = "site"
	SettingsTheme    = "theme"
	SettingsTeamPage = "team_page"
	SettingsChat     = "chat"
	SettingsOrg      = "organization"
	SettingsContact  = "contact"
)

const (
	SettingsTTL        = 10 * time.Minute
	PublicDirectoryTTL = 5 * time.Minute
	DonationPageTTL    = 10 * time.Minute
	ContentTTL         = 10 * time.Minute
)

func SettingsKey(kind string) string {
	return fmt.Sprintf(SettingsKeyPrefix, kind)
}

func ContentKey(page string) string {
	return fmt.Sprintf(ContentKeyPrefix, page)
}

func BlacklistKey(jti string) string {
	return fmt.Sprintf(TokenBlacklistPrefix, jti)
}

// Invalidate deletes keys, ignoring a missing client.
func Invalidate(ctx context.Context, keys ...string) {
	if client != nil && len(keys) > 0 {
		client.Del(ctx, keys...)
	}
}

func InvalidateSettings(ctx context.Context, kind string) {
	Invalidate(ctx, SettingsKey(kind))
}

func InvalidateDirectory(ctx context.Context) {
	Invalidate(ctx, PublicDirectoryKey)
}

func InvalidateDonationPage(ctx context.Context) {
	Invalidate(ctx, DonationPageKey, MembershipFeesKey)
}

func InvalidateContent(ctx context.Context, pages ...string) {
	keys := make([]string, 0, len(pages))
	for _, p := range pages {
		keys = append(keys, ContentKey(p))
	}
	Invalidate(ctx, keys...)
}
