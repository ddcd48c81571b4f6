package service

import (
	"context"
	"strings"

	"nhaf/internal/cache"
	"nhaf/internal/models"
	"nhaf/internal/repository"
	"nhaf/internal/validation"
)

// SettingsService serves the singleton configuration rows. Public reads go
// through the Redis cache; every write invalidates its key.
type SettingsService struct {
	repo repository.SettingsRepository
}

// NewSettingsService returns a SettingsService.
func NewSettingsService(repo repository.SettingsRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

// PublicSettings bundles what every public page needs.
type PublicSettings struct {
	Site  *models.SiteIdentity `json:"site"`
	Theme *models.SiteTheme    `json:"theme"`
}

// Public returns the cached site identity and theme.
func (s *SettingsService) Public(ctx context.Context) (*PublicSettings, error) {
	site, err := s.SiteIdentity(ctx)
	if err != nil {
		return nil, err
	}
	theme, err := s.SiteTheme(ctx)
	if err != nil {
		return nil, err
	}
	return &PublicSettings{Site: site, Theme: theme}, nil
}

// SiteIdentity returns the identity row.
func (s *SettingsService) SiteIdentity(ctx context.Context) (*models.SiteIdentity, error) {
	var out models.SiteIdentity
	err := cache.Aside(ctx, cache.SettingsKey(cache.SettingsSite), &out, cache.SettingsTTL, func() error {
		row, err := s.repo.SiteIdentity(ctx)
		if err != nil {
			return err
		}
		out = *row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// SiteTheme returns the palette row.
func (s *SettingsService) SiteTheme(ctx context.Context) (*models.SiteTheme, error) {
	var out models.SiteTheme
	err := cache.Aside(ctx, cache.SettingsKey(cache.SettingsTheme), &out, cache.SettingsTTL, func() error {
		row, err := s.repo.SiteTheme(ctx)
		if err != nil {
			return err
		}
		out = *row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// TeamPage returns the team page layout row.
func (s *SettingsService) TeamPage(ctx context.Context) (*models.TeamPageSettings, error) {
	var out models.TeamPageSettings
	err := cache.Aside(ctx, cache.SettingsKey(cache.SettingsTeamPage), &out, cache.SettingsTTL, func() error {
		row, err := s.repo.TeamPage(ctx)
		if err != nil {
			return err
		}
		out = *row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// OrganizationInfo returns the about page mission and history copy.
func (s *SettingsService) OrganizationInfo(ctx context.Context) (*models.OrganizationInfo, error) {
	var out models.OrganizationInfo
	err := cache.Aside(ctx, cache.SettingsKey(cache.SettingsOrg), &out, cache.SettingsTTL, func() error {
		row, err := s.repo.OrganizationInfo(ctx)
		if err != nil {
			return err
		}
		out = *row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ContactInfo returns the contact page block.
func (s *SettingsService) ContactInfo(ctx context.Context) (*models.ContactInfo, error) {
	var out models.ContactInfo
	err := cache.Aside(ctx, cache.SettingsKey(cache.SettingsContact), &out, cache.SettingsTTL, func() error {
		row, err := s.repo.ContactInfo(ctx)
		if err != nil {
			return err
		}
		out = *row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ChatSettings is never cached: it carries the admin last-seen timestamp.
func (s *SettingsService) ChatSettings(ctx context.Context) (*models.ChatSettings, error) {
	return s.repo.ChatSettings(ctx)
}

// UpdateSiteIdentity replaces the identity row.
func (s *SettingsService) UpdateSiteIdentity(ctx context.Context, in models.SiteIdentity) (*models.SiteIdentity, error) {
	in.SiteTitle = strings.TrimSpace(in.SiteTitle)
	if in.SiteTitle == "" {
		return nil, models.NewValidationError("Site title is required")
	}
	if err := s.repo.Save(ctx, &in); err != nil {
		return nil, err
	}
	cache.InvalidateSettings(ctx, cache.SettingsSite)
	return &in, nil
}

// UpdateSiteTheme replaces the palette. Blank colors fall back to the stock palette.
func (s *SettingsService) UpdateSiteTheme(ctx context.Context, in models.SiteTheme) (*models.SiteTheme, error) {
	def := models.DefaultSiteTheme()
	fill := func(v *string, d string) {
		*v = strings.TrimSpace(*v)
		if *v == "" {
			*v = d
		}
	}
	fill(&in.PrimaryColor, def.PrimaryColor)
	fill(&in.SecondaryColor, def.SecondaryColor)
	fill(&in.NavBgColor, def.NavBgColor)
	fill(&in.NavTextColor, def.NavTextColor)
	fill(&in.NavHoverColor, def.NavHoverColor)
	fill(&in.ButtonColor, def.ButtonColor)
	fill(&in.ButtonHoverColor, def.ButtonHoverColor)
	fill(&in.DarkBgColor, def.DarkBgColor)
	fill(&in.DarkTextColor, def.DarkTextColor)
	fill(&in.DarkCardColor, def.DarkCardColor)

	if err := s.repo.Save(ctx, &in); err != nil {
		return nil, err
	}
	cache.InvalidateSettings(ctx, cache.SettingsTheme)
	return &in, nil
}

var (
	headingAligns = map[string]bool{"left": true, "center": true, "right": true}
	themeModes    = map[string]bool{"light": true, "dark": true, "auto": true}
)

// UpdateTeamPage replaces the team page layout row.
func (s *SettingsService) UpdateTeamPage(ctx context.Context, in models.TeamPageSettings) (*models.TeamPageSettings, error) {
	if strings.TrimSpace(in.TitleText) == "" {
		return nil, models.NewValidationError("Title text is required")
	}
	if !headingAligns[in.HeadingAlign] {
		return nil, models.NewValidationError("heading_align must be left, center or right")
	}
	if !themeModes[in.ThemeMode] {
		return nil, models.NewValidationError("theme_mode must be light, dark or auto")
	}
	if in.CardMinHeightPx > in.CardMaxHeightPx {
		return nil, models.NewValidationError("card_min_height_px must not exceed card_max_height_px")
	}
	if in.WatermarkOpacity < 0 || in.WatermarkOpacity > 1 {
		return nil, models.NewValidationError("watermark_opacity must be between 0 and 1")
	}
	if err := s.repo.Save(ctx, &in); err != nil {
		return nil, err
	}
	cache.InvalidateSettings(ctx, cache.SettingsTeamPage)
	cache.InvalidateDirectory(ctx)
	return &in, nil
}

// ResetTeamPage restores the stock layout, keeping the watermark image.
func (s *SettingsService) ResetTeamPage(ctx context.Context) (*models.TeamPageSettings, error) {
	current, err := s.repo.TeamPage(ctx)
	if err != nil {
		return nil, err
	}
	row := models.DefaultTeamPageSettings()
	row.BackgroundImage = current.BackgroundImage
	if err := s.repo.Save(ctx, &row); err != nil {
		return nil, err
	}
	cache.InvalidateSettings(ctx, cache.SettingsTeamPage)
	cache.InvalidateDirectory(ctx)
	return &row, nil
}

// UpdateOrganizationInfo replaces the about page copy.
func (s *SettingsService) UpdateOrganizationInfo(ctx context.Context, in models.OrganizationInfo) (*models.OrganizationInfo, error) {
	if err := s.repo.Save(ctx, &in); err != nil {
		return nil, err
	}
	cache.InvalidateSettings(ctx, cache.SettingsOrg)
	return &in, nil
}

// UpdateContactInfo replaces the contact page block.
func (s *SettingsService) UpdateContactInfo(ctx context.Context, in models.ContactInfo) (*models.ContactInfo, error) {
	in.Email = strings.TrimSpace(in.Email)
	if err := validation.ValidateOptionalEmail(in.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.MaxLength("office_hours", in.OfficeHours, 200); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := s.repo.Save(ctx, &in); err != nil {
		return nil, err
	}
	cache.InvalidateSettings(ctx, cache.SettingsContact)
	return &in, nil
}
