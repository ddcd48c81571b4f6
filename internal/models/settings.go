package models

import "time"

// SingletonID is the fixed primary key of every singleton settings row.
const SingletonID uint = 1

// TeamPageSettings controls the public team page layout.
type TeamPageSettings struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	TitleText        string    `gorm:"size:200;not null" json:"title_text"`
	SubtitleTemplate string    `gorm:"size:300;not null" json:"subtitle_template"`
	HeadingAlign     string    `gorm:"size:10;not null" json:"heading_align"`
	TitleAnimation   string    `gorm:"size:20;not null" json:"title_animation"`
	TypingSpeedMs    int       `gorm:"not null" json:"typing_speed_ms"`
	ShowSearch       bool      `gorm:"not null" json:"show_search"`
	ThemeMode        string    `gorm:"size:10;not null" json:"theme_mode"`
	BackgroundImage  string    `gorm:"size:500" json:"background_watermark"`
	WatermarkOpacity float64   `gorm:"type:decimal(3,2);not null" json:"watermark_opacity"`
	CardRadiusPx     int       `gorm:"not null" json:"card_radius_px"`
	CardMinHeightPx  int       `gorm:"not null" json:"card_min_height_px"`
	CardMaxHeightPx  int       `gorm:"not null" json:"card_max_height_px"`
	CardHoverEffect  string    `gorm:"size:20;not null" json:"card_hover_effect"`
	CardShadow       string    `gorm:"size:20;not null" json:"card_shadow"`
	SectionSpacingPx int       `gorm:"not null" json:"section_spacing_px"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// DefaultTeamPageSettings returns the row written on first access and on reset.
func DefaultTeamPageSettings() TeamPageSettings {
	return TeamPageSettings{
		ID:               SingletonID,
		TitleText:        "Our Team",
		SubtitleTemplate: "Meet the people behind NHAF Nepal. {count} members dedicated to community health.",
		HeadingAlign:     "left",
		TitleAnimation:   "typing",
		TypingSpeedMs:    90,
		ShowSearch:       true,
		ThemeMode:        "light",
		WatermarkOpacity: 0.08,
		CardRadiusPx:     18,
		CardMinHeightPx:  420,
		CardMaxHeightPx:  540,
		CardHoverEffect:  "lift",
		CardShadow:       "medium",
		SectionSpacingPx: 24,
	}
}

// SiteIdentity holds the site title and branding assets.
type SiteIdentity struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SiteTitle string    `gorm:"size:200;not null" json:"site_title"`
	Tagline   string    `gorm:"size:300" json:"tagline"`
	Logo      string    `gorm:"size:500" json:"logo"`
	Favicon   string    `gorm:"size:500" json:"favicon"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultSiteIdentity returns the identity written on first access.
func DefaultSiteIdentity() SiteIdentity {
	return SiteIdentity{ID: SingletonID, SiteTitle: "NHAF Nepal"}
}

// SiteTheme holds the site-wide color palette.
type SiteTheme struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	PrimaryColor     string    `gorm:"size:30;not null" json:"primary_color"`
	SecondaryColor   string    `gorm:"size:30;not null" json:"secondary_color"`
	NavBgColor       string    `gorm:"size:30;not null" json:"nav_bg_color"`
	NavTextColor     string    `gorm:"size:30;not null" json:"nav_text_color"`
	NavHoverColor    string    `gorm:"size:50;not null" json:"nav_hover_color"`
	ButtonColor      string    `gorm:"size:30;not null" json:"button_color"`
	ButtonHoverColor string    `gorm:"size:30;not null" json:"button_hover_color"`
	DarkModeEnabled  bool      `gorm:"not null" json:"dark_mode_enabled"`
	DarkBgColor      string    `gorm:"size:30;not null" json:"dark_bg_color"`
	DarkTextColor    string    `gorm:"size:30;not null" json:"dark_text_color"`
	DarkCardColor    string    `gorm:"size:30;not null" json:"dark_card_color"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// DefaultSiteTheme returns the stock palette.
func DefaultSiteTheme() SiteTheme {
	return SiteTheme{
		ID:               SingletonID,
		PrimaryColor:     "#0B5345",
		SecondaryColor:   "#148f77",
		NavBgColor:       "#0B5345",
		NavTextColor:     "#ffffff",
		NavHoverColor:    "rgba(255,255,255,0.15)",
		ButtonColor:      "#c17f59",
		ButtonHoverColor: "#a86d4a",
		DarkBgColor:      "#1a1a1a",
		DarkTextColor:    "#e0e0e0",
		DarkCardColor:    "#2d2d2d",
	}
}

// DefaultChatSettings returns the chat configuration written on first access.
func DefaultChatSettings() ChatSettings {
	return ChatSettings{
		ID:                  SingletonID,
		IsEnabled:           true,
		ChatMode:            ChatModeBuiltin,
		AutoResponseMessage: DefaultAutoResponse,
	}
}
