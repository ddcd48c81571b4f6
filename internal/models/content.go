package models

import (
	"path"
	"strings"
	"time"
)

// ProgramPhase places a program before or after its event date.
type ProgramPhase string

const (
	ProgramUpcoming ProgramPhase = "upcoming"
	ProgramPast     ProgramPhase = "past"
)

// Valid reports whether p is a known phase.
func (p ProgramPhase) Valid() bool {
	return p == ProgramUpcoming || p == ProgramPast
}

// ProgramCategory is a free-form tag staff attach to programs.
type ProgramCategory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Program is an event or campaign shown on the programs page.
type Program struct {
	ID            uint             `gorm:"primaryKey" json:"id"`
	Title         string           `gorm:"size:300;not null" json:"title"`
	Slug          string           `gorm:"size:300;not null;uniqueIndex" json:"slug"`
	Description   string           `gorm:"type:text;not null" json:"description"`
	Image         string           `gorm:"size:500" json:"image"`
	EventDate     time.Time        `gorm:"not null;index" json:"event_date"`
	Phase         ProgramPhase     `gorm:"column:category;type:varchar(20);not null;default:'upcoming'" json:"category"`
	CategoryTagID *uint            `gorm:"index" json:"category_tag_id"`
	CategoryTag   *ProgramCategory `gorm:"foreignKey:CategoryTagID;constraint:OnDelete:SET NULL" json:"category_tag,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// ImpactStat is one animated counter on the impact page.
type ImpactStat struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Label   string `gorm:"size:200;not null" json:"label"`
	Value   int    `gorm:"not null;default:0" json:"value"`
	Suffix  string `gorm:"size:20" json:"suffix"`
	Icon    string `gorm:"size:100" json:"icon"`
	Tagline string `gorm:"size:300" json:"tagline"`
	Order   int    `gorm:"column:sort_order;not null;default:0" json:"order"`
}

// OrganizationInfo is the singleton mission and history copy of the about page.
type OrganizationInfo struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Mission    string    `gorm:"type:text" json:"mission"`
	Vision     string    `gorm:"type:text" json:"vision"`
	Objectives string    `gorm:"type:text" json:"objectives"`
	History    string    `gorm:"type:text" json:"history"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// DefaultOrganizationInfo returns the empty row written on first access.
func DefaultOrganizationInfo() OrganizationInfo {
	return OrganizationInfo{ID: SingletonID}
}

// Founder is a profile card on the about page.
type Founder struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:200;not null" json:"name"`
	Title string `gorm:"size:200" json:"title"`
	Photo string `gorm:"size:500" json:"photo"`
	Bio   string `gorm:"type:text" json:"bio"`
	Order int    `gorm:"column:sort_order;not null;default:0" json:"order"`
}

// ChapterLocation is an office listed on the about page. It is display copy,
// unrelated to the member Chapter records.
type ChapterLocation struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:200;not null" json:"name"`
	Address  string `gorm:"type:text" json:"address"`
	Phone    string `gorm:"size:50" json:"phone"`
	Email    string `gorm:"size:254" json:"email"`
	MapEmbed string `gorm:"type:text" json:"map_embed"`
	Order    int    `gorm:"column:sort_order;not null;default:0" json:"order"`
}

// Achievement is a milestone on the about page.
type Achievement struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"size:200;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Year        string `gorm:"size:20" json:"year"`
	Icon        string `gorm:"size:50" json:"icon"`
	Order       int    `gorm:"column:sort_order;not null;default:0" json:"order"`
}

// Hero banner display choices.
var (
	BannerAspectRatios  = []string{"16:9", "21:9", "4:3", "1:1"}
	BannerImageFits     = []string{"cover", "contain"}
	BannerTextPositions = []string{"center", "left", "right"}
)

// HeroBanner is one slide of the homepage carousel.
type HeroBanner struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	Title          string  `gorm:"size:200;not null" json:"title"`
	Subtitle       string  `gorm:"size:300" json:"subtitle"`
	Image          string  `gorm:"size:500" json:"image"`
	LinkURL        string  `gorm:"size:500" json:"link_url"`
	LinkText       string  `gorm:"size:50" json:"link_text"`
	IsActive       bool    `gorm:"not null" json:"is_active"`
	Order          int     `gorm:"column:sort_order;not null;default:0" json:"order"`
	AspectRatio    string  `gorm:"size:10;not null" json:"aspect_ratio"`
	OverlayOpacity float64 `gorm:"type:decimal(3,2);not null" json:"overlay_opacity"`
	ShowOverlay    bool    `gorm:"not null" json:"show_overlay"`
	ImageFit       string  `gorm:"size:10;not null" json:"image_fit"`
	TextPosition   string  `gorm:"size:10;not null" json:"text_position"`
}

// AspectRatioCSS renders the ratio as a CSS aspect-ratio value, "16/9".
func (b *HeroBanner) AspectRatioCSS() string {
	return strings.Replace(b.AspectRatio, ":", "/", 1)
}

// HomeContent is a keyed copy block of the homepage, such as "welcome".
type HomeContent struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Key      string `gorm:"size:50;not null;uniqueIndex" json:"key"`
	Title    string `gorm:"size:200" json:"title"`
	Content  string `gorm:"type:text;not null" json:"content"`
	IsActive bool   `gorm:"not null" json:"is_active"`
}

// AnnouncementStatus is the editorial state of a popup.
type AnnouncementStatus string

const (
	AnnouncementDraft     AnnouncementStatus = "draft"
	AnnouncementScheduled AnnouncementStatus = "scheduled"
	AnnouncementPublished AnnouncementStatus = "published"
	AnnouncementExpired   AnnouncementStatus = "expired"
)

// Valid reports whether s is a known status.
func (s AnnouncementStatus) Valid() bool {
	switch s {
	case AnnouncementDraft, AnnouncementScheduled, AnnouncementPublished, AnnouncementExpired:
		return true
	}
	return false
}

// AnnouncementPriority orders popups shown together.
type AnnouncementPriority string

const (
	PriorityHigh   AnnouncementPriority = "high"
	PriorityMedium AnnouncementPriority = "medium"
	PriorityLow    AnnouncementPriority = "low"
)

// Rank is 0 for high, 1 for medium and 2 for low. Unknown values rank as medium.
func (p AnnouncementPriority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityLow:
		return 2
	}
	return 1
}

// Valid reports whether p is a known priority.
func (p AnnouncementPriority) Valid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// AnnouncementPopup is a homepage popup with an optional display window.
type AnnouncementPopup struct {
	ID        uint                 `gorm:"primaryKey" json:"id"`
	Title     string               `gorm:"size:200;not null" json:"title"`
	Message   string               `gorm:"type:text;not null" json:"message"`
	Image     string               `gorm:"size:500" json:"image"`
	StartDate *time.Time           `gorm:"index" json:"start_date"`
	EndDate   *time.Time           `json:"end_date"`
	Priority  AnnouncementPriority `gorm:"type:varchar(10);not null;default:'medium'" json:"priority"`
	Status    AnnouncementStatus   `gorm:"type:varchar(20);not null;default:'draft'" json:"status"`
	IsActive  bool                 `gorm:"not null" json:"is_active"`
	LinkURL   string               `gorm:"size:500" json:"link_url"`
	LinkText  string               `gorm:"size:50" json:"link_text"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// LiveAt reports whether the popup should show at now: published, active and
// inside its window. Open ends of the window are unbounded.
func (a *AnnouncementPopup) LiveAt(now time.Time) bool {
	if a.Status != AnnouncementPublished || !a.IsActive {
		return false
	}
	if a.StartDate != nil && a.StartDate.After(now) {
		return false
	}
	return a.EndDate == nil || !a.EndDate.Before(now)
}

// GalleryImage is a photo in the public gallery, optionally tied to a program.
type GalleryImage struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Title     string `gorm:"size:200" json:"title"`
	Image     string `gorm:"size:500;not null" json:"image"`
	Caption   string `gorm:"size:300" json:"caption"`
	Order     int    `gorm:"column:sort_order;not null;default:0" json:"order"`
	IsActive  bool   `gorm:"not null" json:"is_active"`
	ProgramID *uint  `gorm:"index" json:"program_id"`
}

// NavItem is one entry of the site menu. Children nest one level deep.
type NavItem struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ParentID   *uint     `gorm:"index" json:"parent_id"`
	Title      string    `gorm:"size:100;not null" json:"title"`
	URL        string    `gorm:"size:500;not null" json:"url"`
	IconClass  string    `gorm:"size:100" json:"icon_class"`
	CustomIcon string    `gorm:"size:500" json:"custom_icon"`
	Order      int       `gorm:"column:sort_order;not null;default:0" json:"order"`
	IsActive   bool      `gorm:"not null" json:"is_active"`
	IsButton   bool      `gorm:"not null" json:"is_button"`
	Children   []NavItem `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE" json:"children,omitempty"`
}

// DefaultNavItems is the stock top-level menu, in display order. The
// Programs entry carries the Gallery submenu.
func DefaultNavItems() []NavItem {
	return []NavItem{
		{Title: "Home", URL: "/", IconClass: "fas fa-home", Order: 0},
		{Title: "About", URL: "/about/", IconClass: "fas fa-info-circle", Order: 1},
		{Title: "Programs", URL: "/programs/", IconClass: "fas fa-calendar-alt", Order: 2, Children: []NavItem{
			{Title: "Gallery", URL: "/gallery/", IconClass: "fas fa-images", Order: 0},
		}},
		{Title: "Team", URL: "/team/", IconClass: "fas fa-users", Order: 3},
		{Title: "Impact", URL: "/impact/", IconClass: "fas fa-chart-line", Order: 4},
		{Title: "Contact", URL: "/contact/", IconClass: "fas fa-envelope", Order: 5},
		{Title: "Donate", URL: "/donate/", IconClass: "fas fa-heart", Order: 6, IsButton: true},
	}
}

// Collaboration choices.
var (
	PartnershipTypes = []string{"mou", "academic", "ngo", "corporate", "government", "wing", "strategic"}
	CollabStatuses   = []string{"active", "ongoing", "completed"}
	// CollabBackgrounds lists the detail page palette; blank keeps the default.
	CollabBackgrounds = []string{"", "#faf8f5", "#f5f2ed", "#f0f7f4", "#e8f4f8", "#f8f4e8", "#f5f0e8", "#eef5f0"}
)

// Collaboration is a partner organization: an MOU, affiliation or wing.
type Collaboration struct {
	ID                    uint       `gorm:"primaryKey" json:"id"`
	OrganizationName      string     `gorm:"size:200;not null" json:"organization_name"`
	Logo                  string     `gorm:"size:500" json:"logo"`
	PartnershipType       string     `gorm:"size:20;not null;default:'mou'" json:"partnership_type"`
	ShortDescription      string     `gorm:"size:300;not null" json:"short_description"`
	FullDescription       string     `gorm:"type:text" json:"full_description"`
	Objectives            string     `gorm:"type:text" json:"objectives"`
	ProgramsActivities    string     `gorm:"type:text" json:"programs_activities"`
	ImpactOutcomes        string     `gorm:"type:text" json:"impact_outcomes"`
	AgreementDate         *time.Time `json:"agreement_date"`
	Status                string     `gorm:"size:20;not null;default:'active'" json:"status"`
	PartnerWebsite        string     `gorm:"size:500" json:"partner_website"`
	PartnerContact        string     `gorm:"size:200" json:"partner_contact"`
	MouDocument           string     `gorm:"size:500" json:"mou_document"`
	SupportingImage       string     `gorm:"size:500" json:"supporting_image"`
	DetailBackgroundColor string     `gorm:"size:7" json:"detail_background_color"`
	DetailBackgroundImage string     `gorm:"size:500" json:"detail_background_image"`
	IsActive              bool       `gorm:"not null" json:"is_active"`
	Order                 int        `gorm:"column:sort_order;not null;default:0" json:"order"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

// MouKind classifies the MOU upload for the viewer: "image", "pdf", "file",
// or "" when there is none.
func (c *Collaboration) MouKind() string {
	if c.MouDocument == "" {
		return ""
	}
	switch strings.ToLower(path.Ext(c.MouDocument)) {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
		return "image"
	case ".pdf":
		return "pdf"
	}
	return "file"
}

// ContactInfo is the singleton block of the contact page.
type ContactInfo struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Phone       string    `gorm:"size:100" json:"phone"`
	Email       string    `gorm:"size:254" json:"email"`
	Address     string    `gorm:"type:text" json:"address"`
	OfficeHours string    `gorm:"size:200" json:"office_hours"`
	MapEmbed    string    `gorm:"type:text" json:"map_embed"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DefaultContactInfo returns the empty row written on first access.
func DefaultContactInfo() ContactInfo {
	return ContactInfo{ID: SingletonID}
}
