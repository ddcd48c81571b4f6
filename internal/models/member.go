package models

import (
	"strings"
	"time"
)

// MemberType is the directory section a Member is published under.
type MemberType string

const (
	// MemberTypeBoard marks board members.
	MemberTypeBoard MemberType = "board"
	// MemberTypeVolunteer marks volunteers; it is the default type.
	MemberTypeVolunteer MemberType = "volunteer"
)

// Valid reports whether t is one of the known member types.
func (t MemberType) Valid() bool {
	return t == MemberTypeBoard || t == MemberTypeVolunteer
}

// Label returns the human readable name of the type.
func (t MemberType) Label() string {
	switch t {
	case MemberTypeBoard:
		return "Board Member"
	case MemberTypeVolunteer:
		return "Volunteer"
	default:
		return string(t)
	}
}

// Chapter is a local chapter a member can belong to.
type Chapter struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:200;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Member is one published team-directory entry.
type Member struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Name           string     `gorm:"size:200;not null" json:"name"`
	MemberID       string     `gorm:"column:member_id;size:50;index" json:"member_id"`
	Role           string     `gorm:"size:200" json:"role"`
	MemberType     MemberType `gorm:"type:varchar(20);not null;default:'volunteer';index" json:"member_type"`
	Photo          string     `gorm:"size:500" json:"photo"`
	Bio            string     `gorm:"type:text" json:"bio"`
	Specialization string     `gorm:"size:200" json:"specialization"`
	ChapterID      *uint      `gorm:"index" json:"chapter_id"`
	Chapter        *Chapter   `gorm:"foreignKey:ChapterID;constraint:OnDelete:SET NULL" json:"chapter,omitempty"`
	Email          string     `gorm:"size:254;index" json:"email"`
	Phone          string     `gorm:"size:50" json:"phone"`
	Education      string     `gorm:"size:255" json:"education"`
	JoinYear       *int       `json:"join_year"`
	DateOfIssue    *time.Time `gorm:"type:date" json:"date_of_issue"`
	FacebookURL    string     `gorm:"size:500" json:"facebook_url"`
	InstagramURL   string     `gorm:"size:500" json:"instagram_url"`
	LinkedinURL    string     `gorm:"size:500" json:"linkedin_url"`
	IsActive       bool       `gorm:"not null" json:"is_active"`
	Order          int        `gorm:"column:sort_order;not null;default:0" json:"order"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// HasMemberID reports whether the derived identifier is set.
func (m *Member) HasMemberID() bool {
	return strings.TrimSpace(m.MemberID) != ""
}

// Initials returns up to two upper-case letters used as an avatar fallback.
func (m *Member) Initials() string {
	parts := strings.Fields(m.Name)
	switch len(parts) {
	case 0:
		return ""
	case 1:
		r := []rune(parts[0])
		if len(r) > 2 {
			r = r[:2]
		}
		return strings.ToUpper(string(r))
	default:
		return strings.ToUpper(string([]rune(parts[0])[:1]) + string([]rune(parts[1])[:1]))
	}
}
