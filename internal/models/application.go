package models

import "time"

// ApplicationStatus defines lifecycle states for volunteer and membership applications.
type ApplicationStatus string

const (
	// ApplicationStatusPending indicates the application is awaiting review.
	ApplicationStatusPending ApplicationStatus = "pending"
	// ApplicationStatusApproved indicates the application was accepted.
	ApplicationStatusApproved ApplicationStatus = "approved"
	// ApplicationStatusRejected indicates the application was denied.
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// ApplicationKind distinguishes the two application variants.
type ApplicationKind string

const (
	ApplicationKindVolunteer  ApplicationKind = "volunteer"
	ApplicationKindMembership ApplicationKind = "membership"
)

// MembershipTier is the membership level an applicant asks for.
type MembershipTier string

const (
	MembershipTierGeneral MembershipTier = "general"
	MembershipTierActive  MembershipTier = "active"
)

// Valid reports whether t is a known tier.
func (t MembershipTier) Valid() bool {
	return t == MembershipTierGeneral || t == MembershipTierActive
}

// Label returns the display name of the tier; it doubles as the published role.
func (t MembershipTier) Label() string {
	switch t {
	case MembershipTierGeneral:
		return "General Member"
	case MembershipTierActive:
		return "Active Member"
	default:
		return string(t)
	}
}

// VolunteerApplication is a public volunteer sign-up awaiting review.
type VolunteerApplication struct {
	ID             uint              `gorm:"primaryKey" json:"id"`
	Name           string            `gorm:"size:200;not null" json:"name"`
	ContactNumber  string            `gorm:"size:50;not null" json:"contact_number"`
	Email          string            `gorm:"size:254;not null;index" json:"email"`
	ProfileImage   string            `gorm:"size:500" json:"profile_image"`
	Location       string            `gorm:"size:200;not null" json:"location"`
	Availability   string            `gorm:"size:300;not null" json:"availability"`
	PastExperience string            `gorm:"type:text" json:"past_experience"`
	Status         ApplicationStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	SubmittedAt    time.Time         `gorm:"autoCreateTime;index" json:"submitted_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// MembershipApplication is a public membership request, optionally paid online.
type MembershipApplication struct {
	ID               uint              `gorm:"primaryKey" json:"id"`
	Name             string            `gorm:"size:200;not null" json:"name"`
	Email            string            `gorm:"size:254;not null;index" json:"email"`
	Phone            string            `gorm:"size:50;not null" json:"phone"`
	MemberType       MembershipTier    `gorm:"type:varchar(20);not null" json:"member_type"`
	PaymentMethod    PaymentMethod     `gorm:"type:varchar(20);not null" json:"payment_method"`
	PaymentReference string            `gorm:"size:200;index" json:"payment_reference"`
	PaymentStatus    PaymentStatus     `gorm:"type:varchar(20);not null;default:'pending'" json:"payment_status"`
	TransactionID    string            `gorm:"size:100" json:"transaction_id"`
	AmountPaid       *float64          `gorm:"type:decimal(10,2)" json:"amount_paid"`
	Status           ApplicationStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	SubmittedAt      time.Time         `gorm:"autoCreateTime;index" json:"submitted_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// MembershipFee is the editable price of a membership tier.
type MembershipFee struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	MemberType  MembershipTier `gorm:"type:varchar(20);not null;uniqueIndex" json:"member_type"`
	Amount      float64        `gorm:"type:decimal(10,2);not null" json:"amount"`
	Description string         `gorm:"type:text" json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
