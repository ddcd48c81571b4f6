package models

import (
	"fmt"
	"time"
)

// PaymentMethod is how a donation or membership fee is paid.
type PaymentMethod string

const (
	PaymentMethodEsewa  PaymentMethod = "esewa"
	PaymentMethodKhalti PaymentMethod = "khalti"
	// PaymentMethodBank is the offline transfer path, confirmed by staff.
	PaymentMethodBank PaymentMethod = "bank"
)

// Valid reports whether m is a known payment method.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodEsewa, PaymentMethodKhalti, PaymentMethodBank:
		return true
	}
	return false
}

// PaymentStatus tracks a payment attempt.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusCanceled  PaymentStatus = "canceled"
)

// Valid reports whether s is a known payment status.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusCanceled:
		return true
	}
	return false
}

// Donation records a single payment attempt.
type Donation struct {
	ID               uint          `gorm:"primaryKey" json:"id"`
	Amount           float64       `gorm:"type:decimal(10,2);not null" json:"amount"`
	DonorName        string        `gorm:"size:200" json:"donor_name"`
	DonorEmail       string        `gorm:"size:254" json:"donor_email"`
	PaymentMethod    PaymentMethod `gorm:"type:varchar(20);not null;index:idx_donation_ref" json:"payment_method"`
	PaymentReference string        `gorm:"size:200;index:idx_donation_ref" json:"payment_reference"`
	Pidx             string        `gorm:"size:100;index" json:"pidx"`
	TransactionID    string        `gorm:"size:100" json:"transaction_id"`
	Status           PaymentStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt        time.Time     `gorm:"index" json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// DisplayDonor returns the donor name or "Anonymous".
func (d *Donation) DisplayDonor() string {
	if d.DonorName == "" {
		return "Anonymous"
	}
	return d.DonorName
}

// AmountLabel formats the amount the way staff see it in notifications.
func (d *Donation) AmountLabel() string {
	return fmt.Sprintf("NPR %.2f", d.Amount)
}

// DonationTier is a suggested donation amount shown on the donate page.
type DonationTier struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Amount      float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	Label       string    `gorm:"size:100" json:"label"`
	Description string    `gorm:"size:200" json:"description"`
	Order       int       `gorm:"column:sort_order;not null;default:0" json:"order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BankDetail is an account shown to donors choosing bank transfer.
type BankDetail struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	BankName      string    `gorm:"size:200;not null" json:"bank_name"`
	AccountName   string    `gorm:"size:200;not null" json:"account_name"`
	AccountNumber string    `gorm:"size:100;not null" json:"account_number"`
	Branch        string    `gorm:"size:200" json:"branch"`
	SwiftCode     string    `gorm:"size:50" json:"swift_code"`
	Order         int       `gorm:"column:sort_order;not null;default:0" json:"order"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
