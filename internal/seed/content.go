package seed

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"

	"nhaf/internal/memberid"
	"nhaf/internal/models"
	"nhaf/internal/repository"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed content.yaml
var defaultContent []byte

// Fixture is the reference content of a fresh installation.
type Fixture struct {
	Site struct {
		SiteTitle string `yaml:"site_title"`
		Tagline   string `yaml:"tagline"`
	} `yaml:"site"`
	Chapters       []string        `yaml:"chapters"`
	MembershipFees []FeeRow        `yaml:"membership_fees"`
	DonationTiers  []TierRow       `yaml:"donation_tiers"`
	BankDetails    []BankRow       `yaml:"bank_details"`
	QuickResponses []QuickReplyRow `yaml:"quick_responses"`
	Board          []BoardMember   `yaml:"board"`
}

// FeeRow is the price of a membership tier.
type FeeRow struct {
	MemberType  models.MembershipTier `yaml:"member_type"`
	Amount      float64               `yaml:"amount"`
	Description string                `yaml:"description"`
}

// TierRow is a suggested donation amount.
type TierRow struct {
	Amount      float64 `yaml:"amount"`
	Label       string  `yaml:"label"`
	Description string  `yaml:"description"`
}

// BankRow is an account shown for bank transfers.
type BankRow struct {
	BankName      string `yaml:"bank_name"`
	AccountName   string `yaml:"account_name"`
	AccountNumber string `yaml:"account_number"`
	Branch        string `yaml:"branch"`
	SwiftCode     string `yaml:"swift_code"`
}

// QuickReplyRow is a canned chat reply.
type QuickReplyRow struct {
	Message         string `yaml:"message"`
	TriggerKeywords string `yaml:"trigger_keywords"`
}

// BoardMember is a board seat in the fixture.
type BoardMember struct {
	Name           string `yaml:"name"`
	Role           string `yaml:"role"`
	Specialization string `yaml:"specialization"`
	JoinYear       int    `yaml:"join_year"`
}

// ParseFixture decodes a YAML fixture. Unknown keys are rejected.
func ParseFixture(raw []byte) (*Fixture, error) {
	var f Fixture
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parse content fixture: %w", err)
	}
	for i, fee := range f.MembershipFees {
		if !fee.MemberType.Valid() {
			return nil, fmt.Errorf("membership_fees[%d]: unknown tier %q", i, fee.MemberType)
		}
	}
	return &f, nil
}

// DefaultFixture returns the embedded content fixture.
func DefaultFixture() (*Fixture, error) {
	return ParseFixture(defaultContent)
}

// Content writes the fixture. Rows are matched on a natural key, so running it
// twice leaves one copy of everything.
func Content(ctx context.Context, db *gorm.DB, f *Fixture, prefix string) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := seedSite(tx, f); err != nil {
			return err
		}
		for _, name := range f.Chapters {
			if err := firstOrCreate(tx, &models.Chapter{}, "name = ?", name, &models.Chapter{Name: name}); err != nil {
				return fmt.Errorf("chapter %s: %w", name, err)
			}
		}
		for _, r := range f.MembershipFees {
			fee := models.MembershipFee{MemberType: r.MemberType, Amount: r.Amount, Description: r.Description}
			if err := upsert(tx, &models.MembershipFee{}, "member_type = ?", fee.MemberType, &fee,
				map[string]any{"amount": fee.Amount, "description": fee.Description}); err != nil {
				return fmt.Errorf("membership fee %s: %w", fee.MemberType, err)
			}
		}
		for i, r := range f.DonationTiers {
			tier := models.DonationTier{Amount: r.Amount, Label: r.Label, Description: r.Description, Order: i}
			if err := upsert(tx, &models.DonationTier{}, "amount = ?", tier.Amount, &tier,
				map[string]any{"label": tier.Label, "description": tier.Description, "sort_order": tier.Order}); err != nil {
				return fmt.Errorf("donation tier %.0f: %w", tier.Amount, err)
			}
		}
		for i, r := range f.BankDetails {
			bank := models.BankDetail{
				BankName:      r.BankName,
				AccountName:   r.AccountName,
				AccountNumber: r.AccountNumber,
				Branch:        r.Branch,
				SwiftCode:     r.SwiftCode,
				Order:         i,
			}
			if err := upsert(tx, &models.BankDetail{}, "account_number = ?", bank.AccountNumber, &bank,
				map[string]any{"bank_name": bank.BankName, "account_name": bank.AccountName, "branch": bank.Branch, "swift_code": bank.SwiftCode, "sort_order": bank.Order}); err != nil {
				return fmt.Errorf("bank detail %s: %w", bank.BankName, err)
			}
		}
		for i, r := range f.QuickResponses {
			q := models.QuickResponse{Message: r.Message, TriggerKeywords: r.TriggerKeywords, Order: i, IsActive: true}
			if err := upsert(tx, &models.QuickResponse{}, "message = ?", q.Message, &q,
				map[string]any{"trigger_keywords": q.TriggerKeywords, "sort_order": q.Order}); err != nil {
				return fmt.Errorf("quick response %d: %w", i, err)
			}
		}
		return seedBoard(ctx, tx, f.Board, prefix)
	})
}

func seedSite(tx *gorm.DB, f *Fixture) error {
	if f.Site.SiteTitle == "" {
		return nil
	}
	identity := models.DefaultSiteIdentity()
	identity.SiteTitle = f.Site.SiteTitle
	identity.Tagline = f.Site.Tagline
	return upsert(tx, &models.SiteIdentity{}, "id = ?", models.SingletonID, &identity,
		map[string]any{"site_title": identity.SiteTitle, "tagline": identity.Tagline})
}

func seedBoard(ctx context.Context, tx *gorm.DB, board []BoardMember, prefix string) error {
	members := repository.NewMemberRepository(tx)
	ids := memberid.NewEngine(members, prefix)
	for i, b := range board {
		var existing models.Member
		err := tx.Where("name = ? AND member_type = ?", b.Name, models.MemberTypeBoard).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		m := &models.Member{
			Name:           b.Name,
			Role:           b.Role,
			Specialization: b.Specialization,
			MemberType:     models.MemberTypeBoard,
			IsActive:       true,
			Order:          i,
		}
		if b.JoinYear > 0 {
			year := b.JoinYear
			m.JoinYear = &year
		}
		if err := ids.Assign(ctx, m); err != nil {
			return fmt.Errorf("board member %s: %w", b.Name, err)
		}
		if err := members.Create(ctx, m); err != nil {
			return fmt.Errorf("board member %s: %w", b.Name, err)
		}
	}
	return nil
}

func firstOrCreate(tx *gorm.DB, model any, query string, arg any, row any) error {
	var n int64
	if err := tx.Model(model).Where(query, arg).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return tx.Create(row).Error
}

func upsert(tx *gorm.DB, model any, query string, arg any, row any, updates map[string]any) error {
	res := tx.Model(model).Where(query, arg).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}
	return tx.Create(row).Error
}
