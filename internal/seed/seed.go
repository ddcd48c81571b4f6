// Package seed loads reference content and generates demo data for
// development databases.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"nhaf/internal/middleware"
	"nhaf/internal/models"

	"gorm.io/gorm"
)

// Options configure the demo seeder.
type Options struct {
	Members      int
	Applications int
	Donations    int
	Contacts     int
	ChatSessions int
	// Clean removes demo-affected rows before seeding.
	Clean bool
	// DryRun builds everything without writing.
	DryRun         bool
	RandSeed       int64
	MemberIDPrefix string
}

// DefaultOptions is a small but complete demo data set.
func DefaultOptions() Options {
	return Options{
		Members:        24,
		Applications:   6,
		Donations:      40,
		Contacts:       8,
		ChatSessions:   5,
		MemberIDPrefix: "NHAFN",
	}
}

// Summary counts what Seed created.
type Summary struct {
	Members      int
	Applications int
	Donations    int
	Contacts     int
	ChatSessions int
}

// Seed writes the reference content and then demo data.
func Seed(ctx context.Context, db *gorm.DB, opts Options) (*Summary, error) {
	middleware.Logger.Info("starting database seeding",
		slog.Int("members", opts.Members),
		slog.Int("donations", opts.Donations),
		slog.Bool("dry_run", opts.DryRun),
	)

	if opts.Clean && !opts.DryRun {
		if err := clearDemoData(db); err != nil {
			middleware.Logger.Warn("could not clear all demo data, continuing",
				slog.String("error", err.Error()))
		}
	}

	fixture, err := DefaultFixture()
	if err != nil {
		return nil, err
	}
	if !opts.DryRun {
		if err := Content(ctx, db, fixture, opts.MemberIDPrefix); err != nil {
			return nil, fmt.Errorf("seed content: %w", err)
		}
	}

	var chapters []models.Chapter
	if err := db.WithContext(ctx).Order("id").Find(&chapters).Error; err != nil {
		return nil, fmt.Errorf("load chapters: %w", err)
	}

	f := NewFactory(db, opts)
	var sum Summary
	for i := 0; i < opts.Members; i++ {
		var chapterID *uint
		if len(chapters) > 0 {
			id := chapters[i%len(chapters)].ID
			chapterID = &id
		}
		if _, err := f.CreateVolunteerMember(ctx, chapterID); err != nil {
			return &sum, fmt.Errorf("create member: %w", err)
		}
		sum.Members++
	}
	for i := 0; i < opts.Applications; i++ {
		var err error
		if i%2 == 0 {
			_, err = f.CreateVolunteerApplication(ctx)
		} else {
			_, err = f.CreateMembershipApplication(ctx)
		}
		if err != nil {
			return &sum, fmt.Errorf("create application: %w", err)
		}
		sum.Applications++
	}
	for i := 0; i < opts.Donations; i++ {
		if _, err := f.CreateDonation(ctx, i+1); err != nil {
			return &sum, fmt.Errorf("create donation: %w", err)
		}
		sum.Donations++
	}
	for i := 0; i < opts.Contacts; i++ {
		if _, err := f.CreateContactMessage(ctx); err != nil {
			return &sum, fmt.Errorf("create contact message: %w", err)
		}
		sum.Contacts++
	}
	for i := 0; i < opts.ChatSessions; i++ {
		if _, err := f.CreateChatSession(ctx); err != nil {
			return &sum, fmt.Errorf("create chat session: %w", err)
		}
		sum.ChatSessions++
	}

	middleware.Logger.Info("database seeding complete",
		slog.Int("members", sum.Members),
		slog.Int("applications", sum.Applications),
		slog.Int("donations", sum.Donations),
		slog.Int("contacts", sum.Contacts),
		slog.Int("chat_sessions", sum.ChatSessions),
	)
	return &sum, nil
}

// clearDemoData removes generated rows. Reference content and staff accounts stay.
func clearDemoData(db *gorm.DB) error {
	tables := []any{
		&models.ChatMessage{},
		&models.ContactMessage{},
		&models.Donation{},
		&models.VolunteerApplication{},
		&models.MembershipApplication{},
		&models.Notification{},
	}
	for _, t := range tables {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(t).Error; err != nil {
			return err
		}
	}
	return db.Where("member_type = ?", models.MemberTypeVolunteer).Delete(&models.Member{}).Error
}
