package seed

import (
	"context"
	"strings"
	"testing"

	"nhaf/internal/models"
	"nhaf/internal/testutil"
)

func TestDefaultFixture(t *testing.T) {
	f, err := DefaultFixture()
	if err != nil {
		t.Fatalf("parse default fixture: %v", err)
	}
	if len(f.Chapters) == 0 || len(f.DonationTiers) == 0 || len(f.Board) == 0 {
		t.Fatalf("default fixture is missing sections: %+v", f)
	}
	if len(f.MembershipFees) != 2 {
		t.Fatalf("expected a fee per tier, got %d", len(f.MembershipFees))
	}
}

func TestParseFixture_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown key":  "chapters: [a]\nsponsors: [b]\n",
		"unknown tier": "membership_fees:\n  - member_type: lifetime\n    amount: 1\n",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseFixture([]byte(raw)); err == nil {
				t.Fatalf("expected an error")
			}
		})
	}
}

func TestContent_Idempotent(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	ctx := context.Background()
	f, err := DefaultFixture()
	if err != nil {
		t.Fatalf("fixture: %v", err)
	}

	if err := Content(ctx, db, f, "NHAFN"); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := Content(ctx, db, f, "NHAFN"); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	counts := map[string]struct {
		model any
		want  int
	}{
		"chapters":        {&models.Chapter{}, len(f.Chapters)},
		"fees":            {&models.MembershipFee{}, len(f.MembershipFees)},
		"tiers":           {&models.DonationTier{}, len(f.DonationTiers)},
		"bank details":    {&models.BankDetail{}, len(f.BankDetails)},
		"quick responses": {&models.QuickResponse{}, len(f.QuickResponses)},
		"board":           {&models.Member{}, len(f.Board)},
	}
	for name, c := range counts {
		var n int64
		if err := db.Model(c.model).Count(&n).Error; err != nil {
			t.Fatalf("count %s: %v", name, err)
		}
		if n != int64(c.want) {
			t.Fatalf("expected %d %s, got %d", c.want, name, n)
		}
	}

	var chair models.Member
	if err := db.Where("role = ?", "Chairperson").First(&chair).Error; err != nil {
		t.Fatalf("load chair: %v", err)
	}
	if chair.MemberID != "NHAFN-B-001-2015" {
		t.Fatalf("unexpected chair identifier %q", chair.MemberID)
	}

	var site models.SiteIdentity
	if err := db.First(&site, models.SingletonID).Error; err != nil {
		t.Fatalf("load site identity: %v", err)
	}
	if site.SiteTitle != f.Site.SiteTitle {
		t.Fatalf("unexpected site title %q", site.SiteTitle)
	}
}

func TestSeed_DemoData(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	opts := DefaultOptions()
	opts.RandSeed = 42
	opts.Members = 5
	opts.Donations = 6

	sum, err := Seed(context.Background(), db, opts)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if sum.Members != 5 || sum.Donations != 6 || sum.Applications != opts.Applications {
		t.Fatalf("unexpected summary %+v", sum)
	}

	var volunteers []models.Member
	if err := db.Where("member_type = ?", models.MemberTypeVolunteer).Find(&volunteers).Error; err != nil {
		t.Fatalf("load volunteers: %v", err)
	}
	if len(volunteers) != 5 {
		t.Fatalf("expected 5 volunteers, got %d", len(volunteers))
	}
	seen := map[string]bool{}
	for _, v := range volunteers {
		if !strings.HasPrefix(v.MemberID, "NHAFN-M-") {
			t.Fatalf("volunteer %q has identifier %q", v.Name, v.MemberID)
		}
		if seen[v.MemberID] {
			t.Fatalf("duplicate identifier %q", v.MemberID)
		}
		seen[v.MemberID] = true
		if v.ChapterID == nil {
			t.Fatalf("volunteer %q has no chapter", v.Name)
		}
	}

	var chats int64
	if err := db.Model(&models.ChatMessage{}).Distinct("session_id").Count(&chats).Error; err != nil {
		t.Fatalf("count chat sessions: %v", err)
	}
	if chats != int64(opts.ChatSessions) {
		t.Fatalf("expected %d chat sessions, got %d", opts.ChatSessions, chats)
	}
}

func TestSeed_CleanKeepsReferenceContent(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	ctx := context.Background()
	opts := DefaultOptions()
	opts.RandSeed = 7
	opts.Members = 3

	if _, err := Seed(ctx, db, opts); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	opts.Clean = true
	if _, err := Seed(ctx, db, opts); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	var donations, volunteers, board int64
	db.Model(&models.Donation{}).Count(&donations)
	db.Model(&models.Member{}).Where("member_type = ?", models.MemberTypeVolunteer).Count(&volunteers)
	db.Model(&models.Member{}).Where("member_type = ?", models.MemberTypeBoard).Count(&board)
	if donations != int64(opts.Donations) || volunteers != 3 {
		t.Fatalf("clean did not reset demo data: donations=%d volunteers=%d", donations, volunteers)
	}
	if board != 3 {
		t.Fatalf("board members should survive a clean run, got %d", board)
	}
}

func TestFactory_DryRunWritesNothing(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	f := NewFactory(db, Options{DryRun: true, RandSeed: 1, MemberIDPrefix: "NHAFN"})

	m, err := f.CreateVolunteerMember(context.Background(), nil)
	if err != nil {
		t.Fatalf("build member: %v", err)
	}
	if m.MemberID == "" || m.Name == "" {
		t.Fatalf("member was not populated: %+v", m)
	}
	var n int64
	db.Model(&models.Member{}).Count(&n)
	if n != 0 {
		t.Fatalf("dry run wrote %d members", n)
	}
}
