// Command seed loads reference content and demo data into the database.
package main

import (
	"context"
	"flag"
	"log"

	"nhaf/internal/config"
	"nhaf/internal/database"
	"nhaf/internal/seed"
)

func main() {
	defaults := seed.DefaultOptions()
	contentOnly := flag.Bool("content", false, "Load only the reference content fixture")
	members := flag.Int("members", defaults.Members, "Number of volunteer members to create")
	applications := flag.Int("applications", defaults.Applications, "Number of pending applications to create")
	donations := flag.Int("donations", defaults.Donations, "Number of donations to create")
	contacts := flag.Int("contacts", defaults.Contacts, "Number of contact messages to create")
	chats := flag.Int("chats", defaults.ChatSessions, "Number of chat sessions to create")
	clean := flag.Bool("clean", false, "Remove demo data before seeding")
	dryRun := flag.Bool("dry-run", false, "Build demo data without writing it")
	randSeed := flag.Int64("rand-seed", 0, "Random seed for reproducible data (0 = random)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ctx := context.Background()
	if *contentOnly {
		fixture, err := seed.DefaultFixture()
		if err != nil {
			log.Fatalf("Invalid content fixture: %v", err)
		}
		if err := seed.Content(ctx, db, fixture, cfg.MemberIDPrefix); err != nil {
			log.Fatalf("Content seeding failed: %v", err)
		}
		log.Println("Reference content loaded")
		return
	}

	sum, err := seed.Seed(ctx, db, seed.Options{
		Members:        *members,
		Applications:   *applications,
		Donations:      *donations,
		Contacts:       *contacts,
		ChatSessions:   *chats,
		Clean:          *clean,
		DryRun:         *dryRun,
		RandSeed:       *randSeed,
		MemberIDPrefix: cfg.MemberIDPrefix,
	})
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Printf("Seeded %d members, %d applications, %d donations, %d contact messages, %d chat sessions",
		sum.Members, sum.Applications, sum.Donations, sum.Contacts, sum.ChatSessions)
}
