// Command memberids assigns identifiers to every member that has none.
package main

import (
	"context"
	"fmt"
	"log"

	"nhaf/internal/cache"
	"nhaf/internal/config"
	"nhaf/internal/database"
	"nhaf/internal/memberid"
	"nhaf/internal/models"
	"nhaf/internal/repository"
	"nhaf/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	// The public directory cache is dropped when anything changes.
	cache.InitRedis(cfg.RedisURL)

	members := repository.NewMemberRepository(db)
	settings := service.NewSettingsService(repository.NewSettingsRepository(db))
	svc := service.NewMemberService(members, memberid.NewEngine(members, cfg.MemberIDPrefix), settings)

	updated, err := svc.FillMissingIDs(context.Background(), func(m *models.Member, old string) {
		if old == "" {
			old = "(none)"
		}
		fmt.Printf("%s: %s -> %s\n", m.Name, old, m.MemberID)
	})
	if err != nil {
		log.Fatalf("Failed after %d updates: %v", updated, err)
	}
	fmt.Printf("Updated %d member IDs\n", updated)
}
