// Package bootstrap prepares the database and cache for the API process.
package bootstrap

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"nhaf/internal/cache"
	"nhaf/internal/config"
	"nhaf/internal/database"
	"nhaf/internal/middleware"
	"nhaf/internal/repository"
	"nhaf/internal/seed"
	"nhaf/internal/service"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	defaultRootUsername = "nhaf_root"
	defaultRootEmail    = "root@nhaf.local"
)

// Options control runtime initialization.
type Options struct {
	// SeedContent loads the reference content fixture (chapters, fees,
	// donation tiers, bank accounts, canned replies, board).
	SeedContent bool
}

// InitRuntime connects the database and Redis, ensures the local root admin
// and optionally loads reference content. The Redis client is nil when Redis
// is unreachable.
func InitRuntime(ctx context.Context, cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}
	rdb := cache.InitRedis(cfg.RedisURL)

	if err := ensureDevRootAdmin(cfg, db); err != nil {
		return nil, nil, fmt.Errorf("bootstrap development root admin: %w", err)
	}

	if opts.SeedContent {
		fixture, err := seed.DefaultFixture()
		if err != nil {
			return nil, nil, err
		}
		if err := seed.Content(ctx, db, fixture, cfg.MemberIDPrefix); err != nil {
			return nil, nil, fmt.Errorf("seed reference content: %w", err)
		}
	}
	return db, rdb, nil
}

// ensureDevRootAdmin creates or promotes the DEV_ROOT_* account. It only
// acts in development with DEV_BOOTSTRAP_ROOT set.
func ensureDevRootAdmin(cfg *config.Config, db *gorm.DB) error {
	if cfg == nil || db == nil || !cfg.DevBootstrapRoot || !strings.EqualFold(cfg.Env, "development") {
		return nil
	}
	if cfg.DevRootPassword == "" {
		return errors.New("DEV_ROOT_PASSWORD must be set when DEV_BOOTSTRAP_ROOT is enabled")
	}

	in := service.CreateStaffInput{
		Username: cmp.Or(strings.TrimSpace(cfg.DevRootUsername), defaultRootUsername),
		Email:    cmp.Or(strings.TrimSpace(cfg.DevRootEmail), defaultRootEmail),
		Password: cfg.DevRootPassword,
	}
	users := service.NewUserService(repository.NewUserRepository(db))
	root, created, err := users.EnsureAdmin(context.Background(), in, cfg.DevRootForceCredentials)
	if err != nil {
		return err
	}

	middleware.Logger.Info("development root admin ready",
		slog.Uint64("user_id", uint64(root.ID)),
		slog.String("username", root.Username),
		slog.Bool("created", created),
	)
	return nil
}
