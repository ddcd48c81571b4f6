package database

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"nhaf/internal/config"
	"nhaf/internal/middleware"

	"gorm.io/gorm"
)

// DB_SCHEMA_MODE values.
const (
	SchemaModeHybrid = "hybrid"
	SchemaModeSQL    = "sql"
	SchemaModeAuto   = "auto"
)

var prodLikeEnvs = []string{"production", "prod", "staging", "stage"}

// SchemaStatus describes what ApplySchema would do for a configuration.
type SchemaStatus struct {
	Mode               string
	Environment        string
	WillRunSQL         bool
	WillRunAutoMigrate bool
	AppliedVersions    []int
	PendingMigrations  []Migration
}

// schemaPlan is the resolved DB_SCHEMA_MODE for one environment.
type schemaPlan struct {
	mode     string
	prodLike bool
	sql      bool
	auto     bool
}

func planSchema(cfg *config.Config) (schemaPlan, error) {
	p := schemaPlan{
		mode:     strings.ToLower(strings.TrimSpace(cfg.DBSchemaMode)),
		prodLike: slices.Contains(prodLikeEnvs, strings.ToLower(strings.TrimSpace(cfg.Env))),
	}
	if p.mode == "" {
		p.mode = SchemaModeHybrid
	}

	switch p.mode {
	case SchemaModeSQL:
		p.sql = true
	case SchemaModeHybrid:
		// Deployed databases only change through reviewed SQL.
		p.sql, p.auto = true, !p.prodLike
	case SchemaModeAuto:
		if p.prodLike && !cfg.DBAutoMigrateAllowDestructive {
			return p, fmt.Errorf("refusing DB_SCHEMA_MODE=auto in %q without DB_AUTOMIGRATE_ALLOW_DESTRUCTIVE=true", cfg.Env)
		}
		p.auto = true
	default:
		return p, fmt.Errorf("unsupported DB_SCHEMA_MODE %q", p.mode)
	}
	return p, nil
}

func schemaPolicy(cfg *config.Config) (runSQL bool, runAuto bool, err error) {
	p, err := planSchema(cfg)
	if err != nil {
		return false, false, err
	}
	return p.sql, p.auto, nil
}

// ApplySchema brings the database up to date according to DB_SCHEMA_MODE:
// embedded SQL migrations first, then GORM AutoMigrate over PersistentModels.
func ApplySchema(ctx context.Context, db *gorm.DB, cfg *config.Config) error {
	p, err := planSchema(cfg)
	if err != nil {
		return err
	}

	if p.sql {
		if err := RunMigrations(ctx, db); err != nil {
			return fmt.Errorf("run sql migrations: %w", err)
		}
	}
	if !p.auto {
		return nil
	}

	if p.prodLike {
		middleware.Logger.Warn("AutoMigrate enabled for a deployed environment; review schema diffs before release",
			slog.String("env", cfg.Env))
	}
	middleware.Logger.Info("running AutoMigrate", slog.String("mode", p.mode), slog.Int("models", len(PersistentModels())))
	if err := db.WithContext(ctx).AutoMigrate(PersistentModels()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

// GetSchemaStatus reports the resolved plan and, when SQL migrations are in
// play, which versions are applied and pending. It never writes.
func GetSchemaStatus(ctx context.Context, db *gorm.DB, cfg *config.Config) (*SchemaStatus, error) {
	p, err := planSchema(cfg)
	if err != nil {
		return nil, err
	}
	status := &SchemaStatus{
		Mode:               p.mode,
		Environment:        cfg.Env,
		WillRunSQL:         p.sql,
		WillRunAutoMigrate: p.auto,
	}
	if !p.sql {
		return status, nil
	}

	applied, err := NewMigrationStore(db).GetAppliedMigrations(ctx)
	if err != nil {
		return nil, err
	}
	status.AppliedVersions = applied
	status.PendingMigrations = PendingMigrations(applied, GetMigrations())
	return status, nil
}
