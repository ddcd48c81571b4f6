package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nhaf/internal/models"

	"gorm.io/gorm"
)

// singletonAttempts bounds the read/create loop of a singleton row: the first
// create can lose a race, the refetch after it cannot.
const singletonAttempts = 3

// SettingsRepository loads and stores the singleton configuration rows.
type SettingsRepository interface {
	ChatSettings(ctx context.Context) (*models.ChatSettings, error)
	TeamPage(ctx context.Context) (*models.TeamPageSettings, error)
	SiteIdentity(ctx context.Context) (*models.SiteIdentity, error)
	SiteTheme(ctx context.Context) (*models.SiteTheme, error)
	OrganizationInfo(ctx context.Context) (*models.OrganizationInfo, error)
	ContactInfo(ctx context.Context) (*models.ContactInfo, error)
	// Save writes a singleton row, forcing its id to the singleton key.
	Save(ctx context.Context, row interface{}) error
	TouchAdminLastSeen(ctx context.Context, at time.Time) error
}

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository returns a new SettingsRepository implementation.
func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

// getOrCreate reads the row with the singleton id, creating it from defaults
// when missing. A unique violation means another request created it first,
// so the loop refetches.
func getOrCreate[T any](ctx context.Context, db *gorm.DB, defaults func() T) (*T, error) {
	var lastErr error
	for attempt := 0; attempt < singletonAttempts; attempt++ {
		var row T
		err := db.WithContext(ctx).First(&row, models.SingletonID).Error
		if err == nil {
			return &row, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewInternalError(err)
		}

		row = defaults()
		err = db.WithContext(ctx).Create(&row).Error
		if err == nil {
			return &row, nil
		}
		if !IsUniqueViolation(err) {
			return nil, models.NewInternalError(err)
		}
		lastErr = err
	}
	return nil, models.NewInternalError(fmt.Errorf("singleton %T not resolved: %w", *new(T), lastErr))
}

func (r *settingsRepository) ChatSettings(ctx context.Context) (*models.ChatSettings, error) {
	return getOrCreate(ctx, r.db, models.DefaultChatSettings)
}

func (r *settingsRepository) TeamPage(ctx context.Context) (*models.TeamPageSettings, error) {
	return getOrCreate(ctx, r.db, models.DefaultTeamPageSettings)
}

func (r *settingsRepository) SiteIdentity(ctx context.Context) (*models.SiteIdentity, error) {
	return getOrCreate(ctx, r.db, models.DefaultSiteIdentity)
}

func (r *settingsRepository) SiteTheme(ctx context.Context) (*models.SiteTheme, error) {
	return getOrCreate(ctx, r.db, models.DefaultSiteTheme)
}

func (r *settingsRepository) OrganizationInfo(ctx context.Context) (*models.OrganizationInfo, error) {
	return getOrCreate(ctx, r.db, models.DefaultOrganizationInfo)
}

func (r *settingsRepository) ContactInfo(ctx context.Context) (*models.ContactInfo, error) {
	return getOrCreate(ctx, r.db, models.DefaultContactInfo)
}

func (r *settingsRepository) Save(ctx context.Context, row interface{}) error {
	db := r.db.WithContext(ctx)
	switch v := row.(type) {
	case *models.ChatSettings:
		v.ID = models.SingletonID
		db = db.Omit("DefaultQuickResponse")
	case *models.TeamPageSettings:
		v.ID = models.SingletonID
	case *models.SiteIdentity:
		v.ID = models.SingletonID
	case *models.SiteTheme:
		v.ID = models.SingletonID
	case *models.OrganizationInfo:
		v.ID = models.SingletonID
	case *models.ContactInfo:
		v.ID = models.SingletonID
	default:
		return models.NewInternalError(fmt.Errorf("unsupported settings row %T", row))
	}
	if err := db.Save(row).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// TouchAdminLastSeen records a staff visit to the chat console.
func (r *settingsRepository) TouchAdminLastSeen(ctx context.Context, at time.Time) error {
	if _, err := r.ChatSettings(ctx); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Model(&models.ChatSettings{}).
		Where("id = ?", models.SingletonID).
		Update("admin_last_seen", at).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
