package repository

import (
	"context"
	"errors"

	"nhaf/internal/models"

	"gorm.io/gorm"
)

// DonationFilter narrows the staff donation listing.
type DonationFilter struct {
	Status models.PaymentStatus
	Method models.PaymentMethod
	Limit  int
	Offset int
}

// DonationStats summarizes completed donations.
type DonationStats struct {
	Count int64   `json:"count"`
	Total float64 `json:"total"`
}

// DonationRepository persists donation attempts.
type DonationRepository interface {
	Create(ctx context.Context, d *models.Donation) error
	GetByID(ctx context.Context, id uint) (*models.Donation, error)
	GetByReference(ctx context.Context, method models.PaymentMethod, reference string) (*models.Donation, error)
	GetByPidx(ctx context.Context, pidx string) (*models.Donation, error)
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, f DonationFilter) ([]models.Donation, int64, error)
	Settle(ctx context.Context, id uint, to models.PaymentStatus, transactionID string) (bool, error)
	CompletedStats(ctx context.Context) (DonationStats, error)
}

type donationRepository struct {
	db *gorm.DB
}

// NewDonationRepository returns a new DonationRepository implementation.
func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &donationRepository{db: db}
}

func (r *donationRepository) Create(ctx context.Context, d *models.Donation) error {
	if err := r.db.WithContext(ctx).Create(d).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *donationRepository) GetByID(ctx context.Context, id uint) (*models.Donation, error) {
	var d models.Donation
	if err := r.db.WithContext(ctx).First(&d, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Donation", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &d, nil
}

// GetByReference returns nil without error for unknown references; gateway
// callbacks for foreign tokens are ignored, not failed.
func (r *donationRepository) GetByReference(ctx context.Context, method models.PaymentMethod, reference string) (*models.Donation, error) {
	if reference == "" {
		return nil, nil
	}
	return r.first(ctx, "payment_method = ? AND payment_reference = ?", method, reference)
}

// GetByPidx returns nil without error for unknown Khalti payment ids.
func (r *donationRepository) GetByPidx(ctx context.Context, pidx string) (*models.Donation, error) {
	if pidx == "" {
		return nil, nil
	}
	return r.first(ctx, "pidx = ?", pidx)
}

func (r *donationRepository) first(ctx context.Context, query string, args ...interface{}) (*models.Donation, error) {
	var d models.Donation
	if err := r.db.WithContext(ctx).Where(query, args...).Order("id DESC").First(&d).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &d, nil
}

func (r *donationRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Donation{}).Count(&n).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return n, nil
}

func (f DonationFilter) scope(db *gorm.DB) *gorm.DB {
	if f.Status != "" {
		db = db.Where("status = ?", f.Status)
	}
	if f.Method != "" {
		db = db.Where("payment_method = ?", f.Method)
	}
	return db
}

func (r *donationRepository) List(ctx context.Context, f DonationFilter) ([]models.Donation, int64, error) {
	db := readDB(r.db).WithContext(ctx)

	var total int64
	if err := db.Model(&models.Donation{}).Scopes(f.scope).Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	var donations []models.Donation
	if err := db.Scopes(f.scope).
		Order("created_at DESC").Order("id DESC").
		Limit(clampLimit(f.Limit, 50, 200)).
		Offset(f.Offset).
		Find(&donations).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return donations, total, nil
}

// Settle moves a pending donation to `to` in one conditional UPDATE. It
// reports whether this call made the transition; completed, failed and
// canceled donations never change again.
func (r *donationRepository) Settle(ctx context.Context, id uint, to models.PaymentStatus, transactionID string) (bool, error) {
	updates := map[string]interface{}{"status": to}
	if transactionID != "" {
		updates["transaction_id"] = transactionID
	}
	res := r.db.WithContext(ctx).Model(&models.Donation{}).
		Where("id = ? AND status = ?", id, models.PaymentStatusPending).
		Updates(updates)
	if res.Error != nil {
		return false, models.NewInternalError(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *donationRepository) CompletedStats(ctx context.Context) (DonationStats, error) {
	var stats DonationStats
	err := readDB(r.db).WithContext(ctx).Model(&models.Donation{}).
		Select("COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total").
		Where("status = ?", models.PaymentStatusCompleted).
		Scan(&stats).Error
	if err != nil {
		return DonationStats{}, models.NewInternalError(err)
	}
	return stats, nil
}
