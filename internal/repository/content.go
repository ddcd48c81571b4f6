package repository

import (
	"context"
	"errors"

	"nhaf/internal/models"

	"gorm.io/gorm"
)

// ContentRepository persists the editable donation and membership content:
// suggested tiers, bank accounts and membership fees.
type ContentRepository interface {
	ListTiers(ctx context.Context) ([]models.DonationTier, error)
	GetTier(ctx context.Context, id uint) (*models.DonationTier, error)
	SaveTier(ctx context.Context, t *models.DonationTier) error
	DeleteTier(ctx context.Context, id uint) error

	ListBankDetails(ctx context.Context) ([]models.BankDetail, error)
	GetBankDetail(ctx context.Context, id uint) (*models.BankDetail, error)
	SaveBankDetail(ctx context.Context, b *models.BankDetail) error
	DeleteBankDetail(ctx context.Context, id uint) error

	ListFees(ctx context.Context) ([]models.MembershipFee, error)
	FeeFor(ctx context.Context, tier models.MembershipTier) (*models.MembershipFee, error)
	SaveFee(ctx context.Context, f *models.MembershipFee) error
	DeleteFee(ctx context.Context, id uint) error
}

type contentRepository struct {
	db *gorm.DB
}

// NewContentRepository returns a new ContentRepository implementation.
func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

func listRanked[T any](ctx context.Context, db *gorm.DB, scopes ...func(*gorm.DB) *gorm.DB) ([]T, error) {
	var items []T
	err := db.WithContext(ctx).Scopes(scopes...).Order("sort_order ASC").Order("id ASC").Find(&items).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return items, nil
}

// reorder assigns sort_order 0..n-1 following ids in one transaction.
// Unknown ids are skipped.
func reorder[T any](ctx context.Context, db *gorm.DB, ids []uint) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, id := range ids {
			if err := tx.Model(new(T)).Where("id = ?", id).Update("sort_order", i).Error; err != nil {
				return models.NewInternalError(err)
			}
		}
		return nil
	})
}

func getByID[T any](ctx context.Context, db *gorm.DB, resource string, id uint) (*T, error) {
	var item T
	if err := db.WithContext(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError(resource, id)
		}
		return nil, models.NewInternalError(err)
	}
	return &item, nil
}

func deleteByID[T any](ctx context.Context, db *gorm.DB, resource string, id uint) error {
	res := db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError(resource, id)
	}
	return nil
}

func (r *contentRepository) ListTiers(ctx context.Context) ([]models.DonationTier, error) {
	return listRanked[models.DonationTier](ctx, readDB(r.db))
}

func (r *contentRepository) GetTier(ctx context.Context, id uint) (*models.DonationTier, error) {
	return getByID[models.DonationTier](ctx, r.db, "Donation tier", id)
}

func (r *contentRepository) SaveTier(ctx context.Context, t *models.DonationTier) error {
	if err := r.db.WithContext(ctx).Save(t).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *contentRepository) DeleteTier(ctx context.Context, id uint) error {
	return deleteByID[models.DonationTier](ctx, r.db, "Donation tier", id)
}

func (r *contentRepository) ListBankDetails(ctx context.Context) ([]models.BankDetail, error) {
	return listRanked[models.BankDetail](ctx, readDB(r.db))
}

func (r *contentRepository) GetBankDetail(ctx context.Context, id uint) (*models.BankDetail, error) {
	return getByID[models.BankDetail](ctx, r.db, "Bank detail", id)
}

func (r *contentRepository) SaveBankDetail(ctx context.Context, b *models.BankDetail) error {
	if err := r.db.WithContext(ctx).Save(b).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *contentRepository) DeleteBankDetail(ctx context.Context, id uint) error {
	return deleteByID[models.BankDetail](ctx, r.db, "Bank detail", id)
}

func (r *contentRepository) ListFees(ctx context.Context) ([]models.MembershipFee, error) {
	var fees []models.MembershipFee
	if err := readDB(r.db).WithContext(ctx).Order("member_type ASC").Find(&fees).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return fees, nil
}

// FeeFor returns nil without error when no fee is configured for tier.
func (r *contentRepository) FeeFor(ctx context.Context, tier models.MembershipTier) (*models.MembershipFee, error) {
	var fee models.MembershipFee
	if err := r.db.WithContext(ctx).Where("member_type = ?", tier).First(&fee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &fee, nil
}

func (r *contentRepository) SaveFee(ctx context.Context, f *models.MembershipFee) error {
	if err := r.db.WithContext(ctx).Save(f).Error; err != nil {
		if IsUniqueViolation(err) {
			return models.NewConflictError("A fee for this membership type already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *contentRepository) DeleteFee(ctx context.Context, id uint) error {
	return deleteByID[models.MembershipFee](ctx, r.db, "Membership fee", id)
}
