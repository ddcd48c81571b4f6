package repository

import (
	"context"
	"errors"

	"nhaf/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StatusGuard inspects the locked, previously persisted status of an
// application and returns an error to abort the transition.
type StatusGuard func(previous models.ApplicationStatus) error

// ApplicationRepository persists volunteer and membership applications.
type ApplicationRepository interface {
	CreateVolunteer(ctx context.Context, app *models.VolunteerApplication) error
	GetVolunteer(ctx context.Context, id uint) (*models.VolunteerApplication, error)
	ListVolunteers(ctx context.Context, limit int) ([]models.VolunteerApplication, error)
	TransitionVolunteer(ctx context.Context, id uint, next models.ApplicationStatus, guard StatusGuard) (*models.VolunteerApplication, models.ApplicationStatus, error)

	CreateMembership(ctx context.Context, app *models.MembershipApplication) error
	GetMembership(ctx context.Context, id uint) (*models.MembershipApplication, error)
	GetMembershipByReference(ctx context.Context, method models.PaymentMethod, reference string) (*models.MembershipApplication, error)
	ListMemberships(ctx context.Context, limit int) ([]models.MembershipApplication, error)
	TransitionMembership(ctx context.Context, id uint, next models.ApplicationStatus, guard StatusGuard) (*models.MembershipApplication, models.ApplicationStatus, error)
	SetPaymentReference(ctx context.Context, id uint, reference string) error
	SettleMembershipPayment(ctx context.Context, id uint, to models.PaymentStatus, transactionID string, amount *float64) (bool, error)

	CountPending(ctx context.Context) (int64, error)
}

type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository returns a new ApplicationRepository implementation.
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

// reviewQueue lists pending applications first, newest first within each group.
func reviewQueue(db *gorm.DB) *gorm.DB {
	return db.
		Order("CASE WHEN status = 'pending' THEN 0 ELSE 1 END").
		Order("submitted_at DESC").
		Order("id DESC")
}

func (r *applicationRepository) CreateVolunteer(ctx context.Context, app *models.VolunteerApplication) error {
	if err := r.db.WithContext(ctx).Create(app).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *applicationRepository) GetVolunteer(ctx context.Context, id uint) (*models.VolunteerApplication, error) {
	var app models.VolunteerApplication
	if err := r.db.WithContext(ctx).First(&app, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Volunteer application", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &app, nil
}

func (r *applicationRepository) ListVolunteers(ctx context.Context, limit int) ([]models.VolunteerApplication, error) {
	var apps []models.VolunteerApplication
	if err := reviewQueue(readDB(r.db).WithContext(ctx)).
		Limit(clampLimit(limit, 50, 200)).
		Find(&apps).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return apps, nil
}

// TransitionVolunteer locks the row, lets guard veto based on the previous
// status and writes next. It returns the updated row and the previous status.
func (r *applicationRepository) TransitionVolunteer(ctx context.Context, id uint, next models.ApplicationStatus, guard StatusGuard) (*models.VolunteerApplication, models.ApplicationStatus, error) {
	var (
		app      models.VolunteerApplication
		previous models.ApplicationStatus
	)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&app, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Volunteer application", id)
			}
			return models.NewInternalError(err)
		}
		previous = app.Status
		if guard != nil {
			if err := guard(previous); err != nil {
				return err
			}
		}
		if previous == next {
			return nil
		}
		app.Status = next
		if err := tx.Model(&app).Update("status", next).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, previous, err
	}
	return &app, previous, nil
}

func (r *applicationRepository) CreateMembership(ctx context.Context, app *models.MembershipApplication) error {
	if err := r.db.WithContext(ctx).Create(app).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *applicationRepository) GetMembership(ctx context.Context, id uint) (*models.MembershipApplication, error) {
	var app models.MembershipApplication
	if err := r.db.WithContext(ctx).First(&app, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Membership application", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &app, nil
}

// GetMembershipByReference returns nil without error when no application
// carries the gateway reference.
func (r *applicationRepository) GetMembershipByReference(ctx context.Context, method models.PaymentMethod, reference string) (*models.MembershipApplication, error) {
	if reference == "" {
		return nil, nil
	}
	var app models.MembershipApplication
	if err := r.db.WithContext(ctx).
		Where("payment_method = ? AND payment_reference = ?", method, reference).
		Order("id DESC").
		First(&app).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &app, nil
}

func (r *applicationRepository) ListMemberships(ctx context.Context, limit int) ([]models.MembershipApplication, error) {
	var apps []models.MembershipApplication
	if err := reviewQueue(readDB(r.db).WithContext(ctx)).
		Limit(clampLimit(limit, 50, 200)).
		Find(&apps).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return apps, nil
}

// TransitionMembership is TransitionVolunteer for membership applications.
func (r *applicationRepository) TransitionMembership(ctx context.Context, id uint, next models.ApplicationStatus, guard StatusGuard) (*models.MembershipApplication, models.ApplicationStatus, error) {
	var (
		app      models.MembershipApplication
		previous models.ApplicationStatus
	)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&app, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Membership application", id)
			}
			return models.NewInternalError(err)
		}
		previous = app.Status
		if guard != nil {
			if err := guard(previous); err != nil {
				return err
			}
		}
		if previous == next {
			return nil
		}
		app.Status = next
		if err := tx.Model(&app).Update("status", next).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, previous, err
	}
	return &app, previous, nil
}

func (r *applicationRepository) SetPaymentReference(ctx context.Context, id uint, reference string) error {
	res := r.db.WithContext(ctx).Model(&models.MembershipApplication{}).
		Where("id = ?", id).
		Update("payment_reference", reference)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Membership application", id)
	}
	return nil
}

// SettleMembershipPayment moves a pending payment to `to`. It reports false
// when the payment had already left pending, so replays change nothing.
func (r *applicationRepository) SettleMembershipPayment(ctx context.Context, id uint, to models.PaymentStatus, transactionID string, amount *float64) (bool, error) {
	updates := map[string]interface{}{"payment_status": to}
	if transactionID != "" {
		updates["transaction_id"] = transactionID
	}
	if amount != nil {
		updates["amount_paid"] = *amount
	}
	res := r.db.WithContext(ctx).Model(&models.MembershipApplication{}).
		Where("id = ? AND payment_status = ?", id, models.PaymentStatusPending).
		Updates(updates)
	if res.Error != nil {
		return false, models.NewInternalError(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *applicationRepository) CountPending(ctx context.Context) (int64, error) {
	db := readDB(r.db).WithContext(ctx)
	var volunteers, memberships int64
	if err := db.Model(&models.VolunteerApplication{}).Where("status = ?", models.ApplicationStatusPending).Count(&volunteers).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	if err := db.Model(&models.MembershipApplication{}).Where("status = ?", models.ApplicationStatusPending).Count(&memberships).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return volunteers + memberships, nil
}
