package repository

import (
	"context"
	"errors"
	"strings"

	"nhaf/internal/models"

	"gorm.io/gorm"
)

// MemberFilter narrows a directory listing. Zero values mean "any".
type MemberFilter struct {
	Type      models.MemberType
	Active    *bool
	ChapterID *uint
	Search    string
	Limit     int
	Offset    int
}

// MemberRepository persists directory entries and chapters. It also serves
// as the peer counter of the identifier engine.
type MemberRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Member, error)
	Create(ctx context.Context, m *models.Member) error
	Update(ctx context.Context, m *models.Member) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, f MemberFilter) ([]models.Member, int64, error)
	ListActive(ctx context.Context) ([]models.Member, error)
	CountActive(ctx context.Context) (int64, error)
	ListMissingIDs(ctx context.Context) ([]models.Member, error)
	FindForPromotion(ctx context.Context, email, name string) (*models.Member, error)

	CountByType(ctx context.Context, memberType models.MemberType) (int64, error)
	CountAhead(ctx context.Context, memberType models.MemberType, order int, id uint) (int64, error)

	ListChapters(ctx context.Context) ([]models.Chapter, error)
	GetChapter(ctx context.Context, id uint) (*models.Chapter, error)
	SaveChapter(ctx context.Context, ch *models.Chapter) error
	DeleteChapter(ctx context.Context, id uint) error
}

type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository returns a new MemberRepository implementation.
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

func directoryOrder(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC").Order("name ASC").Order("id ASC")
}

func (r *memberRepository) GetByID(ctx context.Context, id uint) (*models.Member, error) {
	var m models.Member
	if err := r.db.WithContext(ctx).Preload("Chapter").First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Member", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &m, nil
}

func (r *memberRepository) Create(ctx context.Context, m *models.Member) error {
	if err := r.db.WithContext(ctx).Omit("Chapter").Create(m).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *memberRepository) Update(ctx context.Context, m *models.Member) error {
	if err := r.db.WithContext(ctx).Omit("Chapter").Save(m).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *memberRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Member{}, id)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Member", id)
	}
	return nil
}

func (f MemberFilter) scope(db *gorm.DB) *gorm.DB {
	if f.Type != "" {
		db = db.Where("member_type = ?", f.Type)
	}
	if f.Active != nil {
		db = db.Where("is_active = ?", *f.Active)
	}
	if f.ChapterID != nil {
		db = db.Where("chapter_id = ?", *f.ChapterID)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		db = db.Where("LOWER(name) LIKE ? OR LOWER(member_id) LIKE ?", like, like)
	}
	return db
}

func (r *memberRepository) List(ctx context.Context, f MemberFilter) ([]models.Member, int64, error) {
	db := readDB(r.db).WithContext(ctx)

	var total int64
	if err := db.Model(&models.Member{}).Scopes(f.scope).Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	var members []models.Member
	if err := directoryOrder(db.Scopes(f.scope)).
		Preload("Chapter").
		Limit(clampLimit(f.Limit, 100, 500)).
		Offset(f.Offset).
		Find(&members).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return members, total, nil
}

// ListActive returns every active member in directory order.
func (r *memberRepository) ListActive(ctx context.Context) ([]models.Member, error) {
	var members []models.Member
	if err := directoryOrder(readDB(r.db).WithContext(ctx)).
		Preload("Chapter").
		Where("is_active = ?", true).
		Find(&members).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return members, nil
}

func (r *memberRepository) CountActive(ctx context.Context) (int64, error) {
	var n int64
	if err := readDB(r.db).WithContext(ctx).Model(&models.Member{}).Where("is_active = ?", true).Count(&n).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return n, nil
}

// ListMissingIDs returns members whose identifier is blank, in peer order.
func (r *memberRepository) ListMissingIDs(ctx context.Context) ([]models.Member, error) {
	var members []models.Member
	if err := r.db.WithContext(ctx).
		Where("member_id IS NULL OR TRIM(member_id) = ''").
		Order("sort_order ASC").Order("id ASC").
		Find(&members).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return members, nil
}

// FindForPromotion locates the member an approved application publishes to.
// Members are keyed by email; applicants without one share a blank-email
// bucket and are told apart by name. Returns nil when nothing matches.
func (r *memberRepository) FindForPromotion(ctx context.Context, email, name string) (*models.Member, error) {
	q := r.db.WithContext(ctx).Order("id ASC")
	if email = strings.TrimSpace(email); email != "" {
		q = q.Where("email = ?", email)
	} else {
		q = q.Where("(email IS NULL OR email = '') AND name = ?", name)
	}

	var m models.Member
	if err := q.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &m, nil
}

func (r *memberRepository) CountByType(ctx context.Context, memberType models.MemberType) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Member{}).
		Where("member_type = ?", memberType).
		Count(&n).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return n, nil
}

func (r *memberRepository) CountAhead(ctx context.Context, memberType models.MemberType, order int, id uint) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Member{}).
		Where("member_type = ?", memberType).
		Where("sort_order < ? OR (sort_order = ? AND id < ?)", order, order, id).
		Count(&n).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return n, nil
}

func (r *memberRepository) ListChapters(ctx context.Context) ([]models.Chapter, error) {
	var chapters []models.Chapter
	if err := readDB(r.db).WithContext(ctx).Order("name ASC").Find(&chapters).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return chapters, nil
}

func (r *memberRepository) GetChapter(ctx context.Context, id uint) (*models.Chapter, error) {
	var ch models.Chapter
	if err := r.db.WithContext(ctx).First(&ch, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Chapter", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &ch, nil
}

func (r *memberRepository) SaveChapter(ctx context.Context, ch *models.Chapter) error {
	if err := r.db.WithContext(ctx).Save(ch).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// DeleteChapter clears the chapter from its members before removing it.
func (r *memberRepository) DeleteChapter(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Member{}).Where("chapter_id = ?", id).Update("chapter_id", nil).Error; err != nil {
			return models.NewInternalError(err)
		}
		res := tx.Delete(&models.Chapter{}, id)
		if res.Error != nil {
			return models.NewInternalError(res.Error)
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("Chapter", id)
		}
		return nil
	})
}
