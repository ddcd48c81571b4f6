package repository

import (
	"context"
	"errors"

	"nhaf/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Ranked is list, get, save, delete and reorder over one staff-managed
// content table. Lists default to sort_order then id.
type Ranked[T any] struct {
	db       *gorm.DB
	resource string
	conflict string
	order    []string
}

func newRanked[T any](db *gorm.DB, resource string, order ...string) Ranked[T] {
	return Ranked[T]{db: db, resource: resource, conflict: resource + " already exists", order: order}
}

// List returns every row matching scopes.
func (r Ranked[T]) List(ctx context.Context, scopes ...func(*gorm.DB) *gorm.DB) ([]T, error) {
	if len(r.order) == 0 {
		return listRanked[T](ctx, readDB(r.db), scopes...)
	}
	q := readDB(r.db).WithContext(ctx).Scopes(scopes...)
	for _, o := range r.order {
		q = q.Order(o)
	}
	var items []T
	if err := q.Find(&items).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return items, nil
}

func (r Ranked[T]) Get(ctx context.Context, id uint) (*T, error) {
	return getByID[T](ctx, r.db, r.resource, id)
}

// Save inserts or updates row without touching its associations.
func (r Ranked[T]) Save(ctx context.Context, row *T) error {
	return writeError(r.db.WithContext(ctx).Omit(clause.Associations).Save(row).Error, r.conflict)
}

func (r Ranked[T]) Delete(ctx context.Context, id uint) error {
	return deleteByID[T](ctx, r.db, r.resource, id)
}

// Reorder assigns sort_order 0..n-1 following ids.
func (r Ranked[T]) Reorder(ctx context.Context, ids []uint) error {
	return reorder[T](ctx, r.db, ids)
}

// Active limits a query to rows with is_active set.
func Active(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

// Limit caps a list query.
func Limit(n int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB { return db.Limit(n) }
}

// SiteContentRepository persists the editable public pages: programs, the
// about and impact pages, the homepage blocks, the gallery, the menu and
// partner organizations.
type SiteContentRepository struct {
	db *gorm.DB

	Categories     Ranked[models.ProgramCategory]
	Programs       Ranked[models.Program]
	ImpactStats    Ranked[models.ImpactStat]
	Founders       Ranked[models.Founder]
	Chapters       Ranked[models.ChapterLocation]
	Achievements   Ranked[models.Achievement]
	Banners        Ranked[models.HeroBanner]
	HomeBlocks     Ranked[models.HomeContent]
	Announcements  Ranked[models.AnnouncementPopup]
	Gallery        Ranked[models.GalleryImage]
	Nav            Ranked[models.NavItem]
	Collaborations Ranked[models.Collaboration]
}

// NewSiteContentRepository returns a SiteContentRepository.
func NewSiteContentRepository(db *gorm.DB) *SiteContentRepository {
	return &SiteContentRepository{
		db:             db,
		Categories:     newRanked[models.ProgramCategory](db, "Program category", "name ASC", "id ASC"),
		Programs:       newRanked[models.Program](db, "Program", "event_date DESC", "id DESC"),
		ImpactStats:    newRanked[models.ImpactStat](db, "Impact stat"),
		Founders:       newRanked[models.Founder](db, "Founder"),
		Chapters:       newRanked[models.ChapterLocation](db, "Chapter location"),
		Achievements:   newRanked[models.Achievement](db, "Achievement"),
		Banners:        newRanked[models.HeroBanner](db, "Hero banner"),
		HomeBlocks:     newRanked[models.HomeContent](db, "Home content", "key ASC"),
		Announcements:  newRanked[models.AnnouncementPopup](db, "Announcement", "start_date DESC", "id DESC"),
		Gallery:        newRanked[models.GalleryImage](db, "Gallery image"),
		Nav:            newRanked[models.NavItem](db, "Nav item"),
		Collaborations: newRanked[models.Collaboration](db, "Collaboration", "sort_order ASC", "agreement_date DESC", "organization_name ASC"),
	}
}

// ProgramFilter narrows ListPrograms. Zero values match everything.
type ProgramFilter struct {
	Phase         models.ProgramPhase
	CategoryTagID uint
	Ascending     bool
	Limit         int
}

// ListPrograms returns programs by event date with their category tags.
func (r *SiteContentRepository) ListPrograms(ctx context.Context, f ProgramFilter) ([]models.Program, error) {
	q := readDB(r.db).WithContext(ctx).Preload("CategoryTag")
	if f.Phase != "" {
		q = q.Where("category = ?", f.Phase)
	}
	if f.CategoryTagID != 0 {
		q = q.Where("category_tag_id = ?", f.CategoryTagID)
	}
	if f.Ascending {
		q = q.Order("event_date ASC").Order("id ASC")
	} else {
		q = q.Order("event_date DESC").Order("id DESC")
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	var out []models.Program
	if err := q.Find(&out).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return out, nil
}

// ProgramBySlug loads one program with its category tag.
func (r *SiteContentRepository) ProgramBySlug(ctx context.Context, slug string) (*models.Program, error) {
	var p models.Program
	err := r.db.WithContext(ctx).Preload("CategoryTag").Where("slug = ?", slug).First(&p).Error
	switch {
	case err == nil:
		return &p, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, models.NewNotFoundError("Program", slug)
	default:
		return nil, models.NewInternalError(err)
	}
}

// SlugTaken reports whether another program than except uses slug.
func (r *SiteContentRepository) SlugTaken(ctx context.Context, slug string, except uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Program{}).
		Where("slug = ? AND id <> ?", slug, except).Count(&n).Error
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return n > 0, nil
}

// PublishedAnnouncements returns active, published popups regardless of
// their display window.
func (r *SiteContentRepository) PublishedAnnouncements(ctx context.Context) ([]models.AnnouncementPopup, error) {
	return r.Announcements.List(ctx, Active, func(db *gorm.DB) *gorm.DB {
		return db.Where("status = ?", models.AnnouncementPublished)
	})
}

// NavTree returns top-level menu entries with their children, both in
// display order.
func (r *SiteContentRepository) NavTree(ctx context.Context, activeOnly bool) ([]models.NavItem, error) {
	children := func(db *gorm.DB) *gorm.DB {
		if activeOnly {
			db = Active(db)
		}
		return db.Order("sort_order ASC").Order("id ASC")
	}
	return r.Nav.List(ctx, func(db *gorm.DB) *gorm.DB {
		db = db.Where("parent_id IS NULL").Preload("Children", children)
		if activeOnly {
			db = Active(db)
		}
		return db
	})
}

// NavChildCount counts the direct children of a menu entry.
func (r *SiteContentRepository) NavChildCount(ctx context.Context, id uint) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.NavItem{}).Where("parent_id = ?", id).Count(&n).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return n, nil
}

// DeleteNavItem removes a menu entry together with its children.
func (r *SiteContentRepository) DeleteNavItem(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("parent_id = ?", id).Delete(&models.NavItem{}).Error; err != nil {
			return models.NewInternalError(err)
		}
		return deleteByID[models.NavItem](ctx, tx, "Nav item", id)
	})
}

// navDetached are the top-level entries whose submenus a restore hides.
var navDetached = []string{"/contact/", "/team/"}

// RestoreDefaultNav recreates any missing stock menu entry, matched by URL,
// and returns how many rows it created. Existing entries keep their edits,
// except that the stock submenus are reactivated and the Contact and Team
// submenus are hidden.
func (r *SiteContentRepository) RestoreDefaultNav(ctx context.Context) (int, error) {
	created := 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, def := range models.DefaultNavItems() {
			parent, made, err := ensureNavItem(ctx, tx, def, nil)
			if err != nil {
				return err
			}
			if made {
				created++
			}
			for _, child := range def.Children {
				item, made, err := ensureNavItem(ctx, tx, child, &parent.ID)
				if err != nil {
					return err
				}
				if made {
					created++
					continue
				}
				item.Title, item.IconClass, item.IsActive = child.Title, child.IconClass, true
				if err := tx.Omit(clause.Associations).Save(item).Error; err != nil {
					return models.NewInternalError(err)
				}
			}
		}

		detached := tx.Model(&models.NavItem{}).Select("id").Where("parent_id IS NULL AND url IN ?", navDetached)
		if err := tx.Model(&models.NavItem{}).Where("parent_id IN (?)", detached).
			Update("is_active", false).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	return created, err
}

// ensureNavItem finds the entry with def's URL under parent, creating it
// from def when missing.
func ensureNavItem(ctx context.Context, tx *gorm.DB, def models.NavItem, parent *uint) (*models.NavItem, bool, error) {
	q := "url = ? AND parent_id IS NULL"
	args := []any{def.URL}
	if parent != nil {
		q = "url = ? AND parent_id = ?"
		args = append(args, *parent)
	}
	found, err := findOne[models.NavItem](ctx, tx, q, args...)
	if err != nil || found != nil {
		return found, false, err
	}
	row := def
	row.Children = nil
	row.ParentID = parent
	row.IsActive = true
	if err := tx.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, false, models.NewInternalError(err)
	}
	return &row, true, nil
}
