package service

import (
	"cmp"
	"context"
	"slices"
	"strconv"
	"strings"
	"time"

	"nhaf/internal/cache"
	"nhaf/internal/models"
	"nhaf/internal/repository"
	"nhaf/internal/validation"
)

const (
	homeGalleryLimit      = 12
	homeProgramLimit      = 6
	collaborationsPerPage = 12
	// slugAttempts bounds the numeric suffixes tried for a generated slug.
	slugAttempts = 50
)

// SiteContentService manages the editable public pages. Public reads come
// from the Redis cache and every staff write drops the pages it touches.
type SiteContentService struct {
	repo     *repository.SiteContentRepository
	settings *SettingsService
	now      func() time.Time
}

// NewSiteContentService returns a SiteContentService.
func NewSiteContentService(repo *repository.SiteContentRepository, settings *SettingsService) *SiteContentService {
	return &SiteContentService{repo: repo, settings: settings, now: time.Now}
}

// HomePage is everything the homepage renders. Announcements holds only the
// popups live at request time.
type HomePage struct {
	Banners        []models.HeroBanner           `json:"banners"`
	Blocks         map[string]models.HomeContent `json:"contents"`
	Announcements  []models.AnnouncementPopup    `json:"announcements"`
	Gallery        []models.GalleryImage         `json:"gallery"`
	Programs       []models.Program              `json:"programs"`
	Collaborations []models.Collaboration        `json:"collaborations"`
}

// Home returns the homepage. The cached copy keeps every published popup so
// that display windows are applied per request.
func (s *SiteContentService) Home(ctx context.Context) (*HomePage, error) {
	var page HomePage
	err := cache.Aside(ctx, cache.ContentKey(cache.ContentHome), &page, cache.ContentTTL, func() error {
		var err error
		if page.Banners, err = s.repo.Banners.List(ctx, repository.Active); err != nil {
			return err
		}
		blocks, err := s.repo.HomeBlocks.List(ctx, repository.Active)
		if err != nil {
			return err
		}
		page.Blocks = make(map[string]models.HomeContent, len(blocks))
		for _, b := range blocks {
			page.Blocks[b.Key] = b
		}
		if page.Announcements, err = s.repo.PublishedAnnouncements(ctx); err != nil {
			return err
		}
		if page.Gallery, err = s.repo.Gallery.List(ctx, repository.Active, repository.Limit(homeGalleryLimit)); err != nil {
			return err
		}
		if page.Programs, err = s.repo.ListPrograms(ctx, repository.ProgramFilter{Limit: homeProgramLimit}); err != nil {
			return err
		}
		page.Collaborations, err = s.repo.Collaborations.List(ctx, repository.Active)
		return err
	})
	if err != nil {
		return nil, err
	}
	page.Announcements = liveAnnouncements(page.Announcements, s.now())
	return &page, nil
}

// liveAnnouncements keeps the popups live at now, high priority first, then
// latest start, then newest. A popup without a start sorts after dated ones.
func liveAnnouncements(all []models.AnnouncementPopup, now time.Time) []models.AnnouncementPopup {
	out := make([]models.AnnouncementPopup, 0, len(all))
	for _, a := range all {
		if a.LiveAt(now) {
			out = append(out, a)
		}
	}
	slices.SortStableFunc(out, func(a, b models.AnnouncementPopup) int {
		if c := cmp.Compare(a.Priority.Rank(), b.Priority.Rank()); c != 0 {
			return c
		}
		if c := compareTimes(b.StartDate, a.StartDate); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return out
}

// compareTimes orders nil before any time.
func compareTimes(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return a.Compare(*b)
}

// AboutPage is the organization copy with its people, offices and milestones.
type AboutPage struct {
	Organization *models.OrganizationInfo `json:"organization"`
	Founders     []models.Founder         `json:"founders"`
	Chapters     []models.ChapterLocation `json:"chapters"`
	Achievements []models.Achievement     `json:"achievements"`
}

// About returns the about page.
func (s *SiteContentService) About(ctx context.Context) (*AboutPage, error) {
	var page AboutPage
	err := cache.Aside(ctx, cache.ContentKey(cache.ContentAbout), &page, cache.ContentTTL, func() error {
		var err error
		if page.Founders, err = s.repo.Founders.List(ctx); err != nil {
			return err
		}
		if page.Chapters, err = s.repo.Chapters.List(ctx); err != nil {
			return err
		}
		page.Achievements, err = s.repo.Achievements.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	if page.Organization, err = s.settings.OrganizationInfo(ctx); err != nil {
		return nil, err
	}
	return &page, nil
}

// Impact returns the impact page counters in display order.
func (s *SiteContentService) Impact(ctx context.Context) ([]models.ImpactStat, error) {
	var stats []models.ImpactStat
	err := cache.Aside(ctx, cache.ContentKey(cache.ContentImpact), &stats, cache.ContentTTL, func() error {
		var err error
		stats, err = s.repo.ImpactStats.List(ctx)
		return err
	})
	return stats, err
}

// allPrograms is the cached program list, latest event first.
func (s *SiteContentService) allPrograms(ctx context.Context) ([]models.Program, error) {
	var programs []models.Program
	err := cache.Aside(ctx, cache.ContentKey(cache.ContentPrograms), &programs, cache.ContentTTL, func() error {
		var err error
		programs, err = s.repo.ListPrograms(ctx, repository.ProgramFilter{})
		return err
	})
	return programs, err
}

// ProgramQuery filters the public programs page. Sort is "asc" or "desc"
// by event date; anything else means "desc".
type ProgramQuery struct {
	Phase string
	Sort  string
}

// ProgramsPage is the filtered list plus the upcoming and past split of it.
type ProgramsPage struct {
	Programs []models.Program `json:"programs"`
	Upcoming []models.Program `json:"upcoming"`
	Past     []models.Program `json:"past"`
	Category string           `json:"category_filter"`
	Sort     string           `json:"sort"`
}

// Programs returns the public programs page.
func (s *SiteContentService) Programs(ctx context.Context, q ProgramQuery) (*ProgramsPage, error) {
	phase := models.ProgramPhase(strings.TrimSpace(q.Phase))
	if phase != "" && !phase.Valid() {
		return nil, models.NewValidationError("category must be upcoming or past")
	}
	if q.Sort != "asc" {
		q.Sort = "desc"
	}
	all, err := s.allPrograms(ctx)
	if err != nil {
		return nil, err
	}

	page := &ProgramsPage{Programs: []models.Program{}, Upcoming: []models.Program{}, Past: []models.Program{},
		Category: string(phase), Sort: q.Sort}
	for _, p := range all {
		if phase != "" && p.Phase != phase {
			continue
		}
		page.Programs = append(page.Programs, p)
	}
	if q.Sort == "asc" {
		slices.Reverse(page.Programs)
	}
	for _, p := range page.Programs {
		switch p.Phase {
		case models.ProgramUpcoming:
			page.Upcoming = append(page.Upcoming, p)
		case models.ProgramPast:
			page.Past = append(page.Past, p)
		}
	}
	return page, nil
}

// ProgramDetail is one program with the gallery photos tied to it.
type ProgramDetail struct {
	models.Program
	Gallery []models.GalleryImage `json:"gallery"`
}

// Program returns the program published under slug.
func (s *SiteContentService) Program(ctx context.Context, slug string) (*ProgramDetail, error) {
	all, err := s.allPrograms(ctx)
	if err != nil {
		return nil, err
	}
	i := slices.IndexFunc(all, func(p models.Program) bool { return p.Slug == slug })
	if i < 0 {
		return nil, models.NewNotFoundError("Program", slug)
	}
	gallery, err := s.Gallery(ctx)
	if err != nil {
		return nil, err
	}
	detail := &ProgramDetail{Program: all[i], Gallery: []models.GalleryImage{}}
	for _, g := range gallery {
		if g.ProgramID != nil && *g.ProgramID == detail.ID {
			detail.Gallery = append(detail.Gallery, g)
		}
	}
	return detail, nil
}

// Gallery returns every active gallery photo in display order.
func (s *SiteContentService) Gallery(ctx context.Context) ([]models.GalleryImage, error) {
	var images []models.GalleryImage
	err := cache.Aside(ctx, cache.ContentKey(cache.ContentGallery), &images, cache.ContentTTL, func() error {
		var err error
		images, err = s.repo.Gallery.List(ctx, repository.Active)
		return err
	})
	return images, err
}

// Navigation returns the active menu tree.
func (s *SiteContentService) Navigation(ctx context.Context) ([]models.NavItem, error) {
	var items []models.NavItem
	err := cache.Aside(ctx, cache.ContentKey(cache.ContentNav), &items, cache.ContentTTL, func() error {
		var err error
		items, err = s.repo.NavTree(ctx, true)
		return err
	})
	return items, err
}

func (s *SiteContentService) activeCollaborations(ctx context.Context) ([]models.Collaboration, error) {
	var items []models.Collaboration
	err := cache.Aside(ctx, cache.ContentKey(cache.ContentCollaborations), &items, cache.ContentTTL, func() error {
		var err error
		items, err = s.repo.Collaborations.List(ctx, repository.Active)
		return err
	})
	return items, err
}

// CollaborationQuery filters the partner listing. Sort is "newest" (the
// default), "oldest" or "name". Page counts from 1.
type CollaborationQuery struct {
	Type   string
	Status string
	Search string
	Sort   string
	Page   int
}

// CollaborationPage is one page of the partner listing.
type CollaborationPage struct {
	Items            []models.Collaboration `json:"items"`
	Total            int                    `json:"total"`
	Page             int                    `json:"page"`
	Pages            int                    `json:"pages"`
	PartnershipTypes []string               `json:"partnership_types"`
	Statuses         []string               `json:"statuses"`
}

// Collaborations returns one page of active partners.
func (s *SiteContentService) Collaborations(ctx context.Context, q CollaborationQuery) (*CollaborationPage, error) {
	all, err := s.activeCollaborations(ctx)
	if err != nil {
		return nil, err
	}
	search := strings.ToLower(strings.TrimSpace(q.Search))
	matched := make([]models.Collaboration, 0, len(all))
	for _, c := range all {
		if q.Type != "" && c.PartnershipType != q.Type {
			continue
		}
		if q.Status != "" && c.Status != q.Status {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(c.OrganizationName), search) &&
			!strings.Contains(strings.ToLower(c.ShortDescription), search) &&
			!strings.Contains(strings.ToLower(c.FullDescription), search) {
			continue
		}
		matched = append(matched, c)
	}
	slices.SortStableFunc(matched, collaborationOrder(q.Sort))

	pages := (len(matched) + collaborationsPerPage - 1) / collaborationsPerPage
	page := min(max(q.Page, 1), max(pages, 1))
	start := min((page-1)*collaborationsPerPage, len(matched))
	end := min(start+collaborationsPerPage, len(matched))
	return &CollaborationPage{
		Items:            matched[start:end],
		Total:            len(matched),
		Page:             page,
		Pages:            pages,
		PartnershipTypes: models.PartnershipTypes,
		Statuses:         models.CollabStatuses,
	}, nil
}

func collaborationOrder(sort string) func(a, b models.Collaboration) int {
	byName := func(a, b models.Collaboration) int {
		return cmp.Compare(strings.ToLower(a.OrganizationName), strings.ToLower(b.OrganizationName))
	}
	switch sort {
	case "name":
		return byName
	case "oldest":
		return func(a, b models.Collaboration) int {
			return cmp.Or(compareTimes(a.AgreementDate, b.AgreementDate), cmp.Compare(a.Order, b.Order), byName(a, b))
		}
	}
	return func(a, b models.Collaboration) int {
		return cmp.Or(compareTimes(b.AgreementDate, a.AgreementDate), b.CreatedAt.Compare(a.CreatedAt),
			cmp.Compare(a.Order, b.Order), byName(a, b))
	}
}

// CollaborationDetail is one partner with the kind of its MOU upload.
type CollaborationDetail struct {
	models.Collaboration
	MouKind string `json:"mou_kind"`
}

// Collaboration returns an active partner.
func (s *SiteContentService) Collaboration(ctx context.Context, id uint) (*CollaborationDetail, error) {
	all, err := s.activeCollaborations(ctx)
	if err != nil {
		return nil, err
	}
	i := slices.IndexFunc(all, func(c models.Collaboration) bool { return c.ID == id })
	if i < 0 {
		return nil, models.NewNotFoundError("Collaboration", id)
	}
	return &CollaborationDetail{Collaboration: all[i], MouKind: all[i].MouKind()}, nil
}

// saveRow checks that id exists when set, writes row and drops pages.
func saveRow[T any](ctx context.Context, col repository.Ranked[T], id uint, row *T, pages ...string) error {
	if id != 0 {
		if _, err := col.Get(ctx, id); err != nil {
			return err
		}
	}
	if err := col.Save(ctx, row); err != nil {
		return err
	}
	cache.InvalidateContent(ctx, pages...)
	return nil
}

func deleteRow[T any](ctx context.Context, col repository.Ranked[T], id uint, pages ...string) error {
	if err := col.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateContent(ctx, pages...)
	return nil
}

func asValidation(err error) error {
	if err == nil {
		return nil
	}
	return models.NewValidationError(err.Error())
}

func requireText(name, value string, max int) error {
	if strings.TrimSpace(value) == "" {
		return models.NewValidationError(name + " is required")
	}
	return asValidation(validation.MaxLength(strings.ToLower(name), value, max))
}

// ListProgramCategories returns every category tag by name.
func (s *SiteContentService) ListProgramCategories(ctx context.Context) ([]models.ProgramCategory, error) {
	return s.repo.Categories.List(ctx)
}

func (s *SiteContentService) SaveProgramCategory(ctx context.Context, id uint, c *models.ProgramCategory) error {
	c.Name = strings.TrimSpace(c.Name)
	if err := requireText("Name", c.Name, 100); err != nil {
		return err
	}
	c.ID = id
	return saveRow(ctx, s.repo.Categories, id, c, cache.ContentPrograms, cache.ContentHome)
}

func (s *SiteContentService) DeleteProgramCategory(ctx context.Context, id uint) error {
	return deleteRow(ctx, s.repo.Categories, id, cache.ContentPrograms, cache.ContentHome)
}

// ListPrograms returns every program, latest event first.
func (s *SiteContentService) ListPrograms(ctx context.Context) ([]models.Program, error) {
	return s.repo.ListPrograms(ctx, repository.ProgramFilter{})
}

// SaveProgram creates or updates a program. A blank slug is derived from the
// title and given a numeric suffix when taken; an explicit slug must be free.
func (s *SiteContentService) SaveProgram(ctx context.Context, id uint, p *models.Program) error {
	p.Title = strings.TrimSpace(p.Title)
	if err := requireText("Title", p.Title, 300); err != nil {
		return err
	}
	if strings.TrimSpace(p.Description) == "" {
		return models.NewValidationError("Description is required")
	}
	if p.EventDate.IsZero() {
		return models.NewValidationError("event_date is required")
	}
	if p.Phase == "" {
		p.Phase = models.ProgramUpcoming
	}
	if !p.Phase.Valid() {
		return models.NewValidationError("category must be upcoming or past")
	}
	if p.CategoryTagID != nil {
		if _, err := s.repo.Categories.Get(ctx, *p.CategoryTagID); err != nil {
			return err
		}
	}
	slug, err := s.programSlug(ctx, id, p)
	if err != nil {
		return err
	}
	p.ID, p.Slug, p.CategoryTag = id, slug, nil
	return saveRow(ctx, s.repo.Programs, id, p, cache.ContentPrograms, cache.ContentHome, cache.ContentGallery)
}

func (s *SiteContentService) programSlug(ctx context.Context, id uint, p *models.Program) (string, error) {
	if explicit := strings.TrimSpace(p.Slug); explicit != "" {
		if err := asValidation(validation.ValidateSlug(explicit)); err != nil {
			return "", err
		}
		taken, err := s.repo.SlugTaken(ctx, explicit, id)
		if err != nil {
			return "", err
		}
		if taken {
			return "", models.NewConflictError("A program with this slug already exists")
		}
		return explicit, nil
	}

	base := validation.Slugify(p.Title)
	if base == "" {
		base = "program"
	}
	base = strings.TrimSuffix(truncateRunes(base, 280), "-")
	candidate := base
	for n := 2; n <= slugAttempts+1; n++ {
		taken, err := s.repo.SlugTaken(ctx, candidate, id)
		if err != nil || !taken {
			return candidate, err
		}
		candidate = base + "-" + strconv.Itoa(n)
	}
	return "", models.NewConflictError("Could not derive a free slug; set one explicitly")
}

func (s *SiteContentService) DeleteProgram(ctx context.Context, id uint) error {
	return deleteRow(ctx, s.repo.Programs, id, cache.ContentPrograms, cache.ContentHome, cache.ContentGallery)
}

func (s *SiteContentService) ListImpactStats(ctx context.Context) ([]models.ImpactStat, error) {
	return s.repo.ImpactStats.List(ctx)
}

func (s *SiteContentService) SaveImpactStat(ctx context.Context, id uint, st *models.ImpactStat) error {
	st.Label = strings.TrimSpace(st.Label)
	if err := requireText("Label", st.Label, 200); err != nil {
		return err
	}
	if st.Value < 0 {
		return models.NewValidationError("value must not be negative")
	}
	if err := asValidation(validation.MaxLength("suffix", st.Suffix, 20)); err != nil {
		return err
	}
	st.ID = id
	return saveRow(ctx, s.repo.ImpactStats, id, st, cache.ContentImpact)
}

func (s *SiteContentService) DeleteImpactStat(ctx context.Context, id uint) error {
	return deleteRow(ctx, s.repo.ImpactStats, id, cache.ContentImpact)
}

func (s *SiteContentService) ListFounders(ctx context.Context) ([]models.Founder, error) {
	return s.repo.Founders.List(ctx)
}

func (s *SiteContentService) SaveFounder(ctx context.Context, id uint, f *models.Founder) error {
	f.Name = strings.TrimSpace(f.Name)
	if err := requireText("Name", f.Name, 200); err != nil {
		return err
	}
	f.ID = id
	return saveRow(ctx, s.repo.Founders, id, f, cache.ContentAbout)
}

func (s *SiteContentService) DeleteFounder(ctx context.Context, id uint) error {
	return deleteRow(ctx, s.repo.Founders, id, cache.ContentAbout)
}

func (s *SiteContentService) ListChapterLocations(ctx context.Context) ([]models.ChapterLocation, error) {
	return s.repo.Chapters.List(ctx)
}

func (s *SiteContentService) SaveChapterLocation(ctx context.Context, id uint, c *models.ChapterLocation) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	if err := requireText("Name", c.Name, 200); err != nil {
		return err
	}
	if err := asValidation(validation.ValidateOptionalEmail(c.Email)); err != nil {
		return err
	}
	c.ID = id
	return saveRow(ctx, s.repo.Chapters, id, c, cache.ContentAbout)
}

func (s *SiteContentService) DeleteChapterLocation(ctx context.Context, id uint) error {
	return deleteRow(ctx, s.repo.Chapters, id, cache.ContentAbout)
}

func (s *SiteContentService) ListAchievements(ctx context.Context) ([]models.Achievement, error) {
	return s.repo.Achievements.List(ctx)
}

func (s *SiteContentService) SaveAchievement(ctx context.Context, id uint, a *models.Achievement) error {
	a.Title = strings.TrimSpace(a.Title)
	if err := requireText("Title", a.Title, 200); err != nil {
		return err
	}
	a.ID = id
	return saveRow(ctx, s.repo.Achievements, id, a, cache.ContentAbout)
}

func (s *SiteContentService) DeleteAchievement(ctx context.Context, id uint) error {
	return deleteRow(ctx, s.repo.Achievements, id, cache.ContentAbout)
}

func (s *SiteContentService) ListHeroBanners(ctx context.Context) ([]models.HeroBanner, error) {
	return s.repo.Banners.List(ctx)
}

// SaveHeroBanner creates or updates a slide. Blank display options take the
// stock 16:9, cover and center values.
func (s *SiteContentService) SaveHeroBanner(ctx context.Context, id uint, b *models.HeroBanner) error {
	b.Title = strings.TrimSpace(b.Title)
	if err := requireText("Title", b.Title, 200); err != nil {
		return err
	}
	b.AspectRatio = cmp.Or(b.AspectRatio, models.BannerAspectRatios[0])
	b.ImageFit = cmp.Or(b.ImageFit, models.BannerImageFits[0])
	b.TextPosition = cmp.Or(b.TextPosition, models.BannerTextPositions[0])
	for _, err := range []error{
		validation.OneOf("aspect_ratio", b.AspectRatio, models.BannerAspectRatios),
		validation.OneOf("image_fit", b.ImageFit, models.BannerImageFits),
		validation.OneOf("text_position", b.TextPosition, models.BannerTextPositions),
		validation.ValidateLink(b.LinkURL),
	} {
		if err != nil {
			return asValidation(err)
		}
	}
	if b.OverlayOpacity < 0 || b.OverlayOpacity > 1 {
		return models.NewValidationError("overlay_opacity must be between 0 and 1")
	}
	b.ID = id
	return saveRow(ctx, s.repo.Banners, id, b, cache.ContentHome)
}

func (s *SiteContentService) DeleteHeroBanner(ctx context.Context, id uint) error {
	return deleteRow(ctx, s.repo.Banners, id, cache.ContentHome)
}

func (s *SiteContentService) ListHomeContent(ctx context.Context) ([]models.HomeContent, error) {
	return s.repo.HomeBlocks.List(ctx)
}

func (s *SiteContentService) SaveHomeContent(ctx context.Context, id uint, h *models.HomeContent) error {
	h.Key = strings.TrimSpace(h.Key)
	if h.Key == "" {
		return models.NewValidationError("Key is required")
	}
	if err := asValidation(validation.ValidateSlug(h.Key)); err != nil {
		return err
	}
	if strings.TrimSpace(h.Content) == "" {
		return models.NewValidationError("Content is required")
	}
	h.ID = id
	return saveRow(ctx, s.repo.HomeBlocks, id, h, cache.ContentHome)
}

func (s *SiteContentService) DeleteHomeContent(ctx context.Context, id uint) error {
	return deleteRow(ctx, s.repo.HomeBlocks, id, cache.ContentHome)
}

func (s *SiteContentService) ListAnnouncements(ctx context.Context) ([]models.AnnouncementPopup, error) {
	return s.repo.Announcements.List(ctx)
}

func (s *SiteContentService) SaveAnnouncement(ctx context.Context, id uint, a *models.AnnouncementPopup) error {
	a.Title = strings.TrimSpace(a.Title)
	if err := requireText("Title", a.Title, 200); err != nil {
		return err
	}
	if strings.TrimSpace(a.Message) == "" {
		return models.NewValidationError("Message is required")
	}
	a.Priority = cmp.Or(a.Priority, models.PriorityMedium)
	a.Status = cmp.Or(a.Status, models.AnnouncementDraft)
	if !a.Priority.Valid() {
		return models.NewValidationError("priority must be high, medium or low")
	}
	if !a.Status.Valid() {
		return models.NewValidationError("status must be draft, scheduled, published or expired")
	}
	if a.StartDate != nil && a.EndDate != nil && a.EndDate.Before(*a.StartDate) {
		return models.NewValidationError("end_date must not be before start_date")
	}
	if err := asValidation(validation.ValidateLink(a.LinkURL)); err != nil {
		return err
	}
	a.ID = id
	return saveRow(ctx, s.repo.Announcements, id, a, cache.ContentHome)
}

func (s *SiteContentService) DeleteAnnouncement(ctx context.Context, id uint) error {
	return deleteRow(ctx, s.repo.Announcements, id, cache.ContentHome)
}

func (s *SiteContentService) ListGallery(ctx context.Context) ([]models.GalleryImage, error) {
	return s.repo.Gallery.List(ctx)
}

func (s *SiteContentService) SaveGalleryImage(ctx context.Context, id uint, g *models.GalleryImage) error {
	g.Image = strings.TrimSpace(g.Image)
	if err := requireText("Image", g.Image, 500); err != nil {
		return err
	}
	if g.ProgramID != nil {
		if _, err := s.repo.Programs.Get(ctx, *g.ProgramID); err != nil {
			return err
		}
	}
	g.ID = id
	return saveRow(ctx, s.repo.Gallery, id, g, cache.ContentGallery, cache.ContentHome)
}

func (s *SiteContentService) DeleteGalleryImage(ctx context.Context, id uint) error {
	return deleteRow(ctx, s.repo.Gallery, id, cache.ContentGallery, cache.ContentHome)
}

// ListNavItems returns the full menu tree, hidden entries included.
func (s *SiteContentService) ListNavItems(ctx context.Context) ([]models.NavItem, error) {
	return s.repo.NavTree(ctx, false)
}

// SaveNavItem creates or updates a menu entry. A parent must be a top-level
// entry, and an entry with its own submenu cannot be nested.
func (s *SiteContentService) SaveNavItem(ctx context.Context, id uint, n *models.NavItem) error {
	n.Title = strings.TrimSpace(n.Title)
	n.URL = strings.TrimSpace(n.URL)
	if err := requireText("Title", n.Title, 100); err != nil {
		return err
	}
	if err := requireText("URL", n.URL, 500); err != nil {
		return err
	}
	if err := asValidation(validation.ValidateLink(n.URL)); err != nil {
		return err
	}
	if n.ParentID != nil {
		if *n.ParentID == id {
			return models.NewValidationError("A menu entry cannot be its own parent")
		}
		parent, err := s.repo.Nav.Get(ctx, *n.ParentID)
		if err != nil {
			return err
		}
		if parent.ParentID != nil {
			return models.NewValidationError("Submenus nest one level deep")
		}
		if id != 0 {
			kids, err := s.repo.NavChildCount(ctx, id)
			if err != nil {
				return err
			}
			if kids > 0 {
				return models.NewValidationError("An entry with a submenu cannot be nested")
			}
		}
	}
	n.ID, n.Children = id, nil
	return saveRow(ctx, s.repo.Nav, id, n, cache.ContentNav)
}

// DeleteNavItem removes a menu entry and its submenu.
func (s *SiteContentService) DeleteNavItem(ctx context.Context, id uint) error {
	if err := s.repo.DeleteNavItem(ctx, id); err != nil {
		return err
	}
	cache.InvalidateContent(ctx, cache.ContentNav)
	return nil
}

// ReorderNavItems sets the display order to ids.
func (s *SiteContentService) ReorderNavItems(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return models.NewValidationError("ids are required")
	}
	if err := s.repo.Nav.Reorder(ctx, ids); err != nil {
		return err
	}
	cache.InvalidateContent(ctx, cache.ContentNav)
	return nil
}

// RestoreDefaultNav recreates the stock menu entries that are missing and
// returns how many it created.
func (s *SiteContentService) RestoreDefaultNav(ctx context.Context) (int, error) {
	created, err := s.repo.RestoreDefaultNav(ctx)
	if err != nil {
		return 0, err
	}
	cache.InvalidateContent(ctx, cache.ContentNav)
	return created, nil
}

func (s *SiteContentService) ListCollaborations(ctx context.Context) ([]models.Collaboration, error) {
	return s.repo.Collaborations.List(ctx)
}

func (s *SiteContentService) SaveCollaboration(ctx context.Context, id uint, c *models.Collaboration) error {
	c.OrganizationName = strings.TrimSpace(c.OrganizationName)
	c.ShortDescription = strings.TrimSpace(c.ShortDescription)
	if err := requireText("Organization name", c.OrganizationName, 200); err != nil {
		return err
	}
	if err := requireText("Short description", c.ShortDescription, 300); err != nil {
		return err
	}
	c.PartnershipType = cmp.Or(c.PartnershipType, models.PartnershipTypes[0])
	c.Status = cmp.Or(c.Status, models.CollabStatuses[0])
	for _, err := range []error{
		validation.OneOf("partnership_type", c.PartnershipType, models.PartnershipTypes),
		validation.OneOf("status", c.Status, models.CollabStatuses),
		validation.OneOf("detail_background_color", c.DetailBackgroundColor, models.CollabBackgrounds),
		validation.ValidateLink(c.PartnerWebsite),
	} {
		if err != nil {
			return asValidation(err)
		}
	}
	c.ID = id
	return saveRow(ctx, s.repo.Collaborations, id, c, cache.ContentCollaborations, cache.ContentHome)
}

func (s *SiteContentService) DeleteCollaboration(ctx context.Context, id uint) error {
	return deleteRow(ctx, s.repo.Collaborations, id, cache.ContentCollaborations, cache.ContentHome)
}
