package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"nhaf/internal/cache"
	"nhaf/internal/models"
	"nhaf/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSiteContent(t *testing.T) (*SiteContentService, *testEnv) {
	t.Helper()
	env := newTestEnv(t)
	return NewSiteContentService(repository.NewSiteContentRepository(env.db), env.settings), env
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSaveProgramDerivesUniqueSlugs(t *testing.T) {
	svc, _ := newSiteContent(t)
	ctx := context.Background()

	first := &models.Program{Title: "Free Health Camp", Description: "<p>Checkups</p>", EventDate: day(2025, 5, 1)}
	require.NoError(t, svc.SaveProgram(ctx, 0, first))
	assert.Equal(t, "free-health-camp", first.Slug)
	assert.Equal(t, models.ProgramUpcoming, first.Phase)

	second := &models.Program{Title: "Free Health Camp!", Description: "Again", EventDate: day(2025, 6, 1)}
	require.NoError(t, svc.SaveProgram(ctx, 0, second))
	assert.Equal(t, "free-health-camp-2", second.Slug)

	// Re-saving keeps the row's own slug free.
	first.Slug = ""
	require.NoError(t, svc.SaveProgram(ctx, first.ID, first))
	assert.Equal(t, "free-health-camp", first.Slug)

	clash := &models.Program{Title: "Other", Slug: "free-health-camp-2", Description: "x", EventDate: day(2025, 7, 1)}
	assertErrorCode(t, svc.SaveProgram(ctx, 0, clash), models.CodeConflict)

	bad := &models.Program{Title: "Other", Slug: "Not A Slug", Description: "x", EventDate: day(2025, 7, 1)}
	assertValidationError(t, svc.SaveProgram(ctx, 0, bad))

	assertValidationError(t, svc.SaveProgram(ctx, 0, &models.Program{Title: "No date", Description: "x"}))
	assertValidationError(t, svc.SaveProgram(ctx, 0, &models.Program{
		Title: "Bad phase", Description: "x", EventDate: day(2025, 1, 1), Phase: "ongoing",
	}))
	assertErrorCode(t, svc.SaveProgram(ctx, 0, &models.Program{
		Title: "Missing tag", Description: "x", EventDate: day(2025, 1, 1), CategoryTagID: ptr(uint(99)),
	}), models.CodeNotFound)
	assertErrorCode(t, svc.SaveProgram(ctx, 404, &models.Program{
		Title: "Ghost", Description: "x", EventDate: day(2025, 1, 1),
	}), models.CodeNotFound)
}

func TestProgramsPageFiltersSortsAndCaches(t *testing.T) {
	svc, _ := newSiteContent(t)
	ctx := context.Background()
	mr := useMiniredis(t)

	tag := &models.ProgramCategory{Name: "Outreach"}
	require.NoError(t, svc.SaveProgramCategory(ctx, 0, tag))
	for _, p := range []*models.Program{
		{Title: "Blood Drive", Description: "x", EventDate: day(2024, 11, 2), Phase: models.ProgramPast},
		{Title: "Eye Camp", Description: "x", EventDate: day(2025, 8, 9), CategoryTagID: &tag.ID},
		{Title: "Dental Camp", Description: "x", EventDate: day(2025, 3, 15)},
	} {
		require.NoError(t, svc.SaveProgram(ctx, 0, p))
	}

	page, err := svc.Programs(ctx, ProgramQuery{})
	require.NoError(t, err)
	titles := func(ps []models.Program) []string {
		out := []string{}
		for _, p := range ps {
			out = append(out, p.Title)
		}
		return out
	}
	assert.Equal(t, []string{"Eye Camp", "Dental Camp", "Blood Drive"}, titles(page.Programs))
	assert.Equal(t, []string{"Eye Camp", "Dental Camp"}, titles(page.Upcoming))
	assert.Equal(t, []string{"Blood Drive"}, titles(page.Past))
	assert.Equal(t, "desc", page.Sort)
	require.NotNil(t, page.Programs[0].CategoryTag)
	assert.Equal(t, "Outreach", page.Programs[0].CategoryTag.Name)
	assert.True(t, mr.Exists(cache.ContentKey(cache.ContentPrograms)))

	page, err = svc.Programs(ctx, ProgramQuery{Phase: "upcoming", Sort: "asc"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Dental Camp", "Eye Camp"}, titles(page.Programs))
	assert.Empty(t, page.Past)

	_, err = svc.Programs(ctx, ProgramQuery{Phase: "someday"})
	assertValidationError(t, err)

	require.NoError(t, svc.SaveProgram(ctx, 0, &models.Program{Title: "Yoga Day", Description: "x", EventDate: day(2025, 6, 21)}))
	assert.False(t, mr.Exists(cache.ContentKey(cache.ContentPrograms)), "writes drop the cached list")

	detail, err := svc.Program(ctx, "yoga-day")
	require.NoError(t, err)
	assert.Equal(t, "Yoga Day", detail.Title)

	_, err = svc.Program(ctx, "no-such-program")
	assertErrorCode(t, err, models.CodeNotFound)
}

func TestProgramDetailCarriesItsGallery(t *testing.T) {
	svc, _ := newSiteContent(t)
	ctx := context.Background()

	camp := &models.Program{Title: "Eye Camp", Description: "x", EventDate: day(2025, 8, 9)}
	require.NoError(t, svc.SaveProgram(ctx, 0, camp))
	require.NoError(t, svc.SaveGalleryImage(ctx, 0, &models.GalleryImage{Image: "gallery/a.jpg", IsActive: true, ProgramID: &camp.ID}))
	require.NoError(t, svc.SaveGalleryImage(ctx, 0, &models.GalleryImage{Image: "gallery/b.jpg", IsActive: true}))
	require.NoError(t, svc.SaveGalleryImage(ctx, 0, &models.GalleryImage{Image: "gallery/c.jpg", ProgramID: &camp.ID}))

	detail, err := svc.Program(ctx, camp.Slug)
	require.NoError(t, err)
	require.Len(t, detail.Gallery, 1, "hidden photos stay hidden")
	assert.Equal(t, "gallery/a.jpg", detail.Gallery[0].Image)

	assertErrorCode(t, svc.SaveGalleryImage(ctx, 0, &models.GalleryImage{Image: "gallery/d.jpg", ProgramID: ptr(uint(77))}), models.CodeNotFound)
	assertValidationError(t, svc.SaveGalleryImage(ctx, 0, &models.GalleryImage{Title: "no image"}))
}

func TestHomeShowsLiveAnnouncementsByPriority(t *testing.T) {
	svc, _ := newSiteContent(t)
	ctx := context.Background()
	mr := useMiniredis(t)
	now := time.Date(2025, 4, 14, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	past, soon := now.Add(-48*time.Hour), now.Add(2*time.Hour)
	yesterday := now.Add(-24 * time.Hour)
	popups := []*models.AnnouncementPopup{
		{Title: "Low", Message: "m", Priority: models.PriorityLow, Status: models.AnnouncementPublished, IsActive: true},
		{Title: "High old", Message: "m", Priority: models.PriorityHigh, Status: models.AnnouncementPublished, IsActive: true, StartDate: &past},
		{Title: "High new", Message: "m", Priority: models.PriorityHigh, Status: models.AnnouncementPublished, IsActive: true, StartDate: &yesterday},
		{Title: "Later", Message: "m", Status: models.AnnouncementPublished, IsActive: true, StartDate: &soon},
		{Title: "Draft", Message: "m", IsActive: true},
	}
	for _, a := range popups {
		require.NoError(t, svc.SaveAnnouncement(ctx, 0, a))
	}
	assert.Equal(t, models.PriorityMedium, popups[3].Priority)
	assert.Equal(t, models.AnnouncementDraft, popups[4].Status)

	require.NoError(t, svc.SaveHomeContent(ctx, 0, &models.HomeContent{Key: "welcome", Content: "Namaste", IsActive: true}))
	require.NoError(t, svc.SaveHeroBanner(ctx, 0, &models.HeroBanner{Title: "Care for all", IsActive: true, OverlayOpacity: 0.7}))

	home, err := svc.Home(ctx)
	require.NoError(t, err)
	var titles []string
	for _, a := range home.Announcements {
		titles = append(titles, a.Title)
	}
	assert.Equal(t, []string{"High new", "High old", "Low"}, titles)
	assert.Equal(t, "Namaste", home.Blocks["welcome"].Content)
	require.Len(t, home.Banners, 1)
	assert.Equal(t, "16:9", home.Banners[0].AspectRatio)
	assert.Equal(t, "cover", home.Banners[0].ImageFit)

	// The cached page still holds the scheduled popup; it goes live later.
	require.True(t, mr.Exists(cache.ContentKey(cache.ContentHome)))
	now = soon.Add(time.Minute)
	home, err = svc.Home(ctx)
	require.NoError(t, err)
	assert.Len(t, home.Announcements, 4)
}

func TestAnnouncementAndBannerValidation(t *testing.T) {
	svc, _ := newSiteContent(t)
	ctx := context.Background()
	start, end := day(2025, 5, 2), day(2025, 5, 1)

	assertValidationError(t, svc.SaveAnnouncement(ctx, 0, &models.AnnouncementPopup{Title: "t", Message: "m", StartDate: &start, EndDate: &end}))
	assertValidationError(t, svc.SaveAnnouncement(ctx, 0, &models.AnnouncementPopup{Title: "t", Message: "m", Priority: "urgent"}))
	assertValidationError(t, svc.SaveAnnouncement(ctx, 0, &models.AnnouncementPopup{Title: "t", Message: "m", LinkURL: "javascript:alert(1)"}))
	assertValidationError(t, svc.SaveHeroBanner(ctx, 0, &models.HeroBanner{Title: "t", AspectRatio: "3:2"}))
	assertValidationError(t, svc.SaveHeroBanner(ctx, 0, &models.HeroBanner{Title: "t", OverlayOpacity: 1.5}))
	assertValidationError(t, svc.SaveHomeContent(ctx, 0, &models.HomeContent{Key: "Welcome Block", Content: "x"}))

	require.NoError(t, svc.SaveHomeContent(ctx, 0, &models.HomeContent{Key: "mission", Content: "x"}))
	assertErrorCode(t, svc.SaveHomeContent(ctx, 0, &models.HomeContent{Key: "mission", Content: "y"}), models.CodeConflict)
}

func TestAboutAndImpactPages(t *testing.T) {
	svc, env := newSiteContent(t)
	ctx := context.Background()
	mr := useMiniredis(t)

	require.NoError(t, svc.SaveFounder(ctx, 0, &models.Founder{Name: "Dr. Sita Sharma", Order: 2}))
	require.NoError(t, svc.SaveFounder(ctx, 0, &models.Founder{Name: "Ram Karki", Order: 1}))
	require.NoError(t, svc.SaveChapterLocation(ctx, 0, &models.ChapterLocation{Name: "Kathmandu", Email: "ktm@nhaf.example"}))
	require.NoError(t, svc.SaveAchievement(ctx, 0, &models.Achievement{Title: "10,000 patients", Year: "2024"}))
	assertValidationError(t, svc.SaveChapterLocation(ctx, 0, &models.ChapterLocation{Name: "Pokhara", Email: "nope"}))
	_, err := env.settings.UpdateOrganizationInfo(ctx, models.OrganizationInfo{Mission: "Health for every village."})
	require.NoError(t, err)

	about, err := svc.About(ctx)
	require.NoError(t, err)
	require.Len(t, about.Founders, 2)
	assert.Equal(t, "Ram Karki", about.Founders[0].Name)
	assert.Equal(t, "Health for every village.", about.Organization.Mission)
	assert.Len(t, about.Chapters, 1)
	assert.Len(t, about.Achievements, 1)
	assert.True(t, mr.Exists(cache.ContentKey(cache.ContentAbout)))

	require.NoError(t, svc.DeleteFounder(ctx, about.Founders[0].ID))
	assert.False(t, mr.Exists(cache.ContentKey(cache.ContentAbout)))
	assertErrorCode(t, svc.DeleteFounder(ctx, about.Founders[0].ID), models.CodeNotFound)

	require.NoError(t, svc.SaveImpactStat(ctx, 0, &models.ImpactStat{Label: "Villages reached", Value: 120, Suffix: "+"}))
	assertValidationError(t, svc.SaveImpactStat(ctx, 0, &models.ImpactStat{Label: "Negative", Value: -1}))
	stats, err := svc.Impact(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, 120, stats[0].Value)
}

func TestNavigationTreeReorderAndRestore(t *testing.T) {
	svc, env := newSiteContent(t)
	ctx := context.Background()
	mr := useMiniredis(t)

	created, err := svc.RestoreDefaultNav(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, created, "seven entries plus the Gallery submenu")

	created, err = svc.RestoreDefaultNav(ctx)
	require.NoError(t, err)
	assert.Zero(t, created, "restore is idempotent")

	tree, err := svc.Navigation(ctx)
	require.NoError(t, err)
	require.Len(t, tree, 7)
	assert.Equal(t, "Home", tree[0].Title)
	assert.True(t, tree[6].IsButton)
	require.Len(t, tree[2].Children, 1)
	assert.Equal(t, "Gallery", tree[2].Children[0].Title)
	assert.True(t, mr.Exists(cache.ContentKey(cache.ContentNav)))

	team, contact := tree[3], tree[5]
	chat := &models.NavItem{Title: "Chat with us", URL: "/contact/#chat", ParentID: &contact.ID, IsActive: true}
	require.NoError(t, svc.SaveNavItem(ctx, 0, chat))
	assert.False(t, mr.Exists(cache.ContentKey(cache.ContentNav)))

	assertValidationError(t, svc.SaveNavItem(ctx, 0, &models.NavItem{Title: "Deep", URL: "/x/", ParentID: &chat.ID}))
	assertValidationError(t, svc.SaveNavItem(ctx, contact.ID, &models.NavItem{Title: "Contact", URL: "/contact/", ParentID: &team.ID}))
	assertValidationError(t, svc.SaveNavItem(ctx, team.ID, &models.NavItem{Title: "Team", URL: "/team/", ParentID: &team.ID}))
	assertValidationError(t, svc.SaveNavItem(ctx, 0, &models.NavItem{Title: "Bad", URL: "javascript:void(0)"}))

	ids := make([]uint, 0, len(tree))
	for i := len(tree) - 1; i >= 0; i-- {
		ids = append(ids, tree[i].ID)
	}
	require.NoError(t, svc.ReorderNavItems(ctx, ids))
	assertValidationError(t, svc.ReorderNavItems(ctx, nil))

	tree, err = svc.Navigation(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Donate", tree[0].Title)
	require.Len(t, tree[1].Children, 1, "the contact submenu is live")

	// Restoring hides the contact submenu again and puts Gallery back.
	gallery := tree[4].Children[0]
	gallery.IsActive = false
	gallery.Title = "Photos"
	require.NoError(t, svc.SaveNavItem(ctx, gallery.ID, &gallery))
	_, err = svc.RestoreDefaultNav(ctx)
	require.NoError(t, err)

	all, err := svc.ListNavItems(ctx)
	require.NoError(t, err)
	byURL := map[string]models.NavItem{}
	for _, top := range all {
		for _, c := range top.Children {
			byURL[c.URL] = c
		}
	}
	assert.False(t, byURL["/contact/#chat"].IsActive)
	assert.True(t, byURL["/gallery/"].IsActive)
	assert.Equal(t, "Gallery", byURL["/gallery/"].Title)

	require.NoError(t, svc.DeleteNavItem(ctx, contact.ID))
	all, err = svc.ListNavItems(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 6)
	var orphans int64
	require.NoError(t, env.db.Model(&models.NavItem{}).Where("parent_id = ?", contact.ID).Count(&orphans).Error)
	assert.Zero(t, orphans, "the submenu goes with its parent")
}

func TestCollaborationsListingAndDetail(t *testing.T) {
	svc, _ := newSiteContent(t)
	ctx := context.Background()

	signed := func(y int) *time.Time { d := day(y, 1, 1); return &d }
	for i, c := range []models.Collaboration{
		{OrganizationName: "Tribhuvan University", ShortDescription: "Research", PartnershipType: "academic", AgreementDate: signed(2021), IsActive: true, MouDocument: "mous/tu.pdf"},
		{OrganizationName: "Red Cross Nepal", ShortDescription: "Blood drives", PartnershipType: "ngo", AgreementDate: signed(2023), IsActive: true},
		{OrganizationName: "Asha Clinic", ShortDescription: "Referrals", PartnershipType: "ngo", AgreementDate: signed(2022), IsActive: true, Status: "completed"},
		{OrganizationName: "Hidden Partner", ShortDescription: "x", IsActive: false},
	} {
		require.NoError(t, svc.SaveCollaboration(ctx, 0, &c), i)
	}
	for i := range 12 {
		require.NoError(t, svc.SaveCollaboration(ctx, 0, &models.Collaboration{
			OrganizationName: fmt.Sprintf("Ward office %02d", i), ShortDescription: "Local", PartnershipType: "government", IsActive: true,
		}))
	}

	page, err := svc.Collaborations(ctx, CollaborationQuery{Type: "ngo"})
	require.NoError(t, err)
	require.Equal(t, 2, page.Total)
	assert.Equal(t, "Red Cross Nepal", page.Items[0].OrganizationName, "newest agreement first")

	page, err = svc.Collaborations(ctx, CollaborationQuery{Type: "ngo", Sort: "oldest"})
	require.NoError(t, err)
	assert.Equal(t, "Asha Clinic", page.Items[0].OrganizationName)

	page, err = svc.Collaborations(ctx, CollaborationQuery{Search: "BLOOD"})
	require.NoError(t, err)
	require.Equal(t, 1, page.Total)

	page, err = svc.Collaborations(ctx, CollaborationQuery{Status: "completed"})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)

	page, err = svc.Collaborations(ctx, CollaborationQuery{Sort: "name", Page: 2})
	require.NoError(t, err)
	assert.Equal(t, 15, page.Total)
	assert.Equal(t, 2, page.Pages)
	assert.Len(t, page.Items, 3)
	assert.Equal(t, "Ward office 09", page.Items[0].OrganizationName)

	page, err = svc.Collaborations(ctx, CollaborationQuery{Page: 99})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Page, "page is clamped")

	all, err := svc.ListCollaborations(ctx)
	require.NoError(t, err)
	require.Len(t, all, 16)
	var tu, hidden uint
	for _, c := range all {
		switch c.OrganizationName {
		case "Tribhuvan University":
			tu = c.ID
		case "Hidden Partner":
			hidden = c.ID
			assert.Equal(t, "mou", c.PartnershipType, "type defaults to mou")
			assert.Equal(t, "active", c.Status)
		}
	}
	detail, err := svc.Collaboration(ctx, tu)
	require.NoError(t, err)
	assert.Equal(t, "pdf", detail.MouKind)
	assert.Equal(t, "academic", detail.PartnershipType)

	_, err = svc.Collaboration(ctx, hidden)
	assertErrorCode(t, err, models.CodeNotFound)

	assertValidationError(t, svc.SaveCollaboration(ctx, 0, &models.Collaboration{OrganizationName: "X", ShortDescription: "y", PartnershipType: "sponsor"}))
	assertValidationError(t, svc.SaveCollaboration(ctx, 0, &models.Collaboration{OrganizationName: "X", ShortDescription: "y", DetailBackgroundColor: "#000000"}))
	assertValidationError(t, svc.SaveCollaboration(ctx, 0, &models.Collaboration{OrganizationName: "X"}))
}
