package repository

import (
	"context"
	"testing"
	"time"

	"nhaf/internal/memberid"
	"nhaf/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createMember(t *testing.T, repo MemberRepository, engine *memberid.Engine, m *models.Member) *models.Member {
	t.Helper()
	ctx := context.Background()
	if engine != nil {
		require.NoError(t, engine.Assign(ctx, m))
	}
	require.NoError(t, repo.Create(ctx, m))
	return m
}

func TestMemberRepository_PeerCountsDriveIdentifiers(t *testing.T) {
	repo := NewMemberRepository(newTestDB(t))
	clock := func() time.Time { return time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC) }
	engine := memberid.NewEngine(repo, "ORG").WithClock(clock)

	alice := createMember(t, repo, engine, &models.Member{Name: "Alice", MemberType: models.MemberTypeBoard, IsActive: true})
	bob := createMember(t, repo, engine, &models.Member{Name: "Bob", MemberType: models.MemberTypeBoard, IsActive: true})
	vol := createMember(t, repo, engine, &models.Member{Name: "Vee", MemberType: models.MemberTypeVolunteer, IsActive: true})

	assert.Equal(t, "ORG-B-001-2024", alice.MemberID)
	assert.Equal(t, "ORG-B-002-2024", bob.MemberID)
	assert.Equal(t, "ORG-M-001-2024", vol.MemberID)

	ctx := context.Background()
	n, err := repo.CountByType(ctx, models.MemberTypeBoard)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	ahead, err := repo.CountAhead(ctx, models.MemberTypeBoard, 0, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), ahead)

	ahead, err = repo.CountAhead(ctx, models.MemberTypeBoard, -1, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), ahead, "a lower rank sorts before every peer")
}

func TestMemberRepository_SequentialCreationNumbersOneToN(t *testing.T) {
	repo := NewMemberRepository(newTestDB(t))
	engine := memberid.NewEngine(repo, "NHAFN").WithClock(func() time.Time {
		return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	})

	for i := 1; i <= 5; i++ {
		m := createMember(t, repo, engine, &models.Member{Name: "V", MemberType: models.MemberTypeVolunteer, Order: i})
		assert.Equal(t, memberid.Compose("NHAFN", models.MemberTypeVolunteer, i, 2025), m.MemberID)
	}
}

func TestMemberRepository_FindForPromotion(t *testing.T) {
	repo := NewMemberRepository(newTestDB(t))
	ctx := context.Background()

	withEmail := createMember(t, repo, nil, &models.Member{Name: "Asha", Email: "asha@example.org", MemberType: models.MemberTypeVolunteer})
	noEmail := createMember(t, repo, nil, &models.Member{Name: "Ram", MemberType: models.MemberTypeVolunteer})

	got, err := repo.FindForPromotion(ctx, " asha@example.org ", "Someone Else")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, withEmail.ID, got.ID)

	got, err = repo.FindForPromotion(ctx, "", "Ram")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, noEmail.ID, got.ID)

	got, err = repo.FindForPromotion(ctx, "", "Asha")
	require.NoError(t, err)
	assert.Nil(t, got, "blank-email bucket does not match members that have an email")

	got, err = repo.FindForPromotion(ctx, "nobody@example.org", "Ram")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemberRepository_ListFiltersAndOrdering(t *testing.T) {
	db := newTestDB(t)
	repo := NewMemberRepository(db)
	ctx := context.Background()

	chapter := &models.Chapter{Name: "Pokhara"}
	require.NoError(t, repo.SaveChapter(ctx, chapter))

	createMember(t, repo, nil, &models.Member{Name: "Zed", MemberType: models.MemberTypeBoard, IsActive: true, Order: 0})
	createMember(t, repo, nil, &models.Member{Name: "Amy", MemberType: models.MemberTypeBoard, IsActive: true, Order: 1, ChapterID: &chapter.ID})
	createMember(t, repo, nil, &models.Member{Name: "Bea", MemberType: models.MemberTypeVolunteer, IsActive: false, MemberID: "NHAFN-M-001-2024"})

	all, total, err := repo.List(ctx, MemberFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"Bea", "Zed", "Amy"}, []string{all[0].Name, all[1].Name, all[2].Name})

	board, total, err := repo.List(ctx, MemberFilter{Type: models.MemberTypeBoard, Active: ptr(true)})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, board, 2)

	inChapter, _, err := repo.List(ctx, MemberFilter{ChapterID: &chapter.ID})
	require.NoError(t, err)
	require.Len(t, inChapter, 1)
	require.NotNil(t, inChapter[0].Chapter)
	assert.Equal(t, "Pokhara", inChapter[0].Chapter.Name)

	byID, _, err := repo.List(ctx, MemberFilter{Search: "m-001"})
	require.NoError(t, err)
	require.Len(t, byID, 1)
	assert.Equal(t, "Bea", byID[0].Name)

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 2)

	n, err := repo.CountActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	missing, err := repo.ListMissingIDs(ctx)
	require.NoError(t, err)
	assert.Len(t, missing, 2)
}

func TestMemberRepository_DeleteChapterDetachesMembers(t *testing.T) {
	repo := NewMemberRepository(newTestDB(t))
	ctx := context.Background()

	chapter := &models.Chapter{Name: "Dharan"}
	require.NoError(t, repo.SaveChapter(ctx, chapter))
	m := createMember(t, repo, nil, &models.Member{Name: "Kiran", MemberType: models.MemberTypeVolunteer, ChapterID: &chapter.ID})

	require.NoError(t, repo.DeleteChapter(ctx, chapter.ID))

	got, err := repo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Nil(t, got.ChapterID)

	err = repo.DeleteChapter(ctx, chapter.ID)
	assert.Equal(t, models.CodeNotFound, models.ErrorCode(err))
}

func TestMemberRepository_GetAndDeleteMissing(t *testing.T) {
	repo := NewMemberRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.GetByID(ctx, 404)
	assert.Equal(t, models.CodeNotFound, models.ErrorCode(err))
	assert.Equal(t, models.CodeNotFound, models.ErrorCode(repo.Delete(ctx, 404)))
}
