package service

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"nhaf/internal/cache"
	"nhaf/internal/memberid"
	"nhaf/internal/middleware"
	"nhaf/internal/models"
	"nhaf/internal/observability"
	"nhaf/internal/repository"
	"nhaf/internal/validation"
)

// MemberService manages the team directory.
type MemberService struct {
	repo     repository.MemberRepository
	ids      *memberid.Engine
	settings *SettingsService
}

// NewMemberService returns a MemberService.
func NewMemberService(repo repository.MemberRepository, ids *memberid.Engine, settings *SettingsService) *MemberService {
	return &MemberService{repo: repo, ids: ids, settings: settings}
}

// MemberInput is the staff-editable part of a member. A nil MemberID keeps
// the stored identifier; an empty one asks for a fresh assignment.
type MemberInput struct {
	Name           string            `json:"name"`
	MemberID       *string           `json:"member_id"`
	Role           string            `json:"role"`
	MemberType     models.MemberType `json:"member_type"`
	Photo          string            `json:"photo"`
	Bio            string            `json:"bio"`
	Specialization string            `json:"specialization"`
	ChapterID      *uint             `json:"chapter_id"`
	Email          string            `json:"email"`
	Phone          string            `json:"phone"`
	Education      string            `json:"education"`
	JoinYear       *int              `json:"join_year"`
	DateOfIssue    *time.Time        `json:"date_of_issue"`
	FacebookURL    string            `json:"facebook_url"`
	InstagramURL   string            `json:"instagram_url"`
	LinkedinURL    string            `json:"linkedin_url"`
	IsActive       *bool             `json:"is_active"`
	Order          int               `json:"order"`
}

func (in *MemberInput) validate() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if in.Name == "" {
		return models.NewValidationError("Name is required")
	}
	if in.MemberType == "" {
		in.MemberType = models.MemberTypeVolunteer
	}
	if !in.MemberType.Valid() {
		return models.NewValidationError("member_type must be board or volunteer")
	}
	if err := validation.ValidateOptionalEmail(in.Email); err != nil {
		return models.NewValidationError(err.Error())
	}
	if in.JoinYear != nil && (*in.JoinYear < 1900 || *in.JoinYear > 9999) {
		return models.NewValidationError("join_year must be a four digit year")
	}
	return nil
}

func (in *MemberInput) apply(m *models.Member) {
	m.Name = in.Name
	if in.MemberID != nil {
		m.MemberID = strings.TrimSpace(*in.MemberID)
	}
	m.Role = in.Role
	m.MemberType = in.MemberType
	m.Photo = in.Photo
	m.Bio = in.Bio
	m.Specialization = in.Specialization
	m.ChapterID = in.ChapterID
	m.Email = in.Email
	m.Phone = in.Phone
	m.Education = in.Education
	m.JoinYear = in.JoinYear
	m.DateOfIssue = in.DateOfIssue
	m.FacebookURL = in.FacebookURL
	m.InstagramURL = in.InstagramURL
	m.LinkedinURL = in.LinkedinURL
	if in.IsActive != nil {
		m.IsActive = *in.IsActive
	}
	m.Order = in.Order
}

// Create adds a member and assigns its identifier when none was given.
func (s *MemberService) Create(ctx context.Context, in MemberInput) (*models.Member, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	m := &models.Member{IsActive: true}
	in.apply(m)
	if err := s.checkChapter(ctx, m.ChapterID); err != nil {
		return nil, err
	}
	if err := s.assignIfNeeded(ctx, nil, m); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	cache.InvalidateDirectory(ctx)
	return m, nil
}

// Update saves staff edits. The persisted snapshot is loaded first so a type
// change can be detected; only then is the identifier recomputed.
func (s *MemberService) Update(ctx context.Context, id uint, in MemberInput) (*models.Member, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	before, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	after := *before
	after.Chapter = nil
	in.apply(&after)
	if err := s.checkChapter(ctx, after.ChapterID); err != nil {
		return nil, err
	}
	if err := s.assignIfNeeded(ctx, before, &after); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, &after); err != nil {
		return nil, err
	}
	cache.InvalidateDirectory(ctx)
	return &after, nil
}

// assignIfNeeded computes after's identifier when the trigger policy asks for it.
func (s *MemberService) assignIfNeeded(ctx context.Context, before, after *models.Member) error {
	if !memberid.NeedsAssignment(before, after) {
		return nil
	}
	previous := after.MemberID
	if err := s.ids.Assign(ctx, after); err != nil {
		return models.NewInternalError(err)
	}
	observability.MemberIDsAssigned.WithLabelValues(string(after.MemberType)).Inc()
	middleware.Logger.InfoContext(ctx, "member id assigned",
		slog.Uint64("member_id", uint64(after.ID)),
		slog.String("old", previous),
		slog.String("new", after.MemberID),
	)
	return nil
}

func (s *MemberService) checkChapter(ctx context.Context, id *uint) error {
	if id == nil {
		return nil
	}
	if _, err := s.repo.GetChapter(ctx, *id); err != nil {
		if models.ErrorCode(err) == models.CodeNotFound {
			return models.NewValidationError("chapter does not exist")
		}
		return err
	}
	return nil
}

// Get returns one member.
func (s *MemberService) Get(ctx context.Context, id uint) (*models.Member, error) {
	return s.repo.GetByID(ctx, id)
}

// Delete removes a member. Other identifiers are left as they are.
func (s *MemberService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateDirectory(ctx)
	return nil
}

// List pages through the directory for staff.
func (s *MemberService) List(ctx context.Context, f repository.MemberFilter) ([]models.Member, int64, error) {
	return s.repo.List(ctx, f)
}

// FillMissingIDs assigns identifiers to every member without one and reports
// each change through onChange.
func (s *MemberService) FillMissingIDs(ctx context.Context, onChange func(m *models.Member, old string)) (int, error) {
	missing, err := s.repo.ListMissingIDs(ctx)
	if err != nil {
		return 0, err
	}
	updated := 0
	for i := range missing {
		m := &missing[i]
		old := m.MemberID
		if err := s.assignIfNeeded(ctx, nil, m); err != nil {
			return updated, err
		}
		if err := s.repo.Update(ctx, m); err != nil {
			return updated, err
		}
		updated++
		if onChange != nil {
			onChange(m, old)
		}
	}
	if updated > 0 {
		cache.InvalidateDirectory(ctx)
	}
	return updated, nil
}

// Directory is the public team page payload.
type Directory struct {
	Settings   *models.TeamPageSettings `json:"settings"`
	Subtitle   string                   `json:"subtitle"`
	Count      int                      `json:"count"`
	Board      []models.Member          `json:"board"`
	Volunteers []models.Member          `json:"volunteers"`
}

// PublicDirectory returns active members grouped by type together with the
// team page settings.
func (s *MemberService) PublicDirectory(ctx context.Context) (*Directory, error) {
	var out Directory
	err := cache.Aside(ctx, cache.PublicDirectoryKey, &out, cache.PublicDirectoryTTL, func() error {
		settings, err := s.settings.TeamPage(ctx)
		if err != nil {
			return err
		}
		members, err := s.repo.ListActive(ctx)
		if err != nil {
			return err
		}
		out = Directory{
			Settings:   settings,
			Count:      len(members),
			Board:      []models.Member{},
			Volunteers: []models.Member{},
		}
		for _, m := range members {
			if m.MemberType == models.MemberTypeBoard {
				out.Board = append(out.Board, m)
			} else {
				out.Volunteers = append(out.Volunteers, m)
			}
		}
		out.Subtitle = strings.ReplaceAll(settings.SubtitleTemplate, "{count}", strconv.Itoa(out.Count))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListChapters returns all chapters.
func (s *MemberService) ListChapters(ctx context.Context) ([]models.Chapter, error) {
	return s.repo.ListChapters(ctx)
}

// SaveChapter creates or renames a chapter.
func (s *MemberService) SaveChapter(ctx context.Context, ch *models.Chapter) error {
	ch.Name = strings.TrimSpace(ch.Name)
	if ch.Name == "" {
		return models.NewValidationError("Chapter name is required")
	}
	if ch.ID != 0 {
		if _, err := s.repo.GetChapter(ctx, ch.ID); err != nil {
			return err
		}
	}
	if err := s.repo.SaveChapter(ctx, ch); err != nil {
		return err
	}
	cache.InvalidateDirectory(ctx)
	return nil
}

// DeleteChapter removes a chapter; its members lose the reference.
func (s *MemberService) DeleteChapter(ctx context.Context, id uint) error {
	if err := s.repo.DeleteChapter(ctx, id); err != nil {
		return err
	}
	cache.InvalidateDirectory(ctx)
	return nil
}
