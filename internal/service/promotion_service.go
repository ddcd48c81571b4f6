package service

import (
	"context"
	"log/slog"
	"strings"

	"nhaf/internal/cache"
	"nhaf/internal/memberid"
	"nhaf/internal/middleware"
	"nhaf/internal/models"
	"nhaf/internal/notifications"
	"nhaf/internal/observability"
	"nhaf/internal/repository"
)

// volunteerRole is the role label published for approved volunteers.
const volunteerRole = "Volunteer"

// PromotionService approves and rejects applications and publishes approved
// applicants to the team directory.
type PromotionService struct {
	apps      repository.ApplicationRepository
	members   repository.MemberRepository
	ids       *memberid.Engine
	notifier  *NotificationService
	publisher notifications.Publisher
}

// NewPromotionService returns a PromotionService. publisher may be nil.
func NewPromotionService(
	apps repository.ApplicationRepository,
	members repository.MemberRepository,
	ids *memberid.Engine,
	notifier *NotificationService,
	publisher notifications.Publisher,
) *PromotionService {
	return &PromotionService{
		apps:      apps,
		members:   members,
		ids:       ids,
		notifier:  notifier,
		publisher: publisher,
	}
}

// ReviewResult reports a status change. The status write is authoritative:
// PromotionError is set when the directory entry could not be published but
// the application stays approved.
type ReviewResult struct {
	Kind           models.ApplicationKind   `json:"kind"`
	ID             uint                     `json:"id"`
	Status         models.ApplicationStatus `json:"status"`
	PreviousStatus models.ApplicationStatus `json:"previous_status"`
	Member         *models.Member           `json:"member,omitempty"`
	PromotionError string                   `json:"promotion_error,omitempty"`
}

// applicant is what promotion copies from either application variant.
type applicant struct {
	name  string
	email string
	phone string
	role  string
	photo string
}

func cannotApproveRejected(previous models.ApplicationStatus) error {
	if previous == models.ApplicationStatusRejected {
		return models.NewValidationError("A rejected application cannot be approved")
	}
	return nil
}

func cannotRejectApproved(previous models.ApplicationStatus) error {
	if previous == models.ApplicationStatusApproved {
		return models.NewValidationError("An approved application cannot be rejected")
	}
	return nil
}

// ApproveVolunteer approves a volunteer application and publishes the applicant.
func (s *PromotionService) ApproveVolunteer(ctx context.Context, id uint) (*ReviewResult, error) {
	app, previous, err := s.apps.TransitionVolunteer(ctx, id, models.ApplicationStatusApproved, cannotApproveRejected)
	if err != nil {
		return nil, err
	}
	res := &ReviewResult{
		Kind:           models.ApplicationKindVolunteer,
		ID:             app.ID,
		Status:         app.Status,
		PreviousStatus: previous,
	}
	s.promote(ctx, res, applicant{
		name:  app.Name,
		email: app.Email,
		phone: app.ContactNumber,
		role:  volunteerRole,
		photo: app.ProfileImage,
	})
	s.notifier.notify(ctx, models.NotificationMemberApproved,
		"Volunteer approved: "+app.Name,
		"Volunteer application has been approved and published to the team directory.",
		LinkMembers,
	)
	s.announce(ctx, res)
	return res, nil
}

// ApproveMembership approves a membership application and publishes the
// applicant under the label of their tier.
func (s *PromotionService) ApproveMembership(ctx context.Context, id uint) (*ReviewResult, error) {
	app, previous, err := s.apps.TransitionMembership(ctx, id, models.ApplicationStatusApproved, cannotApproveRejected)
	if err != nil {
		return nil, err
	}
	res := &ReviewResult{
		Kind:           models.ApplicationKindMembership,
		ID:             app.ID,
		Status:         app.Status,
		PreviousStatus: previous,
	}
	s.promote(ctx, res, applicant{
		name:  app.Name,
		email: app.Email,
		phone: app.Phone,
		role:  app.MemberType.Label(),
	})
	s.notifier.notify(ctx, models.NotificationMemberApproved,
		"Member approved: "+app.Name,
		"Membership application has been approved and published to the team directory.",
		LinkMembers,
	)
	s.announce(ctx, res)
	return res, nil
}

// RejectVolunteer rejects a pending volunteer application. Rejecting twice is a no-op.
func (s *PromotionService) RejectVolunteer(ctx context.Context, id uint) (*ReviewResult, error) {
	app, previous, err := s.apps.TransitionVolunteer(ctx, id, models.ApplicationStatusRejected, cannotRejectApproved)
	if err != nil {
		return nil, err
	}
	res := &ReviewResult{
		Kind:           models.ApplicationKindVolunteer,
		ID:             app.ID,
		Status:         app.Status,
		PreviousStatus: previous,
	}
	s.notifier.notify(ctx, models.NotificationMemberRejected,
		"Volunteer rejected: "+app.Name,
		"Volunteer application was rejected.",
		LinkMembers,
	)
	s.announce(ctx, res)
	return res, nil
}

// RejectMembership rejects a pending membership application.
func (s *PromotionService) RejectMembership(ctx context.Context, id uint) (*ReviewResult, error) {
	app, previous, err := s.apps.TransitionMembership(ctx, id, models.ApplicationStatusRejected, cannotRejectApproved)
	if err != nil {
		return nil, err
	}
	res := &ReviewResult{
		Kind:           models.ApplicationKindMembership,
		ID:             app.ID,
		Status:         app.Status,
		PreviousStatus: previous,
	}
	s.notifier.notify(ctx, models.NotificationMemberRejected,
		"Membership rejected: "+app.Name,
		"Membership application was rejected.",
		LinkMembers,
	)
	s.announce(ctx, res)
	return res, nil
}

// promote upserts the directory entry for an approved applicant. Failures are
// recorded on res and logged; the committed status is left alone.
func (s *PromotionService) promote(ctx context.Context, res *ReviewResult, a applicant) {
	ctx, span := observability.GetTraceLayer().TracePromotion(ctx, string(res.Kind), res.ID)
	m, err := s.upsertMember(ctx, a)
	observability.EndSpan(span, err)
	if err != nil {
		res.PromotionError = err.Error()
		observability.PromotionFailures.WithLabelValues(string(res.Kind)).Inc()
		middleware.Logger.ErrorContext(ctx, "promotion failed",
			slog.String("kind", string(res.Kind)),
			slog.Uint64("application_id", uint64(res.ID)),
			slog.String("error", err.Error()),
		)
		return
	}
	res.Member = m
	cache.InvalidateDirectory(ctx)
}

func (s *PromotionService) upsertMember(ctx context.Context, a applicant) (*models.Member, error) {
	email := strings.TrimSpace(a.email)
	existing, err := s.members.FindForPromotion(ctx, email, a.name)
	if err != nil {
		return nil, err
	}

	var before *models.Member
	m := &models.Member{}
	if existing != nil {
		snapshot := *existing
		before = &snapshot
		m = existing
		m.Chapter = nil
	}
	m.Name = a.name
	m.Role = a.role
	m.MemberType = models.MemberTypeVolunteer
	m.Email = email
	m.Phone = a.phone
	m.IsActive = true
	if a.photo != "" {
		m.Photo = a.photo
	}

	if memberid.NeedsAssignment(before, m) {
		if err := s.ids.Assign(ctx, m); err != nil {
			return nil, err
		}
		observability.MemberIDsAssigned.WithLabelValues(string(m.MemberType)).Inc()
	}
	if existing == nil {
		err = s.members.Create(ctx, m)
	} else {
		err = s.members.Update(ctx, m)
	}
	if err != nil {
		return nil, err
	}
	middleware.Logger.InfoContext(ctx, "applicant published",
		slog.Uint64("member_id", uint64(m.ID)),
		slog.String("identifier", m.MemberID),
		slog.Bool("created", existing == nil),
	)
	return m, nil
}

func (s *PromotionService) announce(ctx context.Context, res *ReviewResult) {
	if s.publisher == nil {
		return
	}
	s.publisher.Publish(ctx, notifications.EventApplicationUpdated, map[string]any{
		"kind":   res.Kind,
		"id":     res.ID,
		"status": res.Status,
	})
}
