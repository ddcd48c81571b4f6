package service

import (
	"context"

	"nhaf/internal/repository"

	"golang.org/x/sync/errgroup"
)

// DashboardService aggregates the staff landing page counters.
type DashboardService struct {
	members       repository.MemberRepository
	donations     repository.DonationRepository
	contacts      repository.ContactRepository
	applications  repository.ApplicationRepository
	notifications repository.NotificationRepository
	chat          repository.ChatRepository
}

// NewDashboardService returns a DashboardService.
func NewDashboardService(
	members repository.MemberRepository,
	donations repository.DonationRepository,
	contacts repository.ContactRepository,
	applications repository.ApplicationRepository,
	notifications repository.NotificationRepository,
	chat repository.ChatRepository,
) *DashboardService {
	return &DashboardService{
		members:       members,
		donations:     donations,
		contacts:      contacts,
		applications:  applications,
		notifications: notifications,
		chat:          chat,
	}
}

// DashboardStats are the landing page counters.
type DashboardStats struct {
	ActiveMembers       int64   `json:"active_members"`
	CompletedDonations  int64   `json:"completed_donations"`
	DonationTotal       float64 `json:"donation_total"`
	ContactMessages     int64   `json:"contact_messages"`
	PendingApplications int64   `json:"pending_applications"`
	UnreadNotifications int64   `json:"unread_notifications"`
	UnreadChatMessages  int64   `json:"unread_chat_messages"`
}

// Stats runs the counters concurrently.
func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	var out DashboardStats
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.ActiveMembers, err = s.members.CountActive(gctx)
		return err
	})
	g.Go(func() error {
		stats, err := s.donations.CompletedStats(gctx)
		if err != nil {
			return err
		}
		out.CompletedDonations = stats.Count
		out.DonationTotal = stats.Total
		return nil
	})
	g.Go(func() (err error) {
		out.ContactMessages, err = s.contacts.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.PendingApplications, err = s.applications.CountPending(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.UnreadNotifications, err = s.notifications.UnreadCount(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.UnreadChatMessages, err = s.chat.UnreadCount(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}
