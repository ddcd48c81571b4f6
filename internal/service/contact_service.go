package service

import (
	"context"
	"strings"

	"nhaf/internal/models"
	"nhaf/internal/observability"
	"nhaf/internal/repository"
	"nhaf/internal/validation"
)

// ContactService stores contact form submissions.
type ContactService struct {
	repo     repository.ContactRepository
	notifier *NotificationService
}

// NewContactService returns a ContactService.
func NewContactService(repo repository.ContactRepository, notifier *NotificationService) *ContactService {
	return &ContactService{repo: repo, notifier: notifier}
}

// ContactInput is a public contact form submission.
type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Submit stores the message and notifies staff.
func (s *ContactService) Submit(ctx context.Context, in ContactInput) (*models.ContactMessage, error) {
	trim(&in.Name, &in.Email, &in.Subject, &in.Message)
	if err := validation.Required(
		validation.Field{Name: "name", Value: in.Name},
		validation.Field{Name: "email", Value: in.Email},
		validation.Field{Name: "message", Value: in.Message},
	); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.MaxLength("subject", in.Subject, 200); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	msg := &models.ContactMessage{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, err
	}
	observability.FormSubmissions.WithLabelValues("contact").Inc()

	summary := msg.Subject
	if strings.TrimSpace(summary) == "" {
		summary = truncateRunes(msg.Message, 100)
	}
	s.notifier.notify(ctx, models.NotificationContactMessage,
		"New message from "+msg.Name,
		summary,
		LinkContact,
	)
	return msg, nil
}

// List pages through submissions, newest first.
func (s *ContactService) List(ctx context.Context, limit, offset int) ([]models.ContactMessage, int64, error) {
	return s.repo.List(ctx, limit, offset)
}
