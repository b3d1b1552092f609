package service

import (
	"context"

	"github.com/focusflow/backend/internal/lib/utils"
	"github.com/focusflow/backend/internal/model"
	"github.com/focusflow/backend/internal/repository"
	"github.com/rs/zerolog"
)

// Defaults for the contact listing.
const (
	DefaultContactPage  = 1
	DefaultContactLimit = 10
)

// ContactInput carries the validated fields of a contact submission.
type ContactInput struct {
	Name     string
	Email    string
	Message  string
	Metadata model.RequestMetadata
}

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Create persists a new contact and fires the best-effort operator
	// notification email.
	Create(ctx context.Context, input ContactInput) (*model.Contact, error)

	// List returns contacts newest-first with 1-based pagination.
	List(ctx context.Context, page, limit int) ([]*model.Contact, model.Pagination, error)
}

type contactService struct {
	repo       repository.ContactRepository
	dispatcher EmailDispatcher
	logger     *zerolog.Logger
}

// NewContactService creates a ContactService backed by the given repository
// and email dispatcher.
func NewContactService(repo repository.ContactRepository, dispatcher EmailDispatcher, logger *zerolog.Logger) ContactService {
	return &contactService{
		repo:       repo,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Create persists a contact with status "new" and source "landing-page".
// The notification email is dispatched after the write succeeds; a dispatch
// failure is logged and swallowed — the database write is the transaction
// of record.
func (s *contactService) Create(ctx context.Context, input ContactInput) (*model.Contact, error) {
	contact := &model.Contact{
		Name:     input.Name,
		Email:    utils.NormalizeEmail(input.Email),
		Message:  input.Message,
		Source:   model.ContactSourceLandingPage,
		Status:   model.ContactStatusNew,
		Metadata: input.Metadata,
	}

	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, err
	}

	if err := s.dispatcher.EnqueueContactNotification(contact.Name, contact.Email, contact.Message); err != nil {
		s.logger.Warn().
			Err(err).
			Str("email", contact.Email).
			Msg("contact notification dispatch failed")
	}

	return contact, nil
}

// List returns one page of contacts ordered by created_at descending, plus
// the pagination envelope. Out-of-range page/limit fall back to defaults.
func (s *contactService) List(ctx context.Context, page, limit int) ([]*model.Contact, model.Pagination, error) {
	if page < 1 {
		page = DefaultContactPage
	}
	if limit < 1 {
		limit = DefaultContactLimit
	}

	offset := (page - 1) * limit

	contacts, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, model.Pagination{}, err
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, model.Pagination{}, err
	}

	return contacts, model.NewPagination(page, limit, total), nil
}
