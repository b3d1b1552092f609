package service

import (
	"context"

	"github.com/focusflow/backend/internal/errs"
	"github.com/focusflow/backend/internal/lib/utils"
	"github.com/focusflow/backend/internal/model"
	"github.com/focusflow/backend/internal/repository"
	"github.com/rs/zerolog"
)

// SubscriptionService defines the business logic for newsletter
// subscriptions.
//
// The asymmetry between Create's active-only existence check and Cancel's
// status-agnostic lookup is deliberate: it allows re-subscription after an
// unsubscribe while letting a repeated cancel find (and idempotently
// re-unsubscribe) the existing record.
type SubscriptionService interface {
	// IsSubscribed reports whether an active subscription exists for the
	// email.
	IsSubscribed(ctx context.Context, email string) (bool, error)

	// Create subscribes an email. Returns a 409 Conflict error without
	// touching the store when the email already holds an active
	// subscription.
	Create(ctx context.Context, email string, metadata model.SubscriptionMetadata) (*model.Subscription, error)

	// Cancel unsubscribes an email. Returns a 404 error only when no
	// record exists at all; cancelling an already-unsubscribed record
	// succeeds.
	Cancel(ctx context.Context, email string) error
}

type subscriptionService struct {
	repo       repository.SubscriptionRepository
	dispatcher EmailDispatcher
	logger     *zerolog.Logger
}

// NewSubscriptionService creates a SubscriptionService backed by the given
// repository and email dispatcher.
func NewSubscriptionService(repo repository.SubscriptionRepository, dispatcher EmailDispatcher, logger *zerolog.Logger) SubscriptionService {
	return &subscriptionService{
		repo:       repo,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// IsSubscribed checks for an active subscription on the lowercased email.
func (s *subscriptionService) IsSubscribed(ctx context.Context, email string) (bool, error) {
	return s.repo.ExistsActive(ctx, utils.NormalizeEmail(email))
}

// Create inserts an active subscription with default preferences.
//
// The pre-check returns Conflict without a write when an active
// subscription exists. Two concurrent creates can both pass the pre-check;
// the unique index on email then rejects the loser, which surfaces as a
// duplicate-key error instead.
func (s *subscriptionService) Create(ctx context.Context, email string, metadata model.SubscriptionMetadata) (*model.Subscription, error) {
	normalized := utils.NormalizeEmail(email)

	subscribed, err := s.repo.ExistsActive(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if subscribed {
		return nil, errs.NewConflictError("Email is already subscribed")
	}

	if metadata.SignupPage == "" {
		metadata.SignupPage = model.SubscriptionSourceLandingPage
	}

	sub := &model.Subscription{
		Email:       normalized,
		Status:      model.SubscriptionStatusActive,
		Source:      model.SubscriptionSourceLandingPage,
		Preferences: model.DefaultSubscriptionPreferences(),
		Metadata:    metadata,
	}

	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, err
	}

	if err := s.dispatcher.EnqueueWelcomeEmail(sub.Email); err != nil {
		s.logger.Warn().
			Err(err).
			Str("email", sub.Email).
			Msg("welcome email dispatch failed")
	}

	return sub, nil
}

// Cancel flips the subscription status to "unsubscribed" in place. The
// lookup is status-agnostic, so repeated cancels keep succeeding; only a
// missing record is NotFound. The write is unconditional once the record is
// found, which keeps concurrent cancels idempotent in outcome.
func (s *subscriptionService) Cancel(ctx context.Context, email string) error {
	normalized := utils.NormalizeEmail(email)

	sub, err := s.repo.FindByEmail(ctx, normalized)
	if err != nil {
		return err
	}
	if sub == nil {
		return errs.NewNotFoundError("Subscription not found", true, nil)
	}

	return s.repo.UpdateStatus(ctx, sub.ID, model.SubscriptionStatusUnsubscribed)
}
