package service

import (
	"context"
	"errors"
	"testing"

	"github.com/focusflow/backend/internal/errs"
	"github.com/focusflow/backend/internal/model"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSubscriptionRepository struct {
	createFunc       func(ctx context.Context, sub *model.Subscription) error
	findByEmailFunc  func(ctx context.Context, email string) (*model.Subscription, error)
	existsActiveFunc func(ctx context.Context, email string) (bool, error)
	updateStatusFunc func(ctx context.Context, id, status string) error
}

func (m *mockSubscriptionRepository) Create(ctx context.Context, sub *model.Subscription) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, sub)
	}
	return nil
}

func (m *mockSubscriptionRepository) FindByEmail(ctx context.Context, email string) (*model.Subscription, error) {
	if m.findByEmailFunc != nil {
		return m.findByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) ExistsActive(ctx context.Context, email string) (bool, error) {
	if m.existsActiveFunc != nil {
		return m.existsActiveFunc(ctx, email)
	}
	return false, nil
}

func (m *mockSubscriptionRepository) UpdateStatus(ctx context.Context, id, status string) error {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status)
	}
	return nil
}

type mockDispatcher struct {
	contactFunc func(name, fromEmail, message string) error
	welcomeFunc func(to string) error
}

func (m *mockDispatcher) EnqueueContactNotification(name, fromEmail, message string) error {
	if m.contactFunc != nil {
		return m.contactFunc(name, fromEmail, message)
	}
	return nil
}

func (m *mockDispatcher) EnqueueWelcomeEmail(to string) error {
	if m.welcomeFunc != nil {
		return m.welcomeFunc(to)
	}
	return nil
}

func newSubscriptionService(repo *mockSubscriptionRepository, dispatcher *mockDispatcher) SubscriptionService {
	logger := zerolog.Nop()
	return NewSubscriptionService(repo, dispatcher, &logger)
}

func TestSubscriptionService_Create_Defaults(t *testing.T) {
	var created *model.Subscription
	repo := &mockSubscriptionRepository{
		createFunc: func(ctx context.Context, sub *model.Subscription) error {
			created = sub
			return nil
		},
	}
	svc := newSubscriptionService(repo, &mockDispatcher{})

	sub, err := svc.Create(context.Background(), "  User@Example.COM ", model.SubscriptionMetadata{})
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, "user@example.com", created.Email)
	assert.Equal(t, model.SubscriptionStatusActive, created.Status)
	assert.Equal(t, model.SubscriptionSourceLandingPage, created.Source)
	assert.Equal(t, model.DefaultSubscriptionPreferences(), created.Preferences)
	assert.Equal(t, "landing-page", created.Metadata.SignupPage)
	assert.Same(t, created, sub)
}

func TestSubscriptionService_Create_KeepsProvidedSignupPage(t *testing.T) {
	var created *model.Subscription
	repo := &mockSubscriptionRepository{
		createFunc: func(ctx context.Context, sub *model.Subscription) error {
			created = sub
			return nil
		},
	}
	svc := newSubscriptionService(repo, &mockDispatcher{})

	_, err := svc.Create(context.Background(), "a@b.com", model.SubscriptionMetadata{
		SignupPage: "https://example.com/pricing",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/pricing", created.Metadata.SignupPage)
}

func TestSubscriptionService_Create_ConflictWithoutWrite(t *testing.T) {
	writes := 0
	repo := &mockSubscriptionRepository{
		existsActiveFunc: func(ctx context.Context, email string) (bool, error) {
			return true, nil
		},
		createFunc: func(ctx context.Context, sub *model.Subscription) error {
			writes++
			return nil
		},
	}
	svc := newSubscriptionService(repo, &mockDispatcher{})

	_, err := svc.Create(context.Background(), "taken@example.com", model.SubscriptionMetadata{})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 409, httpErr.Status)
	assert.Equal(t, "Email is already subscribed", httpErr.Message)
	assert.Zero(t, writes)
}

func TestSubscriptionService_Create_SendsWelcomeEmail(t *testing.T) {
	var sentTo string
	dispatcher := &mockDispatcher{
		welcomeFunc: func(to string) error {
			sentTo = to
			return nil
		},
	}
	svc := newSubscriptionService(&mockSubscriptionRepository{}, dispatcher)

	_, err := svc.Create(context.Background(), "New@Example.com", model.SubscriptionMetadata{})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", sentTo)
}

func TestSubscriptionService_Create_DispatchFailureIsSwallowed(t *testing.T) {
	dispatcher := &mockDispatcher{
		welcomeFunc: func(to string) error {
			return errors.New("queue unavailable")
		},
	}
	svc := newSubscriptionService(&mockSubscriptionRepository{}, dispatcher)

	sub, err := svc.Create(context.Background(), "a@b.com", model.SubscriptionMetadata{})
	require.NoError(t, err)
	assert.NotNil(t, sub)
}

func TestSubscriptionService_Cancel_NotFound(t *testing.T) {
	svc := newSubscriptionService(&mockSubscriptionRepository{}, &mockDispatcher{})

	err := svc.Cancel(context.Background(), "never@example.com")

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 404, httpErr.Status)
	assert.Equal(t, "Subscription not found", httpErr.Message)
}

func TestSubscriptionService_Cancel_Active(t *testing.T) {
	var gotID, gotStatus string
	repo := &mockSubscriptionRepository{
		findByEmailFunc: func(ctx context.Context, email string) (*model.Subscription, error) {
			return &model.Subscription{ID: "sub-1", Email: email, Status: model.SubscriptionStatusActive}, nil
		},
		updateStatusFunc: func(ctx context.Context, id, status string) error {
			gotID, gotStatus = id, status
			return nil
		},
	}
	svc := newSubscriptionService(repo, &mockDispatcher{})

	require.NoError(t, svc.Cancel(context.Background(), "user@example.com"))
	assert.Equal(t, "sub-1", gotID)
	assert.Equal(t, model.SubscriptionStatusUnsubscribed, gotStatus)
}

// A second cancel finds the already-unsubscribed record and still succeeds.
func TestSubscriptionService_Cancel_AlreadyUnsubscribed(t *testing.T) {
	repo := &mockSubscriptionRepository{
		findByEmailFunc: func(ctx context.Context, email string) (*model.Subscription, error) {
			return &model.Subscription{ID: "sub-1", Email: email, Status: model.SubscriptionStatusUnsubscribed}, nil
		},
	}
	svc := newSubscriptionService(repo, &mockDispatcher{})

	assert.NoError(t, svc.Cancel(context.Background(), "user@example.com"))
}

func TestSubscriptionService_Cancel_NormalizesEmail(t *testing.T) {
	var lookedUp string
	repo := &mockSubscriptionRepository{
		findByEmailFunc: func(ctx context.Context, email string) (*model.Subscription, error) {
			lookedUp = email
			return &model.Subscription{ID: "sub-1", Email: email, Status: model.SubscriptionStatusActive}, nil
		},
	}
	svc := newSubscriptionService(repo, &mockDispatcher{})

	require.NoError(t, svc.Cancel(context.Background(), " User@Example.COM"))
	assert.Equal(t, "user@example.com", lookedUp)
}

func TestSubscriptionService_IsSubscribed(t *testing.T) {
	repo := &mockSubscriptionRepository{
		existsActiveFunc: func(ctx context.Context, email string) (bool, error) {
			return email == "active@example.com", nil
		},
	}
	svc := newSubscriptionService(repo, &mockDispatcher{})

	subscribed, err := svc.IsSubscribed(context.Background(), "Active@Example.com")
	require.NoError(t, err)
	assert.True(t, subscribed)

	subscribed, err = svc.IsSubscribed(context.Background(), "other@example.com")
	require.NoError(t, err)
	assert.False(t, subscribed)
}
