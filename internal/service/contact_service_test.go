package service

import (
	"context"
	"errors"
	"testing"

	"github.com/focusflow/backend/internal/model"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockContactRepository struct {
	createFunc func(ctx context.Context, contact *model.Contact) error
	listFunc   func(ctx context.Context, limit, offset int) ([]*model.Contact, error)
	countFunc  func(ctx context.Context) (int, error)
}

func (m *mockContactRepository) Create(ctx context.Context, contact *model.Contact) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, contact)
	}
	return nil
}

func (m *mockContactRepository) List(ctx context.Context, limit, offset int) ([]*model.Contact, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, limit, offset)
	}
	return nil, nil
}

func (m *mockContactRepository) Count(ctx context.Context) (int, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx)
	}
	return 0, nil
}

func newContactService(repo *mockContactRepository, dispatcher *mockDispatcher) ContactService {
	logger := zerolog.Nop()
	return NewContactService(repo, dispatcher, &logger)
}

func TestContactService_Create_Defaults(t *testing.T) {
	var created *model.Contact
	repo := &mockContactRepository{
		createFunc: func(ctx context.Context, contact *model.Contact) error {
			created = contact
			return nil
		},
	}
	svc := newContactService(repo, &mockDispatcher{})

	contact, err := svc.Create(context.Background(), ContactInput{
		Name:    "Ana",
		Email:   " Ana@Example.COM",
		Message: "Hello there",
		Metadata: model.RequestMetadata{
			IPAddress: "203.0.113.9",
			UserAgent: "curl/8",
			Referrer:  "https://example.com/",
		},
	})
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, "ana@example.com", created.Email)
	assert.Equal(t, model.ContactStatusNew, created.Status)
	assert.Equal(t, model.ContactSourceLandingPage, created.Source)
	assert.Equal(t, "203.0.113.9", created.Metadata.IPAddress)
	assert.Same(t, created, contact)
}

func TestContactService_Create_NotifiesOperator(t *testing.T) {
	var gotName, gotEmail, gotMessage string
	dispatcher := &mockDispatcher{
		contactFunc: func(name, fromEmail, message string) error {
			gotName, gotEmail, gotMessage = name, fromEmail, message
			return nil
		},
	}
	svc := newContactService(&mockContactRepository{}, dispatcher)

	_, err := svc.Create(context.Background(), ContactInput{
		Name:    "Ana",
		Email:   "ana@example.com",
		Message: "Hello",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana", gotName)
	assert.Equal(t, "ana@example.com", gotEmail)
	assert.Equal(t, "Hello", gotMessage)
}

func TestContactService_Create_DispatchFailureIsSwallowed(t *testing.T) {
	dispatcher := &mockDispatcher{
		contactFunc: func(name, fromEmail, message string) error {
			return errors.New("queue unavailable")
		},
	}
	svc := newContactService(&mockContactRepository{}, dispatcher)

	contact, err := svc.Create(context.Background(), ContactInput{Email: "a@b.com"})
	require.NoError(t, err)
	assert.NotNil(t, contact)
}

func TestContactService_Create_RepoErrorSkipsDispatch(t *testing.T) {
	dispatched := false
	repo := &mockContactRepository{
		createFunc: func(ctx context.Context, contact *model.Contact) error {
			return errors.New("insert failed")
		},
	}
	dispatcher := &mockDispatcher{
		contactFunc: func(name, fromEmail, message string) error {
			dispatched = true
			return nil
		},
	}
	svc := newContactService(repo, dispatcher)

	_, err := svc.Create(context.Background(), ContactInput{Email: "a@b.com"})
	require.Error(t, err)
	assert.False(t, dispatched)
}

func TestContactService_List_Defaults(t *testing.T) {
	var gotLimit, gotOffset int
	repo := &mockContactRepository{
		listFunc: func(ctx context.Context, limit, offset int) ([]*model.Contact, error) {
			gotLimit, gotOffset = limit, offset
			return nil, nil
		},
	}
	svc := newContactService(repo, &mockDispatcher{})

	_, pagination, err := svc.List(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 10, gotLimit)
	assert.Equal(t, 0, gotOffset)
	assert.Equal(t, 1, pagination.Page)
	assert.Equal(t, 10, pagination.Limit)
}

func TestContactService_List_PaginationMath(t *testing.T) {
	contacts := make([]*model.Contact, 10)
	for i := range contacts {
		contacts[i] = &model.Contact{ID: "c"}
	}

	var gotOffset int
	repo := &mockContactRepository{
		listFunc: func(ctx context.Context, limit, offset int) ([]*model.Contact, error) {
			gotOffset = offset
			return contacts, nil
		},
		countFunc: func(ctx context.Context) (int, error) {
			return 25, nil
		},
	}
	svc := newContactService(repo, &mockDispatcher{})

	got, pagination, err := svc.List(context.Background(), 2, 10)
	require.NoError(t, err)
	assert.Len(t, got, 10)
	assert.Equal(t, 10, gotOffset)
	assert.Equal(t, model.Pagination{Page: 2, Limit: 10, Total: 25, Pages: 3}, pagination)
}

func TestContactService_List_CountError(t *testing.T) {
	repo := &mockContactRepository{
		countFunc: func(ctx context.Context) (int, error) {
			return 0, errors.New("count failed")
		},
	}
	svc := newContactService(repo, &mockDispatcher{})

	_, _, err := svc.List(context.Background(), 1, 10)
	assert.Error(t, err)
}
