package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/focusflow/backend/internal/errs"
	"github.com/focusflow/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSubscription_Success(t *testing.T) {
	var gotEmail string
	var gotMetadata model.SubscriptionMetadata
	subscriptions := &mockSubscriptionService{
		createFunc: func(ctx context.Context, email string, metadata model.SubscriptionMetadata) (*model.Subscription, error) {
			gotEmail = email
			gotMetadata = metadata
			return &model.Subscription{ID: "sub-1", Email: email, CreatedAt: time.Now()}, nil
		},
	}
	e := newTestRouter(t, &mockContactService{}, subscriptions)

	rec := doRequest(e, http.MethodPost, "/api/subscribe",
		`{"email":"Reader@Example.COM"}`,
		map[string]string{"Referer": "https://focusflow.app/pricing"})

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "Successfully subscribed to newsletter", body["message"])

	data := body["data"].(map[string]interface{})
	subscription := data["subscription"].(map[string]interface{})
	assert.Equal(t, "sub-1", subscription["id"])
	assert.Equal(t, "reader@example.com", subscription["email"])

	assert.Equal(t, "reader@example.com", gotEmail)
	assert.Equal(t, "https://focusflow.app/pricing", gotMetadata.SignupPage)
}

func TestCreateSubscription_InvalidEmail(t *testing.T) {
	e := newTestRouter(t, &mockContactService{}, &mockSubscriptionService{})

	rec := doJSON(e, http.MethodPost, "/api/subscribe", `{"email":"nope"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "error", body["status"])

	errors := body["errors"].([]interface{})
	require.Len(t, errors, 1)
	fieldErr := errors[0].(map[string]interface{})
	assert.Equal(t, "Please provide a valid email", fieldErr["error"])
}

func TestCreateSubscription_Conflict(t *testing.T) {
	subscriptions := &mockSubscriptionService{
		createFunc: func(ctx context.Context, email string, metadata model.SubscriptionMetadata) (*model.Subscription, error) {
			return nil, errs.NewConflictError("Email is already subscribed")
		},
	}
	e := newTestRouter(t, &mockContactService{}, subscriptions)

	rec := doJSON(e, http.MethodPost, "/api/subscribe", `{"email":"taken@example.com"}`)

	require.Equal(t, http.StatusConflict, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "Email is already subscribed", body["message"])
}

func TestCancelSubscription_Success(t *testing.T) {
	var gotEmail string
	subscriptions := &mockSubscriptionService{
		cancelFunc: func(ctx context.Context, email string) error {
			gotEmail = email
			return nil
		},
	}
	e := newTestRouter(t, &mockContactService{}, subscriptions)

	rec := doJSON(e, http.MethodDelete, "/api/subscribe/User@Example.COM", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "Successfully unsubscribed", body["message"])
	assert.Equal(t, "user@example.com", gotEmail)
}

func TestCancelSubscription_NotFound(t *testing.T) {
	subscriptions := &mockSubscriptionService{
		cancelFunc: func(ctx context.Context, email string) error {
			return errs.NewNotFoundError("Subscription not found", true, nil)
		},
	}
	e := newTestRouter(t, &mockContactService{}, subscriptions)

	rec := doJSON(e, http.MethodDelete, "/api/subscribe/missing@example.com", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "Subscription not found", body["message"])
}
