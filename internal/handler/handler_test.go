package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/focusflow/backend/internal/config"
	"github.com/focusflow/backend/internal/middleware"
	"github.com/focusflow/backend/internal/model"
	"github.com/focusflow/backend/internal/server"
	"github.com/focusflow/backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type mockContactService struct {
	createFunc func(ctx context.Context, input service.ContactInput) (*model.Contact, error)
	listFunc   func(ctx context.Context, page, limit int) ([]*model.Contact, model.Pagination, error)
}

func (m *mockContactService) Create(ctx context.Context, input service.ContactInput) (*model.Contact, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, input)
	}
	return &model.Contact{ID: "contact-1", Name: input.Name, Email: input.Email}, nil
}

func (m *mockContactService) List(ctx context.Context, page, limit int) ([]*model.Contact, model.Pagination, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, page, limit)
	}
	return nil, model.Pagination{}, nil
}

type mockSubscriptionService struct {
	isSubscribedFunc func(ctx context.Context, email string) (bool, error)
	createFunc       func(ctx context.Context, email string, metadata model.SubscriptionMetadata) (*model.Subscription, error)
	cancelFunc       func(ctx context.Context, email string) error
}

func (m *mockSubscriptionService) IsSubscribed(ctx context.Context, email string) (bool, error) {
	if m.isSubscribedFunc != nil {
		return m.isSubscribedFunc(ctx, email)
	}
	return false, nil
}

func (m *mockSubscriptionService) Create(ctx context.Context, email string, metadata model.SubscriptionMetadata) (*model.Subscription, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, email, metadata)
	}
	return &model.Subscription{ID: "sub-1", Email: email}, nil
}

func (m *mockSubscriptionService) Cancel(ctx context.Context, email string) error {
	if m.cancelFunc != nil {
		return m.cancelFunc(ctx, email)
	}
	return nil
}

// newTestRouter builds an echo instance with the real routes and error
// funnel but mock services, so tests exercise the full request pipeline
// without a database.
func newTestRouter(t *testing.T, contacts service.ContactService, subscriptions service.SubscriptionService) *echo.Echo {
	t.Helper()

	logger := zerolog.Nop()
	srv := &server.Server{
		Config: &config.Config{
			Observability: config.DefaultObservabilityConfig(),
		},
		Logger: &logger,
	}

	global := middleware.NewGlobalMiddlewares(srv)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = global.GlobalErrorHandler

	h := &Handlers{
		Health:       NewHealthHandler(srv),
		Contact:      NewContactHandler(srv, contacts),
		Subscription: NewSubscriptionHandler(srv, subscriptions),
	}

	api := e.Group("/api")
	api.GET("/health", h.Health.CheckHealth)
	api.POST("/contact", Handle(h.Contact.Handler, h.Contact.Create, http.StatusCreated))
	api.GET("/contact", Handle(h.Contact.Handler, h.Contact.List, http.StatusOK))
	api.POST("/subscribe", Handle(h.Subscription.Handler, h.Subscription.Create, http.StatusCreated))
	api.DELETE("/subscribe/:email", Handle(h.Subscription.Handler, h.Subscription.Cancel, http.StatusOK))

	return e
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	return doRequest(e, method, target, body, nil)
}

func doRequest(e *echo.Echo, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealthEndpoint(t *testing.T) {
	e := newTestRouter(t, &mockContactService{}, &mockSubscriptionService{})

	rec := doJSON(e, http.MethodGet, "/api/health", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, "success", body["status"])
	require.Equal(t, "FocusFlow API is running", body["message"])
	require.NotEmpty(t, body["timestamp"])
}

func TestUnmatchedRoute(t *testing.T) {
	e := newTestRouter(t, &mockContactService{}, &mockSubscriptionService{})

	rec := doJSON(e, http.MethodGet, "/api/unknown", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, "error", body["status"])
	require.Equal(t, "Route not found", body["message"])
}
