package handler

import (
	"time"

	"github.com/focusflow/backend/internal/lib/utils"
	"github.com/focusflow/backend/internal/model"
	"github.com/focusflow/backend/internal/server"
	"github.com/focusflow/backend/internal/service"
	"github.com/focusflow/backend/internal/validation"
	"github.com/labstack/echo/v4"
)

// SubscriptionHandler serves the newsletter subscription endpoints.
type SubscriptionHandler struct {
	Handler
	subscriptions service.SubscriptionService
}

// NewSubscriptionHandler constructs a SubscriptionHandler.
func NewSubscriptionHandler(s *server.Server, subscriptions service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{
		Handler:       NewHandler(s),
		subscriptions: subscriptions,
	}
}

// CreateSubscriptionRequest is the newsletter signup payload.
type CreateSubscriptionRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (r *CreateSubscriptionRequest) Validate() error {
	r.Email = utils.NormalizeEmail(r.Email)
	return validation.Struct(r)
}

// CancelSubscriptionRequest identifies the subscription to cancel by the
// email path parameter. No format check here: an address that never
// subscribed simply resolves to not found.
type CancelSubscriptionRequest struct {
	Email string `param:"email" validate:"required"`
}

func (r *CancelSubscriptionRequest) Validate() error {
	r.Email = utils.NormalizeEmail(r.Email)
	return validation.Struct(r)
}

// subscriptionSummary is the subset of a subscription echoed back on signup.
type subscriptionSummary struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Create handles POST /api/subscribe.
func (h *SubscriptionHandler) Create(c echo.Context, req *CreateSubscriptionRequest) (Response, error) {
	sub, err := h.subscriptions.Create(c.Request().Context(), req.Email, model.SubscriptionMetadata{
		IPAddress:  c.RealIP(),
		UserAgent:  c.Request().UserAgent(),
		SignupPage: c.Request().Referer(),
	})
	if err != nil {
		return Response{}, err
	}

	return SuccessResponse("Successfully subscribed to newsletter", echo.Map{
		"subscription": subscriptionSummary{
			ID:        sub.ID,
			Email:     sub.Email,
			CreatedAt: sub.CreatedAt,
		},
	}), nil
}

// Cancel handles DELETE /api/subscribe/:email.
func (h *SubscriptionHandler) Cancel(c echo.Context, req *CancelSubscriptionRequest) (Response, error) {
	if err := h.subscriptions.Cancel(c.Request().Context(), req.Email); err != nil {
		return Response{}, err
	}

	return SuccessResponse("Successfully unsubscribed", nil), nil
}
