package router

import (
	"net/http"

	"github.com/focusflow/backend/internal/handler"
	"github.com/focusflow/backend/internal/middleware"
	"github.com/labstack/echo/v4"
)

// registerRoutes wires the API surface.
//
// The contact listing is an operator endpoint: it sits behind the admin
// key gate, which is open (with a startup warning) when no key is
// configured.
func registerRoutes(e *echo.Echo, h *handler.Handlers, m *middleware.Middlewares) {
	api := e.Group("/api")

	// System endpoints.
	api.GET("/health", h.Health.CheckHealth)
	api.GET("/health/ready", h.Health.CheckReadiness)

	// Contact form.
	api.POST("/contact", handler.Handle(h.Contact.Handler, h.Contact.Create, http.StatusCreated))
	api.GET("/contact", handler.Handle(h.Contact.Handler, h.Contact.List, http.StatusOK), m.Auth.RequireAdminKey())

	// Newsletter subscriptions.
	api.POST("/subscribe", handler.Handle(h.Subscription.Handler, h.Subscription.Create, http.StatusCreated))
	api.DELETE("/subscribe/:email", handler.Handle(h.Subscription.Handler, h.Subscription.Cancel, http.StatusOK))
}
