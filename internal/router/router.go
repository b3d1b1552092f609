// Package router initializes the HTTP router (using echo).
//
// It registers the middlewares and defines the API route groups, mapping
// paths to their corresponding handlers.
package router

import (
	"github.com/focusflow/backend/internal/handler"
	"github.com/focusflow/backend/internal/middleware"
	"github.com/focusflow/backend/internal/server"
	"github.com/labstack/echo/v4"
)

// New builds the echo instance with the full middleware chain and all
// routes registered.
//
// Middleware order matters: request id first so every later component can
// correlate, then the New Relic transaction, then the context enhancer
// (request-scoped logger), then tracing attributes, then the generic
// protections (CORS, secure headers, body limit, request log, recover).
func New(s *server.Server, h *handler.Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	m := middleware.NewMiddlewares(s)

	e.HTTPErrorHandler = m.Global.GlobalErrorHandler

	e.Use(middleware.RequestID())
	e.Use(m.Tracing.NewRelicMiddleware())
	e.Use(m.ContextEnhancer.EnhanceContext())
	e.Use(m.Tracing.EnhanceTracing())
	e.Use(m.Global.CORS())
	e.Use(m.Global.Secure())
	e.Use(m.Global.BodyLimit())
	e.Use(m.Global.RequestLogger())
	e.Use(m.Global.Recover())

	registerRoutes(e, h, m)

	return e
}
