package handler

import (
	"github.com/focusflow/backend/internal/server"
	"github.com/focusflow/backend/internal/service"
)

// Handlers is a container that groups all HTTP handlers. Router setup takes
// this one object instead of each handler individually.
type Handlers struct {
	Health       *HealthHandler
	Contact      *ContactHandler
	Subscription *SubscriptionHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:       NewHealthHandler(s),
		Contact:      NewContactHandler(s, services.Contacts),
		Subscription: NewSubscriptionHandler(s, services.Subscriptions),
	}
}
