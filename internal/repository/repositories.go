package repository

import (
	"github.com/focusflow/backend/internal/server"
)

// Repositories is a container for all repository instances, wired once at
// startup and handed to the service layer.
type Repositories struct {
	Contacts      ContactRepository
	Subscriptions SubscriptionRepository
}

// NewRepositories constructs the repository container from the shared
// database pool on the application container.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Contacts:      NewPgContactRepository(s.DB.Pool),
		Subscriptions: NewPgSubscriptionRepository(s.DB.Pool),
	}
}
