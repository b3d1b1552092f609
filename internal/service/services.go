package service

import (
	"github.com/focusflow/backend/internal/lib/job"
	"github.com/focusflow/backend/internal/repository"
	"github.com/focusflow/backend/internal/server"
)

// Services is a container that groups all business-logic services.
type Services struct {
	Contacts      ContactService
	Subscriptions SubscriptionService
	Job           *job.JobService
}

// NewService constructs the service container. The job service doubles as
// the email dispatcher for both domain services.
func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Contacts:      NewContactService(repos.Contacts, s.Job, s.Logger),
		Subscriptions: NewSubscriptionService(repos.Subscriptions, s.Job, s.Logger),
		Job:           s.Job,
	}, nil
}
