// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives validated
// data from handlers, applies the domain rules (duplicate-subscription
// checks, status transitions, pagination), calls repositories, and fires
// best-effort email dispatch.
package service

// EmailDispatcher is the best-effort mail integration used by services.
// Implementations enqueue delivery and return quickly; services log and
// swallow any error, so email can never fail a request.
type EmailDispatcher interface {
	EnqueueContactNotification(name, fromEmail, message string) error
	EnqueueWelcomeEmail(to string) error
}
