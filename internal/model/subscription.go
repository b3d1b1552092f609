package model

import "time"

// Subscription statuses. Unsubscribing flips the status in place; records
// are never deleted, which keeps the email unique across all statuses.
const (
	SubscriptionStatusActive       = "active"
	SubscriptionStatusInactive     = "inactive"
	SubscriptionStatusUnsubscribed = "unsubscribed"
)

// Subscription sources.
const (
	SubscriptionSourceLandingPage = "landing-page"
	SubscriptionSourceNewsletter  = "newsletter"
	SubscriptionSourcePromotion   = "promotion"
)

// Subscription represents a newsletter opt-in, unique per email.
type Subscription struct {
	ID          string                  `json:"id"`
	Email       string                  `json:"email"`
	Status      string                  `json:"status"`
	Source      string                  `json:"source"`
	Preferences SubscriptionPreferences `json:"preferences"`
	Metadata    SubscriptionMetadata    `json:"metadata"`
	CreatedAt   time.Time               `json:"createdAt"`
	UpdatedAt   time.Time               `json:"updatedAt"`
}

// SubscriptionPreferences are three independent opt-in flags.
type SubscriptionPreferences struct {
	Newsletter     bool `json:"newsletter"`
	ProductUpdates bool `json:"productUpdates"`
	Marketing      bool `json:"marketing"`
}

// DefaultSubscriptionPreferences returns the preferences applied to a new
// subscription: newsletter and product updates on, marketing off.
func DefaultSubscriptionPreferences() SubscriptionPreferences {
	return SubscriptionPreferences{
		Newsletter:     true,
		ProductUpdates: true,
		Marketing:      false,
	}
}

// SubscriptionMetadata captures request provenance at signup time.
type SubscriptionMetadata struct {
	IPAddress  string `json:"ipAddress,omitempty"`
	UserAgent  string `json:"userAgent,omitempty"`
	SignupPage string `json:"signupPage,omitempty"`
}
