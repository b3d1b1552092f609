package model

import "time"

// Contact statuses. Only StatusNew is reachable through the public API;
// the remaining transitions are an operator capability.
const (
	ContactStatusNew       = "new"
	ContactStatusContacted = "contacted"
	ContactStatusReplied   = "replied"
	ContactStatusClosed    = "closed"
)

// Contact sources.
const (
	ContactSourceLandingPage = "landing-page"
	ContactSourceContactForm = "contact-form"
	ContactSourceNewsletter  = "newsletter"
)

// Contact represents a message submitted via the contact form.
type Contact struct {
	ID        string          `json:"id"`
	Name      string          `json:"name,omitempty"`
	Email     string          `json:"email"`
	Message   string          `json:"message,omitempty"`
	Source    string          `json:"source"`
	Status    string          `json:"status"`
	Metadata  RequestMetadata `json:"metadata"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// RequestMetadata captures request provenance at creation time.
// Referrer doubles as the signup page for subscriptions.
type RequestMetadata struct {
	IPAddress string `json:"ipAddress,omitempty"`
	UserAgent string `json:"userAgent,omitempty"`
	Referrer  string `json:"referrer,omitempty"`
}

// Pagination describes one page of a listing.
// Pages is ceil(Total / Limit).
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// NewPagination computes the pagination envelope for a listing response.
func NewPagination(page, limit, total int) Pagination {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: pages,
	}
}
