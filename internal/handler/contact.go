package handler

import (
	"strings"
	"time"

	"github.com/focusflow/backend/internal/lib/utils"
	"github.com/focusflow/backend/internal/model"
	"github.com/focusflow/backend/internal/server"
	"github.com/focusflow/backend/internal/service"
	"github.com/focusflow/backend/internal/validation"
	"github.com/labstack/echo/v4"
)

// ContactHandler serves the contact form endpoints.
type ContactHandler struct {
	Handler
	contacts service.ContactService
}

// NewContactHandler constructs a ContactHandler.
func NewContactHandler(s *server.Server, contacts service.ContactService) *ContactHandler {
	return &ContactHandler{
		Handler:  NewHandler(s),
		contacts: contacts,
	}
}

// CreateContactRequest is the contact form payload. Name and message are
// optional; only the email is mandatory.
type CreateContactRequest struct {
	Name    string `json:"name" validate:"omitempty,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"omitempty,max=1000"`
}

// Validate trims free-text fields and lowercases the email before running
// the tag rules, so length limits apply to the stored value.
func (r *CreateContactRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = utils.NormalizeEmail(r.Email)
	r.Message = strings.TrimSpace(r.Message)
	return validation.Struct(r)
}

// ListContactsRequest carries the pagination query parameters. Zero or
// negative values fall back to service defaults, mirroring how missing
// parameters behave.
type ListContactsRequest struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

func (r *ListContactsRequest) Validate() error {
	return nil
}

// contactSummary is the subset of a contact echoed back on creation. The
// full record (metadata included) is reserved for the admin listing.
type contactSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Create handles POST /api/contact.
func (h *ContactHandler) Create(c echo.Context, req *CreateContactRequest) (Response, error) {
	contact, err := h.contacts.Create(c.Request().Context(), service.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
		Metadata: model.RequestMetadata{
			IPAddress: c.RealIP(),
			UserAgent: c.Request().UserAgent(),
			Referrer:  c.Request().Referer(),
		},
	})
	if err != nil {
		return Response{}, err
	}

	return SuccessResponse("Contact form submitted successfully", echo.Map{
		"contact": contactSummary{
			ID:        contact.ID,
			Name:      contact.Name,
			Email:     contact.Email,
			CreatedAt: contact.CreatedAt,
		},
	}), nil
}

// List handles GET /api/contact. The route is gated by the admin key
// middleware when a key is configured.
func (h *ContactHandler) List(c echo.Context, req *ListContactsRequest) (Response, error) {
	contacts, pagination, err := h.contacts.List(c.Request().Context(), req.Page, req.Limit)
	if err != nil {
		return Response{}, err
	}

	return ListResponse(len(contacts), echo.Map{
		"contacts":   contacts,
		"pagination": pagination,
	}), nil
}
