package repository

import (
	"context"

	"github.com/focusflow/backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ContactRepository defines the persistence interface for contact
// submissions. It is defined here (not in service) to avoid an import cycle.
type ContactRepository interface {
	// Create inserts a new contact and populates ID and timestamps from
	// the database.
	Create(ctx context.Context, contact *model.Contact) error

	// List returns contacts ordered newest-first with the given window.
	List(ctx context.Context, limit, offset int) ([]*model.Contact, error)

	// Count returns the total number of contacts.
	Count(ctx context.Context) (int, error)
}

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

var _ ContactRepository = (*PgContactRepository)(nil)

// Create inserts a contacts row and populates contact.ID, CreatedAt, and
// UpdatedAt from the RETURNING clause. Optional text fields are stored as
// NULL when empty.
func (r *PgContactRepository) Create(ctx context.Context, contact *model.Contact) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO contacts (name, email, message, source, status, ip_address, user_agent, referrer)
		 VALUES (NULLIF($1, ''), $2, NULLIF($3, ''), $4, $5, NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''))
		 RETURNING id, created_at, updated_at`,
		contact.Name,
		contact.Email,
		contact.Message,
		contact.Source,
		contact.Status,
		contact.Metadata.IPAddress,
		contact.Metadata.UserAgent,
		contact.Metadata.Referrer,
	).Scan(&contact.ID, &contact.CreatedAt, &contact.UpdatedAt)
}

// List returns contacts ordered by created_at descending.
func (r *PgContactRepository) List(ctx context.Context, limit, offset int) ([]*model.Contact, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, COALESCE(name, ''), email, COALESCE(message, ''), source, status,
		        COALESCE(ip_address, ''), COALESCE(user_agent, ''), COALESCE(referrer, ''),
		        created_at, updated_at
		 FROM contacts
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []*model.Contact
	for rows.Next() {
		var c model.Contact
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Email, &c.Message, &c.Source, &c.Status,
			&c.Metadata.IPAddress, &c.Metadata.UserAgent, &c.Metadata.Referrer,
			&c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		contacts = append(contacts, &c)
	}
	return contacts, rows.Err()
}

// Count returns the total number of contacts.
func (r *PgContactRepository) Count(ctx context.Context) (int, error) {
	var total int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM contacts`).Scan(&total)
	return total, err
}
