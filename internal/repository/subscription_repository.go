package repository

import (
	"context"
	"errors"

	"github.com/focusflow/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SubscriptionRepository defines the persistence interface for newsletter
// subscriptions.
type SubscriptionRepository interface {
	// Create inserts a new subscription and populates ID and timestamps.
	// The unique index on email serializes concurrent creates: the loser
	// receives a unique-violation error from the driver.
	Create(ctx context.Context, sub *model.Subscription) error

	// FindByEmail looks a subscription up by email regardless of status.
	// Returns (nil, nil) when no record exists.
	FindByEmail(ctx context.Context, email string) (*model.Subscription, error)

	// ExistsActive reports whether an active subscription exists for the
	// email.
	ExistsActive(ctx context.Context, email string) (bool, error)

	// UpdateStatus sets the subscription's status and refreshes
	// updated_at.
	UpdateStatus(ctx context.Context, id string, status string) error
}

// PgSubscriptionRepository is the PostgreSQL implementation of
// SubscriptionRepository.
type PgSubscriptionRepository struct {
	pool *pgxpool.Pool
}

// NewPgSubscriptionRepository creates a PgSubscriptionRepository backed by
// the pool.
func NewPgSubscriptionRepository(pool *pgxpool.Pool) *PgSubscriptionRepository {
	return &PgSubscriptionRepository{pool: pool}
}

var _ SubscriptionRepository = (*PgSubscriptionRepository)(nil)

// Create inserts a subscriptions row and populates sub.ID, CreatedAt, and
// UpdatedAt from the RETURNING clause.
func (r *PgSubscriptionRepository) Create(ctx context.Context, sub *model.Subscription) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO subscriptions
		     (email, status, source, pref_newsletter, pref_product_updates, pref_marketing,
		      ip_address, user_agent, signup_page)
		 VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), NULLIF($8, ''), NULLIF($9, ''))
		 RETURNING id, created_at, updated_at`,
		sub.Email,
		sub.Status,
		sub.Source,
		sub.Preferences.Newsletter,
		sub.Preferences.ProductUpdates,
		sub.Preferences.Marketing,
		sub.Metadata.IPAddress,
		sub.Metadata.UserAgent,
		sub.Metadata.SignupPage,
	).Scan(&sub.ID, &sub.CreatedAt, &sub.UpdatedAt)
}

// FindByEmail returns the subscription for an email in any status, or
// (nil, nil) when none exists.
func (r *PgSubscriptionRepository) FindByEmail(ctx context.Context, email string) (*model.Subscription, error) {
	var s model.Subscription
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, status, source, pref_newsletter, pref_product_updates, pref_marketing,
		        COALESCE(ip_address, ''), COALESCE(user_agent, ''), COALESCE(signup_page, ''),
		        created_at, updated_at
		 FROM subscriptions
		 WHERE email = $1`,
		email,
	).Scan(
		&s.ID, &s.Email, &s.Status, &s.Source,
		&s.Preferences.Newsletter, &s.Preferences.ProductUpdates, &s.Preferences.Marketing,
		&s.Metadata.IPAddress, &s.Metadata.UserAgent, &s.Metadata.SignupPage,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ExistsActive reports whether an active subscription exists for the email.
func (r *PgSubscriptionRepository) ExistsActive(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM subscriptions WHERE email = $1 AND status = $2)`,
		email, model.SubscriptionStatusActive,
	).Scan(&exists)
	return exists, err
}

// UpdateStatus sets the status of a subscription and bumps updated_at.
func (r *PgSubscriptionRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE subscriptions SET status = $1, updated_at = now() WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
