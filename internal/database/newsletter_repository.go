package database

import (
	"context"
	"fmt"

	"github.com/horizontrails/agency-backoffice/internal/models"
)

// NewsletterRepository handles database operations for newsletter_subscriptions
type NewsletterRepository struct {
	db DB
}

// NewNewsletterRepository creates a new NewsletterRepository
func NewNewsletterRepository(db DB) *NewsletterRepository {
	return &NewsletterRepository{db: db}
}

// Create inserts a subscription. A repeated email yields ErrDuplicate.
func (r *NewsletterRepository) Create(ctx context.Context, sub *models.NewsletterSubscription) error {
	query := `INSERT INTO newsletter_subscriptions (id, email, subscribed_at) VALUES ($1, $2, $3)`

	if _, err := r.db.ExecContext(ctx, query, sub.ID, sub.Email, sub.SubscribedAt); err != nil {
		return fmt.Errorf("failed to create subscription: %w", translateError(err))
	}
	return nil
}

// Find retrieves a page of subscriptions
func (r *NewsletterRepository) Find(ctx context.Context, f Filter, s Sort, limit, offset int) ([]models.NewsletterSubscription, error) {
	query, args := selectPage("id, email, subscribed_at", "newsletter_subscriptions", f, s, limit, offset)

	subs := []models.NewsletterSubscription{}
	if err := r.db.SelectContext(ctx, &subs, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	return subs, nil
}

// Count counts subscriptions matching the filter
func (r *NewsletterRepository) Count(ctx context.Context, f Filter) (int64, error) {
	query, args := selectCount("newsletter_subscriptions", f)

	var total int64
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count subscriptions: %w", err)
	}
	return total, nil
}
