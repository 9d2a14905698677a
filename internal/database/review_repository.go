package database

import (
	"context"
	"fmt"

	"github.com/horizontrails/agency-backoffice/internal/models"
)

const reviewColumns = `id, name, email, rating, comment, destination, status, created_at, updated_at`

// ReviewRepository handles database operations for the reviews table
type ReviewRepository struct {
	db DB
}

// NewReviewRepository creates a new ReviewRepository
func NewReviewRepository(db DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create inserts a new review
func (r *ReviewRepository) Create(ctx context.Context, rv *models.Review) error {
	query := `
		INSERT INTO reviews (id, name, email, rating, comment, destination, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(ctx, query,
		rv.ID, rv.Name, rv.Email, rv.Rating, rv.Comment, rv.Destination, string(rv.Status), rv.CreatedAt, rv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create review: %w", translateError(err))
	}
	return nil
}

// Find retrieves reviews matching the filter. A zero limit returns all rows.
func (r *ReviewRepository) Find(ctx context.Context, f Filter, s Sort, limit, offset int) ([]models.Review, error) {
	query, args := selectPage(reviewColumns, "reviews", f, s, limit, offset)

	reviews := []models.Review{}
	if err := r.db.SelectContext(ctx, &reviews, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

// Count counts reviews matching the filter
func (r *ReviewRepository) Count(ctx context.Context, f Filter) (int64, error) {
	query, args := selectCount("reviews", f)

	var total int64
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count reviews: %w", err)
	}
	return total, nil
}

// UpdateStatus sets the moderation status of a review and returns the updated row
func (r *ReviewRepository) UpdateStatus(ctx context.Context, id string, status models.ReviewStatus) (*models.Review, error) {
	query := `UPDATE reviews SET status = $1, updated_at = NOW() WHERE id = $2 RETURNING ` + reviewColumns

	var rv models.Review
	if err := r.db.GetContext(ctx, &rv, query, string(status), id); err != nil {
		return nil, fmt.Errorf("failed to update review status: %w", translateError(err))
	}
	return &rv, nil
}

// Delete removes a review
func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	if err := requireAffected(result); err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	return nil
}
