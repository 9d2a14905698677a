package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/horizontrails/agency-backoffice/internal/models"
)

// ReviewService handles review submission and moderation
type ReviewService struct {
	reviews ReviewStore
	now     func() time.Time
}

// NewReviewService creates a new review service
func NewReviewService(reviews ReviewStore) *ReviewService {
	return &ReviewService{reviews: reviews, now: time.Now}
}

// Create stores a review awaiting moderation. Clients cannot choose the status.
func (s *ReviewService) Create(ctx context.Context, req *models.CreateReviewRequest) (*models.Review, error) {
	if err := validateReviewRequest(req); err != nil {
		return nil, err
	}

	now := s.now()
	review := &models.Review{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		Email:       normalizeEmail(req.Email),
		Rating:      *req.Rating,
		Comment:     strings.TrimSpace(req.Comment),
		Destination: optionalString(req.Destination),
		Status:      models.ReviewStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return review, nil
}

// ListPublic returns up to 20 approved reviews, newest first, without emails
func (s *ReviewService) ListPublic(ctx context.Context, opts ReviewListOptions) ([]models.PublicReview, error) {
	reviews, err := s.reviews.Find(ctx, opts.Filter(true), newestFirst, PublicReviewLimit, 0)
	if err != nil {
		return nil, err
	}

	public := make([]models.PublicReview, 0, len(reviews))
	for i := range reviews {
		public = append(public, reviews[i].Public())
	}
	return public, nil
}

// List returns one page of reviews for moderation
func (s *ReviewService) List(ctx context.Context, opts ReviewListOptions) (*models.Page[models.Review], error) {
	return Paginate[models.Review](ctx, s.reviews, opts.Filter(false), newestFirst, opts.PageRequest())
}

// UpdateStatus sets any status of the review vocabulary
func (s *ReviewService) UpdateStatus(ctx context.Context, id, status string) (*models.Review, error) {
	parsed, err := models.ParseStatus(models.KindReview, status)
	if err != nil {
		return nil, statusError(err)
	}

	r, err := s.reviews.UpdateStatus(ctx, id, models.ReviewStatus(parsed))
	if err != nil {
		return nil, storeError(err)
	}
	return r, nil
}

// Delete removes a review
func (s *ReviewService) Delete(ctx context.Context, id string) error {
	return storeError(s.reviews.Delete(ctx, id))
}
