package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/horizontrails/agency-backoffice/internal/database"
	"github.com/horizontrails/agency-backoffice/internal/models"
)

// NewsletterService handles newsletter signups
type NewsletterService struct {
	subscriptions NewsletterStore
	now           func() time.Time
}

// NewNewsletterService creates a new newsletter service
func NewNewsletterService(subscriptions NewsletterStore) *NewsletterService {
	return &NewsletterService{subscriptions: subscriptions, now: time.Now}
}

// Subscribe stores an email once. A repeated email yields ErrDuplicate.
func (s *NewsletterService) Subscribe(ctx context.Context, email string) (*models.NewsletterSubscription, error) {
	if err := validateSubscription(&models.SubscribeRequest{Email: email}); err != nil {
		return nil, err
	}

	sub := &models.NewsletterSubscription{
		ID:           uuid.NewString(),
		Email:        normalizeEmail(email),
		SubscribedAt: s.now(),
	}
	if err := s.subscriptions.Create(ctx, sub); err != nil {
		return nil, storeError(err)
	}
	return sub, nil
}

// List returns one page of subscriptions, newest first
func (s *NewsletterService) List(ctx context.Context, req PageRequest) (*models.Page[models.NewsletterSubscription], error) {
	return Paginate[models.NewsletterSubscription](ctx, s.subscriptions, database.Filter{}, subscriberSort, req)
}
