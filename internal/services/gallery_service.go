package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/horizontrails/agency-backoffice/internal/models"
)

// GalleryService handles gallery items
type GalleryService struct {
	items GalleryStore
	now   func() time.Time
}

// NewGalleryService creates a new gallery service
func NewGalleryService(items GalleryStore) *GalleryService {
	return &GalleryService{items: items, now: time.Now}
}

// List returns one page of gallery items ordered by position
func (s *GalleryService) List(ctx context.Context, opts GalleryListOptions) (*models.Page[models.GalleryItem], error) {
	return Paginate[models.GalleryItem](ctx, s.items, opts.Filter(), gallerySort, opts.PageRequest())
}

// Create adds a gallery item
func (s *GalleryService) Create(ctx context.Context, req *models.CreateGalleryItemRequest) (*models.GalleryItem, error) {
	if err := validateGalleryRequest(req); err != nil {
		return nil, err
	}

	item := &models.GalleryItem{
		ID:        uuid.NewString(),
		Title:     strings.TrimSpace(req.Title),
		ImageURL:  strings.TrimSpace(req.ImageURL),
		Category:  optionalString(req.Category),
		Order:     req.Order,
		CreatedAt: s.now(),
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create gallery item: %w", err)
	}
	return item, nil
}

// Delete removes a gallery item
func (s *GalleryService) Delete(ctx context.Context, id string) error {
	return storeError(s.items.Delete(ctx, id))
}
