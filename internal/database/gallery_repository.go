package database

import (
	"context"
	"fmt"

	"github.com/horizontrails/agency-backoffice/internal/models"
)

const galleryColumns = `id, title, image_url, category, sort_order, created_at`

// GalleryRepository handles database operations for gallery_items
type GalleryRepository struct {
	db DB
}

// NewGalleryRepository creates a new GalleryRepository
func NewGalleryRepository(db DB) *GalleryRepository {
	return &GalleryRepository{db: db}
}

// Create inserts a gallery item
func (r *GalleryRepository) Create(ctx context.Context, item *models.GalleryItem) error {
	query := `
		INSERT INTO gallery_items (id, title, image_url, category, sort_order, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		item.ID, item.Title, item.ImageURL, item.Category, item.Order, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create gallery item: %w", translateError(err))
	}
	return nil
}

// Find retrieves a page of gallery items
func (r *GalleryRepository) Find(ctx context.Context, f Filter, s Sort, limit, offset int) ([]models.GalleryItem, error) {
	query, args := selectPage(galleryColumns, "gallery_items", f, s, limit, offset)

	items := []models.GalleryItem{}
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list gallery items: %w", err)
	}
	return items, nil
}

// Count counts gallery items matching the filter
func (r *GalleryRepository) Count(ctx context.Context, f Filter) (int64, error) {
	query, args := selectCount("gallery_items", f)

	var total int64
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count gallery items: %w", err)
	}
	return total, nil
}

// Delete removes a gallery item
func (r *GalleryRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM gallery_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete gallery item: %w", err)
	}
	if err := requireAffected(result); err != nil {
		return fmt.Errorf("failed to delete gallery item: %w", err)
	}
	return nil
}
