package database

import (
	"context"
	"fmt"

	"github.com/horizontrails/agency-backoffice/internal/models"
)

const inquiryColumns = `id, name, email, phone, package_id, message, status, created_at, updated_at`

// InquiryRepository handles database operations for the inquiries table
type InquiryRepository struct {
	db DB
}

// NewInquiryRepository creates a new InquiryRepository
func NewInquiryRepository(db DB) *InquiryRepository {
	return &InquiryRepository{db: db}
}

// Create inserts a new inquiry
func (r *InquiryRepository) Create(ctx context.Context, i *models.Inquiry) error {
	query := `
		INSERT INTO inquiries (id, name, email, phone, package_id, message, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(ctx, query,
		i.ID, i.Name, i.Email, i.Phone, i.PackageID, i.Message, string(i.Status), i.CreatedAt, i.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create inquiry: %w", translateError(err))
	}
	return nil
}

// GetByID retrieves an inquiry by id
func (r *InquiryRepository) GetByID(ctx context.Context, id string) (*models.Inquiry, error) {
	var i models.Inquiry
	err := r.db.GetContext(ctx, &i, `SELECT `+inquiryColumns+` FROM inquiries WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get inquiry: %w", translateError(err))
	}
	return &i, nil
}

// Find retrieves a page of inquiries matching the filter
func (r *InquiryRepository) Find(ctx context.Context, f Filter, s Sort, limit, offset int) ([]models.Inquiry, error) {
	query, args := selectPage(inquiryColumns, "inquiries", f, s, limit, offset)

	inquiries := []models.Inquiry{}
	if err := r.db.SelectContext(ctx, &inquiries, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}
	return inquiries, nil
}

// Count counts inquiries matching the filter
func (r *InquiryRepository) Count(ctx context.Context, f Filter) (int64, error) {
	query, args := selectCount("inquiries", f)

	var total int64
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count inquiries: %w", err)
	}
	return total, nil
}

// UpdateStatus sets the status of an inquiry and returns the updated row
func (r *InquiryRepository) UpdateStatus(ctx context.Context, id string, status models.InquiryStatus) (*models.Inquiry, error) {
	query := `UPDATE inquiries SET status = $1, updated_at = NOW() WHERE id = $2 RETURNING ` + inquiryColumns

	var i models.Inquiry
	if err := r.db.GetContext(ctx, &i, query, string(status), id); err != nil {
		return nil, fmt.Errorf("failed to update inquiry status: %w", translateError(err))
	}
	return &i, nil
}
