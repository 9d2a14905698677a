package database

import (
	"context"
	"fmt"

	"github.com/horizontrails/agency-backoffice/internal/models"
)

const bookingColumns = `id, package_id, customer_name, email, phone, travel_date,
	number_of_travelers, special_requests, total_price, status, created_at, updated_at`

// BookingRepository handles database operations for the bookings table
type BookingRepository struct {
	db DB
}

// NewBookingRepository creates a new BookingRepository
func NewBookingRepository(db DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create inserts a new booking
func (r *BookingRepository) Create(ctx context.Context, b *models.Booking) error {
	query := `
		INSERT INTO bookings (
			id, package_id, customer_name, email, phone, travel_date,
			number_of_travelers, special_requests, total_price, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.ExecContext(ctx, query,
		b.ID, b.PackageID, b.CustomerName, b.Email, b.Phone, b.TravelDate,
		b.NumberOfTravelers, b.SpecialRequests, b.TotalPrice, string(b.Status), b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", translateError(err))
	}
	return nil
}

// GetByID retrieves a booking by id
func (r *BookingRepository) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var b models.Booking
	err := r.db.GetContext(ctx, &b, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", translateError(err))
	}
	return &b, nil
}

// Find retrieves a page of bookings matching the filter
func (r *BookingRepository) Find(ctx context.Context, f Filter, s Sort, limit, offset int) ([]models.Booking, error) {
	query, args := selectPage(bookingColumns, "bookings", f, s, limit, offset)

	bookings := []models.Booking{}
	if err := r.db.SelectContext(ctx, &bookings, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// Count counts bookings matching the filter
func (r *BookingRepository) Count(ctx context.Context, f Filter) (int64, error) {
	query, args := selectCount("bookings", f)

	var total int64
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return total, nil
}

// SumTotalPrice sums total_price over bookings matching the filter
func (r *BookingRepository) SumTotalPrice(ctx context.Context, f Filter) (float64, error) {
	where, args := f.Where()

	var sum float64
	if err := r.db.GetContext(ctx, &sum, `SELECT COALESCE(SUM(total_price), 0) FROM bookings`+where, args...); err != nil {
		return 0, fmt.Errorf("failed to sum booking revenue: %w", err)
	}
	return sum, nil
}

// UpdateStatus sets the status of a booking and returns the updated row.
// Last write wins; the previous status is not checked.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status models.BookingStatus) (*models.Booking, error) {
	query := `UPDATE bookings SET status = $1, updated_at = NOW() WHERE id = $2 RETURNING ` + bookingColumns

	var b models.Booking
	if err := r.db.GetContext(ctx, &b, query, string(status), id); err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", translateError(err))
	}
	return &b, nil
}
