package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/horizontrails/agency-backoffice/internal/models"
)

// BookingService handles booking submission, listing and status changes
type BookingService struct {
	bookings   BookingStore
	packages   PackageLookup
	notifier   Notifier
	staffEmail string
	logger     *logrus.Logger
	now        func() time.Time
}

// NewBookingService creates a new booking service
func NewBookingService(
	bookings BookingStore,
	packages PackageLookup,
	notifier Notifier,
	staffEmail string,
	logger *logrus.Logger,
) *BookingService {
	return &BookingService{
		bookings:   bookings,
		packages:   packages,
		notifier:   notifier,
		staffEmail: staffEmail,
		logger:     logger,
		now:        time.Now,
	}
}

// Create validates and stores a booking, then notifies the customer and staff.
// Notifications never affect the result.
func (s *BookingService) Create(ctx context.Context, req *models.CreateBookingRequest, from Submitter) (*models.Booking, error) {
	now := s.now()

	travelDate, err := validateBookingRequest(req, now)
	if err != nil {
		return nil, err
	}

	pkg, err := s.packages.GetByID(ctx, strings.TrimSpace(req.PackageID))
	if err != nil {
		if errors.Is(storeError(err), ErrNotFound) {
			return nil, ErrReferenceNotFound
		}
		return nil, fmt.Errorf("failed to resolve package: %w", err)
	}

	booking := &models.Booking{
		ID:                uuid.NewString(),
		PackageID:         pkg.ID,
		CustomerName:      strings.TrimSpace(req.CustomerName),
		Email:             normalizeEmail(req.Email),
		Phone:             strings.TrimSpace(req.Phone),
		TravelDate:        travelDate,
		NumberOfTravelers: *req.NumberOfTravelers,
		SpecialRequests:   optionalString(req.SpecialRequests),
		TotalPrice:        *req.TotalPrice,
		Status:            models.BookingStatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"booking_id": booking.ID,
		"package_id": booking.PackageID,
	}).Info("Booking created")

	s.notifier.Dispatch(EventBookingCreated, bookingNotifications(booking, pkg, s.staffEmail, from)...)

	return booking, nil
}

// GetByID retrieves a booking
func (s *BookingService) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err)
	}
	return b, nil
}

// List returns one page of bookings
func (s *BookingService) List(ctx context.Context, opts BookingListOptions) (*models.Page[models.Booking], error) {
	return Paginate[models.Booking](ctx, s.bookings, opts.Filter(), opts.Sort(), opts.PageRequest())
}

// UpdateStatus sets any status of the booking vocabulary, whatever the current status is
func (s *BookingService) UpdateStatus(ctx context.Context, id, status string) (*models.Booking, error) {
	parsed, err := models.ParseStatus(models.KindBooking, status)
	if err != nil {
		return nil, statusError(err)
	}

	b, err := s.bookings.UpdateStatus(ctx, id, models.BookingStatus(parsed))
	if err != nil {
		return nil, storeError(err)
	}
	return b, nil
}
