package services

import (
	"context"
	"errors"

	"github.com/horizontrails/agency-backoffice/internal/database"
	"github.com/horizontrails/agency-backoffice/internal/models"
)

// PackageStore is the persistence used by PackageService
type PackageStore interface {
	Finder[models.Package]
	Create(ctx context.Context, pkg *models.Package) error
	GetByID(ctx context.Context, id string) (*models.Package, error)
	Update(ctx context.Context, pkg *models.Package) error
	Delete(ctx context.Context, id string) error
}

// PackageLookup resolves package references on submissions
type PackageLookup interface {
	GetByID(ctx context.Context, id string) (*models.Package, error)
}

// BookingStore is the persistence used by BookingService and StatsService
type BookingStore interface {
	Finder[models.Booking]
	Create(ctx context.Context, b *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	UpdateStatus(ctx context.Context, id string, status models.BookingStatus) (*models.Booking, error)
	SumTotalPrice(ctx context.Context, f database.Filter) (float64, error)
}

// InquiryStore is the persistence used by InquiryService and StatsService
type InquiryStore interface {
	Finder[models.Inquiry]
	Create(ctx context.Context, i *models.Inquiry) error
	GetByID(ctx context.Context, id string) (*models.Inquiry, error)
	UpdateStatus(ctx context.Context, id string, status models.InquiryStatus) (*models.Inquiry, error)
}

// ReviewStore is the persistence used by ReviewService
type ReviewStore interface {
	Finder[models.Review]
	Create(ctx context.Context, r *models.Review) error
	UpdateStatus(ctx context.Context, id string, status models.ReviewStatus) (*models.Review, error)
	Delete(ctx context.Context, id string) error
}

// GalleryStore is the persistence used by GalleryService
type GalleryStore interface {
	Finder[models.GalleryItem]
	Create(ctx context.Context, item *models.GalleryItem) error
	Delete(ctx context.Context, id string) error
}

// NewsletterStore is the persistence used by NewsletterService
type NewsletterStore interface {
	Finder[models.NewsletterSubscription]
	Create(ctx context.Context, sub *models.NewsletterSubscription) error
}

// UserStore is the persistence used by AuthService
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}

// Notifier fires notifications without waiting for them
type Notifier interface {
	Dispatch(event string, notifications ...Notification)
}

// storeError maps repository sentinels onto service errors
func storeError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, database.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, database.ErrDuplicate):
		return ErrDuplicate
	default:
		return err
	}
}
