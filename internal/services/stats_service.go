package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/horizontrails/agency-backoffice/internal/database"
	"github.com/horizontrails/agency-backoffice/internal/models"
)

// StatsService computes the admin dashboard aggregates
type StatsService struct {
	bookings  BookingStore
	inquiries InquiryStore
}

// NewStatsService creates a new stats service
func NewStatsService(bookings BookingStore, inquiries InquiryStore) *StatsService {
	return &StatsService{bookings: bookings, inquiries: inquiries}
}

func statusFilter(status string) database.Filter {
	var f database.Filter
	f.Eq("status", status)
	return f
}

// Dashboard runs every aggregate query concurrently. Any failure fails the whole result.
func (s *StatsService) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}
	g, gctx := errgroup.WithContext(ctx)

	count := func(dst *int64, finder interface {
		Count(context.Context, database.Filter) (int64, error)
	}, f database.Filter) {
		g.Go(func() error {
			n, err := finder.Count(gctx, f)
			if err != nil {
				return err
			}
			*dst = n
			return nil
		})
	}

	count(&stats.TotalBookings, s.bookings, database.Filter{})
	count(&stats.PendingBookings, s.bookings, statusFilter(string(models.BookingStatusPending)))
	count(&stats.ConfirmedBookings, s.bookings, statusFilter(string(models.BookingStatusConfirmed)))
	count(&stats.CancelledBookings, s.bookings, statusFilter(string(models.BookingStatusCancelled)))
	count(&stats.TotalInquiries, s.inquiries, database.Filter{})
	count(&stats.NewInquiries, s.inquiries, statusFilter(string(models.InquiryStatusNew)))

	g.Go(func() error {
		sum, err := s.bookings.SumTotalPrice(gctx, statusFilter(string(models.BookingStatusConfirmed)))
		if err != nil {
			return err
		}
		stats.TotalRevenue = sum
		return nil
	})

	g.Go(func() error {
		recent, err := s.bookings.Find(gctx, database.Filter{}, newestFirst, RecentItemsLimit, 0)
		if err != nil {
			return err
		}
		stats.RecentBookings = recent
		return nil
	})

	g.Go(func() error {
		recent, err := s.inquiries.Find(gctx, database.Filter{}, newestFirst, RecentItemsLimit, 0)
		if err != nil {
			return err
		}
		stats.RecentInquiries = recent
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}
