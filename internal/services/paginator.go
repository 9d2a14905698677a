package services

import (
	"context"
	"math"
	"strconv"

	"github.com/horizontrails/agency-backoffice/internal/database"
	"github.com/horizontrails/agency-backoffice/internal/models"
)

// Default page sizes per listing
const (
	DefaultPackageLimit = 10
	DefaultListLimit    = 20
	PublicReviewLimit   = 20
	RecentItemsLimit    = 10
)

// PageRequest is a parsed page/limit pair
type PageRequest struct {
	Page  int
	Limit int
}

// NewPageRequest parses page and limit. Absent or invalid values fall back to
// page 1 and defaultLimit. There is no upper bound on limit.
func NewPageRequest(page, limit string, defaultLimit int) PageRequest {
	p, err := strconv.Atoi(page)
	if err != nil || p < 1 {
		p = 1
	}
	l, err := strconv.Atoi(limit)
	if err != nil || l < 1 {
		l = defaultLimit
	}
	return PageRequest{Page: p, Limit: l}
}

// Offset is the number of rows to skip. It saturates at math.MaxInt, so a
// page far past the end reads as an empty page instead of wrapping negative.
func (r PageRequest) Offset() int {
	skip := r.Page - 1
	if skip <= 0 || r.Limit <= 0 {
		return 0
	}
	if skip > math.MaxInt/r.Limit {
		return math.MaxInt
	}
	return skip * r.Limit
}

// Pages returns ceil(total/limit)
func Pages(total int64, limit int) int {
	if limit < 1 || total <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// Finder is the read side of a repository
type Finder[T any] interface {
	Find(ctx context.Context, f database.Filter, s database.Sort, limit, offset int) ([]T, error)
	Count(ctx context.Context, f database.Filter) (int64, error)
}

// Paginate loads one page and counts the whole filtered set
func Paginate[T any](ctx context.Context, finder Finder[T], f database.Filter, s database.Sort, req PageRequest) (*models.Page[T], error) {
	items, err := finder.Find(ctx, f, s, req.Limit, req.Offset())
	if err != nil {
		return nil, err
	}

	total, err := finder.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	return &models.Page[T]{
		Items: items,
		Pagination: models.Pagination{
			Page:  req.Page,
			Limit: req.Limit,
			Total: total,
			Pages: Pages(total, req.Limit),
		},
	}, nil
}
