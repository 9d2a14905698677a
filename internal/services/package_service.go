package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/horizontrails/agency-backoffice/internal/cache"
	"github.com/horizontrails/agency-backoffice/internal/models"
)

// PackageService handles the package catalog
type PackageService struct {
	packages PackageStore
	cache    cache.PackageCache
	now      func() time.Time
}

// NewPackageService creates a new package service
func NewPackageService(packages PackageStore, c cache.PackageCache) *PackageService {
	if c == nil {
		c = cache.Noop{}
	}
	return &PackageService{packages: packages, cache: c, now: time.Now}
}

// ListPublic returns one page of active packages, served from cache when possible
func (s *PackageService) ListPublic(ctx context.Context, opts PackageListOptions) (*models.Page[models.Package], error) {
	page, slot, ok := s.cache.GetList(ctx, opts.CacheKey())
	if ok {
		return page, nil
	}

	page, err := Paginate[models.Package](ctx, s.packages, opts.Filter(true), opts.Sort(), opts.PageRequest())
	if err != nil {
		return nil, err
	}

	s.cache.SetList(ctx, slot, page)
	return page, nil
}

// List returns one page of packages including inactive ones
func (s *PackageService) List(ctx context.Context, opts PackageListOptions) (*models.Page[models.Package], error) {
	return Paginate[models.Package](ctx, s.packages, opts.Filter(false), opts.Sort(), opts.PageRequest())
}

// GetPublic retrieves an active package
func (s *PackageService) GetPublic(ctx context.Context, id string) (*models.Package, error) {
	pkg, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !pkg.Active {
		return nil, ErrNotFound
	}
	return pkg, nil
}

// Get retrieves a package regardless of its active flag
func (s *PackageService) Get(ctx context.Context, id string) (*models.Package, error) {
	pkg, err := s.packages.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err)
	}
	return pkg, nil
}

// Create adds a package. Packages are active unless the payload says otherwise.
func (s *PackageService) Create(ctx context.Context, req *models.PackageRequest) (*models.Package, error) {
	now := s.now()
	pkg := &models.Package{
		ID:         uuid.NewString(),
		Itinerary:  models.StringList{},
		Inclusions: models.StringList{},
		Exclusions: models.StringList{},
		Images:     models.StringList{},
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	req.ApplyTo(pkg)

	if err := validatePackage(pkg); err != nil {
		return nil, err
	}

	if err := s.packages.Create(ctx, pkg); err != nil {
		return nil, fmt.Errorf("failed to create package: %w", err)
	}

	s.cache.Invalidate(ctx)
	return pkg, nil
}

// Update applies the fields present in req to an existing package
func (s *PackageService) Update(ctx context.Context, id string, req *models.PackageRequest) (*models.Package, error) {
	pkg, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ApplyTo(pkg)
	pkg.UpdatedAt = s.now()

	if err := validatePackage(pkg); err != nil {
		return nil, err
	}

	if err := s.packages.Update(ctx, pkg); err != nil {
		return nil, storeError(err)
	}

	s.cache.Invalidate(ctx)
	return pkg, nil
}

// Delete removes a package. Bookings and inquiries keep their reference.
func (s *PackageService) Delete(ctx context.Context, id string) error {
	if err := s.packages.Delete(ctx, id); err != nil {
		return storeError(err)
	}
	s.cache.Invalidate(ctx)
	return nil
}
