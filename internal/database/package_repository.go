package database

import (
	"context"
	"fmt"

	"github.com/horizontrails/agency-backoffice/internal/models"
)

const packageColumns = `id, name, destination, duration, price, description,
	itinerary, inclusions, exclusions, images, featured, active, category,
	created_at, updated_at`

// PackageRepository handles database operations for the packages table
type PackageRepository struct {
	db DB
}

// NewPackageRepository creates a new PackageRepository
func NewPackageRepository(db DB) *PackageRepository {
	return &PackageRepository{db: db}
}

// Create inserts a new package
func (r *PackageRepository) Create(ctx context.Context, pkg *models.Package) error {
	query := `
		INSERT INTO packages (
			id, name, destination, duration, price, description,
			itinerary, inclusions, exclusions, images, featured, active, category,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := r.db.ExecContext(ctx, query,
		pkg.ID, pkg.Name, pkg.Destination, pkg.Duration, pkg.Price, pkg.Description,
		pkg.Itinerary, pkg.Inclusions, pkg.Exclusions, pkg.Images, pkg.Featured, pkg.Active, pkg.Category,
		pkg.CreatedAt, pkg.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create package: %w", translateError(err))
	}
	return nil
}

// GetByID retrieves a package by id regardless of its active flag
func (r *PackageRepository) GetByID(ctx context.Context, id string) (*models.Package, error) {
	var pkg models.Package
	err := r.db.GetContext(ctx, &pkg, `SELECT `+packageColumns+` FROM packages WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get package: %w", translateError(err))
	}
	return &pkg, nil
}

// Find retrieves a page of packages matching the filter
func (r *PackageRepository) Find(ctx context.Context, f Filter, s Sort, limit, offset int) ([]models.Package, error) {
	query, args := selectPage(packageColumns, "packages", f, s, limit, offset)

	packages := []models.Package{}
	if err := r.db.SelectContext(ctx, &packages, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}
	return packages, nil
}

// Count counts packages matching the filter
func (r *PackageRepository) Count(ctx context.Context, f Filter) (int64, error) {
	query, args := selectCount("packages", f)

	var total int64
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count packages: %w", err)
	}
	return total, nil
}

// Update overwrites the mutable fields of a package
func (r *PackageRepository) Update(ctx context.Context, pkg *models.Package) error {
	query := `
		UPDATE packages
		SET name = $1, destination = $2, duration = $3, price = $4, description = $5,
			itinerary = $6, inclusions = $7, exclusions = $8, images = $9,
			featured = $10, active = $11, category = $12, updated_at = $13
		WHERE id = $14
	`

	result, err := r.db.ExecContext(ctx, query,
		pkg.Name, pkg.Destination, pkg.Duration, pkg.Price, pkg.Description,
		pkg.Itinerary, pkg.Inclusions, pkg.Exclusions, pkg.Images,
		pkg.Featured, pkg.Active, pkg.Category, pkg.UpdatedAt,
		pkg.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update package: %w", err)
	}
	if err := requireAffected(result); err != nil {
		return fmt.Errorf("failed to update package: %w", err)
	}
	return nil
}

// Delete removes a package
func (r *PackageRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM packages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete package: %w", err)
	}
	if err := requireAffected(result); err != nil {
		return fmt.Errorf("failed to delete package: %w", err)
	}
	return nil
}
