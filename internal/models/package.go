package models

import "time"

// Package is a bookable travel package in the catalog
type Package struct {
	ID          string     `json:"id" db:"id"`
	Name        string     `json:"name" db:"name" binding:"required,notblank"`
	Destination string     `json:"destination" db:"destination" binding:"required,notblank"`
	Duration    int        `json:"duration" db:"duration" binding:"gte=1"`
	Price       float64    `json:"price" db:"price" binding:"gte=0"`
	Description string     `json:"description" db:"description" binding:"required,notblank"`
	Itinerary   StringList `json:"itinerary" db:"itinerary"`
	Inclusions  StringList `json:"inclusions" db:"inclusions"`
	Exclusions  StringList `json:"exclusions" db:"exclusions"`
	Images      StringList `json:"images" db:"images"`
	Featured    bool       `json:"featured" db:"featured"`
	Active      bool       `json:"active" db:"active"`
	Category    *string    `json:"category,omitempty" db:"category"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}

// PackageRequest is the admin payload for creating or updating a package.
// On update only the fields present in the payload are applied.
type PackageRequest struct {
	Name        *string  `json:"name" binding:"omitnil,notblank"`
	Destination *string  `json:"destination" binding:"omitnil,notblank"`
	Duration    *int     `json:"duration" binding:"omitnil,gte=1"`
	Price       *float64 `json:"price" binding:"omitnil,gte=0"`
	Description *string  `json:"description" binding:"omitnil,notblank"`
	Itinerary   []string `json:"itinerary"`
	Inclusions  []string `json:"inclusions"`
	Exclusions  []string `json:"exclusions"`
	Images      []string `json:"images"`
	Featured    *bool    `json:"featured"`
	Active      *bool    `json:"active"`
	Category    *string  `json:"category"`
}

// ApplyTo copies the present fields of the request onto pkg
func (r *PackageRequest) ApplyTo(pkg *Package) {
	if r.Name != nil {
		pkg.Name = *r.Name
	}
	if r.Destination != nil {
		pkg.Destination = *r.Destination
	}
	if r.Duration != nil {
		pkg.Duration = *r.Duration
	}
	if r.Price != nil {
		pkg.Price = *r.Price
	}
	if r.Description != nil {
		pkg.Description = *r.Description
	}
	if r.Itinerary != nil {
		pkg.Itinerary = StringList(r.Itinerary)
	}
	if r.Inclusions != nil {
		pkg.Inclusions = StringList(r.Inclusions)
	}
	if r.Exclusions != nil {
		pkg.Exclusions = StringList(r.Exclusions)
	}
	if r.Images != nil {
		pkg.Images = StringList(r.Images)
	}
	if r.Featured != nil {
		pkg.Featured = *r.Featured
	}
	if r.Active != nil {
		pkg.Active = *r.Active
	}
	if r.Category != nil {
		pkg.Category = r.Category
	}
}
