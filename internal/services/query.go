package services

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/horizontrails/agency-backoffice/internal/database"
)

var (
	newestFirst    = database.Sort{{Column: "created_at", Desc: true}}
	travelDateSort = database.Sort{{Column: "travel_date"}}
	gallerySort    = database.Sort{{Column: "sort_order"}, {Column: "created_at", Desc: true}}
	subscriberSort = database.Sort{{Column: "subscribed_at", Desc: true}}
)

// PackageListOptions are the query parameters of the package listings
type PackageListOptions struct {
	Destination string `form:"destination"`
	Category    string `form:"category"`
	MinPrice    string `form:"minPrice"`
	MaxPrice    string `form:"maxPrice"`
	MinDuration string `form:"minDuration"`
	MaxDuration string `form:"maxDuration"`
	Featured    string `form:"featured"`
	Search      string `form:"search"`
	Active      string `form:"active"` // admin listing only
	Page        string `form:"page"`
	Limit       string `form:"limit"`
}

// Filter builds the package predicate. The public listing always sees active
// packages only; the admin listing may filter on active explicitly.
func (o PackageListOptions) Filter(public bool) database.Filter {
	var f database.Filter

	if public {
		f.Eq("active", true)
	} else if o.Active != "" {
		f.Eq("active", o.Active == "true")
	}
	if o.Destination != "" {
		f.Eq("destination", o.Destination)
	}
	if o.Category != "" {
		f.Eq("category", o.Category)
	}
	if v, ok := parseFloat(o.MinPrice); ok {
		f.Gte("price", v)
	}
	if v, ok := parseFloat(o.MaxPrice); ok {
		f.Lte("price", v)
	}
	if v, ok := parseInt(o.MinDuration); ok {
		f.Gte("duration", v)
	}
	if v, ok := parseInt(o.MaxDuration); ok {
		f.Lte("duration", v)
	}
	if o.Featured != "" {
		f.Eq("featured", o.Featured == "true")
	}
	if term := strings.TrimSpace(o.Search); term != "" {
		f.Match(term, "name", "destination", "description")
	}

	return f
}

// Sort is fixed for packages
func (o PackageListOptions) Sort() database.Sort {
	return newestFirst
}

// PageRequest parses page and limit
func (o PackageListOptions) PageRequest() PageRequest {
	return NewPageRequest(o.Page, o.Limit, DefaultPackageLimit)
}

// CacheKey is a stable key for the normalized options
func (o PackageListOptions) CacheKey() string {
	req := o.PageRequest()
	v := url.Values{}
	set := func(k, s string) {
		if s != "" {
			v.Set(k, s)
		}
	}
	set("destination", o.Destination)
	set("category", o.Category)
	set("minPrice", o.MinPrice)
	set("maxPrice", o.MaxPrice)
	set("minDuration", o.MinDuration)
	set("maxDuration", o.MaxDuration)
	if o.Featured != "" {
		v.Set("featured", strconv.FormatBool(o.Featured == "true"))
	}
	set("search", strings.ToLower(strings.TrimSpace(o.Search)))
	v.Set("page", strconv.Itoa(req.Page))
	v.Set("limit", strconv.Itoa(req.Limit))
	return v.Encode()
}

// BookingListOptions are the query parameters of the admin booking listing
type BookingListOptions struct {
	Status    string `form:"status"`
	PackageID string `form:"packageId"`
	SortBy    string `form:"sortBy"`
	Page      string `form:"page"`
	Limit     string `form:"limit"`
}

// Filter builds the booking predicate
func (o BookingListOptions) Filter() database.Filter {
	var f database.Filter
	if o.Status != "" {
		f.Eq("status", o.Status)
	}
	if o.PackageID != "" {
		f.Eq("package_id", o.PackageID)
	}
	return f
}

// Sort is newest first unless sortBy=travelDate, which sorts ascending
func (o BookingListOptions) Sort() database.Sort {
	if o.SortBy == "travelDate" {
		return travelDateSort
	}
	return newestFirst
}

// PageRequest parses page and limit
func (o BookingListOptions) PageRequest() PageRequest {
	return NewPageRequest(o.Page, o.Limit, DefaultListLimit)
}

// InquiryListOptions are the query parameters of the admin inquiry listing
type InquiryListOptions struct {
	Status    string `form:"status"`
	PackageID string `form:"packageId"`
	Page      string `form:"page"`
	Limit     string `form:"limit"`
}

// Filter builds the inquiry predicate
func (o InquiryListOptions) Filter() database.Filter {
	var f database.Filter
	if o.Status != "" {
		f.Eq("status", o.Status)
	}
	if o.PackageID != "" {
		f.Eq("package_id", o.PackageID)
	}
	return f
}

// PageRequest parses page and limit
func (o InquiryListOptions) PageRequest() PageRequest {
	return NewPageRequest(o.Page, o.Limit, DefaultListLimit)
}

// ReviewListOptions are the query parameters of the review listings.
// The public listing ignores Status, Page and Limit.
type ReviewListOptions struct {
	Status      string `form:"status"`
	Destination string `form:"destination"`
	Page        string `form:"page"`
	Limit       string `form:"limit"`
}

// Filter builds the review predicate. Public listings see approved reviews only.
func (o ReviewListOptions) Filter(public bool) database.Filter {
	var f database.Filter
	if public {
		f.Eq("status", "approved")
	} else if o.Status != "" {
		f.Eq("status", o.Status)
	}
	if o.Destination != "" {
		f.Eq("destination", o.Destination)
	}
	return f
}

// PageRequest parses page and limit
func (o ReviewListOptions) PageRequest() PageRequest {
	return NewPageRequest(o.Page, o.Limit, DefaultListLimit)
}

// GalleryListOptions are the query parameters of the gallery listing
type GalleryListOptions struct {
	Category string `form:"category"`
	Page     string `form:"page"`
	Limit    string `form:"limit"`
}

// Filter builds the gallery predicate
func (o GalleryListOptions) Filter() database.Filter {
	var f database.Filter
	if o.Category != "" {
		f.Eq("category", o.Category)
	}
	return f
}

// PageRequest parses page and limit
func (o GalleryListOptions) PageRequest() PageRequest {
	return NewPageRequest(o.Page, o.Limit, DefaultListLimit)
}

func parseFloat(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	return v, err == nil
}

func parseInt(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	return v, err == nil
}
