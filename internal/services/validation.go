package services

import (
	"strings"
	"time"

	"github.com/horizontrails/agency-backoffice/internal/models"
	"github.com/horizontrails/agency-backoffice/pkg/validator"
)

// validateBookingRequest checks a booking submission and returns the parsed travel date.
// Missing fields and the travel date are pre-checks with flat messages; the
// request's binding tags report per-field errors.
func validateBookingRequest(req *models.CreateBookingRequest, now time.Time) (time.Time, error) {
	var pre validator.Collector
	pre.Required("packageId", "Package", req.PackageID)
	pre.Required("customerName", "Customer name", req.CustomerName)
	pre.Required("email", "Email", req.Email)
	pre.Required("phone", "Phone", req.Phone)
	travelDate := pre.FutureDate("travelDate", "Travel date", req.TravelDate, now)
	pre.Present("numberOfTravelers", "Number of travelers", req.NumberOfTravelers != nil)
	pre.Present("totalPrice", "Total price", req.TotalPrice != nil)
	if err := pre.Err(); err != nil {
		return time.Time{}, precheckError(err)
	}

	if err := fieldError(validator.Struct(req)); err != nil {
		return time.Time{}, err
	}
	return travelDate, nil
}

func validateInquiryRequest(req *models.CreateInquiryRequest) error {
	var pre validator.Collector
	pre.Required("name", "Name", req.Name)
	pre.Required("email", "Email", req.Email)
	pre.Required("message", "Message", req.Message)
	if err := pre.Err(); err != nil {
		return precheckError(err)
	}
	return fieldError(validator.Struct(req))
}

func validateReviewRequest(req *models.CreateReviewRequest) error {
	var pre validator.Collector
	pre.Required("name", "Name", req.Name)
	pre.Required("email", "Email", req.Email)
	pre.Required("comment", "Comment", req.Comment)
	pre.Present("rating", "Rating", req.Rating != nil)
	if err := pre.Err(); err != nil {
		return precheckError(err)
	}
	return fieldError(validator.Struct(req))
}

// validatePackage checks a package after a create or update payload was applied
func validatePackage(pkg *models.Package) error {
	return fieldError(validator.Struct(pkg))
}

func validateGalleryRequest(req *models.CreateGalleryItemRequest) error {
	var pre validator.Collector
	pre.Required("title", "Title", req.Title)
	pre.Required("imageUrl", "Image URL", req.ImageURL)
	if err := pre.Err(); err != nil {
		return precheckError(err)
	}
	return fieldError(validator.Struct(req))
}

func validateSubscription(req *models.SubscribeRequest) error {
	var pre validator.Collector
	if !pre.Required("email", "Email", req.Email) {
		return precheckError(pre.Err())
	}
	return fieldError(validator.Struct(req))
}

// validateUser checks the request payload, then the user it produced
func validateUser(req interface{}, user *models.User) error {
	if err := fieldError(validator.Struct(req)); err != nil {
		return err
	}
	return fieldError(validator.Struct(user))
}

// normalizeEmail trims and lowercases an address before it is stored
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// optionalString trims s and maps blank values to nil
func optionalString(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
