package models

import "time"

// Booking is a customer's reservation request against a package
type Booking struct {
	ID                string        `json:"id" db:"id"`
	PackageID         string        `json:"packageId" db:"package_id"`
	CustomerName      string        `json:"customerName" db:"customer_name"`
	Email             string        `json:"email" db:"email"`
	Phone             string        `json:"phone" db:"phone"`
	TravelDate        time.Time     `json:"travelDate" db:"travel_date"`
	NumberOfTravelers int           `json:"numberOfTravelers" db:"number_of_travelers"`
	SpecialRequests   *string       `json:"specialRequests,omitempty" db:"special_requests"`
	TotalPrice        float64       `json:"totalPrice" db:"total_price"`
	Status            BookingStatus `json:"status" db:"status"`
	CreatedAt         time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time     `json:"updatedAt" db:"updated_at"`
}

// CreateBookingRequest is the public booking submission.
// totalPrice is computed by the client as price x travelers and stored as sent.
// Absent fields are reported by the service pre-checks, so tags only check shape.
type CreateBookingRequest struct {
	PackageID         string   `json:"packageId"`
	CustomerName      string   `json:"customerName"`
	Email             string   `json:"email" binding:"omitempty,agencyemail"`
	Phone             string   `json:"phone"`
	TravelDate        string   `json:"travelDate"`
	NumberOfTravelers *int     `json:"numberOfTravelers" binding:"omitnil,gte=1"`
	SpecialRequests   *string  `json:"specialRequests,omitempty"`
	TotalPrice        *float64 `json:"totalPrice" binding:"omitnil,gte=0"`
}

// UpdateStatusRequest is the admin payload for any status transition
type UpdateStatusRequest struct {
	Status string `json:"status"`
}
