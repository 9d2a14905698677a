package models

import "time"

// Inquiry is a customer question, optionally about a specific package.
// A contact message is an inquiry without a package reference.
type Inquiry struct {
	ID        string        `json:"id" db:"id"`
	Name      string        `json:"name" db:"name"`
	Email     string        `json:"email" db:"email"`
	Phone     *string       `json:"phone,omitempty" db:"phone"`
	PackageID *string       `json:"packageId,omitempty" db:"package_id"`
	Message   string        `json:"message" db:"message"`
	Status    InquiryStatus `json:"status" db:"status"`
	CreatedAt time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time     `json:"updatedAt" db:"updated_at"`
}

// IsContactMessage reports whether the inquiry came from the contact form
func (i *Inquiry) IsContactMessage() bool {
	return i.PackageID == nil
}

// CreateInquiryRequest is the public inquiry/contact submission
type CreateInquiryRequest struct {
	Name      string  `json:"name"`
	Email     string  `json:"email" binding:"omitempty,agencyemail"`
	Phone     *string `json:"phone,omitempty"`
	PackageID *string `json:"packageId,omitempty"`
	Message   string  `json:"message"`
}
