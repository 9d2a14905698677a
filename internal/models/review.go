package models

import "time"

// Review is a customer testimonial subject to moderation
type Review struct {
	ID          string       `json:"id" db:"id"`
	Name        string       `json:"name" db:"name"`
	Email       string       `json:"email" db:"email"`
	Rating      int          `json:"rating" db:"rating"`
	Comment     string       `json:"comment" db:"comment"`
	Destination *string      `json:"destination,omitempty" db:"destination"`
	Status      ReviewStatus `json:"status" db:"status"`
	CreatedAt   time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time    `json:"updatedAt" db:"updated_at"`
}

// PublicReview is the shape exposed on the public listing. It has no email field.
type PublicReview struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
	Destination *string   `json:"destination,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Public strips private fields from the review
func (r *Review) Public() PublicReview {
	return PublicReview{
		ID:          r.ID,
		Name:        r.Name,
		Rating:      r.Rating,
		Comment:     r.Comment,
		Destination: r.Destination,
		CreatedAt:   r.CreatedAt,
	}
}

// CreateReviewRequest is the public review submission. Status is never accepted from clients.
type CreateReviewRequest struct {
	Name        string  `json:"name"`
	Email       string  `json:"email" binding:"omitempty,agencyemail"`
	Rating      *int    `json:"rating" binding:"omitnil,min=1,max=5"`
	Comment     string  `json:"comment"`
	Destination *string `json:"destination,omitempty"`
}
