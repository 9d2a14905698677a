package models

import "time"

// NewsletterSubscription is a write-once mailing list entry
type NewsletterSubscription struct {
	ID           string    `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	SubscribedAt time.Time `json:"subscribedAt" db:"subscribed_at"`
}

// SubscribeRequest is the newsletter signup payload
type SubscribeRequest struct {
	Email string `json:"email" binding:"omitempty,agencyemail"`
}
