package models

import "time"

// GalleryItem is a photo shown on the public gallery page
type GalleryItem struct {
	ID        string    `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	ImageURL  string    `json:"imageUrl" db:"image_url"`
	Category  *string   `json:"category,omitempty" db:"category"`
	Order     int       `json:"order" db:"sort_order"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// CreateGalleryItemRequest is the admin payload for a gallery entry
type CreateGalleryItemRequest struct {
	Title    string  `json:"title"`
	ImageURL string  `json:"imageUrl" binding:"omitempty,url" label:"Image URL"`
	Category *string `json:"category,omitempty"`
	Order    int     `json:"order" binding:"gte=0"`
}
