// Package domain holds DTOs for reviews http and service contracts
package domain

import "time"

// Review is a rating plus optional comment by one user against one listing
// immutable once written
type Review struct {
	ID         string    `json:"id"`
	ListingID  string    `json:"listing_id"`
	UserID     string    `json:"user_id"`
	AuthorName string    `json:"author_name,omitempty"`
	Rating     int       `json:"rating" example:"4"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// SubmitInput is the payload for posting a review
type SubmitInput struct {
	ListingID string `json:"listing_id" validate:"required,uuid4" example:"7b1f4c2e-3e0a-4f58-9f2e-1a2b3c4d5e6f"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5" example:"4"`
	Comment   string `json:"comment,omitempty" validate:"omitempty,max=1000"`
}
