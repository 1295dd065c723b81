// Package domain holds DTOs for listings http and service contracts
package domain

import (
	"time"

	revdom "slugspot/internal/services/api/reviews/domain"
)

// Listing is the denormalized read shape for a campus listing
// AvgRating and ReviewCount are server-computed; a listing with no reviews
// always reports review_count 0 and avg_rating 0
type Listing struct {
	ID          string    `json:"id"`
	Title       string    `json:"title" example:"Stevenson Coffee"`
	Description string    `json:"description,omitempty"`
	AuthorName  string    `json:"author_name,omitempty"`
	AuthorEmail string    `json:"author_email,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	AvgRating   float64   `json:"avg_rating" example:"4.5"`
	ReviewCount int       `json:"review_count" example:"20"`
}

// ListQuery carries the deep-linkable search state from the URL
// an absent or empty Q means no filtering
type ListQuery struct {
	Q    string `json:"q,omitempty"`
	Sort string `json:"sort,omitempty" example:"top_rated"`
}

// CreateInput is the payload for creating a listing
// limits match the original submission form
type CreateInput struct {
	Title       string `json:"title" validate:"required,max=100" example:"Porter Meadow"`
	Description string `json:"description,omitempty" validate:"omitempty,max=1000"`
}

// Detail is a listing plus its reviews, newest first
type Detail struct {
	Listing
	Reviews []revdom.Review `json:"reviews"`
}
