// Package domain holds DTOs for bookings http and service contracts
package domain

import "time"

// ServiceInfo describes one bookable campus service
type ServiceInfo struct {
	ID          string `json:"id" example:"tutoring"`
	Name        string `json:"name" example:"Peer Tutoring"`
	Description string `json:"description,omitempty"`
	PriceCents  int    `json:"price_cents" example:"2500"`
	DurationMin int    `json:"duration_min" example:"60"`
}

// Booking is a reserved service slot
type Booking struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	ServiceID   string    `json:"service_id" example:"tutoring"`
	ServiceName string    `json:"service_name" example:"Peer Tutoring"`
	Date        string    `json:"date" example:"2026-09-15"`
	Slot        string    `json:"slot" example:"10:00"`
	PriceCents  int       `json:"price_cents" example:"2500"`
	Status      string    `json:"status" example:"pending"` // pending paid
	PaymentRef  string    `json:"payment_ref,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Booking status values
const (
	StatusPending = "pending"
	StatusPaid    = "paid"
)

// CreateInput is the payload for reserving a slot
// the price is never accepted from the client; it is computed server-side
type CreateInput struct {
	ServiceID string `json:"service_id" validate:"required" example:"tutoring"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02" example:"2026-09-15"`
	Slot      string `json:"slot" validate:"required" example:"10:00"`
}
