// Package domain holds DTOs for payments http and service contracts
package domain

// Card is the card detail captured by the checkout form.
// Numbers are never persisted; they only transit to the gateway
type Card struct {
	Number   string `json:"number" validate:"required,min=12,max=19" example:"4242424242424242"`
	ExpMonth int    `json:"exp_month" validate:"required,min=1,max=12" example:"9"`
	ExpYear  int    `json:"exp_year" validate:"required,min=2024" example:"2027"`
	CVC      string `json:"cvc" validate:"required,min=3,max=4" example:"123"`
}

// ChargeInput is the payload for settling a pending booking
type ChargeInput struct {
	BookingID string `json:"booking_id" validate:"required,uuid4"`
	Card      Card   `json:"card" validate:"required"`
}

// Receipt is returned for a successful charge
type Receipt struct {
	BookingID   string `json:"booking_id"`
	PaymentRef  string `json:"payment_ref" example:"cmf9q3hk60000356yk1s8p9d2"`
	AmountCents int    `json:"amount_cents" example:"2500"`
	Status      string `json:"status" example:"paid"`
}
