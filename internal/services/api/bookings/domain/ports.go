package domain

import "context"

// ServicePort defines the service contract for bookings
type ServicePort interface {
	Catalog() []ServiceInfo
	Slots() []string
	Create(ctx context.Context, userID string, in CreateInput) (Booking, error)
	ForUser(ctx context.Context, userID string) ([]Booking, error)
}

// PaymentHook is the slice of bookings the payments module needs:
// resolving a pending booking for a charge and settling it afterwards
type PaymentHook interface {
	Pending(ctx context.Context, bookingID, userID string) (Booking, error)
	MarkPaid(ctx context.Context, bookingID, paymentRef string) (Booking, error)
}
