package module

import (
	"context"

	bookdom "slugspot/internal/services/api/bookings/domain"
	booksvc "slugspot/internal/services/api/bookings/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptBookingsPort exposes the payment hooks other modules settle bookings through
type adaptBookingsPort struct{ svc booksvc.Service }

func (a adaptBookingsPort) Pending(ctx context.Context, bookingID, userID string) (bookdom.Booking, error) {
	return a.svc.Pending(ctx, bookingID, userID)
}

func (a adaptBookingsPort) MarkPaid(ctx context.Context, bookingID, paymentRef string) (bookdom.Booking, error) {
	return a.svc.MarkPaid(ctx, bookingID, paymentRef)
}
