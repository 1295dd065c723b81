// Package service contains the checkout workflow
package service

import (
	"context"

	"slugspot/internal/platform/logger"
	bookdom "slugspot/internal/services/api/bookings/domain"
	"slugspot/internal/services/api/payments/domain"
)

// Service defines the service contract for payments
type Service interface {
	domain.ServicePort
}

// Svc implements the Service interface
type Svc struct {
	Bookings bookdom.PaymentHook
	Gateway  domain.Gateway
}

// New creates a new payments service
func New(bookings bookdom.PaymentHook, gateway domain.Gateway) *Svc {
	if bookings == nil {
		panic("payments.Service requires a non nil bookings hook")
	}
	if gateway == nil {
		panic("payments.Service requires a non nil gateway")
	}
	return &Svc{Bookings: bookings, Gateway: gateway}
}

// Charge settles a pending booking owned by the caller. The amount comes from
// the booking row, never from the request. A gateway decline leaves the
// booking pending so the caller can retry
func (s *Svc) Charge(ctx context.Context, userID string, in domain.ChargeInput) (domain.Receipt, error) {
	bk, err := s.Bookings.Pending(ctx, in.BookingID, userID)
	if err != nil {
		return domain.Receipt{}, err
	}

	ref, err := s.Gateway.Charge(ctx, bk.PriceCents, in.Card)
	if err != nil {
		logger.C(ctx).Info().Err(err).Str("booking_id", bk.ID).Msg("charge declined")
		return domain.Receipt{}, err
	}

	paid, err := s.Bookings.MarkPaid(ctx, bk.ID, ref)
	if err != nil {
		return domain.Receipt{}, err
	}

	return domain.Receipt{
		BookingID:   paid.ID,
		PaymentRef:  paid.PaymentRef,
		AmountCents: paid.PriceCents,
		Status:      paid.Status,
	}, nil
}
