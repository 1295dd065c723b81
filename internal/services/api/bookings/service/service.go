// Package service contains booking workflows
package service

import (
	"context"

	"slugspot/internal/modkit/repokit"
	perr "slugspot/internal/platform/errors"
	"slugspot/internal/services/api/bookings/domain"
	"slugspot/internal/services/api/bookings/repo"
)

// Service defines the service contract for bookings
type Service interface {
	domain.ServicePort
	domain.PaymentHook
}

// catalog mirrors the original fixed service menu; prices are cents
var catalog = []domain.ServiceInfo{
	{ID: "tutoring", Name: "Peer Tutoring", Description: "One-on-one tutoring session", PriceCents: 2500, DurationMin: 60},
	{ID: "study-room", Name: "Study Room", Description: "Private study room reservation", PriceCents: 1000, DurationMin: 60},
	{ID: "equipment", Name: "Equipment Rental", Description: "Projectors, cameras, and lab gear", PriceCents: 1500, DurationMin: 120},
	{ID: "consultation", Name: "Advising Consultation", Description: "Academic planning consultation", PriceCents: 4000, DurationMin: 30},
}

// slots are the fixed hourly windows from the booking wizard
var slots = []string{
	"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00",
}

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New creates a new bookings service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("bookings.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("bookings.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// Catalog returns the fixed bookable service menu
func (s *Svc) Catalog() []domain.ServiceInfo {
	out := make([]domain.ServiceInfo, len(catalog))
	copy(out, catalog)
	return out
}

// Slots returns the fixed time slots
func (s *Svc) Slots() []string {
	out := make([]string, len(slots))
	copy(out, slots)
	return out
}

func serviceByID(id string) (domain.ServiceInfo, bool) {
	for _, svc := range catalog {
		if svc.ID == id {
			return svc, true
		}
	}
	return domain.ServiceInfo{}, false
}

func slotValid(slot string) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}

// Create validates the service id and slot against the fixed catalog,
// computes the price server-side, and persists a pending booking
func (s *Svc) Create(ctx context.Context, userID string, in domain.CreateInput) (domain.Booking, error) {
	if userID == "" {
		return domain.Booking{}, perr.Unauthorizedf("missing bearer token")
	}
	svc, ok := serviceByID(in.ServiceID)
	if !ok {
		return domain.Booking{}, perr.WithField(perr.Validationf("unknown service"), "service_id")
	}
	if !slotValid(in.Slot) {
		return domain.Booking{}, perr.WithField(perr.Validationf("unknown time slot"), "slot")
	}

	row, err := s.Repo.Insert(ctx, userID, svc.ID, in.Date, in.Slot, svc.PriceCents)
	if err != nil {
		return domain.Booking{}, err
	}
	return toBooking(row), nil
}

// ForUser lists the caller's bookings, newest first
func (s *Svc) ForUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	rows, err := s.Repo.ForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Booking, 0, len(rows))
	for _, r := range rows {
		out = append(out, toBooking(r))
	}
	return out, nil
}

// Pending resolves a booking awaiting payment, enforcing ownership
func (s *Svc) Pending(ctx context.Context, bookingID, userID string) (domain.Booking, error) {
	row, err := s.Repo.ByID(ctx, bookingID)
	if err != nil {
		return domain.Booking{}, err
	}
	if row.UserID != userID {
		return domain.Booking{}, perr.Forbiddenf("booking belongs to another user")
	}
	if row.Status != domain.StatusPending {
		return domain.Booking{}, perr.Conflictf("booking is already %s", row.Status)
	}
	return toBooking(row), nil
}

// MarkPaid settles a pending booking with the gateway reference
func (s *Svc) MarkPaid(ctx context.Context, bookingID, paymentRef string) (domain.Booking, error) {
	row, err := s.Repo.MarkPaid(ctx, bookingID, paymentRef)
	if err != nil {
		return domain.Booking{}, err
	}
	return toBooking(row), nil
}

func toBooking(r repo.RowBooking) domain.Booking {
	name := r.ServiceID
	if svc, ok := serviceByID(r.ServiceID); ok {
		name = svc.Name
	}
	return domain.Booking{
		ID:          r.ID,
		UserID:      r.UserID,
		ServiceID:   r.ServiceID,
		ServiceName: name,
		Date:        r.Date,
		Slot:        r.Slot,
		PriceCents:  r.PriceCents,
		Status:      r.Status,
		PaymentRef:  r.PaymentRef,
		CreatedAt:   r.CreatedAt,
	}
}
