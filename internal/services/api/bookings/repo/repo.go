// Package repo provides postgres access for bookings
package repo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"slugspot/internal/modkit/repokit"
	perr "slugspot/internal/platform/errors"
)

// Repo defines the repository contract for bookings
type Repo interface {
	Insert(ctx context.Context, userID, serviceID, date, slot string, priceCents int) (RowBooking, error)
	ByID(ctx context.Context, id string) (RowBooking, error)
	ForUser(ctx context.Context, userID string) ([]RowBooking, error)
	MarkPaid(ctx context.Context, id, paymentRef string) (RowBooking, error)
}

// RowBooking represents a booking row from the database
type RowBooking struct {
	ID         string
	UserID     string
	ServiceID  string
	Date       string
	Slot       string
	PriceCents int
	Status     string
	PaymentRef string
	CreatedAt  time.Time
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	// queries holds the database query methods
	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

const bookingCols = `
id::text, user_id::text, service_id, booked_date::text, slot,
price_cents, status, coalesce(payment_ref, ''), created_at
`

func scanBooking(row interface{ Scan(...any) error }) (RowBooking, error) {
	var b RowBooking
	err := row.Scan(
		&b.ID, &b.UserID, &b.ServiceID, &b.Date, &b.Slot,
		&b.PriceCents, &b.Status, &b.PaymentRef, &b.CreatedAt,
	)
	return b, err
}

func (r *queries) Insert(ctx context.Context, userID, serviceID, date, slot string, priceCents int) (RowBooking, error) {
	const sql = `
insert into bookings (user_id, service_id, booked_date, slot, price_cents, status)
values ($1, $2, $3::date, $4, $5, 'pending')
returning ` + bookingCols
	b, err := scanBooking(r.q.QueryRow(ctx, sql, userID, serviceID, date, slot, priceCents))
	if err != nil {
		return RowBooking{}, perr.FromPostgresWithField(err, "insert booking")
	}
	return b, nil
}

func (r *queries) ByID(ctx context.Context, id string) (RowBooking, error) {
	const sql = `select ` + bookingCols + ` from bookings where id = $1`
	b, err := scanBooking(r.q.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return RowBooking{}, perr.NotFoundf("booking %s not found", id)
		}
		return RowBooking{}, perr.FromPostgres(err, "select booking by id")
	}
	return b, nil
}

func (r *queries) ForUser(ctx context.Context, userID string) ([]RowBooking, error) {
	const sql = `select ` + bookingCols + ` from bookings where user_id = $1 order by created_at desc`
	rows, err := r.q.Query(ctx, sql, userID)
	if err != nil {
		return nil, perr.FromPostgres(err, "select bookings")
	}
	defer rows.Close()
	var out []RowBooking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, perr.FromPostgres(err, "scan booking")
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *queries) MarkPaid(ctx context.Context, id, paymentRef string) (RowBooking, error) {
	const sql = `
update bookings
set status = 'paid', payment_ref = $2
where id = $1 and status = 'pending'
returning ` + bookingCols
	b, err := scanBooking(r.q.QueryRow(ctx, sql, id, paymentRef))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return RowBooking{}, perr.Conflictf("booking %s is not pending", id)
		}
		return RowBooking{}, perr.FromPostgres(err, "mark booking paid")
	}
	return b, nil
}
