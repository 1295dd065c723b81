// Package repo provides postgres access for reviews
package repo

import (
	"context"
	"time"

	"slugspot/internal/modkit/repokit"
	perr "slugspot/internal/platform/errors"
)

// Repo defines the repository contract for reviews
type Repo interface {
	Insert(ctx context.Context, listingID, userID string, rating int, comment string) (RowReview, error)
	ForListing(ctx context.Context, listingID string) ([]RowReview, error)
}

// RowReview represents a review row joined with its author's display name
type RowReview struct {
	ID         string
	ListingID  string
	UserID     string
	AuthorName string
	Rating     int
	Comment    string
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

func (r *queries) Insert(ctx context.Context, listingID, userID string, rating int, comment string) (RowReview, error) {
	const sql = `
with ins as (
	insert into reviews (listing_id, user_id, rating, comment)
	values ($1, $2, $3, $4)
	returning id, listing_id, user_id, rating, comment, created_at
)
select ins.id::text, ins.listing_id::text, ins.user_id::text,
	coalesce(u.display_name, ''), ins.rating, coalesce(ins.comment, ''), ins.created_at
from ins
left join users u on u.id = ins.user_id
`
	var rr RowReview
	row := r.q.QueryRow(ctx, sql, listingID, userID, rating, comment)
	if err := row.Scan(
		&rr.ID, &rr.ListingID, &rr.UserID, &rr.AuthorName, &rr.Rating, &rr.Comment, &rr.CreatedAt,
	); err != nil {
		return RowReview{}, perr.FromPostgresWithField(err, "insert review")
	}
	return rr, nil
}

func (r *queries) ForListing(ctx context.Context, listingID string) ([]RowReview, error) {
	const sql = `
select rv.id::text, rv.listing_id::text, rv.user_id::text,
	coalesce(u.display_name, ''), rv.rating, coalesce(rv.comment, ''), rv.created_at
from reviews rv
left join users u on u.id = rv.user_id
where rv.listing_id = $1
order by rv.created_at desc
`
	rows, err := r.q.Query(ctx, sql, listingID)
	if err != nil {
		return nil, perr.FromPostgres(err, "select reviews")
	}
	defer rows.Close()
	var out []RowReview
	for rows.Next() {
		var rr RowReview
		if err := rows.Scan(
			&rr.ID, &rr.ListingID, &rr.UserID, &rr.AuthorName, &rr.Rating, &rr.Comment, &rr.CreatedAt,
		); err != nil {
			return nil, perr.FromPostgres(err, "scan review")
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}
